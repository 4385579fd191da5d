package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
)

// FlowerSelectionItem es una flor con cantidad en la vista del ledger
type FlowerSelectionItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// LedgerView es la vista serializable del ledger de selecciones
type LedgerView struct {
	BaseFlowers   []string              `json:"base_flowers"`
	FocalFlowers  []FlowerSelectionItem `json:"focal_flowers"`
	FillerFlowers []FlowerSelectionItem `json:"filler_flowers"`
	WrapperID     string                `json:"wrapper_id,omitempty"`
	RibbonID      string                `json:"ribbon_id,omitempty"`
	Card          *entity.CardSelection `json:"card,omitempty"`
}

// SessionResponse es el estado completo de una sesión del wizard
// El total viene redondeado a 2 decimales solo para presentación
type SessionResponse struct {
	SessionID      uuid.UUID            `json:"session_id"`
	State          entity.SessionState  `json:"state"`
	ActiveCategory entity.Category      `json:"active_category"`
	Step           int                  `json:"step"`
	Items          []entity.CatalogItem `json:"items"`
	FetchFailed    bool                 `json:"fetch_failed"`
	Ledger         LedgerView           `json:"ledger"`
	Total          decimal.Decimal      `json:"total"`
	CanFinalize    bool                 `json:"can_finalize"`
	Missing        []string             `json:"missing,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}
