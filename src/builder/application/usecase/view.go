package usecase

import (
	"sort"

	"github.com/ezekielbrioso/Florish/src/builder/application/response"
	"github.com/ezekielbrioso/Florish/src/builder/domain/entity"
)

// buildSessionView arma la respuesta completa de una sesión
// El caller debe tener tomado el lock de la sesión
func buildSessionView(s *entity.BuilderSession) *response.SessionResponse {
	ledger := response.LedgerView{
		BaseFlowers:   s.Ledger.BaseFlowerIDs(),
		FocalFlowers:  flowerSelectionItems(s.Ledger.FocalQuantities()),
		FillerFlowers: flowerSelectionItems(s.Ledger.FillerQuantities()),
	}
	if id, ok := s.Ledger.WrapperID(); ok {
		ledger.WrapperID = id
	}
	if id, ok := s.Ledger.RibbonID(); ok {
		ledger.RibbonID = id
	}
	if card, ok := s.Ledger.Card(); ok {
		ledger.Card = &card
	}

	active := s.Cursor.Active()

	return &response.SessionResponse{
		SessionID:      s.ID,
		State:          s.State(),
		ActiveCategory: active,
		Step:           active.Step(),
		Items:          s.Cursor.Items(),
		FetchFailed:    s.Cursor.FetchFailed(),
		Ledger:         ledger,
		Total:          entity.ComputeTotal(s.Ledger, s.Index).Round(2),
		CanFinalize:    s.Ledger.CanFinalize(),
		Missing:        s.Ledger.MissingRequirements(),
		CreatedAt:      s.CreatedAt,
	}
}

// flowerSelectionItems pasa el mapa id -> cantidad a lista estable por id
func flowerSelectionItems(quantities map[string]int) []response.FlowerSelectionItem {
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]response.FlowerSelectionItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, response.FlowerSelectionItem{ItemID: id, Quantity: quantities[id]})
	}
	return items
}
