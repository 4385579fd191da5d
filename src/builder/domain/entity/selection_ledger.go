package entity

import "unicode/utf8"

// MaxCardMessageLength es el largo máximo del mensaje de la tarjeta
const MaxCardMessageLength = 200

// Nombres de los requisitos mínimos para finalizar
const (
	RequirementBaseFlowers  = "baseFlowers"
	RequirementFocalFlowers = "focalFlowers"
	RequirementWrapper      = "wrapper"
)

// CardSelection representa la tarjeta elegida con su mensaje personalizado
type CardSelection struct {
	ItemID  string `json:"item_id"`
	Message string `json:"message"`
}

// SelectionLedger acumula las selecciones de una sesión de armado de ramo
// Guarda solo ids y cantidades, nunca precios: el precio se resuelve
// contra el catálogo vigente hasta el momento de finalizar
//
// Propiedad de UNA sola sesión de wizard; no se comparte entre sesiones
// Toda validación ocurre ANTES de mutar (nunca mutar y revertir)
type SelectionLedger struct {
	baseFlowers   []string       // orden de selección preservado, tope 2
	focalFlowers  map[string]int // id -> cantidad (>= 1)
	fillerFlowers map[string]int // id -> cantidad (>= 1)
	wrapperID     string
	ribbonID      string
	card          *CardSelection
}

// NewSelectionLedger crea un ledger vacío para una sesión nueva
func NewSelectionLedger() *SelectionLedger {
	return &SelectionLedger{
		focalFlowers:  make(map[string]int),
		fillerFlowers: make(map[string]int),
	}
}

// ToggleBaseFlower alterna una flor base: si está la quita, si no está
// la agrega mientras haya lugar. Superar el tope de 2 es un no-op
// silencioso (tope de UX, no un error). Retorna si el ledger cambió
func (l *SelectionLedger) ToggleBaseFlower(item CatalogItem) bool {
	for i, id := range l.baseFlowers {
		if id == item.ID {
			l.baseFlowers = append(l.baseFlowers[:i], l.baseFlowers[i+1:]...)
			return true
		}
	}
	if len(l.baseFlowers) >= MaxBaseFlowers {
		return false
	}
	l.baseFlowers = append(l.baseFlowers, item.ID)
	return true
}

// IncrementFocal suma una unidad de una flor focal
// Llegado el tope del item (maxQuantity, default 10) es un no-op silencioso
func (l *SelectionLedger) IncrementFocal(item CatalogItem) bool {
	return incrementFlower(l.focalFlowers, item)
}

// DecrementFocal resta una unidad; al llegar a 0 la clave se elimina,
// nunca se conserva con cantidad 0
func (l *SelectionLedger) DecrementFocal(itemID string) bool {
	return decrementFlower(l.focalFlowers, itemID)
}

// IncrementFiller suma una unidad de una flor de relleno (mismas reglas que focal)
func (l *SelectionLedger) IncrementFiller(item CatalogItem) bool {
	return incrementFlower(l.fillerFlowers, item)
}

// DecrementFiller resta una unidad de una flor de relleno
func (l *SelectionLedger) DecrementFiller(itemID string) bool {
	return decrementFlower(l.fillerFlowers, itemID)
}

func incrementFlower(m map[string]int, item CatalogItem) bool {
	current := m[item.ID]
	if current >= item.MaxPerSelection() {
		return false
	}
	m[item.ID] = current + 1
	return true
}

func decrementFlower(m map[string]int, itemID string) bool {
	current, ok := m[itemID]
	if !ok {
		return false
	}
	if current <= 1 {
		delete(m, itemID)
	} else {
		m[itemID] = current - 1
	}
	return true
}

// SetWrapper elige el papel de envoltura (slot único, last-write-wins)
func (l *SelectionLedger) SetWrapper(item CatalogItem) {
	l.wrapperID = item.ID
}

// SetRibbon elige la cinta (slot único, last-write-wins)
func (l *SelectionLedger) SetRibbon(item CatalogItem) {
	l.ribbonID = item.ID
}

// SetCard elige la tarjeta con su mensaje (slot único, last-write-wins)
// El mensaje se recorta a 200 caracteres, igual que el maxLength del formulario
func (l *SelectionLedger) SetCard(item CatalogItem, message string) {
	if utf8.RuneCountInString(message) > MaxCardMessageLength {
		runes := []rune(message)
		message = string(runes[:MaxCardMessageLength])
	}
	l.card = &CardSelection{ItemID: item.ID, Message: message}
}

// BaseFlowerIDs retorna las flores base en orden de selección
func (l *SelectionLedger) BaseFlowerIDs() []string {
	out := make([]string, len(l.baseFlowers))
	copy(out, l.baseFlowers)
	return out
}

// FocalQuantities retorna una copia del mapa id -> cantidad de focales
func (l *SelectionLedger) FocalQuantities() map[string]int {
	return copyQuantities(l.focalFlowers)
}

// FillerQuantities retorna una copia del mapa id -> cantidad de rellenos
func (l *SelectionLedger) FillerQuantities() map[string]int {
	return copyQuantities(l.fillerFlowers)
}

func copyQuantities(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for id, qty := range m {
		out[id] = qty
	}
	return out
}

// WrapperID retorna el wrapper elegido, si hay
func (l *SelectionLedger) WrapperID() (string, bool) {
	return l.wrapperID, l.wrapperID != ""
}

// RibbonID retorna la cinta elegida, si hay
func (l *SelectionLedger) RibbonID() (string, bool) {
	return l.ribbonID, l.ribbonID != ""
}

// Card retorna la tarjeta elegida, si hay
func (l *SelectionLedger) Card() (CardSelection, bool) {
	if l.card == nil {
		return CardSelection{}, false
	}
	return *l.card, true
}

// CanFinalize indica si se cumplen los mínimos: al menos 1 flor base,
// al menos 1 focal distinta y un wrapper. Filler, cinta y tarjeta
// nunca son obligatorios
func (l *SelectionLedger) CanFinalize() bool {
	return len(l.MissingRequirements()) == 0
}

// MissingRequirements lista los requisitos aún no cumplidos
func (l *SelectionLedger) MissingRequirements() []string {
	var missing []string
	if len(l.baseFlowers) == 0 {
		missing = append(missing, RequirementBaseFlowers)
	}
	if len(l.focalFlowers) == 0 {
		missing = append(missing, RequirementFocalFlowers)
	}
	if l.wrapperID == "" {
		missing = append(missing, RequirementWrapper)
	}
	return missing
}

// Reset descarta todas las selecciones y deja el ledger como nuevo
func (l *SelectionLedger) Reset() {
	l.baseFlowers = nil
	l.focalFlowers = make(map[string]int)
	l.fillerFlowers = make(map[string]int)
	l.wrapperID = ""
	l.ribbonID = ""
	l.card = nil
}
