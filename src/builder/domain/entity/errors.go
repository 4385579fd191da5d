package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionNotFound   = errors.New("builder session not found")
	ErrSessionFinalized  = errors.New("builder session is already finalized")
	ErrItemNotInCatalog  = errors.New("item is not in the loaded catalog")
	ErrItemWrongCategory = errors.New("item does not belong to the requested category")
)

// ValidationError indica qué requisitos faltan para finalizar el ramo
// Se muestra al usuario como mensaje accionable (no es fatal)
type ValidationError struct {
	Missing []string `json:"missing"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("incomplete bouquet: missing %s", strings.Join(e.Missing, ", "))
}
