package response

import "github.com/ezekielbrioso/Florish/src/builder/domain/entity"

// FinalizeResponse devuelve el compuesto emitido al carrito
type FinalizeResponse struct {
	Item *entity.CompositeLineItem `json:"item"`
}
