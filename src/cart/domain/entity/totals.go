package entity

import "github.com/shopspring/decimal"

var (
	// DeliveryFee es el cargo fijo de envío
	DeliveryFee = decimal.NewFromInt(15)

	// FreeDeliveryThreshold habilita envío gratis desde este subtotal
	FreeDeliveryThreshold = decimal.NewFromInt(200)
)

// Totals es el resumen de costos del carrito
// El redondeo a 2 decimales ocurre recién acá, al presentar
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
}

// ComputeTotals calcula subtotal, fee de envío y total del carrito
// Envío gratis en pedidos que superan el umbral
func ComputeTotals(cart *Cart) Totals {
	subtotal := cart.Subtotal()

	fee := DeliveryFee
	if len(cart.Items) == 0 || subtotal.GreaterThan(FreeDeliveryThreshold) {
		fee = decimal.Zero
	}

	return Totals{
		Subtotal:    subtotal.Round(2),
		DeliveryFee: fee,
		Total:       subtotal.Add(fee).Round(2),
		ItemCount:   cart.Count(),
	}
}
