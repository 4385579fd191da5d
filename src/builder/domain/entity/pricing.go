package entity

import "github.com/shopspring/decimal"

// ComputeTotal calcula el precio total del ledger resolviendo cada id
// contra el catálogo vigente: suma unitPrice × cantidad de cada slot
// poblado (cantidad implícita 1 para wrapper/cinta/tarjeta)
//
// Se acumula a precisión completa; el redondeo a 2 decimales ocurre
// recién al presentar o finalizar, nunca en sumas parciales
//
// Un id que ya no resuelve contra el catálogo no aporta al total,
// igual que en el resumen del wizard
func ComputeTotal(ledger *SelectionLedger, index CatalogIndex) decimal.Decimal {
	total := decimal.Zero

	for _, id := range ledger.BaseFlowerIDs() {
		if item, ok := index.Get(id); ok {
			total = total.Add(item.UnitPrice)
		}
	}

	total = total.Add(flowerSubtotal(ledger.FocalQuantities(), index))
	total = total.Add(flowerSubtotal(ledger.FillerQuantities(), index))

	if id, ok := ledger.WrapperID(); ok {
		if item, found := index.Get(id); found {
			total = total.Add(item.UnitPrice)
		}
	}
	if id, ok := ledger.RibbonID(); ok {
		if item, found := index.Get(id); found {
			total = total.Add(item.UnitPrice)
		}
	}
	if card, ok := ledger.Card(); ok {
		if item, found := index.Get(card.ItemID); found {
			total = total.Add(item.UnitPrice)
		}
	}

	return total
}

func flowerSubtotal(quantities map[string]int, index CatalogIndex) decimal.Decimal {
	subtotal := decimal.Zero
	for id, qty := range quantities {
		if item, ok := index.Get(id); ok {
			subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(qty))))
		}
	}
	return subtotal
}
