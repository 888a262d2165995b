package quote

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals acumulado de la cabecera de una cotización.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeLine calcula los importes de una línea (servicio de dominio).
//
//	Subtotal = Cantidad * PrecioUnitario
//	Descuento = Subtotal * %Descuento / 100
//	Impuesto = taxApplies ? (Subtotal - Descuento) * %Impuesto / 100 : 0
//	Total = Subtotal - Descuento + Impuesto
//
// Cada importe se redondea a 2 decimales; Total se deriva de los importes ya redondeados.
func ComputeLine(item *entity.QuoteItem, taxApplies bool) {
	subtotal := item.Quantity.Mul(item.UnitPrice).Round(2)
	discount := subtotal.Mul(item.DiscountRate).Div(hundred).Round(2)
	tax := decimal.Zero
	if taxApplies {
		tax = subtotal.Sub(discount).Mul(item.TaxRate).Div(hundred).Round(2)
	}
	item.Subtotal = subtotal
	item.Discount = discount
	item.Tax = tax
	item.Total = subtotal.Sub(discount).Add(tax)
}

// ComputeTotals calcula cada línea y devuelve la suma por columna. Total == Σ línea.Total.
func ComputeTotals(items []entity.QuoteItem, taxApplies bool) Totals {
	t := Totals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
	for i := range items {
		ComputeLine(&items[i], taxApplies)
		t.Subtotal = t.Subtotal.Add(items[i].Subtotal)
		t.Discount = t.Discount.Add(items[i].Discount)
		t.Tax = t.Tax.Add(items[i].Tax)
		t.Total = t.Total.Add(items[i].Total)
	}
	return t
}

// Apply calcula los totales y los asigna a la cabecera.
func Apply(q *entity.Quote) {
	t := ComputeTotals(q.Items, q.TaxApplies)
	q.Subtotal = t.Subtotal
	q.Discount = t.Discount
	q.Tax = t.Tax
	q.Total = t.Total
}
