package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleItems() []entity.QuoteItem {
	return []entity.QuoteItem{
		{Description: "Licencia anual", Quantity: d("2"), UnitPrice: d("1500000"), DiscountRate: d("10"), TaxRate: d("19")},
		{Description: "Soporte", Quantity: d("3"), UnitPrice: d("99.99"), DiscountRate: d("0"), TaxRate: d("19")},
	}
}

func TestComputeTotals_ConImpuesto(t *testing.T) {
	items := sampleItems()
	tot := ComputeTotals(items, true)

	// Línea 1: 3000000 - 300000 = 2700000; IVA 513000; total 3213000
	assert.True(t, d("3000000").Equal(items[0].Subtotal))
	assert.True(t, d("300000").Equal(items[0].Discount))
	assert.True(t, d("513000").Equal(items[0].Tax))
	assert.True(t, d("3213000").Equal(items[0].Total))

	// Línea 2: 299.97; IVA 56.9943 -> 56.99; total 356.96
	assert.True(t, d("299.97").Equal(items[1].Subtotal))
	assert.True(t, d("56.99").Equal(items[1].Tax))
	assert.True(t, d("356.96").Equal(items[1].Total))

	assert.True(t, d("3000299.97").Equal(tot.Subtotal))
	assert.True(t, d("300000").Equal(tot.Discount))
	assert.True(t, d("513056.99").Equal(tot.Tax))
	assert.True(t, d("3213356.96").Equal(tot.Total))
}

func TestComputeTotals_SinImpuesto(t *testing.T) {
	items := sampleItems()
	tot := ComputeTotals(items, false)

	assert.True(t, tot.Tax.IsZero(), "sin taxApplies no hay impuesto")
	for _, it := range items {
		assert.True(t, it.Tax.IsZero())
	}
	assert.True(t, d("2700299.97").Equal(tot.Total))
}

func TestComputeTotals_TotalEsSumaDeLineas(t *testing.T) {
	for _, taxApplies := range []bool{true, false} {
		items := sampleItems()
		tot := ComputeTotals(items, taxApplies)

		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(it.Subtotal.Sub(it.Discount).Add(it.Tax))
		}
		assert.True(t, sum.Equal(tot.Total), "taxApplies=%v: %s != %s", taxApplies, sum, tot.Total)
		assert.True(t, tot.Subtotal.Sub(tot.Discount).Add(tot.Tax).Equal(tot.Total))
	}
}

func TestComputeTotals_SinLineas(t *testing.T) {
	tot := ComputeTotals(nil, true)
	assert.True(t, tot.Total.IsZero())
}

func TestApply_AsignaCabecera(t *testing.T) {
	q := &entity.Quote{TaxApplies: true, Items: sampleItems()}
	Apply(q)
	assert.True(t, d("3213356.96").Equal(q.Total))
}
