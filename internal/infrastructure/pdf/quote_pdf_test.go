package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/quote"
)

func sampleQuote() *entity.Quote {
	valid := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	q := &entity.Quote{
		ID:         "q-1",
		CompanyID:  "c-1",
		Number:     "COT-00001",
		Title:      "Implementación CRM",
		Status:     entity.QuoteStatusDraft,
		TaxApplies: true,
		ValidUntil: &valid,
		Notes:      "Precios en COP.",
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Items: []entity.QuoteItem{
			{
				Description:  "Licencia anual",
				Quantity:     decimal.NewFromInt(2),
				UnitPrice:    decimal.RequireFromString("1250000"),
				DiscountRate: decimal.NewFromInt(10),
				TaxRate:      decimal.NewFromInt(19),
			},
		},
	}
	quote.Apply(q)
	return q
}

func TestGenerateQuotePDF(t *testing.T) {
	company := &entity.Company{ID: "c-1", Name: "Acme SAS", TaxID: "900123456-7"}
	client := &entity.Client{ID: "cl-1", Name: "Cliente Uno", Email: "uno@cliente.co"}

	out, err := NewQuotePDFGenerator().GenerateQuotePDF(context.Background(), sampleQuote(), company, client)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateQuotePDF_WithoutClient(t *testing.T) {
	company := &entity.Company{ID: "c-1", Name: "Acme SAS"}

	out, err := NewQuotePDFGenerator().GenerateQuotePDF(context.Background(), sampleQuote(), company, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "-", nonEmpty("", "-"))
	assert.Equal(t, "x", nonEmpty("x", "-"))
}
