package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func quoteRequest(companyID string) dto.CreateQuoteRequest {
	return dto.CreateQuoteRequest{
		CompanyID:  companyID,
		Title:      "Implementación CRM",
		TaxApplies: true,
		Items: []dto.QuoteItemRequest{
			{Description: "Licencia anual", Quantity: d("2"), UnitPrice: d("1500000"), DiscountRate: d("10"), TaxRate: d("19")},
			{Description: "Soporte", Quantity: d("3"), UnitPrice: d("99.99"), TaxRate: d("19")},
		},
	}
}

func newQuoteUseCase(quotes *fakeQuotes, rows ...entity.UserCompany) *usecase.QuoteUseCase {
	guard := newGuard(rows...)
	refs := usecase.NewReferences(newFakeClients(), &fakeProducts{rows: map[string]*entity.Product{}}, guard)
	return usecase.NewQuoteUseCase(quotes, nil, guard, refs, quotes, nil)
}

func TestQuoteCreate_TotalesYNumero(t *testing.T) {
	quotes := newFakeQuotes()
	uc := newQuoteUseCase(quotes, member("u1", companyA))

	got, err := uc.Create(context.Background(), "u1", quoteRequest(companyA))
	require.NoError(t, err)

	assert.Equal(t, "COT-00001", got.Number)
	assert.Equal(t, entity.QuoteStatusDraft, got.Status)
	assert.True(t, d("3213356.96").Equal(got.Total), "total %s", got.Total)

	sum := decimal.Zero
	for _, it := range got.Items {
		sum = sum.Add(it.Total)
	}
	assert.True(t, sum.Equal(got.Total))
}

func TestQuoteCreate_NumerosConsecutivosConcurrentes(t *testing.T) {
	quotes := newFakeQuotes()
	uc := newQuoteUseCase(quotes, member("u1", companyA))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Create(context.Background(), "u1", quoteRequest(companyA))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, q := range quotes.rows {
		assert.False(t, seen[q.Number], "número repetido %s", q.Number)
		seen[q.Number] = true
	}
	assert.Len(t, seen, 10)
}

func TestQuoteCreate_ItemInvalido(t *testing.T) {
	quotes := newFakeQuotes()
	uc := newQuoteUseCase(quotes, member("u1", companyA))

	req := quoteRequest(companyA)
	req.Items[1].Quantity = decimal.Zero
	_, err := uc.Create(context.Background(), "u1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, quotes.rows)
}

func TestQuoteCreate_NoMiembro(t *testing.T) {
	quotes := newFakeQuotes()
	uc := newQuoteUseCase(quotes, member("u1", companyA))

	_, err := uc.Create(context.Background(), "u1", quoteRequest(companyB))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, quotes.rows)
}

func TestQuoteUpdate_NoRecalculaTotales(t *testing.T) {
	quotes := newFakeQuotes()
	uc := newQuoteUseCase(quotes, member("u1", companyA))
	created, err := uc.Create(context.Background(), "u1", quoteRequest(companyA))
	require.NoError(t, err)

	title := "Otro título"
	got, err := uc.Update(context.Background(), "u1", created.ID, dto.UpdateQuoteRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Otro título", got.Title)
	assert.True(t, created.Total.Equal(got.Total))
}

func TestQuoteCreate_LimitesNumericos(t *testing.T) {
	cases := []struct {
		name string
		mod  func(it *dto.QuoteItemRequest)
	}{
		{"taxRate mayor a 100", func(it *dto.QuoteItemRequest) { it.TaxRate = d("1000") }},
		{"discountRate negativo", func(it *dto.QuoteItemRequest) { it.DiscountRate = d("-1") }},
		{"unitPrice con tres decimales", func(it *dto.QuoteItemRequest) { it.UnitPrice = d("10.005") }},
		{"quantity con cinco decimales", func(it *dto.QuoteItemRequest) { it.Quantity = d("1.00001") }},
		{"taxRate con tres decimales", func(it *dto.QuoteItemRequest) { it.TaxRate = d("19.001") }},
		{"unitPrice fuera de rango", func(it *dto.QuoteItemRequest) { it.UnitPrice = d("10000000000000000") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quotes := newFakeQuotes()
			uc := newQuoteUseCase(quotes, member("u1", companyA))
			req := quoteRequest(companyA)
			tc.mod(&req.Items[0])

			_, err := uc.Create(context.Background(), "u1", req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, quotes.rows)
		})
	}
}

func TestQuoteCreate_LineaCuadraConSusColumnas(t *testing.T) {
	quotes := newFakeQuotes()
	uc := newQuoteUseCase(quotes, member("u1", companyA))
	req := quoteRequest(companyA)
	req.Items = []dto.QuoteItemRequest{{Description: "Hora", Quantity: d("3"), UnitPrice: d("10.01"), TaxRate: d("19")}}

	got, err := uc.Create(context.Background(), "u1", req)
	require.NoError(t, err)
	it := got.Items[0]
	assert.True(t, it.Quantity.Mul(it.UnitPrice).Equal(it.Subtotal), "subtotal %s", it.Subtotal)
}
