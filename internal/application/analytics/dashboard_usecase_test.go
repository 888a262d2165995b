package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

func TestDashboard_FactoresYSerieMensual(t *testing.T) {
	repo := &fakeAnalytics{
		income: repository.FinanceTotals{Total: decimal.NewFromInt(1000000), PendingAmount: decimal.Zero},
		expenses: []expenseRow{
			{"c1", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(250000), entity.PaymentStatusPaid},
		},
		monthly: []repository.MonthlyFinance{
			{Month: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(300), Expenses: decimal.NewFromInt(100)},
			{Month: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(250)},
		},
	}
	summary := newSummary(repo, entity.UserCompany{UserID: "u1", CompanyID: "c1"})
	uc := NewDashboardUseCase(summary, Factors{OpexRatio: 0.40, GrowthFactor: 0.9})

	got, err := uc.GetSummary(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(750000).Equal(got.NetProfit), "net %s", got.NetProfit)
	assert.True(t, decimal.NewFromInt(400000).Equal(got.OperationalExpenses))
	assert.True(t, decimal.NewFromInt(900000).Equal(got.CompanyGrowth))

	require.Len(t, got.Monthly, 6)
	assert.Equal(t, "2025-10", got.Monthly[0].Month)
	assert.Equal(t, "Oct 2025", got.Monthly[0].Label)
	assert.Equal(t, "2026-03", got.Monthly[5].Month)
	assert.True(t, decimal.NewFromInt(750).Equal(got.Monthly[5].Net))
	assert.True(t, decimal.NewFromInt(200).Equal(got.Monthly[2].Net))
	assert.True(t, got.Monthly[1].Income.IsZero())

	assert.Equal(t, 5, got.Activities.Total)
	assert.Equal(t, 3, got.Products.Total)
}

func TestDashboard_NoMiembroProhibido(t *testing.T) {
	summary := newSummary(&fakeAnalytics{}, entity.UserCompany{UserID: "u1", CompanyID: "c1"})
	uc := NewDashboardUseCase(summary, Factors{OpexRatio: 0.40, GrowthFactor: 0.9})

	_, err := uc.GetSummary(context.Background(), "u1", dto.ListQuery{CompanyID: "c9"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDashboard_SinEmpresasSerieEnCero(t *testing.T) {
	summary := newSummary(&fakeAnalytics{})
	uc := NewDashboardUseCase(summary, Factors{OpexRatio: 0.40, GrowthFactor: 0.9})

	got, err := uc.GetSummary(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, got.Monthly, 6)
	for _, m := range got.Monthly {
		assert.True(t, m.Net.IsZero())
	}
	assert.True(t, got.NetProfit.IsZero())
}

func TestDashboard_SerieMensualEnZonaHoraria(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	marzo := time.Date(2026, 3, 1, 0, 0, 0, 0, jst).UTC()
	repo := &fakeAnalytics{
		monthly: []repository.MonthlyFinance{
			{Month: marzo, Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(250)},
			{Month: marzo, Income: decimal.NewFromInt(500), Expenses: decimal.Zero},
		},
	}
	summary := newSummary(repo, entity.UserCompany{UserID: "u1", CompanyID: "c1"})
	summary.now = func() time.Time { return time.Date(2026, 3, 20, 10, 0, 0, 0, jst) }
	uc := NewDashboardUseCase(summary, Factors{})

	got, err := uc.GetSummary(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)

	require.Len(t, got.Monthly, 6)
	assert.Equal(t, "2026-03", got.Monthly[5].Month)
	assert.True(t, decimal.NewFromInt(1250).Equal(got.Monthly[5].Net), "net %s", got.Monthly[5].Net)
	assert.True(t, got.Monthly[4].Income.IsZero(), "febrero no debe recibir el mes de marzo")
}
