package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeMemberships struct {
	rows []entity.UserCompany
}

func (f *fakeMemberships) Create(_ context.Context, m *entity.UserCompany) error {
	f.rows = append(f.rows, *m)
	return nil
}

func (f *fakeMemberships) Get(_ context.Context, userID, companyID string) (*entity.UserCompany, error) {
	for i := range f.rows {
		if f.rows[i].UserID == userID && f.rows[i].CompanyID == companyID {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMemberships) CompanyIDsByUser(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, r := range f.rows {
		if r.UserID == userID {
			ids = append(ids, r.CompanyID)
		}
	}
	return ids, nil
}

func (f *fakeMemberships) ListByUser(context.Context, string) ([]*entity.UserCompany, error) {
	return nil, nil
}

func (f *fakeMemberships) ListMembers(context.Context, string) ([]*entity.CompanyMember, error) {
	return nil, nil
}

func (f *fakeMemberships) Delete(context.Context, string, string) error { return nil }

type expenseRow struct {
	companyID string
	date      time.Time
	amount    decimal.Decimal
	status    string
}

// fakeAnalytics calcula gastos sobre filas en memoria; el resto devuelve valores fijos.
type fakeAnalytics struct {
	expenses      []expenseRow
	income        repository.FinanceTotals
	clients       []repository.StatusCount
	opportunities []repository.StatusCount
	tickets       []repository.StatusCount
	urgent        int
	monthly       []repository.MonthlyFinance
	calledIDs     [][]string
}

func (f *fakeAnalytics) IncomeTotals(_ context.Context, ids []string, _, _ time.Time) (repository.FinanceTotals, error) {
	f.calledIDs = append(f.calledIDs, ids)
	return f.income, nil
}

func (f *fakeAnalytics) ExpenseTotals(_ context.Context, ids []string, from, to time.Time) (repository.FinanceTotals, error) {
	out := repository.FinanceTotals{Total: decimal.Zero, PendingAmount: decimal.Zero}
	for _, e := range f.expenses {
		if !contains(ids, e.companyID) || e.date.Before(from) || !e.date.Before(to) {
			continue
		}
		if e.status == entity.PaymentStatusCancelled {
			continue
		}
		out.Total = out.Total.Add(e.amount)
		out.Count++
		if e.status == entity.PaymentStatusPending {
			out.PendingCount++
			out.PendingAmount = out.PendingAmount.Add(e.amount)
		}
	}
	return out, nil
}

func (f *fakeAnalytics) ClientsByStatus(context.Context, []string) ([]repository.StatusCount, error) {
	return f.clients, nil
}

func (f *fakeAnalytics) ClientsCreated(_ context.Context, _ []string, from, _ time.Time) (int, error) {
	if from.Month() == time.March {
		return 4, nil
	}
	return 2, nil
}

func (f *fakeAnalytics) OpportunitiesByStage(context.Context, []string) ([]repository.StatusCount, error) {
	return f.opportunities, nil
}

func (f *fakeAnalytics) ActivityStats(context.Context, []string, time.Time) (repository.ActivityStats, error) {
	return repository.ActivityStats{Total: 5, Pending: 3, Completed: 2, Overdue: 1}, nil
}

func (f *fakeAnalytics) TicketsByStatus(context.Context, []string) ([]repository.StatusCount, error) {
	return f.tickets, nil
}

func (f *fakeAnalytics) UrgentOpenTickets(context.Context, []string) (int, error) {
	return f.urgent, nil
}

func (f *fakeAnalytics) ProductStats(context.Context, []string) (repository.ProductStats, error) {
	return repository.ProductStats{Total: 3, Active: 2, LowStock: 1, InventoryValue: decimal.RequireFromString("1500.555")}, nil
}

func (f *fakeAnalytics) MonthlyFinance(context.Context, []string, time.Time) ([]repository.MonthlyFinance, error) {
	return f.monthly, nil
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

var fixedNow = time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

func newSummary(repo repository.AnalyticsRepository, rows ...entity.UserCompany) *SummaryUseCase {
	uc := NewSummaryUseCase(repo, access.NewGuard(&fakeMemberships{rows: rows}), time.UTC)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestExpenses_GastoDelMesIncluido(t *testing.T) {
	repo := &fakeAnalytics{expenses: []expenseRow{
		{"c1", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("120000"), entity.PaymentStatusPaid},
		{"c1", time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC), decimal.RequireFromString("30000.50"), entity.PaymentStatusPending},
		{"c1", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("999"), entity.PaymentStatusCancelled},
		{"c1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("5000"), entity.PaymentStatusPaid},
		{"c2", time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("7777"), entity.PaymentStatusPaid},
	}}
	uc := newSummary(repo, entity.UserCompany{UserID: "u1", CompanyID: "c1"})

	got, err := uc.Expenses(context.Background(), "u1", dto.ListQuery{CompanyID: "c1", From: "2026-02-01", To: "2026-02-28"})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("150000.50").Equal(got.TotalExpenses), "total %s", got.TotalExpenses)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 1, got.PendingCount)
	assert.True(t, decimal.RequireFromString("30000.50").Equal(got.PendingAmount))
	assert.True(t, decimal.NewFromInt(100).Equal(got.GrowthPercentage))
}

func TestIncomes_NoMiembroProhibido(t *testing.T) {
	uc := newSummary(&fakeAnalytics{}, entity.UserCompany{UserID: "u1", CompanyID: "c1"})

	_, err := uc.Incomes(context.Background(), "u1", dto.ListQuery{CompanyID: "c2"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestIncomes_SinEmpresaUsaTodasLasDelUsuario(t *testing.T) {
	repo := &fakeAnalytics{income: repository.FinanceTotals{Total: decimal.NewFromInt(10), PendingAmount: decimal.Zero}}
	uc := newSummary(repo,
		entity.UserCompany{UserID: "u1", CompanyID: "c1"},
		entity.UserCompany{UserID: "u1", CompanyID: "c2"},
		entity.UserCompany{UserID: "u2", CompanyID: "c3"},
	)

	_, err := uc.Incomes(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, repo.calledIDs)
	assert.ElementsMatch(t, []string{"c1", "c2"}, repo.calledIDs[0])
}

func TestIncomes_SinMembresiasDevuelveCeros(t *testing.T) {
	repo := &fakeAnalytics{}
	uc := newSummary(repo)

	got, err := uc.Incomes(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	assert.True(t, got.TotalIncome.IsZero())
	assert.Empty(t, repo.calledIDs)
}

func TestClients_DistribucionYCrecimiento(t *testing.T) {
	repo := &fakeAnalytics{clients: []repository.StatusCount{
		{Status: entity.ClientStatusActivo, Count: 3},
		{Status: entity.ClientStatusProspecto, Count: 2},
	}}
	uc := newSummary(repo, entity.UserCompany{UserID: "u1", CompanyID: "c1"})

	got, err := uc.Clients(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 3, got.ByStatus[entity.ClientStatusActivo])
	assert.Equal(t, 0, got.ByStatus[entity.ClientStatusInactivo])
	assert.Equal(t, 4, got.NewInPeriod)
	assert.True(t, decimal.NewFromInt(100).Equal(got.GrowthPercentage))
}

func TestOpportunities_PipelineYGanadas(t *testing.T) {
	repo := &fakeAnalytics{opportunities: []repository.StatusCount{
		{Status: entity.StageProspeccion, Count: 2, Value: decimal.NewFromInt(1000)},
		{Status: entity.StageNegociacion, Count: 1, Value: decimal.NewFromInt(500)},
		{Status: entity.StageGanada, Count: 3, Value: decimal.NewFromInt(9000)},
		{Status: entity.StagePerdida, Count: 1, Value: decimal.NewFromInt(700)},
	}}
	uc := newSummary(repo, entity.UserCompany{UserID: "u1", CompanyID: "c1"})

	got, err := uc.Opportunities(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Total)
	assert.True(t, decimal.NewFromInt(1500).Equal(got.PipelineValue))
	assert.True(t, decimal.NewFromInt(9000).Equal(got.WonValue))
	assert.Equal(t, 3, got.WonCount)
	assert.Equal(t, 1, got.LostCount)
	assert.Equal(t, 2, got.ByStage[entity.StageProspeccion].Count)
	assert.Equal(t, 0, got.ByStage[entity.StagePropuesta].Count)
}

func TestTickets_ConteoPorEstado(t *testing.T) {
	repo := &fakeAnalytics{
		tickets: []repository.StatusCount{
			{Status: entity.TicketStatusOpen, Count: 4},
			{Status: entity.TicketStatusInProgress, Count: 2},
			{Status: entity.TicketStatusClosed, Count: 1},
		},
		urgent: 2,
	}
	uc := newSummary(repo, entity.UserCompany{UserID: "u1", CompanyID: "c1"})

	got, err := uc.Tickets(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, dto.TicketSummaryDTO{Total: 7, Open: 4, InProgress: 2, Closed: 1, Urgent: 2}, *got)
}

func TestProducts_ValorRedondeado(t *testing.T) {
	uc := newSummary(&fakeAnalytics{}, entity.UserCompany{UserID: "u1", CompanyID: "c1"})

	got, err := uc.Products(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, got.LowStock)
	assert.True(t, decimal.RequireFromString("1500.56").Equal(got.InventoryValue))
}
