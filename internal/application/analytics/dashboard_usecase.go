package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

const dashboardMonths = 6 // meses en la serie mensual del dashboard

// Factors factores fijos del dashboard aplicados sobre el ingreso del período.
type Factors struct {
	OpexRatio    float64
	GrowthFactor float64
}

// DashboardUseCase consolida los resúmenes de todos los recursos.
//
// Las consultas corren en paralelo (errgroup); la primera que falle cancela el resto.
type DashboardUseCase struct {
	summary *SummaryUseCase
	factors Factors
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(summary *SummaryUseCase, factors Factors) *DashboardUseCase {
	return &DashboardUseCase{summary: summary, factors: factors}
}

// GetSummary construye el DashboardSummaryDTO para las empresas visibles del usuario.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string, q dto.ListQuery) (*dto.DashboardSummaryDTO, error) {
	ids, p, err := uc.summary.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	now := uc.summary.now()

	var (
		out     dto.DashboardSummaryDTO
		incomes *dto.IncomeSummaryDTO
		expense *dto.ExpenseSummaryDTO
		clients *dto.ClientSummaryDTO
		opps    *dto.OpportunitySummaryDTO
		acts    *dto.ActivitySummaryDTO
		tickets *dto.TicketSummaryDTO
		prods   *dto.ProductSummaryDTO
		monthly []repository.MonthlyFinance
	)
	since := monthStart(now).AddDate(0, -(dashboardMonths - 1), 0)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		incomes, err = uc.summary.incomes(gctx, ids, p)
		return err
	})
	g.Go(func() (err error) {
		expense, err = uc.summary.expenses(gctx, ids, p)
		return err
	})
	g.Go(func() (err error) {
		clients, err = uc.summary.clients(gctx, ids, p)
		return err
	})
	g.Go(func() (err error) {
		opps, err = uc.summary.opportunities(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		acts, err = uc.summary.activities(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		tickets, err = uc.summary.tickets(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		prods, err = uc.summary.products(gctx, ids)
		return err
	})
	g.Go(func() error {
		if len(ids) == 0 {
			return nil
		}
		rows, err := uc.summary.repo.MonthlyFinance(gctx, ids, since)
		if err != nil {
			return fmt.Errorf("dashboard: serie mensual: %w", err)
		}
		monthly = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Incomes = *incomes
	out.Expenses = *expense
	out.Clients = *clients
	out.Opportunities = *opps
	out.Activities = *acts
	out.Tickets = *tickets
	out.Products = *prods

	out.NetProfit = incomes.TotalIncome.Sub(expense.TotalExpenses).Round(2)
	out.OperationalExpenses = incomes.TotalIncome.Mul(decimal.NewFromFloat(uc.factors.OpexRatio)).Round(2)
	out.CompanyGrowth = incomes.TotalIncome.Mul(decimal.NewFromFloat(uc.factors.GrowthFactor)).Round(2)
	out.Monthly = fillMonths(since, dashboardMonths, monthly)
	return &out, nil
}

// fillMonths arma la serie de n meses desde since; los meses sin movimientos quedan en cero.
// Cada fila se ubica en su mes según la zona horaria de since.
func fillMonths(since time.Time, n int, rows []repository.MonthlyFinance) []dto.MonthlyFinanceDTO {
	byMonth := make(map[string]repository.MonthlyFinance, len(rows))
	for _, r := range rows {
		key := r.Month.In(since.Location()).Format("2006-01")
		acc := byMonth[key]
		acc.Income = acc.Income.Add(r.Income)
		acc.Expenses = acc.Expenses.Add(r.Expenses)
		byMonth[key] = acc
	}
	out := make([]dto.MonthlyFinanceDTO, 0, n)
	for i := 0; i < n; i++ {
		m := since.AddDate(0, i, 0)
		key := m.Format("2006-01")
		income, expenses := decimal.Zero, decimal.Zero
		if r, ok := byMonth[key]; ok {
			income, expenses = r.Income, r.Expenses
		}
		out = append(out, dto.MonthlyFinanceDTO{
			Month:    key,
			Label:    monthLabel(m),
			Income:   income.Round(2),
			Expenses: expenses.Round(2),
			Net:      income.Sub(expenses).Round(2),
		})
	}
	return out
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthLabel devuelve una etiqueta corta del mes, ej: "Feb 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Ene", "Feb", "Mar", "Abr", "May", "Jun",
		"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
