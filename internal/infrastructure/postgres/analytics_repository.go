package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para resúmenes y dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// IncomeTotals Total suma solo ingresos PAID; Count incluye todo lo no cancelado.
func (r *AnalyticsRepo) IncomeTotals(ctx context.Context, companyIDs []string, from, to time.Time) (repository.FinanceTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(amount) FILTER (WHERE status = 'PAID'), 0)    AS total,
	    COUNT(*)                                                   AS count,
	    COUNT(*) FILTER (WHERE status = 'PENDING')                 AS pending_count,
	    COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0) AS pending_amount
	FROM incomes
	WHERE company_id = ANY($1)
	  AND date >= $2 AND date < $3
	  AND status <> 'CANCELLED'`

	var t repository.FinanceTotals
	err := r.q.QueryRow(ctx, query, companyIDs, from, to).Scan(&t.Total, &t.Count, &t.PendingCount, &t.PendingAmount)
	if err != nil {
		return t, fmt.Errorf("analytics.IncomeTotals: %w", err)
	}
	return t, nil
}

// ExpenseTotals Total suma todo gasto no cancelado.
func (r *AnalyticsRepo) ExpenseTotals(ctx context.Context, companyIDs []string, from, to time.Time) (repository.FinanceTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(amount), 0)                                   AS total,
	    COUNT(*)                                                   AS count,
	    COUNT(*) FILTER (WHERE status = 'PENDING')                 AS pending_count,
	    COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0) AS pending_amount
	FROM expenses
	WHERE company_id = ANY($1)
	  AND date >= $2 AND date < $3
	  AND status <> 'CANCELLED'`

	var t repository.FinanceTotals
	err := r.q.QueryRow(ctx, query, companyIDs, from, to).Scan(&t.Total, &t.Count, &t.PendingCount, &t.PendingAmount)
	if err != nil {
		return t, fmt.Errorf("analytics.ExpenseTotals: %w", err)
	}
	return t, nil
}

// ClientsByStatus conteo de clientes por estado del embudo.
func (r *AnalyticsRepo) ClientsByStatus(ctx context.Context, companyIDs []string) ([]repository.StatusCount, error) {
	const query = `
	SELECT status, COUNT(*), 0::NUMERIC
	FROM clients
	WHERE company_id = ANY($1)
	GROUP BY status`
	return r.statusCounts(ctx, "analytics.ClientsByStatus", query, companyIDs)
}

// ClientsCreated clientes creados en [from, to).
func (r *AnalyticsRepo) ClientsCreated(ctx context.Context, companyIDs []string, from, to time.Time) (int, error) {
	const query = `
	SELECT COUNT(*) FROM clients
	WHERE company_id = ANY($1) AND created_at >= $2 AND created_at < $3`

	var n int
	if err := r.q.QueryRow(ctx, query, companyIDs, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.ClientsCreated: %w", err)
	}
	return n, nil
}

// OpportunitiesByStage conteo y valor acumulado por etapa.
func (r *AnalyticsRepo) OpportunitiesByStage(ctx context.Context, companyIDs []string) ([]repository.StatusCount, error) {
	const query = `
	SELECT stage, COUNT(*), COALESCE(SUM(value), 0)
	FROM opportunities
	WHERE company_id = ANY($1)
	GROUP BY stage`
	return r.statusCounts(ctx, "analytics.OpportunitiesByStage", query, companyIDs)
}

// ActivityStats vencida = no completada con due_date anterior a now.
func (r *AnalyticsRepo) ActivityStats(ctx context.Context, companyIDs []string, now time.Time) (repository.ActivityStats, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE NOT completed),
	    COUNT(*) FILTER (WHERE completed),
	    COUNT(*) FILTER (WHERE NOT completed AND due_date < $2)
	FROM activities
	WHERE company_id = ANY($1)`

	var st repository.ActivityStats
	err := r.q.QueryRow(ctx, query, companyIDs, now).Scan(&st.Total, &st.Pending, &st.Completed, &st.Overdue)
	if err != nil {
		return st, fmt.Errorf("analytics.ActivityStats: %w", err)
	}
	return st, nil
}

// TicketsByStatus conteo de tickets por estado.
func (r *AnalyticsRepo) TicketsByStatus(ctx context.Context, companyIDs []string) ([]repository.StatusCount, error) {
	const query = `
	SELECT status, COUNT(*), 0::NUMERIC
	FROM tickets
	WHERE company_id = ANY($1)
	GROUP BY status`
	return r.statusCounts(ctx, "analytics.TicketsByStatus", query, companyIDs)
}

// UrgentOpenTickets tickets URGENT aún sin resolver.
func (r *AnalyticsRepo) UrgentOpenTickets(ctx context.Context, companyIDs []string) (int, error) {
	const query = `
	SELECT COUNT(*) FROM tickets
	WHERE company_id = ANY($1)
	  AND priority = 'URGENT'
	  AND status IN ('OPEN', 'IN_PROGRESS')`

	var n int
	if err := r.q.QueryRow(ctx, query, companyIDs).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.UrgentOpenTickets: %w", err)
	}
	return n, nil
}

// ProductStats stock bajo = stock <= min_stock; valor de inventario = Σ stock × cost.
func (r *AnalyticsRepo) ProductStats(ctx context.Context, companyIDs []string) (repository.ProductStats, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE status = 'ACTIVE'),
	    COUNT(*) FILTER (WHERE stock <= min_stock),
	    COALESCE(SUM(stock * cost), 0)
	FROM products
	WHERE company_id = ANY($1)`

	var st repository.ProductStats
	err := r.q.QueryRow(ctx, query, companyIDs).Scan(&st.Total, &st.Active, &st.LowStock, &st.InventoryValue)
	if err != nil {
		return st, fmt.Errorf("analytics.ProductStats: %w", err)
	}
	return st, nil
}

// MonthlyFinance ingresos PAID y gastos no cancelados agrupados por mes desde since.
// Los meses se cortan en la zona horaria de since. Los meses sin movimientos
// no aparecen; el caso de uso los rellena.
func (r *AnalyticsRepo) MonthlyFinance(ctx context.Context, companyIDs []string, since time.Time) ([]repository.MonthlyFinance, error) {
	const query = `
	WITH inc AS (
	    SELECT date_trunc('month', date, $3) AS month, SUM(amount) AS total
	    FROM incomes
	    WHERE company_id = ANY($1) AND date >= $2 AND status = 'PAID'
	    GROUP BY 1
	), exp AS (
	    SELECT date_trunc('month', date, $3) AS month, SUM(amount) AS total
	    FROM expenses
	    WHERE company_id = ANY($1) AND date >= $2 AND status <> 'CANCELLED'
	    GROUP BY 1
	)
	SELECT
	    COALESCE(inc.month, exp.month) AS month,
	    COALESCE(inc.total, 0)         AS income,
	    COALESCE(exp.total, 0)         AS expenses
	FROM inc
	FULL OUTER JOIN exp ON exp.month = inc.month
	ORDER BY month`

	rows, err := r.q.Query(ctx, query, companyIDs, since, since.Location().String())
	if err != nil {
		return nil, fmt.Errorf("analytics.MonthlyFinance: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyFinance
	for rows.Next() {
		var row repository.MonthlyFinance
		if err := rows.Scan(&row.Month, &row.Income, &row.Expenses); err != nil {
			return nil, fmt.Errorf("analytics.MonthlyFinance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *AnalyticsRepo) statusCounts(ctx context.Context, op, query string, companyIDs []string) ([]repository.StatusCount, error) {
	rows, err := r.q.Query(ctx, query, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.StatusCount
	for rows.Next() {
		var row repository.StatusCount
		if err := rows.Scan(&row.Status, &row.Count, &row.Value); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
