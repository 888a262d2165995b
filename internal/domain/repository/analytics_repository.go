package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FinanceTotals agregado crudo de ingresos o gastos en un rango.
type FinanceTotals struct {
	Total         decimal.Decimal // ingresos: solo PAID; gastos: todo lo no cancelado
	Count         int
	PendingCount  int
	PendingAmount decimal.Decimal
}

// StatusCount conteo por valor de estado/etapa, con suma de valor cuando aplica.
type StatusCount struct {
	Status string
	Count  int
	Value  decimal.Decimal
}

// ActivityStats contadores de actividades.
type ActivityStats struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int
}

// ProductStats contadores de inventario.
type ProductStats struct {
	Total          int
	Active         int
	LowStock       int
	InventoryValue decimal.Decimal // Σ stock × cost
}

// MonthlyFinance fila del rollup mensual.
type MonthlyFinance struct {
	Month    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para resúmenes y dashboard.
// Las implementaciones son read-only. Rango semiabierto [from, to).
type AnalyticsRepository interface {
	IncomeTotals(ctx context.Context, companyIDs []string, from, to time.Time) (FinanceTotals, error)
	ExpenseTotals(ctx context.Context, companyIDs []string, from, to time.Time) (FinanceTotals, error)
	ClientsByStatus(ctx context.Context, companyIDs []string) ([]StatusCount, error)
	ClientsCreated(ctx context.Context, companyIDs []string, from, to time.Time) (int, error)
	OpportunitiesByStage(ctx context.Context, companyIDs []string) ([]StatusCount, error)
	ActivityStats(ctx context.Context, companyIDs []string, now time.Time) (ActivityStats, error)
	TicketsByStatus(ctx context.Context, companyIDs []string) ([]StatusCount, error)
	UrgentOpenTickets(ctx context.Context, companyIDs []string) (int, error)
	ProductStats(ctx context.Context, companyIDs []string) (ProductStats, error)
	// MonthlyFinance agrupa por mes, en la zona horaria de since, desde since (inclusive).
	MonthlyFinance(ctx context.Context, companyIDs []string, since time.Time) ([]MonthlyFinance, error)
}
