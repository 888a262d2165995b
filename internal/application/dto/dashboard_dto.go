package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Consolida los resúmenes de cada recurso para las empresas del usuario.
type DashboardSummaryDTO struct {
	Incomes       IncomeSummaryDTO      `json:"incomes"`
	Expenses      ExpenseSummaryDTO     `json:"expenses"`
	Clients       ClientSummaryDTO      `json:"clients"`
	Opportunities OpportunitySummaryDTO `json:"opportunities"`
	Activities    ActivitySummaryDTO    `json:"activities"`
	Tickets       TicketSummaryDTO      `json:"tickets"`
	Products      ProductSummaryDTO     `json:"products"`

	NetProfit decimal.Decimal `json:"netProfit"` // ingresos - gastos del período

	// Indicadores estimados: factores fijos sobre el ingreso, no hay consulta detrás
	OperationalExpenses decimal.Decimal `json:"operationalExpenses"`
	CompanyGrowth       decimal.Decimal `json:"companyGrowth"`

	// Últimos 6 meses, del más antiguo al actual
	Monthly []MonthlyFinanceDTO `json:"monthly"`
}

// MonthlyFinanceDTO punto de la serie mensual.
type MonthlyFinanceDTO struct {
	Month    string          `json:"month"` // YYYY-MM
	Label    string          `json:"label"` // ej: "Feb 2026"
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
