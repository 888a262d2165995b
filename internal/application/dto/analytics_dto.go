package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodDTO período evaluado y su período de comparación.
type PeriodDTO struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	PreviousFrom time.Time `json:"previousFrom"`
	PreviousTo   time.Time `json:"previousTo"`
}

// IncomeSummaryDTO respuesta de GET /api/incomes/summary.
type IncomeSummaryDTO struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`    // PAID en el período
	PreviousIncome   decimal.Decimal `json:"previousIncome"` // PAID en el período anterior
	GrowthPercentage decimal.Decimal `json:"growthPercentage"`
	PendingCount     int             `json:"pendingCount"`
	PendingAmount    decimal.Decimal `json:"pendingAmount"`
	Count            int             `json:"count"`
	Period           PeriodDTO       `json:"period"`
}

// ExpenseSummaryDTO respuesta de GET /api/expenses/summary.
type ExpenseSummaryDTO struct {
	TotalExpenses    decimal.Decimal `json:"totalExpenses"` // todo lo no cancelado en el período
	PreviousExpenses decimal.Decimal `json:"previousExpenses"`
	GrowthPercentage decimal.Decimal `json:"growthPercentage"`
	PendingCount     int             `json:"pendingCount"`
	PendingAmount    decimal.Decimal `json:"pendingAmount"`
	Count            int             `json:"count"`
	Period           PeriodDTO       `json:"period"`
}

// ClientSummaryDTO respuesta de GET /api/clients/summary.
type ClientSummaryDTO struct {
	Total            int             `json:"total"`
	NewInPeriod      int             `json:"newInPeriod"`
	GrowthPercentage decimal.Decimal `json:"growthPercentage"`
	ByStatus         map[string]int  `json:"byStatus"`
	Period           PeriodDTO       `json:"period"`
}

// StageSummaryDTO conteo y valor de una etapa.
type StageSummaryDTO struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// OpportunitySummaryDTO respuesta de GET /api/opportunities/summary.
type OpportunitySummaryDTO struct {
	Total         int                        `json:"total"`
	PipelineValue decimal.Decimal            `json:"pipelineValue"` // etapas abiertas
	WonValue      decimal.Decimal            `json:"wonValue"`
	WonCount      int                        `json:"wonCount"`
	LostCount     int                        `json:"lostCount"`
	ByStage       map[string]StageSummaryDTO `json:"byStage"`
}

// ActivitySummaryDTO respuesta de GET /api/activities/summary.
type ActivitySummaryDTO struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

// TicketSummaryDTO respuesta de GET /api/tickets/summary.
type TicketSummaryDTO struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
	Urgent     int `json:"urgent"` // URGENT sin resolver ni cerrar
}

// ProductSummaryDTO respuesta de GET /api/products/summary.
type ProductSummaryDTO struct {
	Total          int             `json:"total"`
	Active         int             `json:"active"`
	LowStock       int             `json:"lowStock"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
}
