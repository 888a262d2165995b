package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de actividad comercial.
const (
	ActivityTypeCall    = "CALL"
	ActivityTypeMeeting = "MEETING"
	ActivityTypeQuote   = "QUOTE"
	ActivityTypeOther   = "OTHER"
)

// Activity tarea o interacción agendada con un cliente.
type Activity struct {
	ID          string
	CompanyID   string
	ClientID    *string
	Type        string
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
	CompletedAt *time.Time
	AssignedTo  *string // user id
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Etapas del embudo de oportunidades.
const (
	StageProspeccion  = "PROSPECCION"
	StageCalificacion = "CALIFICACION"
	StagePropuesta    = "PROPUESTA"
	StageNegociacion  = "NEGOCIACION"
	StageGanada       = "GANADA"
	StagePerdida      = "PERDIDA"
)

// OpportunityStages valores válidos de etapa, en orden de embudo.
var OpportunityStages = []string{
	StageProspeccion, StageCalificacion, StagePropuesta, StageNegociacion, StageGanada, StagePerdida,
}

// IsOpenStage indica si la etapa sigue en el pipeline (no ganada ni perdida).
func IsOpenStage(stage string) bool {
	return stage != StageGanada && stage != StagePerdida
}

// Opportunity negocio potencial con valor estimado.
type Opportunity struct {
	ID                string
	CompanyID         string
	ClientID          *string
	Title             string
	Value             decimal.Decimal
	Stage             string
	Probability       int // 0..100
	ExpectedCloseDate *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Estados de cotización.
const (
	QuoteStatusDraft    = "DRAFT"
	QuoteStatusSent     = "SENT"
	QuoteStatusAccepted = "ACCEPTED"
	QuoteStatusRejected = "REJECTED"
	QuoteStatusExpired  = "EXPIRED"
)

// Quote cabecera de cotización. Los totales se calculan al crear y no se recalculan.
type Quote struct {
	ID         string
	CompanyID  string
	ClientID   *string
	Number     string
	Title      string
	Status     string
	ValidUntil *time.Time
	TaxApplies bool
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Notes      string
	Items      []QuoteItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuoteItem línea de cotización. DiscountRate y TaxRate en porcentaje (19 = 19%).
type QuoteItem struct {
	ID           string
	QuoteID      string
	ProductID    *string
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	DiscountRate decimal.Decimal
	TaxRate      decimal.Decimal
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// Estados de contrato.
const (
	ContractStatusDraft     = "DRAFT"
	ContractStatusActive    = "ACTIVE"
	ContractStatusExpired   = "EXPIRED"
	ContractStatusCancelled = "CANCELLED"
)

// Contract contrato firmado o en borrador con un cliente.
type Contract struct {
	ID        string
	CompanyID string
	ClientID  *string
	Title     string
	Value     decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
