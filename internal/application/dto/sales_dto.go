package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateActivityRequest entrada para agendar una actividad.
type CreateActivityRequest struct {
	CompanyID   string    `json:"companyId" validate:"required,uuid"`
	ClientID    *string   `json:"clientId" validate:"omitempty,uuid"`
	Type        string    `json:"type" validate:"required,oneof=CALL MEETING QUOTE OTHER"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	AssignedTo  *string   `json:"assignedTo" validate:"omitempty,uuid"`
}

// UpdateActivityRequest entrada para actualizar una actividad.
type UpdateActivityRequest struct {
	ClientID    *string    `json:"clientId" validate:"omitempty,uuid"`
	Type        *string    `json:"type" validate:"omitempty,oneof=CALL MEETING QUOTE OTHER"`
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
	AssignedTo  *string    `json:"assignedTo" validate:"omitempty,uuid"`
}

// ActivityResponse salida de una actividad.
type ActivityResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	ClientID    *string    `json:"clientId"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	AssignedTo  *string    `json:"assignedTo"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateOpportunityRequest entrada para crear una oportunidad.
type CreateOpportunityRequest struct {
	CompanyID         string          `json:"companyId" validate:"required,uuid"`
	ClientID          *string         `json:"clientId" validate:"omitempty,uuid"`
	Title             string          `json:"title" validate:"required,max=200"`
	Value             decimal.Decimal `json:"value"`
	Stage             string          `json:"stage" validate:"omitempty,oneof=PROSPECCION CALIFICACION PROPUESTA NEGOCIACION GANADA PERDIDA"`
	Probability       int             `json:"probability" validate:"min=0,max=100"`
	ExpectedCloseDate *time.Time      `json:"expectedCloseDate"`
	Notes             string          `json:"notes"`
}

// UpdateOpportunityRequest entrada para actualizar una oportunidad.
type UpdateOpportunityRequest struct {
	ClientID          *string          `json:"clientId" validate:"omitempty,uuid"`
	Title             *string          `json:"title" validate:"omitempty,max=200"`
	Value             *decimal.Decimal `json:"value"`
	Stage             *string          `json:"stage" validate:"omitempty,oneof=PROSPECCION CALIFICACION PROPUESTA NEGOCIACION GANADA PERDIDA"`
	Probability       *int             `json:"probability" validate:"omitempty,min=0,max=100"`
	ExpectedCloseDate *time.Time       `json:"expectedCloseDate"`
	Notes             *string          `json:"notes"`
}

// OpportunityStageRequest cambio de etapa.
type OpportunityStageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=PROSPECCION CALIFICACION PROPUESTA NEGOCIACION GANADA PERDIDA"`
}

// OpportunityResponse salida de una oportunidad.
type OpportunityResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"companyId"`
	ClientID          *string         `json:"clientId"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Stage             string          `json:"stage"`
	Probability       int             `json:"probability"`
	ExpectedCloseDate *time.Time      `json:"expectedCloseDate"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// QuoteItemRequest línea de cotización. Tasas en porcentaje.
type QuoteItemRequest struct {
	ProductID    *string         `json:"productId" validate:"omitempty,uuid"`
	Description  string          `json:"description" validate:"required,max=500"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	TaxRate      decimal.Decimal `json:"taxRate"`
}

// CreateQuoteRequest entrada para crear una cotización. Los totales se calculan en el servidor.
type CreateQuoteRequest struct {
	CompanyID  string             `json:"companyId" validate:"required,uuid"`
	ClientID   *string            `json:"clientId" validate:"omitempty,uuid"`
	Title      string             `json:"title" validate:"required,max=200"`
	ValidUntil *time.Time         `json:"validUntil"`
	TaxApplies bool               `json:"taxApplies"`
	Notes      string             `json:"notes"`
	Items      []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateQuoteRequest edita solo campos de cabecera; los totales no se recalculan.
type UpdateQuoteRequest struct {
	ClientID   *string    `json:"clientId" validate:"omitempty,uuid"`
	Title      *string    `json:"title" validate:"omitempty,max=200"`
	Status     *string    `json:"status" validate:"omitempty,oneof=DRAFT SENT ACCEPTED REJECTED EXPIRED"`
	ValidUntil *time.Time `json:"validUntil"`
	Notes      *string    `json:"notes"`
}

// QuoteStatusRequest cambio de estado.
type QuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SENT ACCEPTED REJECTED EXPIRED"`
}

// QuoteItemResponse salida de una línea.
type QuoteItemResponse struct {
	ID           string          `json:"id"`
	ProductID    *string         `json:"productId"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
}

// QuoteResponse salida de una cotización. Items se omite en listados.
type QuoteResponse struct {
	ID         string              `json:"id"`
	CompanyID  string              `json:"companyId"`
	ClientID   *string             `json:"clientId"`
	Number     string              `json:"number"`
	Title      string              `json:"title"`
	Status     string              `json:"status"`
	ValidUntil *time.Time          `json:"validUntil"`
	TaxApplies bool                `json:"taxApplies"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Discount   decimal.Decimal     `json:"discount"`
	Tax        decimal.Decimal     `json:"tax"`
	Total      decimal.Decimal     `json:"total"`
	Notes      string              `json:"notes"`
	Items      []QuoteItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// CreateContractRequest entrada para crear un contrato.
type CreateContractRequest struct {
	CompanyID string          `json:"companyId" validate:"required,uuid"`
	ClientID  *string         `json:"clientId" validate:"omitempty,uuid"`
	Title     string          `json:"title" validate:"required,max=200"`
	Value     decimal.Decimal `json:"value"`
	StartDate time.Time       `json:"startDate" validate:"required"`
	EndDate   *time.Time      `json:"endDate"`
	Status    string          `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE EXPIRED CANCELLED"`
	Notes     string          `json:"notes"`
}

// UpdateContractRequest entrada para actualizar un contrato.
type UpdateContractRequest struct {
	ClientID  *string          `json:"clientId" validate:"omitempty,uuid"`
	Title     *string          `json:"title" validate:"omitempty,max=200"`
	Value     *decimal.Decimal `json:"value"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
	Status    *string          `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE EXPIRED CANCELLED"`
	Notes     *string          `json:"notes"`
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"companyId"`
	ClientID  *string         `json:"clientId"`
	Title     string          `json:"title"`
	Value     decimal.Decimal `json:"value"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
