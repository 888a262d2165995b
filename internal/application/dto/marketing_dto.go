package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCampaignRequest entrada para crear una campaña.
type CreateCampaignRequest struct {
	CompanyID   string          `json:"companyId" validate:"required,uuid"`
	Name        string          `json:"name" validate:"required,max=200"`
	Type        string          `json:"type" validate:"required,oneof=EMAIL SOCIAL EVENT ADS OTHER"`
	Status      string          `json:"status" validate:"omitempty,oneof=PLANIFICADA ACTIVA PAUSADA FINALIZADA"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	StartDate   time.Time       `json:"startDate" validate:"required"`
	EndDate     *time.Time      `json:"endDate"`
	Leads       int             `json:"leads" validate:"min=0"`
	Conversions int             `json:"conversions" validate:"min=0"`
}

// UpdateCampaignRequest entrada para actualizar una campaña.
type UpdateCampaignRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=200"`
	Type        *string          `json:"type" validate:"omitempty,oneof=EMAIL SOCIAL EVENT ADS OTHER"`
	Status      *string          `json:"status" validate:"omitempty,oneof=PLANIFICADA ACTIVA PAUSADA FINALIZADA"`
	Budget      *decimal.Decimal `json:"budget"`
	Spent       *decimal.Decimal `json:"spent"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Leads       *int             `json:"leads" validate:"omitempty,min=0"`
	Conversions *int             `json:"conversions" validate:"omitempty,min=0"`
}

// CampaignResponse salida de una campaña.
type CampaignResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Leads       int             `json:"leads"`
	Conversions int             `json:"conversions"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateTicketRequest entrada para abrir un ticket.
type CreateTicketRequest struct {
	CompanyID   string  `json:"companyId" validate:"required,uuid"`
	ClientID    *string `json:"clientId" validate:"omitempty,uuid"`
	Subject     string  `json:"subject" validate:"required,max=200"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	AssignedTo  *string `json:"assignedTo" validate:"omitempty,uuid"`
}

// UpdateTicketRequest entrada para actualizar un ticket.
type UpdateTicketRequest struct {
	ClientID    *string `json:"clientId" validate:"omitempty,uuid"`
	Subject     *string `json:"subject" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status      *string `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	AssignedTo  *string `json:"assignedTo" validate:"omitempty,uuid"`
}

// TicketStatusRequest cambio de estado.
type TicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	ClientID    *string    `json:"clientId"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  *string    `json:"assignedTo"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
