package entity

import "time"

// Prioridades de ticket.
const (
	TicketPriorityLow    = "LOW"
	TicketPriorityMedium = "MEDIUM"
	TicketPriorityHigh   = "HIGH"
	TicketPriorityUrgent = "URGENT"
)

// Estados de ticket.
const (
	TicketStatusOpen       = "OPEN"
	TicketStatusInProgress = "IN_PROGRESS"
	TicketStatusResolved   = "RESOLVED"
	TicketStatusClosed     = "CLOSED"
)

// Ticket solicitud de soporte de un cliente.
type Ticket struct {
	ID          string
	CompanyID   string
	ClientID    *string
	Subject     string
	Description string
	Priority    string
	Status      string
	AssignedTo  *string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
