package entity

import "time"

// Estados del ciclo comercial de un cliente. Cualquier transición es válida.
const (
	ClientStatusProspecto   = "PROSPECTO"
	ClientStatusPropuesta   = "PROPUESTA"
	ClientStatusNegociacion = "NEGOCIACION"
	ClientStatusCalificado  = "CALIFICADO"
	ClientStatusActivo      = "ACTIVO"
	ClientStatusInactivo    = "INACTIVO"
)

// ClientStatuses valores válidos de estado, en orden de embudo.
var ClientStatuses = []string{
	ClientStatusProspecto, ClientStatusPropuesta, ClientStatusNegociacion,
	ClientStatusCalificado, ClientStatusActivo, ClientStatusInactivo,
}

// Client cliente o prospecto de una empresa.
type Client struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	TaxID     string
	Address   string
	Status    string
	Source    string // origen del lead (web, referido, evento...)
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
