package entity

import "time"

// Company representa una organización/tenant del sistema.
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT
	Address   string
	Phone     string
	Email     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles de membresía. Se almacenan y devuelven, pero la autorización solo exige que exista la fila.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleUser       = "USER"
)

// UserCompany fila de membresía usuario-empresa. PK (UserID, CompanyID).
type UserCompany struct {
	UserID    string
	CompanyID string
	Role      string
	CreatedAt time.Time
}

// CompanyMember membresía con los datos del usuario, para listados.
type CompanyMember struct {
	UserCompany
	Email string
	Name  string
}
