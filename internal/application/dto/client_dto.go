package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	CompanyID string `json:"companyId" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"max=50"`
	TaxID     string `json:"taxId" validate:"max=50"`
	Address   string `json:"address"`
	Status    string `json:"status" validate:"omitempty,oneof=PROSPECTO PROPUESTA NEGOCIACION CALIFICADO ACTIVO INACTIVO"`
	Source    string `json:"source" validate:"max=100"`
	Notes     string `json:"notes"`
}

// UpdateClientRequest entrada para actualizar un cliente. La empresa no se puede cambiar.
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	TaxID   *string `json:"taxId" validate:"omitempty,max=50"`
	Address *string `json:"address"`
	Status  *string `json:"status" validate:"omitempty,oneof=PROSPECTO PROPUESTA NEGOCIACION CALIFICADO ACTIVO INACTIVO"`
	Source  *string `json:"source" validate:"omitempty,max=100"`
	Notes   *string `json:"notes"`
}

// ClientStatusRequest cambio de estado del cliente.
type ClientStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PROSPECTO PROPUESTA NEGOCIACION CALIFICADO ACTIVO INACTIVO"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	TaxID     string    `json:"taxId"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
