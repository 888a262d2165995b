package dto

import "time"

// CreateDocumentRequest metadatos de un documento ya almacenado.
type CreateDocumentRequest struct {
	CompanyID string  `json:"companyId" validate:"required,uuid"`
	ClientID  *string `json:"clientId" validate:"omitempty,uuid"`
	Name      string  `json:"name" validate:"required,max=255"`
	Type      string  `json:"type" validate:"required,oneof=CONTRACT INVOICE PROPOSAL REPORT OTHER"`
	URL       string  `json:"url" validate:"required,url"`
	SizeBytes int64   `json:"sizeBytes" validate:"min=0"`
	MimeType  string  `json:"mimeType" validate:"max=100"`
}

// UpdateDocumentRequest entrada para actualizar metadatos.
type UpdateDocumentRequest struct {
	ClientID  *string `json:"clientId" validate:"omitempty,uuid"`
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Type      *string `json:"type" validate:"omitempty,oneof=CONTRACT INVOICE PROPOSAL REPORT OTHER"`
	URL       *string `json:"url" validate:"omitempty,url"`
	SizeBytes *int64  `json:"sizeBytes" validate:"omitempty,min=0"`
	MimeType  *string `json:"mimeType" validate:"omitempty,max=100"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	ClientID  *string   `json:"clientId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	SizeBytes int64     `json:"sizeBytes"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
