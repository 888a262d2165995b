package entity

import "time"

// Tipos de documento.
const (
	DocumentTypeContract = "CONTRACT"
	DocumentTypeInvoice  = "INVOICE"
	DocumentTypeProposal = "PROPOSAL"
	DocumentTypeReport   = "REPORT"
	DocumentTypeOther    = "OTHER"
)

// Document metadatos de un archivo almacenado externamente (URL).
type Document struct {
	ID        string
	CompanyID string
	ClientID  *string
	Name      string
	Type      string
	URL       string
	SizeBytes int64
	MimeType  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
