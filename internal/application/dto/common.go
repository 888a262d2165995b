package dto

import (
	"fmt"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP: {"success": false, "error": "<CODE>", "message": "..."}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse sobre de respuesta exitosa.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// PageRequest paginación por número de página.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto (1/20) y el máximo de 100.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset desplazamiento SQL de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListQuery filtros de listado comunes (query string).
type ListQuery struct {
	CompanyID string `query:"companyId"`
	Status    string `query:"status"`
	Stage     string `query:"stage"`
	Type      string `query:"type"`
	From      string `query:"from"`
	To        string `query:"to"`
	Search    string `query:"search"`
}

// Range interpreta from/to. Acepta YYYY-MM-DD o RFC3339; un "to" de solo fecha incluye ese día completo.
// Los límites devueltos forman un rango semiabierto [from, to).
func (q ListQuery) Range() (from, to *time.Time, err error) {
	if q.From != "" {
		t, _, err := parseDate(q.From)
		if err != nil {
			return nil, nil, fmt.Errorf("from: %w", err)
		}
		from = &t
	}
	if q.To != "" {
		t, dateOnly, err := parseDate(q.To)
		if err != nil {
			return nil, nil, fmt.Errorf("to: %w", err)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1)
		}
		to = &t
	}
	return from, to, nil
}

func parseDate(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("fecha inválida %q", s)
	}
	return t, false, nil
}
