// Package analytics contiene los casos de uso de resúmenes por recurso y el
// dashboard consolidado.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Period rango evaluado y su ventana de comparación, ambos semiabiertos.
type Period struct {
	From         time.Time
	To           time.Time
	PreviousFrom time.Time
	PreviousTo   time.Time
}

// ResolvePeriod interpreta from/to de la consulta. Por defecto: inicio del mes en curso hasta now.
// El período anterior es la ventana de igual duración inmediatamente antes de From.
func ResolvePeriod(q dto.ListQuery, now time.Time) (Period, error) {
	from, to, err := q.Range()
	if err != nil {
		return Period{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p := Period{
		From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		To:   now,
	}
	if to != nil {
		p.To = *to
		if from == nil {
			p.From = time.Date(p.To.Year(), p.To.Month(), 1, 0, 0, 0, 0, p.To.Location())
		}
	}
	if from != nil {
		p.From = *from
	}
	if !p.To.After(p.From) {
		return Period{}, fmt.Errorf("%w: to debe ser posterior a from", domain.ErrInvalidInput)
	}
	length := p.To.Sub(p.From)
	p.PreviousTo = p.From
	p.PreviousFrom = p.From.Add(-length)
	return p, nil
}

// DTO convierte el período a su forma de respuesta.
func (p Period) DTO() dto.PeriodDTO {
	return dto.PeriodDTO{
		From:         p.From,
		To:           p.To,
		PreviousFrom: p.PreviousFrom,
		PreviousTo:   p.PreviousTo,
	}
}

// Growth variación porcentual redondeada a 2 decimales.
// Con previous en cero: 0 si current también es cero, 100 si current es positivo.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}
