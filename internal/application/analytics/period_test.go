package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

func TestResolvePeriod_PorDefectoMesEnCurso(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	p, err := ResolvePeriod(dto.ListQuery{}, now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, now, p.To)
	assert.Equal(t, p.From, p.PreviousTo)
	assert.Equal(t, p.To.Sub(p.From), p.PreviousTo.Sub(p.PreviousFrom))
}

func TestResolvePeriod_RangoExplicito(t *testing.T) {
	p, err := ResolvePeriod(dto.ListQuery{From: "2026-02-01", To: "2026-02-28"}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), p.To)
	assert.Equal(t, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), p.PreviousFrom)
	assert.Equal(t, p.From, p.PreviousTo)
}

func TestResolvePeriod_RangoInvertido(t *testing.T) {
	_, err := ResolvePeriod(dto.ListQuery{From: "2026-03-10", To: "2026-03-01"}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolvePeriod_FechaInvalida(t *testing.T) {
	_, err := ResolvePeriod(dto.ListQuery{From: "10/03/2026"}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGrowth(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{"ambos cero", "0", "0", "0"},
		{"anterior cero", "500", "0", "100"},
		{"crecimiento", "150", "100", "50"},
		{"caída", "75", "100", "-25"},
		{"redondeo", "200", "300", "-33.33"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Growth(decimal.RequireFromString(tc.current), decimal.RequireFromString(tc.previous))
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}
}
