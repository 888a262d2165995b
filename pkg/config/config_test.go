package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration_AceptaDias(t *testing.T) {
	d, err := parseDuration("7d")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, d)

	d, err = parseDuration("15m")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, d)

	_, err = parseDuration("siete")
	assert.Error(t, err)
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "20-M", cfg.RateLimit.Auth)
	assert.InDelta(t, 0.40, cfg.Dashboard.OpexRatio, 1e-9)
	assert.InDelta(t, 0.9, cfg.Dashboard.GrowthFactor, 1e-9)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_ZonaHoraria(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_TIMEZONE", "America/Bogota")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", cfg.App.Location.String())

	t.Setenv("APP_TIMEZONE", "")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cfg.App.Location)

	for _, tz := range []string{"Marte/Olympus", "Local"} {
		t.Setenv("APP_TIMEZONE", tz)
		_, err = Load()
		assert.ErrorContains(t, err, "APP_TIMEZONE")
	}
}

func TestLoad_ProduccionSinSecretos(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_SecretosIguales(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "mismo")
	t.Setenv("JWT_REFRESH_SECRET", "mismo")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "crm", Password: "p@ss", DBName: "crm", SSLMode: "disable"}
	assert.Equal(t, "postgres://crm:p%40ss@db:5432/crm?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
