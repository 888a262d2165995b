package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de campaña.
const (
	CampaignTypeEmail  = "EMAIL"
	CampaignTypeSocial = "SOCIAL"
	CampaignTypeEvent  = "EVENT"
	CampaignTypeAds    = "ADS"
	CampaignTypeOther  = "OTHER"
)

// Estados de campaña.
const (
	CampaignStatusPlanificada = "PLANIFICADA"
	CampaignStatusActiva      = "ACTIVA"
	CampaignStatusPausada     = "PAUSADA"
	CampaignStatusFinalizada  = "FINALIZADA"
)

// MarketingCampaign campaña de marketing con presupuesto y resultados.
type MarketingCampaign struct {
	ID          string
	CompanyID   string
	Name        string
	Type        string
	Status      string
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	Leads       int
	Conversions int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
