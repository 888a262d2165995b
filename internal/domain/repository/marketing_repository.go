package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CampaignRepository puerto de persistencia para campañas de marketing.
type CampaignRepository interface {
	Create(ctx context.Context, c *entity.MarketingCampaign) error
	GetByID(ctx context.Context, id string) (*entity.MarketingCampaign, error)
	Update(ctx context.Context, c *entity.MarketingCampaign) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.MarketingCampaign, error)
}

// TicketRepository puerto de persistencia para tickets de soporte.
type TicketRepository interface {
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	Update(ctx context.Context, t *entity.Ticket) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Ticket, error)
}
