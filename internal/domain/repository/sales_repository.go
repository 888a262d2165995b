package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ActivityRepository puerto de persistencia para actividades.
type ActivityRepository interface {
	Create(ctx context.Context, a *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	Update(ctx context.Context, a *entity.Activity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Activity, error)
}

// OpportunityRepository puerto de persistencia para oportunidades.
type OpportunityRepository interface {
	Create(ctx context.Context, o *entity.Opportunity) error
	GetByID(ctx context.Context, id string) (*entity.Opportunity, error)
	Update(ctx context.Context, o *entity.Opportunity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Opportunity, error)
}

// QuoteRepository puerto de persistencia para cotizaciones.
// Create guarda cabecera e ítems; debe ejecutarse dentro de una transacción.
type QuoteRepository interface {
	Create(ctx context.Context, q *entity.Quote) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	UpdateHeader(ctx context.Context, q *entity.Quote) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Quote, error)
	NextNumber(ctx context.Context, companyID string) (string, error)
}

// ContractRepository puerto de persistencia para contratos.
type ContractRepository interface {
	Create(ctx context.Context, c *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	Update(ctx context.Context, c *entity.Contract) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Contract, error)
}
