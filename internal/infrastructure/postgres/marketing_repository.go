package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var (
	_ repository.CampaignRepository = (*CampaignRepo)(nil)
	_ repository.TicketRepository   = (*TicketRepo)(nil)
)

// CampaignRepo campañas de marketing sobre PostgreSQL.
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador de persistencia para campañas.
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

const campaignColumns = `id, company_id, name, type, status, budget, spent, start_date, end_date, leads, conversions, created_at, updated_at`

var campaignFilter = filterColumns{
	status: "status",
	typ:    "type",
	date:   "start_date",
	search: []string{"name"},
}

// Create persiste una nueva campaña.
func (r *CampaignRepo) Create(ctx context.Context, c *entity.MarketingCampaign) error {
	query := `
		INSERT INTO marketing_campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.Type, c.Status, c.Budget, c.Spent, c.StartDate, c.EndDate,
		c.Leads, c.Conversions, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert campaign", err)
	}
	return nil
}

// GetByID obtiene una campaña por ID.
func (r *CampaignRepo) GetByID(ctx context.Context, id string) (*entity.MarketingCampaign, error) {
	c, err := scanCampaign(r.q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM marketing_campaigns WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

// Update actualiza una campaña.
func (r *CampaignRepo) Update(ctx context.Context, c *entity.MarketingCampaign) error {
	query := `
		UPDATE marketing_campaigns SET name = $2, type = $3, status = $4, budget = $5, spent = $6,
			start_date = $7, end_date = $8, leads = $9, conversions = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Type, c.Status, c.Budget, c.Spent, c.StartDate, c.EndDate,
		c.Leads, c.Conversions, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update campaign", err)
	}
	return affected(cmd)
}

// Delete elimina una campaña.
func (r *CampaignRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM marketing_campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return affected(cmd)
}

// List lista campañas por fecha de inicio, más recientes primero.
func (r *CampaignRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.MarketingCampaign, error) {
	where, args := buildWhere(f, campaignFilter)
	query, args := paginate(`SELECT `+campaignColumns+` FROM marketing_campaigns`+where+` ORDER BY start_date DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	list, err := collect(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("scan campaign: %w", err)
	}
	return list, nil
}

func scanCampaign(row pgxScanner) (*entity.MarketingCampaign, error) {
	var c entity.MarketingCampaign
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Type, &c.Status, &c.Budget, &c.Spent, &c.StartDate, &c.EndDate,
		&c.Leads, &c.Conversions, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// TicketRepo tickets de soporte sobre PostgreSQL.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador de persistencia para tickets.
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `id, company_id, client_id, subject, description, priority, status, assigned_to, resolved_at, created_at, updated_at`

// type filtra por prioridad.
var ticketFilter = filterColumns{
	status: "status",
	typ:    "priority",
	date:   "created_at",
	search: []string{"subject", "description"},
}

// Create persiste un nuevo ticket.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.CompanyID, t.ClientID, t.Subject, t.Description, t.Priority, t.Status,
		t.AssignedTo, t.ResolvedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert ticket", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// Update actualiza un ticket.
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets SET client_id = $2, subject = $3, description = $4, priority = $5, status = $6,
			assigned_to = $7, resolved_at = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		t.ID, t.ClientID, t.Subject, t.Description, t.Priority, t.Status,
		t.AssignedTo, t.ResolvedAt, t.UpdatedAt,
	)
	if err != nil {
		return writeErr("update ticket", err)
	}
	return affected(cmd)
}

// Delete elimina un ticket.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return affected(cmd)
}

// List lista tickets, más recientes primero.
func (r *TicketRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Ticket, error) {
	where, args := buildWhere(f, ticketFilter)
	query, args := paginate(`SELECT `+ticketColumns+` FROM tickets`+where+` ORDER BY created_at DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	list, err := collect(rows, scanTicket)
	if err != nil {
		return nil, fmt.Errorf("scan ticket: %w", err)
	}
	return list, nil
}

func scanTicket(row pgxScanner) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.ClientID, &t.Subject, &t.Description, &t.Priority, &t.Status,
		&t.AssignedTo, &t.ResolvedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
