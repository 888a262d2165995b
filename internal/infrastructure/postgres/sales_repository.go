package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var (
	_ repository.ActivityRepository    = (*ActivityRepo)(nil)
	_ repository.OpportunityRepository = (*OpportunityRepo)(nil)
	_ repository.ContractRepository    = (*ContractRepo)(nil)
)

// ── Actividades ───────────────────────────────────────────────────────────────

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador de persistencia para actividades.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

const activityColumns = `id, company_id, client_id, type, title, description, due_date, completed, completed_at, assigned_to, created_at, updated_at`

// status acepta PENDING o COMPLETED; la tabla solo guarda el booleano.
var activityFilter = filterColumns{
	status: "(CASE WHEN completed THEN 'COMPLETED' ELSE 'PENDING' END)",
	typ:    "type",
	date:   "due_date",
	search: []string{"title", "description"},
}

// Create persiste una nueva actividad.
func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CompanyID, a.ClientID, a.Type, a.Title, a.Description, a.DueDate,
		a.Completed, a.CompletedAt, a.AssignedTo, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert activity", err)
	}
	return nil
}

// GetByID obtiene una actividad por ID.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	a, err := scanActivity(r.q.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// Update actualiza una actividad.
func (r *ActivityRepo) Update(ctx context.Context, a *entity.Activity) error {
	query := `
		UPDATE activities SET client_id = $2, type = $3, title = $4, description = $5, due_date = $6,
			completed = $7, completed_at = $8, assigned_to = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.ClientID, a.Type, a.Title, a.Description, a.DueDate,
		a.Completed, a.CompletedAt, a.AssignedTo, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("update activity", err)
	}
	return affected(cmd)
}

// Delete elimina una actividad.
func (r *ActivityRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return affected(cmd)
}

// List lista actividades por fecha de vencimiento.
func (r *ActivityRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Activity, error) {
	where, args := buildWhere(f, activityFilter)
	query, args := paginate(`SELECT `+activityColumns+` FROM activities`+where+` ORDER BY due_date`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	list, err := collect(rows, scanActivity)
	if err != nil {
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	return list, nil
}

func scanActivity(row pgxScanner) (*entity.Activity, error) {
	var a entity.Activity
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.ClientID, &a.Type, &a.Title, &a.Description, &a.DueDate,
		&a.Completed, &a.CompletedAt, &a.AssignedTo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ── Oportunidades ─────────────────────────────────────────────────────────────

// OpportunityRepo implementación del puerto OpportunityRepository sobre PostgreSQL.
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository construye el adaptador de persistencia para oportunidades.
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

const opportunityColumns = `id, company_id, client_id, title, value, stage, probability, expected_close_date, notes, created_at, updated_at`

var opportunityFilter = filterColumns{
	status: "stage",
	date:   "expected_close_date",
	search: []string{"title", "notes"},
}

// Create persiste una nueva oportunidad.
func (r *OpportunityRepo) Create(ctx context.Context, o *entity.Opportunity) error {
	query := `
		INSERT INTO opportunities (` + opportunityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CompanyID, o.ClientID, o.Title, o.Value, o.Stage, o.Probability,
		o.ExpectedCloseDate, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert opportunity", err)
	}
	return nil
}

// GetByID obtiene una oportunidad por ID.
func (r *OpportunityRepo) GetByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	o, err := scanOpportunity(r.q.QueryRow(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return o, nil
}

// Update actualiza una oportunidad.
func (r *OpportunityRepo) Update(ctx context.Context, o *entity.Opportunity) error {
	query := `
		UPDATE opportunities SET client_id = $2, title = $3, value = $4, stage = $5, probability = $6,
			expected_close_date = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		o.ID, o.ClientID, o.Title, o.Value, o.Stage, o.Probability,
		o.ExpectedCloseDate, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return writeErr("update opportunity", err)
	}
	return affected(cmd)
}

// Delete elimina una oportunidad.
func (r *OpportunityRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	return affected(cmd)
}

// List lista oportunidades, más recientes primero.
func (r *OpportunityRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Opportunity, error) {
	where, args := buildWhere(f, opportunityFilter)
	query, args := paginate(`SELECT `+opportunityColumns+` FROM opportunities`+where+` ORDER BY created_at DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	list, err := collect(rows, scanOpportunity)
	if err != nil {
		return nil, fmt.Errorf("scan opportunity: %w", err)
	}
	return list, nil
}

func scanOpportunity(row pgxScanner) (*entity.Opportunity, error) {
	var o entity.Opportunity
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.ClientID, &o.Title, &o.Value, &o.Stage, &o.Probability,
		&o.ExpectedCloseDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ── Contratos ─────────────────────────────────────────────────────────────────

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, company_id, client_id, title, value, start_date, end_date, status, notes, created_at, updated_at`

var contractFilter = filterColumns{
	status: "status",
	date:   "start_date",
	search: []string{"title", "notes"},
}

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.ClientID, c.Title, c.Value, c.StartDate, c.EndDate,
		c.Status, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert contract", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	c, err := scanContract(r.q.QueryRow(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// Update actualiza un contrato.
func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) error {
	query := `
		UPDATE contracts SET client_id = $2, title = $3, value = $4, start_date = $5, end_date = $6,
			status = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.ClientID, c.Title, c.Value, c.StartDate, c.EndDate, c.Status, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update contract", err)
	}
	return affected(cmd)
}

// Delete elimina un contrato.
func (r *ContractRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return affected(cmd)
}

// List lista contratos por fecha de inicio, más recientes primero.
func (r *ContractRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Contract, error) {
	where, args := buildWhere(f, contractFilter)
	query, args := paginate(`SELECT `+contractColumns+` FROM contracts`+where+` ORDER BY start_date DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	list, err := collect(rows, scanContract)
	if err != nil {
		return nil, fmt.Errorf("scan contract: %w", err)
	}
	return list, nil
}

func scanContract(row pgxScanner) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.ClientID, &c.Title, &c.Value, &c.StartDate, &c.EndDate,
		&c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
