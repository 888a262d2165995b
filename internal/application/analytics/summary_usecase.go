package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// SummaryUseCase calcula los contadores de resumen de cada recurso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) sobre las empresas
// visibles para el usuario según access.Guard.
type SummaryUseCase struct {
	repo  repository.AnalyticsRepository
	guard *access.Guard
	now   func() time.Time
}

// NewSummaryUseCase construye el caso de uso. Los períodos y meses se calculan en loc.
func NewSummaryUseCase(repo repository.AnalyticsRepository, guard *access.Guard, loc *time.Location) *SummaryUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SummaryUseCase{repo: repo, guard: guard, now: func() time.Time { return time.Now().In(loc) }}
}

// Incomes resumen de ingresos del período.
func (uc *SummaryUseCase) Incomes(ctx context.Context, userID string, q dto.ListQuery) (*dto.IncomeSummaryDTO, error) {
	ids, p, err := uc.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return uc.incomes(ctx, ids, p)
}

// Expenses resumen de gastos del período.
func (uc *SummaryUseCase) Expenses(ctx context.Context, userID string, q dto.ListQuery) (*dto.ExpenseSummaryDTO, error) {
	ids, p, err := uc.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return uc.expenses(ctx, ids, p)
}

// Clients resumen de clientes: totales, altas del período y distribución por estado.
func (uc *SummaryUseCase) Clients(ctx context.Context, userID string, q dto.ListQuery) (*dto.ClientSummaryDTO, error) {
	ids, p, err := uc.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return uc.clients(ctx, ids, p)
}

// Opportunities resumen del pipeline comercial.
func (uc *SummaryUseCase) Opportunities(ctx context.Context, userID string, q dto.ListQuery) (*dto.OpportunitySummaryDTO, error) {
	ids, _, err := uc.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return uc.opportunities(ctx, ids)
}

// Activities contadores de actividades.
func (uc *SummaryUseCase) Activities(ctx context.Context, userID string, q dto.ListQuery) (*dto.ActivitySummaryDTO, error) {
	ids, _, err := uc.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return uc.activities(ctx, ids)
}

// Tickets contadores de tickets por estado.
func (uc *SummaryUseCase) Tickets(ctx context.Context, userID string, q dto.ListQuery) (*dto.TicketSummaryDTO, error) {
	ids, _, err := uc.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return uc.tickets(ctx, ids)
}

// Products contadores de catálogo e inventario.
func (uc *SummaryUseCase) Products(ctx context.Context, userID string, q dto.ListQuery) (*dto.ProductSummaryDTO, error) {
	ids, _, err := uc.scope(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return uc.products(ctx, ids)
}

func (uc *SummaryUseCase) scope(ctx context.Context, userID string, q dto.ListQuery) ([]string, Period, error) {
	p, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, Period{}, err
	}
	ids, err := uc.guard.Scope(ctx, userID, q.CompanyID)
	if err != nil {
		return nil, Period{}, err
	}
	return ids, p, nil
}

func (uc *SummaryUseCase) incomes(ctx context.Context, ids []string, p Period) (*dto.IncomeSummaryDTO, error) {
	out := &dto.IncomeSummaryDTO{
		TotalIncome:      decimal.Zero,
		PreviousIncome:   decimal.Zero,
		GrowthPercentage: decimal.Zero,
		PendingAmount:    decimal.Zero,
		Period:           p.DTO(),
	}
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := uc.repo.IncomeTotals(ctx, ids, p.From, p.To)
	if err != nil {
		return nil, fmt.Errorf("resumen ingresos: %w", err)
	}
	prev, err := uc.repo.IncomeTotals(ctx, ids, p.PreviousFrom, p.PreviousTo)
	if err != nil {
		return nil, fmt.Errorf("resumen ingresos período anterior: %w", err)
	}
	out.TotalIncome = cur.Total.Round(2)
	out.PreviousIncome = prev.Total.Round(2)
	out.GrowthPercentage = Growth(cur.Total, prev.Total)
	out.PendingCount = cur.PendingCount
	out.PendingAmount = cur.PendingAmount.Round(2)
	out.Count = cur.Count
	return out, nil
}

func (uc *SummaryUseCase) expenses(ctx context.Context, ids []string, p Period) (*dto.ExpenseSummaryDTO, error) {
	out := &dto.ExpenseSummaryDTO{
		TotalExpenses:    decimal.Zero,
		PreviousExpenses: decimal.Zero,
		GrowthPercentage: decimal.Zero,
		PendingAmount:    decimal.Zero,
		Period:           p.DTO(),
	}
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := uc.repo.ExpenseTotals(ctx, ids, p.From, p.To)
	if err != nil {
		return nil, fmt.Errorf("resumen gastos: %w", err)
	}
	prev, err := uc.repo.ExpenseTotals(ctx, ids, p.PreviousFrom, p.PreviousTo)
	if err != nil {
		return nil, fmt.Errorf("resumen gastos período anterior: %w", err)
	}
	out.TotalExpenses = cur.Total.Round(2)
	out.PreviousExpenses = prev.Total.Round(2)
	out.GrowthPercentage = Growth(cur.Total, prev.Total)
	out.PendingCount = cur.PendingCount
	out.PendingAmount = cur.PendingAmount.Round(2)
	out.Count = cur.Count
	return out, nil
}

func (uc *SummaryUseCase) clients(ctx context.Context, ids []string, p Period) (*dto.ClientSummaryDTO, error) {
	out := &dto.ClientSummaryDTO{
		GrowthPercentage: decimal.Zero,
		ByStatus:         make(map[string]int, len(entity.ClientStatuses)),
		Period:           p.DTO(),
	}
	for _, s := range entity.ClientStatuses {
		out.ByStatus[s] = 0
	}
	if len(ids) == 0 {
		return out, nil
	}
	counts, err := uc.repo.ClientsByStatus(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resumen clientes: %w", err)
	}
	for _, c := range counts {
		out.ByStatus[c.Status] += c.Count
		out.Total += c.Count
	}
	cur, err := uc.repo.ClientsCreated(ctx, ids, p.From, p.To)
	if err != nil {
		return nil, fmt.Errorf("resumen clientes nuevos: %w", err)
	}
	prev, err := uc.repo.ClientsCreated(ctx, ids, p.PreviousFrom, p.PreviousTo)
	if err != nil {
		return nil, fmt.Errorf("resumen clientes período anterior: %w", err)
	}
	out.NewInPeriod = cur
	out.GrowthPercentage = Growth(decimal.NewFromInt(int64(cur)), decimal.NewFromInt(int64(prev)))
	return out, nil
}

func (uc *SummaryUseCase) opportunities(ctx context.Context, ids []string) (*dto.OpportunitySummaryDTO, error) {
	out := &dto.OpportunitySummaryDTO{
		PipelineValue: decimal.Zero,
		WonValue:      decimal.Zero,
		ByStage:       make(map[string]dto.StageSummaryDTO, len(entity.OpportunityStages)),
	}
	for _, s := range entity.OpportunityStages {
		out.ByStage[s] = dto.StageSummaryDTO{Value: decimal.Zero}
	}
	if len(ids) == 0 {
		return out, nil
	}
	counts, err := uc.repo.OpportunitiesByStage(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resumen oportunidades: %w", err)
	}
	for _, c := range counts {
		st := out.ByStage[c.Status]
		st.Count += c.Count
		st.Value = st.Value.Add(c.Value)
		out.ByStage[c.Status] = st
		out.Total += c.Count
		switch {
		case c.Status == entity.StageGanada:
			out.WonCount += c.Count
			out.WonValue = out.WonValue.Add(c.Value)
		case c.Status == entity.StagePerdida:
			out.LostCount += c.Count
		case entity.IsOpenStage(c.Status):
			out.PipelineValue = out.PipelineValue.Add(c.Value)
		}
	}
	out.PipelineValue = out.PipelineValue.Round(2)
	out.WonValue = out.WonValue.Round(2)
	return out, nil
}

func (uc *SummaryUseCase) activities(ctx context.Context, ids []string) (*dto.ActivitySummaryDTO, error) {
	if len(ids) == 0 {
		return &dto.ActivitySummaryDTO{}, nil
	}
	st, err := uc.repo.ActivityStats(ctx, ids, uc.now())
	if err != nil {
		return nil, fmt.Errorf("resumen actividades: %w", err)
	}
	return &dto.ActivitySummaryDTO{
		Total:     st.Total,
		Pending:   st.Pending,
		Completed: st.Completed,
		Overdue:   st.Overdue,
	}, nil
}

func (uc *SummaryUseCase) tickets(ctx context.Context, ids []string) (*dto.TicketSummaryDTO, error) {
	out := &dto.TicketSummaryDTO{}
	if len(ids) == 0 {
		return out, nil
	}
	counts, err := uc.repo.TicketsByStatus(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resumen tickets: %w", err)
	}
	for _, c := range counts {
		out.Total += c.Count
		switch c.Status {
		case entity.TicketStatusOpen:
			out.Open += c.Count
		case entity.TicketStatusInProgress:
			out.InProgress += c.Count
		case entity.TicketStatusResolved:
			out.Resolved += c.Count
		case entity.TicketStatusClosed:
			out.Closed += c.Count
		}
	}
	urgent, err := uc.repo.UrgentOpenTickets(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resumen tickets urgentes: %w", err)
	}
	out.Urgent = urgent
	return out, nil
}

func (uc *SummaryUseCase) products(ctx context.Context, ids []string) (*dto.ProductSummaryDTO, error) {
	if len(ids) == 0 {
		return &dto.ProductSummaryDTO{InventoryValue: decimal.Zero}, nil
	}
	st, err := uc.repo.ProductStats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resumen productos: %w", err)
	}
	return &dto.ProductSummaryDTO{
		Total:          st.Total,
		Active:         st.Active,
		LowStock:       st.LowStock,
		InventoryValue: st.InventoryValue.Round(2),
	}, nil
}
