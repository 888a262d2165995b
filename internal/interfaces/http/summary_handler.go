package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/dto"
)

// SummaryHandler expone los resúmenes por recurso (GET /<recurso>/summary).
type SummaryHandler struct {
	uc *analytics.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *analytics.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// serveSummary lee los filtros, ejecuta el resumen y responde en el sobre estándar.
func serveSummary[T any](c *fiber.Ctx, fn func(context.Context, string, dto.ListQuery) (*T, error)) error {
	q, err := listQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := fn(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Incomes godoc
// @Summary      Resumen de incomes
// @Description  Ingresos del periodo vs periodo anterior.
// @Tags         incomes
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo (por defecto inicio de mes)"
// @Param        to         query  string  false  "Fin del periodo (por defecto ahora)"
// @Success      200  {object}  dto.IncomeSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/incomes/summary [get]
func (h *SummaryHandler) Incomes(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.Incomes)
}

// Expenses godoc
// @Summary      Resumen de expenses
// @Description  Gastos del periodo vs periodo anterior.
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo (por defecto inicio de mes)"
// @Param        to         query  string  false  "Fin del periodo (por defecto ahora)"
// @Success      200  {object}  dto.ExpenseSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/expenses/summary [get]
func (h *SummaryHandler) Expenses(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.Expenses)
}

// Clients godoc
// @Summary      Resumen de clients
// @Description  Clientes por estado y nuevos en el periodo.
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo (por defecto inicio de mes)"
// @Param        to         query  string  false  "Fin del periodo (por defecto ahora)"
// @Success      200  {object}  dto.ClientSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clients/summary [get]
func (h *SummaryHandler) Clients(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.Clients)
}

// Opportunities godoc
// @Summary      Resumen de opportunities
// @Description  Pipeline por etapa.
// @Tags         opportunities
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo (por defecto inicio de mes)"
// @Param        to         query  string  false  "Fin del periodo (por defecto ahora)"
// @Success      200  {object}  dto.OpportunitySummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/opportunities/summary [get]
func (h *SummaryHandler) Opportunities(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.Opportunities)
}

// Activities godoc
// @Summary      Resumen de activities
// @Description  Actividades pendientes, completadas y vencidas.
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo (por defecto inicio de mes)"
// @Param        to         query  string  false  "Fin del periodo (por defecto ahora)"
// @Success      200  {object}  dto.ActivitySummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/activities/summary [get]
func (h *SummaryHandler) Activities(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.Activities)
}

// Tickets godoc
// @Summary      Resumen de tickets
// @Description  Tickets por estado.
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo (por defecto inicio de mes)"
// @Param        to         query  string  false  "Fin del periodo (por defecto ahora)"
// @Success      200  {object}  dto.TicketSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/tickets/summary [get]
func (h *SummaryHandler) Tickets(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.Tickets)
}

// Products godoc
// @Summary      Resumen de products
// @Description  Inventario y stock bajo.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo (por defecto inicio de mes)"
// @Param        to         query  string  false  "Fin del periodo (por defecto ahora)"
// @Success      200  {object}  dto.ProductSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products/summary [get]
func (h *SummaryHandler) Products(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.Products)
}
