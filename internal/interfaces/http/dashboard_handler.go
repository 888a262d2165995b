package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/analytics"
)

// DashboardHandler maneja las peticiones HTTP del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  KPIs de todos los módulos y el histórico de los últimos 6 meses.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        from       query  string  false  "Inicio del periodo"
// @Param        to         query  string  false  "Fin del periodo"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return serveSummary(c, h.uc.GetSummary)
}
