package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// OpportunityHandler maneja las peticiones HTTP de opportunities (protegido).
type OpportunityHandler struct {
	uc *usecase.OpportunityUseCase
}

// NewOpportunityHandler construye el handler.
func NewOpportunityHandler(uc *usecase.OpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear oportunidad
// @Tags         opportunities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOpportunityRequest  true  "Datos de la oportunidad"
// @Success      201   {object}  dto.OpportunityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/opportunities [post]
func (h *OpportunityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOpportunityRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// GetByID godoc
// @Summary      Obtener oportunidad por ID
// @Tags         opportunities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oportunidad"
// @Success      200  {object}  dto.OpportunityResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id} [get]
func (h *OpportunityHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar opportunities
// @Tags         opportunities
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        stage      query  string  false  "Etapa (PROSPECCION … GANADA, PERDIDA)"
// @Param        from       query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Param        search     query  string  false  "Busca en título o notas"
// @Success      200  {array}  dto.OpportunityResponse
// @Router       /api/opportunities [get]
func (h *OpportunityHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar oportunidad
// @Tags         opportunities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la oportunidad"
// @Param        body  body  dto.UpdateOpportunityRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OpportunityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id} [put]
func (h *OpportunityHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOpportunityRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar oportunidad
// @Tags         opportunities
// @Security     Bearer
// @Param        id   path  string  true  "ID de la oportunidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStage godoc
// @Summary      Cambiar la etapa de la oportunidad
// @Tags         opportunities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.OpportunityStageRequest  true  "Nuevo valor"
// @Success      200   {object}  dto.OpportunityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id}/stage [patch]
func (h *OpportunityHandler) UpdateStage(c *fiber.Ctx) error {
	var in dto.OpportunityStageRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateStage(c.UserContext(), GetUserID(c), c.Params("id"), in.Stage)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
