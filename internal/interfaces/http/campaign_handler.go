package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// CampaignHandler maneja las peticiones HTTP de marketing (protegido).
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// Create godoc
// @Summary      Crear campaña
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "Datos de la campaña"
// @Success      201   {object}  dto.CampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/marketing-campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
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
// @Summary      Obtener campaña por ID
// @Tags         marketing
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marketing-campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar marketing
// @Tags         marketing
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        status     query  string  false  "PLANIFICADA, ACTIVA, PAUSADA, FINALIZADA"
// @Param        type       query  string  false  "EMAIL, SOCIAL, EVENT, ADS, OTHER"
// @Param        from       query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Param        search     query  string  false  "Busca en nombre"
// @Success      200  {array}  dto.CampaignResponse
// @Router       /api/marketing-campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar campaña
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la campaña"
// @Param        body  body  dto.UpdateCampaignRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/marketing-campaigns/{id} [put]
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCampaignRequest
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
// @Summary      Eliminar campaña
// @Tags         marketing
// @Security     Bearer
// @Param        id   path  string  true  "ID de la campaña"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marketing-campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
