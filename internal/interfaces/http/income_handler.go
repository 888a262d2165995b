package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// IncomeHandler maneja las peticiones HTTP de incomes (protegido).
type IncomeHandler struct {
	uc *usecase.IncomeUseCase
}

// NewIncomeHandler construye el handler.
func NewIncomeHandler(uc *usecase.IncomeUseCase) *IncomeHandler {
	return &IncomeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ingreso
// @Tags         incomes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncomeRequest  true  "Datos del ingreso"
// @Success      201   {object}  dto.IncomeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/incomes [post]
func (h *IncomeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncomeRequest
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
// @Summary      Obtener ingreso por ID
// @Tags         incomes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ingreso"
// @Success      200  {object}  dto.IncomeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incomes/{id} [get]
func (h *IncomeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar incomes
// @Tags         incomes
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Empresa (por defecto todas las del usuario)"
// @Param        status     query  string  false  "Estado (PAID, PENDING, CANCELLED, ERROR)"
// @Param        type       query  string  false  "Categoría"
// @Param        from       query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Param        search     query  string  false  "Busca en descripción o referencia"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.IncomeListResponse
// @Router       /api/incomes [get]
func (h *IncomeHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), q, pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar ingreso
// @Tags         incomes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingreso"
// @Param        body  body  dto.UpdateIncomeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.IncomeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incomes/{id} [put]
func (h *IncomeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIncomeRequest
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
// @Summary      Eliminar ingreso
// @Tags         incomes
// @Security     Bearer
// @Param        id   path  string  true  "ID del ingreso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
