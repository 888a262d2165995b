package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

// idParams parámetros de ruta que siempre son UUID.
var idParams = []string{"id", "userId"}

// uuidParams responde 404 si un parámetro de id no es un UUID; esas filas no pueden existir.
func uuidParams(c *fiber.Ctx) error {
	for _, name := range idParams {
		v := c.Params(name)
		if v == "" {
			continue
		}
		if _, err := uuid.Parse(v); err != nil {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", domain.ErrNotFound.Error())
		}
	}
	return c.Next()
}

// listQuery lee companyId, status/stage, type, from, to y search del query string.
func listQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fmt.Errorf("%w: query inválido", domain.ErrInvalidInput)
	}
	if q.CompanyID != "" {
		if _, err := uuid.Parse(q.CompanyID); err != nil {
			return q, fmt.Errorf("%w: companyId debe ser un UUID", domain.ErrInvalidInput)
		}
	}
	return q, nil
}

// pageQuery lee page/limit con los valores por defecto aplicados.
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	p.DefaultPage()
	return p
}
