package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/pkg/logger"
)

const internalMessage = "error interno del servidor"

// ok responde {"success": true, "data": ...} con el status dado.
func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.SuccessResponse{Success: true, Data: data})
}

// fail responde {"success": false, "error": code, "message": msg}.
func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: msg})
}

// respondError traduce errores de dominio a HTTP. Lo no reconocido es 500 con mensaje fijo.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, "INVALID_REFRESH_TOKEN", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "no pertenece a la empresa")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "EMAIL_EXISTS", err.Error())
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	default:
		logger.FromContext(c.UserContext()).Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", internalMessage)
	}
}

// ErrorHandler manejador global de Fiber: rutas inexistentes, panics recuperados y errores sin envolver.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return fail(c, fe.Code, "NOT_FOUND", "ruta no encontrada")
		case fiber.StatusMethodNotAllowed:
			return fail(c, fe.Code, "METHOD_NOT_ALLOWED", fe.Message)
		case fiber.StatusTooManyRequests:
			return fail(c, fe.Code, "RATE_LIMITED", "demasiadas peticiones")
		}
		if fe.Code < fiber.StatusInternalServerError {
			return fail(c, fe.Code, "BAD_REQUEST", fe.Message)
		}
	}
	return respondError(c, err)
}
