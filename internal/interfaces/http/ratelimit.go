package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter construye un limitador en memoria a partir de una tasa ulule ("20-M", "5-S").
func NewRateLimiter(rate string) (*limiter.Limiter, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), r), nil
}

// RateLimit limita por IP de cliente y expone las cabeceras X-RateLimit-*.
func RateLimit(l *limiter.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, err := l.Get(c.UserContext(), c.IP())
		if err != nil {
			// Si el store falla se deja pasar la petición.
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("rate limiter no disponible")
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(ctx.Reset, 10))
		if ctx.Reached {
			return fail(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiadas peticiones, intente más tarde")
		}
		return c.Next()
	}
}
