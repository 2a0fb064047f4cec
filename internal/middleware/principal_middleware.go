package middleware

import (
	"log"
	"strings"

	"vgcatalog/internal/pipeline"
	"vgcatalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// WithPrincipal is a Fiber middleware resolving an optional bearer token
// into an explicit principal in the request locals. A missing header yields
// the anonymous principal; a malformed or invalid token is rejected with
// 401. Role decisions belong to the pipeline, not to this middleware.
func WithPrincipal(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			c.Locals(principalKey, pipeline.Anonymous)
			return c.Next()
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		principal, err := authService.PrincipalFromToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// PrincipalFrom returns the principal the middleware stored for this
// request, or the anonymous principal when the middleware did not run.
func PrincipalFrom(c *fiber.Ctx) pipeline.Principal {
	if p, ok := c.Locals(principalKey).(pipeline.Principal); ok {
		return p
	}
	return pipeline.Anonymous
}
