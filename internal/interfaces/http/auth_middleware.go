package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/floor-assistant/internal/application/dto"
	"github.com/jhoicas/floor-assistant/pkg/jwt"
)

// Locals keys para el sujeto del token y la tienda declarada.
const (
	LocalSubject = "subject"
	LocalStoreID = "store_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae subject y store_id a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		subject, storeID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSubject, subject)
		c.Locals(LocalStoreID, storeID)
		return c.Next()
	}
}

// GetSubject devuelve el sujeto del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetStoreID devuelve la tienda declarada en el token, si la hay.
func GetStoreID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalStoreID).(string)
	return s
}
