package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"wushuku_backend/internals/constants"
)

// RequireRoles menolak request kalau role di Locals tidak ada di daftar.
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		role = strings.ToLower(role)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorCoach(feature))
	}
}

// GetUserIDFromToken mengambil user_id hasil hydrate AuthJWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals(LocUserID).(uuid.UUID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
}
