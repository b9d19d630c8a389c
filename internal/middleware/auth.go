package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

// UserIDKey is the locals key the auth middleware stores the
// authenticated user id under.
const UserIDKey = "userID"

// AuthMiddleware rejects requests without a valid token and stores the
// authenticated user id for downstream handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// RequireRole restricts a route to users holding one of the given roles.
// Deactivated accounts are rejected regardless of role.
func RequireRole(provider *state.Provider, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(UserIDKey).(string)
		user, ok := provider.User(userID)
		if !ok || !user.Active {
			return utils.Forbidden(c, "Account is not active")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "Insufficient role")
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
