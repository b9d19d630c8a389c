package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type AdminController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewAdminController(s *state.Provider, cfg *config.Config) *AdminController {
	return &AdminController{State: s, Cfg: cfg}
}

func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	users := ac.State.Users()
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func (ac *AdminController) UpdateUserRole(c *fiber.Ctx) error {
	var input struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	switch input.Role {
	case models.RoleStudent, models.RoleInstructor, models.RoleAdmin:
	default:
		return utils.ValidationFailed(c, []string{"role must be student, instructor or admin"})
	}

	user, ok := ac.State.User(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "User not found")
	}
	user.Role = input.Role

	if err := ac.State.PutUser(c.Context(), user); err != nil {
		return utils.PersistenceFailed(c, "Could not update role, please retry")
	}
	return utils.Success(c, fiber.StatusOK, user.Public())
}

// DeactivateUser soft-marks an account inactive. User records are never
// deleted.
func (ac *AdminController) DeactivateUser(c *fiber.Ctx) error {
	return ac.setActive(c, false)
}

func (ac *AdminController) ActivateUser(c *fiber.Ctx) error {
	return ac.setActive(c, true)
}

func (ac *AdminController) setActive(c *fiber.Ctx, active bool) error {
	user, ok := ac.State.User(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "User not found")
	}
	user.Active = active

	if err := ac.State.PutUser(c.Context(), user); err != nil {
		return utils.PersistenceFailed(c, "Could not update user, please retry")
	}
	return utils.Success(c, fiber.StatusOK, user.Public())
}
