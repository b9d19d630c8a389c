package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/middleware"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type UsersController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewUsersController(s *state.Provider, cfg *config.Config) *UsersController {
	return &UsersController{State: s, Cfg: cfg}
}

func (uc *UsersController) GetProfile(c *fiber.Ctx) error {
	user, ok := uc.State.User(middleware.UserID(c))
	if !ok {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, fiber.StatusOK, user.Public())
}

func (uc *UsersController) UpdateProfile(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name"`
		AvatarURL   string `json:"avatarUrl"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, ok := uc.State.User(middleware.UserID(c))
	if !ok {
		return utils.NotFound(c, "User not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	if input.NewPassword != "" {
		if input.OldPassword == "" {
			return utils.BadRequest(c, "Old password is required to set new password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
			return utils.Unauthorized(c, "Invalid old password")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.PasswordHash = string(hashed)
	}

	if err := uc.State.PutUser(c.Context(), user); err != nil {
		return utils.PersistenceFailed(c, "Could not update profile")
	}
	return utils.Success(c, fiber.StatusOK, user.Public())
}
