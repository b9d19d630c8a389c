package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/content"
	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type AuthController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewAuthController(s *state.Provider, cfg *config.Config) *AuthController {
	return &AuthController{State: s, Cfg: cfg}
}

// Register creates the default user record for a new principal: student
// role, zero XP, empty completion set, active.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var problems []string
	if strings.TrimSpace(input.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		problems = append(problems, "email is required")
	}
	if len(input.Password) < 8 {
		problems = append(problems, "password must have at least 8 characters")
	}
	if len(problems) > 0 {
		return utils.ValidationFailed(c, problems)
	}

	if _, exists := ac.State.UserByEmail(input.Email); exists {
		return utils.Conflict(c, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	now := time.Now()
	user := models.User{
		ID:                 content.NewID(),
		Name:               input.Name,
		Email:              input.Email,
		PasswordHash:       string(hashed),
		Role:               models.RoleStudent,
		CompletedLessonIDs: []string{},
		StreakDays:         1,
		LastActive:         now,
		Active:             true,
		CreatedAt:          now,
	}

	if err := ac.State.PutUser(c.Context(), user); err != nil {
		return utils.PersistenceFailed(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

// Login authenticates a user and maintains the daily streak counter.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, ok := ac.State.UserByEmail(input.Email)
	if !ok {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	if !user.Active {
		return utils.Forbidden(c, "Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	now := time.Now()
	if !sameDay(user.LastActive, now) {
		if now.Sub(user.LastActive) < 48*time.Hour {
			user.StreakDays++
		} else {
			user.StreakDays = 1
		}
	}
	user.LastActive = now
	// A failed streak write rolls back locally and is not worth failing
	// the login over.
	_ = ac.State.PutUser(c.Context(), user)

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
