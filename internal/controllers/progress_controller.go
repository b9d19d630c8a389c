package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/middleware"
	"github.com/codebem/plataforma-backend/internal/progress"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type ProgressController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewProgressController(s *state.Provider, cfg *config.Config) *ProgressController {
	return &ProgressController{State: s, Cfg: cfg}
}

// GetDashboard returns the user's in-progress and completed course
// partitions plus XP, streak and achievements.
func (pc *ProgressController) GetDashboard(c *fiber.Ctx) error {
	user, ok := pc.State.User(middleware.UserID(c))
	if !ok {
		return utils.NotFound(c, "User not found")
	}

	dashboard := progress.BuildDashboard(user, pc.State.Courses())

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"inProgress":   dashboard.InProgress,
		"completed":    dashboard.Completed,
		"xp":           user.XP,
		"streakDays":   user.StreakDays,
		"achievements": user.Achievements,
	})
}

// CompleteLesson records a lesson completion. Repeats are no-ops; a
// failed remote write leaves local state untouched and reports the
// failure so the UI can offer a retry.
func (pc *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	user, err := pc.State.CompleteLesson(c.Context(), middleware.UserID(c), c.Params("lessonId"))
	if err != nil {
		if errors.Is(err, state.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.PersistenceFailed(c, "Could not save progress, please retry")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"xp":                 user.XP,
		"completedLessonIds": user.CompletedLessonIDs,
		"achievements":       user.Achievements,
	})
}

// SaveNote stores the user's free-text note for a lesson. An empty text
// removes the note.
func (pc *ProgressController) SaveNote(c *fiber.Ctx) error {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := pc.State.SaveNote(c.Context(), middleware.UserID(c), c.Params("lessonId"), input.Text)
	if err != nil {
		if errors.Is(err, state.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.PersistenceFailed(c, "Could not save note, please retry")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"notes": user.Notes})
}
