package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/content"
	"github.com/codebem/plataforma-backend/internal/middleware"
	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type MentorshipController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewMentorshipController(s *state.Provider, cfg *config.Config) *MentorshipController {
	return &MentorshipController{State: s, Cfg: cfg}
}

// ListSessions returns every mentorship slot with mentor names resolved
// leniently.
func (mc *MentorshipController) ListSessions(c *fiber.Ctx) error {
	sessions := mc.State.Sessions()
	result := make([]fiber.Map, 0, len(sessions))
	for _, s := range sessions {
		mentorName := "Mentor(a) não encontrado(a)"
		if mentor, ok := mc.State.User(s.MentorID); ok {
			mentorName = mentor.Name
		}
		result = append(result, fiber.Map{
			"id":         s.ID,
			"mentorId":   s.MentorID,
			"mentorName": mentorName,
			"date":       s.Date,
			"time":       s.Time,
			"isBooked":   s.IsBooked,
			"studentId":  s.StudentID,
		})
	}
	return utils.Success(c, fiber.StatusOK, result)
}

// CreateSession opens a new slot owned by the current mentor.
func (mc *MentorshipController) CreateSession(c *fiber.Ctx) error {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var problems []string
	if input.Date == "" {
		problems = append(problems, "date is required")
	}
	if input.Time == "" {
		problems = append(problems, "time is required")
	}
	if len(problems) > 0 {
		return utils.ValidationFailed(c, problems)
	}

	session := models.MentorSession{
		ID:       content.NewID(),
		MentorID: middleware.UserID(c),
		Date:     input.Date,
		Time:     input.Time,
	}
	if err := mc.State.PutSession(c.Context(), session); err != nil {
		return utils.PersistenceFailed(c, "Could not create session")
	}
	return utils.Created(c, session)
}

// BookSession claims an open slot for the current student.
func (mc *MentorshipController) BookSession(c *fiber.Ctx) error {
	session, err := mc.State.BookSession(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, state.ErrSessionNotFound):
			return utils.NotFound(c, "Session not found")
		case errors.Is(err, state.ErrSessionBooked):
			return utils.Conflict(c, "Session is already booked")
		default:
			return utils.PersistenceFailed(c, "Could not book session, please retry")
		}
	}
	return utils.Success(c, fiber.StatusOK, session)
}

// CancelSession clears the booking. Only the booked student, the mentor
// who owns the slot or an admin may cancel; the record itself survives.
func (mc *MentorshipController) CancelSession(c *fiber.Ctx) error {
	session, ok := mc.State.Session(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Session not found")
	}

	userID := middleware.UserID(c)
	user, _ := mc.State.User(userID)
	if userID != session.StudentID && userID != session.MentorID && user.Role != models.RoleAdmin {
		return utils.Forbidden(c, "Not allowed to cancel this session")
	}

	session, err := mc.State.CancelSession(c.Context(), session.ID)
	if err != nil {
		return utils.PersistenceFailed(c, "Could not cancel session, please retry")
	}
	return utils.Success(c, fiber.StatusOK, session)
}

// DeleteSession removes an open slot. Destructive: requires
// confirm=true, and booked slots can only be cancelled, never deleted.
func (mc *MentorshipController) DeleteSession(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return utils.BadRequest(c, "Destructive operation requires confirm=true")
	}

	session, ok := mc.State.Session(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Session not found")
	}
	userID := middleware.UserID(c)
	user, _ := mc.State.User(userID)
	if userID != session.MentorID && user.Role != models.RoleAdmin {
		return utils.Forbidden(c, "Not allowed to delete this session")
	}

	if err := mc.State.DeleteSession(c.Context(), session.ID); err != nil {
		if errors.Is(err, state.ErrSessionBooked) {
			return utils.Conflict(c, "Booked sessions must be cancelled, not deleted")
		}
		return utils.PersistenceFailed(c, "Could not delete session, please retry")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": session.ID})
}
