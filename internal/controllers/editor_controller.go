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

// EditorController is the instructor/admin back-office for course
// content. Structural edits work on a draft document carried in the
// request; nothing touches the store until the explicit save, which
// replaces the whole course document.
type EditorController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewEditorController(s *state.Provider, cfg *config.Config) *EditorController {
	return &EditorController{State: s, Cfg: cfg}
}

// CreateCourse starts a new, empty course owned by the current user.
func (ec *EditorController) CreateCourse(c *fiber.Ctx) error {
	var fields content.CourseFields
	if err := c.BodyParser(&fields); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields.Title == "" {
		return utils.ValidationFailed(c, []string{"course title is required"})
	}

	course := models.Course{
		ID:            content.NewID(),
		LessonRelease: models.ReleaseFree,
		InstructorID:  middleware.UserID(c),
		Modules:       []models.Module{},
	}
	content.UpdateCourseFields(&course, fields)

	if err := ec.State.PutCourse(c.Context(), course); err != nil {
		return utils.PersistenceFailed(c, "Could not create course")
	}
	return utils.Created(c, course)
}

// SaveCourse is the editor's explicit save: a full-document replace of
// the course under the path id.
func (ec *EditorController) SaveCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	course.ID = c.Params("id")

	if _, ok := ec.State.Course(course.ID); !ok {
		return utils.NotFound(c, "Course not found")
	}
	if err := content.Validate(course); err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			return utils.ValidationFailed(c, verr.Problems)
		}
		return utils.BadRequest(c, err.Error())
	}

	if err := ec.State.PutCourse(c.Context(), course); err != nil {
		return utils.PersistenceFailed(c, "Could not save course, please retry")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// DeleteCourse removes a course. Destructive: requires confirm=true.
func (ec *EditorController) DeleteCourse(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return utils.BadRequest(c, "Destructive operation requires confirm=true")
	}
	if err := ec.State.DeleteCourse(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, state.ErrCourseNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.PersistenceFailed(c, "Could not delete course, please retry")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": c.Params("id")})
}

// DuplicateCourse copies a course with fresh ids throughout and persists
// the copy.
func (ec *EditorController) DuplicateCourse(c *fiber.Ctx) error {
	course, ok := ec.State.Course(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	dup := content.Duplicate(course)
	if err := ec.State.PutCourse(c.Context(), dup); err != nil {
		return utils.PersistenceFailed(c, "Could not save duplicated course")
	}
	return utils.Created(c, dup)
}

// ImportCourse accepts an exported course JSON document, validates it
// fully and persists it with fresh ids.
func (ec *EditorController) ImportCourse(c *fiber.Ctx) error {
	course, err := content.Import(c.Body())
	if err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			return utils.ValidationFailed(c, verr.Problems)
		}
		return utils.BadRequest(c, err.Error())
	}

	if err := ec.State.PutCourse(c.Context(), course); err != nil {
		return utils.PersistenceFailed(c, "Could not save imported course")
	}
	return utils.Created(c, course)
}

// ExportCourse returns the course as a standalone JSON document.
func (ec *EditorController) ExportCourse(c *fiber.Ctx) error {
	course, ok := ec.State.Course(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	data, err := content.Export(course)
	if err != nil {
		return utils.InternalServerError(c, "Could not export course")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="course-`+course.ID+`.json"`)
	return c.Send(data)
}

// Draft endpoints: the request body carries the working copy of the
// course, the response returns the mutated copy. Only SaveCourse
// persists.

func (ec *EditorController) DraftAddModule(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	module := content.AddModule(&course)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": course, "module": module})
}

func (ec *EditorController) DraftDeleteModule(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return utils.BadRequest(c, "Destructive operation requires confirm=true")
	}
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.BadRequest(c, "Invalid module index")
	}
	if err := content.DeleteModule(&course, index); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": course})
}

func (ec *EditorController) DraftAddLesson(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.BadRequest(c, "Invalid module index")
	}
	lesson, err := content.AddLesson(&course, index)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": course, "lesson": lesson})
}

func (ec *EditorController) DraftDeleteLesson(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return utils.BadRequest(c, "Destructive operation requires confirm=true")
	}
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	moduleIndex, err := c.ParamsInt("index")
	if err != nil {
		return utils.BadRequest(c, "Invalid module index")
	}
	lessonIndex, err := c.ParamsInt("lessonIndex")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson index")
	}
	if err := content.DeleteLesson(&course, moduleIndex, lessonIndex); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": course})
}

func (ec *EditorController) DraftUpdateCourse(c *fiber.Ctx) error {
	var input struct {
		Course models.Course        `json:"course"`
		Fields content.CourseFields `json:"fields"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	content.UpdateCourseFields(&input.Course, input.Fields)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": input.Course})
}

func (ec *EditorController) DraftUpdateModule(c *fiber.Ctx) error {
	var input struct {
		Course models.Course `json:"course"`
		Title  string        `json:"title"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.BadRequest(c, "Invalid module index")
	}
	if err := content.UpdateModuleTitle(&input.Course, index, input.Title); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": input.Course})
}

func (ec *EditorController) DraftUpdateLesson(c *fiber.Ctx) error {
	var input struct {
		Course models.Course        `json:"course"`
		Fields content.LessonFields `json:"fields"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	moduleIndex, err := c.ParamsInt("index")
	if err != nil {
		return utils.BadRequest(c, "Invalid module index")
	}
	lessonIndex, err := c.ParamsInt("lessonIndex")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson index")
	}
	if err := content.UpdateLessonFields(&input.Course, moduleIndex, lessonIndex, input.Fields); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": input.Course})
}
