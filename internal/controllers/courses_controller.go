package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/middleware"
	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/progress"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type CoursesController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewCoursesController(s *state.Provider, cfg *config.Config) *CoursesController {
	return &CoursesController{State: s, Cfg: cfg}
}

// Catalog lists courses with optional search/track/level filters, each
// annotated with the requesting user's completion percentage.
func (cc *CoursesController) Catalog(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))
	track := c.Query("track")
	level := c.Query("level")

	user, _ := cc.State.User(middleware.UserID(c))

	result := []fiber.Map{}
	for _, course := range cc.State.Courses() {
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.ShortDesc), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) {
			continue
		}
		if track != "" && course.Track != track {
			continue
		}
		if level != "" && course.Level != level {
			continue
		}

		entry := fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"shortDesc":   course.ShortDesc,
			"track":       course.Track,
			"level":       course.Level,
			"format":      course.Format,
			"imageUrl":    course.ImageURL,
			"instructor":  cc.instructorName(course),
			"lessonCount": len(course.AllLessons()),
		}
		if p, ok := progress.Compute(user, course); ok {
			entry["percentage"] = p.Percentage
			entry["bucket"] = p.Bucket
		}
		result = append(result, entry)
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetCourse returns the full course tree with per-lesson lock flags and
// the user's progress.
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, ok := cc.State.Course(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	user, _ := cc.State.User(middleware.UserID(c))

	modules := make([]fiber.Map, 0, len(course.Modules))
	for _, m := range course.Modules {
		lessons := make([]fiber.Map, 0, len(m.Lessons))
		for _, l := range m.Lessons {
			lessons = append(lessons, fiber.Map{
				"id":        l.ID,
				"title":     l.Title,
				"duration":  l.Duration,
				"xp":        l.XP,
				"type":      l.Type,
				"content":   l.Content,
				"videoUrl":  l.VideoURL,
				"completed": user.HasCompleted(l.ID),
				"locked":    progress.IsLessonLocked(user, course, l.ID),
			})
		}
		modules = append(modules, fiber.Map{
			"id":      m.ID,
			"title":   m.Title,
			"lessons": lessons,
		})
	}

	response := fiber.Map{
		"id":            course.ID,
		"title":         course.Title,
		"shortDesc":     course.ShortDesc,
		"description":   course.Description,
		"track":         course.Track,
		"level":         course.Level,
		"format":        course.Format,
		"lessonRelease": course.LessonRelease,
		"imageUrl":      course.ImageURL,
		"instructor":    cc.instructorName(course),
		"modules":       modules,
	}
	if p, ok := progress.Compute(user, course); ok {
		response["progress"] = p
	}

	return utils.Success(c, fiber.StatusOK, response)
}

// instructorName resolves the instructor reference leniently: a dangling
// id shows a placeholder instead of failing the whole page.
func (cc *CoursesController) instructorName(course models.Course) string {
	if instructor, ok := cc.State.User(course.InstructorID); ok {
		return instructor.Name
	}
	return "Instrutor(a) não encontrado(a)"
}
