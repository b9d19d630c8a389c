package content

import (
	"fmt"

	"github.com/codebem/plataforma-backend/internal/models"
)

// Editor mutations operate on a draft copy of a course held by the
// caller. Nothing here persists anything: the editor saves by replacing
// the whole course document in one explicit write.

// Placeholder titles for newly added records.
const (
	DefaultModuleTitle = "Novo módulo"
	DefaultLessonTitle = "Nova aula"

	defaultLessonDuration = "10 min"
	defaultLessonXP       = 10
)

// AddModule appends an empty module with a placeholder title.
func AddModule(course *models.Course) models.Module {
	m := models.Module{
		ID:      NewID(),
		Title:   DefaultModuleTitle,
		Lessons: []models.Lesson{},
	}
	course.Modules = append(course.Modules, m)
	return m
}

// DeleteModule removes the module at the given position.
func DeleteModule(course *models.Course, moduleIndex int) error {
	if moduleIndex < 0 || moduleIndex >= len(course.Modules) {
		return fmt.Errorf("module index %d out of range", moduleIndex)
	}
	course.Modules = append(course.Modules[:moduleIndex], course.Modules[moduleIndex+1:]...)
	return nil
}

// AddLesson appends a placeholder text lesson to the module at the given
// position.
func AddLesson(course *models.Course, moduleIndex int) (models.Lesson, error) {
	if moduleIndex < 0 || moduleIndex >= len(course.Modules) {
		return models.Lesson{}, fmt.Errorf("module index %d out of range", moduleIndex)
	}
	l := models.Lesson{
		ID:       NewID(),
		Title:    DefaultLessonTitle,
		Duration: defaultLessonDuration,
		XP:       defaultLessonXP,
		Type:     models.LessonText,
	}
	m := &course.Modules[moduleIndex]
	m.Lessons = append(m.Lessons, l)
	return l, nil
}

// DeleteLesson removes the lesson at the given position within a module.
func DeleteLesson(course *models.Course, moduleIndex, lessonIndex int) error {
	if moduleIndex < 0 || moduleIndex >= len(course.Modules) {
		return fmt.Errorf("module index %d out of range", moduleIndex)
	}
	m := &course.Modules[moduleIndex]
	if lessonIndex < 0 || lessonIndex >= len(m.Lessons) {
		return fmt.Errorf("lesson index %d out of range", lessonIndex)
	}
	m.Lessons = append(m.Lessons[:lessonIndex], m.Lessons[lessonIndex+1:]...)
	return nil
}

// CourseFields holds the scalar course fields the editor can change.
// Empty fields are left untouched.
type CourseFields struct {
	Title         string `json:"title"`
	ShortDesc     string `json:"shortDesc"`
	Description   string `json:"description"`
	Track         string `json:"track"`
	Level         string `json:"level"`
	Format        string `json:"format"`
	LessonRelease string `json:"lessonRelease"`
	InstructorID  string `json:"instructorId"`
	ImageURL      string `json:"imageUrl"`
}

// UpdateCourseFields applies non-empty scalar fields to the draft.
func UpdateCourseFields(course *models.Course, in CourseFields) {
	if in.Title != "" {
		course.Title = in.Title
	}
	if in.ShortDesc != "" {
		course.ShortDesc = in.ShortDesc
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.Track != "" {
		course.Track = in.Track
	}
	if in.Level != "" {
		course.Level = in.Level
	}
	if in.Format != "" {
		course.Format = in.Format
	}
	if in.LessonRelease != "" {
		course.LessonRelease = in.LessonRelease
	}
	if in.InstructorID != "" {
		course.InstructorID = in.InstructorID
	}
	if in.ImageURL != "" {
		course.ImageURL = in.ImageURL
	}
}

// UpdateModuleTitle renames the module at the given position.
func UpdateModuleTitle(course *models.Course, moduleIndex int, title string) error {
	if moduleIndex < 0 || moduleIndex >= len(course.Modules) {
		return fmt.Errorf("module index %d out of range", moduleIndex)
	}
	if title != "" {
		course.Modules[moduleIndex].Title = title
	}
	return nil
}

// LessonFields holds the scalar lesson fields the editor can change.
// Empty fields are left untouched; XP is applied when positive.
type LessonFields struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	XP       int    `json:"xp"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl"`
}

// UpdateLessonFields applies non-empty scalar fields to a lesson in the
// draft.
func UpdateLessonFields(course *models.Course, moduleIndex, lessonIndex int, in LessonFields) error {
	if moduleIndex < 0 || moduleIndex >= len(course.Modules) {
		return fmt.Errorf("module index %d out of range", moduleIndex)
	}
	m := &course.Modules[moduleIndex]
	if lessonIndex < 0 || lessonIndex >= len(m.Lessons) {
		return fmt.Errorf("lesson index %d out of range", lessonIndex)
	}
	l := &m.Lessons[lessonIndex]
	if in.Title != "" {
		l.Title = in.Title
	}
	if in.Duration != "" {
		l.Duration = in.Duration
	}
	if in.XP > 0 {
		l.XP = in.XP
	}
	if in.Type != "" {
		l.Type = in.Type
	}
	if in.Content != "" {
		l.Content = in.Content
	}
	if in.VideoURL != "" {
		l.VideoURL = in.VideoURL
	}
	return nil
}
