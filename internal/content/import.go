package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codebem/plataforma-backend/internal/models"
)

// ValidationError carries every violation found in a course document,
// not just the first one.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid course document: " + strings.Join(e.Problems, "; ")
}

// Import parses an exported course document, validates it and returns a
// course with freshly generated ids throughout. The input document's ids,
// if any, are discarded so an import can never collide with existing
// content.
func Import(data []byte) (models.Course, error) {
	var doc models.Course
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Course{}, fmt.Errorf("parse course document: %w", err)
	}
	if err := Validate(doc); err != nil {
		return models.Course{}, err
	}
	return regenerateIDs(doc), nil
}

// Export serializes a course to the interchange format accepted by Import.
func Export(course models.Course) ([]byte, error) {
	return json.MarshalIndent(course, "", "  ")
}

// Validate checks the structural requirements for an imported course:
// a title, at least one module, every module titled and holding at least
// one lesson, every lesson with a title and a duration. All violations
// are collected into a single ValidationError.
func Validate(course models.Course) error {
	var problems []string

	if strings.TrimSpace(course.Title) == "" {
		problems = append(problems, "course title is required")
	}
	if len(course.Modules) == 0 {
		problems = append(problems, "course must have at least one module")
	}
	for i, m := range course.Modules {
		if strings.TrimSpace(m.Title) == "" {
			problems = append(problems, fmt.Sprintf("module %d: title is required", i+1))
		}
		if len(m.Lessons) == 0 {
			problems = append(problems, fmt.Sprintf("module %d: must have at least one lesson", i+1))
		}
		for j, l := range m.Lessons {
			if strings.TrimSpace(l.Title) == "" {
				problems = append(problems, fmt.Sprintf("module %d, lesson %d: title is required", i+1, j+1))
			}
			if strings.TrimSpace(l.Duration) == "" {
				problems = append(problems, fmt.Sprintf("module %d, lesson %d: duration is required", i+1, j+1))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
