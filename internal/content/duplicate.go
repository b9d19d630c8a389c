package content

import "github.com/codebem/plataforma-backend/internal/models"

// Duplicate deep-copies a course, assigning a fresh id to the course and
// to every module and lesson it contains. The copy's title gains a
// " (Cópia)" suffix; everything else is kept as-is. Persisting the copy
// is the caller's responsibility.
func Duplicate(course models.Course) models.Course {
	dup := regenerateIDs(course.Clone())
	dup.Title = course.Title + " (Cópia)"
	return dup
}

func regenerateIDs(course models.Course) models.Course {
	course.ID = NewID()
	for i := range course.Modules {
		course.Modules[i].ID = NewID()
		for j := range course.Modules[i].Lessons {
			course.Modules[i].Lessons[j].ID = NewID()
		}
	}
	return course
}
