package progress

import "github.com/codebem/plataforma-backend/internal/models"

// IsLessonLocked applies the sequential-release gate. Lessons are
// flattened across modules in order; a lesson is locked iff its
// immediate predecessor has not been completed. The first lesson is
// never locked, and courses without sequential release never lock
// anything.
//
// A lesson id that cannot be found in the course is treated as unlocked:
// the in-memory state may be stale relative to the remote store, and
// stranding the student over an inconsistency is worse than letting the
// lesson through.
func IsLessonLocked(user models.User, course models.Course, lessonID string) bool {
	if course.LessonRelease != models.ReleaseSequential {
		return false
	}
	lessons := course.AllLessons()
	for i, l := range lessons {
		if l.ID == lessonID {
			if i == 0 {
				return false
			}
			return !user.HasCompleted(lessons[i-1].ID)
		}
	}
	return false
}
