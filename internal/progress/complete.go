package progress

import "github.com/codebem/plataforma-backend/internal/models"

// Achievement names awarded by the progress engine.
const (
	AchievementFirstLesson     = "primeira-aula"
	AchievementCourseCompleted = "curso-concluido"
)

// CompleteLesson marks a lesson complete on the user and awards its XP.
// It is idempotent: an already-completed lesson id changes nothing and
// returns false. A lesson id not present in any course still gets
// recorded but awards 0 XP: the local course cache may lag behind the
// remote store, and losing the completion would be worse.
func CompleteLesson(user *models.User, lessonID string, courses []models.Course) bool {
	if user.HasCompleted(lessonID) {
		return false
	}

	xp := 0
	for _, c := range courses {
		if l, ok := c.FindLesson(lessonID); ok {
			xp = l.XP
			break
		}
	}

	user.CompletedLessonIDs = append(user.CompletedLessonIDs, lessonID)
	user.XP += xp
	return true
}

// UpdateAchievements awards milestone achievements based on the user's
// current completion state. Awards are never revoked.
func UpdateAchievements(user *models.User, courses []models.Course) {
	if len(user.CompletedLessonIDs) > 0 && !user.HasAchievement(AchievementFirstLesson) {
		user.Achievements = append(user.Achievements, AchievementFirstLesson)
	}
	if user.HasAchievement(AchievementCourseCompleted) {
		return
	}
	for _, c := range courses {
		if p, ok := Compute(*user, c); ok && p.Bucket == BucketCompleted {
			user.Achievements = append(user.Achievements, AchievementCourseCompleted)
			return
		}
	}
}
