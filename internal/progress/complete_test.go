package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebem/plataforma-backend/internal/models"
)

func TestCompleteLessonAwardsXPOnce(t *testing.T) {
	courses := []models.Course{sequentialCourse()}
	user := models.User{ID: "u1"}

	assert.True(t, CompleteLesson(&user, "l1", courses))
	assert.Equal(t, 10, user.XP)
	assert.Equal(t, []string{"l1"}, user.CompletedLessonIDs)

	// Idempotent: repeating the same lesson changes nothing.
	assert.False(t, CompleteLesson(&user, "l1", courses))
	assert.Equal(t, 10, user.XP)
	assert.Equal(t, []string{"l1"}, user.CompletedLessonIDs)
}

func TestCompleteLessonUnknownIDAwardsZeroXP(t *testing.T) {
	courses := []models.Course{sequentialCourse()}
	user := models.User{ID: "u1"}

	assert.True(t, CompleteLesson(&user, "ghost", courses))
	assert.Equal(t, 0, user.XP)
	assert.Equal(t, []string{"ghost"}, user.CompletedLessonIDs)
}

func TestCompleteLessonFindsXPAcrossCourses(t *testing.T) {
	other := sequentialCourse()
	other.ID = "c2"
	other.Modules = []models.Module{{ID: "m9", Title: "Extra", Lessons: []models.Lesson{
		{ID: "x1", Title: "Bônus", Duration: "5 min", XP: 42},
	}}}

	user := models.User{ID: "u1"}
	CompleteLesson(&user, "x1", []models.Course{sequentialCourse(), other})
	assert.Equal(t, 42, user.XP)
}

func TestUpdateAchievements(t *testing.T) {
	courses := []models.Course{sequentialCourse()}
	user := models.User{ID: "u1"}

	UpdateAchievements(&user, courses)
	assert.Empty(t, user.Achievements)

	CompleteLesson(&user, "l1", courses)
	UpdateAchievements(&user, courses)
	assert.Equal(t, []string{AchievementFirstLesson}, user.Achievements)

	// Repeating never duplicates awards.
	UpdateAchievements(&user, courses)
	assert.Equal(t, []string{AchievementFirstLesson}, user.Achievements)

	for _, id := range []string{"l2", "l3", "l4"} {
		CompleteLesson(&user, id, courses)
	}
	UpdateAchievements(&user, courses)
	assert.Contains(t, user.Achievements, AchievementCourseCompleted)
}
