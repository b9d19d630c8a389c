package progress

import (
	"math"

	"github.com/codebem/plataforma-backend/internal/models"
)

// Buckets classify a user's standing in a course.
const (
	BucketNotStarted = "not-started"
	BucketInProgress = "in-progress"
	BucketCompleted  = "completed"
)

// CourseProgress is the per-user, per-course completion summary.
type CourseProgress struct {
	Percentage int    `json:"percentage"`
	Bucket     string `json:"bucket"`
}

// Compute derives the completion percentage and bucket for one course.
// The percentage is round-half-up over the course's flattened lesson
// list. Courses with no lessons are not bucketable; ok is false and the
// caller must leave them out of any partition.
func Compute(user models.User, course models.Course) (CourseProgress, bool) {
	lessons := course.AllLessons()
	if len(lessons) == 0 {
		return CourseProgress{}, false
	}

	completed := 0
	for _, l := range lessons {
		if user.HasCompleted(l.ID) {
			completed++
		}
	}

	pct := int(math.Round(float64(completed) / float64(len(lessons)) * 100))

	p := CourseProgress{Percentage: pct}
	switch {
	case pct == 0:
		p.Bucket = BucketNotStarted
	case pct == 100:
		p.Bucket = BucketCompleted
	default:
		p.Bucket = BucketInProgress
	}
	return p, true
}

// DashboardEntry pairs a course with the user's completion percentage.
type DashboardEntry struct {
	Course     models.Course `json:"course"`
	Percentage int           `json:"percentage"`
}

// Dashboard partitions a user's courses into in-progress and completed
// lists.
type Dashboard struct {
	InProgress []DashboardEntry `json:"inProgress"`
	Completed  []DashboardEntry `json:"completed"`
}

// BuildDashboard applies Compute to every course, preserving the input
// order. Not-started and zero-lesson courses appear in neither list.
func BuildDashboard(user models.User, courses []models.Course) Dashboard {
	var d Dashboard
	for _, c := range courses {
		p, ok := Compute(user, c)
		if !ok {
			continue
		}
		switch p.Bucket {
		case BucketInProgress:
			d.InProgress = append(d.InProgress, DashboardEntry{Course: c, Percentage: p.Percentage})
		case BucketCompleted:
			d.Completed = append(d.Completed, DashboardEntry{Course: c, Percentage: p.Percentage})
		}
	}
	return d
}
