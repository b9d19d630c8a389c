package models

import "time"

// User roles.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	PasswordHash       string            `json:"passwordHash,omitempty"`
	Role               string            `json:"role"` // student, instructor, admin
	AvatarURL          string            `json:"avatarUrl,omitempty"`
	XP                 int               `json:"xp"`
	CompletedLessonIDs []string          `json:"completedLessonIds"`
	Notes              map[string]string `json:"notes,omitempty"` // lesson id -> free text
	Achievements       []string          `json:"achievements,omitempty"`
	StreakDays         int               `json:"streakDays"`
	LastActive         time.Time         `json:"lastActive"`
	Active             bool              `json:"active"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// HasCompleted reports whether the lesson is in the user's completed set.
func (u User) HasCompleted(lessonID string) bool {
	for _, id := range u.CompletedLessonIDs {
		if id == lessonID {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement was already awarded.
func (u User) HasAchievement(name string) bool {
	for _, a := range u.Achievements {
		if a == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, detaching the completed-lesson slice, the
// notes map and the achievements slice.
func (u User) Clone() User {
	dup := u
	dup.CompletedLessonIDs = append([]string(nil), u.CompletedLessonIDs...)
	dup.Achievements = append([]string(nil), u.Achievements...)
	if u.Notes != nil {
		dup.Notes = make(map[string]string, len(u.Notes))
		for k, v := range u.Notes {
			dup.Notes[k] = v
		}
	}
	return dup
}

// Public strips credentials for API responses.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
