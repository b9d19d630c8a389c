package models

// MentorSession is a bookable mentorship slot. A mentor opens the slot;
// a student books it. Booked sessions are never deleted: cancellation
// clears the booking and the slot reopens.
type MentorSession struct {
	ID        string `json:"id"`
	MentorID  string `json:"mentorId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	IsBooked  bool   `json:"isBooked"`
	StudentID string `json:"studentId,omitempty"`
}
