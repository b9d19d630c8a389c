package models

// Lesson release modes.
const (
	ReleaseSequential = "sequential"
	ReleaseFree       = "free"
)

// Lesson types.
const (
	LessonText  = "text"
	LessonVideo = "video"
)

type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	ShortDesc     string   `json:"shortDesc"`
	Description   string   `json:"description"`
	Track         string   `json:"track"`  // frontend, backend, dados, design
	Level         string   `json:"level"`  // iniciante, intermediario, avancado
	Format        string   `json:"format"` // online, presencial, hibrido
	LessonRelease string   `json:"lessonRelease"` // sequential, free
	InstructorID  string   `json:"instructorId"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Modules       []Module `json:"modules"`
}

type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"` // display string, e.g. "15 min"
	XP       int    `json:"xp"`
	Type     string `json:"type"` // text, video
	Content  string `json:"content,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// AllLessons flattens the course into a single sequence, module order
// first, lesson order within each module second.
func (c Course) AllLessons() []Lesson {
	var lessons []Lesson
	for _, m := range c.Modules {
		lessons = append(lessons, m.Lessons...)
	}
	return lessons
}

// FindLesson looks up a lesson by id anywhere in the course.
func (c Course) FindLesson(lessonID string) (Lesson, bool) {
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.ID == lessonID {
				return l, true
			}
		}
	}
	return Lesson{}, false
}

// Clone returns a deep copy. Course documents are passed around by value
// but share the modules slice; snapshots for rollback need their own copy.
func (c Course) Clone() Course {
	dup := c
	dup.Modules = make([]Module, len(c.Modules))
	for i, m := range c.Modules {
		dup.Modules[i] = m
		dup.Modules[i].Lessons = append([]Lesson(nil), m.Lessons...)
	}
	return dup
}
