package content

import "github.com/google/uuid"

// NewID generates a unique id for courses, modules and lessons. UUIDs
// replace the timestamp+index scheme of the original platform, which
// could collide when two copies were made within the same millisecond.
func NewID() string {
	return uuid.NewString()
}
