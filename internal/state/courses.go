package state

import (
	"context"

	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/store"
)

// Course returns a copy of one course.
func (p *Provider) Course(id string) (models.Course, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.courses[id]
	if !ok {
		return models.Course{}, false
	}
	return c.Clone(), true
}

// Courses returns copies of every course in catalog order.
func (p *Provider) Courses() []models.Course {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.orderedCoursesLocked()
}

func (p *Provider) orderedCoursesLocked() []models.Course {
	courses := make([]models.Course, 0, len(p.courseOrder))
	for _, id := range p.courseOrder {
		if c, ok := p.courses[id]; ok {
			courses = append(courses, c.Clone())
		}
	}
	return courses
}

// PutCourse inserts or fully replaces a course document. This is the
// editor's explicit save: the whole tree round-trips, never a patch.
func (p *Provider) PutCourse(ctx context.Context, c models.Course) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, existed := p.courses[c.ID]
	p.courses[c.ID] = c.Clone()
	if !existed {
		p.courseOrder = append(p.courseOrder, c.ID)
	}

	return p.putDoc(ctx, store.CollectionCourses, c.ID, c, func() {
		if existed {
			p.courses[c.ID] = prev
		} else {
			delete(p.courses, c.ID)
			p.courseOrder = p.courseOrder[:len(p.courseOrder)-1]
		}
	})
}

// DeleteCourse removes a course document locally and remotely.
func (p *Provider) DeleteCourse(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, ok := p.courses[id]
	if !ok {
		return ErrCourseNotFound
	}
	pos := -1
	for i, cid := range p.courseOrder {
		if cid == id {
			pos = i
			break
		}
	}
	delete(p.courses, id)
	if pos >= 0 {
		p.courseOrder = append(p.courseOrder[:pos], p.courseOrder[pos+1:]...)
	}

	if err := p.store.Delete(ctx, store.CollectionCourses, id); err != nil {
		p.courses[id] = prev
		if pos >= 0 {
			p.courseOrder = append(p.courseOrder[:pos], append([]string{id}, p.courseOrder[pos:]...)...)
		}
		return err
	}
	return nil
}
