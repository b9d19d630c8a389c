package state

import (
	"context"
	"sort"

	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/progress"
	"github.com/codebem/plataforma-backend/internal/store"
)

// User returns a copy of one user.
func (p *Provider) User(id string) (models.User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	u, ok := p.users[id]
	if !ok {
		return models.User{}, false
	}
	return u.Clone(), true
}

// UserByEmail returns a copy of the user with the given email.
func (p *Provider) UserByEmail(email string) (models.User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, u := range p.users {
		if u.Email == email {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

// Users returns copies of every user, ordered by name for stable output.
func (p *Provider) Users() []models.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	users := make([]models.User, 0, len(p.users))
	for _, u := range p.users {
		users = append(users, u.Clone())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users
}

// PutUser inserts or replaces a user document.
func (p *Provider) PutUser(ctx context.Context, u models.User) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, existed := p.users[u.ID]
	p.users[u.ID] = u.Clone()

	return p.putDoc(ctx, store.CollectionUsers, u.ID, u, func() {
		if existed {
			p.users[u.ID] = prev
		} else {
			delete(p.users, u.ID)
		}
	})
}

// CompleteLesson marks a lesson complete for the user, awarding XP and
// milestone achievements, then persists the user document. Repeat calls
// with an already-completed lesson are no-ops. On a failed remote write
// the local user is restored to its pre-call value and the error is
// returned for the UI to surface.
func (p *Provider) CompleteLesson(ctx context.Context, userID, lessonID string) (models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, ok := p.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	prev := u.Clone()

	courses := p.orderedCoursesLocked()
	u = u.Clone()
	if !progress.CompleteLesson(&u, lessonID, courses) {
		return u, nil
	}
	progress.UpdateAchievements(&u, courses)
	p.users[userID] = u

	err := p.putDoc(ctx, store.CollectionUsers, userID, u, func() {
		p.users[userID] = prev
	})
	if err != nil {
		return prev, err
	}
	return u.Clone(), nil
}

// SaveNote stores the user's free-text note for a lesson.
func (p *Provider) SaveNote(ctx context.Context, userID, lessonID, text string) (models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, ok := p.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	prev := u.Clone()

	u = u.Clone()
	if u.Notes == nil {
		u.Notes = make(map[string]string)
	}
	if text == "" {
		delete(u.Notes, lessonID)
	} else {
		u.Notes[lessonID] = text
	}
	p.users[userID] = u

	err := p.putDoc(ctx, store.CollectionUsers, userID, u, func() {
		p.users[userID] = prev
	})
	if err != nil {
		return prev, err
	}
	return u.Clone(), nil
}
