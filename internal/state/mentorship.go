package state

import (
	"context"
	"sort"

	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/store"
)

// Sessions returns copies of every mentor session, ordered by date and
// time.
func (p *Provider) Sessions() []models.MentorSession {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sessions := make([]models.MentorSession, 0, len(p.sessions))
	for _, s := range p.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].Time < sessions[j].Time
	})
	return sessions
}

// Session returns a copy of one mentor session.
func (p *Provider) Session(id string) (models.MentorSession, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.sessions[id]
	return s, ok
}

// PutSession inserts or replaces a mentor session document.
func (p *Provider) PutSession(ctx context.Context, s models.MentorSession) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, existed := p.sessions[s.ID]
	p.sessions[s.ID] = s

	return p.putDoc(ctx, store.CollectionSessions, s.ID, s, func() {
		if existed {
			p.sessions[s.ID] = prev
		} else {
			delete(p.sessions, s.ID)
		}
	})
}

// BookSession claims an open slot for a student. Booking an already
// booked slot fails with ErrSessionBooked.
func (p *Provider) BookSession(ctx context.Context, sessionID, studentID string) (models.MentorSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sessions[sessionID]
	if !ok {
		return models.MentorSession{}, ErrSessionNotFound
	}
	if s.IsBooked {
		return models.MentorSession{}, ErrSessionBooked
	}
	prev := s
	s.IsBooked = true
	s.StudentID = studentID
	p.sessions[sessionID] = s

	err := p.putDoc(ctx, store.CollectionSessions, sessionID, s, func() {
		p.sessions[sessionID] = prev
	})
	if err != nil {
		return prev, err
	}
	return s, nil
}

// CancelSession clears the booking of a booked slot, reopening it. The
// record itself survives; booked sessions are never deleted.
func (p *Provider) CancelSession(ctx context.Context, sessionID string) (models.MentorSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sessions[sessionID]
	if !ok {
		return models.MentorSession{}, ErrSessionNotFound
	}
	prev := s
	s.IsBooked = false
	s.StudentID = ""
	p.sessions[sessionID] = s

	err := p.putDoc(ctx, store.CollectionSessions, sessionID, s, func() {
		p.sessions[sessionID] = prev
	})
	if err != nil {
		return prev, err
	}
	return s, nil
}

// DeleteSession removes an open slot. A booked slot cannot be deleted,
// only cancelled.
func (p *Provider) DeleteSession(ctx context.Context, sessionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if s.IsBooked {
		return ErrSessionBooked
	}
	delete(p.sessions, sessionID)

	if err := p.store.Delete(ctx, store.CollectionSessions, sessionID); err != nil {
		p.sessions[sessionID] = s
		return err
	}
	return nil
}
