package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/store"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrSessionNotFound = errors.New("mentor session not found")
	ErrSessionBooked   = errors.New("mentor session is already booked")
	ErrProjectNotFound = errors.New("project not found")
)

// Provider is the application state: an in-memory copy of every
// collection, loaded from the remote document store once at startup.
// Handlers read and mutate the local copy; mutations that must persist
// push the whole document back and roll the local copy back when the
// remote write fails. Concurrent edits across processes remain
// last-write-wins; the mutex only guards this process's maps.
type Provider struct {
	mu    sync.RWMutex
	store store.DocumentStore
	log   *zap.Logger

	users       map[string]models.User
	courses     map[string]models.Course
	courseOrder []string
	sessions    map[string]models.MentorSession
	projects    map[string]models.Project
	articles    map[string]models.Article
	events      map[string]models.Event
	partners    map[string]models.Partner
}

func NewProvider(s store.DocumentStore, log *zap.Logger) *Provider {
	return &Provider{
		store:    s,
		log:      log,
		users:    make(map[string]models.User),
		courses:  make(map[string]models.Course),
		sessions: make(map[string]models.MentorSession),
		projects: make(map[string]models.Project),
		articles: make(map[string]models.Article),
		events:   make(map[string]models.Event),
		partners: make(map[string]models.Partner),
	}
}

// Load fetches every collection from the remote store. Called once at
// startup; a failure here is fatal to the process, unlike every later
// operation.
func (p *Provider) Load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := loadCollection(ctx, p.store, store.CollectionUsers, p.users, func(u models.User) string { return u.ID }); err != nil {
		return err
	}
	if err := loadCollection(ctx, p.store, store.CollectionCourses, p.courses, func(c models.Course) string { return c.ID }); err != nil {
		return err
	}
	if err := loadCollection(ctx, p.store, store.CollectionSessions, p.sessions, func(s models.MentorSession) string { return s.ID }); err != nil {
		return err
	}
	if err := loadCollection(ctx, p.store, store.CollectionProjects, p.projects, func(pr models.Project) string { return pr.ID }); err != nil {
		return err
	}
	if err := loadCollection(ctx, p.store, store.CollectionArticles, p.articles, func(a models.Article) string { return a.ID }); err != nil {
		return err
	}
	if err := loadCollection(ctx, p.store, store.CollectionEvents, p.events, func(e models.Event) string { return e.ID }); err != nil {
		return err
	}
	if err := loadCollection(ctx, p.store, store.CollectionPartners, p.partners, func(pa models.Partner) string { return pa.ID }); err != nil {
		return err
	}

	p.courseOrder = p.courseOrder[:0]
	for id := range p.courses {
		p.courseOrder = append(p.courseOrder, id)
	}
	sort.Strings(p.courseOrder)

	p.log.Info("application state loaded",
		zap.Int("users", len(p.users)),
		zap.Int("courses", len(p.courses)),
		zap.Int("sessions", len(p.sessions)),
		zap.Int("projects", len(p.projects)))
	return nil
}

func loadCollection[T any](ctx context.Context, s store.DocumentStore, collection string, dst map[string]T, idOf func(T) string) error {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	for id, data := range docs {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		dst[idOf(v)] = v
	}
	return nil
}

// putDoc is the optimistic-write helper: it persists one document and
// runs the compensating rollback when the remote write fails. Callers
// apply the local mutation first, then call putDoc while still holding
// the write lock.
func (p *Provider) putDoc(ctx context.Context, collection, id string, doc any, rollback func()) error {
	data, err := json.Marshal(doc)
	if err != nil {
		rollback()
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}
	if err := p.store.Put(ctx, collection, id, data); err != nil {
		rollback()
		p.log.Warn("remote write failed, local state rolled back",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("persist %s/%s: %w", collection, id, err)
	}
	return nil
}
