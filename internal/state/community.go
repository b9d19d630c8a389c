package state

import (
	"context"
	"sort"

	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/store"
)

// Projects returns copies of every showcase project, newest first.
func (p *Provider) Projects() []models.Project {
	p.mu.RLock()
	defer p.mu.RUnlock()
	projects := make([]models.Project, 0, len(p.projects))
	for _, pr := range p.projects {
		pr.Comments = append([]models.ProjectComment(nil), pr.Comments...)
		projects = append(projects, pr)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects
}

// Project returns a copy of one showcase project.
func (p *Provider) Project(id string) (models.Project, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pr, ok := p.projects[id]
	if !ok {
		return models.Project{}, false
	}
	pr.Comments = append([]models.ProjectComment(nil), pr.Comments...)
	return pr, true
}

// PutProject inserts or replaces a project document.
func (p *Provider) PutProject(ctx context.Context, pr models.Project) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, existed := p.projects[pr.ID]
	p.projects[pr.ID] = pr

	return p.putDoc(ctx, store.CollectionProjects, pr.ID, pr, func() {
		if existed {
			p.projects[pr.ID] = prev
		} else {
			delete(p.projects, pr.ID)
		}
	})
}

// AddProjectComment appends a comment to a project and persists the
// whole project document.
func (p *Provider) AddProjectComment(ctx context.Context, projectID string, comment models.ProjectComment) (models.Project, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pr, ok := p.projects[projectID]
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}
	prev := pr
	prev.Comments = append([]models.ProjectComment(nil), pr.Comments...)

	pr.Comments = append(append([]models.ProjectComment(nil), pr.Comments...), comment)
	p.projects[projectID] = pr

	err := p.putDoc(ctx, store.CollectionProjects, projectID, pr, func() {
		p.projects[projectID] = prev
	})
	if err != nil {
		return prev, err
	}
	return pr, nil
}

// Articles returns copies of every article, newest first.
func (p *Provider) Articles() []models.Article {
	p.mu.RLock()
	defer p.mu.RUnlock()
	articles := make([]models.Article, 0, len(p.articles))
	for _, a := range p.articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}

// PutArticle inserts or replaces an article document.
func (p *Provider) PutArticle(ctx context.Context, a models.Article) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, existed := p.articles[a.ID]
	p.articles[a.ID] = a

	return p.putDoc(ctx, store.CollectionArticles, a.ID, a, func() {
		if existed {
			p.articles[a.ID] = prev
		} else {
			delete(p.articles, a.ID)
		}
	})
}

// Events returns copies of every event, ordered by date.
func (p *Provider) Events() []models.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	events := make([]models.Event, 0, len(p.events))
	for _, e := range p.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events
}

// PutEvent inserts or replaces an event document.
func (p *Provider) PutEvent(ctx context.Context, e models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, existed := p.events[e.ID]
	p.events[e.ID] = e

	return p.putDoc(ctx, store.CollectionEvents, e.ID, e, func() {
		if existed {
			p.events[e.ID] = prev
		} else {
			delete(p.events, e.ID)
		}
	})
}

// Partners returns copies of every partner, ordered by name.
func (p *Provider) Partners() []models.Partner {
	p.mu.RLock()
	defer p.mu.RUnlock()
	partners := make([]models.Partner, 0, len(p.partners))
	for _, pa := range p.partners {
		partners = append(partners, pa)
	}
	sort.Slice(partners, func(i, j int) bool { return partners[i].Name < partners[j].Name })
	return partners
}

// PutPartner inserts or replaces a partner document.
func (p *Provider) PutPartner(ctx context.Context, pa models.Partner) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, existed := p.partners[pa.ID]
	p.partners[pa.ID] = pa

	return p.putDoc(ctx, store.CollectionPartners, pa.ID, pa, func() {
		if existed {
			p.partners[pa.ID] = prev
		} else {
			delete(p.partners, pa.ID)
		}
	})
}
