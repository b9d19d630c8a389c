package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/content"
	"github.com/codebem/plataforma-backend/internal/middleware"
	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/utils"
)

type CommunityController struct {
	State *state.Provider
	Cfg   *config.Config
}

func NewCommunityController(s *state.Provider, cfg *config.Config) *CommunityController {
	return &CommunityController{State: s, Cfg: cfg}
}

// authorName resolves a user reference leniently; dangling ids get a
// placeholder.
func (cc *CommunityController) authorName(id string) string {
	if u, ok := cc.State.User(id); ok {
		return u.Name
	}
	return "Membro removido"
}

func (cc *CommunityController) ListProjects(c *fiber.Ctx) error {
	projects := cc.State.Projects()
	result := make([]fiber.Map, 0, len(projects))
	for _, p := range projects {
		result = append(result, fiber.Map{
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"authorId":    p.AuthorID,
			"authorName":  cc.authorName(p.AuthorID),
			"repoUrl":     p.RepoURL,
			"imageUrl":    p.ImageURL,
			"comments":    len(p.Comments),
			"createdAt":   p.CreatedAt,
		})
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func (cc *CommunityController) GetProject(c *fiber.Ctx) error {
	project, ok := cc.State.Project(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Project not found")
	}

	comments := make([]fiber.Map, 0, len(project.Comments))
	for _, comment := range project.Comments {
		comments = append(comments, fiber.Map{
			"id":         comment.ID,
			"authorId":   comment.AuthorID,
			"authorName": cc.authorName(comment.AuthorID),
			"text":       comment.Text,
			"createdAt":  comment.CreatedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":          project.ID,
		"title":       project.Title,
		"description": project.Description,
		"authorId":    project.AuthorID,
		"authorName":  cc.authorName(project.AuthorID),
		"repoUrl":     project.RepoURL,
		"imageUrl":    project.ImageURL,
		"comments":    comments,
		"createdAt":   project.CreatedAt,
	})
}

func (cc *CommunityController) CreateProject(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		RepoURL     string `json:"repoUrl"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.ValidationFailed(c, []string{"project title is required"})
	}

	project := models.Project{
		ID:          content.NewID(),
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    middleware.UserID(c),
		RepoURL:     input.RepoURL,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := cc.State.PutProject(c.Context(), project); err != nil {
		return utils.PersistenceFailed(c, "Could not create project")
	}
	return utils.Created(c, project)
}

func (cc *CommunityController) AddProjectComment(c *fiber.Ctx) error {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Text == "" {
		return utils.ValidationFailed(c, []string{"comment text is required"})
	}

	comment := models.ProjectComment{
		ID:        content.NewID(),
		AuthorID:  middleware.UserID(c),
		Text:      input.Text,
		CreatedAt: time.Now(),
	}
	project, err := cc.State.AddProjectComment(c.Context(), c.Params("id"), comment)
	if err != nil {
		if errors.Is(err, state.ErrProjectNotFound) {
			return utils.NotFound(c, "Project not found")
		}
		return utils.PersistenceFailed(c, "Could not save comment, please retry")
	}
	return utils.Created(c, project)
}

func (cc *CommunityController) ListArticles(c *fiber.Ctx) error {
	articles := cc.State.Articles()
	result := make([]fiber.Map, 0, len(articles))
	for _, a := range articles {
		result = append(result, fiber.Map{
			"id":          a.ID,
			"title":       a.Title,
			"excerpt":     a.Excerpt,
			"authorId":    a.AuthorID,
			"authorName":  cc.authorName(a.AuthorID),
			"imageUrl":    a.ImageURL,
			"publishedAt": a.PublishedAt,
		})
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func (cc *CommunityController) CreateArticle(c *fiber.Ctx) error {
	var input struct {
		Title    string `json:"title"`
		Excerpt  string `json:"excerpt"`
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.ValidationFailed(c, []string{"article title is required"})
	}

	article := models.Article{
		ID:          content.NewID(),
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		AuthorID:    middleware.UserID(c),
		ImageURL:    input.ImageURL,
		PublishedAt: time.Now(),
	}
	if err := cc.State.PutArticle(c.Context(), article); err != nil {
		return utils.PersistenceFailed(c, "Could not create article")
	}
	return utils.Created(c, article)
}

func (cc *CommunityController) ListEvents(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, cc.State.Events())
}

func (cc *CommunityController) CreateEvent(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		Location    string `json:"location"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.ValidationFailed(c, []string{"event title is required"})
	}

	event := models.Event{
		ID:          content.NewID(),
		Title:       input.Title,
		Description: input.Description,
		HostID:      middleware.UserID(c),
		Date:        input.Date,
		Location:    input.Location,
	}
	if err := cc.State.PutEvent(c.Context(), event); err != nil {
		return utils.PersistenceFailed(c, "Could not create event")
	}
	return utils.Created(c, event)
}

func (cc *CommunityController) ListPartners(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, cc.State.Partners())
}

func (cc *CommunityController) CreatePartner(c *fiber.Ctx) error {
	var input struct {
		Name    string `json:"name"`
		LogoURL string `json:"logoUrl"`
		SiteURL string `json:"siteUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.ValidationFailed(c, []string{"partner name is required"})
	}

	partner := models.Partner{
		ID:      content.NewID(),
		Name:    input.Name,
		LogoURL: input.LogoURL,
		SiteURL: input.SiteURL,
	}
	if err := cc.State.PutPartner(c.Context(), partner); err != nil {
		return utils.PersistenceFailed(c, "Could not create partner")
	}
	return utils.Created(c, partner)
}
