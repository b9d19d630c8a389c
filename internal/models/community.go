package models

import "time"

// Community records are flat documents with by-value author/host id
// references. Dangling references are tolerated and simply fail to
// resolve in display lookups.

type Project struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	AuthorID    string           `json:"authorId"`
	RepoURL     string           `json:"repoUrl,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Comments    []ProjectComment `json:"comments,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type ProjectComment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"authorId"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	HostID      string `json:"hostId"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

type Partner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
	SiteURL string `json:"siteUrl,omitempty"`
}
