package models

import "time"

// Repository is a GitHub repository of the configured owner together with
// the number of commits on its first commits page.
type Repository struct {
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CommitsCount int       `json:"commits_count"`
}

// Commit is a flattened GitHub commit.
type Commit struct {
	SHA     string    `json:"sha"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
}
