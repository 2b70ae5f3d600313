package models

import "time"

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt,omitempty"`
	AuthorID    string    `json:"authorId"`
	Author      *User     `json:"author,omitempty"`
	Tags        []string  `json:"tags"`
	ReadingTime int       `json:"readingTime"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PostList struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
}

type PostInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published"`
}

// PostPatch carries a partial update; nil fields are left untouched
// server-side and are omitted from the request body.
type PostPatch struct {
	Title     *string  `json:"title,omitempty"`
	Content   *string  `json:"content,omitempty"`
	Excerpt   *string  `json:"excerpt,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Published *bool    `json:"published,omitempty"`
}
