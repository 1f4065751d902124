package models

import "time"

// CreatePostRequest is the JSON body of POST /api/posts.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1"`
	Content string `json:"content" validate:"required,min=1"`
	Author  string `json:"author" validate:"required,min=1"`
}

// Validate checks the request against its field constraints.
func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}
