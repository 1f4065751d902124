package models

import "time"

// CreateCommentRequest is the JSON body of POST /api/posts/{id}/comments.
// PostID comes from the URL, not the body.
type CreateCommentRequest struct {
	Commenter string  `json:"commenter" validate:"required,min=1"`
	Text      string  `json:"text" validate:"required,min=1"`
	ParentID  *string `json:"parentId,omitempty"`
}

// Validate checks the request against its field constraints.
func (r *CreateCommentRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
}
