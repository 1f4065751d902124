package repositories

import (
	"time"

	"inkwell/app/models"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	CountByAuthor() (map[string]int, error)
	CountByDaySince(cutoff time.Time) (map[string]int, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID string) ([]*models.Comment, error)
	CountByPost() (map[string]int, error)
}
