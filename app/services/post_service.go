package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// ErrValidation marks a request that failed field validation.
var ErrValidation = errors.New("validation failed")

const (
	defaultPage  = 1
	defaultLimit = 5
)

// ListResult is one page of posts with pagination metadata. Total counts
// every post matching the filter, not just the returned page.
type ListResult struct {
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Posts []*models.PostSummary `json:"posts"`
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost validates the request and stores a new post.
func (s *PostService) CreatePost(req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID.
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts returns one page of posts, each carrying its derived comment
// count. The author filter is a case-insensitive substring match. Posts are
// sorted by creation time descending (id ascending on ties) before
// pagination, so page boundaries are deterministic.
func (s *PostService) ListPosts(authorFilter string, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	if authorFilter != "" {
		needle := strings.ToLower(authorFilter)
		filtered := posts[:0]
		for _, post := range posts {
			if strings.Contains(strings.ToLower(post.Author), needle) {
				filtered = append(filtered, post)
			}
		}
		posts = filtered
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID < posts[j].ID
	})

	total := len(posts)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	posts = posts[offset:end]

	counts, err := s.commentRepo.CountByPost()
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, &models.PostSummary{
			Post:         *post,
			CommentCount: counts[post.ID],
		})
	}

	return &ListResult{
		Total: total,
		Page:  page,
		Limit: limit,
		Posts: summaries,
	}, nil
}
