package services

import (
	"errors"
	"sort"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/google/uuid"
)

// In-memory repository doubles for service tests.

type mockPostRepo struct {
	posts []*models.Post
	err   error
}

func (m *mockPostRepo) Create(post *models.Post) error {
	if m.err != nil {
		return m.err
	}
	post.ID = uuid.NewString()
	post.BeforeCreate()
	m.posts = append(m.posts, post)
	return nil
}

func (m *mockPostRepo) GetByID(id string) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	for _, post := range m.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.Post, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *mockPostRepo) CountByAuthor() (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int)
	for _, post := range m.posts {
		counts[post.Author]++
	}
	return counts, nil
}

func (m *mockPostRepo) CountByDaySince(cutoff time.Time) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int)
	for _, post := range m.posts {
		if post.CreatedAt.Before(cutoff) {
			continue
		}
		counts[post.CreatedAt.UTC().Format("2006-01-02")]++
	}
	return counts, nil
}

type mockCommentRepo struct {
	comments []*models.Comment
	err      error
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	if m.err != nil {
		return m.err
	}
	if _, err := uuid.Parse(comment.PostID); err != nil {
		return repositories.ErrInvalidID
	}
	comment.ID = uuid.NewString()
	comment.BeforeCreate()
	m.comments = append(m.comments, comment)
	return nil
}

func (m *mockCommentRepo) ListByPost(postID string) ([]*models.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, err := uuid.Parse(postID); err != nil {
		return nil, repositories.ErrInvalidID
	}
	var out []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			out = append(out, comment)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockCommentRepo) CountByPost() (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int)
	for _, comment := range m.comments {
		counts[comment.PostID]++
	}
	return counts, nil
}

var errStoreDown = errors.New("store unreachable")
