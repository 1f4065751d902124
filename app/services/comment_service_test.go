package services

import (
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	t.Run("valid request against nonexistent post", func(t *testing.T) {
		// Comments are weak references: no post has to exist.
		service := NewCommentService(&mockCommentRepo{})

		comment, err := service.CreateComment(uuid.NewString(), &models.CreateCommentRequest{
			Commenter: "Bob",
			Text:      "hi",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, comment.ID)
	})

	t.Run("missing text yields validation error", func(t *testing.T) {
		service := NewCommentService(&mockCommentRepo{})

		_, err := service.CreateComment(uuid.NewString(), &models.CreateCommentRequest{Commenter: "Bob"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("malformed post id", func(t *testing.T) {
		service := NewCommentService(&mockCommentRepo{})

		_, err := service.CreateComment("bad", &models.CreateCommentRequest{Commenter: "Bob", Text: "hi"})
		assert.ErrorIs(t, err, repositories.ErrInvalidID)
	})
}

func TestListPostComments(t *testing.T) {
	repo := &mockCommentRepo{}
	postID := uuid.NewString()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{0, time.Hour, 2 * time.Hour} {
		require.NoError(t, repo.Create(&models.Comment{
			PostID:    postID,
			Commenter: "Bob",
			Text:      "x",
			CreatedAt: base.Add(offset),
		}))
	}

	service := NewCommentService(repo)
	comments, err := service.ListPostComments(postID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.True(t, comments[0].CreatedAt.After(comments[1].CreatedAt))
	assert.True(t, comments[1].CreatedAt.After(comments[2].CreatedAt))
}

func TestThreadPostComments(t *testing.T) {
	postID := uuid.NewString()

	add := func(t *testing.T, repo *mockCommentRepo, parentID *string, text string, at time.Time) *models.Comment {
		t.Helper()
		comment := &models.Comment{
			PostID:    postID,
			ParentID:  parentID,
			Commenter: "Bob",
			Text:      text,
			CreatedAt: at,
		}
		require.NoError(t, repo.Create(comment))
		return comment
	}

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("nests replies under parents", func(t *testing.T) {
		repo := &mockCommentRepo{}
		root := add(t, repo, nil, "root", base)
		reply := add(t, repo, &root.ID, "reply", base.Add(time.Hour))
		add(t, repo, &reply.ID, "nested reply", base.Add(2*time.Hour))

		service := NewCommentService(repo)
		thread, err := service.ThreadPostComments(postID)
		require.NoError(t, err)

		require.Len(t, thread, 1)
		assert.Equal(t, "root", thread[0].Text)
		require.Len(t, thread[0].Replies, 1)
		assert.Equal(t, "reply", thread[0].Replies[0].Text)
		require.Len(t, thread[0].Replies[0].Replies, 1)
		assert.Equal(t, "nested reply", thread[0].Replies[0].Replies[0].Text)
	})

	t.Run("orphaned reply promoted to top level", func(t *testing.T) {
		repo := &mockCommentRepo{}
		missing := uuid.NewString()
		add(t, repo, &missing, "orphan", base)

		service := NewCommentService(repo)
		thread, err := service.ThreadPostComments(postID)
		require.NoError(t, err)
		require.Len(t, thread, 1)
		assert.Equal(t, "orphan", thread[0].Text)
	})

	t.Run("cycle broken, every comment appears once", func(t *testing.T) {
		repo := &mockCommentRepo{}
		a := add(t, repo, nil, "a", base)
		b := add(t, repo, &a.ID, "b", base.Add(time.Hour))
		// Rewrite a's parent to b, forming a cycle a <-> b.
		a.ParentID = &b.ID

		service := NewCommentService(repo)
		thread, err := service.ThreadPostComments(postID)
		require.NoError(t, err)

		seen := map[string]int{}
		var count func(nodes []*models.CommentNode)
		count = func(nodes []*models.CommentNode) {
			for _, node := range nodes {
				seen[node.ID]++
				count(node.Replies)
			}
		}
		count(thread)
		assert.Equal(t, map[string]int{a.ID: 1, b.ID: 1}, seen)
	})

	t.Run("empty thread for post without comments", func(t *testing.T) {
		service := NewCommentService(&mockCommentRepo{})
		thread, err := service.ThreadPostComments(uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, thread)
	})
}
