package services

import (
	"fmt"
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		service := NewPostService(&mockPostRepo{}, &mockCommentRepo{})

		post, err := service.CreatePost(&models.CreatePostRequest{
			Title:   "First",
			Content: "Hello",
			Author:  "Anna Lee",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("missing field yields validation error", func(t *testing.T) {
		service := NewPostService(&mockPostRepo{}, &mockCommentRepo{})

		_, err := service.CreatePost(&models.CreatePostRequest{Title: "First", Author: "Anna"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		service := NewPostService(&mockPostRepo{err: errStoreDown}, &mockCommentRepo{})

		_, err := service.CreatePost(&models.CreatePostRequest{Title: "t", Content: "c", Author: "a"})
		assert.ErrorIs(t, err, errStoreDown)
	})
}

func TestListPostsPagination(t *testing.T) {
	postRepo := &mockPostRepo{}
	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		post := &models.Post{
			Title:     fmt.Sprintf("post %d", i),
			Content:   "c",
			Author:    "Anna",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, postRepo.Create(post))
	}
	service := NewPostService(postRepo, &mockCommentRepo{})

	cases := []struct {
		page int
		want int
	}{
		{page: 1, want: 5},
		{page: 3, want: 2},
		{page: 4, want: 0},
	}
	for _, tc := range cases {
		result, err := service.ListPosts("", tc.page, 5)
		require.NoError(t, err)
		assert.Equal(t, 12, result.Total)
		assert.Equal(t, tc.page, result.Page)
		assert.Equal(t, 5, result.Limit)
		assert.Len(t, result.Posts, tc.want)
	}
}

func TestListPostsOrdering(t *testing.T) {
	postRepo := &mockPostRepo{}
	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, postRepo.Create(&models.Post{
			Title:     fmt.Sprintf("post %d", i),
			Content:   "c",
			Author:    "Anna",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	service := NewPostService(postRepo, &mockCommentRepo{})

	result, err := service.ListPosts("", 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Posts, 3)
	// Newest first, so page boundaries are deterministic.
	assert.Equal(t, "post 2", result.Posts[0].Title)
	assert.Equal(t, "post 1", result.Posts[1].Title)
	assert.Equal(t, "post 0", result.Posts[2].Title)
}

func TestListPostsAuthorFilter(t *testing.T) {
	postRepo := &mockPostRepo{}
	for _, author := range []string{"Anna Lee", "Bob", "Joanna"} {
		require.NoError(t, postRepo.Create(&models.Post{Title: "t", Content: "c", Author: author}))
	}
	service := NewPostService(postRepo, &mockCommentRepo{})

	t.Run("case-insensitive substring", func(t *testing.T) {
		result, err := service.ListPosts("ann", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		for _, post := range result.Posts {
			assert.Contains(t, []string{"Anna Lee", "Joanna"}, post.Author)
		}
	})

	t.Run("no match", func(t *testing.T) {
		result, err := service.ListPosts("zzz", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		assert.Empty(t, result.Posts)
	})
}

func TestListPostsCommentCount(t *testing.T) {
	postRepo := &mockPostRepo{}
	commentRepo := &mockCommentRepo{}

	commented := &models.Post{Title: "with comments", Content: "c", Author: "Anna"}
	quiet := &models.Post{Title: "no comments", Content: "c", Author: "Anna"}
	require.NoError(t, postRepo.Create(commented))
	require.NoError(t, postRepo.Create(quiet))

	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(&models.Comment{
			PostID: commented.ID, Commenter: "Bob", Text: "x",
		}))
	}

	service := NewPostService(postRepo, commentRepo)
	result, err := service.ListPosts("", 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)

	byTitle := map[string]int{}
	for _, post := range result.Posts {
		byTitle[post.Title] = post.CommentCount
	}
	assert.Equal(t, 3, byTitle["with comments"])
	assert.Equal(t, 0, byTitle["no comments"])
}

func TestListPostsDefaults(t *testing.T) {
	service := NewPostService(&mockPostRepo{}, &mockCommentRepo{})

	result, err := service.ListPosts("", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 5, result.Limit)
}
