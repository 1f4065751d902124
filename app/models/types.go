package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post is a blog post document. Posts are immutable once stored: there is
// no update or delete operation in the API.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required,min=1"`
	Content   string    `json:"content" validate:"required,min=1"`
	Author    string    `json:"author" validate:"required,min=1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment is a comment document. PostID is a weak reference: the referenced
// post is not required to exist. ParentID, when set, points at another
// comment and makes this one a threaded reply.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId" validate:"required"`
	ParentID  *string   `json:"parentId,omitempty"`
	Commenter string    `json:"commenter" validate:"required,min=1"`
	Text      string    `json:"text" validate:"required,min=1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostSummary is a Post plus its derived comment count, as returned by the
// list endpoint. The count is computed at read time, never stored.
type PostSummary struct {
	Post
	CommentCount int `json:"commentCount"`
}

// CommentNode is a comment with its replies resolved into a tree.
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}

// AuthorRank is one row of the author ranking.
type AuthorRank struct {
	Author    string `json:"author"`
	PostCount int    `json:"postCount"`
}

// TopPost is one row of the top-commented-posts ranking.
type TopPost struct {
	PostID       string `json:"postId"`
	CommentCount int    `json:"commentCount"`
	Post         *Post  `json:"post"`
}

// DayCount is one row of the posts-per-day series. Date is a UTC calendar
// date formatted YYYY-MM-DD.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
