package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create handles POST /api/posts/{id}/comments. Commenting is deliberately
// public: only post creation sits behind the auth gate.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.CreateComment(postID, &req)
	if err != nil {
		sendError(w, "failed to add comment: "+err.Error(), statusForError(err))
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}

// Index handles GET /api/posts/{id}/comments, newest first.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		sendError(w, "failed to fetch comments: "+err.Error(), statusForError(err))
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	sendJSON(w, http.StatusOK, comments)
}

// Thread handles GET /api/posts/{id}/comments/thread, returning the
// comments as reply trees.
func (cc *CommentController) Thread(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	thread, err := cc.commentService.ThreadPostComments(postID)
	if err != nil {
		sendError(w, "failed to fetch comments: "+err.Error(), statusForError(err))
		return
	}

	sendJSON(w, http.StatusOK, thread)
}
