package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Create handles POST /api/posts
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(&req)
	if err != nil {
		sendError(w, "failed to create post: "+err.Error(), statusForError(err))
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Show handles GET /api/posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, "failed to fetch post: "+err.Error(), statusForError(err))
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Index handles GET /api/posts with optional author filter and pagination.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 0
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			page = p
		}
	}

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	result, err := pc.postService.ListPosts(query.Get("author"), page, limit)
	if err != nil {
		sendError(w, "failed to fetch posts: "+err.Error(), statusForError(err))
		return
	}

	sendJSON(w, http.StatusOK, result)
}
