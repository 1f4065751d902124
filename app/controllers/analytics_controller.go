package controllers

import (
	"net/http"

	"inkwell/app/services"
)

// AnalyticsController handles HTTP requests for the analytics queries.
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// Authors handles GET /api/analytics/authors
func (ac *AnalyticsController) Authors(w http.ResponseWriter, r *http.Request) {
	ranking, err := ac.analyticsService.AuthorRanking()
	if err != nil {
		sendError(w, "failed to fetch authors ranking: "+err.Error(), statusForError(err))
		return
	}
	sendJSON(w, http.StatusOK, ranking)
}

// TopPosts handles GET /api/analytics/top-posts
func (ac *AnalyticsController) TopPosts(w http.ResponseWriter, r *http.Request) {
	top, err := ac.analyticsService.TopCommentedPosts()
	if err != nil {
		sendError(w, "failed to fetch top posts: "+err.Error(), statusForError(err))
		return
	}
	sendJSON(w, http.StatusOK, top)
}

// PostsPerDay handles GET /api/analytics/posts-per-day
func (ac *AnalyticsController) PostsPerDay(w http.ResponseWriter, r *http.Request) {
	series, err := ac.analyticsService.PostsPerDay()
	if err != nil {
		sendError(w, "failed to fetch posts per day: "+err.Error(), statusForError(err))
		return
	}
	sendJSON(w, http.StatusOK, series)
}
