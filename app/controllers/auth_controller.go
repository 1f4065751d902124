package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"inkwell/app/models"
	"inkwell/app/services"
)

// AuthController handles token issuance.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		sendError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	token, expires, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		sendError(w, "invalid credentials", statusForError(err))
		return
	}

	sendJSON(w, http.StatusOK, models.TokenResponse{
		Token:     token,
		ExpiresAt: expires.UTC().Format(time.RFC3339),
	})
}
