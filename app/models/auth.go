package models

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the request against its field constraints.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// TokenResponse is the success body of POST /api/auth/login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}
