package dto

import "time"

// LoginRequest represents the backoffice login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the issued session token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthUser represents the authenticated backoffice principal
type AuthUser struct {
	Username string `json:"username"`
	Role     string `json:"role" example:"ADMIN"`
}

// AuthResponse mirrors the {isAuthenticated, user, timestamp} shape the
// console persists as its last-known auth status.
type AuthResponse struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	User            AuthUser  `json:"user"`
	Timestamp       time.Time `json:"timestamp"`
}
