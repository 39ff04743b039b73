package services

import (
	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
	"github.com/jobhubs/backoffice/internal/pkg/auth"
	"github.com/jobhubs/backoffice/internal/pkg/logger"
)

// AuthService verifies the configured admin credential and issues the
// session tokens the console stores. The credential never leaves
// configuration; only its bcrypt hash is compared.
type AuthService struct {
	adminUsername     string
	adminPasswordHash string
	jwtService        *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminUsername, adminPasswordHash string, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtService:        jwtService,
	}
}

// Login checks the credential pair and issues an access token. Both the
// unknown-username and wrong-password cases collapse into
// ErrInvalidCredentials so the response never says which half failed.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Username != s.adminUsername || !auth.CheckPassword(s.adminPasswordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(req.Username)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", req.Username).Msg("Admin login succeeded")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// Validate checks a raw token and returns its claims.
func (s *AuthService) Validate(token string) (*auth.Claims, error) {
	return s.jwtService.ValidateToken(token)
}
