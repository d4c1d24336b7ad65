package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/teamflow/pms/internal/auth"
	"github.com/teamflow/pms/pkg/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

type loginResponse struct {
	Token tokenResponse `json:"token"`
	User  models.User   `json:"user"`
}

// handleLogin verifies credentials and issues an access token. Invalid
// email and invalid password answer identically.
func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := s.store.UserByEmail(req.Email)
	if err != nil || !user.IsActive || !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("Failed to issue token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: tokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int(s.tokens.TTL().Seconds()),
		},
		User: user,
	})
}

// handleMe returns the authenticated account.
func (s *Service) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r))
}
