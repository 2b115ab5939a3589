package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"serwer-pulpitu/internal/auth"
	"serwer-pulpitu/internal/desktop"
	"serwer-pulpitu/internal/models"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Desktop  string `json:"desktop" example:"terminal-7"`
	Password string `json:"password" example:"password123"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...."`
	SessionID   uuid.UUID `json:"session_id" example:"a1b2c3d4-e5f6-7890-1234-567890abcdef"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// @Summary      Logs in to a desktop
// @Description  Checks the shared password and returns an access token bound to one desktop. The desktop is created with the default file tree on first login.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest   body      LoginRequest  true  "Login Credentials"
// @Success      200            {object}  TokenResponse
// @Failure      400            {string}  string "Invalid request body or desktop id"
// @Failure      401            {string}  string "Invalid password"
// @Failure      500            {string}  string "Internal Server Error"
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := desktop.ValidateID(req.Desktop); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if hash := s.config.Auth.PasswordHash; hash != "" && !auth.CheckPasswordHash(req.Password, hash) {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	if _, err := s.desktops.Open(r.Context(), req.Desktop); err != nil {
		writeError(w, err, "Failed to open desktop")
		return
	}

	sessionID := uuid.New()
	accessToken, expiresAt, err := auth.GenerateJWT(req.Desktop, sessionID, s.config.JWT.Secret)
	if err != nil {
		http.Error(w, "Failed to generate access token", http.StatusInternalServerError)
		return
	}

	session := models.Session{
		ID:        sessionID,
		DesktopID: req.Desktop,
		UserAgent: r.UserAgent(),
		ClientIP:  r.RemoteAddr,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.addSession(r.Context(), session); err != nil {
		log.Printf("ERROR: Failed to create session for desktop %s: %v", req.Desktop, err)
		http.Error(w, "Failed to process login session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		SessionID:   sessionID,
		ExpiresAt:   expiresAt,
	})
}

// @Summary      Logs out
// @Description  Terminates the session the token belongs to.
// @Tags         auth
// @Security     BearerAuth
// @Success      204  {null}    nil "No Content"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /auth/logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	if _, err := s.removeSessions(r.Context(), claims.DesktopID, func(sess models.Session) bool {
		return sess.ID == claims.SessionID
	}); err != nil {
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
