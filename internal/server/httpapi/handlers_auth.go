package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "DataChart API is running",
		"version": apiVersion,
		"status":  "healthy",
	})
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") || req.Password == "" {
		writeError(w, http.StatusBadRequest, "A valid email and a password are required")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"email": user.Email,
		"role":  user.Role,
	})
}

// handleToken exchanges form-encoded credentials for a bearer token. The
// field names follow the OAuth2 password grant the frontend speaks.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	writeJSON(w, http.StatusOK, map[string]string{
		"email": identity.Email,
		"role":  identity.Role,
	})
}
