package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/datachart/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders the body as {"detail": ...}, the shape the frontend
// already expects for every failure.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeServiceError maps sentinel errors from the service layer onto HTTP
// statuses. Anything unmapped is a 500 and gets logged with the cause; the
// client only sees a generic message.
func (s *Server) writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, common.ErrorUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, common.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "Not authorized to access this dataset")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Dataset not found")
	case errors.Is(err, common.ErrorUnsupportedFileType):
		writeError(w, http.StatusBadRequest, "Invalid file type. Only CSV and Excel files are allowed.")
	case errors.Is(err, common.ErrorParse):
		writeError(w, http.StatusBadRequest, "Error processing file: "+err.Error())
	case errors.Is(err, common.ErrorInvalidColumn),
		errors.Is(err, common.ErrorNoNumericColumn),
		errors.Is(err, common.ErrorColumnNotNumeric),
		errors.Is(err, common.ErrorInvalidAggregation),
		errors.Is(err, common.ErrorNotArchived):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
