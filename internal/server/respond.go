package server

import (
	"encoding/json"
	"net/http"

	"todo-manager/internal/errors"
	"todo-manager/internal/validation"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// writeDomainError maps application errors to HTTP responses. Validation
// failures carry the full per-field message list so the caller sees every
// violation at once.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	switch appErr.Type {
	case errors.ErrorTypeAuthentication:
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.ErrorTypeNotFound:
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.ErrorTypeValidation:
		body := map[string]any{"error": "validation failed"}
		if ve, isVE := appErr.Cause.(*validation.ValidationError); isVE {
			body["messages"] = ve.Messages()
		} else {
			body["messages"] = []string{appErr.Message}
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.ErrorTypeInvalidInput:
		writeError(w, http.StatusBadRequest, errors.GetUserMessage(appErr))
	default:
		if s.logger != nil {
			s.logger.Printf("internal error: %v", err)
		}
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
