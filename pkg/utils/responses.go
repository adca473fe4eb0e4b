package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
)

// ErrorResponse is the error body shape shared by both servers. Fields is
// only present for missing-required-field violations.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// ResponseJSON writes data as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ResponseError maps a typed error to its status code and writes the
// {"error": ...} body. Anything outside the taxonomy becomes a 500.
func ResponseError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Unexpected server error"})
		return
	}

	ResponseJSON(w, statusForKind(appErr.Kind), ErrorResponse{
		Error:  appErr.Message,
		Fields: appErr.Fields,
	})
}

// ResponseErrorMessage writes an error body with an explicit status code,
// for boundary failures that never reach the service layer.
func ResponseErrorMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorResponse{Error: message})
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindMalformed:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
