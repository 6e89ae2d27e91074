package formhttp

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ValidationResponse is returned by the validate endpoint.
type ValidationResponse struct {
	Form   string                      `json:"form"`
	Valid  bool                        `json:"valid"`
	Fields map[string]validator.Status `json:"fields"`
}

// ErrorResponse wraps ErrorDetail.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) error {
	return writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
