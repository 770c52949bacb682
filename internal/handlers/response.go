package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/bloglist/internal/logger"
	"github.com/sbilibin2017/bloglist/internal/services"
)

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: malformatted id
	Error string `json:"error"`
}

const (
	msgMalformedBody   = "malformed request body"
	msgUnknownEndpoint = "unknown endpoint"
	msgInternal        = "something went wrong"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto a status code and error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message})
	case errors.Is(err, services.ErrMalformedID):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: services.ErrMalformedID.Error()})
	default:
		logger.Log.Errorw("internal server error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

// decodeBody decodes a JSON request body into v. An empty body decodes as {}.
func decodeBody(r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	return err == nil || errors.Is(err, io.EOF)
}

// NewNotFoundHandler answers requests for routes that do not exist.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgUnknownEndpoint})
	}
}
