// internal/app/system/httpapi/httpapi.go
//
// Package httpapi holds the JSON response helpers and the error taxonomy
// shared by every handler: BadRequest (malformed/missing input), NotFound
// (unknown entity), Conflict (invariant violation), Unauthorized (no
// session), Internal (storage failure). Handlers map store sentinel errors
// onto exactly one of these; callers never have to infer success from a
// partial body.
package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the uniform error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// BadRequest writes a 400 with the given message.
func BadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusNotFound, errorBody{Error: msg})
}

// Conflict writes a 409 with the given message.
func Conflict(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusConflict, errorBody{Error: msg})
}

// Unauthorized writes a 401 with the given message.
func Unauthorized(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusUnauthorized, errorBody{Error: msg})
}

// Forbidden writes a 403 with the given message.
func Forbidden(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusForbidden, errorBody{Error: msg})
}

// Internal writes a 500 with the given message.
func Internal(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusInternalServerError, errorBody{Error: msg})
}

// DecodeBody decodes a JSON request body into dst. It returns false (after
// writing a 400) when the body is not valid JSON.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// ErrorLogger logs server-side detail and writes a client-safe message.
// Handlers use it for unexpected failures; expected domain errors go
// straight to the taxonomy writers above.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs logMsg with the underlying error, then answers 500
// with userMsg.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	el.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Internal(w, userMsg)
}
