// Package api implements the uniform JSON envelope every endpoint
// responds with, success and error alike.
package api

import (
	"encoding/json"
	"net/http"
)

// Response is the wire envelope. Data is empty on error responses.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 envelope around data.
func OK(w http.ResponseWriter, data any, message string) {
	WriteJSON(w, http.StatusOK, Response{StatusCode: http.StatusOK, Data: data, Message: message})
}

// Error writes an envelope with no data and the given status in both the
// HTTP status line and the body.
func Error(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{StatusCode: status, Message: message})
}

// Convenience helpers
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func Internal(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error."
	}
	Error(w, http.StatusInternalServerError, message)
}
