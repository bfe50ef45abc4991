// Package response writes JSON responses.
//
// Success bodies are the raw document (or array) itself; the storefront
// consumes them directly, so there is no envelope. Errors use a
// `{"detail": ...}` body; validation failures add a field→message map.
package response

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data as the body.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, data)
}

// Created sends a 201 with data as the body.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, data)
}

// Detail sends an error response with the given status and detail message.
func Detail(w http.ResponseWriter, status int, detail string) {
	write(w, status, errorBody{Detail: detail})
}

// BadRequest sends a 400.
func BadRequest(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusBadRequest, detail)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Detail(w, http.StatusNotFound, "Not found")
}

// ServerError sends a 500.
func ServerError(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusInternalServerError, detail)
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, errorBody{
		Detail: "Validation failed",
		Errors: errs,
	})
}
