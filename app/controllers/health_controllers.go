package controllers

import (
	"net/http"

	"github.com/joseenriquez/lecturaviva/pkg/database"
	"github.com/joseenriquez/lecturaviva/pkg/response"
)

// Health handles GET /health: liveness plus store connectivity.
func Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	store := "ok"
	if err := database.Ping(r.Context()); err != nil {
		status = "degraded"
		store = err.Error()
	}

	response.Success(w, map[string]string{
		"status": status,
		"store":  store,
	})
}
