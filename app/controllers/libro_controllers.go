package controllers

import (
	"context"
	"net/http"

	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/pkg/response"
)

// LibroStore is the slice of the libros repository the controller needs.
type LibroStore interface {
	All(ctx context.Context) ([]models.Libro, error)
}

type LibroController struct {
	store LibroStore
}

func NewLibroController(store LibroStore) *LibroController {
	return &LibroController{store: store}
}

// List handles GET /libros: the full catalogue.
func (c *LibroController) List(w http.ResponseWriter, r *http.Request) {
	libros, err := c.store.All(r.Context())
	if err != nil {
		response.ServerError(w, "Error al obtener libros: "+err.Error())
		return
	}
	response.Success(w, libros)
}
