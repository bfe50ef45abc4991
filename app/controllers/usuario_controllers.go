// Package controllers contains the HTTP handlers. Each controller depends on
// a small store interface so tests can substitute fakes for the real
// repositories.
package controllers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/pkg/bind"
	"github.com/joseenriquez/lecturaviva/pkg/logger"
	"github.com/joseenriquez/lecturaviva/pkg/response"
)

// UsuarioStore is the slice of the usuarios repository the controller needs.
type UsuarioStore interface {
	Create(ctx context.Context, u models.Usuario) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Usuario, error)
	All(ctx context.Context) ([]models.Usuario, error)
}

type UsuarioController struct {
	store UsuarioStore
}

func NewUsuarioController(store UsuarioStore) *UsuarioController {
	return &UsuarioController{store: store}
}

// Create handles POST /usuarios/: validate, insert, re-fetch, serialize.
func (c *UsuarioController) Create(w http.ResponseWriter, r *http.Request) {
	var body models.UsuarioCreate

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.store.Create(r.Context(), body.Document())
	if err != nil {
		response.ServerError(w, "Error al crear el usuario en la DB: "+err.Error())
		return
	}

	created, err := c.store.FindByID(r.Context(), id)
	if err != nil {
		response.ServerError(w, "Error al crear el usuario en la DB: "+err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("usuario creado", "id", created.ID.Hex())
	response.Created(w, created)
}

// List handles GET /usuarios/.
func (c *UsuarioController) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := c.store.All(r.Context())
	if err != nil {
		response.ServerError(w, "Error al obtener usuarios: "+err.Error())
		return
	}
	response.Success(w, usuarios)
}
