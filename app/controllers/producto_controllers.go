package controllers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/pkg/bind"
	"github.com/joseenriquez/lecturaviva/pkg/response"
)

// ProductoStore is the slice of the productos repository the controller needs.
type ProductoStore interface {
	Create(ctx context.Context, p models.Producto) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Producto, error)
	All(ctx context.Context) ([]models.Producto, error)
}

type ProductoController struct {
	store ProductoStore
}

func NewProductoController(store ProductoStore) *ProductoController {
	return &ProductoController{store: store}
}

// Create handles POST /productos/.
func (c *ProductoController) Create(w http.ResponseWriter, r *http.Request) {
	var body models.ProductoCreate

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
		response.ServerError(w, "Error al crear el producto: "+err.Error())
		return
	}

	created, err := c.store.FindByID(r.Context(), id)
	if err != nil {
		response.ServerError(w, "Error al crear el producto: "+err.Error())
		return
	}

	response.Created(w, created)
}

// List handles GET /productos/.
func (c *ProductoController) List(w http.ResponseWriter, r *http.Request) {
	productos, err := c.store.All(r.Context())
	if err != nil {
		response.ServerError(w, "Error al obtener productos: "+err.Error())
		return
	}
	response.Success(w, productos)
}
