package controllers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/app/services"
	"github.com/joseenriquez/lecturaviva/pkg/bind"
	"github.com/joseenriquez/lecturaviva/pkg/logger"
	"github.com/joseenriquez/lecturaviva/pkg/response"
)

// PedidoStore is the slice of the pedidos repository the controller needs.
type PedidoStore interface {
	Create(ctx context.Context, p models.Pedido) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Pedido, error)
}

type PedidoController struct {
	store   PedidoStore
	service *services.PedidoService
}

func NewPedidoController(store PedidoStore, service *services.PedidoService) *PedidoController {
	return &PedidoController{store: store, service: service}
}

// Create handles POST /pedidos: validate the create shape (including the
// nested shipping address and line items), stamp the generated identity
// fields, insert, re-fetch by the assigned identifier, and return the read
// shape. Any estado the caller supplied is discarded by the create shape.
func (c *PedidoController) Create(w http.ResponseWriter, r *http.Request) {
	var body models.PedidoBase

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	pedido := c.service.NewPedido(body)

	id, err := c.store.Create(r.Context(), pedido)
	if err != nil {
		response.ServerError(w, "Error al crear el pedido: "+err.Error())
		return
	}

	created, err := c.store.FindByID(r.Context(), id)
	if err != nil {
		response.ServerError(w, "Error al crear el pedido: "+err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("pedido creado",
		"id", created.ID.Hex(),
		"id_pedido", created.IDPedido,
		"total", created.Total,
	)
	response.Created(w, created)
}
