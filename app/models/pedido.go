package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ItemPedido is one line item inside an order. Titulo and PrecioUnitario are
// denormalized snapshots taken at order time; IDLibro is a reference string,
// never checked against the libros collection.
type ItemPedido struct {
	IDLibro        string `bson:"id_libro" json:"id_libro" validate:"required,objectid"`
	Titulo         string `bson:"titulo" json:"titulo" validate:"required"`
	PrecioUnitario int    `bson:"precio_unitario" json:"precio_unitario"`
	Cantidad       int    `bson:"cantidad" json:"cantidad"`
}

// DireccionEnvio is the order's shipping address. Every field is required;
// a missing field rejects the whole order payload.
type DireccionEnvio struct {
	NombreCompleto string `bson:"nombre_completo" json:"nombre_completo" validate:"required"`
	Email          string `bson:"email" json:"email" validate:"required,email"`
	Direccion      string `bson:"direccion" json:"direccion" validate:"required"`
	Ciudad         string `bson:"ciudad" json:"ciudad" validate:"required"`
	Region         string `bson:"region" json:"region" validate:"required"`
}

// PedidoBase is the create shape for an order. IDUsuario is the customer's
// email, not a foreign key. The items key must be supplied, but the sequence
// may be empty; no minimum length applies.
type PedidoBase struct {
	IDUsuario      string         `bson:"id_usuario" json:"id_usuario" validate:"required,email"`
	Subtotal       int            `bson:"subtotal" json:"subtotal"`
	CostoEnvio     int            `bson:"costo_envio" json:"costo_envio"`
	Total          int            `bson:"total" json:"total"`
	DireccionEnvio DireccionEnvio `bson:"direccion_envio" json:"direccion_envio"`
	Items          []ItemPedido   `bson:"items" json:"items" validate:"present"`
}

// Pedido is the read shape: the create fields plus the store identifier and
// the three server-generated fields stamped at creation. Estado is set once
// to "Pendiente" and never transitioned by this service.
type Pedido struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PedidoBase  `bson:",inline"`
	IDPedido    string `bson:"id_pedido" json:"id_pedido"`
	FechaPedido string `bson:"fecha_pedido" json:"fecha_pedido"`
	Estado      string `bson:"estado" json:"estado"`
}
