package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Producto represents a product in the catalogue.
type Producto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	NombreProd  string             `bson:"nombre_produc" json:"nombre_produc"`
	Descripcion string             `bson:"descripcion" json:"descripcion"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Img         string             `bson:"img" json:"img"`
	Excluido    bool               `bson:"excluido" json:"excluido"`
	Novedad     bool               `bson:"novedad" json:"novedad"`
}

// ProductoCreate is the client-supplied shape. Numeric and boolean fields
// carry no presence rule: zero and false are valid submitted values.
type ProductoCreate struct {
	NombreProd  string  `json:"nombre_produc" validate:"required"`
	Descripcion string  `json:"descripcion"   validate:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"` // non-negative by convention, not enforced
	Img         string  `json:"img"           validate:"required"`
	Excluido    bool    `json:"excluido"`
	Novedad     bool    `json:"novedad"`
}

func (c ProductoCreate) Document() Producto {
	return Producto{
		NombreProd:  c.NombreProd,
		Descripcion: c.Descripcion,
		Price:       c.Price,
		Stock:       c.Stock,
		Img:         c.Img,
		Excluido:    c.Excluido,
		Novedad:     c.Novedad,
	}
}
