package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Libro is a book in the Lectura Viva catalogue. Prices are in currency
// minor units. Genero and ImagenURL are optional.
type Libro struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Titulo    string             `bson:"titulo" json:"titulo"`
	Autor     string             `bson:"autor" json:"autor"`
	Precio    int                `bson:"precio" json:"precio"`
	Genero    string             `bson:"genero,omitempty" json:"genero,omitempty"`
	Novedad   bool               `bson:"novedad" json:"novedad"`
	Exclusivo bool               `bson:"exclusivo" json:"exclusivo"`
	ImagenURL string             `bson:"imagen_url,omitempty" json:"imagen_url,omitempty"`
}

// LibroCreate is the create shape, used by the catalogue seeder.
type LibroCreate struct {
	Titulo    string `json:"titulo" validate:"required"`
	Autor     string `json:"autor"  validate:"required"`
	Precio    int    `json:"precio"`
	Genero    string `json:"genero,omitempty"`
	Novedad   bool   `json:"novedad"`
	Exclusivo bool   `json:"exclusivo"`
	ImagenURL string `json:"imagen_url,omitempty"`
}

func (c LibroCreate) Document() Libro {
	return Libro{
		Titulo:    c.Titulo,
		Autor:     c.Autor,
		Precio:    c.Precio,
		Genero:    c.Genero,
		Novedad:   c.Novedad,
		Exclusivo: c.Exclusivo,
		ImagenURL: c.ImagenURL,
	}
}
