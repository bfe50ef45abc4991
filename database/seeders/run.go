// Package seeders loads the initial catalogue into the store.
package seeders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/app/repositories"
)

// catalogue is the Lectura Viva starter inventory. Prices in minor units.
var catalogue = []models.LibroCreate{
	{Titulo: "Estudio en Escarlata", Autor: "A. Conan Doyle", Precio: 10990, Genero: "Novela Negra", Novedad: true, ImagenURL: "Sherlock.webp"},
	{Titulo: "El Sabueso de los Baskerville", Autor: "A. Conan Doyle", Precio: 11990, Genero: "Novela Negra", ImagenURL: "Baskerville.webp"},
	{Titulo: "Cien Años de Soledad", Autor: "Gabriel García Márquez", Precio: 14990, Genero: "Realismo Mágico", Exclusivo: true, ImagenURL: "CienAnos.webp"},
	{Titulo: "La Casa de los Espíritus", Autor: "Isabel Allende", Precio: 13490, Genero: "Realismo Mágico", ImagenURL: "CasaEspiritus.webp"},
	{Titulo: "Papelucho", Autor: "Marcela Paz", Precio: 7990, Genero: "Infantil", Novedad: true, ImagenURL: "Papelucho.webp"},
}

// Run seeds the libros collection. Idempotent: a non-empty collection is
// left untouched.
func Run(ctx context.Context, db *mongo.Database) error {
	repo := repositories.NewLibroRepository(db)

	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seeders: count libros: %w", err)
	}
	if n > 0 {
		fmt.Printf("libros ya poblados (%d documentos), nada que hacer\n", n)
		return nil
	}

	libros := make([]models.Libro, len(catalogue))
	for i, c := range catalogue {
		libros[i] = c.Document()
	}

	if err := repo.InsertMany(ctx, libros); err != nil {
		return fmt.Errorf("seeders: insert libros: %w", err)
	}

	fmt.Printf("%d libros sembrados\n", len(libros))
	return nil
}
