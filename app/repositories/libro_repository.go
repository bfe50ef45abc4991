package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/pkg/metrics"
)

// LibroRepository handles the libros collection.
type LibroRepository struct {
	col *mongo.Collection
}

func NewLibroRepository(db *mongo.Database) *LibroRepository {
	return &LibroRepository{col: db.Collection("libros")}
}

// All returns the complete catalogue.
func (r *LibroRepository) All(ctx context.Context) ([]models.Libro, error) {
	defer metrics.ObserveStoreOp("libros", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	libros := []models.Libro{}
	if err := cur.All(ctx, &libros); err != nil {
		return nil, err
	}
	return libros, nil
}

// InsertMany loads catalogue documents in bulk (used by the seeder).
func (r *LibroRepository) InsertMany(ctx context.Context, libros []models.Libro) error {
	defer metrics.ObserveStoreOp("libros", "insert", time.Now())

	docs := make([]interface{}, len(libros))
	for i, l := range libros {
		docs[i] = l
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

// Count reports how many books exist (seeder idempotence check).
func (r *LibroRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
