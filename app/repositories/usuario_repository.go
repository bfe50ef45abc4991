// Package repositories performs the document store operations, one
// repository per collection. Each method is a single insert or find; the
// store's own single-document guarantees are the only isolation layer.
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/pkg/metrics"
)

// UsuarioRepository handles the usuarios collection.
type UsuarioRepository struct {
	col *mongo.Collection
}

func NewUsuarioRepository(db *mongo.Database) *UsuarioRepository {
	return &UsuarioRepository{col: db.Collection("usuarios")}
}

// Create inserts a new user document and returns the assigned identifier.
func (r *UsuarioRepository) Create(ctx context.Context, u models.Usuario) (primitive.ObjectID, error) {
	defer metrics.ObserveStoreOp("usuarios", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByID fetches one user by its storage identifier.
func (r *UsuarioRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Usuario, error) {
	defer metrics.ObserveStoreOp("usuarios", "find", time.Now())

	var u models.Usuario
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, err
}

// All returns every user document.
func (r *UsuarioRepository) All(ctx context.Context) ([]models.Usuario, error) {
	defer metrics.ObserveStoreOp("usuarios", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	usuarios := []models.Usuario{}
	if err := cur.All(ctx, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}
