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

// ProductoRepository handles the productos collection.
type ProductoRepository struct {
	col *mongo.Collection
}

func NewProductoRepository(db *mongo.Database) *ProductoRepository {
	return &ProductoRepository{col: db.Collection("productos")}
}

func (r *ProductoRepository) Create(ctx context.Context, p models.Producto) (primitive.ObjectID, error) {
	defer metrics.ObserveStoreOp("productos", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *ProductoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Producto, error) {
	defer metrics.ObserveStoreOp("productos", "find", time.Now())

	var p models.Producto
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, err
}

func (r *ProductoRepository) All(ctx context.Context) ([]models.Producto, error) {
	defer metrics.ObserveStoreOp("productos", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	productos := []models.Producto{}
	if err := cur.All(ctx, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}
