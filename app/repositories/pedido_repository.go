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

// PedidoRepository handles the pedidos collection.
type PedidoRepository struct {
	col *mongo.Collection
}

func NewPedidoRepository(db *mongo.Database) *PedidoRepository {
	return &PedidoRepository{col: db.Collection("pedidos")}
}

// Create inserts the stamped order document and returns the assigned
// identifier. id_pedido is NOT checked for uniqueness.
func (r *PedidoRepository) Create(ctx context.Context, p models.Pedido) (primitive.ObjectID, error) {
	defer metrics.ObserveStoreOp("pedidos", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByID fetches one order by its storage identifier (the re-fetch after
// insert that confirms the write).
func (r *PedidoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Pedido, error) {
	defer metrics.ObserveStoreOp("pedidos", "find", time.Now())

	var p models.Pedido
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, err
}
