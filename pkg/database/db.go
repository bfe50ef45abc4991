// Package database owns the process-wide MongoDB client.
//
// The client is acquired exactly once at process start (Connect) and released
// exactly once at process stop (Disconnect). Everything else receives the
// *mongo.Database handle explicitly; there is no per-request dialing and no
// reconnection logic.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joseenriquez/lecturaviva/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect dials MongoDB, verifies the connection with a ping, and keeps the
// client for the lifetime of the process. Returns an error instead of calling
// log.Fatal so the caller can shut down gracefully.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), config.MongoConnectTimeout())
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	c, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	client = c
	db = c.Database(config.DatabaseName())
	return nil
}

// Disconnect releases the client. Called once during shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("database: disconnect: %w", err)
	}
	client = nil
	db = nil
	return nil
}

// DB returns the shared database handle. Nil before Connect.
func DB() *mongo.Database {
	return db
}

// Ping verifies the connection is live (used by the health endpoint).
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("database: not connected")
	}
	return client.Ping(ctx, nil)
}
