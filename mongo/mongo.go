// Package mongo provides MongoDB-based storage implementations for nicobar services.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	ArticlesCollection  = "articles"
	GameCardsCollection = "card_game_one_piece"
)

// DefaultDatabase is used when no database name is configured.
const DefaultDatabase = "nicobar"

// connectTimeout bounds Open and Close.
const connectTimeout = 10 * time.Second

// DB represents a MongoDB connection.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	uri      string
	name     string
}

// NewDB creates a new DB instance for the given connection URI and database name.
func NewDB(uri, name string) *DB {
	if name == "" {
		name = DefaultDatabase
	}
	return &DB{uri: uri, name: name}
}

// Open connects, verifies the connection and creates indexes.
func (db *DB) Open(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(db.uri))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db.client = client
	db.database = client.Database(db.name)

	if err := db.createIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (db *DB) Close() error {
	if db.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return db.client.Disconnect(ctx)
}

func (db *DB) collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

func (db *DB) createIndexes(ctx context.Context) error {
	if _, err := db.collection(ArticlesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	}); err != nil {
		return err
	}
	_, err := db.collection(GameCardsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "set", Value: 1}},
	})
	return err
}
