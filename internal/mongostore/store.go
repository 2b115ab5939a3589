// Package mongostore implements kv.Store on a MongoDB collection, one
// document per key.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serwer-pulpitu/internal/kv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const entryCollection = "kv_entries"

type entry struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var e entry
	err := s.db.Collection(entryCollection).FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("key %s: %w", key, kv.ErrNotFound)
		}
		return nil, err
	}
	return e.Value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	update := bson.M{
		"$set": bson.M{
			"value":      value,
			"updated_at": time.Now().UTC(),
		},
	}
	_, err := s.db.Collection(entryCollection).UpdateOne(ctx,
		bson.M{"_id": key},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.Collection(entryCollection).DeleteOne(ctx, bson.M{"_id": key})
	return err
}

var _ kv.Store = (*Store)(nil)
