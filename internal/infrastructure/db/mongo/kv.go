package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultCollection = "local_storage"
	defaultTimeout    = 10 * time.Second
)

// Config selects the deployment, database and collection holding the keys.
type Config struct {
	URI        string
	Database   string
	Collection string
	// Timeout bounds connecting. Defaults to 10s.
	Timeout time.Duration
}

// KVStore keeps one document per key: {_id: key, value: "...", updated_at: unix}.
type KVStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type kvDocument struct {
	Key       string `bson:"_id"`
	Value     string `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

// NewKVStore stores keys in the named collection of db. An empty name uses
// "local_storage".
func NewKVStore(client *mongo.Client, db *mongo.Database, collection string) *KVStore {
	if collection == "" {
		collection = defaultCollection
	}
	return &KVStore{client: client, coll: db.Collection(collection)}
}

// Open connects to cfg.URI, pings the primary and returns a store over
// cfg.Database/cfg.Collection.
func Open(ctx context.Context, cfg Config) (*KVStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return NewKVStore(client, client.Database(cfg.Database), cfg.Collection), nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("mongo get %q: %w", key, err)
	}
	return doc.Value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	update := bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC().Unix()}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *KVStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}
