package mongorepo

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/blog-store/internal/config"
	"github.com/BloggingApp/blog-store/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const COLLECTION = "kv_store"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type Storage struct {
	coll *mongo.Collection
}

func New(db *mongo.Database) *Storage {
	return &Storage{
		coll: db.Collection(COLLECTION),
	}
}

// Connect opens a client and verifies it with a ping against the primary.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

func (r *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return doc.Value, nil
}

func (r *Storage) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *Storage) CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error) {
	now := time.Now().UTC()

	if old == nil {
		_, err := r.coll.InsertOne(ctx, kvDocument{Key: key, Value: value, UpdatedAt: now})
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": key, "value": old},
		bson.M{"$set": bson.M{"value": value, "updatedAt": now}},
	)
	if err != nil {
		return false, err
	}

	return res.MatchedCount == 1, nil
}
