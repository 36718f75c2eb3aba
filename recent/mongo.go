package recent

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists browser key-value data in a collection, one document
// per key. It backs the recently-viewed tracker across page reloads.
type MongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore creates a MongoStore over the browser_storage collection.
func NewMongoStore(client *mongo.Client) *MongoStore {
	return &MongoStore{
		Collection: client.Database("storefront").Collection("browser_storage"),
	}
}

type storageDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (s *MongoStore) Get(ctx context.Context, key string) (string, error) {
	var doc storageDoc
	err := s.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrNoValue
	}
	if err != nil {
		return "", errors.Wrap(err, "could not read browser storage")
	}
	return doc.Value, nil
}

func (s *MongoStore) Set(ctx context.Context, key, value string) error {
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	return errors.Wrap(err, "could not write browser storage")
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": key})
	return errors.Wrap(err, "could not clear browser storage")
}
