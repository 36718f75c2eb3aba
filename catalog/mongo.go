package catalog

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource reads product records from the remote data service's
// products collection, joining category names through the categories
// lookup referenced by category_ref.
type MongoSource struct {
	Products   *mongo.Collection
	Categories *mongo.Collection
}

// NewMongoSource creates a MongoSource over the storefront database.
func NewMongoSource(client *mongo.Client) *MongoSource {
	db := client.Database("storefront")
	return &MongoSource{
		Products:   db.Collection("products"),
		Categories: db.Collection("categories"),
	}
}

// List fetches product records matching the given options.
func (s *MongoSource) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category_ref"] = opts.Category
	}

	findOpts := options.Find()
	if opts.NewestFirst {
		findOpts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cursor, err := s.Products.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, errors.Wrap(err, "could not query products")
	}
	defer cursor.Close(ctx)

	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "could not decode products")
	}

	if err := s.joinCategories(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches a single product record by identifier.
func (s *MongoSource) Get(ctx context.Context, id string) (Record, error) {
	var rec Record
	err := s.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, errors.Wrap(err, "could not fetch product")
	}

	recs := []Record{rec}
	if err := s.joinCategories(ctx, recs); err != nil {
		return Record{}, err
	}
	return recs[0], nil
}

// joinCategories resolves category_ref values to display names in place.
// An unknown reference is left empty and normalized to "Uncategorized"
// by the resolver.
func (s *MongoSource) joinCategories(ctx context.Context, records []Record) error {
	refs := make([]string, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.CategoryRef != "" && !seen[rec.CategoryRef] {
			refs = append(refs, rec.CategoryRef)
			seen[rec.CategoryRef] = true
		}
	}
	if len(refs) == 0 {
		return nil
	}

	cursor, err := s.Categories.Find(ctx, bson.M{"_id": bson.M{"$in": refs}})
	if err != nil {
		return errors.Wrap(err, "could not query categories")
	}
	defer cursor.Close(ctx)

	type categoryDoc struct {
		ID   string `bson:"_id"`
		Name string `bson:"name"`
	}
	names := make(map[string]string, len(refs))
	for cursor.Next(ctx) {
		var c categoryDoc
		if err := cursor.Decode(&c); err != nil {
			return errors.Wrap(err, "could not decode category")
		}
		names[c.ID] = c.Name
	}
	if err := cursor.Err(); err != nil {
		return errors.Wrap(err, "could not read categories")
	}

	for i := range records {
		records[i].CategoryName = names[records[i].CategoryRef]
	}
	return nil
}
