// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseMongoDAO provides common MongoDB operations for all entity DAOs.
type baseMongoDAO[T any, D any] struct {
	collection *mongo.Collection
}

// newBaseMongoDAO creates a new base MongoDB DAO instance.
func newBaseMongoDAO[T any, D any](db *mongo.Database, collectionName string) *baseMongoDAO[T, D] {
	return &baseMongoDAO[T, D]{
		collection: db.Collection(collectionName),
	}
}

// getCollection returns the MongoDB collection.
func (d *baseMongoDAO[T, D]) getCollection() *mongo.Collection {
	return d.collection
}

// count returns the count of documents matching the filter.
func (d *baseMongoDAO[T, D]) count(ctx context.Context, filter bson.M) (int64, error) {
	return d.collection.CountDocuments(ctx, filter)
}

// existsByFilter checks if any document matches the filter.
func (d *baseMongoDAO[T, D]) existsByFilter(ctx context.Context, filter bson.M) (bool, error) {
	count, err := d.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

// findOneByFilter finds a single document matching the filter.
func (d *baseMongoDAO[T, D]) findOneByFilter(ctx context.Context, filter bson.M, result any) error {
	return d.collection.FindOne(ctx, filter).Decode(result)
}

// findManyByFilter finds all documents matching the filter.
func (d *baseMongoDAO[T, D]) findManyByFilter(ctx context.Context, filter bson.M, opts *options.FindOptions, results any) error {
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

// insertOne inserts a single document and returns its generated object id.
func (d *baseMongoDAO[T, D]) insertOne(ctx context.Context, doc any) (any, error) {
	res, err := d.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

// updateOne updates a single document matching the filter and reports the
// matched and modified counts. Conditional set mutations rely on these to
// tell "document missing" apart from "guard not satisfied".
func (d *baseMongoDAO[T, D]) updateOne(ctx context.Context, filter bson.M, update bson.M) (matched, modified int64, err error) {
	res, err := d.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// updateMany updates all documents matching the filter.
func (d *baseMongoDAO[T, D]) updateMany(ctx context.Context, filter bson.M, update bson.M) error {
	_, err := d.collection.UpdateMany(ctx, filter, update)
	return err
}

// deleteOne deletes a single document matching the filter.
func (d *baseMongoDAO[T, D]) deleteOne(ctx context.Context, filter bson.M) error {
	_, err := d.collection.DeleteOne(ctx, filter)
	return err
}

// deleteMany deletes all documents matching the filter and reports how many.
func (d *baseMongoDAO[T, D]) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := d.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
