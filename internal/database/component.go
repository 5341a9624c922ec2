package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ComponentStore is the persistence gateway shared by every catalog
// collection (CPUs, GPUs, RAMs, drives, boards, supplies, cases, builds).
// One instance per collection, the document type is fixed at construction.
type ComponentStore[T any] struct {
	coll *mongo.Collection
}

func NewComponentStore[T any](db Database, collection string) ComponentStore[T] {
	return ComponentStore[T]{coll: db.Collection(collection)}
}

func (s ComponentStore[T]) FindAll(ctx context.Context) ([]T, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find all documents in: %s", s.coll.Name())
	}
	docs := []T{}
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "error getting documents from cursor in: %s", s.coll.Name())
	}
	return docs, nil
}

func (s ComponentStore[T]) FindByID(ctx context.Context, id string) (T, error) {
	var doc T
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	return doc, errors.Wrapf(err, "error finding document with ID: %s in: %s", id, s.coll.Name())
}

func (s ComponentStore[T]) Insert(ctx context.Context, doc T) error {
	_, err := s.coll.InsertOne(ctx, doc)
	return errors.Wrapf(err, "error inserting document into: %s", s.coll.Name())
}

func (s ComponentStore[T]) Replace(ctx context.Context, id string, doc T) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return errors.Wrapf(err, "error replacing document with ID: %s in: %s", id, s.coll.Name())
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(mongo.ErrNoDocuments, "no document matched when replacing ID: %s in: %s", id, s.coll.Name())
	}
	return nil
}

func (s ComponentStore[T]) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting document with ID: %s in: %s", id, s.coll.Name())
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(mongo.ErrNoDocuments, "no document matched when deleting ID: %s in: %s", id, s.coll.Name())
	}
	return nil
}
