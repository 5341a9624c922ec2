package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

// ComponentStore is the persistence gateway for one catalog collection.
type ComponentStore[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, doc T) error
	Replace(ctx context.Context, id string, doc T) error
	Delete(ctx context.Context, id string) error
}

// Catalog is the uniform CRUD service shared by every hardware component
// type and by PC/Workstation builds. PT is the pointer form of T, which
// every catalog model implements model.Component on.
type Catalog[T any, PT interface {
	*T
	model.Component
}] struct {
	Store    ComponentStore[T]
	NotFound error
}

func (c Catalog[T, PT]) List(ctx context.Context) ([]T, error) {
	return c.Store.FindAll(ctx)
}

func (c Catalog[T, PT]) Get(ctx context.Context, id string) (T, error) {
	doc, err := c.Store.FindByID(ctx, id)
	if err != nil && errors.Is(err, mongo.ErrNoDocuments) {
		return doc, errors.Wrapf(c.NotFound, "no document with ID: %s", id)
	}
	return doc, err
}

// Create assigns a generated ID when the entity carries none and persists it.
func (c Catalog[T, PT]) Create(ctx context.Context, doc T) (T, error) {
	if PT(&doc).ComponentID() == "" {
		PT(&doc).SetComponentID(uuid.NewString())
	}
	if err := c.Store.Insert(ctx, doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// Update is a full-document replacement, there is no partial-field patching.
func (c Catalog[T, PT]) Update(ctx context.Context, doc T) error {
	err := c.Store.Replace(ctx, PT(&doc).ComponentID(), doc)
	if err != nil && errors.Is(err, mongo.ErrNoDocuments) {
		return errors.Wrapf(c.NotFound, "no document with ID: %s", PT(&doc).ComponentID())
	}
	return err
}

func (c Catalog[T, PT]) Delete(ctx context.Context, id string) error {
	err := c.Store.Delete(ctx, id)
	if err != nil && errors.Is(err, mongo.ErrNoDocuments) {
		return errors.Wrapf(c.NotFound, "no document with ID: %s", id)
	}
	return err
}

// AttachPhoto prepends url to the entity's photo list. An unknown id fails
// with the type's not-found error, same as every other operation.
func (c Catalog[T, PT]) AttachPhoto(ctx context.Context, id string, url string) (T, error) {
	doc, err := c.Get(ctx, id)
	if err != nil {
		return doc, err
	}
	PT(&doc).PrependPhoto(url)
	if err = c.Store.Replace(ctx, id, doc); err != nil {
		return doc, err
	}
	return doc, nil
}
