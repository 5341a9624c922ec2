package service

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

// fakeUserStore keeps User documents in a map and mimics the driver errors
// the real store surfaces: mongo.ErrNoDocuments for missing documents and a
// duplicate-key WriteException for a reused email.
type fakeUserStore struct {
	users map[string]model.User
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	f := &fakeUserStore{users: map[string]model.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) UserInsert(ctx context.Context, u model.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) UserFindByID(ctx context.Context, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserStore) UserFindByEmail(ctx context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, mongo.ErrNoDocuments
}

func (f *fakeUserStore) UserReplace(ctx context.Context, u model.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) UserDelete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.users, id)
	return nil
}

// fakeComponentStore is the catalog counterpart, generic over the document
// type like the real store.
type fakeComponentStore[T any] struct {
	docs map[string]T
	ids  func(T) string
}

func newFakeComponentStore[T any](ids func(T) string) *fakeComponentStore[T] {
	return &fakeComponentStore[T]{docs: map[string]T{}, ids: ids}
}

func (f *fakeComponentStore[T]) FindAll(ctx context.Context) ([]T, error) {
	all := []T{}
	for _, doc := range f.docs {
		all = append(all, doc)
	}
	return all, nil
}

func (f *fakeComponentStore[T]) FindByID(ctx context.Context, id string) (T, error) {
	doc, ok := f.docs[id]
	if !ok {
		var zero T
		return zero, mongo.ErrNoDocuments
	}
	return doc, nil
}

func (f *fakeComponentStore[T]) Insert(ctx context.Context, doc T) error {
	f.docs[f.ids(doc)] = doc
	return nil
}

func (f *fakeComponentStore[T]) Replace(ctx context.Context, id string, doc T) error {
	if _, ok := f.docs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.docs[id] = doc
	return nil
}

func (f *fakeComponentStore[T]) Delete(ctx context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.docs, id)
	return nil
}

func mustPrice(s string) model.Price {
	p, err := model.NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}
