package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

// UserStore is the persistence gateway for User documents, including the
// embedded basket and order lists.
type UserStore interface {
	UserInsert(ctx context.Context, u model.User) error
	UserFindByID(ctx context.Context, id string) (model.User, error)
	UserFindByEmail(ctx context.Context, email string) (model.User, error)
	UserReplace(ctx context.Context, u model.User) error
	UserDelete(ctx context.Context, id string) error
}

// Basket mutates the basket list embedded in a User document. Every mutation
// reads the whole document, changes the list in memory, and writes the whole
// document back; concurrent writers to the same user are last-write-wins.
type Basket struct {
	Store UserStore
}

func (b Basket) Items(ctx context.Context, userID string) ([]model.Item, error) {
	u, err := b.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Basket, nil
}

// AddItem appends item to the basket. Repeated adds of the same item create
// repeated entries, there is no merging.
func (b Basket) AddItem(ctx context.Context, userID string, item model.Item) (model.Item, error) {
	u, err := b.user(ctx, userID)
	if err != nil {
		return model.Item{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	u.Basket = append(u.Basket, item)
	if err = b.Store.UserReplace(ctx, u); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (b Basket) RemoveItem(ctx context.Context, userID string, itemID string) error {
	u, err := b.user(ctx, userID)
	if err != nil {
		return err
	}
	for i, item := range u.Basket {
		if item.ID == itemID {
			u.Basket = append(u.Basket[:i], u.Basket[i+1:]...)
			return b.Store.UserReplace(ctx, u)
		}
	}
	return errors.Wrapf(ErrItemNotFound, "item with ID: %s not in basket of User with ID: %s", itemID, userID)
}

func (b Basket) Clear(ctx context.Context, userID string) error {
	u, err := b.user(ctx, userID)
	if err != nil {
		return err
	}
	u.Basket = []model.Item{}
	return b.Store.UserReplace(ctx, u)
}

func (b Basket) TotalPrice(ctx context.Context, userID string) (model.Price, error) {
	u, err := b.user(ctx, userID)
	if err != nil {
		return model.Price{}, err
	}
	return basketTotal(u.Basket), nil
}

// basketTotal sums item prices with exact decimal arithmetic. An empty basket
// totals zero.
func basketTotal(items []model.Item) model.Price {
	var total model.Price
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}

func (b Basket) user(ctx context.Context, userID string) (model.User, error) {
	u, err := b.Store.UserFindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return u, errors.Wrapf(ErrUserNotFound, "no User with ID: %s", userID)
		}
		return u, err
	}
	return u, nil
}
