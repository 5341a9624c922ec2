package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

// Orders converts basket snapshots into orders embedded in the User document.
type Orders struct {
	Basket Basket
}

// Place builds an Order from the submitted item snapshot. CompletePrice is
// the total of the user's current basket, not of the items parameter: the
// basket is the source of truth for pricing even when the two diverge.
// The basket itself is not cleared here, clearing is an explicit action.
func (o Orders) Place(ctx context.Context, userID string, items []model.Item) (model.Order, error) {
	u, err := o.Basket.user(ctx, userID)
	if err != nil {
		return model.Order{}, err
	}

	photos := make([]string, 0, len(items))
	for _, item := range items {
		photos = append(photos, item.PhotoURL)
	}
	order := model.Order{
		ID:            uuid.NewString(),
		Items:         items,
		CompletePrice: basketTotal(u.Basket),
		Status:        model.OrderStatusPending,
		PhotoURLs:     photos,
		CreatedAt:     primitive.NewDateTimeFromTime(time.Now()),
	}

	u.Orders = append(u.Orders, order)
	if err = o.Basket.Store.UserReplace(ctx, u); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (o Orders) Get(ctx context.Context, userID string, orderID string) (model.Order, error) {
	u, err := o.Basket.user(ctx, userID)
	if err != nil {
		return model.Order{}, err
	}
	for _, order := range u.Orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return model.Order{}, errors.Wrapf(ErrOrderNotFound, "no Order with ID: %s for User with ID: %s", orderID, userID)
}

// List returns all orders in insertion order.
func (o Orders) List(ctx context.Context, userID string) ([]model.Order, error) {
	u, err := o.Basket.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Orders, nil
}

func (o Orders) Remove(ctx context.Context, userID string, orderID string) error {
	u, err := o.Basket.user(ctx, userID)
	if err != nil {
		return err
	}
	for i, order := range u.Orders {
		if order.ID == orderID {
			u.Orders = append(u.Orders[:i], u.Orders[i+1:]...)
			return o.Basket.Store.UserReplace(ctx, u)
		}
	}
	return errors.Wrapf(ErrOrderNotFound, "no Order with ID: %s for User with ID: %s", orderID, userID)
}

// UpdateStatus overwrites the status in place, the order keeps its position
// in the list. Any status may replace any other, there is no transition graph.
func (o Orders) UpdateStatus(ctx context.Context, userID string, orderID string, status model.OrderStatus) (model.Order, error) {
	if !status.IsValid() {
		return model.Order{}, errors.Wrapf(ErrInvalidStatus, "unknown order status: %s", status)
	}
	u, err := o.Basket.user(ctx, userID)
	if err != nil {
		return model.Order{}, err
	}
	for i := range u.Orders {
		if u.Orders[i].ID == orderID {
			u.Orders[i].Status = status
			if err = o.Basket.Store.UserReplace(ctx, u); err != nil {
				return model.Order{}, err
			}
			return u.Orders[i], nil
		}
	}
	return model.Order{}, errors.Wrapf(ErrOrderNotFound, "no Order with ID: %s for User with ID: %s", orderID, userID)
}

func (o Orders) DeleteAll(ctx context.Context, userID string) error {
	u, err := o.Basket.user(ctx, userID)
	if err != nil {
		return err
	}
	u.Orders = []model.Order{}
	return o.Basket.Store.UserReplace(ctx, u)
}
