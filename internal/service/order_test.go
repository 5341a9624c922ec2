package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

func testOrders(users ...model.User) Orders {
	return Orders{Basket: Basket{Store: newFakeUserStore(users...)}}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	items := []model.Item{
		{ID: "i1", Name: "Ryzen 5 7600", Price: mustPrice("120"), PhotoURL: "https://img.test/cpu.png"},
		{ID: "i2", Name: "RTX 4070", Price: mustPrice("1200"), PhotoURL: "https://img.test/gpu.png"},
	}
	o := testOrders(model.User{ID: "u1", Email: "a@b.com", Basket: items})

	order, err := o.Place(ctx, "u1", items)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, model.OrderStatusPending, order.Status)
	require.Equal(t, items, order.Items)
	require.Equal(t, "1320", order.CompletePrice.String())
	require.Equal(t, []string{"https://img.test/cpu.png", "https://img.test/gpu.png"}, order.PhotoURLs)

	// the basket is not cleared by placing an order
	basket, err := o.Basket.Items(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, basket, 2)
}

func TestPlaceOrderPricesFromBasket(t *testing.T) {
	ctx := context.Background()
	o := testOrders(model.User{ID: "u1", Email: "a@b.com", Basket: []model.Item{
		{ID: "i1", Price: mustPrice("999.99")},
	}})

	// the submitted snapshot diverges from the basket, the basket wins on price
	order, err := o.Place(ctx, "u1", []model.Item{{ID: "i9", Price: mustPrice("1")}})
	require.NoError(t, err)
	require.Equal(t, "999.99", order.CompletePrice.String())
	require.Len(t, order.Items, 1)
	require.Equal(t, "i9", order.Items[0].ID)
}

func TestOrderGetAndList(t *testing.T) {
	ctx := context.Background()
	o := testOrders(model.User{ID: "u1", Email: "a@b.com"})

	first, err := o.Place(ctx, "u1", []model.Item{{ID: "i1"}})
	require.NoError(t, err)
	second, err := o.Place(ctx, "u1", []model.Item{{ID: "i2"}})
	require.NoError(t, err)

	got, err := o.Get(ctx, "u1", second.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, got.ID)

	list, err := o.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID, "orders list in insertion order")
	require.Equal(t, second.ID, list[1].ID)

	_, err = o.Get(ctx, "u1", "missing")
	require.True(t, errors.Is(err, ErrOrderNotFound))
}

func TestOrderUpdateStatus(t *testing.T) {
	ctx := context.Background()
	o := testOrders(model.User{ID: "u1", Email: "a@b.com"})

	first, err := o.Place(ctx, "u1", nil)
	require.NoError(t, err)
	second, err := o.Place(ctx, "u1", nil)
	require.NoError(t, err)

	// any status may replace any other, including moving backwards
	for _, status := range []model.OrderStatus{
		model.OrderStatusCompleted, model.OrderStatusPending, model.OrderStatusCancelled,
	} {
		updated, err := o.UpdateStatus(ctx, "u1", first.ID, status)
		require.NoError(t, err)
		require.Equal(t, status, updated.Status)
	}

	list, err := o.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, first.ID, list[0].ID, "updated order keeps its position")
	require.Equal(t, model.OrderStatusCancelled, list[0].Status)
	require.Equal(t, second.ID, list[1].ID)
	require.Equal(t, model.OrderStatusPending, list[1].Status)
}

func TestOrderUpdateStatusRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	o := testOrders(model.User{ID: "u1", Email: "a@b.com"})

	order, err := o.Place(ctx, "u1", nil)
	require.NoError(t, err)

	_, err = o.UpdateStatus(ctx, "u1", order.ID, "DELIVERED")
	require.True(t, errors.Is(err, ErrInvalidStatus))

	_, err = o.UpdateStatus(ctx, "u1", "missing", model.OrderStatusShipped)
	require.True(t, errors.Is(err, ErrOrderNotFound))
}

func TestOrderRemoveAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	o := testOrders(model.User{ID: "u1", Email: "a@b.com"})

	first, err := o.Place(ctx, "u1", nil)
	require.NoError(t, err)
	_, err = o.Place(ctx, "u1", nil)
	require.NoError(t, err)

	require.NoError(t, o.Remove(ctx, "u1", first.ID))
	list, err := o.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.True(t, errors.Is(o.Remove(ctx, "u1", first.ID), ErrOrderNotFound))

	require.NoError(t, o.DeleteAll(ctx, "u1"))
	list, err = o.List(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, list)
}
