package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

func TestBasketTotalPrice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		items []model.Item
		want  string
	}{
		{
			name:  "empty basket totals zero",
			items: []model.Item{},
			want:  "0",
		},
		{
			name: "sums item prices",
			items: []model.Item{
				{ID: "i1", Name: "Ryzen 5 7600", Price: mustPrice("120")},
				{ID: "i2", Name: "RTX 4070", Price: mustPrice("1200")},
			},
			want: "1320",
		},
		{
			name: "fractional prices stay exact",
			items: []model.Item{
				{ID: "i1", Price: mustPrice("0.10")},
				{ID: "i2", Price: mustPrice("0.20")},
			},
			want: "0.3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com", Basket: tt.items})
			b := Basket{Store: store}

			total, err := b.TotalPrice(ctx, "u1")
			require.NoError(t, err)
			require.Equal(t, tt.want, total.String())
		})
	}
}

func TestBasketAddItem(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com", Basket: []model.Item{}})
	b := Basket{Store: store}

	added, err := b.AddItem(ctx, "u1", model.Item{Name: "RTX 4070", Price: mustPrice("1200")})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID, "item without ID gets a generated one")

	// repeated adds are not merged
	_, err = b.AddItem(ctx, "u1", added)
	require.NoError(t, err)

	items, err := b.Items(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, added.ID, items[0].ID)
	require.Equal(t, added.ID, items[1].ID)
}

func TestBasketAddItemUnknownUser(t *testing.T) {
	b := Basket{Store: newFakeUserStore()}

	_, err := b.AddItem(context.Background(), "nope", model.Item{Name: "x"})
	require.True(t, errors.Is(err, ErrUserNotFound))
	require.True(t, IsNotFound(err))
}

func TestBasketRemoveItem(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com", Basket: []model.Item{
		{ID: "i1", Price: mustPrice("120")},
		{ID: "i2", Price: mustPrice("1200")},
		{ID: "i3", Price: mustPrice("50")},
	}})
	b := Basket{Store: store}

	require.NoError(t, b.RemoveItem(ctx, "u1", "i2"))

	items, err := b.Items(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "i1", items[0].ID, "remaining items keep their order")
	require.Equal(t, "i3", items[1].ID)

	err = b.RemoveItem(ctx, "u1", "i2")
	require.True(t, errors.Is(err, ErrItemNotFound))
}

func TestBasketRemoveItemFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com", Basket: []model.Item{
		{ID: "i1", Price: mustPrice("10")},
		{ID: "i1", Price: mustPrice("10")},
	}})
	b := Basket{Store: store}

	require.NoError(t, b.RemoveItem(ctx, "u1", "i1"))

	items, err := b.Items(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1, "only the first matching entry is removed")
}

func TestBasketClear(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com", Basket: []model.Item{
		{ID: "i1", Price: mustPrice("120")},
	}})
	b := Basket{Store: store}

	require.NoError(t, b.Clear(ctx, "u1"))

	items, err := b.Items(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)

	total, err := b.TotalPrice(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "0", total.String())
}
