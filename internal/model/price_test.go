package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"0", false},
		{"120", false},
		{"1199.99", false},
		{"-3.5", false},
		{"", true},
		{"abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := NewPrice(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.in, p.String())
		})
	}
}

func TestPriceAddIsExact(t *testing.T) {
	a, err := NewPrice("0.1")
	require.NoError(t, err)
	b, err := NewPrice("0.2")
	require.NoError(t, err)
	want, err := NewPrice("0.3")
	require.NoError(t, err)

	require.True(t, a.Add(b).Equal(want), "0.1 + 0.2 should be exactly 0.3")
}

func TestPriceJSONRoundTrip(t *testing.T) {
	p, err := NewPrice("1199.99")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Price
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, p.Equal(got))
}

func TestPriceBSONRoundTrip(t *testing.T) {
	type doc struct {
		P Price `bson:"p"`
	}

	p, err := NewPrice("1320.45")
	require.NoError(t, err)

	data, err := bson.Marshal(doc{P: p})
	require.NoError(t, err)

	var got doc
	require.NoError(t, bson.Unmarshal(data, &got))
	require.True(t, p.Equal(got.P))
}

func TestPriceBSONNull(t *testing.T) {
	type doc struct {
		P Price `bson:"p"`
	}

	data, err := bson.Marshal(bson.M{"p": nil})
	require.NoError(t, err)

	var got doc
	require.NoError(t, bson.Unmarshal(data, &got))
	require.True(t, got.P.IsZero())
}
