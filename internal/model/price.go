package model

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Price is an exact decimal amount. It is stored as Decimal128 in MongoDB
// and rendered as a quoted decimal string in JSON.
type Price struct {
	decimal.Decimal
}

func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errors.Wrapf(err, "error parsing Price from: %s", s)
	}
	return Price{d}, nil
}

func PriceFromInt(n int64) Price {
	return Price{decimal.NewFromInt(n)}
}

func (p Price) Add(o Price) Price {
	return Price{p.Decimal.Add(o.Decimal)}
}

func (p Price) Equal(o Price) bool {
	return p.Decimal.Equal(o.Decimal)
}

func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(p.Decimal.String())
	if err != nil {
		return bsontype.Null, nil, errors.Wrapf(err, "error converting Price to Decimal128: %s", p.Decimal.String())
	}
	return bson.MarshalValue(d128)
}

func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Decimal128:
		d128, _, ok := bsoncore.ReadDecimal128(data)
		if !ok {
			return errors.New("error reading Decimal128 value for Price")
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return errors.Wrapf(err, "error parsing Price from Decimal128: %s", d128.String())
		}
		p.Decimal = d
		return nil
	case bsontype.Null:
		p.Decimal = decimal.Decimal{}
		return nil
	default:
		return errors.Errorf("cannot unmarshal Price from BSON type: %s", t)
	}
}
