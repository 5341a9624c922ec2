package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPayed     OrderStatus = "PAYED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPayed, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is an immutable-at-creation snapshot of purchased items. Only Status
// changes after placement, CompletePrice is never recomputed.
type Order struct {
	ID            string             `bson:"id" json:"id"`
	Items         []Item             `bson:"items" json:"items"`
	CompletePrice Price              `bson:"completePrice" json:"completePrice"`
	Status        OrderStatus        `bson:"status" json:"status"`
	PhotoURLs     []string           `bson:"photoUrls" json:"photoUrls"`
	CreatedAt     primitive.DateTime `bson:"createdAt" json:"createdAt"`
}
