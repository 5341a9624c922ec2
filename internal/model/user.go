package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleCustomer = "customer"

// User owns its basket and orders by composition, both lists are embedded in
// the user document and persisted with it.
type User struct {
	ID           string             `bson:"_id" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Password     []byte             `bson:"password,omitempty" json:"-"`
	Role         string             `bson:"role" json:"role"`
	PhotoURL     string             `bson:"photoUrl" json:"photoUrl"`
	Basket       []Item             `bson:"basket" json:"basket"`
	Orders       []Order            `bson:"orders" json:"orders"`
	SessionToken []byte             `bson:"sessionToken,omitempty" json:"-"`
	CreatedAt    primitive.DateTime `bson:"createdAt" json:"createdAt"`
}

// NormalizeLists keeps basket and orders non-nil once a User is loaded.
func (u *User) NormalizeLists() {
	if u.Basket == nil {
		u.Basket = []Item{}
	}
	if u.Orders == nil {
		u.Orders = []Order{}
	}
}

type Item struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       Price  `bson:"price" json:"price"`
	PhotoURL    string `bson:"photoUrl" json:"photoUrl"`
}
