package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses as shown in the admin console.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Address is the shipping address collected at checkout.
type Address struct {
	Street      string `bson:"street" json:"street"`
	Apartment   string `bson:"apartment,omitempty" json:"apartment,omitempty"`
	City        string `bson:"city" json:"city"`
	Governorate string `bson:"governorate" json:"governorate"`
	PostalCode  string `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
}

// Order represents a placed order.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Number        string             `bson:"number" json:"number"`
	CustomerName  string             `bson:"customer_name" json:"customerName"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	Address       Address            `bson:"address" json:"address"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"` // "cash" or "card"
	Status        string             `bson:"status" json:"status"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Shipping      float64            `bson:"shipping" json:"shipping"`
	Tax           float64            `bson:"tax" json:"tax"`
	Total         float64            `bson:"total" json:"total"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// OrderItem is one purchased line, frozen at the prices the customer saw.
type OrderItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID   primitive.ObjectID `bson:"order_id" json:"orderId"`
	ProductID string             `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Currency  string             `bson:"currency" json:"currency"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
