package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wed-storefront/middleware"
	"wed-storefront/models"
	"wed-storefront/session"
	"wed-storefront/utils"
)

const (
	freeShippingThreshold = 500.0
	flatShippingFee       = 50.0
	vatRate               = 0.14
)

// OrderController handles checkout.
type OrderController struct {
	OrderCollection *mongo.Collection
	ItemCollection  *mongo.Collection
	Sessions        *session.Manager
	EmailService    *utils.EmailService
	Log             logrus.FieldLogger
}

// NewOrderController creates a new OrderController.
func NewOrderController(client *mongo.Client, sessions *session.Manager, emailService *utils.EmailService, log logrus.FieldLogger) *OrderController {
	db := client.Database("storefront")
	return &OrderController{
		OrderCollection: db.Collection("orders"),
		ItemCollection:  db.Collection("order_items"),
		Sessions:        sessions,
		EmailService:    emailService,
		Log:             log,
	}
}

type checkoutRequest struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Address       string `json:"address"`
	Apartment     string `json:"apartment"`
	City          string `json:"city"`
	Governorate   string `json:"governorate"`
	PostalCode    string `json:"postalCode"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

func (req checkoutRequest) validate() string {
	switch {
	case req.Email == "":
		return "email is required"
	case req.Phone == "":
		return "phone is required"
	case req.FirstName == "":
		return "first name is required"
	case req.LastName == "":
		return "last name is required"
	case req.Address == "":
		return "address is required"
	case req.City == "":
		return "city is required"
	case req.Governorate == "":
		return "governorate is required"
	}
	return ""
}

// Checkout creates an order from the session cart's snapshot prices, clears
// the cart, and sends a confirmation email.
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	c := oc.Sessions.Cart(middleware.SessionID(r))
	lines := c.Lines()
	if len(lines) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	paymentMethod := strings.ToLower(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = "cash"
	}
	if paymentMethod != "cash" && paymentMethod != "card" {
		http.Error(w, "Invalid payment method", http.StatusBadRequest)
		return
	}

	totals := c.Totals()
	shipping := flatShippingFee
	if totals.Subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := totals.Subtotal * vatRate

	order := models.Order{
		Number:       strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9]),
		CustomerName: req.FirstName + " " + req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address: models.Address{
			Street:      req.Address,
			Apartment:   req.Apartment,
			City:        req.City,
			Governorate: req.Governorate,
			PostalCode:  req.PostalCode,
		},
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusPending,
		Subtotal:      totals.Subtotal,
		Shipping:      shipping,
		Tax:           tax,
		Total:         totals.Subtotal + shipping + tax,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := oc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		oc.Log.WithError(err).Error("could not create order")
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	items := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Currency:  line.Currency,
			Quantity:  line.Quantity,
		})
	}
	if _, err := oc.ItemCollection.InsertMany(ctx, items); err != nil {
		oc.Log.WithError(err).Error("could not store order items")
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	c.Clear()

	if err := oc.EmailService.SendOrderConfirmationEmail(order.Email, order); err != nil {
		oc.Log.WithError(err).Warn("could not send order confirmation email")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orderNumber": order.Number,
		"total":       order.Total,
	})
}
