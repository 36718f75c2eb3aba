package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wed-storefront/models"
	"wed-storefront/utils"
)

// AdminController handles the console: login, product/category/size CRUD,
// and order management. All routes except Login sit behind AdminAuth.
type AdminController struct {
	AdminCollection    *mongo.Collection
	ProductCollection  *mongo.Collection
	CategoryCollection *mongo.Collection
	SizeCollection     *mongo.Collection
	OrderCollection    *mongo.Collection
	ItemCollection     *mongo.Collection
	Log                logrus.FieldLogger
}

// NewAdminController creates a new AdminController.
func NewAdminController(client *mongo.Client, log logrus.FieldLogger) *AdminController {
	db := client.Database("storefront")
	return &AdminController{
		AdminCollection:    db.Collection("admins"),
		ProductCollection:  db.Collection("products"),
		CategoryCollection: db.Collection("categories"),
		SizeCollection:     db.Collection("sizes"),
		OrderCollection:    db.Collection("orders"),
		ItemCollection:     db.Collection("order_items"),
		Log:                log,
	}
}

// EnsureDefaultAdmin seeds the console account from ADMIN_EMAIL and
// ADMIN_PASSWORD when both are configured, so a fresh deployment can log in.
func (ac *AdminController) EnsureDefaultAdmin(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = ac.AdminCollection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password_hash": hash, "role": "admin"}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Login authenticates a console account and issues a JWT.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := ac.AdminCollection.FindOne(ctx, bson.M{"email": creds.Email}).Decode(&admin)
	if err != nil || !utils.CheckPassword(admin.PasswordHash, creds.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(admin.Email, "admin")
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CreateProduct adds a new product to the remote catalog.
func (ac *AdminController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc := bson.M{
		"_id":          product.ID,
		"name":         product.Name,
		"price":        product.Price,
		"currency":     product.Currency,
		"description":  product.Description,
		"images":       product.Images,
		"sizes":        product.Sizes,
		"category_ref": product.Category,
		"out_of_stock": !product.InStock,
		"created_at":   time.Now(),
	}
	if _, err := ac.ProductCollection.InsertOne(ctx, doc); err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

// UpdateProduct updates an existing product. Carts that already snapshotted
// the product keep their old display fields.
func (ac *AdminController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"name":         product.Name,
		"price":        product.Price,
		"currency":     product.Currency,
		"description":  product.Description,
		"images":       product.Images,
		"sizes":        product.Sizes,
		"category_ref": product.Category,
		"out_of_stock": !product.InStock,
	}}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ac.ProductCollection.UpdateOne(ctx, bson.M{"_id": params["id"]}, update)
	if err != nil {
		http.Error(w, "Error updating product", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteProduct removes a product from the remote catalog.
func (ac *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ac.ProductCollection.DeleteOne(ctx, bson.M{"_id": params["id"]})
	if err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ListCategories retrieves all categories.
func (ac *AdminController) ListCategories(w http.ResponseWriter, r *http.Request) {
	ac.listAll(w, r, ac.CategoryCollection, &[]models.Category{})
}

// CreateCategory adds a category.
func (ac *AdminController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil || category.Name == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := ac.CategoryCollection.InsertOne(ctx, category); err != nil {
		http.Error(w, "Error creating category", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(category)
}

// DeleteCategory removes a category. Products referencing it resolve to
// "Uncategorized" afterwards.
func (ac *AdminController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ac.CategoryCollection.DeleteOne(ctx, bson.M{"_id": params["id"]})
	if err != nil {
		http.Error(w, "Error deleting category", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ListSizes retrieves all size options.
func (ac *AdminController) ListSizes(w http.ResponseWriter, r *http.Request) {
	ac.listAll(w, r, ac.SizeCollection, &[]models.Size{})
}

// CreateSize adds a size option.
func (ac *AdminController) CreateSize(w http.ResponseWriter, r *http.Request) {
	var size models.Size
	if err := json.NewDecoder(r.Body).Decode(&size); err != nil || size.Name == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if size.ID == "" {
		size.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := ac.SizeCollection.InsertOne(ctx, size); err != nil {
		http.Error(w, "Error creating size", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(size)
}

// DeleteSize removes a size option.
func (ac *AdminController) DeleteSize(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ac.SizeCollection.DeleteOne(ctx, bson.M{"_id": params["id"]})
	if err != nil {
		http.Error(w, "Error deleting size", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ListOrders retrieves all orders, newest first.
func (ac *AdminController) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := ac.OrderCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// GetOrderItems retrieves the items of one order.
func (ac *AdminController) GetOrderItems(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := ac.ItemCollection.Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		http.Error(w, "Error fetching order items", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.OrderItem
	if err := cursor.All(ctx, &items); err != nil {
		http.Error(w, "Error reading order items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// UpdateOrderStatus moves an order through its lifecycle.
func (ac *AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	switch body.Status {
	case models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered,
		models.OrderStatusCancelled:
	default:
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ac.OrderCollection.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"status": body.Status}})
	if err != nil {
		http.Error(w, "Error updating order", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (ac *AdminController) listAll(w http.ResponseWriter, r *http.Request, coll *mongo.Collection, out interface{}) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching records", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		http.Error(w, "Error reading records", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
