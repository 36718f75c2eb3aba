// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"wed-storefront/controllers"
	"wed-storefront/middleware"
)

// RegisterRoutes sets up all the routes for the storefront
func RegisterRoutes(router *mux.Router, productController *controllers.ProductController, cartController *controllers.CartController, recentController *controllers.RecentController, orderController *controllers.OrderController, adminController *controllers.AdminController) {
	// Product routes
	router.HandleFunc("/home", productController.GetHome).Methods("GET")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/new-arrivals", productController.GetNewArrivals).Methods("GET")
	router.HandleFunc("/search", productController.SearchProducts).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/{product_id}/all", cartController.RemoveAllOfItem).Methods("DELETE")
	router.HandleFunc("/cart/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Recently viewed routes
	router.HandleFunc("/recently-viewed", recentController.GetRecentlyViewed).Methods("GET")
	router.HandleFunc("/recently-viewed", recentController.ClearRecentlyViewed).Methods("DELETE")
	router.HandleFunc("/recently-viewed/{product_id}", recentController.RecordView).Methods("POST")

	// Checkout
	router.HandleFunc("/checkout", orderController.Checkout).Methods("POST")

	// Admin routes
	router.HandleFunc("/admin/login", adminController.Login).Methods("POST")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth)
	admin.HandleFunc("/products", adminController.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", adminController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", adminController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/categories", adminController.ListCategories).Methods("GET")
	admin.HandleFunc("/categories", adminController.CreateCategory).Methods("POST")
	admin.HandleFunc("/categories/{id}", adminController.DeleteCategory).Methods("DELETE")
	admin.HandleFunc("/sizes", adminController.ListSizes).Methods("GET")
	admin.HandleFunc("/sizes", adminController.CreateSize).Methods("POST")
	admin.HandleFunc("/sizes/{id}", adminController.DeleteSize).Methods("DELETE")
	admin.HandleFunc("/orders", adminController.ListOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/items", adminController.GetOrderItems).Methods("GET")
	admin.HandleFunc("/orders/{id}", adminController.UpdateOrderStatus).Methods("PUT")
}
