// main.go
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"wed-storefront/catalog"
	"wed-storefront/controllers"
	"wed-storefront/middleware"
	"wed-storefront/recent"
	"wed-storefront/routes"
	"wed-storefront/session"
	"wed-storefront/utils"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{}
	log.Out = os.Stdout

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Connect to the remote data service
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Commerce state core
	source := catalog.NewMongoSource(client)
	resolver := catalog.NewResolver(source, log)
	cache := catalog.NewCache(resolver)
	cache.Refresh(context.Background(), catalog.ListOptions{NewestFirst: true})

	store := recent.NewMongoStore(client)
	sessions := session.NewManager(store, log)

	// Initialize controllers
	emailService := utils.NewEmailService()
	productController := controllers.NewProductController(resolver, cache, log)
	cartController := controllers.NewCartController(sessions, resolver, log)
	recentController := controllers.NewRecentController(sessions, resolver, log)
	orderController := controllers.NewOrderController(client, sessions, emailService, log)
	adminController := controllers.NewAdminController(client, log)
	if err := adminController.EnsureDefaultAdmin(context.Background()); err != nil {
		log.WithError(err).Warn("could not seed console account")
	}

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, productController, cartController, recentController, orderController, adminController)

	router.Use(middleware.EnsureSession)
	router.Use(middleware.RequestLogger(log))

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Infof("Server is running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
