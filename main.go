// File: profast/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profast/config"
	"profast/database"
	parcelRepoPkg "profast/database/repository/parcel"
	paymentRepoPkg "profast/database/repository/payment"
	riderRepoPkg "profast/database/repository/rider"
	trackingRepoPkg "profast/database/repository/tracking"
	userRepoPkg "profast/database/repository/user"
	"profast/handlers"
	"profast/middleware"
	"profast/routes"
	"profast/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	logger.Sugar().Info("Connected to MongoDB successfully!")
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	if err := utils.InitAuthCache(); err != nil {
		logger.Sugar().Warnf("main: auth cache unavailable, tokens will be verified on every request: %v", err)
	}

	authClient, err := utils.FirebaseAuthClient()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Firebase auth client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	parcelRepo := parcelRepoPkg.NewMongoParcelRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)
	trackingRepo := trackingRepoPkg.NewMongoTrackingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	riderRepo := riderRepoPkg.NewMongoRiderRepo(db)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     middleware.FirebaseAuthMiddleware(authClient),
		Parcel:   handlers.NewParcelHandler(parcelRepo),
		Payment:  handlers.NewPaymentHandler(parcelRepo, paymentRepo),
		Tracking: handlers.NewTrackingHandler(trackingRepo),
		User:     handlers.NewUserHandler(userRepo),
		Rider:    handlers.NewRiderHandler(riderRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
