package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmstead/config"
	"farmstead/cron"
	"farmstead/database"
	couponRepoPkg "farmstead/database/repository/coupon"
	orderRepoPkg "farmstead/database/repository/order"
	productRepoPkg "farmstead/database/repository/product"
	stayRepoPkg "farmstead/database/repository/stay"
	subscriptionRepoPkg "farmstead/database/repository/subscription"
	"farmstead/handlers"
	"farmstead/middleware"
	"farmstead/routes"
	"farmstead/services/booking"
	"farmstead/services/cart"
	"farmstead/services/catalog"
	"farmstead/services/notification"
	"farmstead/services/payment"
	"farmstead/services/subscription"
	"farmstead/services/tasks"
	"farmstead/services/wishlist"
	"farmstead/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	productRepo := productRepoPkg.NewMongoProductRepo()
	stayRepo := stayRepoPkg.NewMongoStayRepo()
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo()
	couponRepo := couponRepoPkg.NewMongoCouponRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	paymentHandler := payment.NewPaymentHandler(logger)
	notificationService := notification.NewNotificationService(logger)
	reminderScheduler := tasks.NewReminderScheduler()

	subscriptionService := &subscription.DefaultSubscriptionService{
		Repo:        subscriptionRepo,
		ProductRepo: productRepo,
		Reminders:   reminderScheduler,
	}

	stayService := &booking.DefaultStaySessionService{
		Repo:     stayRepo,
		Sessions: booking.NewRedisSessionStore(utils.GetCacheClient()),
		Payment:  paymentHandler,
	}

	cartService := &cart.DefaultCartService{
		Store:    cart.NewRedisCartStore(utils.GetCartCacheClient()),
		Products: productRepo,
		Coupons:  couponRepo,
		Orders:   orderRepo,
		Payment:  paymentHandler,
	}

	catalogService := &catalog.DefaultCatalogService{
		Products: productRepo,
		Stay:     stayRepo,
	}

	wishlistService := &wishlist.DefaultWishlistService{
		Client: utils.GetCartCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Session:      handlers.NewSessionHandler(),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Cart:         handlers.NewCartHandler(cartService),
		Wishlist:     handlers.NewWishlistHandler(wishlistService),
		Subscription: handlers.NewSubscriptionHandler(subscriptionService),
		Stay:         handlers.NewStayHandler(stayService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetCartCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
