package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/cache"
	"github.com/haiki1233/food-delivery-backend/configs"
	"github.com/haiki1233/food-delivery-backend/controllers"
	"github.com/haiki1233/food-delivery-backend/middlewares"
	"github.com/haiki1233/food-delivery-backend/payment"
	"github.com/haiki1233/food-delivery-backend/repository"
	"github.com/haiki1233/food-delivery-backend/services"
	"github.com/haiki1233/food-delivery-backend/ws"
)

// ListingTTL bounds how stale a cached restaurant listing may get.
const ListingTTL = 60 * time.Second

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub, mailer services.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Collaborators
	listingCache := cache.NewRedisCache(configs.Redis(), ListingTTL)
	payClient := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authSvc.Mail = mailer
	authSvc.FrontendBaseURL = cfg.FrontendBaseURL

	restSvc := services.NewRestaurantService(restRepo, listingCache)
	foodSvc := services.NewFoodService(foodRepo, restRepo)

	orderSvc := services.NewOrderService(db, orderRepo, foodRepo, restRepo, userRepo)
	orderSvc.Notify = hub
	orderSvc.Mail = mailer
	orderSvc.FrontendBaseURL = cfg.FrontendBaseURL

	reportSvc := services.NewReportService(orderRepo)
	paySvc := services.NewPaymentService(orderRepo, restRepo, userRepo, payClient, cfg.PaymentCurrency, cfg.PublicBaseURL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, reportSvc)
	payCtrl := controllers.NewPaymentController(paySvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Restaurants
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants-within/:distance/center/:latlng/unit/:unit", restCtrl.Within)
	r.POST("/restaurants", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"), restCtrl.Create)
	r.PATCH("/restaurants/:id/open", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"), restCtrl.SetOpen)

	// Foods (nested under restaurant + flat listing)
	r.GET("/foods", foodCtrl.List)
	r.GET("/restaurants/:id/foods", foodCtrl.List)
	r.POST("/restaurants/:id/foods", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"), foodCtrl.Create)

	// Payment callbacks (browser redirects, no auth)
	r.GET("/orders/payment-success", payCtrl.Success)
	r.GET("/orders/payment-cancel", payCtrl.Cancel)

	// Orders (authenticated)
	o := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		o.POST("", orderCtrl.Create)
		o.GET("/my-orders", orderCtrl.MyOrders)
		o.PATCH("/:id/status", orderCtrl.UpdateStatus)
		o.GET("/:id/checkout", payCtrl.Checkout)
	}
	r.GET("/orders/stats", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), orderCtrl.Stats)

	// Order event stream (restaurant dashboard)
	r.GET("/ws/restaurants/:id/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
