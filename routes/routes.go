package routes

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/steve-ongera/AgriLink/configs"
	"github.com/steve-ongera/AgriLink/controllers"
	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/middlewares"
	"github.com/steve-ongera/AgriLink/pkg/notifier"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, mailer notifier.Mailer) {
	r.Use(middlewares.CORSMiddleware())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("agrilink_session", store))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	countyRepo := repository.NewCountyRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	authSvc := services.NewAuthService(cfg, userRepo)
	catalogSvc := services.NewCatalogService(db, productRepo, userRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, productRepo, userRepo, countyRepo, notifRepo, mailer)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, userRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, userRepo, orderSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	profileCtrl := controllers.NewProfileController(userRepo)
	productCtrl := controllers.NewProductController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc, userRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	lookupCtrl := controllers.NewLookupController(db, countyRepo, notifRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg), authCtrl.Me)

	// Reference data (public)
	r.GET("/counties", lookupCtrl.Counties)
	r.GET("/categories", lookupCtrl.Categories)

	// Catalog (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:slug", productCtrl.Detail)
	r.GET("/farmers/:farmerId/reviews", reviewCtrl.ListForFarmer)

	// Cart works for guests too; a session cookie carries the cart token and
	// a bearer token, when present, attributes the cart to its buyer.
	cart := r.Group("/cart", middlewares.OptionalAuth(cfg), middlewares.CartSession())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Profiles
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg))
	{
		profile.PUT("/buyer", profileCtrl.UpsertBuyer)
		profile.PUT("/farmer", profileCtrl.UpsertFarmer)
		profile.PUT("/transporter", profileCtrl.UpsertTransporter)
	}

	// Buyer orders
	u := r.Group("/", middlewares.AuthMiddleware(cfg))
	{
		u.POST("/checkout", middlewares.CartSession(), orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:number", orderCtrl.Detail)
		u.POST("/orders/:number/cancel", orderCtrl.Cancel)
		u.POST("/orders/:number/complete", orderCtrl.Complete)
		u.POST("/orders/:number/pay", paymentCtrl.Initiate)
		u.POST("/orders/:number/reviews/farmers/:farmerId", reviewCtrl.ReviewFarmer)
		u.POST("/orders/:number/reviews/transporter", reviewCtrl.ReviewTransporter)
		u.GET("/notifications", lookupCtrl.Notifications)
		u.PATCH("/notifications/:id/read", lookupCtrl.MarkNotificationRead)
	}

	// Payment provider callback (unauthenticated)
	r.POST("/payments/mpesa/callback", paymentCtrl.Callback)

	// Partner Farmer
	partnerFarmer := r.Group("/farmer", middlewares.AuthMiddleware(cfg, entity.UserTypeFarmer, entity.UserTypeAdmin))
	{
		partnerFarmer.POST("/products", productCtrl.Create)
		partnerFarmer.PATCH("/products/:id/stock", productCtrl.UpdateStock)
	}

	// Partner Transporter
	partnerTransporter := r.Group("/partner/transporter", middlewares.AuthMiddleware(cfg, entity.UserTypeTransporter, entity.UserTypeAdmin))
	{
		partnerTransporter.GET("/orders", orderCtrl.ListForTransporter)
		partnerTransporter.PATCH("/orders/:number/picked-up", orderCtrl.MarkPickedUp)
		partnerTransporter.PATCH("/orders/:number/in-transit", orderCtrl.MarkInTransit)
		partnerTransporter.PATCH("/orders/:number/delivered", orderCtrl.MarkDelivered)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg, entity.UserTypeAdmin))
	{
		admin.POST("/orders/:number/assign", orderCtrl.AssignTransporter)
		admin.POST("/orders/:number/cancel", orderCtrl.Cancel)
		admin.POST("/orders/:number/refund", orderCtrl.Refund)
	}
}
