package router

import (
	"log"
	"time"

	"github.com/feetrack/api/config"
	"github.com/feetrack/api/database"
	"github.com/feetrack/api/handlers"
	aggregate_handlers "github.com/feetrack/api/handlers/aggregate"
	auth_handlers "github.com/feetrack/api/handlers/auth"
	committee_handlers "github.com/feetrack/api/handlers/committee"
	payment_handlers "github.com/feetrack/api/handlers/payment"
	report_handlers "github.com/feetrack/api/handlers/report"
	"github.com/feetrack/api/services/storage"
	"github.com/feetrack/api/utils/auth"
	"github.com/feetrack/api/utils/cache"
	"github.com/feetrack/api/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, proofs storage.ProofStorage, env *config.EnviornmentVariable) {
	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "feetrack-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,     // Access token expires in 24 hours
		RefreshExpiry: 7 * 24 * time.Hour, // Refresh token expires in 7 days
		Issuer:        jwtIssuer,
	})

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis backs the brute force counters; without it login still works,
	// just without lockouts
	redisURL := env.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	committeeHandler := committee_handlers.NewCommitteeHandler(db)
	paymentHandler := payment_handlers.NewPaymentHandler(db, proofs)
	aggregateHandler := aggregate_handlers.NewAggregateHandler(db, store)
	reportHandler := report_handlers.NewReportHandler(db)

	allowedOrigins := env.ALLOWED_ORIGINS
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error { return handlers.HandleCheckHealth(c, store) })

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// Profile routes (protected)
	profiles := api.Group("/profiles", authMiddleware.Required())
	profiles.Get("/:user_id", authHandler.GetProfile)
	profiles.Put("/:user_id", authHandler.UpdateProfile)

	// Committee catalog routes
	committees := api.Group("/committees")
	committees.Get("/", committeeHandler.ListCommittees)
	committees.Get("/:name", committeeHandler.GetCommittee)
	committees.Post("/", authMiddleware.Required(), middleware.AdminOnly(),
		middleware.StaffAuditLog(db, "committee_create", "committees"), committeeHandler.CreateCommittee)
	committees.Put("/:id", authMiddleware.Required(), middleware.AdminOnly(),
		middleware.StaffAuditLog(db, "committee_update", "committees"), committeeHandler.UpdateCommittee)
	committees.Delete("/:id", authMiddleware.Required(), middleware.AdminOnly(),
		middleware.StaffAuditLog(db, "committee_delete", "committees"), committeeHandler.DeleteCommittee)

	// Payment routes (all protected)
	payments := api.Group("/payments", authMiddleware.Required())

	payments.Get("/", middleware.StaffOnly(), paymentHandler.ListPayments)
	payments.Get("/user/:user_id", paymentHandler.ListUserPayments)
	payments.Get("/type/:name", middleware.StaffOnly(), aggregateHandler.ListCommitteePayments)
	payments.Get("/:id", paymentHandler.GetPayment)
	payments.Delete("/:id", middleware.StaffAuditLog(db, "payment_delete", "payments"), paymentHandler.DeletePayment)

	payments.Post("/submit/:user_id", paymentHandler.SubmitPayment)

	// Staff mutations
	payments.Put("/:id/edit", middleware.StaffOnly(),
		middleware.StaffAuditLog(db, "payment_edit", "payments"), paymentHandler.EditPayment)
	payments.Put("/:id/topup", middleware.StaffOnly(),
		middleware.StaffAuditLog(db, "payment_topup", "payments"), paymentHandler.TopUpPayment)
	payments.Post("/:id/review", middleware.StaffOnly(),
		middleware.StaffAuditLog(db, "payment_review", "payments"), paymentHandler.ReviewPayment)
	payments.Get("/:id/feedback", paymentHandler.ListPaymentFeedback)

	// Proof management
	payments.Post("/:id/proofs", paymentHandler.UploadProofs)
	payments.Get("/:id/proofs", paymentHandler.ListProofs)
	payments.Delete("/:id/proofs/:proof_id", middleware.StaffOnly(), paymentHandler.DeleteProof)

	// Committee-in-path submission shorthand. Registered last so the
	// two-segment wildcard cannot shadow the routes above.
	payments.Post("/:user_id/:committee", paymentHandler.SubmitCommitteePayment)

	// Aggregation routes (staff only)
	aggregates := api.Group("/aggregates", authMiddleware.Required(), middleware.StaffOnly())
	aggregates.Get("/committees", aggregateHandler.GetCategoryTotals)
	aggregates.Get("/committee/:name", aggregateHandler.GetCommitteeTotal)

	// Report routes (staff only)
	reports := api.Group("/reports", authMiddleware.Required(), middleware.StaffOnly())
	reports.Get("/payments", reportHandler.GetAcceptedPaymentsPDF)
}
