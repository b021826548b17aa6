package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safestay/safestay-backend/internal/handlers"
	"github.com/safestay/safestay-backend/internal/middleware"
	"github.com/safestay/safestay-backend/internal/services"
	"github.com/safestay/safestay-backend/internal/storage"
	"github.com/safestay/safestay-backend/internal/ussd"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, engine *ussd.Engine, paymentService *services.PaymentService, notifications *services.NotificationService) {

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to SafeStay Backend!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":          "/health",
				"api":             "/api",
				"ussd":            "/ussd",
				"payment_webhook": "/webhook/payments",
			},
		})
	})

	healthHandler := handlers.NewHealthHandler("1.0.0")
	app.Get("/health", healthHandler.Check)

	// ========== USSD ROUTES ==========
	// Direct callback for the gateway, plus the alternative path some
	// gateway configurations use.
	ussdHandler := handlers.NewUssdHandler(engine)
	app.Post("/ussd", ussdHandler.HandleCallback)
	app.Post("/ussd/callback", ussdHandler.HandleCallback)

	// JSON simulator for development
	app.Post("/ussd/test", ussdHandler.HandleTest)

	// ========== API ROUTES ==========
	api := app.Group("/api")

	authHandler := handlers.NewAuthHandler(store, notifications)
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	billHandler := handlers.NewBillHandler(store, paymentService)
	bills := api.Group("/bills", middleware.RequireAuth())
	bills.Get("/", billHandler.GetMyBills)
	bills.Post("/", middleware.RequireRole("Landlord"), billHandler.CreateBill)
	bills.Get("/tenant/:tenantId", middleware.RequireRole("Landlord"), billHandler.GetTenantBills)
	bills.Post("/payments", middleware.RequireRole("Landlord"), billHandler.RecordPayment)

	complaintHandler := handlers.NewComplaintHandler(store)
	complaints := api.Group("/complaints", middleware.RequireAuth())
	complaints.Get("/", complaintHandler.GetMyComplaints)
	complaints.Get("/tenant/:tenantId", middleware.RequireRole("Landlord"), complaintHandler.GetTenantComplaints)

	// ========== WEBHOOK ROUTES ==========
	paymentHandler := handlers.NewPaymentHandler(store, paymentService)
	webhooks := app.Group("/webhook")
	webhooks.Post("/payments", paymentHandler.HandleNotification)
	webhooks.Get("/payments/:transactionId", paymentHandler.QueryStatus)
}
