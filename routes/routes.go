package routes

import (
	"github.com/gin-gonic/gin"

	"vango/internal/handlers"
	"vango/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Quote   *handlers.QuoteHandler
	Booking *handlers.BookingHandler
	Driver  *handlers.DriverHandler
	Admin   *handlers.AdminHandler
	Auth    *handlers.AuthHandler
	Health  *handlers.HealthHandler
}

// Setup mounts the public API, payment webhooks and the admin surface.
func Setup(r *gin.Engine, h *Handlers, jwtSecret string) {
	r.GET("/health", h.Health.Health)

	api := r.Group("/api/v1")
	{
		SetupQuoteRoutes(api, h.Quote)
		SetupBookingRoutes(api, h.Booking)
		SetupDriverRoutes(api, h.Driver)

		api.POST("/auth/login", h.Auth.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
		{
			admin.GET("/bookings", h.Admin.ListBookings)
			admin.GET("/drivers", h.Admin.ListDrivers)
			admin.PUT("/drivers/:id/approve", h.Admin.ApproveDriver)
			admin.GET("/drivers/:id/documents", h.Admin.DriverDocumentURL)
			admin.GET("/pricing", h.Admin.GetPricing)
		}
	}
}

// SetupQuoteRoutes sets up routes for quoting
func SetupQuoteRoutes(r *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := r.Group("/quotes")
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:ref", quoteHandler.GetQuote)
	}
}

// SetupBookingRoutes sets up routes for bookings and payment webhooks
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:ref", bookingHandler.GetBooking)
		bookings.DELETE("/:ref", bookingHandler.CancelBooking)
	}

	// Provider webhooks carry their own signatures; no session auth.
	r.POST("/webhooks/payments/:provider", bookingHandler.PaymentWebhook)
}

// SetupDriverRoutes sets up routes for driver onboarding
func SetupDriverRoutes(r *gin.RouterGroup, driverHandler *handlers.DriverHandler) {
	drivers := r.Group("/drivers")
	{
		drivers.POST("/register", driverHandler.Register)
		drivers.GET("/:id", driverHandler.GetDriver)
		drivers.POST("/:id/documents", driverHandler.UploadDocument)
	}
}
