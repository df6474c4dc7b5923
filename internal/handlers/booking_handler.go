package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vango/internal/models"
	"vango/internal/services"
	"vango/internal/utils"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

type bookingResponse struct {
	Booking *models.Booking `json:"booking"`
	Payment paymentDetails  `json:"payment"`
}

type paymentDetails struct {
	Provider     string `json:"provider"`
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret,omitempty"`
	ApprovalURL  string `json:"approval_url,omitempty"`
}

// CreateBooking converts a live quote into a booking and opens a payment
// intent for the quoted total.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var request models.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking, intent, err := h.bookingService.CreateBooking(c.Request.Context(), &request)
	if err != nil {
		if respondServiceError(c, err) {
			return
		}
		switch {
		case errors.Is(err, services.ErrQuoteNotFound):
			utils.ErrorResponse(c, http.StatusGone, "QUOTE_EXPIRED", utils.ErrQuoteNotFound)
		case errors.Is(err, services.ErrUnknownProvider):
			utils.BadRequestResponse(c, "Unknown payment provider")
		case errors.Is(err, services.ErrPaymentUnavailable):
			utils.BadGatewayResponse(c, utils.ErrPaymentFailed)
		default:
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	utils.CreatedResponse(c, "Booking created", bookingResponse{
		Booking: booking,
		Payment: paymentDetails{
			Provider:     booking.PaymentProvider,
			IntentID:     intent.IntentID,
			ClientSecret: intent.ClientSecret,
			ApprovalURL:  intent.ApprovalURL,
		},
	})
}

// GetBooking returns a booking by its public reference.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	reference := c.Param("ref")

	booking, err := h.bookingService.GetBooking(c.Request.Context(), reference)
	if err != nil {
		utils.NotFoundResponse(c, "Booking")
		return
	}

	utils.SuccessResponse(c, "Booking retrieved", booking)
}

// CancelBooking cancels a booking and voids any pending payment intent.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	reference := c.Param("ref")

	if err := h.bookingService.CancelBooking(c.Request.Context(), reference); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.NotFoundResponse(c, "Booking")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Booking cancelled", nil)
}

// PaymentWebhook receives asynchronous payment events from a provider.
func (h *BookingHandler) PaymentWebhook(c *gin.Context) {
	provider := c.Param("provider")

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequestResponse(c, "Unreadable payload")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		signature = c.GetHeader("Paypal-Transmission-Sig")
	}

	if err := h.bookingService.HandlePaymentEvent(c.Request.Context(), provider, payload, signature); err != nil {
		if errors.Is(err, services.ErrUnknownProvider) {
			utils.NotFoundResponse(c, "Provider")
			return
		}
		utils.BadRequestResponse(c, "Rejected payment event")
		return
	}

	utils.SuccessResponse(c, "Event processed", nil)
}
