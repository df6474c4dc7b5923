package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vango/internal/models"
	"vango/internal/services"
	"vango/internal/utils"
)

type QuoteHandler struct {
	quoteService services.QuoteService
}

func NewQuoteHandler(quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// CreateQuote prices a trip and returns the breakdown with a reference
// the customer can convert into a booking.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var request models.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &request)
	if err != nil {
		if respondServiceError(c, err) {
			return
		}
		utils.BadGatewayResponse(c, "Failed to price the trip")
		return
	}

	utils.CreatedResponse(c, "Quote created", quote)
}

// GetQuote returns a previously priced quote while it is still valid.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	reference := c.Param("ref")

	quote, err := h.quoteService.GetQuote(c.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, services.ErrQuoteNotFound) {
			utils.NotFoundResponse(c, "Quote")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Quote retrieved", quote)
}
