package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"vango/internal/models"
	"vango/internal/services"
	"vango/internal/utils"
	"vango/pkg/logger"
)

type AdminHandler struct {
	bookingService services.BookingService
	driverService  services.DriverService
	quoteService   services.QuoteService
	audit          *logger.AuditLogger
}

func NewAdminHandler(bookingService services.BookingService, driverService services.DriverService, quoteService services.QuoteService, audit *logger.AuditLogger) *AdminHandler {
	return &AdminHandler{
		bookingService: bookingService,
		driverService:  driverService,
		quoteService:   quoteService,
		audit:          audit,
	}
}

// ListBookings returns bookings, optionally filtered by status.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	status := c.Query("status")

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), status, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookings, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

// ListDrivers returns drivers, optionally filtered by status.
func (h *AdminHandler) ListDrivers(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	status := c.Query("status")

	drivers, total, err := h.driverService.ListDrivers(c.Request.Context(), status, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Drivers retrieved", drivers, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

type approvalRequest struct {
	Approved bool `json:"approved"`
}

// ApproveDriver flips a driver between approved and rejected.
func (h *AdminHandler) ApproveDriver(c *gin.Context) {
	var request approvalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	driver, err := h.driverService.SetApproval(c.Request.Context(), c.Param("id"), request.Approved)
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			utils.NotFoundResponse(c, "Driver")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	if h.audit != nil {
		h.audit.LogAction("driver_approval", driver.ID.Hex(), c.GetString("email"), map[string]interface{}{
			"approved": request.Approved,
		})
	}

	utils.SuccessResponse(c, "Driver approval updated", driver)
}

// DriverDocumentURL issues a short-lived link to a stored document.
func (h *AdminHandler) DriverDocumentURL(c *gin.Context) {
	docType := models.DriverDocumentType(c.Query("type"))

	url, err := h.driverService.DocumentURL(c.Request.Context(), c.Param("id"), docType, 15*time.Minute)
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			utils.NotFoundResponse(c, "Driver")
			return
		}
		utils.NotFoundResponse(c, "Document")
		return
	}

	utils.SuccessResponse(c, "Document URL issued", gin.H{"url": url})
}

// GetPricing exposes the active rate card for back-office review.
func (h *AdminHandler) GetPricing(c *gin.Context) {
	utils.SuccessResponse(c, "Pricing retrieved", h.quoteService.PricingConfig())
}
