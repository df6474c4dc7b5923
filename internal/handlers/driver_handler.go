package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vango/internal/models"
	"vango/internal/services"
	"vango/internal/utils"
)

type DriverHandler struct {
	driverService services.DriverService
}

func NewDriverHandler(driverService services.DriverService) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
	}
}

// Register creates a pending driver profile awaiting document checks.
func (h *DriverHandler) Register(c *gin.Context) {
	var request models.DriverRegistration
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	driver, err := h.driverService.Register(c.Request.Context(), &request)
	if err != nil {
		if respondServiceError(c, err) {
			return
		}
		if errors.Is(err, services.ErrDriverExists) {
			utils.ErrorResponse(c, http.StatusConflict, "DRIVER_EXISTS", err.Error())
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Driver registered", driver)
}

// UploadDocument attaches a compliance document to a driver profile.
func (h *DriverHandler) UploadDocument(c *gin.Context) {
	driverID := c.Param("id")
	docType := models.DriverDocumentType(c.PostForm("type"))

	file, header, err := c.Request.FormFile("document")
	if err != nil {
		utils.BadRequestResponse(c, "Document file is required")
		return
	}
	defer file.Close()

	doc, err := h.driverService.UploadDocument(
		c.Request.Context(),
		driverID,
		docType,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDriverNotFound):
			utils.NotFoundResponse(c, "Driver")
		case errors.Is(err, services.ErrInvalidDocumentType):
			utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, services.ErrDocumentTooLarge):
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE", err.Error())
		default:
			utils.BadGatewayResponse(c, "Failed to store document")
		}
		return
	}

	utils.CreatedResponse(c, "Document uploaded", doc)
}

// GetDriver returns a driver profile.
func (h *DriverHandler) GetDriver(c *gin.Context) {
	driver, err := h.driverService.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Driver")
		return
	}

	utils.SuccessResponse(c, "Driver retrieved", driver)
}
