package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vango/internal/services"
	"vango/internal/utils"
	"vango/internal/validators"
	"vango/pkg/logger"
)

type AuthHandler struct {
	authService services.AuthService
	audit       *logger.AuditLogger
}

func NewAuthHandler(authService services.AuthService, audit *logger.AuditLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		audit:       audit,
	}
}

// Login exchanges back-office credentials for an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondServiceError(c, errs)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if h.audit != nil {
		h.audit.LogAuthEvent("admin_login", utils.MaskEmail(request.Email), c.ClientIP(), c.Request.UserAgent(), err == nil)
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c)
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Authenticated", response)
}
