package handlers

import (
	"github.com/gin-gonic/gin"

	"vango/internal/utils"
	"vango/pkg/database"
)

type HealthHandler struct {
	db      *database.MongoDB
	version string
}

func NewHealthHandler(db *database.MongoDB, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
	}
}

// Health reports liveness plus the datastore connection state.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			dbStatus = "unreachable"
		}
	}

	utils.SuccessResponse(c, "Service healthy", gin.H{
		"name":     utils.AppName,
		"version":  h.version,
		"database": dbStatus,
	})
}
