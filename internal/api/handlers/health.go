package handlers

import (
	"context"
	"net/http"
	"time"

	"medisync/internal/api/dto/common"
	"medisync/internal/utils"
	"medisync/internal/version"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency whose reachability is reported by /health
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			utils.HandleAPIError(c, err, http.StatusServiceUnavailable, common.ErrCodeUnavailable, "Submission store unreachable")
			return
		}
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Health check OK"))
}

// Version reports the build information
func (h *HealthHandler) Version(c *gin.Context) {
	utils.HandleSuccess(c, version.GetBuildInfo())
}
