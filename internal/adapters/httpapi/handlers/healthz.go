package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const version = "1.0"

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
	Uptime  int64  `json:"uptime"`
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		OK:      true,
		Version: version,
		Uptime:  int64(time.Since(h.started).Seconds()),
	})
}
