package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ReadinessResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Store   string `json:"store"`
}

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	serviceName string
	ping        Pinger
}

func NewHealthHandler(serviceName string, ping Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		ping:        ping,
	}
}

// HealthCheck is the liveness probe. It never touches the store.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: h.serviceName,
	})
}

// ReadyCheck pings the store and answers 503 when it is down.
func (h *HealthHandler) ReadyCheck(c *gin.Context) {
	storeStatus := "disabled"
	code := http.StatusOK
	if h.ping != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.ping(pingCtx); err != nil {
			storeStatus = "down"
			code = http.StatusServiceUnavailable
		} else {
			storeStatus = "up"
		}
	}

	status := "ok"
	if code != http.StatusOK {
		status = "unavailable"
	}
	c.JSON(code, ReadinessResponse{
		Status:  status,
		Service: h.serviceName,
		Store:   storeStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/readyz", h.ReadyCheck)
}
