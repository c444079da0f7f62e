package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"iris-serving-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

// SimulateWorkload accepts {"delay_seconds": n}. An empty body uses the
// configured default delay.
func (h *Handler) SimulateWorkload(c *gin.Context) {
	var req dto.SimulateWorkloadRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delay := h.workloadSvc.DefaultDelaySeconds()
	if req.DelaySeconds != nil {
		delay = *req.DelaySeconds
	}

	h.simulate(c, delay)
}

// SimulateWorkloadQuery accepts ?seconds=n.
func (h *Handler) SimulateWorkloadQuery(c *gin.Context) {
	delay := h.workloadSvc.DefaultDelaySeconds()
	if raw := c.Query("seconds"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seconds"})
			return
		}
		delay = parsed
	}

	h.simulate(c, delay)
}

func (h *Handler) simulate(c *gin.Context, delay float64) {
	msg, err := h.workloadSvc.Simulate(c.Request.Context(), delay)
	if err != nil {
		logFailure(c, "simulate workload", err)
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SimulateWorkloadResponse{Message: msg})
}
