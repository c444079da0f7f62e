package handlers

import (
	"net/http"

	"iris-serving-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictionSvc.Predict(c.Request.Context(), dto.ToMeasurementRecord(&req))
	if err != nil {
		logFailure(c, "predict", err)
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(result))
}

func (h *Handler) PredictBatch(c *gin.Context) {
	var req dto.PredictBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictionSvc.PredictBatch(c.Request.Context(), dto.ToMeasurementRecords(&req))
	if err != nil {
		logFailure(c, "predict batch", err)
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchPredictionResponse(result))
}

func (h *Handler) PredictRandom(c *gin.Context) {
	result, err := h.predictionSvc.PredictRandom(c.Request.Context())
	if err != nil {
		logFailure(c, "predict random", err)
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRandomPredictionResponse(result))
}

func (h *Handler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToModelInfoResponse(h.predictionSvc.ModelInfo()))
}

// Health reports liveness only; the model is loaded before the server starts.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
