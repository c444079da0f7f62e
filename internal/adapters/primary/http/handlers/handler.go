package handlers

import (
	"iris-serving-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictionSvc *services.PredictionService
	workloadSvc   *services.WorkloadSimulator
}

func New(
	predictionSvc *services.PredictionService,
	workloadSvc *services.WorkloadSimulator,
) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		workloadSvc:   workloadSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Predictions
	r.POST("/predict", h.Predict)
	r.POST("/predict_batch", h.PredictBatch)
	r.GET("/predict_random", h.PredictRandom)

	// Model
	r.GET("/model_info", h.ModelInfo)

	// Workload simulation
	r.POST("/simulate_workload", h.SimulateWorkload)
	r.GET("/simulate_workload", h.SimulateWorkloadQuery)
}
