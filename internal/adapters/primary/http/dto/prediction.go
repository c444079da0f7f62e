package dto

import (
	"iris-serving-service/internal/core/domain"
)

// ============================================================================
// Prediction DTOs
// ============================================================================

// MeasurementRequest uses pointers so that an absent field is rejected
// instead of silently becoming zero.
type MeasurementRequest struct {
	SepalLength *float64 `json:"sepal_length" binding:"required"`
	SepalWidth  *float64 `json:"sepal_width" binding:"required"`
	PetalLength *float64 `json:"petal_length" binding:"required"`
	PetalWidth  *float64 `json:"petal_width" binding:"required"`
}

type PredictBatchRequest struct {
	Instances []MeasurementRequest `json:"instances" binding:"required,dive"`
}

type MeasurementResponse struct {
	SepalLength float64 `json:"sepal_length"`
	SepalWidth  float64 `json:"sepal_width"`
	PetalLength float64 `json:"petal_length"`
	PetalWidth  float64 `json:"petal_width"`
}

type PredictionResponse struct {
	Label       string `json:"label"`
	Fingerprint string `json:"fingerprint"`
}

type BatchPredictionResponse struct {
	Labels      []string `json:"labels"`
	Fingerprint string   `json:"fingerprint"`
}

type RandomPredictionResponse struct {
	Features    MeasurementResponse `json:"features"`
	Label       string              `json:"label"`
	Fingerprint string              `json:"fingerprint"`
}

type ModelInfoResponse struct {
	ModelFamily      string `json:"model_family"`
	ModelVersion     string `json:"model_version"`
	ModelDescription string `json:"model_description"`
	Fingerprint      string `json:"fingerprint"`
}

// ToMeasurementRecord must only be called after binding validated req.
func ToMeasurementRecord(req *MeasurementRequest) domain.MeasurementRecord {
	return domain.MeasurementRecord{
		SepalLength: *req.SepalLength,
		SepalWidth:  *req.SepalWidth,
		PetalLength: *req.PetalLength,
		PetalWidth:  *req.PetalWidth,
	}
}

func ToMeasurementRecords(req *PredictBatchRequest) []domain.MeasurementRecord {
	out := make([]domain.MeasurementRecord, 0, len(req.Instances))
	for i := range req.Instances {
		out = append(out, ToMeasurementRecord(&req.Instances[i]))
	}
	return out
}

func ToPredictionResponse(r *domain.PredictionResult) PredictionResponse {
	return PredictionResponse{
		Label:       string(r.Label),
		Fingerprint: r.Fingerprint.String(),
	}
}

func ToBatchPredictionResponse(r *domain.BatchPredictionResult) BatchPredictionResponse {
	labels := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		labels[i] = string(l)
	}
	return BatchPredictionResponse{
		Labels:      labels,
		Fingerprint: r.Fingerprint.String(),
	}
}

func ToRandomPredictionResponse(r *domain.RandomPredictionResult) RandomPredictionResponse {
	return RandomPredictionResponse{
		Features: MeasurementResponse{
			SepalLength: r.Record.SepalLength,
			SepalWidth:  r.Record.SepalWidth,
			PetalLength: r.Record.PetalLength,
			PetalWidth:  r.Record.PetalWidth,
		},
		Label:       string(r.Label),
		Fingerprint: r.Fingerprint.String(),
	}
}

func ToModelInfoResponse(info domain.ModelInfo) ModelInfoResponse {
	return ModelInfoResponse{
		ModelFamily:      info.Family,
		ModelVersion:     info.Version,
		ModelDescription: info.Description,
		Fingerprint:      info.Fingerprint.String(),
	}
}

// ============================================================================
// Workload DTOs
// ============================================================================

type SimulateWorkloadRequest struct {
	DelaySeconds *float64 `json:"delay_seconds"`
}

type SimulateWorkloadResponse struct {
	Message string `json:"message"`
}
