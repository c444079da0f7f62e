package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"iris-serving-service/internal/core/domain"
)

func ptr(v float64) *float64 { return &v }

// ============================================================================
// Request Mapping Tests
// ============================================================================

func TestToMeasurementRecord(t *testing.T) {
	req := &MeasurementRequest{
		SepalLength: ptr(5.1),
		SepalWidth:  ptr(3.5),
		PetalLength: ptr(1.4),
		PetalWidth:  ptr(0.2),
	}

	record := ToMeasurementRecord(req)

	assert.Equal(t, domain.MeasurementRecord{
		SepalLength: 5.1,
		SepalWidth:  3.5,
		PetalLength: 1.4,
		PetalWidth:  0.2,
	}, record)
}

func TestToMeasurementRecords_PreservesOrder(t *testing.T) {
	req := &PredictBatchRequest{
		Instances: []MeasurementRequest{
			{SepalLength: ptr(1), SepalWidth: ptr(1), PetalLength: ptr(1), PetalWidth: ptr(1)},
			{SepalLength: ptr(2), SepalWidth: ptr(2), PetalLength: ptr(2), PetalWidth: ptr(2)},
		},
	}

	records := ToMeasurementRecords(req)

	assert.Len(t, records, 2)
	assert.Equal(t, 1.0, records[0].SepalLength)
	assert.Equal(t, 2.0, records[1].PetalWidth)
}

// ============================================================================
// Response Mapping Tests
// ============================================================================

func TestToBatchPredictionResponse(t *testing.T) {
	resp := ToBatchPredictionResponse(&domain.BatchPredictionResult{
		Labels:      []domain.ClassLabel{domain.LabelVirginica, domain.LabelSetosa},
		Fingerprint: "abc",
	})

	assert.Equal(t, []string{"virginica", "setosa"}, resp.Labels)
	assert.Equal(t, "abc", resp.Fingerprint)
}

func TestToBatchPredictionResponse_EmptyIsNotNull(t *testing.T) {
	resp := ToBatchPredictionResponse(&domain.BatchPredictionResult{Labels: nil})

	assert.NotNil(t, resp.Labels)
	assert.Empty(t, resp.Labels)
}

func TestToRandomPredictionResponse(t *testing.T) {
	resp := ToRandomPredictionResponse(&domain.RandomPredictionResult{
		Record:      domain.MeasurementRecord{SepalLength: 4.3, SepalWidth: 2.0, PetalLength: 1.0, PetalWidth: 0.1},
		Label:       domain.LabelSetosa,
		Fingerprint: "abc",
	})

	assert.Equal(t, MeasurementResponse{SepalLength: 4.3, SepalWidth: 2.0, PetalLength: 1.0, PetalWidth: 0.1}, resp.Features)
	assert.Equal(t, "setosa", resp.Label)
}

func TestToModelInfoResponse(t *testing.T) {
	resp := ToModelInfoResponse(domain.ModelInfo{
		ModelMetadata: domain.ModelMetadata{
			Family:      "Decision Tree Classifier",
			Version:     "1.0",
			Description: "iris",
		},
		Fingerprint: "abc",
	})

	assert.Equal(t, ModelInfoResponse{
		ModelFamily:      "Decision Tree Classifier",
		ModelVersion:     "1.0",
		ModelDescription: "iris",
		Fingerprint:      "abc",
	}, resp)
}
