package services

import (
	"context"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"iris-serving-service/internal/core/domain"
	ports "iris-serving-service/internal/core/ports/output"
)

// Operation names reported to the metrics recorder
const (
	OperationSingle = "single"
	OperationBatch  = "batch"
	OperationRandom = "random"
)

// PredictionService turns measurement records into labelled results.
// It holds no per-request state.
type PredictionService struct {
	gateway     *ModelGateway
	fingerprint domain.Fingerprint
	sampler     *Sampler
	recorder    ports.MetricsRecorder
}

func NewPredictionService(
	gateway *ModelGateway,
	fingerprint domain.Fingerprint,
	sampler *Sampler,
	recorder ports.MetricsRecorder,
) *PredictionService {
	if recorder == nil {
		recorder = ports.NopMetricsRecorder{}
	}
	return &PredictionService{
		gateway:     gateway,
		fingerprint: fingerprint,
		sampler:     sampler,
		recorder:    recorder,
	}
}

// Predict classifies one record.
func (s *PredictionService) Predict(ctx context.Context, record domain.MeasurementRecord) (*domain.PredictionResult, error) {
	if errs := record.Validate(nil); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	label, err := s.predictOne(ctx, OperationSingle, record)
	if err != nil {
		return nil, err
	}

	return &domain.PredictionResult{Label: label, Fingerprint: s.fingerprint}, nil
}

// PredictBatch classifies records in one model call. Every record is
// validated first; one bad record rejects the whole batch.
func (s *PredictionService) PredictBatch(ctx context.Context, records []domain.MeasurementRecord) (*domain.BatchPredictionResult, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	root := field.NewPath("instances")
	var errs field.ErrorList
	for i, r := range records {
		errs = append(errs, r.Validate(root.Index(i))...)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	vectors := make([]domain.FeatureVector, len(records))
	for i, r := range records {
		vectors[i] = r.Vector()
	}

	labels, err := s.gateway.PredictMany(ctx, vectors)
	if err != nil {
		return nil, err
	}

	for _, l := range labels {
		s.recorder.ObservePrediction(OperationBatch, string(l))
	}

	return &domain.BatchPredictionResult{Labels: labels, Fingerprint: s.fingerprint}, nil
}

// PredictRandom samples a record from the training ranges and classifies it.
func (s *PredictionService) PredictRandom(ctx context.Context) (*domain.RandomPredictionResult, error) {
	record := s.sampler.Sample()

	label, err := s.predictOne(ctx, OperationRandom, record)
	if err != nil {
		return nil, err
	}

	return &domain.RandomPredictionResult{
		Record:      record,
		Label:       label,
		Fingerprint: s.fingerprint,
	}, nil
}

// ModelInfo describes the served model. It never calls the artifact.
func (s *PredictionService) ModelInfo() domain.ModelInfo {
	return domain.ModelInfo{
		ModelMetadata: s.gateway.Metadata(),
		Fingerprint:   s.fingerprint,
	}
}

func (s *PredictionService) predictOne(ctx context.Context, operation string, record domain.MeasurementRecord) (domain.ClassLabel, error) {
	label, err := s.gateway.PredictOne(ctx, record.Vector())
	if err != nil {
		return "", err
	}
	s.recorder.ObservePrediction(operation, string(label))
	return label, nil
}
