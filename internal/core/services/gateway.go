package services

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/mat"

	"iris-serving-service/internal/core/domain"
	ports "iris-serving-service/internal/core/ports/output"
)

// ModelGateway owns the classifier artifact and the ordinal -> label table.
// Both are read-only after construction, so calls need no locking.
type ModelGateway struct {
	classifier ports.Classifier
	labels     []domain.ClassLabel
	recorder   ports.MetricsRecorder
	cache      *lru.Cache[domain.FeatureVector, domain.ClassLabel]
}

// NewModelGateway checks that the label table covers every class the
// artifact can emit. cacheSize <= 0 disables the single-prediction cache.
func NewModelGateway(
	classifier ports.Classifier,
	labels []domain.ClassLabel,
	recorder ports.MetricsRecorder,
	cacheSize int,
) (*ModelGateway, error) {
	classes := classifier.Classes()
	if len(classes) != len(labels) {
		return nil, fmt.Errorf("%w: artifact has %d classes, table has %d labels",
			domain.ErrLabelTableMismatch, len(classes), len(labels))
	}
	for _, c := range classes {
		if c < 0 || c >= len(labels) {
			return nil, fmt.Errorf("%w: class %d has no label", domain.ErrLabelTableMismatch, c)
		}
	}

	if recorder == nil {
		recorder = ports.NopMetricsRecorder{}
	}

	g := &ModelGateway{
		classifier: classifier,
		labels:     append([]domain.ClassLabel(nil), labels...),
		recorder:   recorder,
	}

	if cacheSize > 0 {
		cache, err := lru.New[domain.FeatureVector, domain.ClassLabel](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create prediction cache: %w", err)
		}
		g.cache = cache
	}

	return g, nil
}

// PredictOne classifies a single vector.
func (g *ModelGateway) PredictOne(ctx context.Context, vector domain.FeatureVector) (domain.ClassLabel, error) {
	if g.cache != nil {
		if label, ok := g.cache.Get(vector); ok {
			g.recorder.ObserveInvocation(1, ports.OutcomeCached, 0)
			return label, nil
		}
	}

	labels, err := g.invoke(ctx, "predict_one", []domain.FeatureVector{vector})
	if err != nil {
		return "", err
	}

	if g.cache != nil {
		g.cache.Add(vector, labels[0])
	}
	return labels[0], nil
}

// PredictMany classifies vectors in one artifact call. Output row i belongs
// to input row i. An empty input yields an empty output.
func (g *ModelGateway) PredictMany(ctx context.Context, vectors []domain.FeatureVector) ([]domain.ClassLabel, error) {
	if len(vectors) == 0 {
		return []domain.ClassLabel{}, nil
	}
	return g.invoke(ctx, "predict_many", vectors)
}

// Metadata returns the artifact's descriptive metadata.
func (g *ModelGateway) Metadata() domain.ModelMetadata {
	return g.classifier.Metadata()
}

func (g *ModelGateway) invoke(ctx context.Context, op string, vectors []domain.FeatureVector) ([]domain.ClassLabel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := make([]float64, 0, len(vectors)*domain.FeatureCount)
	for _, v := range vectors {
		data = append(data, v[:]...)
	}
	rows := mat.NewDense(len(vectors), domain.FeatureCount, data)

	start := time.Now()
	ordinals, err := g.callArtifact(rows)
	if err != nil {
		g.recorder.ObserveInvocation(len(vectors), ports.OutcomeError, time.Since(start))
		return nil, &domain.ModelInvocationError{Op: op, Err: err}
	}

	labels, err := g.decode(ordinals, len(vectors))
	if err != nil {
		g.recorder.ObserveInvocation(len(vectors), ports.OutcomeError, time.Since(start))
		return nil, &domain.ModelInvocationError{Op: op, Err: err}
	}

	g.recorder.ObserveInvocation(len(vectors), ports.OutcomeSuccess, time.Since(start))
	return labels, nil
}

// callArtifact turns a panicking artifact into an error.
func (g *ModelGateway) callArtifact(rows *mat.Dense) (ordinals []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("artifact panic: %v", r)
		}
	}()
	return g.classifier.Predict(rows)
}

func (g *ModelGateway) decode(ordinals []int, want int) ([]domain.ClassLabel, error) {
	if len(ordinals) != want {
		return nil, fmt.Errorf("%w: sent %d, got %d", domain.ErrRowCountChanged, want, len(ordinals))
	}

	labels := make([]domain.ClassLabel, len(ordinals))
	for i, o := range ordinals {
		if o < 0 || o >= len(g.labels) {
			return nil, fmt.Errorf("%w: row %d returned %d", domain.ErrUnknownOrdinal, i, o)
		}
		labels[i] = g.labels[o]
	}
	return labels, nil
}
