package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"iris-serving-service/internal/adapters/secondary/artifact"
	"iris-serving-service/internal/core/domain"
	ports "iris-serving-service/internal/core/ports/output"
)

// MockClassifier is a mock of ports.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(rows *mat.Dense) ([]int, error) {
	args := m.Called(rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockClassifier) Classes() []int {
	args := m.Called()
	return args.Get(0).([]int)
}

func (m *MockClassifier) Metadata() domain.ModelMetadata {
	args := m.Called()
	return args.Get(0).(domain.ModelMetadata)
}

// MockMetricsRecorder is a mock of ports.MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) ObserveInvocation(rows int, outcome string, elapsed time.Duration) {
	m.Called(rows, outcome, elapsed)
}

func (m *MockMetricsRecorder) ObservePrediction(operation string, label string) {
	m.Called(operation, label)
}

func (m *MockMetricsRecorder) ObserveWorkload(delay time.Duration) {
	m.Called(delay)
}

var _ ports.Classifier = (*MockClassifier)(nil)
var _ ports.MetricsRecorder = (*MockMetricsRecorder)(nil)

// IrisArtifactPath is the decision tree shipped in models/.
func IrisArtifactPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "models", "iris_tree.json")
}

// LoadIrisClassifier loads the shipped artifact or fails the test.
func LoadIrisClassifier(t testing.TB) ports.Classifier {
	t.Helper()
	c, err := artifact.Load(IrisArtifactPath())
	require.NoError(t, err)
	return c
}
