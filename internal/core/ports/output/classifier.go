package ports

import (
	"gonum.org/v1/gonum/mat"

	"iris-serving-service/internal/core/domain"
)

// Classifier is the loaded, immutable model artifact.
type Classifier interface {
	// Predict returns one class ordinal per row of rows, in row order.
	Predict(rows *mat.Dense) ([]int, error)

	// Classes lists every ordinal the artifact can emit.
	Classes() []int

	Metadata() domain.ModelMetadata
}
