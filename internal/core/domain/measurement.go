package domain

import (
	"math"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// FeatureCount is the width of every feature vector the classifier accepts.
const FeatureCount = 4

// MeasurementRecord holds one flower's measurements in centimeters.
type MeasurementRecord struct {
	SepalLength float64 `json:"sepal_length"`
	SepalWidth  float64 `json:"sepal_width"`
	PetalLength float64 `json:"petal_length"`
	PetalWidth  float64 `json:"petal_width"`
}

// FeatureVector is the model-facing form of a MeasurementRecord, ordered
// sepal_length, sepal_width, petal_length, petal_width.
type FeatureVector [FeatureCount]float64

// Validate reports every field that is NaN or infinite. Values are never
// clamped or defaulted.
func (r MeasurementRecord) Validate(path *field.Path) field.ErrorList {
	var errs field.ErrorList
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"sepal_length", r.SepalLength},
		{"sepal_width", r.SepalWidth},
		{"petal_length", r.PetalLength},
		{"petal_width", r.PetalWidth},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, field.Invalid(path.Child(f.name), f.value, "must be a finite number"))
		}
	}
	return errs
}

// Vector builds the feature vector. The record must already have passed
// Validate.
func (r MeasurementRecord) Vector() FeatureVector {
	return FeatureVector{r.SepalLength, r.SepalWidth, r.PetalLength, r.PetalWidth}
}
