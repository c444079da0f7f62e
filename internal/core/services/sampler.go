package services

import (
	"math/rand/v2"
	"sync"

	"iris-serving-service/internal/core/domain"
)

// FeatureRange is a closed interval [Min, Max] in centimeters.
type FeatureRange struct {
	Min float64
	Max float64
}

func (r FeatureRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Observed extremes of the training set.
var (
	SepalLengthRange = FeatureRange{Min: 4.3, Max: 7.9}
	SepalWidthRange  = FeatureRange{Min: 2.0, Max: 4.4}
	PetalLengthRange = FeatureRange{Min: 1.0, Max: 6.9}
	PetalWidthRange  = FeatureRange{Min: 0.1, Max: 2.5}
)

// Sampler draws synthetic measurement records. Safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler returns a reproducible sampler for a non-zero seed and a
// randomly seeded one for zero.
func NewSampler(seed uint64) *Sampler {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed)
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample draws every field independently and uniformly from its range.
func (s *Sampler) Sample() domain.MeasurementRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.MeasurementRecord{
		SepalLength: s.uniform(SepalLengthRange),
		SepalWidth:  s.uniform(SepalWidthRange),
		PetalLength: s.uniform(PetalLengthRange),
		PetalWidth:  s.uniform(PetalWidthRange),
	}
}

func (s *Sampler) uniform(r FeatureRange) float64 {
	v := r.Min + s.rng.Float64()*(r.Max-r.Min)
	// rounding can land a hair past Max
	if v > r.Max {
		v = r.Max
	}
	return v
}
