package domain

// Fingerprint is a content hash of the deployed binary and model artifact.
// It identifies what is running; it is never used for authorization.
type Fingerprint string

func (f Fingerprint) String() string {
	return string(f)
}

// ModelMetadata describes the loaded artifact for the model_info endpoint.
type ModelMetadata struct {
	Family      string `json:"family"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// ModelInfo is ModelMetadata plus the process fingerprint.
type ModelInfo struct {
	ModelMetadata
	Fingerprint Fingerprint
}

type PredictionResult struct {
	Label       ClassLabel
	Fingerprint Fingerprint
}

type BatchPredictionResult struct {
	Labels      []ClassLabel
	Fingerprint Fingerprint
}

type RandomPredictionResult struct {
	Record      MeasurementRecord
	Label       ClassLabel
	Fingerprint Fingerprint
}
