package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"iris-serving-service/internal/core/domain"
	ports "iris-serving-service/internal/core/ports/output"
)

const ModelTypeDecisionTree = "decision_tree"

const (
	defaultFamily  = "Decision Tree Classifier"
	defaultVersion = "1.0"
)

type artifactFile struct {
	ModelType    string               `json:"model_type"`
	FeatureCount int                  `json:"feature_count"`
	Metadata     domain.ModelMetadata `json:"metadata"`
	Classes      []int                `json:"classes"`
	Nodes        []TreeNode           `json:"nodes"`
}

// Load reads a serialized classifier from path. Every failure wraps
// domain.ErrArtifactLoad; callers treat it as fatal.
func Load(path string) (ports.Classifier, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArtifactLoad, err)
	}
	return Parse(payload)
}

// Parse decodes an artifact from its serialized bytes.
func Parse(payload []byte) (ports.Classifier, error) {
	var file artifactFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrArtifactLoad, err)
	}

	if file.FeatureCount != domain.FeatureCount {
		return nil, fmt.Errorf("%w: artifact expects %d features, service builds %d",
			domain.ErrArtifactLoad, file.FeatureCount, domain.FeatureCount)
	}

	meta := file.Metadata
	if meta.Family == "" {
		meta.Family = defaultFamily
	}
	if meta.Version == "" {
		meta.Version = defaultVersion
	}

	switch file.ModelType {
	case ModelTypeDecisionTree:
		tree, err := NewDecisionTree(file.Nodes, file.FeatureCount, file.Classes, meta)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArtifactLoad, err)
		}
		return tree, nil
	default:
		return nil, fmt.Errorf("%w: unsupported model type %q", domain.ErrArtifactLoad, file.ModelType)
	}
}
