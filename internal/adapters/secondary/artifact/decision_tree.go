package artifact

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"iris-serving-service/internal/core/domain"
)

// TreeNode is one node of a flattened binary decision tree. Children always
// sit after their parent, so a walk can never revisit a node.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// DecisionTree is an immutable, pre-trained tree classifier.
type DecisionTree struct {
	nodes        []TreeNode
	featureCount int
	classes      []int
	metadata     domain.ModelMetadata
}

// NewDecisionTree validates the node table against the declared feature
// count and class set.
func NewDecisionTree(nodes []TreeNode, featureCount int, classes []int, metadata domain.ModelMetadata) (*DecisionTree, error) {
	if len(nodes) == 0 {
		return nil, errors.New("tree has no nodes")
	}
	if featureCount <= 0 {
		return nil, fmt.Errorf("invalid feature count %d", featureCount)
	}
	if len(classes) == 0 {
		return nil, errors.New("tree declares no classes")
	}

	known := make(map[int]struct{}, len(classes))
	for _, c := range classes {
		if _, dup := known[c]; dup {
			return nil, fmt.Errorf("class %d declared twice", c)
		}
		known[c] = struct{}{}
	}

	for i, n := range nodes {
		if n.IsLeaf {
			if _, ok := known[n.ClassLabel]; !ok {
				return nil, fmt.Errorf("node %d: leaf label %d not in declared classes", i, n.ClassLabel)
			}
			continue
		}
		if n.FeatureIdx < 0 || n.FeatureIdx >= featureCount {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, n.FeatureIdx)
		}
		if n.LeftChild <= i || n.LeftChild >= len(nodes) {
			return nil, fmt.Errorf("node %d: invalid left child %d", i, n.LeftChild)
		}
		if n.RightChild <= i || n.RightChild >= len(nodes) {
			return nil, fmt.Errorf("node %d: invalid right child %d", i, n.RightChild)
		}
	}

	return &DecisionTree{
		nodes:        append([]TreeNode(nil), nodes...),
		featureCount: featureCount,
		classes:      append([]int(nil), classes...),
		metadata:     metadata,
	}, nil
}

// Predict walks the tree once per row.
func (dt *DecisionTree) Predict(rows *mat.Dense) ([]int, error) {
	r, c := rows.Dims()
	if c != dt.featureCount {
		return nil, fmt.Errorf("expected %d features per row, got %d", dt.featureCount, c)
	}

	out := make([]int, r)
	for i := 0; i < r; i++ {
		out[i] = dt.predictRow(rows.RawRowView(i))
	}
	return out, nil
}

func (dt *DecisionTree) Classes() []int {
	return append([]int(nil), dt.classes...)
}

func (dt *DecisionTree) Metadata() domain.ModelMetadata {
	return dt.metadata
}

func (dt *DecisionTree) predictRow(features []float64) int {
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}
