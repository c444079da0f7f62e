package artifact

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"iris-serving-service/internal/core/domain"
)

// stump splits on feature 0 at 1.0: left is class 0, right is class 1.
func stump() []TreeNode {
	return []TreeNode{
		{FeatureIdx: 0, Threshold: 1.0, LeftChild: 1, RightChild: 2},
		{IsLeaf: true, ClassLabel: 0},
		{IsLeaf: true, ClassLabel: 1},
	}
}

var _ = Describe("DecisionTree", func() {
	meta := domain.ModelMetadata{Family: "test", Version: "1"}

	Context("with a valid node table", func() {
		var tree *DecisionTree

		BeforeEach(func() {
			var err error
			tree, err = NewDecisionTree(stump(), 2, []int{0, 1}, meta)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should route rows on the threshold", func() {
			rows := mat.NewDense(3, 2, []float64{
				0.5, 9,
				1.0, 9,
				1.5, 9,
			})
			Expect(tree.Predict(rows)).To(Equal([]int{0, 0, 1}))
		})

		It("should reject rows of the wrong width", func() {
			_, err := tree.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}))
			Expect(err).To(MatchError(ContainSubstring("expected 2 features")))
		})

		It("should return a copy of its classes", func() {
			classes := tree.Classes()
			classes[0] = 42
			Expect(tree.Classes()).To(Equal([]int{0, 1}))
		})

		It("should expose its metadata", func() {
			Expect(tree.Metadata()).To(Equal(meta))
		})
	})

	DescribeTable("rejecting malformed trees",
		func(nodes []TreeNode, featureCount int, classes []int, msg string) {
			_, err := NewDecisionTree(nodes, featureCount, classes, meta)
			Expect(err).To(MatchError(ContainSubstring(msg)))
		},
		Entry("no nodes", []TreeNode{}, 2, []int{0, 1}, "no nodes"),
		Entry("zero features", stump(), 0, []int{0, 1}, "invalid feature count"),
		Entry("no classes", stump(), 2, nil, "no classes"),
		Entry("duplicate class", stump(), 2, []int{0, 1, 1}, "declared twice"),
		Entry("undeclared leaf label", stump(), 2, []int{0}, "not in declared classes"),
		Entry("feature index out of range",
			[]TreeNode{{FeatureIdx: 5, LeftChild: 1, RightChild: 2}, {IsLeaf: true}, {IsLeaf: true}},
			2, []int{0}, "feature index 5"),
		Entry("left child pointing backwards",
			[]TreeNode{{LeftChild: 0, RightChild: 2}, {IsLeaf: true}, {IsLeaf: true}},
			2, []int{0}, "invalid left child"),
		Entry("right child past the end",
			[]TreeNode{{LeftChild: 1, RightChild: 3}, {IsLeaf: true}, {IsLeaf: true}},
			2, []int{0}, "invalid right child"),
	)
})
