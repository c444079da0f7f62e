package artifact

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"iris-serving-service/internal/core/domain"
)

const irisArtifact = "../../../../models/iris_tree.json"

var _ = Describe("Load", func() {
	Context("with the shipped iris artifact", func() {
		It("should classify one example of each species", func() {
			clf, err := Load(irisArtifact)
			Expect(err).NotTo(HaveOccurred())
			Expect(clf.Classes()).To(Equal([]int{0, 1, 2}))

			rows := mat.NewDense(3, domain.FeatureCount, []float64{
				5.1, 3.5, 1.4, 0.2,
				5.9, 3.0, 4.2, 1.5,
				6.3, 3.3, 6.0, 2.5,
			})
			Expect(clf.Predict(rows)).To(Equal([]int{0, 1, 2}))
		})

		It("should carry descriptive metadata", func() {
			clf, err := Load(irisArtifact)
			Expect(err).NotTo(HaveOccurred())
			Expect(clf.Metadata().Family).NotTo(BeEmpty())
			Expect(clf.Metadata().Version).NotTo(BeEmpty())
		})
	})

	It("should fail on a missing file", func() {
		_, err := Load(filepath.Join(GinkgoT().TempDir(), "absent.json"))
		Expect(err).To(MatchError(domain.ErrArtifactLoad))
	})

	It("should fail on a corrupt file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "corrupt.json")
		Expect(os.WriteFile(path, []byte("{not json"), 0o600)).To(Succeed())

		_, err := Load(path)
		Expect(err).To(MatchError(domain.ErrArtifactLoad))
		Expect(err).To(MatchError(domain.ErrConfiguration))
	})
})

var _ = Describe("Parse", func() {
	It("should fill in default metadata", func() {
		clf, err := Parse([]byte(`{
			"model_type": "decision_tree",
			"feature_count": 4,
			"classes": [0],
			"nodes": [{"is_leaf": true, "class_label": 0}]
		}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(clf.Metadata()).To(Equal(domain.ModelMetadata{
			Family:  "Decision Tree Classifier",
			Version: "1.0",
		}))
	})

	It("should reject an unknown model type", func() {
		_, err := Parse([]byte(`{"model_type": "svc", "feature_count": 4}`))
		Expect(err).To(MatchError(domain.ErrArtifactLoad))
		Expect(err).To(MatchError(ContainSubstring(`unsupported model type "svc"`)))
	})

	It("should reject a feature count the service does not build", func() {
		_, err := Parse([]byte(`{"model_type": "decision_tree", "feature_count": 3}`))
		Expect(err).To(MatchError(ContainSubstring("expects 3 features")))
	})

	It("should reject an invalid node table", func() {
		_, err := Parse([]byte(`{
			"model_type": "decision_tree",
			"feature_count": 4,
			"classes": [0],
			"nodes": [{"is_leaf": true, "class_label": 9}]
		}`))
		Expect(err).To(MatchError(domain.ErrArtifactLoad))
	})
})
