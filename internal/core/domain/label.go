package domain

// ClassLabel is the species name returned to callers.
type ClassLabel string

const (
	LabelSetosa     ClassLabel = "setosa"
	LabelVersicolor ClassLabel = "versicolor"
	LabelVirginica  ClassLabel = "virginica"
)

// IrisLabels maps the artifact's ordinal output to labels. The order must
// match the encoding used when the artifact was trained.
func IrisLabels() []ClassLabel {
	return []ClassLabel{LabelSetosa, LabelVersicolor, LabelVirginica}
}
