package metrics

const Namespace = "eezycollectionz"

const (
	LabelKind      = "kind"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

const (
	KindCollection = "collection"
	KindEntry      = "entry"
)
