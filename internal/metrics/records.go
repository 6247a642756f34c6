package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameRecordOperations = "record_operations_total"

	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"

	OutcomeSuccess       = "success"
	OutcomeNotFound      = "not_found"
	OutcomeUnprocessable = "unprocessable"
	OutcomeError         = "error"
)

var RecordOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRecordOperations,
		Help:      "Record mutations by kind, operation and outcome",
		Namespace: Namespace,
	},
	[]string{LabelKind, LabelOperation, LabelOutcome},
)
