package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameIDGenerationAttempts = "id_generation_attempts_total"
	NameIDAllocationFailures = "id_allocation_failures_total"
)

var IDGenerationAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameIDGenerationAttempts,
		Help:      "Total generated identifier candidates",
		Namespace: Namespace,
	},
	[]string{LabelKind},
)

var IDAllocationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameIDAllocationFailures,
		Help:      "Identifier allocations that exhausted their retry budget",
		Namespace: Namespace,
	},
	[]string{LabelKind},
)
