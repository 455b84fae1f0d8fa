package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics records comparison and advisor activity.
type APIMetrics struct {
	comparisons *prometheus.CounterVec
	savings     prometheus.Counter
	advisor     *prometheus.CounterVec
}

// NewAPIMetrics registers the API metrics on the provided registerer.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	if reg == nil {
		return &APIMetrics{}
	}
	comparisons := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "comparisons_total",
		Help: "Completed comparisons by vertical.",
	}, []string{"domain"})
	savings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "savings_records_total",
		Help: "Savings records written.",
	})
	advisor := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_requests_total",
		Help: "Narrative advisor invocations by kind and outcome.",
	}, []string{"kind", "outcome"})
	reg.MustRegister(comparisons, savings, advisor)
	return &APIMetrics{
		comparisons: comparisons,
		savings:     savings,
		advisor:     advisor,
	}
}

// IncComparison increments the comparison counter for the given domain.
func (m *APIMetrics) IncComparison(domain string) {
	if m == nil || m.comparisons == nil {
		return
	}
	m.comparisons.WithLabelValues(normalizeLabel(domain)).Inc()
}

// IncSavings increments the savings record counter.
func (m *APIMetrics) IncSavings() {
	if m == nil || m.savings == nil {
		return
	}
	m.savings.Inc()
}

// IncAdvisor increments the advisor counter for the given kind and outcome.
func (m *APIMetrics) IncAdvisor(kind, outcome string) {
	if m == nil || m.advisor == nil {
		return
	}
	m.advisor.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
