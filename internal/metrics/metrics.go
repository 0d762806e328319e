package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"smartgreeting/internal/responder"
)

var (
	greetingBucketDesc = prometheus.NewDesc(
		"smartgreeting_greeting_bucket",
		"Greeting bucket currently in effect (1 for the active tag)",
		[]string{"tag"},
		nil,
	)

	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartgreeting_queries_total",
			Help: "Total chat queries answered by intent",
		},
		[]string{"intent"},
	)
)

// GreetingCollector is a custom Prometheus collector that evaluates the
// greeting table against the responder's clock on each scrape.
type GreetingCollector struct {
	responder *responder.Responder
}

// NewGreetingCollector creates a collector for r.
func NewGreetingCollector(r *responder.Responder) *GreetingCollector {
	return &GreetingCollector{responder: r}
}

// Describe sends the metric descriptor to the channel.
func (c *GreetingCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- greetingBucketDesc
}

// Collect emits one gauge per distinct tag in the table. A tag may cover
// several rules, e.g. night before dawn and again before midnight.
func (c *GreetingCollector) Collect(ch chan<- prometheus.Metric) {
	current := c.responder.Greeting()
	seen := make(map[string]bool)
	for _, rule := range c.responder.Table().Rules() {
		if seen[rule.Tag] {
			continue
		}
		seen[rule.Tag] = true

		value := 0.0
		if rule.Tag == current.Tag {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(
			greetingBucketDesc,
			prometheus.GaugeValue,
			value,
			rule.Tag,
		)
	}
}

// Register adds the query counter and the greeting collector to reg. The
// counter is shared, so it may be registered with several registries.
func Register(reg prometheus.Registerer, r *responder.Responder) {
	for _, intent := range responder.Intents {
		queriesTotal.WithLabelValues(string(intent))
	}
	reg.MustRegister(queriesTotal, NewGreetingCollector(r))
}

// RecordQuery counts an answered query.
func RecordQuery(intent responder.Intent) {
	queriesTotal.WithLabelValues(string(intent)).Inc()
}
