// Package metrics exports branch-and-cut search statistics to Prometheus.
//
// A Collector implements milp.Observer; pass it as Options.Observer:
//
//	reg := prometheus.NewRegistry()
//	c, _ := metrics.NewCollector(reg, "lvmilp")
//	opts := milp.DefaultOptions()
//	opts.Observer = c
//	http.Handle("/metrics", metrics.Handler(reg))
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvmilp/milp"
)

// Collector counts processed branches by outcome and finished solves by
// status, and records per-solve iteration, pivot and duration distributions.
type Collector struct {
	Nodes      *prometheus.CounterVec   // labels: outcome
	Solves     *prometheus.CounterVec   // labels: status
	Iterations prometheus.Histogram     // branches per solve
	Pivots     prometheus.Histogram     // simplex iterations per solve
	Duration   *prometheus.HistogramVec // seconds per solve, labels: status
}

var _ milp.Observer = (*Collector)(nil)

// NewCollector creates the metric families under namespace and registers
// them with reg. Registration conflicts are returned, not panicked on.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		Nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "milp_nodes_total",
			Help:      "Branch-and-cut branches processed, by outcome.",
		}, []string{"outcome"}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "milp_solves_total",
			Help:      "Finished MILP solves, by status.",
		}, []string{"status"}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "milp_iterations",
			Help:      "Branches solved per MILP solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Pivots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "milp_pivots",
			Help:      "Simplex iterations per MILP solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "milp_solve_duration_seconds",
			Help:      "Wall-clock time per MILP solve.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}

	for _, col := range []prometheus.Collector{c.Nodes, c.Solves, c.Iterations, c.Pivots, c.Duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveNode implements milp.Observer.
func (c *Collector) ObserveNode(ev milp.NodeEvent) {
	c.Nodes.WithLabelValues(ev.Outcome.String()).Inc()
}

// ObserveSolve implements milp.Observer.
func (c *Collector) ObserveSolve(s milp.Summary) {
	status := s.Status.String()
	c.Solves.WithLabelValues(status).Inc()
	c.Iterations.Observe(float64(s.Iterations))
	c.Pivots.Observe(float64(s.Pivots))
	c.Duration.WithLabelValues(status).Observe(s.Elapsed.Seconds())
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
