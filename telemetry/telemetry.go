// Package telemetry: observer contract and prometheus implementation.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names exported by the prometheus observer.
const (
	metricIngestTotal = "framebuf_ingest_samples_total"
	metricLookupTotal = "framebuf_lookups_total"
	metricWaitTotal   = "framebuf_waits_total"
)

// Observer receives buffer outcomes. Implementations must be safe for
// concurrent use; the buffer calls them under its locks on hot paths,
// so they should not block.
type Observer interface {
	// OnIngest records one sample: accepted, or rejected with a
	// diagnostic reason such as "TF_OLD_DATA".
	OnIngest(accepted bool, reason string)

	// OnLookup records one answered query.
	OnLookup(ok bool)

	// OnWait records one CanTransform wait: satisfied or timed out.
	OnWait(satisfied bool)
}

// nop discards every outcome.
type nop struct{}

func (nop) OnIngest(bool, string) {}
func (nop) OnLookup(bool)         {}
func (nop) OnWait(bool)           {}

// Nop returns the do-nothing Observer the buffer defaults to.
func Nop() Observer { return nop{} }

// Prometheus is an Observer backed by prometheus counters.
type Prometheus struct {
	ingest *prometheus.CounterVec
	lookup *prometheus.CounterVec
	wait   *prometheus.CounterVec
}

// NewPrometheus registers the framebuf counters on reg and returns the
// observer. Pass prometheus.DefaultRegisterer for the process default.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		ingest: factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricIngestTotal,
			Help: "Transform samples offered to the buffer, by outcome and rejection reason.",
		}, []string{"outcome", "reason"}),
		lookup: factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricLookupTotal,
			Help: "Transform queries answered by the buffer, by outcome.",
		}, []string{"outcome"}),
		wait: factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricWaitTotal,
			Help: "CanTransform waits, by outcome.",
		}, []string{"outcome"}),
	}
}

// OnIngest implements Observer.
func (p *Prometheus) OnIngest(accepted bool, reason string) {
	if accepted {
		p.ingest.WithLabelValues("accepted", "").Inc()
		return
	}
	p.ingest.WithLabelValues("rejected", reason).Inc()
}

// OnLookup implements Observer.
func (p *Prometheus) OnLookup(ok bool) {
	p.lookup.WithLabelValues(outcome(ok)).Inc()
}

// OnWait implements Observer.
func (p *Prometheus) OnWait(satisfied bool) {
	if satisfied {
		p.wait.WithLabelValues("satisfied").Inc()
		return
	}
	p.wait.WithLabelValues("timeout").Inc()
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
