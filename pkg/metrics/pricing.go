package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records how often and from where the pricing engine runs.
type PricingMetrics struct {
	computations *prometheus.CounterVec
	surcharges   *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewPricingMetrics registers the pricing metrics on the provided registerer.
// A nil registerer yields a no-op recorder, which keeps tests quiet.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	computations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_computations_total",
		Help: "Pricing engine runs by calling surface.",
	}, []string{"surface"})
	surcharges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_ob_surcharges_total",
		Help: "Computations where the unsociable-hours fee applied.",
	}, []string{"surface"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_computation_seconds",
		Help:    "Duration of pricing computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"surface"})
	reg.MustRegister(computations, surcharges, duration)
	return &PricingMetrics{
		computations: computations,
		surcharges:   surcharges,
		duration:     duration,
	}
}

// ObserveComputation records one engine run for the named surface.
func (p *PricingMetrics) ObserveComputation(surface string, surchargeApplied bool, elapsed time.Duration) {
	if p == nil || p.computations == nil {
		return
	}
	p.computations.WithLabelValues(surface).Inc()
	if surchargeApplied {
		p.surcharges.WithLabelValues(surface).Inc()
	}
	p.duration.WithLabelValues(surface).Observe(elapsed.Seconds())
}
