package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveComputation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPricingMetrics(reg)

	m.ObserveComputation("booking", false, 50*time.Microsecond)
	m.ObserveComputation("booking", true, 50*time.Microsecond)
	m.ObserveComputation("quotation", true, 50*time.Microsecond)

	if got := testutil.ToFloat64(m.computations.WithLabelValues("booking")); got != 2 {
		t.Fatalf("expected 2 booking computations, got %v", got)
	}
	if got := testutil.ToFloat64(m.surcharges.WithLabelValues("booking")); got != 1 {
		t.Fatalf("expected 1 booking surcharge, got %v", got)
	}
	if got := testutil.ToFloat64(m.surcharges.WithLabelValues("quotation")); got != 1 {
		t.Fatalf("expected 1 quotation surcharge, got %v", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var m *PricingMetrics
	m.ObserveComputation("booking", true, time.Millisecond)

	empty := NewPricingMetrics(nil)
	empty.ObserveComputation("booking", true, time.Millisecond)
}
