package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records submission outcomes for the checkout path.
type OrderMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewOrderMetrics registers the order submission metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_submission_duration_seconds",
		Help:    "Duration of order submissions to the host in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submission_success",
		Help: "Successful host submissions.",
	}, []string{"action"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submission_failure",
		Help: "Failed host submissions.",
	}, []string{"action", "reason"})
	reg.MustRegister(duration, success, failure)
	return &OrderMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named host action.
func (o *OrderMetrics) ObserveDuration(action string, duration time.Duration) {
	if o == nil || o.duration == nil {
		return
	}
	o.duration.WithLabelValues(action).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named host action.
func (o *OrderMetrics) IncSuccess(action string) {
	if o == nil || o.success == nil {
		return
	}
	o.success.WithLabelValues(action).Inc()
}

// IncFailure increments the failure counter for the named host action.
func (o *OrderMetrics) IncFailure(action, reason string) {
	if o == nil || o.failure == nil {
		return
	}
	o.failure.WithLabelValues(action, reason).Inc()
}
