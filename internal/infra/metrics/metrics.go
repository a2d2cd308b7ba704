package metrics

import (
	"fieldbook/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fieldbook"

var (
	reservationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_requests_total",
			Help:      "Reservation requests by outcome",
		},
		[]string{"outcome"},
	)

	rosterOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_operations_total",
			Help:      "Match join/leave operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	outboxPublishes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_publish_total",
			Help:      "Notification jobs handed to the broker",
		},
		[]string{"topic", "result"},
	)

	outboxJobs = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outbox_jobs",
			Help:      "Notification jobs currently stored per status",
		},
		[]string{"status"},
	)

	slotLockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slot_lock_wait_seconds",
			Help:      "Time spent acquiring the distributed slot lock",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return errs.Code(err)
}

func ObserveReservation(err error) {
	reservationOutcomes.WithLabelValues(outcome(err)).Inc()
}

func ObserveRoster(operation string, err error) {
	rosterOperations.WithLabelValues(operation, outcome(err)).Inc()
}

func ObserveOutboxPublish(topic string, err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	outboxPublishes.WithLabelValues(topic, result).Inc()
}

func SetOutboxJobs(status string, n int64) {
	outboxJobs.WithLabelValues(status).Set(float64(n))
}

func ObserveSlotLockWait(seconds float64) {
	slotLockWait.Observe(seconds)
}

func ObserveHTTP(method, route, status string, seconds float64) {
	httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}
