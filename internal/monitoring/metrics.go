package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seat_reservations_total",
			Help: "Reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	seatsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seats_sold_total",
			Help: "Total seats committed to bookings",
		},
	)

	seatConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seat_conflicts_total",
			Help: "Seats rejected because another booking already held them",
		},
	)

	bookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Bookings cancelled with seats returned to the pool",
		},
	)

	activeHolds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "seat_holds_active",
			Help: "Currently outstanding seat holds",
		},
	)

	holdsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seat_holds_expired_total",
			Help: "Holds released by the expiry sweeper",
		},
	)

	reservationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seat_reservation_duration_seconds",
			Help:    "Time spent in the reservation check-and-commit section",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)
)

// Reservation outcomes.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeConflict  = "conflict"
	OutcomeRejected  = "rejected"
)

func TrackReservation(outcome string, seats int, d time.Duration) {
	reservations.WithLabelValues(outcome).Inc()
	reservationDuration.Observe(d.Seconds())
	switch outcome {
	case OutcomeConfirmed:
		seatsSold.Add(float64(seats))
	case OutcomeConflict:
		seatConflicts.Add(float64(seats))
	}
}

func TrackCancellation() {
	bookingsCancelled.Inc()
}

func SetActiveHolds(n int) {
	activeHolds.Set(float64(n))
}

func TrackHoldsExpired(n int) {
	holdsExpired.Add(float64(n))
}
