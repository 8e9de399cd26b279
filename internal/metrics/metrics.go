package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "beautishop",
			Name:      "reservations_created_total",
			Help:      "Count of reservations successfully created.",
		},
	)

	reservationConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "beautishop",
			Name:      "reservation_conflicts_total",
			Help:      "Count of create attempts rejected for overlapping an active reservation.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "beautishop",
			Name:      "reservation_transitions_total",
			Help:      "Count of reservation status transitions by target status.",
		},
		[]string{"to"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationsCreated, reservationConflicts, statusTransitions)
	})
}

func IncReservationCreated() {
	reservationsCreated.Inc()
}

func IncReservationConflict() {
	reservationConflicts.Inc()
}

func IncStatusTransition(to string) {
	statusTransitions.WithLabelValues(to).Inc()
}
