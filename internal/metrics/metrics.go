package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_http_requests_total",
			Help: "HTTP requests handled, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agenda_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AppointmentsCreated counts committed bookings.
	AppointmentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agenda_appointments_created_total",
			Help: "Appointments committed with status CONFIRMED.",
		},
	)

	// AppointmentsRejected counts bookings refused by the validation
	// pipeline, labelled with the business error code.
	AppointmentsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_appointments_rejected_total",
			Help: "Booking requests rejected, by reason.",
		},
		[]string{"reason"},
	)

	AppointmentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_appointment_transitions_total",
			Help: "Appointment status transitions, by target status.",
		},
		[]string{"status"},
	)

	AvailabilityChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_availability_changes_total",
			Help: "Availability windows published or retracted.",
		},
		[]string{"action"},
	)
)
