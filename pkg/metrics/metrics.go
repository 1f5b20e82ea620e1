package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsCreated counts successfully persisted registration entries.
	RegistrationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_registration_entries_created_total",
		Help: "Number of registration entries written to storage.",
	})

	// RegistrationsRejected counts submissions rejected before or during the
	// write, labelled by reason (unavailable, full, duplicate, error).
	RegistrationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_registration_rejections_total",
		Help: "Number of registration submissions rejected, by reason.",
	}, []string{"reason"})

	// NotificationSends counts notification dispatch attempts by kind
	// (confirmation, admin) and outcome (success, failure, skipped).
	NotificationSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_registration_notification_sends_total",
		Help: "Number of registration notification sends, by kind and outcome.",
	}, []string{"kind", "outcome"})
)
