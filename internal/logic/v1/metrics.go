package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	usersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analytics_users_registered_total",
		Help: "Number of successfully registered users.",
	})

	sessionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_sessions_recorded_total",
		Help: "Session recording attempts by outcome.",
	}, []string{"outcome"})

	sessionMinutes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analytics_session_duration_minutes",
		Help:    "Duration of recorded sessions in minutes.",
		Buckets: []float64{5, 15, 30, 60, 120, 240, 480, 1440, 2880},
	})
)

const (
	outcomeRecorded = "recorded"
	outcomeRejected = "rejected"
)
