// Package metrics defines Prometheus metrics for the whisper service.
//
// All metrics are registered with the default Prometheus registry and served
// on GET /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Authentication outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Authentication methods.
const (
	MethodLocal     = "local"
	MethodDelegated = "delegated"
	MethodRegister  = "register"
)

var (
	// AuthAttemptsTotal counts authentication attempts by method and outcome.
	AuthAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whisper_auth_attempts_total",
			Help: "Total authentication attempts by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	// SecretsSubmittedTotal counts appended secrets.
	SecretsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "whisper_secrets_submitted_total",
			Help: "Total secrets appended by signed-in users.",
		},
	)

	// SessionsTotal counts session lifecycle events.
	SessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whisper_sessions_total",
			Help: "Total session events by kind.",
		},
		[]string{"event"},
	)

	// PasswordHashSeconds is a histogram of bcrypt work by operation.
	PasswordHashSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whisper_password_hash_seconds",
			Help:    "Duration of password hash and check operations.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(
		AuthAttemptsTotal,
		SecretsSubmittedTotal,
		SessionsTotal,
		PasswordHashSeconds,
	)
}

// RecordAuthAttempt records one authentication attempt.
func RecordAuthAttempt(method, outcome string) {
	AuthAttemptsTotal.WithLabelValues(method, outcome).Inc()
}

// RecordSecretSubmitted records one appended secret.
func RecordSecretSubmitted() {
	SecretsSubmittedTotal.Inc()
}

// RecordSession records a session event such as "established" or "destroyed".
func RecordSession(event string) {
	SessionsTotal.WithLabelValues(event).Inc()
}

// ObservePasswordHash records how long a hash or check took.
func ObservePasswordHash(op string, d time.Duration) {
	PasswordHashSeconds.WithLabelValues(op).Observe(d.Seconds())
}
