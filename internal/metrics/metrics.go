package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DepositsTotal counts finalized deposits by outcome (minted, credited_to_sender, refunded)
	DepositsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_deposits_total",
			Help: "Total number of processed deposit notifications",
		},
		[]string{"outcome"},
	)

	// WithdrawalsTotal counts withdrawal messages by source (holder, refund)
	WithdrawalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_withdrawals_total",
			Help: "Total number of withdrawal messages queued for L1",
		},
		[]string{"source"},
	)

	// TokensDeployed counts token instances created by the gateway
	TokensDeployed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_tokens_deployed_total",
			Help: "Total number of token instances deployed",
		},
		[]string{"kind"},
	)

	// MigrationsTotal counts balance migrations to custom tokens
	MigrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_migrations_total",
			Help: "Total number of migrations to custom tokens",
		},
	)

	// CustomRegistrationsTotal counts custom token registrations
	CustomRegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_custom_registrations_total",
			Help: "Total number of custom token registrations",
		},
	)

	// ExitNum tracks the next exit number
	ExitNum = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_exit_num",
			Help: "Next withdrawal exit number",
		},
	)

	// CallsRejected counts rejected inbound calls by operation and reason
	CallsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_calls_rejected_total",
			Help: "Total number of rejected gateway calls",
		},
		[]string{"op", "reason"},
	)

	// CallDuration tracks call processing time
	CallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_call_duration_seconds",
			Help:    "Gateway call processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	// GasUsed tracks gas used per call
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_gas_used",
			Help:    "Gas used by gateway calls",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000},
		},
		[]string{"op"},
	)
)
