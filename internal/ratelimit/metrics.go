package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remainingGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "usecart_client",
			Name:      "rate_limit_remaining",
			Help:      "Requests remaining in the current window, as last reported by the API.",
		},
	)

	limitGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "usecart_client",
			Name:      "rate_limit_limit",
			Help:      "Request quota for the current window, as last reported by the API.",
		},
	)
)
