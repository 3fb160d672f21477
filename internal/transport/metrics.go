package transport

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "github.com/usecart/usecart-go/internal/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usecart_client",
			Name:      "requests_total",
			Help:      "Cart API calls by HTTP method and outcome (success or error kind).",
		},
		[]string{"method", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "usecart_client",
			Name:      "request_duration_seconds",
			Help:      "Cart API call latency, including body parsing.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func observe(method string, d time.Duration, err error) {
	requestDuration.WithLabelValues(method).Observe(d.Seconds())
	requestsTotal.WithLabelValues(method, outcomeFor(err)).Inc()
}

func outcomeFor(err error) string {
	if err == nil {
		return "success"
	}
	if apiErr, ok := apierrors.AsAPIError(err); ok {
		return apiErr.Kind.String()
	}
	return "other"
}
