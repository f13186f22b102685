package client

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opGetAds            = "get_ads"
	opGetDashboardStats = "get_dashboard_stats"
	opCreateAd          = "create_ad"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "mango_client",
		Name:      "requests_total",
		Help:      "Requests issued by the ads client, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// observe records one finished call. Outcomes: ok, http_error, error.
func observe(op string, err error) {
	outcome := "ok"
	var se *StatusError
	switch {
	case err == nil:
	case errors.As(err, &se):
		outcome = "http_error"
	default:
		outcome = "error"
	}
	requestsTotal.WithLabelValues(op, outcome).Inc()
}
