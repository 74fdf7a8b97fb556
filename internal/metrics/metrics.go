package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	// Outbound WooCommerce API calls
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	UpstreamInFlight prometheus.Gauge

	// Inbound storefront API
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// Catalog sync
	SyncRuns        *prometheus.CounterVec
	SyncedProducts  prometheus.Counter
	SkippedProducts prometheus.Counter
	WebhookEvents   *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	upstreamRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_upstream_requests_total",
		Help: "Requests sent to the WooCommerce API.",
	}, []string{"code", "method"})
	upstreamLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_upstream_request_duration_seconds",
		Help:    "Latency of WooCommerce API requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"code", "method"})
	upstreamInFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_upstream_in_flight_requests",
	})

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
	}, []string{"method", "route", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	syncRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_sync_runs_total",
	}, []string{"result"})
	syncedProducts := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_sync_products_published_total"})
	skippedProducts := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_sync_products_skipped_total"})
	webhookEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_webhook_events_total",
	}, []string{"topic", "result"})

	r.MustRegister(
		upstreamRequests, upstreamLatency, upstreamInFlight,
		httpRequests, httpLatency,
		syncRuns, syncedProducts, skippedProducts, webhookEvents,
	)

	return &Registry{
		reg:              r,
		UpstreamRequests: upstreamRequests,
		UpstreamLatency:  upstreamLatency,
		UpstreamInFlight: upstreamInFlight,
		HTTPRequests:     httpRequests,
		HTTPLatency:      httpLatency,
		SyncRuns:         syncRuns,
		SyncedProducts:   syncedProducts,
		SkippedProducts:  skippedProducts,
		WebhookEvents:    webhookEvents,
	}
}

// InstrumentTransport wraps next so every WooCommerce request is counted
// and timed. A nil next means http.DefaultTransport.
func (r *Registry) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperInFlight(r.UpstreamInFlight,
		promhttp.InstrumentRoundTripperCounter(r.UpstreamRequests,
			promhttp.InstrumentRoundTripperDuration(r.UpstreamLatency, next),
		),
	)
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
