// Package metrics define los colectores Prometheus del servicio.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Resultados posibles de una llamada al backend.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

// Metrics colectores del servicio registrados en un registry propio.
// Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	Registry *prometheus.Registry

	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	openDrafts      prometheus.Gauge
	submitted       *prometheus.CounterVec
}

// New crea y registra los colectores, incluidos los de runtime de Go y del proceso.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "erp_backend_requests_total",
			Help: "Llamadas al backend ERP por endpoint y resultado.",
		}, []string{"endpoint", "outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "erp_backend_request_duration_seconds",
			Help:    "Duración de las llamadas al backend ERP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		openDrafts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "guias_borradores_abiertos",
			Help: "Borradores de guía en memoria.",
		}),
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guias_emitidas_total",
			Help: "Guías emitidas por modo de envío.",
		}, []string{"modo"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.backendRequests, m.backendDuration, m.openDrafts, m.submitted,
	)
	return m
}

// ObserveBackend registra una llamada al backend.
func (m *Metrics) ObserveBackend(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(endpoint, outcome).Inc()
	m.backendDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// DraftOpened incrementa el gauge de borradores abiertos.
func (m *Metrics) DraftOpened() {
	if m == nil {
		return
	}
	m.openDrafts.Inc()
}

// DraftClosed decrementa el gauge de borradores abiertos.
func (m *Metrics) DraftClosed() {
	if m == nil {
		return
	}
	m.openDrafts.Dec()
}

// ShipmentSubmitted cuenta una guía emitida en el modo indicado.
func (m *Metrics) ShipmentSubmitted(mode string) {
	if m == nil {
		return
	}
	m.submitted.WithLabelValues(mode).Inc()
}
