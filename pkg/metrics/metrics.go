package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Доменные метрики
	ReservationsCreated  *prometheus.CounterVec
	ReservationConflicts *prometheus.CounterVec
	SweepTransitions     prometheus.Counter
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ReservationsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of successfully created reservations",
			ConstLabels: constLabels,
		}, []string{"status"}),

		ReservationConflicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_conflicts_total",
			Help:        "Total number of booking attempts rejected due to a taken slot",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		SweepTransitions: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_sweep_transitions_total",
			Help:        "Total number of confirmed reservations retired to completed by the sweeper",
			ConstLabels: constLabels,
		}),
	}
}

// IncReservationCreated инкрементирует счетчик созданных бронирований
func (m *Metrics) IncReservationCreated(status string) {
	m.ReservationsCreated.WithLabelValues(status).Inc()
}

// IncReservationConflict инкрементирует счетчик конфликтов бронирования
func (m *Metrics) IncReservationConflict(reason string) {
	m.ReservationConflicts.WithLabelValues(reason).Inc()
}

// AddSweepTransitions добавляет количество переведенных бронирований к счетчику sweeper'а
func (m *Metrics) AddSweepTransitions(count int64) {
	m.SweepTransitions.Add(float64(count))
}
