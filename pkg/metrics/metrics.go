package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "calendar"

// Metrics набор Prometheus коллекторов сервиса.
// Все методы записи безопасны для nil-получателя: при выключенных метриках передаётся nil.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	AppointmentsBooked    *prometheus.CounterVec
	AppointmentsCancelled *prometheus.CounterVec
	BookingRejections     *prometheus.CounterVec
	DaysExpanded          *prometheus.CounterVec

	serviceName string
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_queries_total",
			Help:      "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database query latency",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_idle_connections",
			Help:      "Number of idle connections",
		}, []string{"service"}),

		AppointmentsBooked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Number of appointments booked",
		}, []string{"service"}),

		AppointmentsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_cancelled_total",
			Help:      "Number of appointments cancelled",
		}, []string{"service"}),

		BookingRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejections_total",
			Help:      "Number of rejected booking attempts by reason",
		}, []string{"service", "reason"}),

		DaysExpanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_days_expanded_total",
			Help:      "Number of bookable days produced by weekly template expansion",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.AppointmentsBooked,
		m.AppointmentsCancelled,
		m.BookingRejections,
		m.DaysExpanded,
	)

	return m
}

// ServiceName имя сервиса, используемое в лейблах
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

func (m *Metrics) IncAppointmentsBooked() {
	if m == nil {
		return
	}
	m.AppointmentsBooked.WithLabelValues(m.serviceName).Inc()
}

func (m *Metrics) IncAppointmentsCancelled() {
	if m == nil {
		return
	}
	m.AppointmentsCancelled.WithLabelValues(m.serviceName).Inc()
}

// IncBookingRejected учитывает отказ в бронировании с указанной причиной
func (m *Metrics) IncBookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingRejections.WithLabelValues(m.serviceName, reason).Inc()
}

func (m *Metrics) AddDaysExpanded(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.DaysExpanded.WithLabelValues(m.serviceName).Add(float64(n))
}
