package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics содержит метрики операций реестра заказов.
type LedgerMetrics struct {
	// Счётчики операций
	ordersCreated  prometheus.Counter
	statusUpdates  prometheus.Counter
	ordersDeleted  prometheus.Counter
	ledgerCleared  prometheus.Counter
	persistFailed  prometheus.Counter
	corruptedReads prometheus.Counter

	// Гистограмма времени операций по их имени
	opDuration *prometheus.HistogramVec

	// Gauge текущего размера реестра
	ledgerSize prometheus.Gauge
}

// NewLedgerMetrics создаёт метрики реестра в глобальном registry.
func NewLedgerMetrics() *LedgerMetrics {
	return newLedgerMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newLedgerMetricsWithRegisterer(registerer prometheus.Registerer) *LedgerMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &LedgerMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "luxora_orders_created_total",
			Help: "Total number of orders created in the ledger",
		}),
		statusUpdates: registerCounter(registerer, prometheus.CounterOpts{
			Name: "luxora_order_status_updates_total",
			Help: "Total number of order status updates",
		}),
		ordersDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "luxora_orders_deleted_total",
			Help: "Total number of orders deleted from the ledger",
		}),
		ledgerCleared: registerCounter(registerer, prometheus.CounterOpts{
			Name: "luxora_ledger_cleared_total",
			Help: "Total number of full ledger clears",
		}),
		persistFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "luxora_ledger_persist_failures_total",
			Help: "Total number of failed ledger writes",
		}),
		corruptedReads: registerCounter(registerer, prometheus.CounterOpts{
			Name: "luxora_ledger_corrupted_reads_total",
			Help: "Total number of unreadable ledger blobs degraded to an empty collection",
		}),
		opDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "luxora_ledger_op_duration_seconds",
			Help:    "Duration of ledger operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"op"}),
		ledgerSize: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "luxora_ledger_orders",
			Help: "Number of orders currently held in the ledger",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated увеличивает счётчик оформленных заказов.
func (m *LedgerMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordStatusUpdate увеличивает счётчик смен статуса.
func (m *LedgerMetrics) RecordStatusUpdate() {
	m.statusUpdates.Inc()
}

// RecordOrderDeleted увеличивает счётчик удалённых заказов.
func (m *LedgerMetrics) RecordOrderDeleted() {
	m.ordersDeleted.Inc()
}

// RecordLedgerCleared увеличивает счётчик полных очисток реестра.
func (m *LedgerMetrics) RecordLedgerCleared() {
	m.ledgerCleared.Inc()
}

// RecordPersistFailure увеличивает счётчик неудачных записей.
func (m *LedgerMetrics) RecordPersistFailure() {
	m.persistFailed.Inc()
}

// RecordCorruptedRead увеличивает счётчик нечитаемых блобов.
func (m *LedgerMetrics) RecordCorruptedRead() {
	m.corruptedReads.Inc()
}

// RecordOpDuration записывает время выполнения операции реестра.
func (m *LedgerMetrics) RecordOpDuration(op string, duration time.Duration) {
	m.opDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// SetLedgerSize фиксирует текущее количество заказов в реестре.
func (m *LedgerMetrics) SetLedgerSize(n int) {
	m.ledgerSize.Set(float64(n))
}
