package ledger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/vaultkeeper/internal/models"
)

// Metrics счетчики исполнения транзакций
type Metrics struct {
	transactions   *prometheus.CounterVec
	commitDuration prometheus.Histogram
	checkpoint     prometheus.Gauge
}

// NewMetrics регистрирует метрики леджера в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vaultkeeper",
			Subsystem: "ledger",
			Name:      "transactions_total",
			Help:      "Committed transactions by operation and receipt status.",
		}, []string{"operation", "status"}),
		commitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vaultkeeper",
			Subsystem: "ledger",
			Name:      "commit_duration_seconds",
			Help:      "Time spent executing and committing a transaction.",
			Buckets:   prometheus.DefBuckets,
		}),
		checkpoint: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vaultkeeper",
			Subsystem: "ledger",
			Name:      "checkpoint",
			Help:      "Checkpoint of the latest commit.",
		}),
	}
	reg.MustRegister(m.transactions, m.commitDuration, m.checkpoint)
	return m
}

func (m *Metrics) observe(tx *models.Transaction, took time.Duration) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(string(tx.Operation), string(tx.Status)).Inc()
	m.commitDuration.Observe(took.Seconds())
	m.checkpoint.Set(float64(tx.Checkpoint))
}

func (m *Metrics) setCheckpoint(checkpoint int64) {
	if m == nil {
		return
	}
	m.checkpoint.Set(float64(checkpoint))
}
