package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// FinancialMetricsCollector records journal transactions
type FinancialMetricsCollector struct {
	transactionsTotal *prometheus.CounterVec
	transactionAmount *prometheus.HistogramVec
	revenueTotal      prometheus.Counter
	expensesTotal     prometheus.Counter
	journalBalance    prometheus.Gauge
}

// NewFinancialMetricsCollector creates a new financial metrics collector
func NewFinancialMetricsCollector() *FinancialMetricsCollector {
	return &FinancialMetricsCollector{
		transactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "transactions_total",
			Help:      "Journal transactions by type and category",
		}, []string{"type", "category"}),
		transactionAmount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "transaction_amount",
			Help:      "Absolute credit amount per transaction",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"type"}),
		revenueTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "revenue_credits_total",
			Help:      "Credits earned",
		}),
		expensesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expense_credits_total",
			Help:      "Credits spent",
		}),
		journalBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "journal_balance",
			Help:      "Balance after the last journalled transaction",
		}),
	}
}

// Register registers all financial metrics with the Prometheus registry
func (c *FinancialMetricsCollector) Register() error {
	return register(
		c.transactionsTotal,
		c.transactionAmount,
		c.revenueTotal,
		c.expensesTotal,
		c.journalBalance,
	)
}

// RecordTransaction records one journal transaction
func (c *FinancialMetricsCollector) RecordTransaction(transactionType, category string, amount, balanceAfter int) {
	c.transactionsTotal.WithLabelValues(transactionType, category).Inc()
	if amount >= 0 {
		c.revenueTotal.Add(float64(amount))
		c.transactionAmount.WithLabelValues(transactionType).Observe(float64(amount))
	} else {
		c.expensesTotal.Add(float64(-amount))
		c.transactionAmount.WithLabelValues(transactionType).Observe(float64(-amount))
	}
	c.journalBalance.Set(float64(balanceAfter))
}
