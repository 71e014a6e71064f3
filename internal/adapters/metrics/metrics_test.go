package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
)

type upgradeCommand struct{}

func TestSimulationMetricsCollector_Records(t *testing.T) {
	// Arrange
	c := NewSimulationMetricsCollector()

	// Act
	c.RecordTick(2*time.Millisecond, 42)
	c.RecordTick(time.Millisecond, 40)
	c.RecordFracture(1, "Cobalt")
	c.RecordPickup("Silicon")
	c.RecordRequest("buy_upgrade", false)
	c.RecordJobCompleted("Quantum", 7)
	c.RecordCredits(1234)

	// Assert
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ticksTotal))
	assert.Equal(t, 40.0, testutil.ToFloat64(c.entities))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fractures.WithLabelValues("1", "Cobalt")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.pickups.WithLabelValues("Silicon")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("buy_upgrade", "refused")))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.refinedUnits.WithLabelValues("Quantum")))
	assert.Equal(t, 1234.0, testutil.ToFloat64(c.creditsBalance))
}

func TestFinancialMetricsCollector_SplitsRevenueAndExpenses(t *testing.T) {
	c := NewFinancialMetricsCollector()

	c.RecordTransaction("SELL_REFINED", "TRADING_REVENUE", 900, 1400)
	c.RecordTransaction("REFINING_FEE", "REFINING_COSTS", -250, 1150)

	assert.Equal(t, 900.0, testutil.ToFloat64(c.revenueTotal))
	assert.Equal(t, 250.0, testutil.ToFloat64(c.expensesTotal))
	assert.Equal(t, 1150.0, testutil.ToFloat64(c.journalBalance))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transactionsTotal.WithLabelValues("REFINING_FEE", "REFINING_COSTS")))
}

func TestPrometheusMiddleware_RecordsOutcome(t *testing.T) {
	// Arrange
	c := NewCommandMetricsCollector()
	mw := PrometheusMiddleware(c)
	fail := func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		return nil, errors.New("refused")
	}

	// Act
	_, err := mw(context.Background(), &upgradeCommand{}, fail)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("upgradeCommand", "command", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.inFlight))
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	mw := PrometheusMiddleware(nil)
	ok := func(ctx context.Context, r mediator.Request) (mediator.Response, error) {
		return "quoted", nil
	}

	resp, err := mw(context.Background(), &upgradeCommand{}, ok)

	require.NoError(t, err)
	assert.Equal(t, "quoted", resp)
}

func TestServer_ExposesRegisteredMetrics(t *testing.T) {
	// Arrange
	prev := Registry
	t.Cleanup(func() { Registry = prev })
	reg := InitRegistry()
	c := NewSimulationMetricsCollector()
	require.NoError(t, c.Register())
	c.RecordCredits(500)
	srv := NewServer("127.0.0.1:0", "/metrics", reg, nil)

	// Act
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "spaceminer_simulation_player_credits_balance 500"))
}

func TestRegister_NoopWithoutRegistry(t *testing.T) {
	prev := Registry
	t.Cleanup(func() { Registry = prev })
	Registry = nil

	assert.NoError(t, NewFinancialMetricsCollector().Register())
	assert.False(t, IsEnabled())
	assert.NoError(t, register(prometheus.NewCounter(prometheus.CounterOpts{Name: "x"})))
}
