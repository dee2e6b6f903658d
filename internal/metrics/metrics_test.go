package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/metrics"
)

func TestMetricsService(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	m, err := metrics.New(cfg, nil)
	require.NoError(t, err)

	m.ObserveTransfer(metrics.OutcomeSigned, "", 10*time.Millisecond)
	m.ObserveTransfer(metrics.OutcomeError, "INVALID_ADDRESS", time.Millisecond)
	m.ObserveDerivation("")
	m.IncStoredStrings()

	count, err := testutil.GatherAndCount(m.Registry(), "transfer_transfers_total", "transfer_stored_strings_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `transfer_transfers_total{kind="INVALID_ADDRESS",outcome="error"} 1`)
	assert.Contains(t, string(body), "transfer_address_derivations_total")
}

func TestMetricsServicesAreIndependent(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	_, err := metrics.New(cfg, nil)
	require.NoError(t, err)
	_, err = metrics.New(cfg, nil)
	require.NoError(t, err)
}
