// Package metrics owns the Prometheus registry of the service.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/dlmiddlecote/sqlstats"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github/chapool/go-transfer/internal/config"
)

const (
	namespace = "transfer"

	OutcomeSigned    = "signed"
	OutcomeBroadcast = "broadcast"
	OutcomeError     = "error"
)

// Service is safe for concurrent use.
type Service struct {
	registry *prometheus.Registry

	transfers        *prometheus.CounterVec
	transferDuration prometheus.Histogram
	derivations      *prometheus.CounterVec
	storedStrings    prometheus.Counter
}

// New registers the service metrics on a fresh registry. If db is not nil and
// gathering SQL stats is enabled, its connection pool stats are collected too.
func New(cfg config.Server, db *sql.DB) (*Service, error) {
	s := &Service{
		registry: prometheus.NewRegistry(),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Transfers handled, by outcome and error kind.",
		}, []string{"outcome", "kind"}),
		transferDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transfer_duration_seconds",
			Help:      "Time taken to derive, sign and optionally broadcast a transfer.",
			Buckets:   prometheus.DefBuckets,
		}),
		derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "address_derivations_total",
			Help:      "Address derivations, by error kind.",
		}, []string{"kind"}),
		storedStrings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stored_strings_total",
			Help:      "Strings written to the string store.",
		}),
	}

	cs := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.transfers,
		s.transferDuration,
		s.derivations,
		s.storedStrings,
	}

	if db != nil && cfg.Metrics.GatherSQLStats {
		cs = append(cs, sqlstats.NewStatsCollector(cfg.Database.Database, db))
	}

	for _, c := range cs {
		if err := s.registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metrics collector")
		}
	}

	return s, nil
}

// Registry is used by the HTTP middleware to register its own collectors.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}

// ObserveTransfer records one transfer. kind is empty on success.
func (s *Service) ObserveTransfer(outcome string, kind string, took time.Duration) {
	s.transfers.WithLabelValues(outcome, kind).Inc()
	s.transferDuration.Observe(took.Seconds())
}

// ObserveDerivation records one address derivation. kind is empty on success.
func (s *Service) ObserveDerivation(kind string) {
	s.derivations.WithLabelValues(kind).Inc()
}

func (s *Service) IncStoredStrings() {
	s.storedStrings.Inc()
}
