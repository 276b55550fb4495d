package server

import (
	"time"

	"github.com/nainya/docstore/internal/logger"
	"github.com/nainya/docstore/internal/metrics"
)

// StoreObserver feeds store timings into metrics and debug logs.
type StoreObserver struct {
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewStoreObserver creates an observer for sqlstore.WithObserver.
func NewStoreObserver(m *metrics.Metrics, log *logger.Logger) *StoreObserver {
	return &StoreObserver{metrics: m, log: log}
}

// ObserveQuery implements storage.Observer.
func (o *StoreObserver) ObserveQuery(op string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	o.metrics.RecordDbOperation(op, status, d)
	o.log.LogDbOperation(op, d, err)
}
