package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/jonie-n/valodash-backend/internal/models"
)

// Prometheus metrics
var (
	documentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valodash_documents_created_total",
		Help: "Total number of match documents generated and persisted",
	}, []string{"backend"})

	documentsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valodash_documents_served_total",
		Help: "Total number of match documents returned from storage",
	}, []string{"backend"})

	storeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valodash_store_errors_total",
		Help: "Total number of failed store operations",
	}, []string{"backend"})

	storeOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "valodash_store_op_duration_seconds",
		Help:    "Duration of get-or-create store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})
)

// Instrumented wraps a Store with metrics and debug logging
type Instrumented struct {
	next    Store
	backend string
	logger  *zap.SugaredLogger
}

func NewInstrumented(next Store, backend string, logger *zap.Logger) *Instrumented {
	return &Instrumented{
		next:    next,
		backend: backend,
		logger:  logger.Sugar(),
	}
}

func (s *Instrumented) GetOrCreate(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	return s.observe("get_or_create", uid, func() (*models.UserMatchDocument, bool, error) {
		return s.next.GetOrCreate(ctx, uid)
	})
}

func (s *Instrumented) Create(ctx context.Context, uid string) (*models.UserMatchDocument, bool, error) {
	return s.observe("create", uid, func() (*models.UserMatchDocument, bool, error) {
		return s.next.Create(ctx, uid)
	})
}

func (s *Instrumented) observe(op, uid string, fn func() (*models.UserMatchDocument, bool, error)) (*models.UserMatchDocument, bool, error) {
	start := time.Now()
	doc, created, err := fn()
	storeOpDuration.WithLabelValues(s.backend).Observe(time.Since(start).Seconds())

	if err != nil {
		storeErrors.WithLabelValues(s.backend).Inc()
		return nil, false, err
	}

	if created {
		documentsCreated.WithLabelValues(s.backend).Inc()
		s.logger.Infow("Wrote match document", "op", op, "uid", uid, "backend", s.backend)
	} else {
		documentsServed.WithLabelValues(s.backend).Inc()
		s.logger.Debugw("Returning existing match document", "op", op, "uid", uid, "backend", s.backend)
	}
	return doc, created, nil
}
