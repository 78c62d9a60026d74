package heuristic

import (
	"context"
	"log/slog"

	"github.com/notionaudit/notionaudit/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProber runs reachability probes over a set of records with bounded
// concurrency. Each record is probed at most once and annotated in place;
// goroutines never touch each other's records, so results are deterministic
// by record order regardless of completion order.
type BatchProber struct {
	// prober performs the individual probes.
	prober *Prober

	// concurrency caps in-flight probes.
	concurrency int

	// logger for structured logging.
	logger *slog.Logger
}

// BatchProberOption configures a BatchProber.
type BatchProberOption func(*BatchProber)

// WithBatchConcurrency caps concurrent probes. Default is 4.
func WithBatchConcurrency(n int) BatchProberOption {
	return func(b *BatchProber) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets a custom logger for batch probing.
func WithBatchLogger(logger *slog.Logger) BatchProberOption {
	return func(b *BatchProber) {
		b.logger = logger
	}
}

// NewBatchProber creates a BatchProber around the given Prober.
func NewBatchProber(prober *Prober, opts ...BatchProberOption) *BatchProber {
	b := &BatchProber{
		prober:      prober,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Annotate probes every record with a URL and appends the reachability
// label to those that responded without a sign-in wall. Probe failures
// leave the record unchanged. Returns an error only on cancellation.
func (b *BatchProber) Annotate(ctx context.Context, records []model.PageRecord) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i := range records {
		if records[i].URL == "" {
			continue
		}

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if b.prober.Reachable(gctx, records[i].URL) {
				records[i].PublicIndicators = append(records[i].PublicIndicators, model.LabelReachable)
				b.logger.Debug("page reachable without authentication", "url", records[i].URL)
			}
			return nil
		})
	}

	return g.Wait()
}
