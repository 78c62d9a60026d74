package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/notionaudit/notionaudit/internal/heuristic"
	"github.com/notionaudit/notionaudit/internal/model"
)

// Lister discovers candidate pages. Implemented by notion.Client.
type Lister interface {
	ListAllPages(ctx context.Context) ([]model.PageStub, error)
}

// Fetcher resolves a page identifier to its full metadata record.
// Implemented by notion.Client.
type Fetcher interface {
	FetchPage(ctx context.Context, id string) (*model.PageRecord, error)
}

// DiscoverStep lists all candidate pages via paged search.
// A discovery failure does not abort the run: the partial stub list is kept
// and the state is marked partial.
type DiscoverStep struct {
	lister Lister
	logger *slog.Logger
}

// NewDiscoverStep creates a discovery step over the given lister.
func NewDiscoverStep(lister Lister, logger *slog.Logger) *DiscoverStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoverStep{lister: lister, logger: logger}
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return "discover"
}

// Do executes page discovery.
func (s *DiscoverStep) Do(ctx context.Context, state *State) error {
	stubs, err := s.lister.ListAllPages(ctx)
	state.Stubs = stubs

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		// Partial results are accepted; downstream steps analyze what was
		// found before the failure.
		state.PartialDiscovery = true
		s.logger.Warn("discovery incomplete, continuing with partial results",
			"discovered", len(stubs),
			"error", err,
		)
		return nil
	}

	s.logger.Info("discovery complete", "discovered", len(stubs))
	return nil
}

// FetchStep resolves each discovered stub to a full page record.
// Pages whose fetch fails are skipped and excluded from analysis; there is
// no retry.
type FetchStep struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewFetchStep creates a fetch step over the given fetcher.
func NewFetchStep(fetcher Fetcher, logger *slog.Logger) *FetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches page details one stub at a time.
func (s *FetchStep) Do(ctx context.Context, state *State) error {
	state.Records = make([]model.PageRecord, 0, len(state.Stubs))

	for _, stub := range state.Stubs {
		rec, err := s.fetcher.FetchPage(ctx, stub.ID)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			state.SkippedPages++
			s.logger.Warn("page fetch failed, skipping",
				"pageID", stub.ID,
				"error", err,
			)
			continue
		}

		state.Records = append(state.Records, *rec)
	}

	s.logger.Info("fetch complete",
		"fetched", len(state.Records),
		"skipped", state.SkippedPages,
	)
	return nil
}

// AnalyzeStep derives public-exposure indicators for every fetched record.
// When a batch prober is configured, the reachability signal is merged in
// before classification.
type AnalyzeStep struct {
	analyzer *heuristic.Analyzer
	prober   *heuristic.BatchProber
	logger   *slog.Logger
}

// NewAnalyzeStep creates an analysis step. prober may be nil, in which case
// only the metadata signals run.
func NewAnalyzeStep(analyzer *heuristic.Analyzer, prober *heuristic.BatchProber, logger *slog.Logger) *AnalyzeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeStep{analyzer: analyzer, prober: prober, logger: logger}
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do computes the indicator set per record.
func (s *AnalyzeStep) Do(ctx context.Context, state *State) error {
	for i := range state.Records {
		state.Records[i].PublicIndicators = s.analyzer.Indicators(&state.Records[i])
	}

	if s.prober != nil {
		if err := s.prober.Annotate(ctx, state.Records); err != nil {
			return err
		}
	}

	flagged := 0
	for i := range state.Records {
		if state.Records[i].HasIndicators() {
			flagged++
		}
	}
	s.logger.Info("analysis complete",
		"analyzed", len(state.Records),
		"flagged", flagged,
	)
	return nil
}

// AggregateStep folds the analyzed records into the final report.
type AggregateStep struct {
	logger *slog.Logger

	// now is the clock used for the scan timestamp. Overridable in tests.
	now func() time.Time
}

// NewAggregateStep creates the aggregation step.
func NewAggregateStep(logger *slog.Logger) *AggregateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &AggregateStep{logger: logger, now: time.Now}
}

// Name returns the step name.
func (s *AggregateStep) Name() string {
	return "aggregate"
}

// Do builds the report from the analyzed records.
func (s *AggregateStep) Do(_ context.Context, state *State) error {
	state.Report = model.BuildReport(state.Records, s.now())

	s.logger.Info("aggregation complete",
		"totalScanned", state.Report.TotalScanned,
		"entries", len(state.Report.Entries),
		"high", state.Report.RiskSummary.High,
		"medium", state.Report.RiskSummary.Medium,
	)
	return nil
}

// NewDefault assembles the standard audit pipeline: discover, fetch,
// analyze, aggregate. The client serves as both lister and fetcher; prober
// may be nil to keep the probe extension off.
func NewDefault(client interface {
	Lister
	Fetcher
}, prober *heuristic.BatchProber, logger *slog.Logger, opts ...Option) *Pipeline {
	p := New(append(opts, WithLogger(logger))...)
	p.AddSteps(
		NewDiscoverStep(client, logger),
		NewFetchStep(client, logger),
		NewAnalyzeStep(heuristic.NewAnalyzer(), prober, logger),
		NewAggregateStep(logger),
	)
	return p
}
