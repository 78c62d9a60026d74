package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/notionaudit/notionaudit/internal/model"
)

// State is the shared accumulator threaded through the pipeline.
// It is owned by the run's single thread of control; no locking is needed.
type State struct {
	// StartedAt is when the run began.
	StartedAt time.Time

	// Stubs holds the discovered page handles, in discovery order.
	Stubs []model.PageStub

	// Records holds the successfully fetched pages, in discovery order.
	// Pages whose detail fetch failed never appear here.
	Records []model.PageRecord

	// Report is the aggregated result, set by the final step.
	Report *model.Report

	// PartialDiscovery is true when pagination halted early and Stubs
	// covers only part of the workspace.
	PartialDiscovery bool

	// SkippedPages counts pages dropped because their detail fetch failed.
	SkippedPages int
}

// NewState creates a State stamped with the current time.
func NewState() *State {
	return &State{StartedAt: time.Now()}
}

// Step is one stage of the audit pipeline. Steps run in sequence, each
// receiving the accumulated state from its predecessors.
//
// A step returns an error only for failures that must abort the run
// (cancellation, programmer error); recoverable API failures are logged
// and recorded in the state instead.
type Step interface {
	// Do executes the step, mutating state.
	Do(ctx context.Context, state *State) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in order.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given options.
// Steps are added with AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// Execute runs all steps in sequence, checking for cancellation between
// steps. It stops at the first step error.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Info("executing step", "step", step.Name())

		if err := step.Do(ctx, state); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			return err
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	return nil
}
