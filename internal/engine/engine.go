// Package engine runs the full analytics pipeline and aggregates the result
// bundle for the presentation layer.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"finadvisor/internal/analysis/spending"
	"finadvisor/internal/config"
	"finadvisor/internal/errors"
	"finadvisor/internal/goals"
	"finadvisor/internal/logging"
	"finadvisor/internal/models"
	"finadvisor/internal/normalize"
	"finadvisor/internal/projection"
)

// Input is one engine run's worth of caller-supplied data. The engine holds
// no state between runs; callers needing historical continuity supply prior
// state here.
type Input struct {
	RawTransactions []models.RawRecord
	Holdings        []models.Holding
	Goals           []models.Goal

	// HorizonPeriods overrides the configured default projection horizon
	// when positive.
	HorizonPeriods int

	// AsOf is the evaluation instant. Zero means time.Now().
	AsOf time.Time
}

// Engine is the stateless analytics engine. One dashboard refresh is one Run.
type Engine struct {
	cfg       *config.Config
	logger    zerolog.Logger
	analyzer  *spending.Analyzer
	projector *projection.Engine
	tracker   *goals.Tracker
}

// New creates an engine from a validated configuration.
func New(cfg *config.Config, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:       cfg,
		logger:    logger,
		analyzer:  spending.NewAnalyzer(cfg.Analyzer),
		projector: projection.NewEngine(),
		tracker:   goals.NewTracker(cfg.Goals),
	}
}

// Run executes one full analysis: normalize, fan out the three analytical
// components concurrently, join, and bundle. Configuration problems fail
// before any component executes. The first component error (e.g. a schedule
// mismatch) fails the whole run; the engine never silently returns a partial
// bundle.
func (e *Engine) Run(ctx context.Context, in Input) (*models.ReportBundle, error) {
	start := time.Now()

	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	asOf := in.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	horizon := in.HorizonPeriods
	if horizon <= 0 {
		horizon = e.cfg.Projection.DefaultHorizonPeriods
	}

	txns, rejectedTxns := normalize.Normalize(in.RawTransactions)
	for _, rej := range rejectedTxns {
		logging.LogRejection(e.logger, "transaction", string(rej.Reason))
	}

	holdings, rejectedHoldings := partitionHoldings(in.Holdings)

	bundle := &models.ReportBundle{
		ID:                   uuid.NewString(),
		GeneratedAt:          asOf,
		RejectedTransactions: rejectedTxns,
		RejectedHoldings:     rejectedHoldings,
	}

	// The three analytical components have no data dependency on each
	// other; run them concurrently and join before aggregation.
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		bundle.Alerts = e.analyzer.Analyze(txns, asOf)
		return nil
	})

	g.Go(func() error {
		projections, err := e.projector.ProjectAll(holdings, horizon)
		if err != nil {
			return errors.Wrap(err, "projecting holdings")
		}
		bundle.Projections = projections
		return nil
	})

	g.Go(func() error {
		snapshots, rejected := e.tracker.EvaluateAll(in.Goals, asOf)
		bundle.Progress = snapshots
		bundle.RejectedGoals = rejected
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, a := range bundle.Alerts {
		logging.LogAlertEvent(e.logger, string(a.Category), string(a.Severity), a.ZScore, a.Observed)
	}
	logging.LogRun(e.logger, bundle.ID,
		len(bundle.Alerts), len(bundle.Projections), len(bundle.Progress),
		len(rejectedTxns)+len(rejectedHoldings)+len(bundle.RejectedGoals),
		time.Since(start))

	return bundle, nil
}

// partitionHoldings separates structurally invalid holdings from projectable
// ones. Per-record validation problems are data, not run failures; schedule
// mismatches are left for the projection engine to fail fast on.
func partitionHoldings(holdings []models.Holding) ([]models.Holding, []models.RejectedRecord) {
	valid := make([]models.Holding, 0, len(holdings))
	rejected := make([]models.RejectedRecord, 0)

	for _, h := range holdings {
		switch {
		case h.AssetID == "":
			rejected = append(rejected, rejectedHolding(h, "asset_id missing"))
		case h.Principal < 0:
			rejected = append(rejected, rejectedHolding(h, "principal must be non-negative"))
		case h.ExpectedAnnualReturn < -1:
			rejected = append(rejected, rejectedHolding(h, "expected_annual_return must be at least -1"))
		case h.Volatility < 0:
			rejected = append(rejected, rejectedHolding(h, "volatility must be non-negative"))
		default:
			valid = append(valid, h)
		}
	}

	return valid, rejected
}

func rejectedHolding(h models.Holding, detail string) models.RejectedRecord {
	return models.RejectedRecord{
		Record: models.RawRecord{
			"asset_id":               h.AssetID,
			"principal":              h.Principal,
			"expected_annual_return": h.ExpectedAnnualReturn,
		},
		Reason: models.RejectMalformedAmount,
		Detail: detail,
	}
}
