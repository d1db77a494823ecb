// Package engine runs a complete import analysis: market search, BPM
// calculation, valuation and the final margin verdict, in that order.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rversteeg/importeer/internal/bpm"
	"github.com/rversteeg/importeer/internal/domain"
	"github.com/rversteeg/importeer/internal/margin"
	"github.com/rversteeg/importeer/internal/market"
	"github.com/rversteeg/importeer/internal/valuation"
)

// AnalysisEngine ties the collaborators together. All of them are
// injectable; NewAnalysisEngine wires the deterministic defaults.
type AnalysisEngine struct {
	searcher   market.Searcher
	calculator *bpm.Calculator
	valuer     valuation.Valuer
	margins    *margin.Calculator
	logger     *logrus.Logger
	now        func() time.Time
}

// Option adjusts an AnalysisEngine during construction.
type Option func(*AnalysisEngine)

func WithSearcher(s market.Searcher) Option {
	return func(e *AnalysisEngine) { e.searcher = s }
}

func WithValuer(v valuation.Valuer) Option {
	return func(e *AnalysisEngine) { e.valuer = v }
}

func WithMarginCalculator(m *margin.Calculator) Option {
	return func(e *AnalysisEngine) { e.margins = m }
}

func WithLogger(l *logrus.Logger) Option {
	return func(e *AnalysisEngine) { e.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(e *AnalysisEngine) { e.now = now }
}

func NewAnalysisEngine(opts ...Option) *AnalysisEngine {
	e := &AnalysisEngine{
		searcher:   market.StaticSearcher{},
		calculator: bpm.NewCalculator(),
		margins:    margin.NewCalculator(),
		logger:     logrus.New(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.valuer == nil {
		e.valuer = valuation.NewMarketValuer(e.logger)
	}
	return e
}

// WithStaticComparables derives an engine that analyzes against a fixed
// comparable set instead of searching, for callers that bring their own
// market data. The receiver is not modified.
func (e *AnalysisEngine) WithStaticComparables(comparables []domain.Comparable) *AnalysisEngine {
	derived := *e
	derived.searcher = market.StaticSearcher{Comparables: comparables}
	return &derived
}

// Analyze evaluates a single German listing end to end.
func (e *AnalysisEngine) Analyze(ctx context.Context, vehicle domain.Vehicle) (*domain.AnalysisReport, error) {
	started := e.now()
	requestID := uuid.NewString()[:8]

	log := e.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"make":       vehicle.Make,
		"model":      vehicle.Model,
	})
	log.Info("starting analysis")

	comparables, err := e.searcher.Search(ctx, vehicle)
	if err != nil {
		// Market data is advisory; the analysis degrades to the
		// heuristic valuation instead of failing.
		log.WithError(err).Warn("market search failed, continuing without comparables")
		comparables = nil
	}
	stats := market.ComputeStats(comparables)
	log.WithField("comparables", stats.Count).Debug("market search done")

	taxResult, err := e.calculator.Calculate(bpm.TaxInput{
		CO2GKM:            vehicle.CO2GKM,
		FuelType:          vehicle.FuelType,
		FirstRegistration: vehicle.FirstRegistration,
		ValuationDate:     started,
	})
	if err != nil {
		return nil, fmt.Errorf("bpm calculation failed: %w", err)
	}
	log.WithFields(logrus.Fields{
		"net_bpm": taxResult.NetTax,
		"regime":  taxResult.SelectedRegimeYear,
	}).Debug("bpm calculated")

	val, err := e.valuer.Value(ctx, vehicle, comparables)
	if err != nil {
		return nil, fmt.Errorf("valuation failed: %w", err)
	}

	costs := e.margins.Costs(vehicle.PriceEUR, taxResult.NetTax)
	result := e.margins.Evaluate(costs, *val)

	log.WithFields(logrus.Fields{
		"margin":         result.Margin,
		"recommendation": result.Recommendation,
	}).Info("analysis complete")

	return &domain.AnalysisReport{
		RequestID:        requestID,
		Vehicle:          vehicle,
		BPM:              *taxResult,
		Comparables:      comparables,
		MarketStats:      stats,
		Sources:          market.Sources(comparables),
		Valuation:        *val,
		Costs:            costs,
		Result:           result,
		CalculatedAt:     started,
		ProcessingTimeMS: e.now().Sub(started).Milliseconds(),
	}, nil
}
