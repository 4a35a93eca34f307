package summary

import (
	"context"
	"time"
)

// Run validates cfg, selects the resolution and aggregates ds. The
// returned totals are not yet doubled; see Totals.Report.
func Run(ctx context.Context, ds Dataset, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	zoom, err := SelectResolution(ds, cfg.Resolution)
	if err != nil {
		return Result{}, err
	}
	agg := &Aggregator{
		Source:  ds,
		Zoom:    zoom,
		Norm:    ds.NormalizationMode(cfg.Normalization),
		Workers: cfg.Workers,
		Logger:  logger,
	}
	start := time.Now()
	logger.Info().Int("resolution", cfg.Resolution).Str("norm", agg.Norm.String()).
		Int("chromosomes", len(ds.Chromosomes())).Int("workers", cfg.Workers).Msg("counting contacts")
	res, err := agg.Aggregate(ctx)
	if err != nil {
		return Result{}, err
	}
	logger.Info().Int64("intra", res.Totals.Intra).Int64("inter", res.Totals.Inter).
		Dur("elapsed", time.Since(start)).Msg("pairs summed")
	if e := logger.Debug(); e.Enabled() {
		e.Msg("pair table\n" + FormatTable(res))
	}
	return res, nil
}
