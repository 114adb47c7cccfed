package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/landcover/consistency"
	"github.com/katalvlaran/landcover/stats"
	"github.com/katalvlaran/landcover/temporal"
)

// Change is the consistency correction of one epoch against the
// reference.
type Change struct {
	Label string
	consistency.Result
}

// Step is the class transition between two consecutive final epochs.
type Step struct {
	From, To string
	*stats.Transition
}

// Product is a harmonized series.
type Product struct {
	RunID     string
	Reference string
	Epochs    []temporal.Epoch // time order, final maps
	Changes   []Change         // time order, reference excluded
	Steps     []Step           // len(Epochs)-1 consecutive transitions
	Areas     []stats.Areas    // per epoch, aligned with Epochs
}

// Harmonize reconciles every epoch with the reference epoch, then runs
// temporal smoothing over the series. An empty referenceLabel falls back
// to temporal.reference; when that is empty too the most recent epoch is
// the reference.
func (p *Pipeline) Harmonize(ctx context.Context, refined []*Refined, referenceLabel string) (*Product, error) {
	log, id := p.runLogger()
	prod, err := p.harmonize(ctx, log, refined, referenceLabel)
	if prod != nil {
		prod.RunID = id
	}
	return prod, err
}

// Run refines inputs and harmonizes the result under one run ID.
func (p *Pipeline) Run(ctx context.Context, inputs []EpochInput, referenceLabel string) (*Product, error) {
	log, id := p.runLogger()
	refined, err := p.refineAll(ctx, log, inputs)
	if err != nil {
		return nil, err
	}
	prod, err := p.harmonize(ctx, log, refined, referenceLabel)
	if prod != nil {
		prod.RunID = id
	}
	return prod, err
}

func (p *Pipeline) harmonize(ctx context.Context, log *slog.Logger, refined []*Refined, referenceLabel string) (*Product, error) {
	if len(refined) == 0 {
		return nil, ErrNoEpochs
	}
	if referenceLabel == "" {
		referenceLabel = p.cfg.Temporal.Reference
	}
	epochs := make([]temporal.Epoch, len(refined))
	for i, r := range refined {
		epochs[i] = temporal.Epoch{Time: r.Time, Label: r.Label, Grid: r.Grid}
	}
	series, err := temporal.NewSeries(epochs, referenceLabel)
	if err != nil {
		label := referenceLabel
		var ee *temporal.EpochError
		if errors.As(err, &ee) {
			label = ee.Label
		}
		return nil, &StageError{Stage: StageTemporal, Epoch: label, Err: err}
	}
	ref := series.Epochs[series.Reference]
	log.Info("harmonize", "epochs", series.Len(), "reference", ref.Label)

	changes := make([]*Change, series.Len())
	eg, egCtx := errgroup.WithContext(ctx)
	if p.workers > 0 {
		eg.SetLimit(p.workers)
	}
	for i, e := range series.Epochs {
		if i == series.Reference {
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return &StageError{Stage: StageConsistency, Epoch: e.Label, Err: err}
			}
			res, err := p.consistency.Correct(ref.Grid, e.Grid)
			if err != nil {
				return &StageError{Stage: StageConsistency, Epoch: e.Label, Err: err}
			}
			log.Info("stage done", "epoch", e.Label, "stage", StageConsistency,
				"initial", res.Stats.Initial, "true_change", res.Stats.TrueChange,
				"suppressed", res.Stats.Suppressed())
			changes[i] = &Change{Label: e.Label, Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	corrected := make([]temporal.Epoch, series.Len())
	prod := &Product{Reference: ref.Label}
	for i, e := range series.Epochs {
		corrected[i] = e
		if c := changes[i]; c != nil {
			corrected[i].Grid = c.Corrected
			prod.Changes = append(prod.Changes, *c)
		}
	}
	cs := &temporal.Series{Epochs: corrected, Reference: series.Reference}
	final, err := temporal.Smooth(cs, p.temporal)
	if err != nil {
		return nil, &StageError{Stage: StageTemporal, Epoch: ref.Label, Err: err}
	}
	for i := range final {
		d := changed(corrected[i].Grid, final[i].Grid)
		log.Info("stage done", "epoch", final[i].Label, "stage", StageTemporal, "changed", d)
	}
	prod.Epochs = final

	for i, e := range final {
		a, err := stats.ClassAreas(e.Grid, p.tax)
		if err != nil {
			return nil, &StageError{Stage: StageTemporal, Epoch: e.Label, Err: err}
		}
		prod.Areas = append(prod.Areas, a)
		if i == 0 {
			continue
		}
		tr, err := stats.TransitionMatrix(final[i-1].Grid, e.Grid, p.tax)
		if err != nil {
			return nil, &StageError{Stage: StageTemporal, Epoch: e.Label, Err: err}
		}
		prod.Steps = append(prod.Steps, Step{From: final[i-1].Label, To: e.Label, Transition: tr})
	}
	return prod, nil
}
