package main

import (
	"errors"
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/landcover/catalog"
	"github.com/katalvlaran/landcover/pipeline"
	"github.com/katalvlaran/landcover/spatial"
)

type refineFlags struct {
	label     string
	at        string
	primary   string
	secondary string
	slope     string
	twi       string
}

func newRefineCmd(o *options) *cobra.Command {
	rf := &refineFlags{}
	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Merge, correct, sieve, and smooth one epoch",
		Long: `Refine reads the epoch's grids from --catalog, runs the refine chain,
and writes <out>/<label>.json. Grid ids default to <label>/primary,
<label>/secondary, <label>/slope, and <label>/twi.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRefine(cmd, o, rf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&rf.label, "label", "", "epoch label (required)")
	f.StringVar(&rf.at, "time", "", "epoch time (required)")
	f.StringVar(&rf.primary, "primary", "", "primary map id")
	f.StringVar(&rf.secondary, "secondary", "", "gap-filling map id")
	f.StringVar(&rf.slope, "slope", "", "slope grid id (degrees)")
	f.StringVar(&rf.twi, "twi", "", "topographic wetness index grid id")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func orDefault(id, label, name string) string {
	if id != "" {
		return id
	}
	return path.Join(label, name)
}

func runRefine(cmd *cobra.Command, o *options, rf *refineFlags) error {
	at, err := parseTime(rf.at)
	if err != nil {
		return err
	}
	p, err := o.build(cmd)
	if err != nil {
		return err
	}

	primary, err := catalog.Require(catalog.NewDir(o.catalogDir, nil).Categorical(orDefault(rf.primary, rf.label, "primary")))
	if err != nil {
		return err
	}
	cat := catalog.NewDir(o.catalogDir, &primary.Geometry)
	secondary, err := catalog.Require(cat.Categorical(orDefault(rf.secondary, rf.label, "secondary")))
	slope, serr := catalog.RequireContinuous(cat.Continuous(orDefault(rf.slope, rf.label, "slope")))
	twi, terr := catalog.RequireContinuous(cat.Continuous(orDefault(rf.twi, rf.label, "twi")))
	if err := errors.Join(err, serr, terr); err != nil {
		return err
	}

	r, err := p.Refine(cmd.Context(), pipeline.EpochInput{
		Label:     rf.label,
		Time:      at,
		Primary:   primary,
		Secondary: secondary,
		Topo:      spatial.Topography{Slope: slope, TWI: twi},
	})
	if err != nil {
		return err
	}
	if err := catalog.NewDir(o.outDir, nil).WriteCategorical(rf.label, r.Grid); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: filled=%d gaps=%d spatial=%d sieve=%d smooth=%d\n",
		r.Label, r.Merge.Filled, r.Merge.GapCount, r.Spatial.Changed(), r.Sieve.Replaced, r.Smooth.Changed)
	return nil
}
