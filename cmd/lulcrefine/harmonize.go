package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/landcover/catalog"
	"github.com/katalvlaran/landcover/pipeline"
	"github.com/katalvlaran/landcover/raster"
)

func newHarmonizeCmd(o *options) *cobra.Command {
	var (
		epochs    []string
		reference string
	)
	cmd := &cobra.Command{
		Use:   "harmonize",
		Short: "Reconcile refined epochs with the reference and smooth through time",
		Long: `Harmonize reads one refined grid per --epoch label=time from --catalog,
corrects every epoch against the reference, filters the series through
time, and writes <out>/<label>.json for every epoch. A transition summary
for each consecutive pair is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHarmonize(cmd, o, epochs, reference)
		},
	}
	cmd.Flags().StringArrayVar(&epochs, "epoch", nil, "label=time of a refined epoch (repeatable)")
	cmd.Flags().StringVar(&reference, "reference", "", "reference epoch label (temporal.reference, else latest)")
	_ = cmd.MarkFlagRequired("epoch")
	return cmd
}

func runHarmonize(cmd *cobra.Command, o *options, epochs []string, reference string) error {
	p, err := o.build(cmd)
	if err != nil {
		return err
	}
	var geom *raster.Geometry
	refined := make([]*pipeline.Refined, 0, len(epochs))
	for _, e := range epochs {
		label, at, ok := strings.Cut(e, "=")
		if !ok || label == "" {
			return fmt.Errorf("bad --epoch %q: want label=time", e)
		}
		t, err := parseTime(at)
		if err != nil {
			return err
		}
		g, err := catalog.Require(catalog.NewDir(o.catalogDir, geom).Categorical(label))
		if err != nil {
			return err
		}
		if geom == nil {
			geom = &g.Geometry
		}
		refined = append(refined, &pipeline.Refined{Label: label, Time: t, Grid: g})
	}

	prod, err := p.Harmonize(cmd.Context(), refined, reference)
	if err != nil {
		return err
	}
	out := catalog.NewDir(o.outDir, nil)
	for _, e := range prod.Epochs {
		if err := out.WriteCategorical(e.Label, e.Grid); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "run %s reference %s\n", prod.RunID, prod.Reference)
	for _, c := range prod.Changes {
		fmt.Fprintf(w, "%s: disagreements=%d true_change=%d suppressed=%d\n",
			c.Label, c.Stats.Initial, c.Stats.TrueChange, c.Stats.Suppressed())
	}
	for _, s := range prod.Steps {
		fmt.Fprintf(w, "\n%s -> %s changed=%.4f\n%s", s.From, s.To, s.ChangedFraction(), s.Transition)
	}
	return nil
}
