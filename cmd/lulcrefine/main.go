// Command lulcrefine refines classified land-cover maps and harmonizes
// them into a consistent time series.
//
//	lulcrefine config defaults > run.yaml
//	lulcrefine refine --config run.yaml --catalog in --out refined --label 2020 --time 2020
//	lulcrefine harmonize --config run.yaml --catalog refined --out final \
//		--epoch 2000=2000 --epoch 2010=2010 --epoch 2020=2020
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lulcrefine:", err)
		os.Exit(1)
	}
}
