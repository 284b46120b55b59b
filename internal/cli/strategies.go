package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskal/mst"
)

var strategyDescriptions = map[string]string{
	mst.MethodKruskal:   "binary heap over all edges, popped until the tree is complete",
	mst.MethodFilter:    "filter-Kruskal, median-of-three pivot",
	mst.MethodSkewed:    "filter-Kruskal, pivot biased toward light edges",
	mst.MethodQuickSort: "full quicksort, then one scan",
	mst.MethodSQSK:      "per-vertex incremental quickselect, stars only",
	mst.MethodPrim:      "lazy Prim, reference for --verify",
}

func listStrategies(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, m := range mst.Methods() {
		fmt.Fprintf(w, "%s\t%s\n", m, strategyDescriptions[m])
	}
	return w.Flush()
}
