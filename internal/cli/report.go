package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/kruskal/mst"
)

// report is the outcome of one run command.
type report struct {
	Repr      string
	Vertices  int
	Edges     int
	Footprint uint64
	Repeat    int
	Rows      []reportRow
}

// reportRow is one strategy's line of the report.
type reportRow struct {
	Method   string
	Best     time.Duration
	Mean     time.Duration
	Verified bool

	result mst.Result
}

func (r report) write(w io.Writer, format reportFlag) error {
	if format == reportJSON {
		return r.writeJSON(w)
	}
	return r.writeText(w)
}

func (r report) writeText(w io.Writer) error {
	fmt.Fprintf(w, "graph: %s vertices, %s edges, %s (%s)\n",
		humanize.Comma(int64(r.Vertices)), humanize.Comma(int64(r.Edges)),
		r.Repr, humanize.Bytes(r.Footprint))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tTOTAL\tTREES\tBEST\tMEAN\tRATE\tEXAMINED\tFILTERED\tPARTITIONS\tPOPS\tVERIFIED")
	for _, row := range r.Rows {
		res := row.result
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Method,
			humanize.FormatFloat("#,###.####", res.TotalWeight),
			res.Components(),
			row.Best.Round(time.Microsecond),
			row.Mean.Round(time.Microsecond),
			rate(r.Edges, row.Best),
			humanize.Comma(int64(res.Stats.Examined)),
			humanize.Comma(int64(res.Stats.Filtered)),
			humanize.Comma(int64(res.Stats.Partitions)),
			humanize.Comma(int64(res.Stats.HeapPops)),
			verifiedMark(row.Verified),
		)
	}
	return tw.Flush()
}

// rate renders edges per second of the best run.
func rate(edges int, best time.Duration) string {
	if best <= 0 {
		return "-"
	}
	return humanize.SIWithDigits(float64(edges)/best.Seconds(), 1, "e/s")
}

func verifiedMark(ok bool) string {
	if ok {
		return "ok"
	}
	return "-"
}

// jsonDoc accumulates sjson edits and keeps the first error.
type jsonDoc struct {
	raw []byte
	err error
}

func (d *jsonDoc) set(path string, value interface{}) {
	if d.err == nil {
		d.raw, d.err = sjson.SetBytes(d.raw, path, value)
	}
}

func (d *jsonDoc) setRaw(path string, raw []byte) {
	if d.err == nil {
		d.raw, d.err = sjson.SetRawBytes(d.raw, path, raw)
	}
}

func (r report) writeJSON(w io.Writer) error {
	doc := &jsonDoc{raw: []byte(`{}`)}
	doc.set("graph.repr", r.Repr)
	doc.set("graph.vertices", r.Vertices)
	doc.set("graph.edges", r.Edges)
	doc.set("graph.footprint_bytes", r.Footprint)
	doc.set("repeat", r.Repeat)
	doc.setRaw("results", []byte(`[]`))

	for _, row := range r.Rows {
		res := row.result
		item := &jsonDoc{raw: []byte(`{}`)}
		item.set("strategy", row.Method)
		item.set("total_weight", res.TotalWeight)
		item.set("tree_edges", len(res.Edges))
		item.set("components", res.Components())
		item.set("spanning", res.Spanning())
		item.set("best_ns", row.Best.Nanoseconds())
		item.set("mean_ns", row.Mean.Nanoseconds())
		item.set("stats.examined", res.Stats.Examined)
		item.set("stats.filtered", res.Stats.Filtered)
		item.set("stats.partitions", res.Stats.Partitions)
		item.set("stats.heap_pops", res.Stats.HeapPops)
		item.set("verified", row.Verified)
		if item.err != nil {
			return errors.Wrapf(item.err, "encoding %s result", row.Method)
		}
		doc.setRaw("results.-1", item.raw)
	}
	if doc.err != nil {
		return errors.Wrap(doc.err, "encoding report")
	}

	_, err := w.Write(pretty.Pretty(doc.raw))
	return errors.WithStack(err)
}
