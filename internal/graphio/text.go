package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/kruskal/core"
)

// ReadText parses the text format. The header must precede every edge line;
// when it carries m, exactly m edge lines must follow.
func ReadText(r io.Reader) (Graph, error) {
	var (
		g         Graph
		header    bool
		wantEdges = -1
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || isComment(fields[0]) {
			continue
		}

		if !header {
			n, m, err := parseHeader(fields)
			if err != nil {
				return Graph{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			g.Vertices, wantEdges, header = n, m, true
			continue
		}

		e, err := parseEdge(fields)
		if err != nil {
			return Graph{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := core.CheckEdge(g.Vertices, len(g.Edges), e); err != nil {
			return Graph{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		g.Edges = append(g.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return Graph{}, err
	}

	if !header {
		return Graph{}, fmt.Errorf("missing header: %w", ErrMalformed)
	}
	if wantEdges >= 0 && wantEdges != len(g.Edges) {
		return Graph{}, fmt.Errorf("header declares %d edges, found %d: %w", wantEdges, len(g.Edges), ErrMalformed)
	}
	return g, nil
}

func isComment(tok string) bool {
	return strings.HasPrefix(tok, "#") || tok == "c"
}

func parseHeader(fields []string) (n, m int, err error) {
	if len(fields) > 2 {
		return 0, 0, fmt.Errorf("header wants \"n [m]\", got %d fields: %w", len(fields), ErrMalformed)
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, 0, fmt.Errorf("vertex count %q: %w", fields[0], ErrMalformed)
	}
	m = -1
	if len(fields) == 2 {
		m, err = strconv.Atoi(fields[1])
		if err != nil || m < 0 {
			return 0, 0, fmt.Errorf("edge count %q: %w", fields[1], ErrMalformed)
		}
	}
	return n, m, nil
}

func parseEdge(fields []string) (core.Edge, error) {
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("edge wants \"u v w\", got %d fields: %w", len(fields), ErrMalformed)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("endpoint %q: %w", fields[0], ErrMalformed)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("endpoint %q: %w", fields[1], ErrMalformed)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("weight %q: %w", fields[2], ErrMalformed)
	}
	return core.Edge{U: u, V: v, Weight: w}, nil
}

// WriteText writes g in the text format with an "n m" header. Weights use
// the shortest representation that parses back to the same float64.
func WriteText(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Vertices, len(g.Edges))
	for _, e := range g.Edges {
		bw.WriteString(strconv.Itoa(e.U))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(e.V))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
