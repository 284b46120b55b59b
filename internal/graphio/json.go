package graphio

import (
	"fmt"
	"io"
	"math"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/kruskal/core"
)

// ReadJSON parses the JSON format. Each element of "edges" is either a
// [u, v, w] triple or an object with "u", "v" and "w" (or "weight").
func ReadJSON(r io.Reader) (Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Graph{}, err
	}
	if !gjson.ValidBytes(raw) {
		return Graph{}, fmt.Errorf("invalid JSON: %w", ErrMalformed)
	}

	doc := gjson.ParseBytes(raw)
	n, err := intField(doc.Get("vertices"), "vertices")
	if err != nil {
		return Graph{}, err
	}
	if n < 0 {
		return Graph{}, fmt.Errorf("vertices=%d is negative: %w", n, ErrMalformed)
	}

	edges := doc.Get("edges")
	if edges.Exists() && !edges.IsArray() {
		return Graph{}, fmt.Errorf("edges is not an array: %w", ErrMalformed)
	}

	g := Graph{Vertices: n}
	edges.ForEach(func(_, item gjson.Result) bool {
		idx := len(g.Edges)
		var e core.Edge
		e, err = jsonEdge(item)
		if err == nil {
			err = core.CheckEdge(n, idx, e)
		}
		if err != nil {
			err = fmt.Errorf("edges[%d]: %w", idx, err)
			return false
		}
		g.Edges = append(g.Edges, e)
		return true
	})
	if err != nil {
		return Graph{}, err
	}
	return g, nil
}

func jsonEdge(item gjson.Result) (core.Edge, error) {
	var u, v, w gjson.Result
	switch {
	case item.IsArray():
		parts := item.Array()
		if len(parts) != 3 {
			return core.Edge{}, fmt.Errorf("want [u, v, w], got %d elements: %w", len(parts), ErrMalformed)
		}
		u, v, w = parts[0], parts[1], parts[2]
	case item.IsObject():
		u, v, w = item.Get("u"), item.Get("v"), item.Get("w")
		if !w.Exists() {
			w = item.Get("weight")
		}
	default:
		return core.Edge{}, fmt.Errorf("edge is neither array nor object: %w", ErrMalformed)
	}

	uu, err := intField(u, "u")
	if err != nil {
		return core.Edge{}, err
	}
	vv, err := intField(v, "v")
	if err != nil {
		return core.Edge{}, err
	}
	if w.Type != gjson.Number {
		return core.Edge{}, fmt.Errorf("weight %q is not a number: %w", w.Raw, ErrMalformed)
	}
	return core.Edge{U: uu, V: vv, Weight: w.Float()}, nil
}

func intField(r gjson.Result, name string) (int, error) {
	if r.Type != gjson.Number {
		return 0, fmt.Errorf("%s %q is not a number: %w", name, r.Raw, ErrMalformed)
	}
	f := r.Float()
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%s %s is not an integer: %w", name, r.Raw, ErrMalformed)
	}
	return int(f), nil
}
