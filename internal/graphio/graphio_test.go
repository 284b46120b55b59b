package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskal/builder"
	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/internal/graphio"
)

func TestReadText(t *testing.T) {
	t.Parallel()

	in := `# four vertices
c also a comment
4 3

0 1 1.5
1 2 -2
  3 2 1e3
`
	g, err := graphio.ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Vertices)
	assert.Equal(t, []core.Edge{
		{U: 0, V: 1, Weight: 1.5},
		{U: 1, V: 2, Weight: -2},
		{U: 3, V: 2, Weight: 1000},
	}, g.Edges)
}

func TestReadText_HeaderWithoutCount(t *testing.T) {
	t.Parallel()

	g, err := graphio.ReadText(strings.NewReader("3\n0 2 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Vertices)
	assert.Len(t, g.Edges, 1)
}

func TestReadText_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    error
		wantMsg string
	}{
		{"empty", "", graphio.ErrMalformed, "missing header"},
		{"only comments", "# x\n", graphio.ErrMalformed, "missing header"},
		{"bad header", "four\n", graphio.ErrMalformed, "line 1"},
		{"negative n", "-1\n", graphio.ErrMalformed, "line 1"},
		{"header too long", "3 2 1\n", graphio.ErrMalformed, "line 1"},
		{"short edge", "3\n0 1\n", graphio.ErrMalformed, "line 2"},
		{"bad weight", "3\n# c\n0 1 x\n", graphio.ErrMalformed, "line 3"},
		{"bad endpoint", "3\n0 y 1\n", graphio.ErrMalformed, "line 2"},
		{"count mismatch", "3 2\n0 1 1\n", graphio.ErrMalformed, "declares 2"},
		{"out of range", "3\n0 1 1\n0 3 1\n", core.ErrVertexOutOfRange, "line 3"},
		{"self loop", "3\n1 1 1\n", core.ErrSelfLoop, "line 2"},
		{"nan weight", "3\n0 1 NaN\n", core.ErrInvalidWeight, "line 2"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graphio.ReadText(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestReadJSON(t *testing.T) {
	t.Parallel()

	want := []core.Edge{{U: 0, V: 1, Weight: 2.5}, {U: 2, V: 1, Weight: 7}}
	for _, in := range []string{
		`{"vertices": 3, "edges": [[0, 1, 2.5], [2, 1, 7]]}`,
		`{"vertices": 3, "edges": [{"u": 0, "v": 1, "w": 2.5}, {"u": 2, "v": 1, "weight": 7}]}`,
	} {
		g, err := graphio.ReadJSON(strings.NewReader(in))
		require.NoError(t, err, in)
		assert.Equal(t, 3, g.Vertices)
		assert.Equal(t, want, g.Edges)
	}

	g, err := graphio.ReadJSON(strings.NewReader(`{"vertices": 5}`))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Vertices)
	assert.Empty(t, g.Edges)
}

func TestReadJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    error
		wantMsg string
	}{
		{"invalid", `{"vertices": 3,`, graphio.ErrMalformed, "invalid JSON"},
		{"no vertices", `{"edges": []}`, graphio.ErrMalformed, "vertices"},
		{"fractional n", `{"vertices": 2.5}`, graphio.ErrMalformed, "not an integer"},
		{"negative n", `{"vertices": -2}`, graphio.ErrMalformed, "negative"},
		{"edges object", `{"vertices": 2, "edges": {}}`, graphio.ErrMalformed, "not an array"},
		{"short triple", `{"vertices": 2, "edges": [[0, 1]]}`, graphio.ErrMalformed, "edges[0]"},
		{"string weight", `{"vertices": 2, "edges": [[0, 1, "x"]]}`, graphio.ErrMalformed, "edges[0]"},
		{"scalar edge", `{"vertices": 2, "edges": [[0, 1, 1], 4]}`, graphio.ErrMalformed, "edges[1]"},
		{"out of range", `{"vertices": 2, "edges": [[0, 2, 1]]}`, core.ErrInvalidEdge, "edges[0]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graphio.ReadJSON(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

// TestWriteText_RoundTrip writes a random graph and reads it back.
func TestWriteText_RoundTrip(t *testing.T) {
	t.Parallel()

	n, edges, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithUniformWeight(-1, 1)},
		builder.RandomSparse(50, 0.1),
	)
	require.NoError(t, err)
	in := graphio.Graph{Vertices: n, Edges: edges}

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteText(&buf, in))
	out, err := graphio.Read(&buf, graphio.FormatText)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadFile_DetectsFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "g.JSON")
	textPath := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"vertices":2,"edges":[[0,1,3]]}`), 0o644))
	require.NoError(t, os.WriteFile(textPath, []byte("2 1\n0 1 3\n"), 0o644))

	for _, p := range []string{jsonPath, textPath} {
		g, err := graphio.ReadFile(p, "")
		require.NoError(t, err, p)
		assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 3}}, g.Edges)
	}

	_, err := graphio.ReadFile(textPath, graphio.FormatJSON)
	assert.ErrorIs(t, err, graphio.ErrMalformed)
	assert.Contains(t, err.Error(), textPath)

	_, err = graphio.ReadFile(filepath.Join(dir, "missing.txt"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := graphio.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatJSON, f)

	f, err = graphio.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, graphio.Format(""), f)

	_, err = graphio.ParseFormat("dimacs")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	_, err = graphio.Read(strings.NewReader(""), graphio.Format("xml"))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	assert.Equal(t, []string{"text", "json"}, graphio.Formats())
}
