package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/kruskal/core"
)

var (
	// ErrMalformed indicates input that does not follow the format.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// Format names an on-disk edge list format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON)}
}

// ParseFormat validates s. The empty string means "detect from the path".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat picks FormatJSON for a .json path and FormatText otherwise.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatText
}

// Graph is a parsed edge list over vertices 0..Vertices-1.
type Graph struct {
	Vertices int
	Edges    []core.Edge
}

// Read parses r in format f. An empty f means FormatText.
func Read(r io.Reader, f Format) (Graph, error) {
	switch f {
	case "", FormatText:
		return ReadText(r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return Graph{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ReadFile opens path and parses it. An empty f is detected from the
// extension.
func ReadFile(path string, f Format) (Graph, error) {
	if f == "" {
		f = DetectFormat(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return Graph{}, err
	}
	defer file.Close()

	g, err := Read(file, f)
	if err != nil {
		return Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
