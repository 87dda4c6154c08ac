// File: document.go
// Role: GraphData document codecs (JSON, YAML) and extension-based file I/O.

package converters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphstudio/core"
)

// ErrUnknownFormat is returned for an unrecognised format name or extension.
var ErrUnknownFormat = errors.New("converters: unknown format")

// Format names a serialisation of a graph.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatEdgeList Format = "edge-list"
	FormatMatrix   Format = "matrix"
)

// ParseFormat maps a name to a Format. "yml", "txt" and "adj-matrix" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "edge-list", "edgelist", "txt":
		return FormatEdgeList, nil
	case "matrix", "adj-matrix":
		return FormatMatrix, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// EncodeJSON writes s as an indented GraphData document.
func EncodeJSON(w io.Writer, s core.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(normalise(s))
}

// DecodeJSON reads a GraphData document.
func DecodeJSON(r io.Reader) (core.Snapshot, error) {
	var s core.Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return core.Snapshot{}, fmt.Errorf("converters: decode json: %w", err)
	}
	return s, nil
}

// EncodeYAML writes s as a YAML GraphData document.
func EncodeYAML(w io.Writer, s core.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalise(s)); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeYAML reads a YAML GraphData document.
func DecodeYAML(r io.Reader) (core.Snapshot, error) {
	var s core.Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return core.Snapshot{}, fmt.Errorf("converters: decode yaml: %w", err)
	}
	return s, nil
}

// Decode reads r in format f. Text formats take importer options.
func Decode(r io.Reader, f Format, opts ...Option) (core.Snapshot, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatEdgeList:
		return ParseEdgeList(r, opts...)
	case FormatMatrix:
		return ParseAdjacencyMatrix(r, opts...)
	}
	return core.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s core.Snapshot, f Format) error {
	switch f {
	case FormatJSON:
		return EncodeJSON(w, s)
	case FormatYAML:
		return EncodeYAML(w, s)
	case FormatEdgeList:
		return WriteEdgeList(w, s)
	case FormatMatrix:
		return WriteAdjacencyMatrix(w, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Load reads a graph file, choosing the codec from its extension.
func Load(path string, opts ...Option) (core.Snapshot, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return core.Snapshot{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return core.Snapshot{}, err
	}
	defer file.Close()
	return Decode(file, f, opts...)
}

// Save writes a graph file, choosing the codec from its extension.
func Save(path string, s core.Snapshot) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(file, s, f)
}

// normalise replaces nil slices so documents always carry both arrays.
func normalise(s core.Snapshot) core.Snapshot {
	if s.Nodes == nil {
		s.Nodes = []core.Node{}
	}
	if s.Edges == nil {
		s.Edges = []core.Edge{}
	}
	return s
}
