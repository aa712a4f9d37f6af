package navfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navgraph/gridgraph"
)

// GridDocument is the YAML form of a tile grid. Omitted fields take the
// gridgraph.DefaultGridOptions values; conn 0 means 4.
type GridDocument struct {
	Conn          int     `yaml:"conn,omitempty"`
	LandThreshold *int    `yaml:"land_threshold,omitempty"`
	CellSize      float32 `yaml:"cell_size,omitempty"`
	CutCorners    bool    `yaml:"cut_corners,omitempty"`
	Cells         [][]int `yaml:"cells"`
}

// Options converts the document settings into gridgraph.GridOptions.
func (d GridDocument) Options() (gridgraph.GridOptions, error) {
	opts := gridgraph.DefaultGridOptions()
	switch d.Conn {
	case 0, 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return opts, fmt.Errorf("%w: got %d", ErrBadConnectivity, d.Conn)
	}
	if d.LandThreshold != nil {
		opts.LandThreshold = *d.LandThreshold
	}
	if d.CellSize != 0 {
		opts.CellSize = d.CellSize
	}
	opts.CutCorners = d.CutCorners

	return opts, nil
}

// Grid builds the grid the document describes.
func (d GridDocument) Grid() (*gridgraph.GridGraph, error) {
	opts, err := d.Options()
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(d.Cells, opts)
	if err != nil {
		return nil, fmt.Errorf("navfile: %w", err)
	}

	return gg, nil
}

// DecodeGrid reads one YAML grid document from r.
func DecodeGrid(r io.Reader) (*gridgraph.GridGraph, error) {
	var doc GridDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("navfile: decode grid: %w", err)
	}

	return doc.Grid()
}

// LoadGrid reads and decodes the grid document at path.
func LoadGrid(path string) (*gridgraph.GridGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("navfile: load %s: %w", path, err)
	}
	gg, err := DecodeGrid(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return gg, nil
}
