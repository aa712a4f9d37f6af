package navfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/vec3"
)

// Version is the graph document version written by EncodeGraph.
const Version = 1

// GraphDocument is the YAML form of an astar.Graph.
type GraphDocument struct {
	Version int `yaml:"version"`
	// MaxSearchIterations is omitted for the default cap.
	MaxSearchIterations *int             `yaml:"max_search_iterations,omitempty"`
	Vertices            []VertexDocument `yaml:"vertices"`
}

// VertexDocument is the YAML form of one vertex. A missing penalty means 1.
type VertexDocument struct {
	Position   [3]float32 `yaml:"position,flow"`
	Penalty    *float32   `yaml:"penalty,omitempty"`
	Neighbours []uint32   `yaml:"neighbours,flow,omitempty"`
}

// FromGraph converts g into a document. Neighbour slices are copied.
func FromGraph(g *astar.Graph) GraphDocument {
	doc := GraphDocument{
		Version:  Version,
		Vertices: make([]VertexDocument, 0, g.Len()),
	}
	if n := g.MaxSearchIterations(); n != astar.DefaultMaxSearchIterations {
		doc.MaxSearchIterations = &n
	}
	for _, v := range g.Vertices() {
		vd := VertexDocument{Position: v.Position.Array()}
		if v.GPenalty != 1 {
			p := v.GPenalty
			vd.Penalty = &p
		}
		if len(v.Neighbours) > 0 {
			vd.Neighbours = append([]uint32(nil), v.Neighbours...)
		}
		doc.Vertices = append(doc.Vertices, vd)
	}

	return doc
}

// Graph validates the document and builds the graph it describes.
//
// Returns ErrUnknownVersion, ErrBadPenalty, ErrNeighbourOutOfRange, or an
// *astar.PathError wrapping astar.ErrCyclicReference for a vertex listing
// itself.
func (d GraphDocument) Graph() (*astar.Graph, error) {
	if d.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, d.Version)
	}

	n := len(d.Vertices)
	vs := make([]astar.Vertex, n)
	for i, vd := range d.Vertices {
		v := astar.NewVertex(vec3.FromArray(vd.Position))
		if vd.Penalty != nil {
			if p := *vd.Penalty; !(p > 0) {
				return nil, fmt.Errorf("%w: vertex %d has %v", ErrBadPenalty, i, p)
			}
			v.GPenalty = *vd.Penalty
		}
		for _, nb := range vd.Neighbours {
			if nb >= uint32(n) {
				return nil, fmt.Errorf("%w: vertex %d lists %d, have %d vertices",
					ErrNeighbourOutOfRange, i, nb, n)
			}
		}
		v.Neighbours = append([]uint32(nil), vd.Neighbours...)
		vs[i] = v
	}

	opts := []astar.GraphOption{astar.WithVertices(vs)}
	if d.MaxSearchIterations != nil {
		opts = append(opts, astar.WithMaxSearchIterations(*d.MaxSearchIterations))
	}
	g := astar.NewGraph(opts...)
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("navfile: %w", err)
	}

	return g, nil
}

// EncodeGraph writes g to w as a YAML graph document.
func EncodeGraph(w io.Writer, g *astar.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("navfile: encode graph: %w", err)
	}

	return enc.Close()
}

// DecodeGraph reads one YAML graph document from r. Unknown keys are
// rejected.
func DecodeGraph(r io.Reader) (*astar.Graph, error) {
	var doc GraphDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("navfile: decode graph: %w", err)
	}

	return doc.Graph()
}

// LoadGraph reads and decodes the graph document at path.
func LoadGraph(path string) (*astar.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("navfile: load %s: %w", path, err)
	}
	g, err := DecodeGraph(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// SaveGraph encodes g and writes it to path, replacing any existing file.
func SaveGraph(path string, g *astar.Graph) error {
	var buf bytes.Buffer
	if err := EncodeGraph(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("navfile: save %s: %w", path, err)
	}

	return nil
}
