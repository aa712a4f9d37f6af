package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/navgraph/vec3"
)

type options struct {
	graphPath string
	gridPath  string
	from, to  string

	maxIter    int
	maxIterSet bool

	wkt   bool
	view  bool
	watch bool
}

// path returns the document being searched.
func (o options) path() string {
	if o.gridPath != "" {
		return o.gridPath
	}

	return o.graphPath
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("navpath", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&o.graphPath, "graph", "", "graph document (YAML)")
	fs.StringVar(&o.gridPath, "grid", "", "grid document (YAML)")
	fs.StringVar(&o.from, "from", "", "origin: vertex index, x,y,z position, or x,y cell with -grid")
	fs.StringVar(&o.to, "to", "", "destination, same forms as -from")
	fs.IntVar(&o.maxIter, "max-iter", 0, "override the search iteration cap (negative = unbounded)")
	fs.BoolVar(&o.wkt, "wkt", false, "also print the path as a WKT LINESTRING on the XZ plane")
	fs.BoolVar(&o.view, "view", false, "show the result in the terminal (requires -grid)")
	fs.BoolVar(&o.watch, "watch", false, "re-run the search whenever the document changes")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max-iter" {
			o.maxIterSet = true
		}
	})

	switch {
	case (o.graphPath == "") == (o.gridPath == ""):
		return o, errors.New("exactly one of -graph or -grid is required")
	case o.from == "" || o.to == "":
		return o, errors.New("-from and -to are required")
	case o.view && o.gridPath == "":
		return o, errors.New("-view requires -grid")
	case o.view && o.watch:
		return o, errors.New("-view and -watch cannot be combined")
	case fs.NArg() > 0:
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return o, nil
}

// parseFloats parses n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated values", s, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = f
	}

	return out, nil
}

// parseEndpoint reads a vertex index or an x,y,z position.
func parseEndpoint(s string) (index int, pos vec3.Vector3, isIndex bool, err error) {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i, vec3.Vector3{}, true, nil
	}
	f, err := parseFloats(s, 3)
	if err != nil {
		return 0, vec3.Vector3{}, false, err
	}

	return 0, vec3.New(float32(f[0]), float32(f[1]), float32(f[2])), false, nil
}

// parseCell reads an x,y grid coordinate.
func parseCell(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: want x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}

	return x, y, nil
}
