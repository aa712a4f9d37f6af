package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/gridgraph"
	"github.com/katalvlaran/navgraph/navfile"
	"github.com/katalvlaran/navgraph/spatial"
	"github.com/katalvlaran/navgraph/termview"
	"github.com/katalvlaran/navgraph/vec3"
)

// job is a loaded document with resolved endpoints.
type job struct {
	graph    *astar.Graph
	grid     *gridgraph.GridGraph // nil for graph documents
	from, to int
}

// result is one finished search.
type result struct {
	path []int
	kind astar.PathKind
	err  error
}

func load(o options) (*job, error) {
	if o.gridPath != "" {
		return loadGrid(o)
	}

	g, err := navfile.LoadGraph(o.graphPath)
	if err != nil {
		return nil, err
	}
	if o.maxIterSet {
		g.SetMaxSearchIterations(o.maxIter)
	}

	j := &job{graph: g}
	var idx *spatial.Index
	resolve := func(s string) (int, error) {
		i, pos, isIndex, err := parseEndpoint(s)
		if err != nil || isIndex {
			return i, err
		}
		if idx == nil {
			idx = spatial.NewIndex(g)
		}
		i, ok := idx.Nearest(pos)
		if !ok {
			return 0, fmt.Errorf("%s: no vertex near %v", o.graphPath, pos)
		}

		return i, nil
	}
	if j.from, err = resolve(o.from); err != nil {
		return nil, fmt.Errorf("-from: %w", err)
	}
	if j.to, err = resolve(o.to); err != nil {
		return nil, fmt.Errorf("-to: %w", err)
	}

	return j, nil
}

func loadGrid(o options) (*job, error) {
	gg, err := navfile.LoadGrid(o.gridPath)
	if err != nil {
		return nil, err
	}

	j := &job{grid: gg}
	cell := func(s string) (int, error) {
		x, y, err := parseCell(s)
		if err != nil {
			return 0, err
		}

		return gg.Index(x, y)
	}
	if j.from, err = cell(o.from); err != nil {
		return nil, fmt.Errorf("-from: %w", err)
	}
	if j.to, err = cell(o.to); err != nil {
		return nil, fmt.Errorf("-to: %w", err)
	}

	var gopts []astar.GraphOption
	if o.maxIterSet {
		gopts = append(gopts, astar.WithMaxSearchIterations(o.maxIter))
	}
	j.graph = gg.ToNavGraph(gopts...)

	return j, nil
}

func (j *job) search() result {
	path, kind, err := j.graph.BuildIndexedPath(j.from, j.to, nil)

	return result{path: path, kind: kind, err: err}
}

// report prints a search result. Search errors are logged, not returned.
func report(w io.Writer, j *job, r result, withWKT bool) {
	if r.err != nil {
		log.Printf("search %d -> %d: %v", j.from, j.to, r.err)
	}
	if len(r.path) == 0 {
		fmt.Fprintln(w, "no path")
		return
	}

	fmt.Fprintf(w, "%s path, %d vertices\n", r.kind, len(r.path))
	fmt.Fprintf(w, "indices: %v\n", r.path)

	positions := make([]vec3.Vector3, 0, len(r.path))
	for _, idx := range r.path {
		v, _ := j.graph.Vertex(idx)
		positions = append(positions, v.Position)
	}
	if j.grid != nil {
		fmt.Fprint(w, "cells:")
		for _, idx := range r.path {
			x, y := j.grid.Coordinate(idx)
			fmt.Fprintf(w, " (%d,%d)", x, y)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprint(w, "positions:")
		for _, p := range positions {
			fmt.Fprintf(w, " (%g, %g, %g)", p.X, p.Y, p.Z)
		}
		fmt.Fprintln(w)
	}
	if withWKT {
		fmt.Fprintln(w, navfile.PathWKT(positions))
		fmt.Fprintf(w, "ground length: %g\n", navfile.GroundLength(positions))
	}
}

func runOnce(o options, w io.Writer) error {
	j, err := load(o)
	if err != nil {
		return err
	}
	report(w, j, j.search(), o.wkt)

	return nil
}

// watch runs once, then again on every change to the document. Reload
// errors are logged and watching continues.
func watch(o options, w io.Writer) error {
	if err := runOnce(o, w); err != nil {
		return err
	}

	wt, err := navfile.NewWatcher(o.path())
	if err != nil {
		return err
	}
	defer wt.Close()
	log.Printf("watching %s", o.path())

	for {
		select {
		case name, ok := <-wt.Events:
			if !ok {
				return nil
			}
			log.Printf("%s changed", name)
			if err := runOnce(o, w); err != nil {
				log.Print(err)
			}
		case err, ok := <-wt.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

func view(o options) error {
	j, err := load(o)
	if err != nil {
		return err
	}
	if j.grid == nil {
		return errors.New("-view requires -grid")
	}
	r := j.search()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	renderer := termview.NewRenderer()
	frame := termview.Frame{
		From:    j.from,
		To:      j.to,
		Path:    r.path,
		Kind:    r.kind,
		Err:     r.err,
		Message: "press any key",
	}
	termview.View(screen, func(c termview.Canvas) {
		renderer.Draw(c, j.grid, frame)
	})

	return nil
}
