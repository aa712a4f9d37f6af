// Command navpath loads a navigation graph or tile grid document, runs an
// A* search on it and prints the result.
//
// Usage:
//
//	navpath -graph level.yaml -from 0 -to 42 [-wkt] [-max-iter N] [-watch]
//	navpath -graph level.yaml -from 1.5,0,3 -to 20,0,-4
//	navpath -grid map.yaml -from 0,0 -to 9,4 [-view]
//
// With -graph, -from and -to are vertex indices or x,y,z positions snapped
// to the nearest vertex. With -grid they are x,y cell coordinates.
// Search errors are logged and the best path found so far is still printed.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("navpath: ")

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case opts.view:
		err = view(opts)
	case opts.watch:
		err = watch(opts, os.Stdout)
	default:
		err = runOnce(opts, os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
}
