// The hillclimb command solves both parts of the hill climbing puzzle.
package main

import (
	_ "embed"
	"log"

	"github.com/maisem/hillclimb"
	"tailscale.com/util/deephash"
)

func main() {
	hillclimb.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*hillclimb.Puzzle
}

// heightmaps caches parsed inputs; both parts read the same one.
var heightmaps = map[deephash.Sum]hillclimb.Heightmap{}

func (s solver) heightmap() hillclimb.Heightmap {
	in := s.Grid()
	h := in.Hash()
	if hm, ok := heightmaps[h]; ok {
		return hm
	}
	lines := make([]string, len(in))
	for i, row := range in {
		lines[i] = string(row)
	}
	hm, err := hillclimb.ParseHeightmap(lines)
	if err != nil {
		log.Fatalf("parsing heightmap: %v", err)
	}
	heightmaps[h] = hm
	return hm
}

func (s solver) solve(mode hillclimb.TraversalMode, from, to hillclimb.NodePred) any {
	g := hillclimb.NewGraph(s.heightmap(), mode)
	d, ok := g.Solve(from, to)
	s.Debugf("%v: %d nodes, %d edges, %d settled", mode, g.Len(), g.NumEdges(), len(g.Distances()))
	if !ok {
		s.Debug("no path for", mode)
		return "unreachable"
	}
	return d
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	return s.solve(hillclimb.Ascend, hillclimb.IsStart, hillclimb.IsGoal)
}

// want=29
func (s solver) D12p2() any {
	return s.solve(hillclimb.Descend, hillclimb.IsGoal, hillclimb.AtElevation('a'))
}
