package hillclimb

import (
	"math"

	"tailscale.com/util/deephash"
)

// Infinite is the tentative distance of a node no start node has reached yet.
const Infinite = math.MaxInt

// Node is the search state for one heightmap cell.
type Node struct {
	Pos Pt
	Cell

	visited   bool
	dist      int
	neighbors []int // row-major indices into Graph.nodes
}

// Dist returns the tentative distance of n and whether it is finite.
func (n Node) Dist() (int, bool) {
	return n.dist, n.dist != Infinite
}

// Graph is a directed graph over the cells of a heightmap. It owns all of its
// nodes; edges are stored as indices into the node slice.
type Graph struct {
	size  Pt
	mode  TraversalMode
	nodes []Node
}

// BuildGraph parses lines as a heightmap and builds its graph for mode.
func BuildGraph(lines []string, mode TraversalMode) (*Graph, error) {
	hm, err := ParseHeightmap(lines)
	if err != nil {
		return nil, err
	}
	return NewGraph(hm, mode), nil
}

// NewGraph returns a graph with one node per cell of hm and an edge from each
// cell to every orthogonal neighbor that mode allows moving to. Neighbors are
// listed in Compass order.
func NewGraph(hm Heightmap, mode TraversalMode) *Graph {
	size := hm.Size()
	g := &Graph{
		size:  size,
		mode:  mode,
		nodes: make([]Node, size.X*size.Y),
	}
	for y, row := range hm.Grid {
		for x, c := range row {
			p := Pt{X: x, Y: y}
			n := &g.nodes[g.index(p)]
			n.Pos = p
			n.Cell = c
			n.dist = Infinite
			p.ForImmediateNeighbors(func(p2 Pt) bool {
				dst, ok := hm.AtOk(p2)
				if ok && mode.CanMove(c.Elevation, dst.Elevation) {
					n.neighbors = append(n.neighbors, g.index(p2))
				}
				return true
			})
		}
	}
	return g
}

func (g *Graph) index(p Pt) int {
	return p.Y*g.size.X + p.X
}

func (g *Graph) inBounds(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.size.X && p.Y < g.size.Y
}

// Size returns the width (X) and height (Y) of the underlying heightmap.
func (g *Graph) Size() Pt { return g.size }

// Mode returns the traversal mode the edges were built with.
func (g *Graph) Mode() TraversalMode { return g.mode }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// NumEdges returns the number of directed edges.
func (g *Graph) NumEdges() int {
	var n int
	for i := range g.nodes {
		n += len(g.nodes[i].neighbors)
	}
	return n
}

// Node returns a copy of the node at p.
func (g *Graph) Node(p Pt) (Node, bool) {
	if !g.inBounds(p) {
		return Node{}, false
	}
	return g.nodes[g.index(p)], true
}

// Neighbors returns the positions reachable in one step from p.
func (g *Graph) Neighbors(p Pt) []Pt {
	if !g.inBounds(p) {
		return nil
	}
	var out []Pt
	for _, i := range g.nodes[g.index(p)].neighbors {
		out = append(out, g.nodes[i].Pos)
	}
	return out
}

// Hash returns a fingerprint of the graph, including search state.
func (g *Graph) Hash() deephash.Sum {
	return deephash.Hash(g)
}
