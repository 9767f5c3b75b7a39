package hillclimb

// NodePred selects nodes, such as the start or goal set of a search.
type NodePred func(Node) bool

// IsStart matches the S cell.
func IsStart(n Node) bool { return n.Start }

// IsGoal matches the E cell.
func IsGoal(n Node) bool { return n.Goal }

// AtElevation matches every node at elevation e.
func AtElevation(e byte) NodePred {
	return func(n Node) bool { return n.Elevation == e }
}

// Reset prepares g for a new search: nodes matching isStart get distance 0,
// all others Infinite, and every node is marked unvisited.
func (g *Graph) Reset(isStart NodePred) {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.visited = false
		n.dist = Infinite
		if isStart(*n) {
			n.dist = 0
		}
	}
}

// ShortestPath returns the fewest steps from any start node, as set by the
// last Reset, to the nearest node matching isGoal. The frontier pops nodes by
// ascending distance, then row, then column. ok is false if no goal node is
// reachable.
func (g *Graph) ShortestPath(isGoal NodePred) (dist int, ok bool) {
	// Row-major index order is (row, col) order.
	q := MinQueue(func(a, b int) bool { return a < b })
	items := make([]*PQI[int], len(g.nodes))
	for i := range g.nodes {
		if g.nodes[i].visited {
			continue
		}
		items[i] = &PQI[int]{V: i, P: g.nodes[i].dist}
		q.Push(items[i])
	}

	for q.Len() > 0 {
		cur := &g.nodes[q.Pop().V]
		if cur.dist == Infinite {
			// Everything left is unreachable.
			return 0, false
		}
		if isGoal(*cur) {
			return cur.dist, true
		}
		for _, ni := range cur.neighbors {
			nb := &g.nodes[ni]
			if nb.visited {
				continue
			}
			if d := cur.dist + 1; d < nb.dist {
				nb.dist = d
				items[ni].P = d
				q.Update(items[ni])
			}
		}
		cur.visited = true
	}
	return 0, false
}

// Solve resets g for isStart and runs ShortestPath to isGoal.
func (g *Graph) Solve(isStart, isGoal NodePred) (int, bool) {
	g.Reset(isStart)
	return g.ShortestPath(isGoal)
}

// BFS computes the same distance as Solve with a plain FIFO queue. It does not
// touch the search state of g.
func (g *Graph) BFS(isStart, isGoal NodePred) (int, bool) {
	dist := make([]int, len(g.nodes))
	var q Queue[int]
	for i := range g.nodes {
		dist[i] = -1
		if isStart(g.nodes[i]) {
			dist[i] = 0
			q.Push(i)
		}
	}
	found := -1
	q.While(func(i int) bool {
		if isGoal(g.nodes[i]) {
			found = dist[i]
			return false
		}
		for _, ni := range g.nodes[i].neighbors {
			if dist[ni] == -1 {
				dist[ni] = dist[i] + 1
				q.Push(ni)
			}
		}
		return true
	})
	if found == -1 {
		return 0, false
	}
	return found, true
}

// Distances returns the finite tentative distances left by the last search.
func (g *Graph) Distances() map[Pt]int {
	out := make(map[Pt]int)
	for _, n := range g.nodes {
		if d, ok := n.Dist(); ok {
			out[n.Pos] = d
		}
	}
	return out
}

// ClimbToGoal returns the fewest steps from S to E, climbing at most one
// level per step.
func ClimbToGoal(lines []string) (int, bool, error) {
	g, err := BuildGraph(lines, Ascend)
	if err != nil {
		return 0, false, err
	}
	d, ok := g.Solve(IsStart, IsGoal)
	return d, ok, nil
}

// DescendToLowest returns the fewest steps from any elevation-a cell to E. It
// searches backwards from E over the Descend graph.
func DescendToLowest(lines []string) (int, bool, error) {
	g, err := BuildGraph(lines, Descend)
	if err != nil {
		return 0, false, err
	}
	d, ok := g.Solve(IsGoal, AtElevation('a'))
	return d, ok, nil
}
