package hillclimb

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap has no cells")
	// ErrRaggedGrid is returned when rows have differing lengths.
	ErrRaggedGrid = errors.New("heightmap rows differ in length")
	// ErrBadCell is returned for a character outside S, E and a-z.
	ErrBadCell = errors.New("invalid heightmap cell")
)

// ParseError reports where parsing a heightmap failed. Line and Col are
// zero-based.
type ParseError struct {
	Line int
	Col  int
	Char rune // offending character, if any
	Err  error
}

func (e *ParseError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("line %d col %d: %v %q", e.Line, e.Col, e.Err, e.Char)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cell is one square of the heightmap.
type Cell struct {
	Elevation byte // 'a'..'z'
	Start     bool
	Goal      bool
}

// ParseCell maps an input character to a Cell. S is the start at elevation a
// and E is the goal at elevation z.
func ParseCell(r rune) (Cell, bool) {
	switch {
	case r == 'S':
		return Cell{Elevation: 'a', Start: true}, true
	case r == 'E':
		return Cell{Elevation: 'z', Goal: true}, true
	case r >= 'a' && r <= 'z':
		return Cell{Elevation: byte(r)}, true
	}
	return Cell{}, false
}

// Heightmap is a parsed, rectangular grid of cells.
type Heightmap struct {
	Grid[Cell]
}

// ParseHeightmap parses one grid row per line. A single trailing empty line
// is ignored.
func ParseHeightmap(lines []string) (Heightmap, error) {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return Heightmap{}, &ParseError{Err: ErrEmptyGrid}
	}
	width := len(lines[0])
	g := MakeGrid[Cell](width, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return Heightmap{}, &ParseError{Line: y, Col: min(len(line), width), Err: ErrRaggedGrid}
		}
		for x, r := range line {
			c, ok := ParseCell(r)
			if !ok {
				return Heightmap{}, &ParseError{Line: y, Col: x, Char: r, Err: ErrBadCell}
			}
			g[y][x] = c
		}
	}
	return Heightmap{g}, nil
}

// Find returns the position of the first cell, in row-major order, for which
// f returns true.
func (hm Heightmap) Find(f func(Cell) bool) (Pt, bool) {
	for y, row := range hm.Grid {
		for x, c := range row {
			if f(c) {
				return Pt{X: x, Y: y}, true
			}
		}
	}
	return Pt{}, false
}

// TraversalMode selects which elevation changes an edge may make.
type TraversalMode int

const (
	// Ascend allows climbing at most one level and dropping any amount.
	Ascend TraversalMode = iota
	// Descend is the mirror of Ascend, used to search backwards from the goal.
	Descend
)

// CanMove reports whether a step from elevation cur to elevation dst is
// allowed.
func (m TraversalMode) CanMove(cur, dst byte) bool {
	switch m {
	case Ascend:
		return int(dst)-int(cur) <= 1
	case Descend:
		return int(cur)-int(dst) <= 1
	}
	panic(fmt.Sprintf("unknown traversal mode %d", m))
}

// Reverse returns the mode that walks every edge of m backwards.
func (m TraversalMode) Reverse() TraversalMode {
	if m == Ascend {
		return Descend
	}
	return Ascend
}

func (m TraversalMode) String() string {
	switch m {
	case Ascend:
		return "ascend"
	case Descend:
		return "descend"
	}
	return fmt.Sprintf("TraversalMode(%d)", int(m))
}
