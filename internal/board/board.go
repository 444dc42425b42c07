// Package board builds the Ludo board geometry: a 15x15 cell grid and four
// 57-step color paths. One canonical path is laid out for quadrant 0 and the
// other three are derived by rotating it 90, 180 and 270 degrees about the
// grid center, so the four paths share the outer ring while each keeps an
// exclusive six-cell home stretch. Everything here is computed once at game
// setup and read-only afterwards.
package board

// Size is the width and height of the square grid.
const Size = 15

const (
	// PathLen is the number of steps on a color's path, entry through goal.
	PathLen = 57
	// FinalIdx is the goal step. A token that reaches it never moves again.
	FinalIdx = 56
	// HomeEntry is the first step of the exclusive five-cell final approach.
	HomeEntry = 51
	// RingLen is the number of physical cells on the shared outer ring.
	RingLen = 52
	// QuadrantShift is the ring offset between two adjacent quadrants'
	// entry cells. Rotating a path by 90 degrees advances its entry by
	// this many ring positions.
	QuadrantShift = 13
)

// NumQuadrants is the number of board orientations (one per color).
const NumQuadrants = 4

// YardCells is the number of holding cells in each quadrant's home yard.
const YardCells = 4

// Coord is a zero-indexed cell position on the grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell carries the metadata tags for one grid cell. Quadrant fields hold a
// quadrant number or -1 when the tag does not apply.
type Cell struct {
	Used  bool              // some token can occupy this cell
	Safe  bool              // capture-immune track cell
	Track [NumQuadrants]int // per-quadrant path index, -1 if not on that path
	Start int               // quadrant whose entry cell this is
	Final int               // quadrant whose goal cell this is
	Yard  int               // quadrant whose home yard contains this cell
}

// safeIndices are the capture-immune steps of every path. They are
// path-relative, so rotation keeps the physical safe cells aligned: the four
// entry cells (0, 13, 26, 39) plus the four star cells (8, 21, 34, 47).
var safeIndices = [...]int{0, 8, 13, 21, 26, 34, 39, 47}

// yardCanonical are the quadrant-0 home yard cells; the other yards are
// rotations of these.
var yardCanonical = [YardCells]Coord{{2, 2}, {3, 2}, {2, 3}, {3, 3}}

// Board holds the generated geometry.
type Board struct {
	grid  [Size][Size]Cell
	paths [NumQuadrants][PathLen]Coord
	yards [NumQuadrants][YardCells]Coord
}

// New generates the full board geometry. It always succeeds.
func New() *Board {
	b := &Board{}
	for x := range b.grid {
		for y := range b.grid[x] {
			cell := &b.grid[x][y]
			cell.Start, cell.Final, cell.Yard = -1, -1, -1
			for q := range cell.Track {
				cell.Track[q] = -1
			}
		}
	}

	canonical := buildCanonicalPath()
	for q := 0; q < NumQuadrants; q++ {
		for i, c := range canonical {
			rc := Rotate(c, q)
			b.paths[q][i] = rc
			cell := &b.grid[rc.X][rc.Y]
			cell.Used = true
			cell.Track[q] = i
		}
		for i, c := range yardCanonical {
			rc := Rotate(c, q)
			b.yards[q][i] = rc
			cell := &b.grid[rc.X][rc.Y]
			cell.Used = true
			cell.Yard = q
		}
		for _, i := range safeIndices {
			rc := b.paths[q][i]
			b.grid[rc.X][rc.Y].Safe = true
		}
		entry := b.paths[q][0]
		b.grid[entry.X][entry.Y].Start = q
		goal := b.paths[q][FinalIdx]
		b.grid[goal.X][goal.Y].Final = q
	}
	return b
}

// buildCanonicalPath lays out the quadrant-0 path: out of the yard along the
// upper edge of the west arm, clockwise around the ring, then inward through
// the west home stretch to the goal at the center's edge.
func buildCanonicalPath() [PathLen]Coord {
	p := make([]Coord, 0, PathLen)
	add := func(x, y int) { p = append(p, Coord{x, y}) }

	for x := 1; x <= 5; x++ {
		add(x, 6)
	}
	for y := 5; y >= 0; y-- {
		add(6, y)
	}
	add(7, 0)
	add(8, 0)
	for y := 1; y <= 5; y++ {
		add(8, y)
	}
	for x := 9; x <= 14; x++ {
		add(x, 6)
	}
	add(14, 7)
	add(14, 8)
	for x := 13; x >= 9; x-- {
		add(x, 8)
	}
	for y := 9; y <= 14; y++ {
		add(8, y)
	}
	add(7, 14)
	add(6, 14)
	for y := 13; y >= 9; y-- {
		add(6, y)
	}
	for x := 5; x >= 0; x-- {
		add(x, 8)
	}
	add(0, 7)
	// home stretch, ending on the goal cell
	for x := 1; x <= 6; x++ {
		add(x, 7)
	}

	var out [PathLen]Coord
	copy(out[:], p)
	return out
}

// Rotate turns a coordinate the given number of quarter turns clockwise
// about the grid center.
func Rotate(c Coord, quarters int) Coord {
	for i := 0; i < quarters%NumQuadrants; i++ {
		c = Coord{X: Size - 1 - c.Y, Y: c.X}
	}
	return c
}

// Path returns the full path for a quadrant.
func (b *Board) Path(q int) []Coord {
	return b.paths[q][:]
}

// At returns the coordinate of one path step.
func (b *Board) At(q, idx int) Coord {
	return b.paths[q][idx]
}

// Yard returns a quadrant's home yard cells.
func (b *Board) Yard(q int) [YardCells]Coord {
	return b.yards[q]
}

// Cell returns the metadata for a grid cell.
func (b *Board) Cell(c Coord) Cell {
	return b.grid[c.X][c.Y]
}

// SafeAt reports whether the cell at c is capture-immune.
func (b *Board) SafeAt(c Coord) bool {
	return b.grid[c.X][c.Y].Safe
}
