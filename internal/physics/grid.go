package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a bounded screen.
// Rectangles are inserted by their top-left corner and index, then candidate overlaps
// can be queried via a 3x3 neighborhood lookup.
//
// Cell size must be >= the largest width or height of any inserted or queried rectangle
// so that every overlapping pair is found within the 3x3 neighborhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of rectangles whose corner falls within a grid cell.
// The slice is reused between ticks (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given screen dimensions.
func NewSpatialGrid(screenW, screenH, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(screenW / cellSize))
	rows := int(math.Ceil(screenH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// CellSize returns the edge length of a grid cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds a rectangle (identified by index).
func (g *SpatialGrid) Insert(r Rect, index int) {
	col, row := g.posToCell(r.X, r.Y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood around the
// top-left corner of r. Cells outside the screen are skipped.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(r Rect, fn func(index int) bool) {
	col, row := g.posToCell(r.X, r.Y)

	for dr := -1; dr <= 1; dr++ {
		rr := row + dr
		if rr < 0 || rr >= g.rows {
			continue
		}
		rowOffset := rr * g.cols

		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}

			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts screen coordinates to grid cell coordinates.
// Positions off the screen are clamped to the border cells.
func (g *SpatialGrid) posToCell(x, y int) (col, row int) {
	col = int(math.Floor(float64(x) * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(float64(y) * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
