package object

import "image/color"

// Fleet layout margins, in alien sizes.
const (
	fleetSideMargin   = 2 // Free alien widths kept at the right edge
	fleetBottomMargin = 6 // Free alien heights kept above the bottom for the ship
)

// FleetSize returns how many columns and rows of aliens fit on the screen.
// Aliens start one alien size in from the top-left corner and are separated by a gap
// of one alien width horizontally and one alien height vertically.
func FleetSize(alienW, alienH, screenW, screenH int) (cols, rows int) {
	if alienW <= 0 || alienH <= 0 {
		return 0, 0
	}
	for x := alienW; x < screenW-fleetSideMargin*alienW; x += 2 * alienW {
		cols++
	}
	for y := alienH; y < screenH-fleetBottomMargin*alienH; y += 2 * alienH {
		rows++
	}
	return cols, rows
}

// CreateFleet lays out a full grid of aliens, row by row from the top-left.
// The result depends only on its arguments.
func CreateFleet(alienW, alienH, screenW, screenH int, c color.Color) []*Alien {
	cols, rows := FleetSize(alienW, alienH, screenW, screenH)
	aliens := make([]*Alien, 0, cols*rows)

	y := alienH
	for row := 0; row < rows; row++ {
		x := alienW
		for col := 0; col < cols; col++ {
			aliens = append(aliens, NewAlien(x, y, alienW, alienH, c))
			x += 2 * alienW
		}
		y += 2 * alienH
	}
	return aliens
}

// FleetAtEdge reports whether any alien touches the edge the fleet is heading to.
// Stops at the first alien found.
func FleetAtEdge(aliens []*Alien, screen Screen, direction int) bool {
	for _, a := range aliens {
		if a.CheckEdges(screen, direction) {
			return true
		}
	}
	return false
}

// DropFleet moves every alien down by dy pixels.
func DropFleet(aliens []*Alien, dy int) {
	for _, a := range aliens {
		a.Drop(dy)
	}
}

// FleetReachedBottom reports whether any alien's bottom edge reached the screen bottom.
func FleetReachedBottom(aliens []*Alien, screen Screen) bool {
	for _, a := range aliens {
		if a.Rect.Bottom() >= screen.Height {
			return true
		}
	}
	return false
}
