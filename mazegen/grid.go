/*
Package mazegen generates maze topologies and the solid geometry to print
them. It is split in three stages consumed in order: NewGrid allocates a
fully walled rectangular grid, Carver turns it into a maze with a
randomized depth-first walk, and EmitSegments translates the carved grid
into dimensioned wall segments ready for a CAD serializer.

A full generation is wrapped by Generate, which is a pure function from
(Parameters, seed) to a segment list: no globals, no network, no shared
state between calls.
*/
package mazegen

import (
	"errors"
	"fmt"
	"strings"
)

// MaxDimension bounds a single grid axis so carving memory and time stay
// predictable. Callers wanting a tighter bound enforce it before NewGrid.
const MaxDimension = 512

var (
	// ErrInvalidDimension is returned when a grid dimension is not positive.
	ErrInvalidDimension = errors.New("maze dimensions must be positive")

	// ErrGridTooLarge is returned when a grid dimension exceeds MaxDimension.
	ErrGridTooLarge = errors.New("maze dimensions exceed the supported maximum")
)

// Grid is a rectangular arena of cells. Cells are stored in a flat
// row-major slice and addressed by integer index, so carving never holds
// pointers into the arena.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid allocates a width x height grid with every cell fully walled
// and unvisited.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, width, height)
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{
			NorthWall: true,
			SouthWall: true,
			EastWall:  true,
			WestWall:  true,
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// index converts cell coordinates to the arena index.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// At returns the cell at (x, y). The pointer aliases the grid's arena and
// must not outlive the grid.
func (g *Grid) At(x, y int) *Cell {
	return &g.cells[g.index(x, y)]
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// openWall removes the wall between (x, y) and its neighbor in direction
// d. Both sides of the shared boundary are cleared so the wall flags of
// adjacent cells always agree.
func (g *Grid) openWall(x, y int, d Direction) {
	nx, ny := x+deltas[d].dx, y+deltas[d].dy
	g.At(x, y).setWall(d, false)
	g.At(nx, ny).setWall(d.Opposite(), false)
}

// String renders the grid as ASCII art, one "+---+" lattice row per cell
// row. The top line of the output is the grid's highest y row.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")

	for y := g.Height - 1; y >= 0; y-- {
		cellRow := "|"
		wallRow := "+"
		for x := 0; x < g.Width; x++ {
			cell := g.At(x, y)

			cellRow += "   "
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}

			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		b.WriteString(cellRow + "\n")
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}
