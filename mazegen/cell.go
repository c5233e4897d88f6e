package mazegen

// Cell represents a single cell in a maze grid.
// It includes a wall flag for each side and a carving-time visited mark.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool
	// Visited marks the cell as reached during carving. It is meaningless
	// once carving has finished.
	Visited bool
}

// Direction identifies one of the four cardinal sides of a cell.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// deltas maps a direction to the grid offset of the neighboring cell.
// North points toward increasing y.
var deltas = [4]struct{ dx, dy int }{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "West"
	}
}

// hasWall reports whether the cell has a solid wall on the given side.
func (c *Cell) hasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case East:
		return c.EastWall
	case South:
		return c.SouthWall
	default:
		return c.WestWall
	}
}

// setWall sets the wall flag on the given side.
func (c *Cell) setWall(d Direction, hasWall bool) {
	switch d {
	case North:
		c.NorthWall = hasWall
	case East:
		c.EastWall = hasWall
	case South:
		c.SouthWall = hasWall
	default:
		c.WestWall = hasWall
	}
}
