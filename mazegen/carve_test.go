package mazegen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openPairs counts adjacent cell pairs whose shared wall has been
// removed. Each pair is counted once, via its owning cell's east and
// north sides.
func openPairs(g *Grid) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < g.Width-1 && !g.At(x, y).EastWall {
				count++
			}
			if y < g.Height-1 && !g.At(x, y).NorthWall {
				count++
			}
		}
	}
	return count
}

// reachable runs a breadth-first traversal through open walls and
// returns the number of cells reached from (0, 0).
func reachable(g *Grid) int {
	seen := make([]bool, g.Width*g.Height)
	queue := [][2]int{{0, 0}}
	seen[0] = true
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++

		for d := North; d <= West; d++ {
			if g.At(cur[0], cur[1]).hasWall(d) {
				continue
			}
			nx, ny := cur[0]+deltas[d].dx, cur[1]+deltas[d].dy
			if !g.InBounds(nx, ny) || seen[g.index(nx, ny)] {
				continue
			}
			seen[g.index(nx, ny)] = true
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return count
}

// assertWallSymmetry checks that adjacent cells always agree on their
// shared wall.
func assertWallSymmetry(t *testing.T, g *Grid) {
	t.Helper()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < g.Width-1 {
				assert.Equal(t, g.At(x, y).EastWall, g.At(x+1, y).WestWall,
					"east/west wall mismatch at (%d,%d)", x, y)
			}
			if y < g.Height-1 {
				assert.Equal(t, g.At(x, y).NorthWall, g.At(x, y+1).SouthWall,
					"north/south wall mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestCarvePerfectMaze(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 8}, {5, 5}, {12, 7}, {40, 40}} {
		g, err := NewGrid(dims[0], dims[1])
		require.NoError(t, err)

		NewCarver(rand.New(rand.NewSource(42))).Carve(g, DifficultyIntermediate)

		// A perfect maze is a spanning tree: cells-1 opened walls and
		// every cell reachable from the start.
		cells := dims[0] * dims[1]
		assert.Equal(t, cells-1, openPairs(g), "%dx%d open wall count", dims[0], dims[1])
		assert.Equal(t, cells, reachable(g), "%dx%d reachability", dims[0], dims[1])
		assertWallSymmetry(t, g)
	}
}

func TestCarveMarksAllVisited(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)

	NewCarver(rand.New(rand.NewSource(7))).Carve(g, DifficultyBeginner)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			assert.True(t, g.At(x, y).Visited, "cell (%d,%d) not visited", x, y)
		}
	}
}

func TestCarveSingleCell(t *testing.T) {
	g, err := NewGrid(1, 1)
	require.NoError(t, err)

	NewCarver(rand.New(rand.NewSource(1))).Carve(g, DifficultyBeginner)

	cell := g.At(0, 0)
	assert.True(t, cell.Visited)
	assert.True(t, cell.NorthWall)
	assert.True(t, cell.EastWall)
	assert.True(t, cell.SouthWall)
	assert.True(t, cell.WestWall)
}

func TestCarveDeterministic(t *testing.T) {
	carveOnce := func(seed int64) *Grid {
		g, err := NewGrid(10, 10)
		require.NoError(t, err)
		NewCarver(rand.New(rand.NewSource(seed))).Carve(g, DifficultyAdvanced)
		return g
	}

	a, b := carveOnce(99), carveOnce(99)
	assert.Equal(t, a.String(), b.String())

	c := carveOnce(100)
	assert.NotEqual(t, a.String(), c.String(), "different seeds should diverge")
}

func TestCarveAdvancedAddsLoops(t *testing.T) {
	g, err := NewGrid(20, 20)
	require.NoError(t, err)

	NewCarver(rand.New(rand.NewSource(3))).Carve(g, DifficultyAdvanced)

	cells := g.Width * g.Height
	opened := openPairs(g)

	// The extra-path pass opens at most cells/10 additional walls on top
	// of the spanning tree; skipped attempts are allowed to under-deliver
	// but connectivity must survive.
	assert.GreaterOrEqual(t, opened, cells-1)
	assert.LessOrEqual(t, opened, cells-1+cells/10)
	assert.Equal(t, cells, reachable(g))
	assertWallSymmetry(t, g)
}
