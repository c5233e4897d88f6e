package mazegen

import (
	"math/rand"
	"strings"
	"time"
)

// levelGap is the vertical clearance between stacked maze levels.
const levelGap = 5

// Result is the output of one full generation.
type Result struct {
	// Segments is the ordered solid-segment list, the sole artifact a
	// serializer needs.
	Segments []Segment

	// Preview is an ASCII rendering of the carved layout, one block per
	// level, useful for logs and quick inspection.
	Preview string
}

// Generate runs the full pipeline: allocate a fully walled grid, carve
// it, and emit its geometry. It is a pure function of (p, p.Seed) — a
// seeded call is deterministic segment for segment, and independent
// calls share no state, so Generate is safe to run concurrently.
//
// A multiLevel maze is two independent carves of the same dimensions:
// level 0 at z=0 and level 1 lifted above the first level's walls. The
// levels are not connected to each other.
func Generate(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rng := newRand(p.Seed)

	levels := 1
	if p.Type == TypeMultiLevel {
		levels = 2
	}

	var segments []Segment
	previews := make([]string, 0, levels)
	for level := 0; level < levels; level++ {
		grid, err := NewGrid(p.Width, p.Height)
		if err != nil {
			return nil, err
		}

		NewCarver(rng).Carve(grid, p.Difficulty)

		zOffset := float64(level) * (p.WallHeight + levelGap)
		segments = append(segments, EmitSegments(grid, p, level, zOffset)...)
		previews = append(previews, grid.String())
	}

	return &Result{
		Segments: segments,
		Preview:  strings.Join(previews, "\n"),
	}, nil
}

// newRand builds the carving random source: seeded when the caller wants
// reproducibility, entropy-derived otherwise.
func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(int64(*seed)))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
