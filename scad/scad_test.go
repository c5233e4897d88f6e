package scad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/maze-forge-api/mazegen"
)

func TestRender(t *testing.T) {
	p := mazegen.Parameters{
		Width:         2,
		Height:        2,
		WallHeight:    20,
		WallThickness: 2,
		PathWidth:     10,
		Difficulty:    mazegen.DifficultyBeginner,
		Type:          mazegen.TypeRectangular,
	}

	segments := []mazegen.Segment{
		{Origin: mazegen.Vec3{}, Dims: mazegen.Vec3{X: 2, Y: 26, Z: 20}, Role: mazegen.RoleBoundary},
		{Origin: mazegen.Vec3{X: 14, Y: 2}, Dims: mazegen.Vec3{X: 2, Y: 10, Z: 20}, Role: mazegen.RoleInternal},
		{Origin: mazegen.Vec3{X: 2, Y: -1}, Dims: mazegen.Vec3{X: 10, Y: 4, Z: 20}, Role: mazegen.RoleEntranceCut},
	}

	script := Render(segments, p)

	assert.Contains(t, script, "// Grid size: 2x2")
	assert.Contains(t, script, "// Wall height: 20, thickness: 2")
	assert.Contains(t, script, "translate([0, 0, 0]) cube([2, 26, 20]);")
	assert.Contains(t, script, "translate([14, 2, 0]) cube([2, 10, 20]);")
	assert.Contains(t, script, "translate([2, -1, 0]) cube([10, 4, 20]);")

	// Cuts live outside the union but inside the difference.
	unionIdx := strings.Index(script, "union() {")
	entranceIdx := strings.Index(script, "// Entrance")
	unionEnd := strings.Index(script, "    }\n")
	require.True(t, unionIdx >= 0 && entranceIdx >= 0 && unionEnd >= 0)
	assert.Greater(t, entranceIdx, unionEnd)
	assert.True(t, strings.HasPrefix(script, "// Algorithmically generated maze"))
}

func TestRenderFullGeneration(t *testing.T) {
	seed := uint64(9)
	p := mazegen.Parameters{
		Width:         4,
		Height:        4,
		WallHeight:    20,
		WallThickness: 2,
		PathWidth:     10,
		Difficulty:    mazegen.DifficultyIntermediate,
		Type:          mazegen.TypeRectangular,
		Features:      []mazegen.Feature{mazegen.FeatureBase},
		Seed:          &seed,
	}

	res, err := mazegen.Generate(p)
	require.NoError(t, err)

	first := Render(res.Segments, p)
	second := Render(res.Segments, p)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "// Base platform")
	assert.Contains(t, first, "// Exit")
	assert.Equal(t, 1, strings.Count(first, "difference() {"))
}
