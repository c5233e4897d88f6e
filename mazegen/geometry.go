package mazegen

// EmitSegments translates a carved grid into the flat segment list for
// one maze level, translated upward by zOffset. Segments are appended in
// a fixed order — boundary, internal walls row-major, features, cuts —
// so that identically seeded generations serialize identically.
//
// The grid is consumed read-only; EmitSegments never fails for a grid
// that NewGrid accepted (parameter validation happens in Generate).
func EmitSegments(g *Grid, p Parameters, level int, zOffset float64) []Segment {
	cellSize := p.CellSize()
	totalW := p.TotalWidth()
	totalH := p.TotalHeight()

	segs := make([]Segment, 0, 4+g.Width*g.Height+2)

	emit := func(role Role, x, y, z, dx, dy, dz float64) {
		segs = append(segs, Segment{
			Origin: Vec3{X: x, Y: y, Z: z + zOffset},
			Dims:   Vec3{X: dx, Y: dy, Z: dz},
			Role:   role,
			Level:  level,
		})
	}

	// Boundary walls: left, right, bottom, top. Always exactly four,
	// each spanning the full opposite dimension.
	emit(RoleBoundary, 0, 0, 0, p.WallThickness, totalH, p.WallHeight)
	emit(RoleBoundary, totalW-p.WallThickness, 0, 0, p.WallThickness, totalH, p.WallHeight)
	emit(RoleBoundary, 0, 0, 0, totalW, p.WallThickness, p.WallHeight)
	emit(RoleBoundary, 0, totalH-p.WallThickness, 0, totalW, p.WallThickness, p.WallHeight)

	// Internal walls. Each cell emits only its east and north walls, and
	// only when a neighbor exists on that side: the far column and row
	// are already covered by the boundary, and the owning-side rule keeps
	// a shared wall from being emitted by both of its cells.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.At(x, y)
			baseX := float64(x)*cellSize + p.WallThickness
			baseY := float64(y)*cellSize + p.WallThickness

			if cell.EastWall && x < g.Width-1 {
				emit(RoleInternal, baseX+p.PathWidth, baseY, 0, p.WallThickness, p.PathWidth, p.WallHeight)
			}
			if cell.NorthWall && y < g.Height-1 {
				emit(RoleInternal, baseX, baseY+p.PathWidth, 0, p.PathWidth, p.WallThickness, p.WallHeight)
			}
		}
	}

	if p.HasFeature(FeatureBase) {
		emit(RoleBase, 0, 0, -2, totalW, totalH, 2)
	}

	if p.HasFeature(FeaturePillars) {
		for y := 0; y <= g.Height; y++ {
			for x := 0; x <= g.Width; x++ {
				emit(RolePillar, float64(x)*cellSize, float64(y)*cellSize, 0,
					p.WallThickness, p.WallThickness, p.WallHeight+5)
			}
		}
	}

	if p.HasFeature(FeatureRoof) {
		emit(RoleRoof, 0, 0, p.WallHeight, totalW, totalH, 2)
	}

	// Entrance and exit openings. Both are negative space for the
	// consumer to subtract; they protrude one unit past the boundary on
	// each side so the subtraction cuts cleanly through it. The exit sits
	// one cell in from the far corner so the opening stays inside the
	// footprint.
	emit(RoleEntranceCut, p.WallThickness, -1, 0, p.PathWidth, p.WallThickness+2, p.WallHeight)
	emit(RoleExitCut, totalW-p.WallThickness-p.PathWidth, totalH-p.WallThickness-1, 0,
		p.PathWidth, p.WallThickness+2, p.WallHeight)

	return segs
}
