package mazegen

// Role tags what a segment represents so a serializer can group solids
// and subtractions without inspecting coordinates.
type Role string

const (
	RoleBoundary    Role = "boundary"
	RoleInternal    Role = "internal"
	RoleEntranceCut Role = "entrance-cut"
	RoleExitCut     Role = "exit-cut"
	RolePillar      Role = "pillar"
	RoleBase        Role = "base"
	RoleRoof        Role = "roof"
)

// IsCut reports whether the role is negative space that a consumer must
// subtract from the solid geometry.
func (r Role) IsCut() bool {
	return r == RoleEntranceCut || r == RoleExitCut
}

// Vec3 is a point or extent in model space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Segment is one axis-aligned rectangular solid of the emitted maze:
// origin is the minimum corner, dims the extent along each axis. The
// segment list is the sole output of a generation and holds no
// references back into the grid it came from.
type Segment struct {
	Origin Vec3 `json:"origin"`
	Dims   Vec3 `json:"dims"`
	Role   Role `json:"role"`

	// Level distinguishes the stacked layers of a multi-level maze.
	// Always 0 for rectangular mazes.
	Level int `json:"level"`
}
