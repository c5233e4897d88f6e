/*
Package scad renders emitted maze segments as an OpenSCAD script. It is
a plain textual serializer: solids become translate()/cube() statements
inside a union(), entrance and exit cuts are subtracted from it with
difference(). The mazegen core has no dependency on this package.
*/
package scad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beka-birhanu/maze-forge-api/mazegen"
)

// Render produces a complete OpenSCAD script for one generated maze.
// The output is deterministic for a deterministic segment list.
func Render(segments []mazegen.Segment, p mazegen.Parameters) string {
	var solids, cuts []mazegen.Segment
	for _, s := range segments {
		if s.Role.IsCut() {
			cuts = append(cuts, s)
		} else {
			solids = append(solids, s)
		}
	}

	var b strings.Builder
	b.WriteString("// Algorithmically generated maze\n")
	fmt.Fprintf(&b, "// Grid size: %dx%d\n", p.Width, p.Height)
	fmt.Fprintf(&b, "// Wall height: %s, thickness: %s\n", num(p.WallHeight), num(p.WallThickness))
	fmt.Fprintf(&b, "// Path width: %s\n", num(p.PathWidth))
	b.WriteString("\n")

	b.WriteString("difference() {\n")
	b.WriteString("    union() {\n")

	var lastRole mazegen.Role
	for _, s := range solids {
		if s.Role != lastRole {
			fmt.Fprintf(&b, "        // %s\n", roleComment(s.Role))
			lastRole = s.Role
		}
		b.WriteString("        " + cube(s) + "\n")
	}

	b.WriteString("    }\n")
	b.WriteString("\n")
	for _, s := range cuts {
		fmt.Fprintf(&b, "    // %s\n", roleComment(s.Role))
		b.WriteString("    " + cube(s) + "\n")
	}
	b.WriteString("}\n")

	return b.String()
}

// cube renders one segment as a positioned rectangular prism.
func cube(s mazegen.Segment) string {
	return fmt.Sprintf("translate([%s, %s, %s]) cube([%s, %s, %s]);",
		num(s.Origin.X), num(s.Origin.Y), num(s.Origin.Z),
		num(s.Dims.X), num(s.Dims.Y), num(s.Dims.Z))
}

func roleComment(r mazegen.Role) string {
	switch r {
	case mazegen.RoleBoundary:
		return "Boundary walls"
	case mazegen.RoleInternal:
		return "Internal walls"
	case mazegen.RoleBase:
		return "Base platform"
	case mazegen.RolePillar:
		return "Decorative pillars at intersections"
	case mazegen.RoleRoof:
		return "Roof"
	case mazegen.RoleEntranceCut:
		return "Entrance"
	default:
		return "Exit"
	}
}

// num formats a length without trailing zeros, matching hand-written
// OpenSCAD style.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
