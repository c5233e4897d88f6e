// Package mazeapi exposes maze generation and saved designs over HTTP.
package mazeapi

import (
	dmn "github.com/beka-birhanu/maze-forge-api/domain"
	"github.com/beka-birhanu/maze-forge-api/mazegen"
)

// Default dimensions applied when a request leaves them unset. These are
// the standard print dimensions the generator was tuned for.
const (
	defaultWallHeight    = 20
	defaultWallThickness = 2
	defaultPathWidth     = 10
)

// GenerateRequest is a fully resolved maze parameter set. Turning free
// text into these fields is a front-end concern; the API only accepts
// explicit values.
type GenerateRequest struct {
	Width         int      `json:"width" binding:"required,min=1"`
	Height        int      `json:"height" binding:"required,min=1"`
	WallHeight    float64  `json:"wall_height"`
	WallThickness float64  `json:"wall_thickness"`
	PathWidth     float64  `json:"path_width"`
	Difficulty    string   `json:"difficulty"`
	MazeType      string   `json:"maze_type"`
	Features      []string `json:"features"`
	Seed          *uint64  `json:"seed"`
}

// Parameters resolves the request into generation parameters, filling in
// the documented defaults for omitted fields.
func (r GenerateRequest) Parameters() mazegen.Parameters {
	p := mazegen.Parameters{
		Width:         r.Width,
		Height:        r.Height,
		WallHeight:    r.WallHeight,
		WallThickness: r.WallThickness,
		PathWidth:     r.PathWidth,
		Difficulty:    mazegen.Difficulty(r.Difficulty),
		Type:          mazegen.MazeType(r.MazeType),
		Seed:          r.Seed,
	}

	if p.WallHeight == 0 {
		p.WallHeight = defaultWallHeight
	}
	if p.WallThickness == 0 {
		p.WallThickness = defaultWallThickness
	}
	if p.PathWidth == 0 {
		p.PathWidth = defaultPathWidth
	}
	if p.Difficulty == "" {
		p.Difficulty = mazegen.DifficultyIntermediate
	}
	if p.Type == "" {
		p.Type = mazegen.TypeRectangular
	}
	for _, f := range r.Features {
		p.Features = append(p.Features, mazegen.Feature(f))
	}

	return p
}

// SaveDesignRequest asks for a generation persisted under a name.
type SaveDesignRequest struct {
	GenerateRequest
	Name string `json:"name" binding:"required"`
}

// BlueprintResponse carries one generated maze back to the caller.
type BlueprintResponse struct {
	Parameters   mazegen.Parameters `json:"parameters"`
	TotalWidth   float64            `json:"total_width"`
	TotalHeight  float64            `json:"total_height"`
	SegmentCount int                `json:"segment_count"`
	Segments     []mazegen.Segment  `json:"segments"`
	Source       string             `json:"source"`
	Preview      string             `json:"preview"`
}

func newBlueprintResponse(bp *dmn.Blueprint) *BlueprintResponse {
	return &BlueprintResponse{
		Parameters:   bp.Parameters,
		TotalWidth:   bp.Parameters.TotalWidth(),
		TotalHeight:  bp.Parameters.TotalHeight(),
		SegmentCount: len(bp.Segments),
		Segments:     bp.Segments,
		Source:       bp.Source,
		Preview:      bp.Preview,
	}
}
