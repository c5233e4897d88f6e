package mazegen

import (
	"errors"
	"fmt"
)

// Difficulty selects how the carver biases the maze layout.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// MazeType selects the overall geometry layout.
type MazeType string

const (
	TypeRectangular MazeType = "rectangular"
	TypeMultiLevel  MazeType = "multiLevel"
)

// Feature is an optional decorative or structural addition layered onto
// the wall geometry.
type Feature string

const (
	FeatureBase    Feature = "base"
	FeaturePillars Feature = "pillars"
	FeatureRoof    Feature = "roof"
)

// ErrInvalidParameters is returned when a length parameter is not
// positive or an enum value is unknown.
var ErrInvalidParameters = errors.New("invalid maze parameters")

// Parameters fully describes one maze generation request. All lengths
// share one consistent unit. The struct is treated as immutable once
// generation starts.
type Parameters struct {
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	WallHeight    float64    `json:"wall_height"`
	WallThickness float64    `json:"wall_thickness"`
	PathWidth     float64    `json:"path_width"`
	Difficulty    Difficulty `json:"difficulty"`
	Type          MazeType   `json:"maze_type"`
	Features      []Feature  `json:"features,omitempty"`

	// Seed makes generation reproducible. A nil seed means a fresh
	// entropy-derived source per call.
	Seed *uint64 `json:"seed,omitempty"`
}

// Validate checks every field of the parameter set. Dimension errors are
// reported by NewGrid; Validate covers the geometric and enum fields.
func (p Parameters) Validate() error {
	if p.WallHeight <= 0 {
		return fmt.Errorf("%w: wall height %v", ErrInvalidParameters, p.WallHeight)
	}
	if p.WallThickness <= 0 {
		return fmt.Errorf("%w: wall thickness %v", ErrInvalidParameters, p.WallThickness)
	}
	if p.PathWidth <= 0 {
		return fmt.Errorf("%w: path width %v", ErrInvalidParameters, p.PathWidth)
	}

	switch p.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return fmt.Errorf("%w: difficulty %q", ErrInvalidParameters, p.Difficulty)
	}

	switch p.Type {
	case TypeRectangular, TypeMultiLevel:
	default:
		return fmt.Errorf("%w: maze type %q", ErrInvalidParameters, p.Type)
	}

	for _, f := range p.Features {
		switch f {
		case FeatureBase, FeaturePillars, FeatureRoof:
		default:
			return fmt.Errorf("%w: feature %q", ErrInvalidParameters, f)
		}
	}

	return nil
}

// HasFeature reports whether the feature set contains f.
func (p Parameters) HasFeature(f Feature) bool {
	for _, have := range p.Features {
		if have == f {
			return true
		}
	}
	return false
}

// CellSize is the grid pitch: one path plus one wall.
func (p Parameters) CellSize() float64 {
	return p.PathWidth + p.WallThickness
}

// TotalWidth is the outer X extent of the maze footprint, including the
// closing boundary wall.
func (p Parameters) TotalWidth() float64 {
	return float64(p.Width)*p.CellSize() + p.WallThickness
}

// TotalHeight is the outer Y extent of the maze footprint.
func (p Parameters) TotalHeight() float64 {
	return float64(p.Height)*p.CellSize() + p.WallThickness
}
