package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/beka-birhanu/maze-forge-api/mazegen"
)

const maxDesignNameLength = 64

// Blueprint is the transient result of one generation: the resolved
// parameters plus every rendered artifact. It is what the forge hands
// back for anonymous requests and what gets cached for seeded ones.
type Blueprint struct {
	Parameters mazegen.Parameters `json:"parameters"`
	Segments   []mazegen.Segment  `json:"segments"`
	Source     string             `json:"source"`
	Preview    string             `json:"preview"`
}

// MazeDesign is one saved generation result: the parameters that
// produced it, its rendered artifacts, and the user who owns it.
type MazeDesign struct {
	ID           uuid.UUID          `bson:"_id" json:"id"`
	OwnerID      uuid.UUID          `bson:"ownerId" json:"owner_id"`
	Name         string             `bson:"name" json:"name"`
	Parameters   mazegen.Parameters `bson:"parameters" json:"parameters"`
	SegmentCount int                `bson:"segmentCount" json:"segment_count"`
	Source       string             `bson:"source" json:"source"`
	Preview      string             `bson:"preview" json:"preview"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
}

// DesignConfig holds parameters for assembling a MazeDesign.
type DesignConfig struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Parameters   mazegen.Parameters
	SegmentCount int
	Source       string
	Preview      string
}

// NewMazeDesign creates a saved design record.
func NewMazeDesign(config DesignConfig) (*MazeDesign, error) {
	if config.Name == "" {
		return nil, errors.New("design name required")
	}
	if len(config.Name) > maxDesignNameLength {
		return nil, errors.New("design name too long")
	}
	if config.OwnerID == uuid.Nil {
		return nil, errors.New("design owner required")
	}

	return &MazeDesign{
		ID:           config.ID,
		OwnerID:      config.OwnerID,
		Name:         config.Name,
		Parameters:   config.Parameters,
		SegmentCount: config.SegmentCount,
		Source:       config.Source,
		Preview:      config.Preview,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
