package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-forge-api/domain"
	"github.com/beka-birhanu/maze-forge-api/mazegen"
	"github.com/google/uuid"
)

// DesignForger generates maze blueprints and manages saved designs.
type DesignForger interface {
	// Forge runs one full generation for the given parameters.
	Forge(ctx context.Context, params mazegen.Parameters) (*dmn.Blueprint, error)

	// SaveDesign generates a maze and persists it under a name for the
	// given owner.
	SaveDesign(ctx context.Context, ownerID uuid.UUID, name string, params mazegen.Parameters) (*dmn.MazeDesign, error)

	// DesignByID retrieves a saved design.
	DesignByID(ctx context.Context, id uuid.UUID) (*dmn.MazeDesign, error)

	// DesignsByOwner lists the designs saved by a user.
	DesignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.MazeDesign, error)
}
