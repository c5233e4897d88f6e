package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	dmn "github.com/beka-birhanu/maze-forge-api/domain"
	"github.com/beka-birhanu/maze-forge-api/mazegen"
	"github.com/beka-birhanu/maze-forge-api/scad"
	"github.com/beka-birhanu/maze-forge-api/service/i"
)

const (
	defaultMaxConcurrent = 8
	defaultMaxGridArea   = 10_000

	// cache key string format
	forgeKeyFmt = "forge:%dx%d:h%v_t%v_p%v:%s:%s:f_%s:seed_%d"
)

var (
	// ErrDesignNotFound is returned when a requested design does not exist.
	ErrDesignNotFound = errors.New("design not found")
)

// Options tunes the forge's resource policy.
type Options struct {
	// MaxConcurrent bounds the number of generations running at once.
	MaxConcurrent int

	// MaxGridArea bounds width*height of a single request, on top of the
	// per-axis bound mazegen enforces.
	MaxGridArea int

	// Logger for cache and persistence diagnostics.
	Logger *log.Logger
}

// Forge generates maze blueprints and manages saved designs. Generation
// itself is pure and stateless; the forge adds the resource policy
// around it (a semaphore bounding concurrent carves and a grid-area
// cap), a blueprint cache for seeded requests, and persistence for named
// designs.
type Forge struct {
	designRepo i.DesignRepo
	cache      i.DesignCache
	logger     *log.Logger
	slots      chan struct{}
	maxArea    int
}

// NewForge creates a Forge with the given repository, cache, and options.
func NewForge(designRepo i.DesignRepo, cache i.DesignCache, opts *Options) (i.DesignForger, error) {
	if designRepo == nil {
		return nil, errors.New("design repository is required")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.MaxGridArea <= 0 {
		opts.MaxGridArea = defaultMaxGridArea
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "forge: ", log.LstdFlags|log.Lshortfile)
	}

	return &Forge{
		designRepo: designRepo,
		cache:      cache,
		logger:     opts.Logger,
		slots:      make(chan struct{}, opts.MaxConcurrent),
		maxArea:    opts.MaxGridArea,
	}, nil
}

// Forge runs one full generation. Seeded requests are served from the
// cache when possible; unseeded requests are never cached because they
// are nondeterministic by contract.
func (f *Forge) Forge(ctx context.Context, params mazegen.Parameters) (*dmn.Blueprint, error) {
	if params.Width > 0 && params.Height > 0 && params.Width*params.Height > f.maxArea {
		return nil, fmt.Errorf("%w: area %d exceeds limit %d",
			mazegen.ErrGridTooLarge, params.Width*params.Height, f.maxArea)
	}

	// One semaphore slot per in-flight generation.
	select {
	case f.slots <- struct{}{}:
		defer func() { <-f.slots }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	cacheable := params.Seed != nil && f.cache != nil
	var key string
	if cacheable {
		key = forgeKey(params)
		if bp := f.cachedBlueprint(ctx, key); bp != nil {
			return bp, nil
		}

		// Hold the key lock while generating so identical concurrent
		// requests wait for one result instead of all carving.
		if unlock, err := f.cache.Lock(key); err == nil {
			defer func() {
				if err := unlock(); err != nil {
					f.logger.Printf("error while releasing forge cache lock: %s", err)
				}
			}()
			if bp := f.cachedBlueprint(ctx, key); bp != nil {
				return bp, nil
			}
		} else {
			f.logger.Printf("error while obtaining forge cache lock: %s", err)
		}
	}

	result, err := mazegen.Generate(params)
	if err != nil {
		return nil, err
	}

	blueprint := &dmn.Blueprint{
		Parameters: params,
		Segments:   result.Segments,
		Source:     scad.Render(result.Segments, params),
		Preview:    result.Preview,
	}

	if cacheable {
		if err := f.cache.Set(ctx, key, blueprint); err != nil {
			f.logger.Printf("error while caching forged blueprint: %s", err)
		}
	}

	return blueprint, nil
}

// SaveDesign generates a maze and persists it under a name for the owner.
func (f *Forge) SaveDesign(ctx context.Context, ownerID uuid.UUID, name string, params mazegen.Parameters) (*dmn.MazeDesign, error) {
	blueprint, err := f.Forge(ctx, params)
	if err != nil {
		return nil, err
	}

	design, err := dmn.NewMazeDesign(dmn.DesignConfig{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		Parameters:   params,
		SegmentCount: len(blueprint.Segments),
		Source:       blueprint.Source,
		Preview:      blueprint.Preview,
	})
	if err != nil {
		return nil, err
	}

	if err := f.designRepo.Save(design); err != nil {
		return nil, err
	}

	f.logger.Printf("saved design %q (%d segments) for user %s", design.Name, design.SegmentCount, ownerID)
	return design, nil
}

// DesignByID retrieves a saved design.
func (f *Forge) DesignByID(_ context.Context, id uuid.UUID) (*dmn.MazeDesign, error) {
	design, err := f.designRepo.ByID(id)
	if err != nil {
		return nil, ErrDesignNotFound
	}
	return design, nil
}

// DesignsByOwner lists the designs saved by a user.
func (f *Forge) DesignsByOwner(_ context.Context, ownerID uuid.UUID) ([]*dmn.MazeDesign, error) {
	return f.designRepo.ByOwner(ownerID)
}

// cachedBlueprint is a best-effort cache read: errors are logged, never
// surfaced, since the forge can always regenerate.
func (f *Forge) cachedBlueprint(ctx context.Context, key string) *dmn.Blueprint {
	lookupCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	blueprint, err := f.cache.Get(lookupCtx, key)
	if err != nil {
		f.logger.Printf("error while reading forge cache: %s", err)
		return nil
	}
	return blueprint
}

// forgeKey derives the cache key for a seeded parameter set. Features
// are sorted so equivalent sets share a key.
func forgeKey(p mazegen.Parameters) string {
	features := make([]string, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, string(f))
	}
	sort.Strings(features)

	return fmt.Sprintf(forgeKeyFmt,
		p.Width, p.Height,
		p.WallHeight, p.WallThickness, p.PathWidth,
		p.Difficulty, p.Type,
		strings.Join(features, "+"), *p.Seed)
}
