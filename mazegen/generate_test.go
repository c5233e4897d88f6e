package mazegen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPtr(v uint64) *uint64 { return &v }

func TestGenerateDeterministic(t *testing.T) {
	p := testParams()
	p.Difficulty = DifficultyAdvanced
	p.Features = []Feature{FeaturePillars}
	p.Seed = seedPtr(1234)

	first, err := Generate(p)
	require.NoError(t, err)
	second, err := Generate(p)
	require.NoError(t, err)

	// Byte-for-byte equal when serialized.
	a, err := json.Marshal(first.Segments)
	require.NoError(t, err)
	b, err := json.Marshal(second.Segments)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, first.Preview, second.Preview)

	p.Seed = seedPtr(1235)
	third, err := Generate(p)
	require.NoError(t, err)
	assert.NotEqual(t, first.Preview, third.Preview)
}

func TestGenerateUnseeded(t *testing.T) {
	p := testParams()
	res, err := Generate(p)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Segments)
	assert.NotEmpty(t, res.Preview)
}

func TestGenerateMultiLevel(t *testing.T) {
	p := testParams()
	p.Type = TypeMultiLevel
	p.Seed = seedPtr(77)

	res, err := Generate(p)
	require.NoError(t, err)

	var levels [2][]Segment
	for _, s := range res.Segments {
		require.Contains(t, []int{0, 1}, s.Level)
		levels[s.Level] = append(levels[s.Level], s)
	}

	// Both levels carry a full geometry set.
	assert.Len(t, segmentsByRole(levels[0], RoleBoundary), 4)
	assert.Len(t, segmentsByRole(levels[1], RoleBoundary), 4)

	// Level 1 is lifted above the first level's walls.
	lift := p.WallHeight + levelGap
	for _, s := range levels[1] {
		assert.GreaterOrEqual(t, s.Origin.Z, lift)
	}

	// Independent carves: previews of the two levels both render.
	assert.NotEmpty(t, res.Preview)
}

func TestGenerateValidation(t *testing.T) {
	t.Run("invalid dimensions", func(t *testing.T) {
		p := testParams()
		p.Width, p.Height = 0, 3
		_, err := Generate(p)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("invalid lengths", func(t *testing.T) {
		for _, mutate := range []func(*Parameters){
			func(p *Parameters) { p.WallHeight = 0 },
			func(p *Parameters) { p.WallThickness = -1 },
			func(p *Parameters) { p.PathWidth = 0 },
		} {
			p := testParams()
			mutate(&p)
			_, err := Generate(p)
			assert.ErrorIs(t, err, ErrInvalidParameters)
		}
	})

	t.Run("invalid enums", func(t *testing.T) {
		p := testParams()
		p.Difficulty = "nightmare"
		_, err := Generate(p)
		assert.ErrorIs(t, err, ErrInvalidParameters)

		p = testParams()
		p.Type = "circular"
		_, err = Generate(p)
		assert.ErrorIs(t, err, ErrInvalidParameters)

		p = testParams()
		p.Features = []Feature{"moat"}
		_, err = Generate(p)
		assert.ErrorIs(t, err, ErrInvalidParameters)
	})
}
