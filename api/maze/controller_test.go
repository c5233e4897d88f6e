package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/maze-forge-api/api/identity"
	dmn "github.com/beka-birhanu/maze-forge-api/domain"
	"github.com/beka-birhanu/maze-forge-api/mazegen"
)

type stubForger struct {
	savedName string
}

func (s *stubForger) Forge(_ context.Context, params mazegen.Parameters) (*dmn.Blueprint, error) {
	result, err := mazegen.Generate(params)
	if err != nil {
		return nil, err
	}
	return &dmn.Blueprint{
		Parameters: params,
		Segments:   result.Segments,
		Source:     "// stub",
		Preview:    result.Preview,
	}, nil
}

func (s *stubForger) SaveDesign(ctx context.Context, ownerID uuid.UUID, name string, params mazegen.Parameters) (*dmn.MazeDesign, error) {
	blueprint, err := s.Forge(ctx, params)
	if err != nil {
		return nil, err
	}
	s.savedName = name
	return dmn.NewMazeDesign(dmn.DesignConfig{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		Parameters:   params,
		SegmentCount: len(blueprint.Segments),
		Source:       blueprint.Source,
		Preview:      blueprint.Preview,
	})
}

func (s *stubForger) DesignByID(context.Context, uuid.UUID) (*dmn.MazeDesign, error) {
	return nil, assert.AnError
}

func (s *stubForger) DesignsByOwner(context.Context, uuid.UUID) ([]*dmn.MazeDesign, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, forger *stubForger, userID *uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller, err := NewForgeController(forger)
	require.NoError(t, err)

	router := gin.New()
	public := router.Group("/v1")
	controller.RegisterPublic(public)

	protected := router.Group("/v1")
	if userID != nil {
		protected.Use(func(c *gin.Context) {
			c.Set(identity.ContextUserID, userID.String())
			c.Next()
		})
	}
	controller.RegisterProtected(protected)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubForger{}, nil)

	t.Run("generates with defaults", func(t *testing.T) {
		seed := uint64(21)
		recorder := postJSON(t, router, "/v1/mazes/", GenerateRequest{Width: 5, Height: 5, Seed: &seed})
		require.Equal(t, http.StatusOK, recorder.Code)

		var response BlueprintResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, 62.0, response.TotalWidth)
		assert.Equal(t, mazegen.DifficultyIntermediate, response.Parameters.Difficulty)
		assert.Greater(t, response.SegmentCount, 4)
	})

	t.Run("rejects missing dimensions", func(t *testing.T) {
		recorder := postJSON(t, router, "/v1/mazes/", map[string]any{"width": 5})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		recorder := postJSON(t, router, "/v1/mazes/", GenerateRequest{Width: 5, Height: 5, Difficulty: "brutal"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSaveDesignEndpoint(t *testing.T) {
	forger := &stubForger{}
	owner := uuid.New()
	router := newTestRouter(t, forger, &owner)

	recorder := postJSON(t, router, "/v1/mazes/designs/", SaveDesignRequest{
		GenerateRequest: GenerateRequest{Width: 4, Height: 4},
		Name:            "hedge maze",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "hedge maze", forger.savedName)

	var design dmn.MazeDesign
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &design))
	assert.Equal(t, owner, design.OwnerID)
}

func TestSaveDesignRequiresAuth(t *testing.T) {
	router := newTestRouter(t, &stubForger{}, nil)

	recorder := postJSON(t, router, "/v1/mazes/designs/", SaveDesignRequest{
		GenerateRequest: GenerateRequest{Width: 4, Height: 4},
		Name:            "hedge maze",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
