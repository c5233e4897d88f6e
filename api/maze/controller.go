package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beka-birhanu/maze-forge-api/api/identity"
	"github.com/beka-birhanu/maze-forge-api/mazegen"
	"github.com/beka-birhanu/maze-forge-api/service"
	"github.com/beka-birhanu/maze-forge-api/service/i"
)

// ForgeController manages maze generation and saved-design operations.
type ForgeController struct {
	forge i.DesignForger
}

// NewForgeController initializes a ForgeController.
func NewForgeController(forge i.DesignForger) (*ForgeController, error) {
	if forge == nil {
		return nil, errors.New("design forger is required")
	}
	return &ForgeController{forge: forge}, nil
}

// RegisterPublic registers public routes.
func (fc *ForgeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", fc.generate)
	}
}

// RegisterProtected registers protected routes.
func (fc *ForgeController) RegisterProtected(route *gin.RouterGroup) {
	designs := route.Group("/mazes/designs")
	{
		designs.POST("/", fc.saveDesign)
		designs.GET("/", fc.listDesigns)
		designs.GET("/:ID", fc.designByID)
	}
}

// generate handles anonymous one-shot generation requests.
func (fc *ForgeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blueprint, err := fc.forge.Forge(ctx, request.Parameters())
	if err != nil {
		ctx.JSON(forgeStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newBlueprintResponse(blueprint))
}

// saveDesign generates a maze and stores it for the authenticated user.
func (fc *ForgeController) saveDesign(ctx *gin.Context) {
	ownerID, ok := authenticatedUserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request SaveDesignRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	design, err := fc.forge.SaveDesign(ctx, ownerID, request.Name, request.Parameters())
	if err != nil {
		ctx.JSON(forgeStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, design)
}

// listDesigns returns the authenticated user's saved designs.
func (fc *ForgeController) listDesigns(ctx *gin.Context) {
	ownerID, ok := authenticatedUserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	designs, err := fc.forge.DesignsByOwner(ctx, ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing designs"})
		return
	}

	ctx.JSON(http.StatusOK, designs)
}

// designByID retrieves one saved design; owners only.
func (fc *ForgeController) designByID(ctx *gin.Context) {
	ownerID, ok := authenticatedUserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	design, err := fc.forge.DesignByID(ctx, id)
	if err != nil || design.OwnerID != ownerID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "design not found"})
		return
	}

	ctx.JSON(http.StatusOK, design)
}

// authenticatedUserID extracts the user ID the authorization middleware
// attached to the context.
func authenticatedUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get(identity.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	idString, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// forgeStatus maps generation failures to HTTP statuses.
func forgeStatus(err error) int {
	switch {
	case errors.Is(err, mazegen.ErrInvalidDimension),
		errors.Is(err, mazegen.ErrInvalidParameters):
		return http.StatusBadRequest
	case errors.Is(err, mazegen.ErrGridTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrDesignNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
