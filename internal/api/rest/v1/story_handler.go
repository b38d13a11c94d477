package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// StoryHandler defines the interface for handling story operations
type StoryHandler interface {
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Feed(ctx *gin.Context)
	MarkViewed(ctx *gin.Context)
	ListViewers(ctx *gin.Context)
}

type storyHandler struct {
	storyService social.StoryService
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyService social.StoryService) StoryHandler {
	return &storyHandler{storyService: storyService}
}

// Create stores a new story.
func (handler *storyHandler) Create(ctx *gin.Context) {
	var request CreateStoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	story, err := handler.storyService.Create(ctx, CurrentUserID(ctx), request.Content, request.Privacy, toMediaInputs(request.Media))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toStoryResponse(story))
}

// Get returns a single unexpired story.
func (handler *storyHandler) Get(ctx *gin.Context) {
	storyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	story, err := handler.storyService.Get(ctx, CurrentUserID(ctx), storyID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStoryResponse(story))
}

// Delete removes the caller's story.
func (handler *storyHandler) Delete(ctx *gin.Context) {
	storyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.storyService.Delete(ctx, CurrentUserID(ctx), storyID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Feed returns active stories grouped by author.
func (handler *storyHandler) Feed(ctx *gin.Context) {
	groups, err := handler.storyService.Feed(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStoryFeedResponse(groups))
}

// MarkViewed records the caller as a viewer of the story.
func (handler *storyHandler) MarkViewed(ctx *gin.Context) {
	storyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.storyService.MarkViewed(ctx, CurrentUserID(ctx), storyID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "viewed"})
}

// ListViewers returns who saw the story. Author only.
func (handler *storyHandler) ListViewers(ctx *gin.Context) {
	storyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	views, err := handler.storyService.ListViewers(ctx, CurrentUserID(ctx), storyID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	viewers := make([]*UserResponse, 0, len(views))
	for _, view := range views {
		viewers = append(viewers, toUserResponse(&view.Viewer))
	}
	ctx.JSON(http.StatusOK, viewers)
}
