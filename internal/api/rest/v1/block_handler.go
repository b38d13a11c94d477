package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// BlockHandler defines the interface for handling user block operations
type BlockHandler interface {
	Block(ctx *gin.Context)
	Unblock(ctx *gin.Context)
	ListBlocked(ctx *gin.Context)
}

type blockHandler struct {
	blockService social.BlockService
}

// NewBlockHandler creates a new BlockHandler
func NewBlockHandler(blockService social.BlockService) BlockHandler {
	return &blockHandler{blockService: blockService}
}

// Block records a block and severs any friendship with the user.
func (handler *blockHandler) Block(ctx *gin.Context) {
	var request BlockRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	if err := handler.blockService.Block(ctx, CurrentUserID(ctx), request.UserID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "blocked"})
}

// Unblock lifts a block.
func (handler *blockHandler) Unblock(ctx *gin.Context) {
	if err := handler.blockService.Unblock(ctx, CurrentUserID(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListBlocked returns the users the caller has blocked.
func (handler *blockHandler) ListBlocked(ctx *gin.Context) {
	users, err := handler.blockService.ListBlocked(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponses(users))
}
