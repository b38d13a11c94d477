package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// FriendHandler defines the interface for handling friendship operations
type FriendHandler interface {
	SendRequest(ctx *gin.Context)
	ListIncoming(ctx *gin.Context)
	Respond(ctx *gin.Context)
	ListFriends(ctx *gin.Context)
	Unfriend(ctx *gin.Context)
	Suggestions(ctx *gin.Context)
	Status(ctx *gin.Context)
}

type friendHandler struct {
	friendService accounts.FriendService
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(friendService accounts.FriendService) FriendHandler {
	return &friendHandler{friendService: friendService}
}

// SendRequest sends a friend request to another user.
func (handler *friendHandler) SendRequest(ctx *gin.Context) {
	var request FriendRequestBody
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	friendship, err := handler.friendService.SendRequest(ctx, CurrentUserID(ctx), request.UserID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toFriendshipResponse(friendship))
}

// ListIncoming returns pending requests received by the caller.
func (handler *friendHandler) ListIncoming(ctx *gin.Context) {
	friendships, err := handler.friendService.ListIncoming(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toFriendshipResponses(friendships))
}

// Respond accepts or rejects a pending request.
func (handler *friendHandler) Respond(ctx *gin.Context) {
	var request FriendRespondRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	friendship, err := handler.friendService.Respond(ctx, CurrentUserID(ctx), request.RequesterID, request.Action)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if friendship == nil {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "request rejected"})
		return
	}
	ctx.JSON(http.StatusOK, toFriendshipResponse(friendship))
}

// ListFriends returns the caller's accepted friendships.
func (handler *friendHandler) ListFriends(ctx *gin.Context) {
	friendships, err := handler.friendService.ListFriends(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toFriendshipResponses(friendships))
}

// Unfriend severs the friendship with another user.
func (handler *friendHandler) Unfriend(ctx *gin.Context) {
	if err := handler.friendService.Unfriend(ctx, CurrentUserID(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Suggestions returns users the caller might know.
func (handler *friendHandler) Suggestions(ctx *gin.Context) {
	users, err := handler.friendService.Suggestions(ctx, CurrentUserID(ctx), queryInt(ctx, "limit", 20))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponses(users))
}

// Status reports the friendship state with another user.
func (handler *friendHandler) Status(ctx *gin.Context) {
	status, err := handler.friendService.Status(ctx, CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": status})
}
