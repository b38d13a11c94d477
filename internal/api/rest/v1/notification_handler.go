package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// NotificationHandler defines the interface for handling notification
// operations
type NotificationHandler interface {
	List(ctx *gin.Context)
	UnreadCount(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	MarkAllRead(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService social.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService social.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// List returns the caller's notifications, newest first.
func (handler *notificationHandler) List(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	notifications, total, err := handler.notificationService.List(ctx, CurrentUserID(ctx), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, toNotificationResponse(notification))
	}
	ctx.JSON(http.StatusOK, gin.H{"notifications": responses, "total": total})
}

// UnreadCount returns the number of unread notifications.
func (handler *notificationHandler) UnreadCount(ctx *gin.Context) {
	count, err := handler.notificationService.UnreadCount(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead marks one notification as read.
func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	notificationID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.notificationService.MarkRead(ctx, CurrentUserID(ctx), notificationID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "read"})
}

// MarkAllRead marks every notification as read.
func (handler *notificationHandler) MarkAllRead(ctx *gin.Context) {
	if err := handler.notificationService.MarkAllRead(ctx, CurrentUserID(ctx)); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "all read"})
}

// Delete dismisses a notification.
func (handler *notificationHandler) Delete(ctx *gin.Context) {
	notificationID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.notificationService.Delete(ctx, CurrentUserID(ctx), notificationID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
