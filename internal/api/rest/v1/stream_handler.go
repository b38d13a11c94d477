package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"

	"github.com/gin-gonic/gin"
)

// StreamHandler defines the interface for handling livestream operations
type StreamHandler interface {
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	ListLive(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	Start(ctx *gin.Context)
	End(ctx *gin.Context)
	Join(ctx *gin.Context)
	Leave(ctx *gin.Context)
	Delete(ctx *gin.Context)
	AddComment(ctx *gin.Context)
	ListComments(ctx *gin.Context)
}

type streamHandler struct {
	streamService livestream.StreamService
}

// NewStreamHandler creates a new StreamHandler
func NewStreamHandler(streamService livestream.StreamService) StreamHandler {
	return &streamHandler{streamService: streamService}
}

// Create provisions a channel and stores the stream in preparing status.
func (handler *streamHandler) Create(ctx *gin.Context) {
	var request CreateStreamRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	stream, err := handler.streamService.Create(ctx, CurrentUserID(ctx), request.Title, request.Description)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toStreamResponse(stream))
}

// Get returns the stream. The stream key is included for the owner only.
func (handler *streamHandler) Get(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	stream, err := handler.streamService.Get(ctx, CurrentUserID(ctx), streamID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStreamResponse(stream))
}

// ListLive returns currently live streams, most viewers first.
func (handler *streamHandler) ListLive(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	streams, total, err := handler.streamService.ListLive(ctx, page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*StreamResponse, 0, len(streams))
	for _, stream := range streams {
		responses = append(responses, toStreamResponse(stream))
	}
	ctx.JSON(http.StatusOK, gin.H{"streams": responses, "total": total})
}

// ListMine returns the caller's own streams in any status.
func (handler *streamHandler) ListMine(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	streams, total, err := handler.streamService.ListMine(ctx, CurrentUserID(ctx), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*StreamResponse, 0, len(streams))
	for _, stream := range streams {
		responses = append(responses, toStreamResponse(stream))
	}
	ctx.JSON(http.StatusOK, gin.H{"streams": responses, "total": total})
}

// Start marks a preparing stream live. Owner only.
func (handler *streamHandler) Start(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	stream, err := handler.streamService.Start(ctx, CurrentUserID(ctx), streamID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStreamResponse(stream))
}

// End marks a live stream ended. Owner only.
func (handler *streamHandler) End(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	stream, err := handler.streamService.End(ctx, CurrentUserID(ctx), streamID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStreamResponse(stream))
}

// Join records the caller as a viewer and returns the viewer count.
func (handler *streamHandler) Join(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	count, err := handler.streamService.Join(ctx, CurrentUserID(ctx), streamID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"viewer_count": count})
}

// Leave marks the caller as gone and returns the viewer count.
func (handler *streamHandler) Leave(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	count, err := handler.streamService.Leave(ctx, CurrentUserID(ctx), streamID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"viewer_count": count})
}

// Delete removes an ended stream with its comments and view records.
// Owner only.
func (handler *streamHandler) Delete(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.streamService.Delete(ctx, CurrentUserID(ctx), streamID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddComment posts a comment on a live stream.
func (handler *streamHandler) AddComment(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request StreamCommentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	comment, err := handler.streamService.AddComment(ctx, CurrentUserID(ctx), streamID, request.Content)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toStreamCommentResponse(comment))
}

// ListComments returns the stream's most recent comments.
func (handler *streamHandler) ListComments(ctx *gin.Context) {
	streamID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	comments, err := handler.streamService.ListComments(ctx, streamID, queryInt(ctx, "limit", 50))
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*StreamCommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, toStreamCommentResponse(comment))
	}
	ctx.JSON(http.StatusOK, responses)
}
