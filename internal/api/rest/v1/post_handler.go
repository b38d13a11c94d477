package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// PostHandler defines the interface for handling post and comment
// operations
type PostHandler interface {
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Feed(ctx *gin.Context)
	ListByAuthor(ctx *gin.Context)
	ToggleLike(ctx *gin.Context)
	ListLikers(ctx *gin.Context)
	Share(ctx *gin.Context)
	ShareBulk(ctx *gin.Context)

	CreateComment(ctx *gin.Context)
	ListComments(ctx *gin.Context)
	ListReplies(ctx *gin.Context)
	UpdateComment(ctx *gin.Context)
	DeleteComment(ctx *gin.Context)
	ToggleCommentLike(ctx *gin.Context)
}

type postHandler struct {
	postService    social.PostService
	commentService social.CommentService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService social.PostService, commentService social.CommentService) PostHandler {
	return &postHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// Create stores a new post.
func (handler *postHandler) Create(ctx *gin.Context) {
	var request CreatePostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	post, err := handler.postService.Create(ctx, CurrentUserID(ctx), social.CreatePostInput{
		Content:      request.Content,
		Privacy:      request.Privacy,
		SocietyID:    request.SocietyID,
		SharedPostID: request.SharedPostID,
		Media:        toMediaInputs(request.Media),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toPostResponse(post))
}

// Get returns a single post the caller may see.
func (handler *postHandler) Get(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	post, err := handler.postService.Get(ctx, CurrentUserID(ctx), postID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toPostResponse(post))
}

// Update modifies a post's content or privacy.
func (handler *postHandler) Update(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request UpdatePostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	post, err := handler.postService.Update(ctx, CurrentUserID(ctx), postID, social.UpdatePostInput{
		Content: request.Content,
		Privacy: request.Privacy,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toPostResponse(post))
}

// Delete removes a post.
func (handler *postHandler) Delete(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.postService.Delete(ctx, CurrentUserID(ctx), postID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Feed returns the caller's home feed.
func (handler *postHandler) Feed(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	feed, err := handler.postService.Feed(ctx, CurrentUserID(ctx), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toFeedResponse(feed))
}

// ListByAuthor returns another user's posts the caller may see.
func (handler *postHandler) ListByAuthor(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	feed, err := handler.postService.ListByAuthor(ctx, CurrentUserID(ctx), ctx.Param("id"), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toFeedResponse(feed))
}

// ToggleLike likes or unlikes a post.
func (handler *postHandler) ToggleLike(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	liked, err := handler.postService.ToggleLike(ctx, CurrentUserID(ctx), postID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ListLikers returns the users who liked a post.
func (handler *postHandler) ListLikers(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	users, err := handler.postService.ListLikers(ctx, CurrentUserID(ctx), postID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponses(users))
}

// Share wraps a post in a new one on the caller's timeline.
func (handler *postHandler) Share(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request SharePostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	post, err := handler.postService.Share(ctx, CurrentUserID(ctx), postID, request.Content, request.Privacy)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toPostResponse(post))
}

// ShareBulk shares a post to the caller's timeline and to societies in
// one request.
func (handler *postHandler) ShareBulk(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request ShareBulkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	posts, err := handler.postService.ShareBulk(ctx, CurrentUserID(ctx), postID, request.Content, request.Privacy, request.SocietyIDs)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toPostResponses(posts))
}

// CreateComment adds a comment or reply to a post.
func (handler *postHandler) CreateComment(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request CreateCommentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	comment, err := handler.commentService.Create(ctx, CurrentUserID(ctx), postID, request.ParentID, request.Content)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toCommentResponse(comment))
}

// ListComments returns a post's top-level comments.
func (handler *postHandler) ListComments(ctx *gin.Context) {
	postID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	page, pageSize := queryPage(ctx)
	comments, total, err := handler.commentService.List(ctx, CurrentUserID(ctx), postID, page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"comments": toCommentResponses(comments), "total": total})
}

// ListReplies returns the replies of a comment.
func (handler *postHandler) ListReplies(ctx *gin.Context) {
	commentID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	replies, err := handler.commentService.ListReplies(ctx, CurrentUserID(ctx), commentID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCommentResponses(replies))
}

// UpdateComment edits a comment's content.
func (handler *postHandler) UpdateComment(ctx *gin.Context) {
	commentID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	comment, err := handler.commentService.Update(ctx, CurrentUserID(ctx), commentID, request.Content)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCommentResponse(comment))
}

// DeleteComment removes a comment.
func (handler *postHandler) DeleteComment(ctx *gin.Context) {
	commentID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.commentService.Delete(ctx, CurrentUserID(ctx), commentID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ToggleCommentLike likes or unlikes a comment.
func (handler *postHandler) ToggleCommentLike(ctx *gin.Context) {
	commentID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	liked, err := handler.commentService.ToggleLike(ctx, CurrentUserID(ctx), commentID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"liked": liked})
}

func toMediaInputs(media []MediaRequest) []social.MediaInput {
	inputs := make([]social.MediaInput, 0, len(media))
	for _, item := range media {
		inputs = append(inputs, social.MediaInput{URL: item.URL, Type: item.Type})
	}
	return inputs
}
