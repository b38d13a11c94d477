package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// SocietyHandler defines the interface for handling society operations
type SocietyHandler interface {
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	List(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	Join(ctx *gin.Context)
	Leave(ctx *gin.Context)
	ListMembers(ctx *gin.Context)
	PendingMembers(ctx *gin.Context)
	RespondMembership(ctx *gin.Context)
	SetRole(ctx *gin.Context)
	RemoveMember(ctx *gin.Context)
	Posts(ctx *gin.Context)
	PendingPosts(ctx *gin.Context)
	ModeratePost(ctx *gin.Context)
}

type societyHandler struct {
	societyService social.SocietyService
}

// NewSocietyHandler creates a new SocietyHandler
func NewSocietyHandler(societyService social.SocietyService) SocietyHandler {
	return &societyHandler{societyService: societyService}
}

// Create stores a society with the caller as admin.
func (handler *societyHandler) Create(ctx *gin.Context) {
	var request CreateSocietyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	society, err := handler.societyService.Create(ctx, CurrentUserID(ctx), social.CreateSocietyInput{
		Name:        request.Name,
		Description: request.Description,
		CoverImage:  request.CoverImage,
		Privacy:     request.Privacy,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toSocietyResponse(society))
}

// Get returns a society the caller may see.
func (handler *societyHandler) Get(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	society, err := handler.societyService.Get(ctx, CurrentUserID(ctx), societyID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toSocietyResponse(society))
}

// Update modifies a society. Admin only.
func (handler *societyHandler) Update(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request UpdateSocietyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	society, err := handler.societyService.Update(ctx, CurrentUserID(ctx), societyID, social.UpdateSocietyInput{
		Name:        request.Name,
		Description: request.Description,
		CoverImage:  request.CoverImage,
		Privacy:     request.Privacy,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toSocietyResponse(society))
}

// Delete removes a society. Admin only.
func (handler *societyHandler) Delete(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.societyService.Delete(ctx, CurrentUserID(ctx), societyID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// List returns societies visible to the caller, optionally filtered by
// a name query.
func (handler *societyHandler) List(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	societies, total, err := handler.societyService.List(ctx, CurrentUserID(ctx), ctx.Query("q"), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"societies": toSocietyResponses(societies), "total": total})
}

// ListMine returns the societies the caller belongs to.
func (handler *societyHandler) ListMine(ctx *gin.Context) {
	societies, err := handler.societyService.ListMine(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toSocietyResponses(societies))
}

// Join enrolls the caller as a member.
func (handler *societyHandler) Join(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	membership, err := handler.societyService.Join(ctx, CurrentUserID(ctx), societyID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toMembershipResponse(membership))
}

// Leave removes the caller's membership.
func (handler *societyHandler) Leave(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.societyService.Leave(ctx, CurrentUserID(ctx), societyID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListMembers returns the society's members with roles.
func (handler *societyHandler) ListMembers(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	memberships, err := handler.societyService.ListMembers(ctx, CurrentUserID(ctx), societyID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*MembershipResponse, 0, len(memberships))
	for _, membership := range memberships {
		responses = append(responses, toMembershipResponse(membership))
	}
	ctx.JSON(http.StatusOK, responses)
}

// PendingMembers returns join requests awaiting review. Moderators
// only.
func (handler *societyHandler) PendingMembers(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	memberships, err := handler.societyService.PendingMembers(ctx, CurrentUserID(ctx), societyID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*MembershipResponse, 0, len(memberships))
	for _, membership := range memberships {
		responses = append(responses, toMembershipResponse(membership))
	}
	ctx.JSON(http.StatusOK, responses)
}

// RespondMembership approves or rejects a pending join request.
// Moderators only.
func (handler *societyHandler) RespondMembership(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request RespondMembershipRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	membership, err := handler.societyService.RespondMembership(ctx, CurrentUserID(ctx), societyID, ctx.Param("userId"), request.Action)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if membership == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, toMembershipResponse(membership))
}

// SetRole changes a member's role. Admin only.
func (handler *societyHandler) SetRole(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request SetRoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	membership, err := handler.societyService.SetRole(ctx, CurrentUserID(ctx), societyID, request.UserID, request.Role)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toMembershipResponse(membership))
}

// RemoveMember expels a member.
func (handler *societyHandler) RemoveMember(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.societyService.RemoveMember(ctx, CurrentUserID(ctx), societyID, ctx.Param("userId")); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Posts returns the society's approved posts.
func (handler *societyHandler) Posts(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	page, pageSize := queryPage(ctx)
	feed, err := handler.societyService.Posts(ctx, CurrentUserID(ctx), societyID, page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toFeedResponse(feed))
}

// PendingPosts returns posts awaiting moderation. Moderators only.
func (handler *societyHandler) PendingPosts(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	posts, err := handler.societyService.PendingPosts(ctx, CurrentUserID(ctx), societyID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toPostResponses(posts))
}

// ModeratePost approves or rejects a pending society post.
func (handler *societyHandler) ModeratePost(ctx *gin.Context) {
	societyID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	postID, ok := pathUint(ctx, "postId")
	if !ok {
		return
	}
	var request ModeratePostRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	post, err := handler.societyService.ModeratePost(ctx, CurrentUserID(ctx), societyID, postID, request.Action)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toPostResponse(post))
}
