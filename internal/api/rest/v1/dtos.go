package v1

import (
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
)

// ---- Requests ----

// RegisterRequest is the body for account registration.
type RegisterRequest struct {
	Email       string     `json:"email" binding:"required,email"`
	ProfileName string     `json:"profile_name" binding:"required,min=1,max=150"`
	Password    string     `json:"password" binding:"required,min=8"`
	PhoneNumber string     `json:"phone_number" binding:"omitempty,max=20"`
	Gender      string     `json:"gender" binding:"omitempty,max=20"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	ShareData   bool       `json:"share_data"`
}

// LoginRequest is the body for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token when it is not sent as a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	ProfileName  *string    `json:"profile_name" binding:"omitempty,min=1,max=150"`
	Description  *string    `json:"description"`
	ProfileImage *string    `json:"profile_image"`
	CoverPhoto   *string    `json:"cover_photo"`
	Website      *string    `json:"website"`
	Gender       *string    `json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
}

// ChangePasswordRequest carries an OTP-confirmed password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
	Code        string `json:"code" binding:"required"`
}

// ResetPasswordRequest carries an OTP-confirmed password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ChangeEmailRequest carries an OTP-confirmed email change.
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// ChangePhoneNumberRequest carries an OTP-confirmed phone change.
type ChangePhoneNumberRequest struct {
	NewPhoneNumber string `json:"new_phone_number" binding:"required,max=20"`
	Password       string `json:"password" binding:"required"`
	Code           string `json:"code" binding:"required"`
}

// AddEmailRequest adds an extra email to the account.
type AddEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// AddPhoneNumberRequest adds an extra phone number to the account.
type AddPhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Password    string `json:"password" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// LocationRequest is the body for a profile location.
type LocationRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// WorkRequest is the body for a profile work entry.
type WorkRequest struct {
	Company     string `json:"company" binding:"required,max=255"`
	Position    string `json:"position" binding:"omitempty,max=255"`
	Description string `json:"description"`
}

// EducationRequest is the body for a profile education entry.
type EducationRequest struct {
	College     string `json:"college" binding:"required,max=255"`
	Subject     string `json:"subject" binding:"omitempty,max=255"`
	Description string `json:"description"`
}

// FriendRequestBody names the receiver of a friend request.
type FriendRequestBody struct {
	UserID string `json:"user_id" binding:"required,uuid4"`
}

// FriendRespondRequest accepts or rejects a pending request.
type FriendRespondRequest struct {
	RequesterID string `json:"requester_id" binding:"required,uuid4"`
	Action      string `json:"action" binding:"required,oneof=accept reject"`
}

// MediaRequest is one media attachment on a post or story.
type MediaRequest struct {
	URL  string `json:"url" binding:"required,max=500"`
	Type string `json:"type" binding:"required,oneof=image video"`
}

// CreatePostRequest is the body for post creation.
type CreatePostRequest struct {
	Content      string         `json:"content"`
	Privacy      string         `json:"privacy" binding:"omitempty,oneof=public friends private"`
	SocietyID    *uint          `json:"society_id"`
	SharedPostID *uint          `json:"shared_post_id"`
	Media        []MediaRequest `json:"media" binding:"dive"`
}

// UpdatePostRequest carries the mutable post fields.
type UpdatePostRequest struct {
	Content *string `json:"content"`
	Privacy *string `json:"privacy" binding:"omitempty,oneof=public friends private"`
}

// SharePostRequest is the body for sharing a post.
type SharePostRequest struct {
	Content string `json:"content"`
	Privacy string `json:"privacy" binding:"omitempty,oneof=public friends private"`
}

// ShareBulkRequest shares a post to the own feed and into several
// societies at once.
type ShareBulkRequest struct {
	Content    string `json:"content"`
	Privacy    string `json:"privacy" binding:"omitempty,oneof=public friends private"`
	SocietyIDs []uint `json:"society_ids"`
}

// CreateCommentRequest is the body for a comment or reply.
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// UpdateCommentRequest carries an edited comment body.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateStoryRequest is the body for story creation.
type CreateStoryRequest struct {
	Content string         `json:"content"`
	Privacy string         `json:"privacy" binding:"omitempty,oneof=public friends private"`
	Media   []MediaRequest `json:"media" binding:"dive"`
}

// CreateSocietyRequest is the body for society creation.
type CreateSocietyRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image" binding:"omitempty,max=500"`
	Privacy     string `json:"privacy" binding:"omitempty,oneof=public private"`
}

// UpdateSocietyRequest carries the mutable society fields.
type UpdateSocietyRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,max=500"`
	Privacy     *string `json:"privacy" binding:"omitempty,oneof=public private"`
}

// SetRoleRequest changes a society member's role.
type SetRoleRequest struct {
	UserID string `json:"user_id" binding:"required,uuid4"`
	Role   string `json:"role" binding:"required,oneof=admin moderator member"`
}

// ModeratePostRequest approves or rejects a pending society post.
type ModeratePostRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// RespondMembershipRequest resolves a pending society join request.
type RespondMembershipRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// BlockRequest names the user to block or unblock.
type BlockRequest struct {
	UserID string `json:"user_id" binding:"required,uuid4"`
}

// SendMessageRequest is the body for a chat message. Content, a file
// reference, or both.
type SendMessageRequest struct {
	Content  string `json:"content"`
	FileURL  string `json:"file_url" binding:"omitempty,max=500"`
	FileType string `json:"file_type" binding:"omitempty,max=50"`
}

// CreateCategoryRequest is the body for a shop category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// UpdateCategoryRequest carries the mutable category fields.
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,max=255"`
	Description string `json:"description"`
}

// ProductImageRequest is one image on a product listing.
type ProductImageRequest struct {
	URL       string `json:"url" binding:"required,max=500"`
	IsPrimary bool   `json:"is_primary"`
}

// CreateProductRequest is the body for a product listing. Price is a
// decimal string to avoid floating point rounding.
type CreateProductRequest struct {
	CategoryID  uint                  `json:"category_id" binding:"required"`
	Name        string                `json:"name" binding:"required,max=255"`
	Description string                `json:"description"`
	Price       string                `json:"price" binding:"required"`
	Stock       int                   `json:"stock" binding:"min=0"`
	Images      []ProductImageRequest `json:"images" binding:"dive"`
}

// UpdateProductRequest carries the mutable product fields.
type UpdateProductRequest struct {
	CategoryID  *uint   `json:"category_id"`
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Stock       *int    `json:"stock" binding:"omitempty,min=0"`
}

// AddProductImageRequest attaches an image to an existing product.
type AddProductImageRequest struct {
	URL       string `json:"url" binding:"required,max=500"`
	IsPrimary bool   `json:"is_primary"`
}

// ReviewProductRequest approves or rejects a pending product.
type ReviewProductRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Reason string `json:"reason"`
}

// AddCartItemRequest puts a product into the cart.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest changes a cart item quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ShippingRequest carries delivery details for checkout.
type ShippingRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required,max=100"`
	Note    string `json:"note"`
}

// CheckoutRequest turns the cart into an order. An empty cart_item_ids
// checks out the whole cart.
type CheckoutRequest struct {
	ShippingRequest
	CartItemIDs []uint `json:"cart_item_ids"`
}

// BuyNowRequest orders a single product directly.
type BuyNowRequest struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Shipping  ShippingRequest `json:"shipping" binding:"required"`
}

// SetOrderStatusRequest advances an order through fulfilment.
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=processing shipped delivered cancelled"`
}

// CreateStreamRequest is the body for a livestream.
type CreateStreamRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

// StreamCommentRequest is the body for a live stream comment.
type StreamCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ---- Responses ----

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user,omitempty"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email,omitempty"`
	ProfileName  string     `json:"profile_name"`
	Description  string     `json:"description,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"`
	CoverPhoto   string     `json:"cover_photo,omitempty"`
	Website      string     `json:"website,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	IsStaff      bool       `json:"is_staff,omitempty"`
	ProfileLock  bool       `json:"profile_lock"`
	DateJoined   time.Time  `json:"date_joined"`
}

func toUserResponse(user *accounts.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		ProfileName:  user.ProfileName,
		Description:  user.Description,
		ProfileImage: user.ProfileImage,
		CoverPhoto:   user.CoverPhoto,
		Website:      user.Website,
		Gender:       user.Gender,
		DateOfBirth:  user.DateOfBirth,
		IsStaff:      user.IsStaff,
		ProfileLock:  user.ProfileLock,
		DateJoined:   user.DateJoined,
	}
}

func toUserResponses(users []*accounts.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses
}

// ProfileResponse is a user with profile sub-resources and counters.
type ProfileResponse struct {
	User              *UserResponse        `json:"user"`
	Locations         []*accounts.Location `json:"locations,omitempty"`
	Works             []*accounts.Work     `json:"works,omitempty"`
	Educations        []*accounts.Education `json:"educations,omitempty"`
	ExtraEmails       []*accounts.ExtraEmail `json:"extra_emails,omitempty"`
	ExtraPhoneNumbers []*accounts.ExtraPhoneNumber `json:"extra_phone_numbers,omitempty"`
	PostCount         int64 `json:"post_count"`
	FriendCount       int64 `json:"friend_count"`
	LikeCount         int64 `json:"like_count"`
}

func toProfileResponse(profile *accounts.Profile) *ProfileResponse {
	return &ProfileResponse{
		User:              toUserResponse(profile.User),
		Locations:         profile.Locations,
		Works:             profile.Works,
		Educations:        profile.Educations,
		ExtraEmails:       profile.ExtraEmails,
		ExtraPhoneNumbers: profile.ExtraPhoneNumbers,
		PostCount:         profile.PostCount,
		FriendCount:       profile.FriendCount,
		LikeCount:         profile.LikeCount,
	}
}

// FriendshipResponse is a friend link or pending request.
type FriendshipResponse struct {
	ID        uint          `json:"id"`
	Requester *UserResponse `json:"requester,omitempty"`
	Receiver  *UserResponse `json:"receiver,omitempty"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func toFriendshipResponse(friendship *accounts.Friendship) *FriendshipResponse {
	return &FriendshipResponse{
		ID:        friendship.ID,
		Requester: toUserResponse(&friendship.Requester),
		Receiver:  toUserResponse(&friendship.Receiver),
		Status:    friendship.Status,
		CreatedAt: friendship.CreatedAt,
	}
}

func toFriendshipResponses(friendships []*accounts.Friendship) []*FriendshipResponse {
	responses := make([]*FriendshipResponse, 0, len(friendships))
	for _, friendship := range friendships {
		responses = append(responses, toFriendshipResponse(friendship))
	}
	return responses
}

// MediaResponse is one media attachment.
type MediaResponse struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// PostResponse is a post with counters and viewer state.
type PostResponse struct {
	ID           uint            `json:"id"`
	Author       *UserResponse   `json:"author"`
	Content      string          `json:"content"`
	Privacy      string          `json:"privacy"`
	Status       string          `json:"status"`
	SocietyID    *uint           `json:"society_id,omitempty"`
	SharedPostID *uint           `json:"shared_post_id,omitempty"`
	SharedPost   *PostResponse   `json:"shared_post,omitempty"`
	Media        []MediaResponse `json:"media,omitempty"`
	LikeCount    int64           `json:"like_count"`
	CommentCount int64           `json:"comment_count"`
	ShareCount   int64           `json:"share_count"`
	Liked        bool            `json:"liked"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toPostResponse(post *social.Post) *PostResponse {
	response := &PostResponse{
		ID:           post.ID,
		Author:       toUserResponse(&post.Author),
		Content:      post.Content,
		Privacy:      post.Privacy,
		Status:       post.Status,
		SocietyID:    post.SocietyID,
		SharedPostID: post.SharedPostID,
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		ShareCount:   post.ShareCount,
		Liked:        post.Liked,
		CreatedAt:    post.CreatedAt,
	}
	for _, media := range post.Media {
		response.Media = append(response.Media, MediaResponse{URL: media.MediaURL, Type: media.MediaType})
	}
	if post.SharedPost != nil {
		response.SharedPost = toPostResponse(post.SharedPost)
	}
	return response
}

func toPostResponses(posts []*social.Post) []*PostResponse {
	responses := make([]*PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toPostResponse(post))
	}
	return responses
}

// FeedResponse is a page of posts with paging metadata.
type FeedResponse struct {
	Posts    []*PostResponse `json:"posts"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int64           `json:"total"`
}

func toFeedResponse(page *social.FeedPage) *FeedResponse {
	return &FeedResponse{
		Posts:    toPostResponses(page.Posts),
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}
}

// CommentResponse is a comment with counters and viewer state.
type CommentResponse struct {
	ID         uint          `json:"id"`
	PostID     uint          `json:"post_id"`
	Author     *UserResponse `json:"author"`
	ParentID   *uint         `json:"parent_id,omitempty"`
	Content    string        `json:"content"`
	LikeCount  int64         `json:"like_count"`
	ReplyCount int64         `json:"reply_count"`
	Liked      bool          `json:"liked"`
	CreatedAt  time.Time     `json:"created_at"`
}

func toCommentResponse(comment *social.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         comment.ID,
		PostID:     comment.PostID,
		Author:     toUserResponse(&comment.Author),
		ParentID:   comment.ParentID,
		Content:    comment.Content,
		LikeCount:  comment.LikeCount,
		ReplyCount: comment.ReplyCount,
		Liked:      comment.Liked,
		CreatedAt:  comment.CreatedAt,
	}
}

func toCommentResponses(comments []*social.Comment) []*CommentResponse {
	responses := make([]*CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, toCommentResponse(comment))
	}
	return responses
}

// StoryResponse is a story with viewer state.
type StoryResponse struct {
	ID        uint            `json:"id"`
	Author    *UserResponse   `json:"author"`
	Content   string          `json:"content"`
	Privacy   string          `json:"privacy"`
	Media     []MediaResponse `json:"media,omitempty"`
	ViewCount int64           `json:"view_count"`
	Viewed    bool            `json:"viewed"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func toStoryResponse(story *social.Story) *StoryResponse {
	response := &StoryResponse{
		ID:        story.ID,
		Author:    toUserResponse(&story.Author),
		Content:   story.Content,
		Privacy:   story.Privacy,
		ViewCount: story.ViewCount,
		Viewed:    story.Viewed,
		CreatedAt: story.CreatedAt,
		ExpiresAt: story.ExpiresAt,
	}
	for _, media := range story.Media {
		response.Media = append(response.Media, MediaResponse{URL: media.MediaURL, Type: media.MediaType})
	}
	return response
}

// StoryFeedGroupResponse is one author's stories in the story feed.
type StoryFeedGroupResponse struct {
	Author  *UserResponse    `json:"author"`
	Stories []*StoryResponse `json:"stories"`
}

func toStoryFeedResponse(groups []*social.StoryFeedGroup) []*StoryFeedGroupResponse {
	responses := make([]*StoryFeedGroupResponse, 0, len(groups))
	for _, group := range groups {
		groupResponse := &StoryFeedGroupResponse{Author: toUserResponse(group.Author)}
		for _, story := range group.Stories {
			groupResponse.Stories = append(groupResponse.Stories, toStoryResponse(story))
		}
		responses = append(responses, groupResponse)
	}
	return responses
}

// SocietyResponse is a society with the viewer's role filled in.
type SocietyResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Privacy     string    `json:"privacy"`
	CreatorID   string    `json:"creator_id"`
	MemberCount int64     `json:"member_count"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toSocietyResponse(society *social.Society) *SocietyResponse {
	return &SocietyResponse{
		ID:          society.ID,
		Name:        society.Name,
		Description: society.Description,
		CoverImage:  society.CoverImage,
		Privacy:     society.Privacy,
		CreatorID:   society.CreatorID,
		MemberCount: society.MemberCount,
		Role:        society.Role,
		CreatedAt:   society.CreatedAt,
	}
}

func toSocietyResponses(societies []*social.Society) []*SocietyResponse {
	responses := make([]*SocietyResponse, 0, len(societies))
	for _, society := range societies {
		responses = append(responses, toSocietyResponse(society))
	}
	return responses
}

// MembershipResponse is a society member with role.
type MembershipResponse struct {
	ID        uint          `json:"id"`
	SocietyID uint          `json:"society_id"`
	User      *UserResponse `json:"user"`
	Role      string        `json:"role"`
	Status    string        `json:"status"`
	JoinedAt  time.Time     `json:"joined_at"`
}

func toMembershipResponse(membership *social.SocietyMembership) *MembershipResponse {
	return &MembershipResponse{
		ID:        membership.ID,
		SocietyID: membership.SocietyID,
		User:      toUserResponse(&membership.User),
		Role:      membership.Role,
		Status:    membership.Status,
		JoinedAt:  membership.CreatedAt,
	}
}

// NotificationResponse is one notification.
type NotificationResponse struct {
	ID        uint          `json:"id"`
	Actor     *UserResponse `json:"actor"`
	Type      string        `json:"type"`
	Message   string        `json:"message"`
	PostID    *uint         `json:"post_id,omitempty"`
	SocietyID *uint         `json:"society_id,omitempty"`
	IsRead    bool          `json:"is_read"`
	CreatedAt time.Time     `json:"created_at"`
}

func toNotificationResponse(notification *social.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        notification.ID,
		Actor:     toUserResponse(&notification.Actor),
		Type:      notification.Type,
		Message:   notification.Message,
		PostID:    notification.PostID,
		SocietyID: notification.SocietyID,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

// ConversationResponse is a conversation as seen by one participant.
type ConversationResponse struct {
	ID          uint             `json:"id"`
	Other       *UserResponse    `json:"other_participant"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UnreadCount int64            `json:"unread_count"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toConversationResponse(conversation *chat.Conversation, viewerID string) *ConversationResponse {
	response := &ConversationResponse{
		ID:          conversation.ID,
		Other:       toUserResponse(conversation.OtherParticipant(viewerID)),
		UnreadCount: conversation.UnreadCount,
		UpdatedAt:   conversation.UpdatedAt,
	}
	if conversation.LastMessage != nil {
		response.LastMessage = toMessageResponse(conversation.LastMessage)
	}
	return response
}

// MessageResponse is one chat message.
type MessageResponse struct {
	ID             uint       `json:"id"`
	ConversationID uint       `json:"conversation_id,omitempty"`
	SenderID       string     `json:"sender_id"`
	Content        string     `json:"content"`
	FileURL        string     `json:"file_url,omitempty"`
	FileType       string     `json:"file_type,omitempty"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toMessageResponse(message *chat.Message) *MessageResponse {
	return &MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		FileURL:        message.FileURL,
		FileType:       message.FileType,
		IsRead:         message.IsRead,
		ReadAt:         message.ReadAt,
		CreatedAt:      message.CreatedAt,
	}
}

// GlobalMessageResponse is one message in the shared room.
type GlobalMessageResponse struct {
	ID        uint          `json:"id"`
	Sender    *UserResponse `json:"sender"`
	Content   string        `json:"content"`
	FileURL   string        `json:"file_url,omitempty"`
	FileType  string        `json:"file_type,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

func toGlobalMessageResponse(message *chat.GlobalChatMessage) *GlobalMessageResponse {
	return &GlobalMessageResponse{
		ID:        message.ID,
		Sender:    toUserResponse(&message.Sender),
		Content:   message.Content,
		FileURL:   message.FileURL,
		FileType:  message.FileType,
		CreatedAt: message.CreatedAt,
	}
}

// CategoryResponse is one shop category.
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func toCategoryResponse(category *shop.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
}

// ProductImageResponse is one product photo.
type ProductImageResponse struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductResponse is one product listing. Price is a decimal string.
type ProductResponse struct {
	ID              uint                   `json:"id"`
	Seller          *UserResponse          `json:"seller"`
	CategoryID      uint                   `json:"category_id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Price           string                 `json:"price"`
	Stock           int                    `json:"stock"`
	Status          string                 `json:"status"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	Images          []ProductImageResponse `json:"images,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func toProductResponse(product *shop.Product) *ProductResponse {
	response := &ProductResponse{
		ID:              product.ID,
		Seller:          toUserResponse(&product.Seller),
		CategoryID:      product.CategoryID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price.StringFixed(2),
		Stock:           product.Stock,
		Status:          product.Status,
		RejectionReason: product.RejectionReason,
		CreatedAt:       product.CreatedAt,
	}
	for _, image := range product.Images {
		response.Images = append(response.Images, ProductImageResponse{ID: image.ID, URL: image.ImageURL, IsPrimary: image.IsPrimary})
	}
	return response
}

func toProductResponses(products []*shop.Product) []*ProductResponse {
	responses := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses
}

// CartItemResponse is one cart line at current prices.
type CartItemResponse struct {
	ID       uint             `json:"id"`
	Product  *ProductResponse `json:"product"`
	Quantity int              `json:"quantity"`
	Subtotal string           `json:"subtotal"`
}

// CartResponse is the user's cart with a running total.
type CartResponse struct {
	ID    uint                `json:"id"`
	Items []*CartItemResponse `json:"items"`
	Total string              `json:"total"`
}

func toCartResponse(cart *shop.Cart) *CartResponse {
	response := &CartResponse{
		ID:    cart.ID,
		Items: make([]*CartItemResponse, 0, len(cart.Items)),
		Total: cart.Total().StringFixed(2),
	}
	for i := range cart.Items {
		item := &cart.Items[i]
		response.Items = append(response.Items, toCartItemResponse(item))
	}
	return response
}

func toCartItemResponse(item *shop.CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID:       item.ID,
		Product:  toProductResponse(&item.Product),
		Quantity: item.Quantity,
		Subtotal: item.Subtotal().StringFixed(2),
	}
}

// OrderItemResponse is one order line with its frozen price.
type OrderItemResponse struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse is a placed order.
type OrderResponse struct {
	ID              uint                 `json:"id"`
	BuyerID         string               `json:"buyer_id"`
	Status          string               `json:"status"`
	TotalAmount     string               `json:"total_amount"`
	ShippingName    string               `json:"shipping_name"`
	ShippingPhone   string               `json:"shipping_phone"`
	ShippingAddress string               `json:"shipping_address"`
	ShippingCity    string               `json:"shipping_city"`
	ShippingNote    string               `json:"shipping_note,omitempty"`
	Items           []*OrderItemResponse `json:"items"`
	CreatedAt       time.Time            `json:"created_at"`
}

func toOrderResponse(order *shop.Order) *OrderResponse {
	response := &OrderResponse{
		ID:              order.ID,
		BuyerID:         order.BuyerID,
		Status:          order.Status,
		TotalAmount:     order.TotalAmount.StringFixed(2),
		ShippingName:    order.ShippingName,
		ShippingPhone:   order.ShippingPhone,
		ShippingAddress: order.ShippingAddress,
		ShippingCity:    order.ShippingCity,
		ShippingNote:    order.ShippingNote,
		Items:           make([]*OrderItemResponse, 0, len(order.Items)),
		CreatedAt:       order.CreatedAt,
	}
	for i := range order.Items {
		item := &order.Items[i]
		response.Items = append(response.Items, &OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal().StringFixed(2),
		})
	}
	return response
}

func toOrderResponses(orders []*shop.Order) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}

// StreamResponse is a livestream. The stream key and ingest URL are
// already cleared by the service for non-owners.
type StreamResponse struct {
	ID          uint          `json:"id"`
	Owner       *UserResponse `json:"owner"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      string        `json:"status"`
	IngestURL   string        `json:"ingest_url,omitempty"`
	PlaybackURL string        `json:"playback_url,omitempty"`
	StreamKey   string        `json:"stream_key,omitempty"`
	ViewerCount int64         `json:"viewer_count"`
	PeakViewers int64         `json:"peak_viewers"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

func toStreamResponse(stream *livestream.Stream) *StreamResponse {
	return &StreamResponse{
		ID:          stream.ID,
		Owner:       toUserResponse(&stream.Owner),
		Title:       stream.Title,
		Description: stream.Description,
		Status:      stream.Status,
		IngestURL:   stream.IngestURL,
		PlaybackURL: stream.PlaybackURL,
		StreamKey:   stream.StreamKey,
		ViewerCount: stream.ViewerCount,
		PeakViewers: stream.PeakViewers,
		StartedAt:   stream.StartedAt,
		EndedAt:     stream.EndedAt,
		CreatedAt:   stream.CreatedAt,
	}
}

// StreamCommentResponse is one live stream comment.
type StreamCommentResponse struct {
	ID        uint          `json:"id"`
	Author    *UserResponse `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
}

func toStreamCommentResponse(comment *livestream.StreamComment) *StreamCommentResponse {
	return &StreamCommentResponse{
		ID:        comment.ID,
		Author:    toUserResponse(&comment.Author),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
