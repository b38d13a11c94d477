package social

import (
	"context"
	"errors"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// Sentinel errors shared across the social services.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAlreadyMember   = errors.New("already a member")
	ErrNotMember       = errors.New("not a member")
	ErrCannotBlockSelf = errors.New("cannot block yourself")
	ErrBlocked         = errors.New("interaction not allowed")
)

// MediaInput describes a media attachment supplied with a post or story.
type MediaInput struct {
	URL  string
	Type string
}

// CreatePostInput carries the fields accepted at post creation.
type CreatePostInput struct {
	Content      string
	Privacy      string
	SocietyID    *uint
	SharedPostID *uint
	Media        []MediaInput
}

// UpdatePostInput carries the mutable post fields. Nil pointers leave
// the existing value untouched.
type UpdatePostInput struct {
	Content *string
	Privacy *string
}

// FeedPage is a page of posts together with paging metadata.
type FeedPage struct {
	Posts    []*Post
	Page     int
	PageSize int
	Total    int64
}

// PostService defines post authoring, visibility and reactions.
type PostService interface {
	// Create stores a post. Society posts by plain members start
	// pending; posts by moderators or admins are approved immediately.
	Create(ctx context.Context, authorID string, input CreatePostInput) (*Post, error)

	// Get returns a post the viewer is allowed to see, with counters
	// and the viewer's like state filled in.
	Get(ctx context.Context, viewerID string, postID uint) (*Post, error)

	Update(ctx context.Context, userID string, postID uint, input UpdatePostInput) (*Post, error)
	Delete(ctx context.Context, userID string, postID uint) error

	// Feed returns approved posts visible to the viewer plus their own
	// pending ones: own posts, public posts, friends-only posts by
	// friends and posts in the viewer's societies or any public
	// society, newest first. Blocked authors are excluded.
	Feed(ctx context.Context, viewerID string, page, pageSize int) (*FeedPage, error)

	// ListByAuthor returns the author's posts the viewer may see.
	ListByAuthor(ctx context.Context, viewerID, authorID string, page, pageSize int) (*FeedPage, error)

	// ToggleLike likes an unliked post or removes an existing like.
	// Liking notifies the author. It returns the resulting like state.
	ToggleLike(ctx context.Context, userID string, postID uint) (bool, error)

	// Share creates a new post wrapping the shared one and notifies
	// the original author.
	Share(ctx context.Context, userID string, postID uint, content, privacy string) (*Post, error)

	// ShareBulk shares a post to the user's own feed and into each of
	// the given societies in one call. The original author is notified
	// once.
	ShareBulk(ctx context.Context, userID string, postID uint, content, privacy string, societyIDs []uint) ([]*Post, error)

	ListLikers(ctx context.Context, viewerID string, postID uint) ([]*accounts.User, error)
}

// CommentService defines comment authoring and reactions.
type CommentService interface {
	// Create adds a comment to a post the author may interact with.
	// A parent ID makes it a reply. The post author, and for replies
	// the parent comment's author, are notified.
	Create(ctx context.Context, authorID string, postID uint, parentID *uint, content string) (*Comment, error)

	// List returns top-level comments on a post, oldest first.
	List(ctx context.Context, viewerID string, postID uint, page, pageSize int) ([]*Comment, int64, error)

	// ListReplies returns the replies of a comment, oldest first.
	ListReplies(ctx context.Context, viewerID string, commentID uint) ([]*Comment, error)

	Update(ctx context.Context, userID string, commentID uint, content string) (*Comment, error)

	// Delete removes a comment. Allowed for the comment author, the
	// post author and society moderators.
	Delete(ctx context.Context, userID string, commentID uint) error

	ToggleLike(ctx context.Context, userID string, commentID uint) (bool, error)
}

// StoryFeedGroup is one author's active stories in the story feed.
type StoryFeedGroup struct {
	Author  *accounts.User
	Stories []*Story
}

// StoryService defines ephemeral story operations.
type StoryService interface {
	Create(ctx context.Context, authorID, content, privacy string, media []MediaInput) (*Story, error)

	// Get returns an unexpired story the viewer may see.
	Get(ctx context.Context, viewerID string, storyID uint) (*Story, error)

	Delete(ctx context.Context, userID string, storyID uint) error

	// Feed returns active stories grouped by author: the viewer's own
	// first, then public and friends' stories ordered by most recent.
	// Blocked authors are excluded.
	Feed(ctx context.Context, viewerID string) ([]*StoryFeedGroup, error)

	// MarkViewed records the viewer on the story, once. The author's
	// own views are not recorded.
	MarkViewed(ctx context.Context, viewerID string, storyID uint) error

	// ListViewers returns who saw the story. Author only.
	ListViewers(ctx context.Context, userID string, storyID uint) ([]*StoryView, error)
}

// CreateSocietyInput carries the fields accepted at society creation.
type CreateSocietyInput struct {
	Name        string
	Description string
	CoverImage  string
	Privacy     string
}

// UpdateSocietyInput carries the mutable society fields.
type UpdateSocietyInput struct {
	Name        *string
	Description *string
	CoverImage  *string
	Privacy     *string
}

// SocietyService defines society lifecycle, membership and moderation.
type SocietyService interface {
	// Create stores a society and enrolls the creator as admin.
	Create(ctx context.Context, creatorID string, input CreateSocietyInput) (*Society, error)

	// Get returns a society the viewer may see. Private societies are
	// visible to members only.
	Get(ctx context.Context, viewerID string, societyID uint) (*Society, error)

	// Update modifies a society. Admin only.
	Update(ctx context.Context, userID string, societyID uint, input UpdateSocietyInput) (*Society, error)

	// Delete removes a society and its memberships. Admin only.
	Delete(ctx context.Context, userID string, societyID uint) error

	// List returns public societies plus private ones the viewer
	// belongs to, optionally filtered by a name query.
	List(ctx context.Context, viewerID, query string, page, pageSize int) ([]*Society, int64, error)

	ListMine(ctx context.Context, userID string) ([]*Society, error)

	// Join enrolls the user and notifies the admins. Private societies
	// produce a pending membership awaiting moderator approval.
	Join(ctx context.Context, userID string, societyID uint) (*SocietyMembership, error)

	// Leave removes the membership. Leaving with a pending membership
	// withdraws the join request. The last admin cannot leave.
	Leave(ctx context.Context, userID string, societyID uint) error

	ListMembers(ctx context.Context, viewerID string, societyID uint) ([]*SocietyMembership, error)

	// PendingMembers returns join requests awaiting approval.
	// Moderators only.
	PendingMembers(ctx context.Context, userID string, societyID uint) ([]*SocietyMembership, error)

	// RespondMembership approves or rejects a pending join request.
	// Rejection deletes the request and returns nil.
	RespondMembership(ctx context.Context, userID string, societyID uint, memberID, action string) (*SocietyMembership, error)

	// SetRole changes a member's role. Admin only; a member cannot
	// change their own role.
	SetRole(ctx context.Context, userID string, societyID uint, memberID, role string) (*SocietyMembership, error)

	// RemoveMember expels a member. Admins and moderators may remove
	// plain members; only admins may remove moderators.
	RemoveMember(ctx context.Context, userID string, societyID uint, memberID string) error

	// Posts returns the society's approved posts, newest first.
	Posts(ctx context.Context, viewerID string, societyID uint, page, pageSize int) (*FeedPage, error)

	// PendingPosts returns posts awaiting moderation. Moderators only.
	PendingPosts(ctx context.Context, userID string, societyID uint) ([]*Post, error)

	// ModeratePost approves or rejects a pending society post and
	// notifies its author.
	ModeratePost(ctx context.Context, userID string, societyID, postID uint, action string) (*Post, error)
}

// BlockService defines user blocking.
type BlockService interface {
	// Block records a block and severs any friendship between the pair.
	// Blocking an already blocked user succeeds without effect.
	Block(ctx context.Context, blockerID, blockedID string) error

	Unblock(ctx context.Context, blockerID, blockedID string) error
	ListBlocked(ctx context.Context, blockerID string) ([]*accounts.User, error)

	// IsBlockedEither reports whether either user blocks the other.
	IsBlockedEither(ctx context.Context, userA, userB string) (bool, error)
}

// NotificationService defines reading and dismissing notifications.
type NotificationService interface {
	List(ctx context.Context, userID string, page, pageSize int) ([]*Notification, int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID string, notificationID uint) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string, notificationID uint) error
}

// Notifier creates notifications. Services fan out through it so
// delivery concerns stay out of the content logic.
type Notifier interface {
	Notify(ctx context.Context, notification *Notification) error
}

// FeedFilter narrows post queries to what a viewer may see.
type FeedFilter struct {
	ViewerID        string
	FriendIDs       []string
	SocietyIDs      []uint
	ExcludedUserIDs []string
	Page            int
	PageSize        int
}

// PostRepository defines persistence for posts and likes.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, postID uint) (*Post, error)
	UpdateByID(ctx context.Context, post *Post) error
	DeleteByID(ctx context.Context, postID uint) error

	// ListFeed returns approved posts matching the filter, newest
	// first, with the total count before paging.
	ListFeed(ctx context.Context, filter FeedFilter) ([]*Post, int64, error)

	// ListByAuthor returns the author's posts, restricted to the given
	// privacy levels unless the viewer is the author.
	ListByAuthor(ctx context.Context, authorID string, privacies []string, page, pageSize int) ([]*Post, int64, error)

	ListBySociety(ctx context.Context, societyID uint, status string, page, pageSize int) ([]*Post, int64, error)

	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	CountLikesReceived(ctx context.Context, authorID string) (int64, error)

	CreateLike(ctx context.Context, like *PostLike) error
	DeleteLike(ctx context.Context, postID uint, userID string) error
	HasLike(ctx context.Context, postID uint, userID string) (bool, error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
	ListLikers(ctx context.Context, postID uint) ([]*accounts.User, error)
	CountShares(ctx context.Context, postID uint) (int64, error)
}

// CommentRepository defines persistence for comments and comment likes.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	UpdateByID(ctx context.Context, comment *Comment) error
	DeleteByID(ctx context.Context, commentID uint) error

	ListTopLevel(ctx context.Context, postID uint, page, pageSize int) ([]*Comment, int64, error)
	ListReplies(ctx context.Context, parentID uint) ([]*Comment, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	CountReplies(ctx context.Context, parentID uint) (int64, error)

	CreateLike(ctx context.Context, like *CommentLike) error
	DeleteLike(ctx context.Context, commentID uint, userID string) error
	HasLike(ctx context.Context, commentID uint, userID string) (bool, error)
	CountLikes(ctx context.Context, commentID uint) (int64, error)
}

// StoryFeedFilter narrows story queries to what a viewer may see.
type StoryFeedFilter struct {
	ViewerID        string
	FriendIDs       []string
	ExcludedUserIDs []string
}

// StoryRepository defines persistence for stories and views.
type StoryRepository interface {
	Create(ctx context.Context, story *Story) error
	GetByID(ctx context.Context, storyID uint) (*Story, error)
	DeleteByID(ctx context.Context, storyID uint) error

	// ListActiveFeed returns unexpired stories visible to the viewer,
	// newest first: their own, public ones and friends-only ones by
	// friends. Authors in the exclusion set are dropped.
	ListActiveFeed(ctx context.Context, filter StoryFeedFilter) ([]*Story, error)

	CreateView(ctx context.Context, view *StoryView) error
	HasView(ctx context.Context, storyID uint, viewerID string) (bool, error)
	CountViews(ctx context.Context, storyID uint) (int64, error)
	ListViews(ctx context.Context, storyID uint) ([]*StoryView, error)

	// DeleteExpired removes stories past their expiry and returns how
	// many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// SocietyRepository defines persistence for societies and memberships.
type SocietyRepository interface {
	Create(ctx context.Context, society *Society) error
	GetByID(ctx context.Context, societyID uint) (*Society, error)
	GetByName(ctx context.Context, name string) (*Society, error)
	UpdateByID(ctx context.Context, society *Society) error
	DeleteByID(ctx context.Context, societyID uint) error

	// List returns societies visible to the member IDs constraint:
	// public ones plus private ones in memberSocietyIDs.
	List(ctx context.Context, query string, memberSocietyIDs []uint, page, pageSize int) ([]*Society, int64, error)

	CreateMembership(ctx context.Context, membership *SocietyMembership) error
	GetMembership(ctx context.Context, societyID uint, userID string) (*SocietyMembership, error)
	UpdateMembership(ctx context.Context, membership *SocietyMembership) error
	DeleteMembership(ctx context.Context, societyID uint, userID string) error

	// ListMemberships returns the society's memberships in the given
	// status, oldest first.
	ListMemberships(ctx context.Context, societyID uint, status string) ([]*SocietyMembership, error)

	// The membership queries below cover accepted memberships only.
	ListSocietiesForUser(ctx context.Context, userID string) ([]*Society, error)
	ListSocietyIDsForUser(ctx context.Context, userID string) ([]uint, error)
	CountMembers(ctx context.Context, societyID uint) (int64, error)
	CountAdmins(ctx context.Context, societyID uint) (int64, error)
	ListAdminIDs(ctx context.Context, societyID uint) ([]string, error)
}

// BlockRepository defines persistence for user blocks.
type BlockRepository interface {
	Create(ctx context.Context, block *UserBlock) error
	Delete(ctx context.Context, blockerID, blockedID string) error
	Exists(ctx context.Context, blockerID, blockedID string) (bool, error)
	ExistsEither(ctx context.Context, userA, userB string) (bool, error)
	ListBlockedIDs(ctx context.Context, blockerID string) ([]string, error)

	// ListInvolvedIDs returns users the given user blocks plus users
	// blocking them, for feed exclusion.
	ListInvolvedIDs(ctx context.Context, userID string) ([]string, error)
}

// NotificationRepository defines persistence for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, notificationID uint) (*Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, page, pageSize int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, notificationID uint) error
	MarkAllRead(ctx context.Context, recipientID string) error
	DeleteByID(ctx context.Context, notificationID uint) error
}
