package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// postService implements the PostService interface
type postService struct {
	postRepo       social.PostRepository
	societyRepo    social.SocietyRepository
	friendshipRepo accounts.FriendshipRepository
	blockRepo      social.BlockRepository
	notifier       social.Notifier
	policy         *socialPolicy
	logger         logger.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(
	postRepo social.PostRepository,
	societyRepo social.SocietyRepository,
	friendshipRepo accounts.FriendshipRepository,
	blockRepo social.BlockRepository,
	notifier social.Notifier,
	logger logger.Logger,
) (social.PostService, error) {
	return &postService{
		postRepo:       postRepo,
		societyRepo:    societyRepo,
		friendshipRepo: friendshipRepo,
		blockRepo:      blockRepo,
		notifier:       notifier,
		policy:         newSocialPolicy(friendshipRepo, blockRepo, societyRepo),
		logger:         logger,
	}, nil
}

func validPrivacy(privacy string) bool {
	switch privacy {
	case social.PrivacyPublic, social.PrivacyFriends, social.PrivacyPrivate:
		return true
	}
	return false
}

func (s *postService) Create(ctx context.Context, authorID string, input social.CreatePostInput) (*social.Post, error) {
	if strings.TrimSpace(input.Content) == "" && len(input.Media) == 0 && input.SharedPostID == nil {
		return nil, fmt.Errorf("post needs content, media or a shared post")
	}

	privacy := input.Privacy
	if privacy == "" {
		privacy = social.PrivacyPublic
	}
	if !validPrivacy(privacy) {
		return nil, fmt.Errorf("invalid privacy level: %s", privacy)
	}

	status := social.PostStatusApproved
	if input.SocietyID != nil {
		membership, err := s.societyRepo.GetMembership(ctx, *input.SocietyID, authorID)
		if err != nil {
			return nil, fmt.Errorf("not a society member: %w", social.ErrForbidden)
		}
		// Plain member posts wait for moderation.
		if !membership.CanModerate() {
			status = social.PostStatusPending
		}
	}

	if input.SharedPostID != nil {
		shared, err := s.postRepo.GetByID(ctx, *input.SharedPostID)
		if err != nil {
			return nil, err
		}
		ok, err := s.policy.CanViewPost(ctx, authorID, shared)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("shared post %d: %w", *input.SharedPostID, social.ErrNotFound)
		}
	}

	post := &social.Post{
		AuthorID:     authorID,
		Content:      input.Content,
		Privacy:      privacy,
		Status:       status,
		SocietyID:    input.SocietyID,
		SharedPostID: input.SharedPostID,
	}
	for _, m := range input.Media {
		post.Media = append(post.Media, social.PostMedia{MediaURL: m.URL, MediaType: m.Type})
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	if input.SocietyID != nil && status == social.PostStatusPending {
		s.notifySocietyAdmins(ctx, *input.SocietyID, authorID)
	}
	return s.decorate(ctx, authorID, post)
}

// notifySocietyAdmins tells moderable members a post awaits review.
func (s *postService) notifySocietyAdmins(ctx context.Context, societyID uint, actorID string) {
	adminIDs, err := s.societyRepo.ListAdminIDs(ctx, societyID)
	if err != nil {
		s.logger.Warn("Failed to list society admins: ", err)
		return
	}
	for _, adminID := range adminIDs {
		if err := s.notifier.Notify(ctx, &social.Notification{
			RecipientID: adminID,
			ActorID:     actorID,
			Type:        social.NotificationSocietyPost,
			Message:     "submitted a post for review",
			SocietyID:   &societyID,
		}); err != nil {
			s.logger.Warn("Failed to notify society admin: ", err)
		}
	}
}

// decorate fills the transient counters and the viewer's like state.
func (s *postService) decorate(ctx context.Context, viewerID string, post *social.Post) (*social.Post, error) {
	var err error
	if post.LikeCount, err = s.postRepo.CountLikes(ctx, post.ID); err != nil {
		return nil, err
	}
	if post.ShareCount, err = s.postRepo.CountShares(ctx, post.ID); err != nil {
		return nil, err
	}
	if post.Liked, err = s.postRepo.HasLike(ctx, post.ID, viewerID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, viewerID string, postID uint) (*social.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ok, err := s.policy.CanViewPost(ctx, viewerID, post)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}
	return s.decorate(ctx, viewerID, post)
}

func (s *postService) Update(ctx context.Context, userID string, postID uint, input social.UpdatePostInput) (*social.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, social.ErrForbidden
	}

	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Privacy != nil {
		if !validPrivacy(*input.Privacy) {
			return nil, fmt.Errorf("invalid privacy level: %s", *input.Privacy)
		}
		post.Privacy = *input.Privacy
	}

	if err := s.postRepo.UpdateByID(ctx, post); err != nil {
		return nil, err
	}
	return s.decorate(ctx, userID, post)
}

func (s *postService) Delete(ctx context.Context, userID string, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	ok, err := s.policy.CanDeletePost(ctx, userID, post)
	if err != nil {
		return err
	}
	if !ok {
		return social.ErrForbidden
	}
	return s.postRepo.DeleteByID(ctx, postID)
}

func (s *postService) Feed(ctx context.Context, viewerID string, page, pageSize int) (*social.FeedPage, error) {
	// The feed pages smaller than the other listings.
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	friendIDs, err := s.friendshipRepo.ListFriendIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	societyIDs, err := s.societyRepo.ListSocietyIDsForUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	excluded, err := s.blockRepo.ListInvolvedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	posts, total, err := s.postRepo.ListFeed(ctx, social.FeedFilter{
		ViewerID:        viewerID,
		FriendIDs:       friendIDs,
		SocietyIDs:      societyIDs,
		ExcludedUserIDs: excluded,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if _, err := s.decorate(ctx, viewerID, post); err != nil {
			return nil, err
		}
	}
	return &social.FeedPage{Posts: posts, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *postService) ListByAuthor(ctx context.Context, viewerID, authorID string, page, pageSize int) (*social.FeedPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	privacies := []string{social.PrivacyPublic}
	if viewerID != authorID {
		ok, err := s.policy.CanInteract(ctx, viewerID, authorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("user %s: %w", authorID, social.ErrNotFound)
		}

		friends, err := s.policy.AreFriends(ctx, viewerID, authorID)
		if err != nil {
			return nil, err
		}
		if friends {
			privacies = append(privacies, social.PrivacyFriends)
		}
	} else {
		// The author sees everything they wrote.
		privacies = nil
	}

	posts, total, err := s.postRepo.ListByAuthor(ctx, authorID, privacies, page, pageSize)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if _, err := s.decorate(ctx, viewerID, post); err != nil {
			return nil, err
		}
	}
	return &social.FeedPage{Posts: posts, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *postService) ToggleLike(ctx context.Context, userID string, postID uint) (bool, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}

	ok, err := s.policy.CanViewPost(ctx, userID, post)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}

	liked, err := s.postRepo.HasLike(ctx, postID, userID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.postRepo.DeleteLike(ctx, postID, userID)
	}

	if err := s.postRepo.CreateLike(ctx, &social.PostLike{PostID: postID, UserID: userID}); err != nil {
		return false, err
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: post.AuthorID,
		ActorID:     userID,
		Type:        social.NotificationLike,
		Message:     "liked your post",
		PostID:      &postID,
	}); err != nil {
		s.logger.Warn("Failed to notify like: ", err)
	}
	return true, nil
}

func (s *postService) Share(ctx context.Context, userID string, postID uint, content, privacy string) (*social.Post, error) {
	shared, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ok, err := s.policy.CanViewPost(ctx, userID, shared)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}

	// Sharing a share points at the original.
	targetID := shared.ID
	if shared.SharedPostID != nil {
		targetID = *shared.SharedPostID
	}

	post, err := s.Create(ctx, userID, social.CreatePostInput{
		Content:      content,
		Privacy:      privacy,
		SharedPostID: &targetID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: shared.AuthorID,
		ActorID:     userID,
		Type:        social.NotificationShare,
		Message:     "shared your post",
		PostID:      &targetID,
	}); err != nil {
		s.logger.Warn("Failed to notify share: ", err)
	}
	return post, nil
}

func (s *postService) ShareBulk(ctx context.Context, userID string, postID uint, content, privacy string, societyIDs []uint) ([]*social.Post, error) {
	shared, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ok, err := s.policy.CanViewPost(ctx, userID, shared)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}

	targetID := shared.ID
	if shared.SharedPostID != nil {
		targetID = *shared.SharedPostID
	}

	posts := make([]*social.Post, 0, len(societyIDs)+1)

	post, err := s.Create(ctx, userID, social.CreatePostInput{
		Content:      content,
		Privacy:      privacy,
		SharedPostID: &targetID,
	})
	if err != nil {
		return nil, err
	}
	posts = append(posts, post)

	for _, societyID := range societyIDs {
		id := societyID
		post, err := s.Create(ctx, userID, social.CreatePostInput{
			Content:      content,
			Privacy:      social.PrivacyPublic,
			SocietyID:    &id,
			SharedPostID: &targetID,
		})
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: shared.AuthorID,
		ActorID:     userID,
		Type:        social.NotificationShare,
		Message:     "shared your post",
		PostID:      &targetID,
	}); err != nil {
		s.logger.Warn("Failed to notify share: ", err)
	}
	return posts, nil
}

func (s *postService) ListLikers(ctx context.Context, viewerID string, postID uint) ([]*accounts.User, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ok, err := s.policy.CanViewPost(ctx, viewerID, post)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}
	return s.postRepo.ListLikers(ctx, postID)
}
