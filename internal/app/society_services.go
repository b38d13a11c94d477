package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// Society post moderation actions
const (
	ModerationApprove = "approve"
	ModerationReject  = "reject"
)

// societyService implements the SocietyService interface
type societyService struct {
	societyRepo social.SocietyRepository
	postRepo    social.PostRepository
	notifier    social.Notifier
	policy      *socialPolicy
	logger      logger.Logger
}

// NewSocietyService creates a new instance of SocietyService
func NewSocietyService(
	societyRepo social.SocietyRepository,
	postRepo social.PostRepository,
	friendshipRepo accounts.FriendshipRepository,
	blockRepo social.BlockRepository,
	notifier social.Notifier,
	logger logger.Logger,
) (social.SocietyService, error) {
	return &societyService{
		societyRepo: societyRepo,
		postRepo:    postRepo,
		notifier:    notifier,
		policy:      newSocialPolicy(friendshipRepo, blockRepo, societyRepo),
		logger:      logger,
	}, nil
}

func validSocietyPrivacy(privacy string) bool {
	return privacy == social.SocietyPublic || privacy == social.SocietyPrivate
}

func (s *societyService) Create(ctx context.Context, creatorID string, input social.CreateSocietyInput) (*social.Society, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("society name is required")
	}

	privacy := input.Privacy
	if privacy == "" {
		privacy = social.SocietyPublic
	}
	if !validSocietyPrivacy(privacy) {
		return nil, fmt.Errorf("invalid privacy level: %s", privacy)
	}

	_, err := s.societyRepo.GetByName(ctx, input.Name)
	if err == nil {
		return nil, social.ErrAlreadyExists
	}
	if !errors.Is(err, social.ErrNotFound) {
		return nil, err
	}

	society := &social.Society{
		Name:        input.Name,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Privacy:     privacy,
		CreatorID:   creatorID,
	}
	if err := s.societyRepo.Create(ctx, society); err != nil {
		return nil, err
	}

	// The creator starts as admin.
	if err := s.societyRepo.CreateMembership(ctx, &social.SocietyMembership{
		SocietyID: society.ID,
		UserID:    creatorID,
		Role:      social.RoleAdmin,
		Status:    social.MembershipAccepted,
	}); err != nil {
		return nil, err
	}

	society.Role = social.RoleAdmin
	society.MemberCount = 1
	return society, nil
}

// decorate fills the member count and the viewer's role.
func (s *societyService) decorate(ctx context.Context, viewerID string, society *social.Society) (*social.Society, error) {
	var err error
	if society.MemberCount, err = s.societyRepo.CountMembers(ctx, society.ID); err != nil {
		return nil, err
	}

	membership, err := s.societyRepo.GetMembership(ctx, society.ID, viewerID)
	if err != nil {
		if !errors.Is(err, social.ErrNotFound) {
			return nil, err
		}
	} else {
		society.Role = membership.Role
	}
	return society, nil
}

func (s *societyService) Get(ctx context.Context, viewerID string, societyID uint) (*social.Society, error) {
	society, err := s.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return nil, err
	}

	ok, err := s.policy.CanViewSociety(ctx, viewerID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("society %d: %w", societyID, social.ErrNotFound)
	}
	return s.decorate(ctx, viewerID, society)
}

func (s *societyService) Update(ctx context.Context, userID string, societyID uint, input social.UpdateSocietyInput) (*social.Society, error) {
	ok, err := s.policy.CanManageSociety(ctx, userID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, social.ErrForbidden
	}

	society, err := s.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != society.Name {
		_, err := s.societyRepo.GetByName(ctx, *input.Name)
		if err == nil {
			return nil, social.ErrAlreadyExists
		}
		if !errors.Is(err, social.ErrNotFound) {
			return nil, err
		}
		society.Name = *input.Name
	}
	if input.Description != nil {
		society.Description = *input.Description
	}
	if input.CoverImage != nil {
		society.CoverImage = *input.CoverImage
	}
	if input.Privacy != nil {
		if !validSocietyPrivacy(*input.Privacy) {
			return nil, fmt.Errorf("invalid privacy level: %s", *input.Privacy)
		}
		society.Privacy = *input.Privacy
	}

	if err := s.societyRepo.UpdateByID(ctx, society); err != nil {
		return nil, err
	}
	return s.decorate(ctx, userID, society)
}

func (s *societyService) Delete(ctx context.Context, userID string, societyID uint) error {
	ok, err := s.policy.CanManageSociety(ctx, userID, societyID)
	if err != nil {
		return err
	}
	if !ok {
		return social.ErrForbidden
	}
	return s.societyRepo.DeleteByID(ctx, societyID)
}

func (s *societyService) List(ctx context.Context, viewerID, query string, page, pageSize int) ([]*social.Society, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	memberIDs, err := s.societyRepo.ListSocietyIDsForUser(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}

	societies, total, err := s.societyRepo.List(ctx, query, memberIDs, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for _, society := range societies {
		if _, err := s.decorate(ctx, viewerID, society); err != nil {
			return nil, 0, err
		}
	}
	return societies, total, nil
}

func (s *societyService) ListMine(ctx context.Context, userID string) ([]*social.Society, error) {
	societies, err := s.societyRepo.ListSocietiesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, society := range societies {
		if _, err := s.decorate(ctx, userID, society); err != nil {
			return nil, err
		}
	}
	return societies, nil
}

func (s *societyService) Join(ctx context.Context, userID string, societyID uint) (*social.SocietyMembership, error) {
	society, err := s.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return nil, err
	}

	_, err = s.societyRepo.GetMembership(ctx, societyID, userID)
	if err == nil {
		return nil, social.ErrAlreadyMember
	}
	if !errors.Is(err, social.ErrNotFound) {
		return nil, err
	}

	// Private societies gate entry behind moderator approval.
	status := social.MembershipAccepted
	message := "joined your society"
	if society.Privacy == social.SocietyPrivate {
		status = social.MembershipPending
		message = "requested to join your society"
	}

	membership := &social.SocietyMembership{
		SocietyID: societyID,
		UserID:    userID,
		Role:      social.RoleMember,
		Status:    status,
	}
	if err := s.societyRepo.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}

	adminIDs, err := s.societyRepo.ListAdminIDs(ctx, societyID)
	if err != nil {
		s.logger.Warn("Failed to list society admins: ", err)
		return membership, nil
	}
	for _, adminID := range adminIDs {
		if err := s.notifier.Notify(ctx, &social.Notification{
			RecipientID: adminID,
			ActorID:     userID,
			Type:        social.NotificationSocietyJoin,
			Message:     message,
			SocietyID:   &societyID,
		}); err != nil {
			s.logger.Warn("Failed to notify society join: ", err)
		}
	}
	return membership, nil
}

func (s *societyService) Leave(ctx context.Context, userID string, societyID uint) error {
	membership, err := s.societyRepo.GetMembership(ctx, societyID, userID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return social.ErrNotMember
		}
		return err
	}

	// The last admin cannot abandon the society.
	if membership.Role == social.RoleAdmin {
		admins, err := s.societyRepo.CountAdmins(ctx, societyID)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return fmt.Errorf("the last admin cannot leave: %w", social.ErrForbidden)
		}
	}
	return s.societyRepo.DeleteMembership(ctx, societyID, userID)
}

func (s *societyService) ListMembers(ctx context.Context, viewerID string, societyID uint) ([]*social.SocietyMembership, error) {
	ok, err := s.policy.CanViewSociety(ctx, viewerID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("society %d: %w", societyID, social.ErrNotFound)
	}
	return s.societyRepo.ListMemberships(ctx, societyID, social.MembershipAccepted)
}

func (s *societyService) PendingMembers(ctx context.Context, userID string, societyID uint) ([]*social.SocietyMembership, error) {
	ok, err := s.policy.CanModerateSociety(ctx, userID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, social.ErrForbidden
	}
	return s.societyRepo.ListMemberships(ctx, societyID, social.MembershipPending)
}

func (s *societyService) RespondMembership(ctx context.Context, userID string, societyID uint, memberID, action string) (*social.SocietyMembership, error) {
	ok, err := s.policy.CanModerateSociety(ctx, userID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, social.ErrForbidden
	}

	membership, err := s.societyRepo.GetMembership(ctx, societyID, memberID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return nil, social.ErrNotMember
		}
		return nil, err
	}
	if membership.Status != social.MembershipPending {
		return nil, fmt.Errorf("membership of %s is not pending", memberID)
	}

	switch action {
	case ModerationApprove:
		membership.Status = social.MembershipAccepted
		if err := s.societyRepo.UpdateMembership(ctx, membership); err != nil {
			return nil, err
		}
		if err := s.notifier.Notify(ctx, &social.Notification{
			RecipientID: memberID,
			ActorID:     userID,
			Type:        social.NotificationSocietyApproved,
			Message:     "approved your join request",
			SocietyID:   &societyID,
		}); err != nil {
			s.logger.Warn("Failed to notify membership approval: ", err)
		}
		return membership, nil
	case ModerationReject:
		return nil, s.societyRepo.DeleteMembership(ctx, societyID, memberID)
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}

func validRole(role string) bool {
	switch role {
	case social.RoleAdmin, social.RoleModerator, social.RoleMember:
		return true
	}
	return false
}

func (s *societyService) SetRole(ctx context.Context, userID string, societyID uint, memberID, role string) (*social.SocietyMembership, error) {
	if !validRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if userID == memberID {
		return nil, fmt.Errorf("cannot change own role: %w", social.ErrForbidden)
	}

	ok, err := s.policy.CanManageSociety(ctx, userID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, social.ErrForbidden
	}

	membership, err := s.societyRepo.GetMembership(ctx, societyID, memberID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return nil, social.ErrNotMember
		}
		return nil, err
	}

	// Demoting the last admin would orphan the society.
	if membership.Role == social.RoleAdmin && role != social.RoleAdmin {
		admins, err := s.societyRepo.CountAdmins(ctx, societyID)
		if err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, fmt.Errorf("cannot demote the last admin: %w", social.ErrForbidden)
		}
	}

	membership.Role = role
	if err := s.societyRepo.UpdateMembership(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (s *societyService) RemoveMember(ctx context.Context, userID string, societyID uint, memberID string) error {
	if userID == memberID {
		return fmt.Errorf("use leave instead: %w", social.ErrForbidden)
	}

	actor, err := s.societyRepo.GetMembership(ctx, societyID, userID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return social.ErrForbidden
		}
		return err
	}
	if !actor.CanModerate() {
		return social.ErrForbidden
	}

	target, err := s.societyRepo.GetMembership(ctx, societyID, memberID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return social.ErrNotMember
		}
		return err
	}

	// Moderators may only remove plain members; admins are untouchable.
	if target.Role == social.RoleAdmin {
		return social.ErrForbidden
	}
	if target.Role == social.RoleModerator && actor.Role != social.RoleAdmin {
		return social.ErrForbidden
	}
	return s.societyRepo.DeleteMembership(ctx, societyID, memberID)
}

func (s *societyService) Posts(ctx context.Context, viewerID string, societyID uint, page, pageSize int) (*social.FeedPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	ok, err := s.policy.CanViewSociety(ctx, viewerID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("society %d: %w", societyID, social.ErrNotFound)
	}

	posts, total, err := s.postRepo.ListBySociety(ctx, societyID, social.PostStatusApproved, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &social.FeedPage{Posts: posts, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *societyService) PendingPosts(ctx context.Context, userID string, societyID uint) ([]*social.Post, error) {
	ok, err := s.policy.CanModerateSociety(ctx, userID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, social.ErrForbidden
	}

	posts, _, err := s.postRepo.ListBySociety(ctx, societyID, social.PostStatusPending, 1, 100)
	return posts, err
}

func (s *societyService) ModeratePost(ctx context.Context, userID string, societyID, postID uint, action string) (*social.Post, error) {
	ok, err := s.policy.CanModerateSociety(ctx, userID, societyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, social.ErrForbidden
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.SocietyID == nil || *post.SocietyID != societyID {
		return nil, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}
	if post.Status != social.PostStatusPending {
		return nil, fmt.Errorf("post %d is not pending", postID)
	}

	var notificationType, message string
	switch action {
	case ModerationApprove:
		post.Status = social.PostStatusApproved
		notificationType = social.NotificationPostApproved
		message = "approved your post"
	case ModerationReject:
		post.Status = social.PostStatusRejected
		notificationType = social.NotificationPostRejected
		message = "rejected your post"
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}

	if err := s.postRepo.UpdateByID(ctx, post); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: post.AuthorID,
		ActorID:     userID,
		Type:        notificationType,
		Message:     message,
		PostID:      &postID,
		SocietyID:   &societyID,
	}); err != nil {
		s.logger.Warn("Failed to notify moderation: ", err)
	}
	return post, nil
}
