package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
)

// socialPolicy centralizes the visibility and moderation rules shared
// by the content services.
type socialPolicy struct {
	friendshipRepo accounts.FriendshipRepository
	blockRepo      social.BlockRepository
	societyRepo    social.SocietyRepository
}

func newSocialPolicy(
	friendshipRepo accounts.FriendshipRepository,
	blockRepo social.BlockRepository,
	societyRepo social.SocietyRepository,
) *socialPolicy {
	return &socialPolicy{
		friendshipRepo: friendshipRepo,
		blockRepo:      blockRepo,
		societyRepo:    societyRepo,
	}
}

// AreFriends reports whether the pair has an accepted friendship.
func (p *socialPolicy) AreFriends(ctx context.Context, userA, userB string) (bool, error) {
	friendship, err := p.friendshipRepo.GetByPair(ctx, userA, userB)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return friendship.Status == accounts.FriendshipStatusAccepted, nil
}

// CanInteract reports whether neither user blocks the other.
func (p *socialPolicy) CanInteract(ctx context.Context, userA, userB string) (bool, error) {
	if userA == userB {
		return true, nil
	}
	blocked, err := p.blockRepo.ExistsEither(ctx, userA, userB)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

// CanViewPost applies the full post visibility rule set: blocks in
// either direction hide the post, privacy restricts by relationship
// and society posts require the society to be visible to the viewer.
func (p *socialPolicy) CanViewPost(ctx context.Context, viewerID string, post *social.Post) (bool, error) {
	if post.AuthorID == viewerID {
		return true, nil
	}

	ok, err := p.CanInteract(ctx, viewerID, post.AuthorID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if post.Status != social.PostStatusApproved {
		// Pending and rejected posts stay visible to moderators of the
		// society they were submitted to.
		if post.SocietyID != nil {
			return p.CanModerateSociety(ctx, viewerID, *post.SocietyID)
		}
		return false, nil
	}

	if post.SocietyID != nil {
		return p.CanViewSociety(ctx, viewerID, *post.SocietyID)
	}

	switch post.Privacy {
	case social.PrivacyPublic:
		return true, nil
	case social.PrivacyFriends:
		return p.AreFriends(ctx, viewerID, post.AuthorID)
	case social.PrivacyPrivate:
		return false, nil
	default:
		return false, fmt.Errorf("unknown privacy level: %s", post.Privacy)
	}
}

// CanDeletePost allows the author and, for society posts, moderators.
func (p *socialPolicy) CanDeletePost(ctx context.Context, userID string, post *social.Post) (bool, error) {
	if post.AuthorID == userID {
		return true, nil
	}
	if post.SocietyID != nil {
		return p.CanModerateSociety(ctx, userID, *post.SocietyID)
	}
	return false, nil
}

// CanViewSociety allows everyone into public societies and members
// into private ones.
func (p *socialPolicy) CanViewSociety(ctx context.Context, userID string, societyID uint) (bool, error) {
	society, err := p.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return false, err
	}
	if society.Privacy == social.SocietyPublic {
		return true, nil
	}
	return p.isMember(ctx, userID, societyID)
}

// CanModerateSociety allows admins and moderators.
func (p *socialPolicy) CanModerateSociety(ctx context.Context, userID string, societyID uint) (bool, error) {
	membership, err := p.societyRepo.GetMembership(ctx, societyID, userID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.CanModerate(), nil
}

// CanManageSociety allows admins only.
func (p *socialPolicy) CanManageSociety(ctx context.Context, userID string, societyID uint) (bool, error) {
	membership, err := p.societyRepo.GetMembership(ctx, societyID, userID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.IsAccepted() && membership.Role == social.RoleAdmin, nil
}

// CanViewStory mirrors post visibility for the story privacy levels.
func (p *socialPolicy) CanViewStory(ctx context.Context, viewerID string, story *social.Story) (bool, error) {
	if story.AuthorID == viewerID {
		return true, nil
	}

	ok, err := p.CanInteract(ctx, viewerID, story.AuthorID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	switch story.Privacy {
	case social.PrivacyPublic:
		return true, nil
	case social.PrivacyFriends:
		return p.AreFriends(ctx, viewerID, story.AuthorID)
	case social.PrivacyPrivate:
		return false, nil
	default:
		return false, fmt.Errorf("unknown privacy level: %s", story.Privacy)
	}
}

func (p *socialPolicy) isMember(ctx context.Context, userID string, societyID uint) (bool, error) {
	membership, err := p.societyRepo.GetMembership(ctx, societyID, userID)
	if err != nil {
		if errors.Is(err, social.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.IsAccepted(), nil
}
