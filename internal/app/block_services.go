package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// blockService implements the BlockService interface
type blockService struct {
	blockRepo      social.BlockRepository
	friendshipRepo accounts.FriendshipRepository
	userRepo       accounts.UserRepository
	logger         logger.Logger
}

// NewBlockService creates a new instance of BlockService
func NewBlockService(
	blockRepo social.BlockRepository,
	friendshipRepo accounts.FriendshipRepository,
	userRepo accounts.UserRepository,
	logger logger.Logger,
) (social.BlockService, error) {
	return &blockService{
		blockRepo:      blockRepo,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}, nil
}

func (s *blockService) Block(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == blockedID {
		return social.ErrCannotBlockSelf
	}

	if _, err := s.userRepo.GetByID(ctx, blockedID); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return fmt.Errorf("user %s: %w", blockedID, social.ErrNotFound)
		}
		return err
	}

	// Blocking twice is a no-op.
	exists, err := s.blockRepo.Exists(ctx, blockerID, blockedID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.blockRepo.Create(ctx, &social.UserBlock{
		BlockerID: blockerID,
		BlockedID: blockedID,
	}); err != nil {
		return err
	}

	// Blocking severs any friendship or pending request.
	return s.friendshipRepo.DeleteByPair(ctx, blockerID, blockedID)
}

func (s *blockService) Unblock(ctx context.Context, blockerID, blockedID string) error {
	exists, err := s.blockRepo.Exists(ctx, blockerID, blockedID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("block: %w", social.ErrNotFound)
	}
	return s.blockRepo.Delete(ctx, blockerID, blockedID)
}

func (s *blockService) ListBlocked(ctx context.Context, blockerID string) ([]*accounts.User, error) {
	ids, err := s.blockRepo.ListBlockedIDs(ctx, blockerID)
	if err != nil {
		return nil, err
	}

	users := make([]*accounts.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, accounts.ErrNotFound) {
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *blockService) IsBlockedEither(ctx context.Context, userA, userB string) (bool, error) {
	return s.blockRepo.ExistsEither(ctx, userA, userB)
}
