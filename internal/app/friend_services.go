package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// Friend request response actions
const (
	FriendActionAccept = "accept"
	FriendActionReject = "reject"
)

// friendService implements the FriendService interface
type friendService struct {
	friendshipRepo accounts.FriendshipRepository
	userRepo       accounts.UserRepository
	blockRepo      social.BlockRepository
	chatRepo       chat.ChatRepository
	notifier       social.Notifier
	logger         logger.Logger
}

// NewFriendService creates a new instance of FriendService
func NewFriendService(
	friendshipRepo accounts.FriendshipRepository,
	userRepo accounts.UserRepository,
	blockRepo social.BlockRepository,
	chatRepo chat.ChatRepository,
	notifier social.Notifier,
	logger logger.Logger,
) (accounts.FriendService, error) {
	return &friendService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		blockRepo:      blockRepo,
		chatRepo:       chatRepo,
		notifier:       notifier,
		logger:         logger,
	}, nil
}

func (s *friendService) SendRequest(ctx context.Context, requesterID, receiverID string) (*accounts.Friendship, error) {
	if requesterID == receiverID {
		return nil, fmt.Errorf("cannot befriend yourself: %w", accounts.ErrForbidden)
	}

	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if !receiver.IsActive {
		return nil, fmt.Errorf("user %s: %w", receiverID, accounts.ErrNotFound)
	}

	blocked, err := s.blockRepo.ExistsEither(ctx, requesterID, receiverID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("user %s: %w", receiverID, accounts.ErrNotFound)
	}

	existing, err := s.friendshipRepo.GetByPair(ctx, requesterID, receiverID)
	if err == nil {
		if existing.Status == accounts.FriendshipStatusAccepted {
			return nil, fmt.Errorf("already friends: %w", accounts.ErrForbidden)
		}
		return nil, fmt.Errorf("request already exists: %w", accounts.ErrForbidden)
	}
	if !errors.Is(err, accounts.ErrNotFound) {
		return nil, err
	}

	friendship := &accounts.Friendship{
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		Status:      accounts.FriendshipStatusPending,
	}
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: receiverID,
		ActorID:     requesterID,
		Type:        social.NotificationFriendRequest,
		Message:     "sent you a friend request",
	}); err != nil {
		s.logger.Warn("Failed to notify friend request: ", err)
	}
	return friendship, nil
}

func (s *friendService) ListIncoming(ctx context.Context, userID string) ([]*accounts.Friendship, error) {
	return s.friendshipRepo.ListPendingForReceiver(ctx, userID)
}

func (s *friendService) Respond(ctx context.Context, userID, requesterID, action string) (*accounts.Friendship, error) {
	friendship, err := s.friendshipRepo.GetPending(ctx, requesterID, userID)
	if err != nil {
		return nil, err
	}

	switch action {
	case FriendActionAccept:
		friendship.Status = accounts.FriendshipStatusAccepted
		if err := s.friendshipRepo.UpdateByID(ctx, friendship); err != nil {
			return nil, err
		}

		if err := s.ensureConversation(ctx, userID, requesterID); err != nil {
			s.logger.Warn("Failed to ensure conversation: ", err)
		}

		if err := s.notifier.Notify(ctx, &social.Notification{
			RecipientID: requesterID,
			ActorID:     userID,
			Type:        social.NotificationFriendAccept,
			Message:     "accepted your friend request",
		}); err != nil {
			s.logger.Warn("Failed to notify friend accept: ", err)
		}
		return friendship, nil

	case FriendActionReject:
		if err := s.friendshipRepo.DeleteByID(ctx, friendship.ID); err != nil {
			return nil, err
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown action %q: %w", action, accounts.ErrForbidden)
	}
}

// ensureConversation opens the private chat for a fresh friendship.
func (s *friendService) ensureConversation(ctx context.Context, userA, userB string) error {
	_, err := s.chatRepo.GetConversationByPair(ctx, userA, userB)
	if err == nil {
		return nil
	}
	if !errors.Is(err, chat.ErrNotFound) {
		return err
	}

	a, err := s.userRepo.GetByID(ctx, userA)
	if err != nil {
		return err
	}
	b, err := s.userRepo.GetByID(ctx, userB)
	if err != nil {
		return err
	}

	conversation := &chat.Conversation{}
	conversation.Participants = append(conversation.Participants, *a, *b)
	return s.chatRepo.CreateConversation(ctx, conversation)
}

func (s *friendService) ListFriends(ctx context.Context, userID string) ([]*accounts.Friendship, error) {
	return s.friendshipRepo.ListAcceptedForUser(ctx, userID)
}

func (s *friendService) Unfriend(ctx context.Context, userID, otherID string) error {
	friendship, err := s.friendshipRepo.GetByPair(ctx, userID, otherID)
	if err != nil {
		return err
	}
	if friendship.Status != accounts.FriendshipStatusAccepted {
		return fmt.Errorf("not friends: %w", accounts.ErrForbidden)
	}
	return s.friendshipRepo.DeleteByID(ctx, friendship.ID)
}

func (s *friendService) Suggestions(ctx context.Context, userID string, limit int) ([]*accounts.User, error) {
	if limit <= 0 {
		limit = 20
	}

	linked, err := s.friendshipRepo.ListLinkedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	blocked, err := s.blockRepo.ListInvolvedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	excluded := make([]string, 0, len(linked)+len(blocked)+1)
	excluded = append(excluded, userID)
	excluded = append(excluded, linked...)
	excluded = append(excluded, blocked...)

	return s.userRepo.ListActiveExcluding(ctx, excluded, limit)
}

func (s *friendService) Status(ctx context.Context, userID, otherID string) (string, error) {
	friendship, err := s.friendshipRepo.GetByPair(ctx, userID, otherID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return accounts.FriendshipNone, nil
		}
		return "", err
	}

	if friendship.Status == accounts.FriendshipStatusAccepted {
		return accounts.FriendshipFriends, nil
	}
	if friendship.RequesterID == userID {
		return accounts.FriendshipPendingSent, nil
	}
	return accounts.FriendshipPendingReceived, nil
}
