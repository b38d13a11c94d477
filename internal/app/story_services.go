package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// storyService implements the StoryService interface
type storyService struct {
	storyRepo      social.StoryRepository
	friendshipRepo accounts.FriendshipRepository
	userRepo       accounts.UserRepository
	blockRepo      social.BlockRepository
	policy         *socialPolicy
	logger         logger.Logger
}

// NewStoryService creates a new instance of StoryService
func NewStoryService(
	storyRepo social.StoryRepository,
	friendshipRepo accounts.FriendshipRepository,
	userRepo accounts.UserRepository,
	blockRepo social.BlockRepository,
	societyRepo social.SocietyRepository,
	logger logger.Logger,
) (social.StoryService, error) {
	return &storyService{
		storyRepo:      storyRepo,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		blockRepo:      blockRepo,
		policy:         newSocialPolicy(friendshipRepo, blockRepo, societyRepo),
		logger:         logger,
	}, nil
}

func (s *storyService) Create(ctx context.Context, authorID, content, privacy string, media []social.MediaInput) (*social.Story, error) {
	if strings.TrimSpace(content) == "" && len(media) == 0 {
		return nil, fmt.Errorf("story needs content or media")
	}

	if privacy == "" {
		privacy = social.PrivacyFriends
	}
	if !validPrivacy(privacy) {
		return nil, fmt.Errorf("invalid privacy level: %s", privacy)
	}

	story := &social.Story{
		AuthorID:  authorID,
		Content:   content,
		Privacy:   privacy,
		ExpiresAt: time.Now().Add(social.StoryTTL),
	}
	for _, m := range media {
		story.Media = append(story.Media, social.StoryMedia{MediaURL: m.URL, MediaType: m.Type})
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *storyService) Get(ctx context.Context, viewerID string, storyID uint) (*social.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story.IsExpired() {
		return nil, fmt.Errorf("story %d: %w", storyID, social.ErrNotFound)
	}

	ok, err := s.policy.CanViewStory(ctx, viewerID, story)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("story %d: %w", storyID, social.ErrNotFound)
	}

	if story.ViewCount, err = s.storyRepo.CountViews(ctx, storyID); err != nil {
		return nil, err
	}
	if story.Viewed, err = s.storyRepo.HasView(ctx, storyID, viewerID); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, userID string, storyID uint) error {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if story.AuthorID != userID {
		return social.ErrForbidden
	}
	return s.storyRepo.DeleteByID(ctx, storyID)
}

func (s *storyService) Feed(ctx context.Context, viewerID string) ([]*social.StoryFeedGroup, error) {
	friendIDs, err := s.friendshipRepo.ListFriendIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	excluded, err := s.blockRepo.ListInvolvedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	stories, err := s.storyRepo.ListActiveFeed(ctx, social.StoryFeedFilter{
		ViewerID:        viewerID,
		FriendIDs:       friendIDs,
		ExcludedUserIDs: excluded,
	})
	if err != nil {
		return nil, err
	}

	// Group by author, keeping insertion order: the viewer first, then
	// other authors by most recent story.
	groupsByAuthor := make(map[string]*social.StoryFeedGroup)
	var ordered []*social.StoryFeedGroup
	for _, story := range stories {
		if story.ViewCount, err = s.storyRepo.CountViews(ctx, story.ID); err != nil {
			return nil, err
		}
		if story.Viewed, err = s.storyRepo.HasView(ctx, story.ID, viewerID); err != nil {
			return nil, err
		}

		group, ok := groupsByAuthor[story.AuthorID]
		if !ok {
			group = &social.StoryFeedGroup{Author: &story.Author}
			groupsByAuthor[story.AuthorID] = group
			if story.AuthorID == viewerID {
				ordered = append([]*social.StoryFeedGroup{group}, ordered...)
			} else {
				ordered = append(ordered, group)
			}
		}
		group.Stories = append(group.Stories, story)
	}
	return ordered, nil
}

func (s *storyService) MarkViewed(ctx context.Context, viewerID string, storyID uint) error {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if story.IsExpired() {
		return fmt.Errorf("story %d: %w", storyID, social.ErrNotFound)
	}
	// The author's own views are not recorded.
	if story.AuthorID == viewerID {
		return nil
	}

	ok, err := s.policy.CanViewStory(ctx, viewerID, story)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("story %d: %w", storyID, social.ErrNotFound)
	}

	viewed, err := s.storyRepo.HasView(ctx, storyID, viewerID)
	if err != nil {
		return err
	}
	if viewed {
		return nil
	}
	return s.storyRepo.CreateView(ctx, &social.StoryView{StoryID: storyID, ViewerID: viewerID})
}

func (s *storyService) ListViewers(ctx context.Context, userID string, storyID uint) ([]*social.StoryView, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story.AuthorID != userID {
		return nil, social.ErrForbidden
	}
	return s.storyRepo.ListViews(ctx, storyID)
}
