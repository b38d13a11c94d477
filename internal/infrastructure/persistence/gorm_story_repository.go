package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormStoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStoryRepository creates a new GORM-based StoryRepository implementation
func NewGormStoryRepository(db *gorm.DB, logger logger.Logger) (social.StoryRepository, error) {
	return &gormStoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStoryRepository) Create(ctx context.Context, story *social.Story) error {
	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return fmt.Errorf("failed to create story: %w", err)
	}

	r.logger.Info("Created story with id ", story.ID)
	return nil
}

func (r *gormStoryRepository) GetByID(ctx context.Context, storyID uint) (*social.Story, error) {
	var story social.Story
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Media").
		First(&story, storyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("story %d: %w", storyID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch story: %w", err)
	}
	return &story, nil
}

func (r *gormStoryRepository) DeleteByID(ctx context.Context, storyID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", storyID).Delete(&social.StoryMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_id = ?", storyID).Delete(&social.StoryView{}).Error; err != nil {
			return err
		}
		return tx.Delete(&social.Story{}, storyID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}

	r.logger.Info("Deleted story with id ", storyID)
	return nil
}

// ListActiveFeed composes the story visibility query: the viewer's own
// stories, public stories and friends-only stories by friends. Authors
// in the exclusion set are dropped.
func (r *gormStoryRepository) ListActiveFeed(ctx context.Context, filter social.StoryFeedFilter) ([]*social.Story, error) {
	visibility := r.db.Where("author_id = ?", filter.ViewerID).
		Or("privacy = ?", social.PrivacyPublic)
	if len(filter.FriendIDs) > 0 {
		visibility = visibility.Or("privacy = ? AND author_id IN ?", social.PrivacyFriends, filter.FriendIDs)
	}

	dbQuery := r.db.WithContext(ctx).
		Where("expires_at > ?", time.Now()).
		Where(visibility)
	if len(filter.ExcludedUserIDs) > 0 {
		dbQuery = dbQuery.Where("author_id NOT IN ?", filter.ExcludedUserIDs)
	}

	var stories []*social.Story
	err := dbQuery.
		Preload("Author").
		Preload("Media").
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

func (r *gormStoryRepository) CreateView(ctx context.Context, view *social.StoryView) error {
	if err := r.db.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("failed to create story view: %w", err)
	}
	return nil
}

func (r *gormStoryRepository) HasView(ctx context.Context, storyID uint, viewerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.StoryView{}).
		Where("story_id = ? AND viewer_id = ?", storyID, viewerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check story view: %w", err)
	}
	return count > 0, nil
}

func (r *gormStoryRepository) CountViews(ctx context.Context, storyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.StoryView{}).
		Where("story_id = ?", storyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count story views: %w", err)
	}
	return count, nil
}

func (r *gormStoryRepository) ListViews(ctx context.Context, storyID uint) ([]*social.StoryView, error) {
	var views []*social.StoryView
	err := r.db.WithContext(ctx).
		Preload("Viewer").
		Where("story_id = ?", storyID).
		Order("created_at DESC").
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list story views: %w", err)
	}
	return views, nil
}

func (r *gormStoryRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&social.Story{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired stories: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Deleted expired stories: ", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
