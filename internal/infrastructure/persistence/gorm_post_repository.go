package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPostRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPostRepository creates a new GORM-based PostRepository implementation
func NewGormPostRepository(db *gorm.DB, logger logger.Logger) (social.PostRepository, error) {
	return &gormPostRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPostRepository) Create(ctx context.Context, post *social.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.logger.Info("Created post with id ", post.ID)
	return nil
}

func (r *gormPostRepository) GetByID(ctx context.Context, postID uint) (*social.Post, error) {
	var post social.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Media").
		Preload("SharedPost").
		Preload("SharedPost.Author").
		Preload("SharedPost.Media").
		First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return &post, nil
}

func (r *gormPostRepository) UpdateByID(ctx context.Context, post *social.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	r.logger.Info("Updated post with id ", post.ID)
	return nil
}

func (r *gormPostRepository) DeleteByID(ctx context.Context, postID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&social.PostMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&social.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&social.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&social.Post{}, postID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	r.logger.Info("Deleted post with id ", postID)
	return nil
}

// ListFeed composes the visibility query: the viewer's own posts,
// public posts, friends-only posts by friends and approved posts in
// the viewer's societies or any public society. Only approved posts
// are listed, except the viewer's own pending ones. Authors in the
// exclusion set are dropped.
func (r *gormPostRepository) ListFeed(ctx context.Context, filter social.FeedFilter) ([]*social.Post, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&social.Post{}).
		Where("status = ? OR (author_id = ? AND status = ?)",
			social.PostStatusApproved, filter.ViewerID, social.PostStatusPending)

	publicSocieties := r.db.Model(&social.Society{}).
		Select("id").
		Where("privacy = ?", social.SocietyPublic)

	visibility := r.db.Where("author_id = ?", filter.ViewerID).
		Or("privacy = ? AND society_id IS NULL", social.PrivacyPublic).
		Or("society_id IN (?)", publicSocieties)
	if len(filter.FriendIDs) > 0 {
		visibility = visibility.Or("privacy = ? AND author_id IN ?", social.PrivacyFriends, filter.FriendIDs)
	}
	if len(filter.SocietyIDs) > 0 {
		visibility = visibility.Or("society_id IN ?", filter.SocietyIDs)
	}
	dbQuery = dbQuery.Where(visibility)

	if len(filter.ExcludedUserIDs) > 0 {
		dbQuery = dbQuery.Where("author_id NOT IN ?", filter.ExcludedUserIDs)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feed posts: %w", err)
	}

	var posts []*social.Post
	err := dbQuery.
		Preload("Author").
		Preload("Media").
		Preload("SharedPost").
		Preload("SharedPost.Author").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch feed posts: %w", err)
	}
	return posts, total, nil
}

func (r *gormPostRepository) ListByAuthor(ctx context.Context, authorID string, privacies []string, page, pageSize int) ([]*social.Post, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&social.Post{}).
		Where("author_id = ? AND status = ?", authorID, social.PostStatusApproved)
	if len(privacies) > 0 {
		dbQuery = dbQuery.Where("privacy IN ?", privacies)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var posts []*social.Post
	err := dbQuery.
		Preload("Author").
		Preload("Media").
		Preload("SharedPost").
		Preload("SharedPost.Author").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch posts: %w", err)
	}
	return posts, total, nil
}

func (r *gormPostRepository) ListBySociety(ctx context.Context, societyID uint, status string, page, pageSize int) ([]*social.Post, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&social.Post{}).
		Where("society_id = ? AND status = ?", societyID, status)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count society posts: %w", err)
	}

	var posts []*social.Post
	err := dbQuery.
		Preload("Author").
		Preload("Media").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch society posts: %w", err)
	}
	return posts, total, nil
}

func (r *gormPostRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.Post{}).
		Where("author_id = ? AND status = ?", authorID, social.PostStatusApproved).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func (r *gormPostRepository) CountLikesReceived(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.PostLike{}).
		Joins("JOIN posts ON posts.id = post_likes.post_id").
		Where("posts.author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count received likes: %w", err)
	}
	return count, nil
}

func (r *gormPostRepository) CreateLike(ctx context.Context, like *social.PostLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return fmt.Errorf("failed to create post like: %w", err)
	}
	return nil
}

func (r *gormPostRepository) DeleteLike(ctx context.Context, postID uint, userID string) error {
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&social.PostLike{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete post like: %w", err)
	}
	return nil
}

func (r *gormPostRepository) HasLike(ctx context.Context, postID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check post like: %w", err)
	}
	return count > 0, nil
}

func (r *gormPostRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count post likes: %w", err)
	}
	return count, nil
}

func (r *gormPostRepository) ListLikers(ctx context.Context, postID uint) ([]*accounts.User, error) {
	var users []*accounts.User
	err := r.db.WithContext(ctx).Model(&accounts.User{}).
		Joins("JOIN post_likes ON post_likes.user_id = users.id").
		Where("post_likes.post_id = ?", postID).
		Order("post_likes.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list post likers: %w", err)
	}
	return users, nil
}

func (r *gormPostRepository) CountShares(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.Post{}).
		Where("shared_post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count shares: %w", err)
	}
	return count, nil
}
