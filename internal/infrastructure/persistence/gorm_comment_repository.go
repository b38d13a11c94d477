package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCommentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCommentRepository creates a new GORM-based CommentRepository implementation
func NewGormCommentRepository(db *gorm.DB, logger logger.Logger) (social.CommentRepository, error) {
	return &gormCommentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *social.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	r.logger.Info("Created comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) GetByID(ctx context.Context, commentID uint) (*social.Comment, error) {
	var comment social.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", commentID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return &comment, nil
}

func (r *gormCommentRepository) UpdateByID(ctx context.Context, comment *social.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	r.logger.Info("Updated comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) DeleteByID(ctx context.Context, commentID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", commentID).Delete(&social.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", commentID).Delete(&social.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&social.Comment{}, commentID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	r.logger.Info("Deleted comment with id ", commentID)
	return nil
}

func (r *gormCommentRepository) ListTopLevel(ctx context.Context, postID uint, page, pageSize int) ([]*social.Comment, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&social.Comment{}).
		Where("post_id = ? AND parent_id IS NULL", postID)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var comments []*social.Comment
	err := dbQuery.
		Preload("Author").
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch comments: %w", err)
	}
	return comments, total, nil
}

func (r *gormCommentRepository) ListReplies(ctx context.Context, parentID uint) ([]*social.Comment, error) {
	var comments []*social.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	return comments, nil
}

func (r *gormCommentRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

func (r *gormCommentRepository) CountReplies(ctx context.Context, parentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.Comment{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count replies: %w", err)
	}
	return count, nil
}

func (r *gormCommentRepository) CreateLike(ctx context.Context, like *social.CommentLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return fmt.Errorf("failed to create comment like: %w", err)
	}
	return nil
}

func (r *gormCommentRepository) DeleteLike(ctx context.Context, commentID uint, userID string) error {
	err := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&social.CommentLike{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete comment like: %w", err)
	}
	return nil
}

func (r *gormCommentRepository) HasLike(ctx context.Context, commentID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check comment like: %w", err)
	}
	return count > 0, nil
}

func (r *gormCommentRepository) CountLikes(ctx context.Context, commentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count comment likes: %w", err)
	}
	return count, nil
}
