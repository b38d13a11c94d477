package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormStreamRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStreamRepository creates a new GORM-based StreamRepository implementation
func NewGormStreamRepository(db *gorm.DB, logger logger.Logger) (livestream.StreamRepository, error) {
	return &gormStreamRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStreamRepository) Create(ctx context.Context, stream *livestream.Stream) error {
	if err := r.db.WithContext(ctx).Create(stream).Error; err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	r.logger.Info("Created stream with id ", stream.ID)
	return nil
}

func (r *gormStreamRepository) GetByID(ctx context.Context, streamID uint) (*livestream.Stream, error) {
	var stream livestream.Stream
	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&stream, streamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stream %d: %w", streamID, livestream.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch stream: %w", err)
	}
	return &stream, nil
}

func (r *gormStreamRepository) UpdateByID(ctx context.Context, stream *livestream.Stream) error {
	if err := r.db.WithContext(ctx).Save(stream).Error; err != nil {
		return fmt.Errorf("failed to update stream: %w", err)
	}

	r.logger.Info("Updated stream with id ", stream.ID)
	return nil
}

func (r *gormStreamRepository) DeleteByID(ctx context.Context, streamID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stream_id = ?", streamID).Delete(&livestream.StreamComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stream_id = ?", streamID).Delete(&livestream.StreamView{}).Error; err != nil {
			return err
		}
		return tx.Delete(&livestream.Stream{}, streamID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete stream: %w", err)
	}

	r.logger.Info("Deleted stream with id ", streamID)
	return nil
}

func (r *gormStreamRepository) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]*livestream.Stream, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&livestream.Stream{}).
		Where("status = ?", status)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count streams: %w", err)
	}

	var streams []*livestream.Stream
	err := dbQuery.
		Preload("Owner").
		Order("started_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&streams).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch streams: %w", err)
	}
	return streams, total, nil
}

func (r *gormStreamRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*livestream.Stream, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&livestream.Stream{}).
		Where("owner_id = ?", ownerID)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count streams: %w", err)
	}

	var streams []*livestream.Stream
	err := dbQuery.
		Preload("Owner").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&streams).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch streams: %w", err)
	}
	return streams, total, nil
}

func (r *gormStreamRepository) CreateComment(ctx context.Context, comment *livestream.StreamComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create stream comment: %w", err)
	}
	return nil
}

func (r *gormStreamRepository) ListComments(ctx context.Context, streamID uint, limit int) ([]*livestream.StreamComment, error) {
	var comments []*livestream.StreamComment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("stream_id = ?", streamID).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stream comments: %w", err)
	}
	return comments, nil
}

func (r *gormStreamRepository) CreateView(ctx context.Context, view *livestream.StreamView) error {
	if err := r.db.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("failed to create stream view: %w", err)
	}
	return nil
}

func (r *gormStreamRepository) HasView(ctx context.Context, streamID uint, viewerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&livestream.StreamView{}).
		Where("stream_id = ? AND viewer_id = ?", streamID, viewerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check stream view: %w", err)
	}
	return count > 0, nil
}

func (r *gormStreamRepository) CountViews(ctx context.Context, streamID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&livestream.StreamView{}).
		Where("stream_id = ?", streamID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count stream views: %w", err)
	}
	return count, nil
}

func (r *gormStreamRepository) CountActiveViews(ctx context.Context, streamID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&livestream.StreamView{}).
		Where("stream_id = ? AND left_at IS NULL", streamID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active stream views: %w", err)
	}
	return count, nil
}

func (r *gormStreamRepository) ReopenView(ctx context.Context, streamID uint, viewerID string) error {
	err := r.db.WithContext(ctx).Model(&livestream.StreamView{}).
		Where("stream_id = ? AND viewer_id = ?", streamID, viewerID).
		Update("left_at", nil).Error
	if err != nil {
		return fmt.Errorf("failed to reopen stream view: %w", err)
	}
	return nil
}

func (r *gormStreamRepository) CloseView(ctx context.Context, streamID uint, viewerID string) error {
	err := r.db.WithContext(ctx).Model(&livestream.StreamView{}).
		Where("stream_id = ? AND viewer_id = ? AND left_at IS NULL", streamID, viewerID).
		Update("left_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("failed to close stream view: %w", err)
	}
	return nil
}
