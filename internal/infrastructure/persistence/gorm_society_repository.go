package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSocietyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSocietyRepository creates a new GORM-based SocietyRepository implementation
func NewGormSocietyRepository(db *gorm.DB, logger logger.Logger) (social.SocietyRepository, error) {
	return &gormSocietyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSocietyRepository) Create(ctx context.Context, society *social.Society) error {
	if err := r.db.WithContext(ctx).Create(society).Error; err != nil {
		return fmt.Errorf("failed to create society: %w", err)
	}

	r.logger.Info("Created society with id ", society.ID)
	return nil
}

func (r *gormSocietyRepository) GetByID(ctx context.Context, societyID uint) (*social.Society, error) {
	var society social.Society
	err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&society, societyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("society %d: %w", societyID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch society: %w", err)
	}
	return &society, nil
}

func (r *gormSocietyRepository) GetByName(ctx context.Context, name string) (*social.Society, error) {
	var society social.Society
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&society).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("society %q: %w", name, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch society: %w", err)
	}
	return &society, nil
}

func (r *gormSocietyRepository) UpdateByID(ctx context.Context, society *social.Society) error {
	if err := r.db.WithContext(ctx).Save(society).Error; err != nil {
		return fmt.Errorf("failed to update society: %w", err)
	}

	r.logger.Info("Updated society with id ", society.ID)
	return nil
}

func (r *gormSocietyRepository) DeleteByID(ctx context.Context, societyID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("society_id = ?", societyID).Delete(&social.SocietyMembership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&social.Society{}, societyID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete society: %w", err)
	}

	r.logger.Info("Deleted society with id ", societyID)
	return nil
}

func (r *gormSocietyRepository) List(ctx context.Context, query string, memberSocietyIDs []uint, page, pageSize int) ([]*social.Society, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&social.Society{})

	if len(memberSocietyIDs) > 0 {
		dbQuery = dbQuery.Where("privacy = ? OR id IN ?", social.SocietyPublic, memberSocietyIDs)
	} else {
		dbQuery = dbQuery.Where("privacy = ?", social.SocietyPublic)
	}
	if query != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query+"%")
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count societies: %w", err)
	}

	var societies []*social.Society
	err := dbQuery.
		Preload("Creator").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&societies).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch societies: %w", err)
	}
	return societies, total, nil
}

func (r *gormSocietyRepository) CreateMembership(ctx context.Context, membership *social.SocietyMembership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	r.logger.Info("Created membership for user ", membership.UserID, " in society ", membership.SocietyID)
	return nil
}

func (r *gormSocietyRepository) GetMembership(ctx context.Context, societyID uint, userID string) (*social.SocietyMembership, error) {
	var membership social.SocietyMembership
	err := r.db.WithContext(ctx).
		Where("society_id = ? AND user_id = ?", societyID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("membership in society %d: %w", societyID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}
	return &membership, nil
}

func (r *gormSocietyRepository) UpdateMembership(ctx context.Context, membership *social.SocietyMembership) error {
	if err := r.db.WithContext(ctx).Save(membership).Error; err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}
	return nil
}

func (r *gormSocietyRepository) DeleteMembership(ctx context.Context, societyID uint, userID string) error {
	err := r.db.WithContext(ctx).
		Where("society_id = ? AND user_id = ?", societyID, userID).
		Delete(&social.SocietyMembership{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	r.logger.Info("Deleted membership for user ", userID, " in society ", societyID)
	return nil
}

func (r *gormSocietyRepository) ListMemberships(ctx context.Context, societyID uint, status string) ([]*social.SocietyMembership, error) {
	var memberships []*social.SocietyMembership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("society_id = ? AND status = ?", societyID, status).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

func (r *gormSocietyRepository) ListSocietiesForUser(ctx context.Context, userID string) ([]*social.Society, error) {
	var societies []*social.Society
	err := r.db.WithContext(ctx).Model(&social.Society{}).
		Joins("JOIN society_memberships ON society_memberships.society_id = societies.id").
		Where("society_memberships.user_id = ? AND society_memberships.status = ?", userID, social.MembershipAccepted).
		Order("societies.name ASC").
		Find(&societies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list societies for user: %w", err)
	}
	return societies, nil
}

func (r *gormSocietyRepository) ListSocietyIDsForUser(ctx context.Context, userID string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&social.SocietyMembership{}).
		Where("user_id = ? AND status = ?", userID, social.MembershipAccepted).
		Pluck("society_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list society ids: %w", err)
	}
	return ids, nil
}

func (r *gormSocietyRepository) CountMembers(ctx context.Context, societyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.SocietyMembership{}).
		Where("society_id = ? AND status = ?", societyID, social.MembershipAccepted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

func (r *gormSocietyRepository) CountAdmins(ctx context.Context, societyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.SocietyMembership{}).
		Where("society_id = ? AND role = ? AND status = ?", societyID, social.RoleAdmin, social.MembershipAccepted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func (r *gormSocietyRepository) ListAdminIDs(ctx context.Context, societyID uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&social.SocietyMembership{}).
		Where("society_id = ? AND role = ? AND status = ?", societyID, social.RoleAdmin, social.MembershipAccepted).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list admin ids: %w", err)
	}
	return ids, nil
}
