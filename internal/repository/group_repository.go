package repository

import (
	"context"

	"gorm.io/gorm"

	"keysecurity/internal/model"
)

// GroupRepository defines password-group persistence operations. Every
// read and mutation carries the owner id in its predicate; callers
// branch on the returned row counts instead of probing first, so there
// is no check-then-act window between ownership check and mutation.
type GroupRepository interface {
	Create(ctx context.Context, group *model.PasswordGroup) error
	FindOwned(ctx context.Context, id, ownerID uint) (*model.PasswordGroup, error)
	ExistsOwned(ctx context.Context, id, ownerID uint) (bool, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.PasswordGroup, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, name string, category *string) (int64, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository builds a GORM-backed repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *model.PasswordGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) FindOwned(ctx context.Context, id, ownerID uint) (*model.PasswordGroup, error) {
	var group model.PasswordGroup
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) ExistsOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PasswordGroup{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *groupRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.PasswordGroup, error) {
	var groups []model.PasswordGroup
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// UpdateOwned updates name and category in one statement scoped to the
// owner. Zero affected rows means absent or foreign-owned.
func (r *groupRepository) UpdateOwned(ctx context.Context, id, ownerID uint, name string, category *string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.PasswordGroup{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]interface{}{"name": name, "category": category})
	return res.RowsAffected, res.Error
}

// DeleteOwned deletes the group (items go with it via the FK cascade).
func (r *groupRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.PasswordGroup{})
	return res.RowsAffected, res.Error
}
