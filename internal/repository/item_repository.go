package repository

import (
	"context"

	"gorm.io/gorm"

	"keysecurity/internal/model"
)

// ItemRepository defines password-item persistence operations. Items
// have no owner column; ownership is enforced through the parent group
// with a subquery folded into every scoped statement.
type ItemRepository interface {
	Create(ctx context.Context, item *model.PasswordItem) error
	FindOwned(ctx context.Context, id, ownerID uint) (*model.PasswordItem, error)
	ListByGroupIDs(ctx context.Context, groupIDs []uint) ([]model.PasswordItem, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, item *model.PasswordItem) (int64, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds a GORM-backed repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ownedScope(ctx context.Context, id, ownerID uint) *gorm.DB {
	sub := r.db.Model(&model.PasswordGroup{}).Select("id").Where("user_id = ?", ownerID)
	return r.db.WithContext(ctx).Where("id = ? AND group_id IN (?)", id, sub)
}

func (r *itemRepository) Create(ctx context.Context, item *model.PasswordItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindOwned(ctx context.Context, id, ownerID uint) (*model.PasswordItem, error) {
	var item model.PasswordItem
	if err := r.ownedScope(ctx, id, ownerID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) ListByGroupIDs(ctx context.Context, groupIDs []uint) ([]model.PasswordItem, error) {
	var items []model.PasswordItem
	err := r.db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateOwned rewrites the item's fields in one statement scoped through
// the owning group. Zero affected rows means absent or foreign-owned.
// The group_id is never updated; items do not move between groups.
func (r *itemRepository) UpdateOwned(ctx context.Context, id, ownerID uint, item *model.PasswordItem) (int64, error) {
	res := r.ownedScope(ctx, id, ownerID).
		Model(&model.PasswordItem{}).
		Updates(map[string]interface{}{
			"username": item.Username,
			"email":    item.Email,
			"password": item.Password,
			"note":     item.Note,
		})
	return res.RowsAffected, res.Error
}

func (r *itemRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	res := r.ownedScope(ctx, id, ownerID).Delete(&model.PasswordItem{})
	return res.RowsAffected, res.Error
}
