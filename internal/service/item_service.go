package service

import (
	"context"
	"fmt"
	"strings"

	errs "keysecurity/internal/errors"
	"keysecurity/internal/model"
	"keysecurity/internal/repository"
)

// ItemInput carries the free-text fields of a password item.
type ItemInput struct {
	GroupID  uint
	Username *string
	Email    *string
	Password string
	Note     *string
}

// ItemService handles password-item operations. Ownership is enforced
// transitively through the parent group.
type ItemService interface {
	Create(ctx context.Context, ownerID uint, input ItemInput) (*model.PasswordItem, error)
	Update(ctx context.Context, ownerID, id uint, input ItemInput) (*model.PasswordItem, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type itemService struct {
	groupRepo repository.GroupRepository
	itemRepo  repository.ItemRepository
}

// NewItemService creates a new item service.
func NewItemService(groupRepo repository.GroupRepository, itemRepo repository.ItemRepository) ItemService {
	return &itemService{
		groupRepo: groupRepo,
		itemRepo:  itemRepo,
	}
}

// Create stores an item after verifying the target group belongs to the
// caller. A foreign or absent group reads as not found so existence is
// never revealed to non-owners.
func (s *itemService) Create(ctx context.Context, ownerID uint, input ItemInput) (*model.PasswordItem, error) {
	input = normalizeItemInput(input)
	if input.GroupID == 0 {
		return nil, errs.ErrGroupIDRequired
	}
	if input.Password == "" {
		return nil, errs.ErrItemPasswordRequired
	}

	owned, err := s.groupRepo.ExistsOwned(ctx, input.GroupID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check group: %w", err)
	}
	if !owned {
		return nil, errs.ErrGroupNotFound
	}

	item := &model.PasswordItem{
		GroupID:  input.GroupID,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Note:     input.Note,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Update rewrites the item's fields in one owner-scoped statement and
// returns the stored row.
func (s *itemService) Update(ctx context.Context, ownerID, id uint, input ItemInput) (*model.PasswordItem, error) {
	if id == 0 {
		return nil, errs.ErrInvalidID
	}
	input = normalizeItemInput(input)
	if input.Password == "" {
		return nil, errs.ErrItemPasswordRequired
	}

	item := &model.PasswordItem{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Note:     input.Note,
	}
	affected, err := s.itemRepo.UpdateOwned(ctx, id, ownerID, item)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if affected == 0 {
		return nil, errs.ErrItemNotFound
	}

	updated, err := s.itemRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reload item: %w", err)
	}
	return updated, nil
}

// Delete removes the item through the owner-scoped predicate.
func (s *itemService) Delete(ctx context.Context, ownerID, id uint) error {
	if id == 0 {
		return errs.ErrInvalidID
	}

	affected, err := s.itemRepo.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return errs.ErrItemNotFound
	}
	return nil
}

func normalizeItemInput(input ItemInput) ItemInput {
	input.Username = trimToNil(input.Username)
	input.Email = trimToNil(input.Email)
	input.Note = trimToNil(input.Note)
	input.Password = strings.TrimSpace(input.Password)
	return input
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
