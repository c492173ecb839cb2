package service

import (
	"context"
	"fmt"
	"strings"

	errs "keysecurity/internal/errors"
	"keysecurity/internal/model"
	"keysecurity/internal/repository"
)

// GroupService handles password-group operations, all scoped to the
// authenticated owner.
type GroupService interface {
	Create(ctx context.Context, ownerID uint, name string, category *string) (*model.PasswordGroup, error)
	Update(ctx context.Context, ownerID, id uint, name string, category *string) (*model.PasswordGroup, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService creates a new group service.
func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

// Create stores a group for the caller. The owner id always comes from
// the resolved identity, never from the request body.
func (s *groupService) Create(ctx context.Context, ownerID uint, name string, category *string) (*model.PasswordGroup, error) {
	name, category = normalizeGroupInput(name, category)
	if name == "" {
		return nil, errs.ErrGroupNameRequired
	}

	group := &model.PasswordGroup{
		UserID:   ownerID,
		Name:     name,
		Category: category,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// Update rewrites name and category. The ownership predicate rides in
// the UPDATE itself; zero affected rows is reported as not found whether
// the group is absent or owned by someone else.
func (s *groupService) Update(ctx context.Context, ownerID, id uint, name string, category *string) (*model.PasswordGroup, error) {
	if id == 0 {
		return nil, errs.ErrInvalidID
	}
	name, category = normalizeGroupInput(name, category)
	if name == "" {
		return nil, errs.ErrGroupNameRequired
	}

	affected, err := s.groupRepo.UpdateOwned(ctx, id, ownerID, name, category)
	if err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	if affected == 0 {
		return nil, errs.ErrGroupNotFound
	}

	return &model.PasswordGroup{ID: id, UserID: ownerID, Name: name, Category: category}, nil
}

// Delete removes the group and, through the cascade, its items.
func (s *groupService) Delete(ctx context.Context, ownerID, id uint) error {
	if id == 0 {
		return errs.ErrInvalidID
	}

	affected, err := s.groupRepo.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if affected == 0 {
		return errs.ErrGroupNotFound
	}
	return nil
}

func normalizeGroupInput(name string, category *string) (string, *string) {
	name = strings.TrimSpace(name)
	if category != nil {
		trimmed := strings.TrimSpace(*category)
		if trimmed == "" {
			category = nil
		} else {
			category = &trimmed
		}
	}
	return name, category
}
