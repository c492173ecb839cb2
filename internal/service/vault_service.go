package service

import (
	"context"
	"fmt"

	"keysecurity/internal/model"
	"keysecurity/internal/repository"
)

// VaultGroup is one node of the listing tree: a group with its items
// nested under it. Items is always non-nil so empty groups serialize as
// an empty array.
type VaultGroup struct {
	ID    uint                 `json:"id"`
	Name  string               `json:"name"`
	Type  *string              `json:"type"`
	Items []model.PasswordItem `json:"items"`
}

// VaultService assembles the caller's full group/item tree.
type VaultService interface {
	List(ctx context.Context, ownerID uint) ([]VaultGroup, error)
}

type vaultService struct {
	groupRepo repository.GroupRepository
	itemRepo  repository.ItemRepository
}

// NewVaultService creates a new vault service.
func NewVaultService(groupRepo repository.GroupRepository, itemRepo repository.ItemRepository) VaultService {
	return &vaultService{
		groupRepo: groupRepo,
		itemRepo:  itemRepo,
	}
}

// List loads the caller's groups (newest first) and their items, joined
// in memory via a map keyed by group id. Group query order is preserved.
func (s *vaultService) List(ctx context.Context, ownerID uint) ([]VaultGroup, error) {
	groups, err := s.groupRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if len(groups) == 0 {
		return []VaultGroup{}, nil
	}

	groupIDs := make([]uint, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
	}

	items, err := s.itemRepo.ListByGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	tree := make([]VaultGroup, 0, len(groups))
	index := make(map[uint]int, len(groups))
	for i, g := range groups {
		tree = append(tree, VaultGroup{
			ID:    g.ID,
			Name:  g.Name,
			Type:  g.Category,
			Items: []model.PasswordItem{},
		})
		index[g.ID] = i
	}
	for _, item := range items {
		if i, ok := index[item.GroupID]; ok {
			tree[i].Items = append(tree[i].Items, item)
		}
	}

	return tree, nil
}
