package catalog

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCatalog(ctx context.Context) (Catalog, error) {
	return s.repo.FetchCatalog(ctx)
}

// AddItem validates and inserts an admin-supplied dish.
func (s *Service) AddItem(
	ctx context.Context,
	name string,
	category Category,
) (*MenuItem, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("dish name is required")
	}
	if _, ok := UnitPrices[category]; !ok {
		return nil, errors.New("unknown category")
	}

	exists, err := s.repo.VerifyItem(ctx, name, category)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("dish already exists in this category")
	}

	return s.repo.AddItem(ctx, name, category)
}

func (s *Service) RemoveItem(ctx context.Context, id int) error {
	return s.repo.RemoveItem(ctx, id)
}
