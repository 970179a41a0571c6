package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"table-order/models"
	"table-order/repositories"
)

type CategoryService struct {
	categories CategoryStore
	menus      MenuStore
	cache      MenuCache
}

func NewCategoryService(categories CategoryStore, menus MenuStore, cache MenuCache) *CategoryService {
	if cache == nil {
		cache = noopMenuCache{}
	}
	return &CategoryService{categories: categories, menus: menus, cache: cache}
}

func (s *CategoryService) List(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	return s.categories.FindAll(ctx, filter)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "Category name is required.")
	}

	category := &models.Category{
		Name:        name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, invalid("name", "category %q already exists", name)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalid("name", "category name must not be empty")
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, invalid("name", "category %q already exists", category.Name)
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	// menu lists embed the category name
	s.cache.Invalidate(ctx)
	return category, nil
}

// Delete refuses while any menu still points at the category.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.menus.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count category menus: %w", err)
	}
	if inUse > 0 {
		return &ValidationError{
			Message: fmt.Sprintf("Cannot delete category. %d menu(s) are using this category.", inUse),
		}
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInUse) {
			return &ValidationError{Message: "Cannot delete category. Menus are using this category."}
		}
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
