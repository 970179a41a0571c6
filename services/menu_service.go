package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"table-order/models"
	"table-order/repositories"
	"table-order/utils"
)

type MenuService struct {
	menus      MenuStore
	categories CategoryStore
	cache      MenuCache
	uploader   ImageUploader
}

// NewMenuService accepts nil cache and uploader; listing is then uncached and image upload
// reports ErrUploadUnavailable.
func NewMenuService(menus MenuStore, categories CategoryStore, cache MenuCache, uploader ImageUploader) *MenuService {
	if cache == nil {
		cache = noopMenuCache{}
	}
	return &MenuService{menus: menus, categories: categories, cache: cache, uploader: uploader}
}

func menuCacheKey(filter models.MenuFilter) string {
	category, available := "all", "all"
	if filter.CategoryID != nil {
		category = strconv.FormatInt(*filter.CategoryID, 10)
	}
	if filter.Available != nil {
		available = strconv.FormatBool(*filter.Available)
	}
	return "category=" + category + ":available=" + available
}

func (s *MenuService) List(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error) {
	key := menuCacheKey(filter)
	if menus, ok := s.cache.Get(ctx, key); ok {
		return menus, nil
	}

	menus, err := s.menus.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, menus)
	return menus, nil
}

func (s *MenuService) Get(ctx context.Context, id int64) (*models.Menu, error) {
	return s.menus.FindByID(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, req models.CreateMenuRequest) (*models.Menu, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil || req.CategoryID == 0 {
		return nil, invalid("", "Name, price, and category are required.")
	}

	menu := &models.Menu{
		Name:        name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}

	if err := s.validate(ctx, menu); err != nil {
		return nil, err
	}
	if err := s.menus.Create(ctx, menu); err != nil {
		return nil, s.storeError("create menu", err)
	}

	s.cache.Invalidate(ctx)
	return s.menus.FindByID(ctx, menu.ID)
}

func (s *MenuService) Update(ctx context.Context, id int64, req models.UpdateMenuRequest) (*models.Menu, error) {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		menu.Name = strings.TrimSpace(*req.Name)
		if menu.Name == "" {
			return nil, invalid("name", "menu name must not be empty")
		}
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.Image != nil {
		menu.Image = *req.Image
	}
	if req.CategoryID != nil {
		menu.CategoryID = *req.CategoryID
	}
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}

	if err := s.validate(ctx, menu); err != nil {
		return nil, err
	}
	if err := s.menus.Update(ctx, menu); err != nil {
		return nil, s.storeError("update menu", err)
	}

	s.cache.Invalidate(ctx)
	return s.menus.FindByID(ctx, id)
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if err := s.menus.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

// UploadImage stores the file with the configured uploader and saves its URL on the menu.
func (s *MenuService) UploadImage(ctx context.Context, id int64, file io.Reader, filename string) (*models.Menu, error) {
	if s.uploader == nil {
		return nil, ErrUploadUnavailable
	}

	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	publicID := utils.ImagePublicID(fmt.Sprintf("menu_%d_%d", id, time.Now().Unix()), filename)

	url, err := s.uploader.UploadImage(ctx, file, publicID)
	if err != nil {
		return nil, fmt.Errorf("upload menu image: %w", err)
	}

	menu.Image = url
	if err := s.menus.Update(ctx, menu); err != nil {
		return nil, s.storeError("update menu image", err)
	}

	s.cache.Invalidate(ctx)
	return menu, nil
}

func (s *MenuService) validate(ctx context.Context, menu *models.Menu) error {
	if menu.Price < 0 {
		return invalid("price", "price must not be negative")
	}
	if menu.Price > MaxPrice {
		return invalid("price", "price must not exceed %.2f", MaxPrice)
	}
	if _, err := s.categories.FindByID(ctx, menu.CategoryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return invalid("category", "category %d does not exist", menu.CategoryID)
		}
		return fmt.Errorf("load category: %w", err)
	}
	return nil
}

func (s *MenuService) storeError(op string, err error) error {
	if errors.Is(err, repositories.ErrInUse) {
		return invalid("category", "category does not exist")
	}
	if errors.Is(err, repositories.ErrOutOfRange) {
		return invalid("price", "price must not exceed %.2f", MaxPrice)
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
