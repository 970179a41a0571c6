package services

import (
	"context"
	"io"
	"time"

	"table-order/models"
	"table-order/repositories"
)

// Store interfaces are satisfied by the repositories package and by in-memory fakes in tests.

type CategoryStore interface {
	FindAll(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type MenuStore interface {
	FindAll(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error)
	FindByID(ctx context.Context, id int64) (*models.Menu, error)
	Create(ctx context.Context, m *models.Menu) error
	Update(ctx context.Context, m *models.Menu) error
	Delete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Counts(ctx context.Context) (total, available int, err error)
}

type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	FindAll(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
	Recent(ctx context.Context, limit int) ([]models.Order, error)
	CountByStatus(ctx context.Context) (models.OrderStats, error)
	SummarySince(ctx context.Context, since time.Time) (count int, revenue float64, err error)
	PopularItems(ctx context.Context, limit int) ([]models.PopularItem, error)
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type TableStore interface {
	FindAll(ctx context.Context) ([]models.Table, error)
	FindByQRCode(ctx context.Context, qrCode string) (*models.Table, error)
	Upsert(ctx context.Context, t *models.Table) (bool, error)
}

// MenuCache holds menu list results. Implementations must treat failures as misses.
type MenuCache interface {
	Get(ctx context.Context, key string) ([]models.Menu, bool)
	Set(ctx context.Context, key string, menus []models.Menu)
	Invalidate(ctx context.Context)
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, publicID string) (string, error)
}

type noopMenuCache struct{}

func (noopMenuCache) Get(context.Context, string) ([]models.Menu, bool) { return nil, false }
func (noopMenuCache) Set(context.Context, string, []models.Menu) {}
func (noopMenuCache) Invalidate(context.Context) {}

var (
	_ CategoryStore = (*repositories.CategoryRepository)(nil)
	_ MenuStore     = (*repositories.MenuRepository)(nil)
	_ OrderStore    = (*repositories.OrderRepository)(nil)
	_ UserStore     = (*repositories.UserRepository)(nil)
	_ TableStore    = (*repositories.TableRepository)(nil)
)
