package repositories

import (
	"context"
	"time"

	"table-order/models"
)

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, name, description, is_active, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }, c *models.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepository) FindAll(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	args := []any{}
	if filter.Active != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *filter.Active)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id), &c)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Description, c.IsActive, now, now,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translateError(err)
}

func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	err := r.db.QueryRow(ctx, `
		UPDATE categories SET name = $1, description = $2, is_active = $3, updated_at = $4
		WHERE id = $5
		RETURNING updated_at`,
		c.Name, c.Description, c.IsActive, time.Now(), c.ID,
	).Scan(&c.UpdatedAt)
	return translateError(err)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n)
	return n, err
}
