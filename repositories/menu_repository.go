package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"table-order/models"
)

type MenuRepository struct {
	db DBTX
}

func NewMenuRepository(db DBTX) *MenuRepository {
	return &MenuRepository{db: db}
}

const menuSelect = `
	SELECT m.id, m.name, m.description, m.price, m.image, m.category_id, m.is_available,
	       m.created_at, m.updated_at, COALESCE(c.name, '')
	FROM menus m
	LEFT JOIN categories c ON c.id = m.category_id`

func scanMenu(row interface{ Scan(...any) error }, m *models.Menu) error {
	var categoryName string
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Image, &m.CategoryID,
		&m.IsAvailable, &m.CreatedAt, &m.UpdatedAt, &categoryName)
	if err != nil {
		return err
	}
	m.Category = &models.CategoryRef{ID: m.CategoryID, Name: categoryName}
	return nil
}

func (r *MenuRepository) FindAll(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error) {
	query := menuSelect
	conditions := []string{}
	args := []any{}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("m.category_id = $%d", len(args)))
	}
	if filter.Available != nil {
		args = append(args, *filter.Available)
		conditions = append(conditions, fmt.Sprintf("m.is_available = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY m.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []models.Menu{}
	for rows.Next() {
		var m models.Menu
		if err := scanMenu(rows, &m); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

func (r *MenuRepository) FindByID(ctx context.Context, id int64) (*models.Menu, error) {
	var m models.Menu
	if err := scanMenu(r.db.QueryRow(ctx, menuSelect+" WHERE m.id = $1", id), &m); err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *MenuRepository) Create(ctx context.Context, m *models.Menu) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO menus (name, description, price, image, category_id, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		m.Name, m.Description, m.Price, m.Image, m.CategoryID, m.IsAvailable, now, now,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return translateError(err)
}

func (r *MenuRepository) Update(ctx context.Context, m *models.Menu) error {
	err := r.db.QueryRow(ctx, `
		UPDATE menus
		SET name = $1, description = $2, price = $3, image = $4, category_id = $5, is_available = $6, updated_at = $7
		WHERE id = $8
		RETURNING updated_at`,
		m.Name, m.Description, m.Price, m.Image, m.CategoryID, m.IsAvailable, time.Now(), m.ID,
	).Scan(&m.UpdatedAt)
	return translateError(err)
}

func (r *MenuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menus WHERE category_id = $1`, categoryID).Scan(&n)
	return n, err
}

func (r *MenuRepository) Counts(ctx context.Context) (total, available int, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_available) FROM menus`,
	).Scan(&total, &available)
	return total, available, err
}
