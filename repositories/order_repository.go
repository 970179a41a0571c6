package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"table-order/models"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, table_number, status, total_price, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }, o *models.Order) error {
	return row.Scan(&o.ID, &o.TableNumber, &o.Status, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt)
}

// Create writes the order and its item snapshots in one transaction.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (table_number, status, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		o.TableNumber, o.Status, o.TotalPrice, now, now,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", translateError(err))
	}

	for i, item := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, position, menu_id, name, price, quantity, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			o.ID, i, item.MenuID, item.Name, item.Price, item.Quantity, item.Note)
		if err != nil {
			return fmt.Errorf("insert order item: %w", translateError(err))
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindAll(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	conditions := []string{}
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.TableNumber != nil {
		args = append(args, *filter.TableNumber)
		conditions = append(conditions, fmt.Sprintf("table_number = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	return r.list(ctx, query, args...)
}

func (r *OrderRepository) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Items = []models.OrderItem{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT order_id, menu_id, name, price, quantity, note
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item models.OrderItem
		if err := rows.Scan(&orderID, &item.MenuID, &item.Name, &item.Price, &item.Quantity, &item.Note); err != nil {
			return err
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	return rows.Err()
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id), &o); err != nil {
		return nil, translateError(err)
	}
	orders := []models.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// UpdateStatus overwrites the status without looking at the current one.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return nil, translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (models.OrderStats, error) {
	var s models.OrderStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'cooking'),
		       COUNT(*) FILTER (WHERE status = 'completed')
		FROM orders`,
	).Scan(&s.Total, &s.Pending, &s.Cooking, &s.Completed)
	return s, err
}

func (r *OrderRepository) SummarySince(ctx context.Context, since time.Time) (count int, revenue float64, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_price), 0)::float8 FROM orders WHERE created_at >= $1`,
		since,
	).Scan(&count, &revenue)
	return count, revenue, err
}

func (r *OrderRepository) PopularItems(ctx context.Context, limit int) ([]models.PopularItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT menu_id, (ARRAY_AGG(name ORDER BY order_id, position))[1], SUM(quantity)::int AS total
		FROM order_items
		GROUP BY menu_id
		ORDER BY total DESC, menu_id
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.PopularItem{}
	for rows.Next() {
		var p models.PopularItem
		if err := rows.Scan(&p.MenuID, &p.Name, &p.Count); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
