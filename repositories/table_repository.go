package repositories

import (
	"context"
	"time"

	"table-order/models"
)

type TableRepository struct {
	db DBTX
}

func NewTableRepository(db DBTX) *TableRepository {
	return &TableRepository{db: db}
}

const tableColumns = `id, table_number, qr_code, is_active, created_at, updated_at`

func scanTable(row interface{ Scan(...any) error }, t *models.Table) error {
	return row.Scan(&t.ID, &t.TableNumber, &t.QRCode, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TableRepository) FindAll(ctx context.Context) ([]models.Table, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tableColumns+` FROM restaurant_tables ORDER BY table_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []models.Table{}
	for rows.Next() {
		var t models.Table
		if err := scanTable(rows, &t); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *TableRepository) FindByQRCode(ctx context.Context, qrCode string) (*models.Table, error) {
	var t models.Table
	err := scanTable(r.db.QueryRow(ctx, `SELECT `+tableColumns+` FROM restaurant_tables WHERE qr_code = $1`, qrCode), &t)
	if err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

// Upsert keeps an existing row for the table number untouched and reports whether it inserted.
func (r *TableRepository) Upsert(ctx context.Context, t *models.Table) (bool, error) {
	now := time.Now()
	tag, err := r.db.Exec(ctx, `
		INSERT INTO restaurant_tables (table_number, qr_code, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING`,
		t.TableNumber, t.QRCode, t.IsActive, now, now)
	if err != nil {
		return false, translateError(err)
	}
	return tag.RowsAffected() > 0, nil
}
