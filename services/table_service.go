package services

import (
	"context"

	"table-order/models"
)

type TableService struct {
	tables TableStore
}

func NewTableService(tables TableStore) *TableService {
	return &TableService{tables: tables}
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	return s.tables.FindAll(ctx)
}
