package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс исполнителя запросов (обычно *sql.DB)
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
