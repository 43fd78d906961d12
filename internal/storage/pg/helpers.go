package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func queryAll[T any](ctx context.Context, db *pgxpool.Pool, b sq.Sqlizer, scan pgx.RowToFunc[T]) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to scan rows: %w", err)
	}
	return items, nil
}

func queryOne[T any](ctx context.Context, db *pgxpool.Pool, b sq.Sqlizer, scan pgx.RowToFunc[T]) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, fmt.Errorf("failed to execute query: %w", err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, storage.ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("failed to scan row: %w", err)
	}
	return item, nil
}

func exec(ctx context.Context, db *pgxpool.Pool, b sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("failed to build statement: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("failed to execute statement: %w", err)
	}
	return tag, nil
}

// countOf runs SELECT COUNT(*) over the FROM/WHERE of a select builder.
func countOf(ctx context.Context, db *pgxpool.Pool, from string, where sq.Sqlizer) (int64, error) {
	b := psql.Select("COUNT(*)").From(from)
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return total, nil
}

func paged(b sq.SelectBuilder, page pagination.OffsetRequest) sq.SelectBuilder {
	return b.Limit(uint64(page.Size)).Offset(uint64(page.Offset()))
}
