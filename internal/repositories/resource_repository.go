package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"goparts/internal/domain"
	"goparts/internal/domain/models"
)

// ResourceRepository reads and mutates any admin collection. Every collection shares the
// id, name, status, amount, created_at column set.
type ResourceRepository struct {
	DB *sql.DB
}

const resourceColumns = "id, COALESCE(name,''), COALESCE(status,''), amount, created_at"

// table resolves the resource against the known set so it is safe to splice into SQL.
func table(resource domain.Resource) (string, error) {
	r, err := domain.ParseResource(string(resource))
	if err != nil {
		return "", err
	}
	return string(r), nil
}

// ListPage returns one page of rows, newest first, plus the collection total.
// A page below 1 reads the first page. Pages past the end are empty and skip the row query.
func (r ResourceRepository) ListPage(ctx context.Context, resource domain.Resource, page, pageSize int) ([]models.Resource, int, error) {
	tbl, err := table(resource)
	if err != nil {
		return nil, 0, err
	}
	if pageSize <= 0 {
		return nil, 0, domain.ValidationError{Field: "page_size", Msg: "must be positive"}
	}
	if page < 1 {
		page = 1
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+tbl).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", tbl, err)
	}
	if page > lastPage(total, pageSize) {
		return []models.Resource{}, total, nil
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+resourceColumns+" FROM "+tbl+" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", tbl, err)
	}
	defer rows.Close()

	out := make([]models.Resource, 0, pageSize)
	for rows.Next() {
		item, err := scanResource(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", tbl, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s: %w", tbl, err)
	}
	return out, total, nil
}

func (r ResourceRepository) Get(ctx context.Context, resource domain.Resource, id int64) (models.Resource, error) {
	tbl, err := table(resource)
	if err != nil {
		return models.Resource{}, err
	}
	if id <= 0 {
		return models.Resource{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	row := r.DB.QueryRowContext(ctx, "SELECT "+resourceColumns+" FROM "+tbl+" WHERE id=? LIMIT 1", id)
	item, err := scanResource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, domain.NotFoundError{Resource: tbl, ID: id, Err: err}
	}
	if err != nil {
		return models.Resource{}, fmt.Errorf("get %s %d: %w", tbl, id, err)
	}
	return item, nil
}

func (r ResourceRepository) UpdateStatus(ctx context.Context, resource domain.Resource, id int64, status domain.Status) error {
	tbl, err := table(resource)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, "UPDATE "+tbl+" SET status=? WHERE id=?", string(status), id)
	if err != nil {
		return fmt.Errorf("update %s %d status: %w", tbl, id, err)
	}
	return expectAffected(res, tbl, id)
}

func (r ResourceRepository) Delete(ctx context.Context, resource domain.Resource, id int64) error {
	tbl, err := table(resource)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM "+tbl+" WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", tbl, id, err)
	}
	return expectAffected(res, tbl, id)
}

func lastPage(total, pageSize int) int {
	n := total / pageSize
	if total%pageSize != 0 {
		n++
	}
	return max(n, 1)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(s rowScanner) (models.Resource, error) {
	var item models.Resource
	var amount sql.NullInt64
	if err := s.Scan(&item.ID, &item.Name, &item.Status, &amount, &item.CreatedAt); err != nil {
		return models.Resource{}, err
	}
	if amount.Valid {
		v := amount.Int64
		item.Amount = &v
	}
	return item, nil
}

func expectAffected(res sql.Result, tbl string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected %s %d: %w", tbl, id, err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: tbl, ID: id}
	}
	return nil
}
