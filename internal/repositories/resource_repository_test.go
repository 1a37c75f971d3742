package repositories

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"goparts/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var resourceCols = []string{"id", "name", "status", "amount", "created_at"}

func TestListPageOffsets(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
	mock.ExpectQuery("SELECT .+ FROM products ORDER BY created_at DESC, id DESC LIMIT \\? OFFSET \\?").
		WithArgs(20, 20).
		WillReturnRows(sqlmock.NewRows(resourceCols).
			AddRow(21, "Brake pad", "active", 1999, created).
			AddRow(22, "Oil filter", "inactive", nil, created))

	repo := ResourceRepository{DB: db}
	rows, total, err := repo.ListPage(context.Background(), domain.ResourceProducts, 2, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 45 || len(rows) != 2 {
		t.Fatalf("unexpected total=%d rows=%d", total, len(rows))
	}
	if rows[0].Amount == nil || *rows[0].Amount != 1999 {
		t.Fatalf("amount not scanned: %+v", rows[0])
	}
	if rows[1].Amount != nil {
		t.Fatalf("NULL amount should stay nil")
	}
	if !rows[0].CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v", rows[0].CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPageZeroReadsFirstPage(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("FROM orders").WithArgs(30, 0).
		WillReturnRows(sqlmock.NewRows(resourceCols))

	rows, total, err := ResourceRepository{DB: db}.ListPage(context.Background(), domain.ResourceOrders, 0, 30)
	if err != nil || total != 3 || len(rows) != 0 {
		t.Fatalf("rows=%v total=%d err=%v", rows, total, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPagePastTheEnd(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

	rows, total, err := ResourceRepository{DB: db}.ListPage(context.Background(), domain.ResourceProducts, math.MaxInt, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 45 || rows == nil || len(rows) != 0 {
		t.Fatalf("rows=%v total=%d", rows, total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPageEmptyCollectionReadsFirstPage(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM orders").WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(resourceCols))

	if _, _, err := (ResourceRepository{DB: db}).ListPage(context.Background(), domain.ResourceOrders, 1, 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPageRejectsUnknownResource(t *testing.T) {
	db, _ := newMock(t)
	_, _, err := ResourceRepository{DB: db}.ListPage(context.Background(), domain.Resource("users; DROP TABLE users"), 1, 10)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, _, err = ResourceRepository{DB: db}.ListPage(context.Background(), domain.ResourceUsers, 1, 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for page size, got %v", err)
	}
}

func TestListPageCountError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("COUNT").WillReturnError(errors.New("connection reset"))

	_, _, err := ResourceRepository{DB: db}.ListPage(context.Background(), domain.ResourceVendors, 1, 20)
	if err == nil || domain.IsValidation(err) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM garages WHERE id=\\?").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(resourceCols))

	_, err := ResourceRepository{DB: db}.Get(context.Background(), domain.ResourceGarages, 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM billings WHERE id=\\?").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(resourceCols).AddRow(4, "INV-004", "pending", 125000, time.Now()))

	item, err := ResourceRepository{DB: db}.Get(context.Background(), domain.ResourceBillings, 4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Name != "INV-004" || item.Status != "pending" {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestUpdateStatus(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE orders SET status=\\? WHERE id=\\?").WithArgs("completed", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status").WithArgs("completed", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ResourceRepository{DB: db}
	if err := repo.UpdateStatus(context.Background(), domain.ResourceOrders, 3, domain.StatusCompleted); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), domain.ResourceOrders, 99, domain.StatusCompleted); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDelete(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM vendors WHERE id=\\?").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (ResourceRepository{DB: db}).Delete(context.Background(), domain.ResourceVendors, 5); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderStatusSummary(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("completed", 12).
			AddRow("pending", 4))

	got, err := OrderRepository{DB: db}.StatusSummary(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 || got[0].Status != "completed" || got[1].Count != 4 {
		t.Fatalf("unexpected summary %+v", got)
	}
}
