package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"goparts/internal/domain"
	"goparts/internal/domain/models"
	"goparts/internal/pagination"
	"goparts/internal/utils"
)

// ResourceStore is the data source behind every list view.
type ResourceStore interface {
	ListPage(ctx context.Context, resource domain.Resource, page, pageSize int) ([]models.Resource, int, error)
	Get(ctx context.Context, resource domain.Resource, id int64) (models.Resource, error)
	UpdateStatus(ctx context.Context, resource domain.Resource, id int64, status domain.Status) error
	Delete(ctx context.Context, resource domain.Resource, id int64) error
}

// PaginationMeta is the rendered paginator for one page of a collection.
type PaginationMeta struct {
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Tokens     []pagination.Token `json:"tokens"`
}

// Listing is one page of a collection with its paginator.
type Listing struct {
	Data       models.Page    `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type ListingService struct {
	Store     ResourceStore
	Logger    *zap.Logger
	RequestID string
}

// List loads a page and renders its page tokens. The window keeps the requested page as is,
// so page 0 is reported back while rows come from the first page.
func (s ListingService) List(ctx context.Context, resource domain.Resource, page, pageSize, span int) (Listing, error) {
	if pageSize <= 0 {
		return Listing{}, domain.ValidationError{Field: "page_size", Msg: "must be positive"}
	}
	rows, total, err := s.Store.ListPage(ctx, resource, page, pageSize)
	if err != nil {
		return Listing{}, err
	}

	w := pagination.NewWindow(page, total, pageSize, span)
	out := Listing{
		Data: models.Page{Data: rows, Total: total, CurrentPage: page},
		Pagination: PaginationMeta{
			PageSize:   pageSize,
			TotalPages: w.TotalPages(),
			Tokens:     pagination.ComputePageTokens(w),
		},
	}
	utils.LogEvent(s.Logger, s.RequestID, "listing", "list",
		fmt.Sprintf("resource=%s page=%d rows=%d total=%d", resource, page, len(rows), total))
	return out, nil
}

func (s ListingService) Get(ctx context.Context, resource domain.Resource, id int64) (models.Resource, error) {
	return s.Store.Get(ctx, resource, id)
}

func (s ListingService) UpdateStatus(ctx context.Context, resource domain.Resource, id int64, raw string) error {
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return err
	}
	current, err := s.Store.Get(ctx, resource, id)
	if err != nil {
		return err
	}
	if strings.EqualFold(current.Status, string(status)) {
		return domain.ConflictError{Resource: string(resource), Msg: "status is already " + string(status)}
	}
	if err := s.Store.UpdateStatus(ctx, resource, id, status); err != nil {
		return err
	}
	utils.LogEvent(s.Logger, s.RequestID, "listing", "update_status",
		fmt.Sprintf("resource=%s id=%d status=%s", resource, id, status))
	return nil
}

func (s ListingService) Delete(ctx context.Context, resource domain.Resource, id int64) error {
	if err := s.Store.Delete(ctx, resource, id); err != nil {
		return err
	}
	utils.LogEvent(s.Logger, s.RequestID, "listing", "delete", fmt.Sprintf("resource=%s id=%d", resource, id))
	return nil
}
