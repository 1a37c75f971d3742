package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"goparts/internal/domain/models"
)

type OrderRepository struct {
	DB *sql.DB
}

// StatusSummary counts orders per status, ordered by status.
func (r OrderRepository) StatusSummary(ctx context.Context) ([]models.OrderStatusCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT COALESCE(status,''), COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("order status summary: %w", err)
	}
	defer rows.Close()

	out := []models.OrderStatusCount{}
	for rows.Next() {
		var c models.OrderStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan order status: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
