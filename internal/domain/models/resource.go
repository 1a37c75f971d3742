package models

import "time"

// Resource is one row of any admin collection.
type Resource struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Amount    *int64    `json:"amount,omitempty"` // minor units
	CreatedAt time.Time `json:"created_at"`
}

// Page is the collection shape the dashboard consumes.
type Page struct {
	Data        []Resource `json:"data"`
	Total       int        `json:"total"`
	CurrentPage int        `json:"current_page"`
}

// OrderStatusCount is one bucket of the order status summary.
type OrderStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
