package domain

import "strings"

// Resource names an admin collection. Each one is backed by a table of the same name.
type Resource string

const (
	ResourceProducts Resource = "products"
	ResourceGarages  Resource = "garages"
	ResourceVendors  Resource = "vendors"
	ResourceUsers    Resource = "users"
	ResourceBillings Resource = "billings"
	ResourceOrders   Resource = "orders"
)

var resources = []Resource{
	ResourceProducts,
	ResourceGarages,
	ResourceVendors,
	ResourceUsers,
	ResourceBillings,
	ResourceOrders,
}

// Resources lists every known resource in menu order.
func Resources() []Resource {
	return append([]Resource(nil), resources...)
}

// ParseResource accepts a path segment and returns the matching resource.
func ParseResource(s string) (Resource, error) {
	r := Resource(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range resources {
		if r == known {
			return r, nil
		}
	}
	return "", ValidationError{Field: "resource", Msg: "unknown resource " + s}
}

// Path is the dashboard route guarding the resource.
func (r Resource) Path() string { return "/" + string(r) }

// Status is the lifecycle value stored on every resource row.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus normalizes and checks a status value.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusActive, StatusInactive, StatusPending, StatusCompleted, StatusCancelled:
		return st, nil
	case "":
		return "", ValidationError{Field: "status", Msg: "required"}
	}
	return "", ValidationError{Field: "status", Msg: "unsupported value " + s}
}
