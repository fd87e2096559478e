package models

import (
	"errors"
	"fmt"
)

// Not-found conditions are distinct errors so handlers can map them to 404
// instead of a generic failure.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProfileNotFound = errors.New("startup profile not found")
	ErrReportNotFound  = errors.New("risk report not found")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// InsufficientInventoryError rejects an order that asks for more stock than the
// product currently has. It carries both quantities for the API response.
type InsufficientInventoryError struct {
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory: requested %d, available %d", e.Requested, e.Available)
}
