package order

import "errors"

// Domain-specific errors for the order package.
var (
	ErrInvalidItem         = errors.New("order item must have a name, price >= 0 and quantity >= 1")
	ErrItemIndexOutOfRange = errors.New("order item index out of range")
)
