package service

import "errors"

var (
	// ErrItemNotFound is returned when an item id does not exist so HTTP handlers can respond with 404.
	ErrItemNotFound = errors.New("item not found")
	// ErrInsufficientStock rejects a sale larger than the item's stock.
	ErrInsufficientStock = errors.New("not enough stock")
	// ErrInvalidQuantity rejects a sale of zero or fewer units.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
