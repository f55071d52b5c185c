package types

import "errors"

// Inventory operation errors. The messages are shown to the user as-is.
var (
	ErrNotExtensible   = errors.New("inventory is not extensible; cannot add new items")
	ErrEntryFrozen     = errors.New("item is frozen; cannot modify")
	ErrSealed          = errors.New("inventory is sealed; cannot delete items")
	ErrInvalidQuantity = errors.New("quantity must be a whole number")
	ErrInvalidKey      = errors.New("item name must not be empty")
	ErrNotFound        = errors.New("item not found")
)

// Config validation errors.
var (
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
)
