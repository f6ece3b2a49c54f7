package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgTemplateNotFound = "item template not found"
	ErrMsgInvalidSlot      = "invalid item slot"
	ErrMsgOwnerMismatch    = "item owner mismatch"
	ErrMsgItemRemoved      = "item is removed"

	// Catalog errors
	ErrMsgCatalogInvalid = "invalid catalog data"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidGUID  = "invalid guid"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrInvalidSlot      = errors.New(ErrMsgInvalidSlot)
	ErrOwnerMismatch    = errors.New(ErrMsgOwnerMismatch)
	ErrItemRemoved      = errors.New(ErrMsgItemRemoved)

	// Catalog errors
	ErrCatalogInvalid = errors.New(ErrMsgCatalogInvalid)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrInvalidGUID  = errors.New(ErrMsgInvalidGUID)
)
