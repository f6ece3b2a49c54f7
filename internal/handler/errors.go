package handler

// Generic HTTP error messages for client responses. Internal error details
// are logged, never returned.
const (
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidItemGUID       = "Invalid item guid"
	ErrMsgInvalidTemplateID     = "Invalid template id"
	ErrMsgInvalidOwnerGUID      = "Invalid owner guid"

	ErrMsgItemNotFound     = "Item not found"
	ErrMsgTemplateNotFound = "Item template not found"
	ErrMsgGenericServer    = "Something went wrong"
	ErrMsgDatabaseDown     = "database connection failed"
)

// Log messages
const (
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgLoadItemFailed     = "Failed to load item"
	LogMsgInvalidPathParam   = "Invalid path parameter"
	LogMsgValidationFailed   = "Request validation failed"
	LogMsgItemInspected      = "Item inspected"
	LogMsgTemplatePriceQuote = "Template price quoted"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Route parameters
const (
	ParamGUID       = "guid"
	ParamTemplateID = "id"
	QueryOwner      = "owner"
	QueryQuality    = "quality"
	QueryItemLevel  = "item_level"
)
