package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Inspection API starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgRepeatedAuthFail = "Repeated failed authentication attempts"
	LogMsgRateLimited      = "Blocking high request rate"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	RedactedValue                   = "[REDACTED]"
)

// Client tracking limits
const (
	DefaultTrackingWindow = 5 * time.Minute
	DefaultRequestLimit   = 1000
	FailedAuthAlertCount  = 5
	rateLimitLogEvery     = 100
	readHeaderTimeout     = 5 * time.Second
	maxRequestBodyBytes   = 1 << 16
)

// PublicPaths bypass API key authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}
