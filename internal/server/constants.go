package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-Id"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Limits
const (
	MaxRequestBytes      = 1 << 16
	FailedAuthAlertCount = 5
	ReadHeaderTimeout    = 5 * time.Second
	DefaultRateLimit     = 1000
	DefaultRateWindow    = 5 * time.Minute
	highRateLogEveryNth  = 100
	redactedHeaderValue  = "[REDACTED]"
	apiPathPrefix        = "/api/"
	pathSwagger          = "/swagger/*"
	pathMetrics          = "/metrics"
	pathHealthz          = "/healthz"
	pathReadyz           = "/readyz"
)

// TracingOperation names the server span of every request
const TracingOperation = "gachabox.http"

// quietPaths are served without request logging
var quietPaths = []string{pathHealthz, pathReadyz, pathMetrics}
