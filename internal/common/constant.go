// Package common contains shared constants, identifiers and sentinel errors
// used across TaskMate components.
package common

// AuthorizationHeaderName carries the session token on HTTP requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName is echoed on every API response.
const RequestIDHeaderName = "X-Request-ID"
