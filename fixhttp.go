// Package fixhttp turns raw HTTP/1.1 requests into their method and path, and renders
// responses into caller-supplied buffers. Nothing is allocated on the way: paths
// and header tables are fixed-size arrays, and a response is measured before it is
// written, so the caller always knows how big the buffer must be.
package fixhttp

import (
	"github.com/indigo-web/fixhttp/http"
	"github.com/indigo-web/fixhttp/http/status"
	"github.com/indigo-web/fixhttp/internal/transport/http1"
)

// Parse extracts the method and the path from the raw request. Requests longer than
// config.MaxRequestBytes are rejected before anything is parsed.
func Parse(raw []byte) (http.Request, error) {
	return http1.Parse(raw)
}

// NewResponse returns an empty response with the status
func NewResponse(s status.Status) http.Response {
	return http.NewResponse(s)
}
