package http1

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/fixhttp/config"
	"github.com/indigo-web/fixhttp/errors"
	"github.com/indigo-web/fixhttp/http"
	"github.com/indigo-web/fixhttp/http/method"
	"github.com/indigo-web/fixhttp/internal/cursor"
	"github.com/indigo-web/fixhttp/internal/httpchars"
	"github.com/indigo-web/utils/uf"
)

// Parse extracts the method and the path from the raw request. The size of the request
// is checked before anything else. Only the bytes preceding the first HTTP/1.1 marker
// are meaningful, everything else is ignored.
func Parse(raw []byte) (http.Request, error) {
	if len(raw) > config.MaxRequestBytes {
		return http.Request{}, errors.RequestSizeExceededError{
			MaxBytes: config.MaxRequestBytes,
			Bytes:    len(raw),
		}
	}

	c := cursor.New(raw)
	m, err := ParseMethod(&c)
	if err != nil {
		return http.Request{}, err
	}

	path, err := ParsePath(&c)
	if err != nil {
		return http.Request{}, err
	}

	return http.NewRequest(m, path), nil
}

// ParseMethod matches the remaining data against every known method token in the
// order of method.List. On failure, the cursor isn't moved.
func ParseMethod(c *cursor.Cursor) (method.Method, error) {
	data := uf.B2S(c.Remaining())

	for _, m := range method.List {
		token := m.String()
		if strings.HasPrefix(data, token) {
			c.Advance(len(token))
			return m, nil
		}
	}

	return method.Unknown, errors.ErrHTTPMethodParseFailed
}

// ParsePath takes everything up to the HTTP/1.1 marker as a path, trimming surrounding
// whitespaces. If there's no marker, the path is empty. The cursor is advanced by the
// untrimmed length, so the marker itself stays unconsumed.
func ParsePath(c *cursor.Cursor) (http.Path, error) {
	data := c.Remaining()

	var end int
	for ; end < len(data); end++ {
		if bytes.HasPrefix(data[end:], httpchars.HTTP11) {
			break
		}
	}

	if end == len(data) {
		end = 0
	}

	if end >= config.MaxPathBytes {
		return http.Path{}, errors.PathSizeExceededError{
			MaxBytes: config.MaxPathBytes,
			Bytes:    end + 1,
		}
	}

	raw := data[:end]
	if !utf8.Valid(raw) {
		return http.Path{}, errors.ErrPathParse
	}

	path := http.NewPath(bytes.TrimSpace(raw))
	c.Advance(end)

	return path, nil
}
