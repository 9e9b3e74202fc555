package http

import (
	"github.com/indigo-web/fixhttp/config"
	"github.com/indigo-web/fixhttp/errors"
	"github.com/indigo-web/fixhttp/http/mime"
	"github.com/indigo-web/fixhttp/http/status"
	"github.com/indigo-web/fixhttp/internal/render"
	"github.com/indigo-web/fixhttp/internal/response"
	"github.com/indigo-web/utils/strcomp"
)

type Header = response.Header

// ContentType returns a Content-Type header with the value of the passed content type
func ContentType(c mime.ContentType) Header {
	return Header{
		Key:   "Content-Type",
		Value: c.String(),
	}
}

// Response is a response builder with a fixed capacity for headers. It doesn't copy
// neither the body nor the headers: they are only referenced, so the response must not
// be used after any of them is freed or modified.
type Response struct {
	fields response.Fields
}

// NewResponse returns a response with the passed status, empty body and no headers
func NewResponse(s status.Status) Response {
	return Response{
		fields: response.Fields{
			Status: s,
		},
	}
}

func (r *Response) Status() status.Status {
	return r.fields.Status
}

func (r *Response) Body() []byte {
	return r.fields.Body
}

// SetBody replaces the body
func (r *Response) SetBody(body []byte) {
	r.fields.Body = body
}

// AddHeader places the header into the first vacant slot. If all the config.HeadersCount
// slots are occupied, errors.HeaderLengthExceededError is returned and the response
// stays unchanged.
func (r *Response) AddHeader(header Header) error {
	if !r.fields.Place(header) {
		return errors.HeaderLengthExceededError{
			MaxHeaders: config.HeadersCount,
		}
	}

	return nil
}

// HeadersCount returns the number of added headers. The implicit Content-Length isn't
// counted.
func (r *Response) HeadersCount() int {
	return r.fields.Occupied
}

// Value returns the value of the first header with the key matching case-insensitively
func (r *Response) Value(key string) (value string, found bool) {
	for i := range r.fields.Headers {
		slot := &r.fields.Headers[i]
		if slot.Occupied && strcomp.EqualFold(slot.Header.Key, key) {
			return slot.Header.Value, true
		}
	}

	return "", false
}

// Size returns the exact number of bytes the response takes when written
func (r *Response) Size() int {
	return render.Size(&r.fields)
}

// WriteInto serializes the response into the buff, returning the number of written bytes.
// The buffer must be at least Size() bytes long, otherwise errors.BufferOverflowError
// is returned and nothing is written.
func (r *Response) WriteInto(buff []byte) (int, error) {
	return render.Into(buff, &r.fields)
}
