package render

import (
	"strconv"

	"github.com/indigo-web/fixhttp/errors"
	"github.com/indigo-web/fixhttp/internal/httpchars"
	"github.com/indigo-web/fixhttp/internal/response"
	"github.com/indigo-web/utils/uf"
)

var contentLength = []byte("Content-Length")

type pass uint8

const (
	passVersion pass = iota
	passSpace
	passStatus
	passNewline
	passHeaders
	passBody
)

// passes is the sequence every response is rendered by. Both counting and writing
// go through it, so the computed size always matches the written one.
var passes = [...]pass{
	passVersion,
	passSpace,
	passStatus,
	passNewline,
	passHeaders,
	passNewline,
	passBody,
}

// sink receives rendered bytes.
type sink interface {
	write(b []byte)
}

// counter only counts the bytes it would otherwise copy
type counter int

func (c *counter) write(b []byte) {
	*c += counter(len(b))
}

type copier struct {
	buff []byte
	n    int
}

func (c *copier) write(b []byte) {
	c.n += copy(c.buff[c.n:], b)
}

// Size returns the exact number of bytes the response takes on the wire.
func Size(fields *response.Fields) int {
	var c counter
	render(&c, fields)

	return int(c)
}

// Into renders the response into the buff and returns the number of bytes written.
// If the buffer is too short, nothing is written and errors.BufferOverflowError is
// returned.
func Into(buff []byte, fields *response.Fields) (int, error) {
	size := Size(fields)
	if len(buff) < size {
		return 0, errors.BufferOverflowError{
			MaxBytes:   len(buff),
			ActualSize: size,
		}
	}

	c := copier{buff: buff[:size]}
	render(&c, fields)

	return c.n, nil
}

func render(s sink, fields *response.Fields) {
	for _, p := range passes {
		switch p {
		case passVersion:
			s.write(httpchars.HTTP11)
		case passSpace:
			s.write(httpchars.SP)
		case passStatus:
			s.write(uf.S2B(fields.Status.String()))
		case passNewline:
			s.write(httpchars.CRLF)
		case passHeaders:
			renderHeaders(s, fields)
		case passBody:
			s.write(fields.Body)
		}
	}
}

// renderHeaders renders the Content-Length first and then all the occupied slots in
// their table order.
func renderHeaders(s sink, fields *response.Fields) {
	// uint64 never takes more than 20 decimal digits
	var scratch [20]byte
	renderHeader(s, contentLength, strconv.AppendUint(scratch[:0], uint64(len(fields.Body)), 10))

	for i := range fields.Headers {
		slot := &fields.Headers[i]
		if !slot.Occupied {
			continue
		}

		renderHeader(s, uf.S2B(slot.Header.Key), uf.S2B(slot.Header.Value))
	}
}

func renderHeader(s sink, key, value []byte) {
	s.write(key)
	s.write(httpchars.COLONSP)
	s.write(value)
	s.write(httpchars.CRLF)
}
