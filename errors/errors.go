package errors

import (
	"errors"
	"strconv"
)

var (
	ErrHTTPMethodParseFailed = errors.New("request method is not supported")
	ErrPathParse             = errors.New("request path is not a valid utf-8 sequence")
)

// RequestSizeExceededError is returned when the whole raw request is longer than allowed.
// No tokenizing is attempted in this case.
type RequestSizeExceededError struct {
	MaxBytes, Bytes int
}

func (r RequestSizeExceededError) Error() string {
	return exceeded("request size", r.Bytes, r.MaxBytes)
}

// PathSizeExceededError is returned when the path span doesn't fit into the path buffer.
type PathSizeExceededError struct {
	MaxBytes, Bytes int
}

func (p PathSizeExceededError) Error() string {
	return exceeded("path size", p.Bytes, p.MaxBytes)
}

// HeaderLengthExceededError is returned when every header slot of a response is occupied.
type HeaderLengthExceededError struct {
	MaxHeaders int
}

func (h HeaderLengthExceededError) Error() string {
	return "too many headers: maximal number is " + strconv.Itoa(h.MaxHeaders)
}

// BufferOverflowError is returned when the destination buffer is too small to fit
// the whole serialized response. Nothing is written in this case.
type BufferOverflowError struct {
	MaxBytes, ActualSize int
}

func (b BufferOverflowError) Error() string {
	return "buffer overflow: response takes " + strconv.Itoa(b.ActualSize) +
		" bytes, however buffer fits only " + strconv.Itoa(b.MaxBytes)
}

func exceeded(what string, got, limit int) string {
	return what + " exceeded: got " + strconv.Itoa(got) + " bytes, maximal is " + strconv.Itoa(limit)
}
