package http

import (
	"github.com/indigo-web/fixhttp/http/method"
)

// Request is a parsed request. It is immutable and comparable.
type Request struct {
	path   Path
	method method.Method
}

func NewRequest(m method.Method, path Path) Request {
	return Request{
		method: m,
		path:   path,
	}
}

func (r *Request) Method() method.Method {
	return r.method
}

func (r *Request) Path() *Path {
	return &r.path
}
