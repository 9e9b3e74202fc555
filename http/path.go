package http

import (
	"fmt"
	"unicode/utf8"

	"github.com/indigo-web/fixhttp/config"
	"github.com/indigo-web/utils/uf"
)

// Path is a request path stored in a fixed-size buffer. Its content is always a valid
// utf-8 sequence.
type Path struct {
	buff   [config.MaxPathBytes]byte
	length int
}

// NewPath copies b into a new Path. Passing more than config.MaxPathBytes bytes or an
// invalid utf-8 sequence is a bug of the caller, and therefore causes panic.
func NewPath(b []byte) Path {
	if len(b) > config.MaxPathBytes {
		panic(fmt.Sprintf("BUG: path of %d bytes doesn't fit into %d bytes", len(b), config.MaxPathBytes))
	}

	if !utf8.Valid(b) {
		panic("BUG: path is not a valid utf-8 sequence")
	}

	var path Path
	path.length = copy(path.buff[:], b)

	return path
}

// Bytes returns the path bytes. The returned slice references the path itself, so it
// mustn't be modified.
func (p *Path) Bytes() []byte {
	return p.buff[:p.length]
}

// String returns the path as a string without copying it.
func (p *Path) String() string {
	return uf.B2S(p.buff[:p.length])
}

func (p *Path) Len() int {
	return p.length
}
