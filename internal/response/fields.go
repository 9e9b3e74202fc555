package response

import (
	"github.com/indigo-web/fixhttp/config"
	"github.com/indigo-web/fixhttp/http/status"
)

// Header is a key-value pair. Both strings are borrowed and must outlive the
// response they are added to.
type Header struct {
	Key, Value string
}

// Slot is a cell of the headers table, that may be either occupied or vacant.
type Slot struct {
	Header   Header
	Occupied bool
}

// Fields holds everything a response consists of. Body is borrowed and is never
// copied until the response is rendered.
type Fields struct {
	Body    []byte
	Headers [config.HeadersCount]Slot
	// Occupied is the number of occupied slots in Headers
	Occupied int
	Status   status.Status
}

// Place puts the header into the first vacant slot. If there is none, false is
// returned and the table stays untouched.
func (f *Fields) Place(header Header) bool {
	if f.Occupied >= len(f.Headers) {
		return false
	}

	for i := range f.Headers {
		if !f.Headers[i].Occupied {
			f.Headers[i] = Slot{Header: header, Occupied: true}
			f.Occupied++
			return true
		}
	}

	return false
}
