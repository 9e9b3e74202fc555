package mime

// ContentType is a MIME that can be used as a Content-Type header value. It is never
// attached to a response implicitly.
type ContentType uint8

const (
	JSON ContentType = iota
	HTML
)

// String returns the header value of the content type
func (c ContentType) String() string {
	switch c {
	case JSON:
		return "application/json"
	case HTML:
		return "text/html"
	default:
		return ""
	}
}
