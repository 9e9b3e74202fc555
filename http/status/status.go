package status

// Code is a numeric HTTP status code
type Code uint16

// Status is a response status. Only the statuses with a known wire form are
// presented.
type Status uint8

const (
	OK Status = iota
	NotFound
)

// String returns the status exactly as it appears in the status line, e.g. "200 OK".
// An empty string is returned for unknown statuses.
func (s Status) String() string {
	switch s {
	case OK:
		return "200 OK"
	case NotFound:
		return "404 NOT FOUND"
	default:
		return ""
	}
}

// Code returns the numeric code of the status, or 0 if the status is unknown
func (s Status) Code() Code {
	switch s {
	case OK:
		return 200
	case NotFound:
		return 404
	default:
		return 0
	}
}
