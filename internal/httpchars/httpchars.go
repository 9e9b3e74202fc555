package httpchars

var (
	HTTP11  = []byte("HTTP/1.1")
	CRLF    = []byte("\r\n")
	COLONSP = []byte(": ")
	SP      = []byte(" ")
)
