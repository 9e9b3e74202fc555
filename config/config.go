package config

// Limits are fixed at compile time. Every buffer they describe is a fixed-size
// array, so changing one of them changes the memory footprint of the related types.
const (
	// MaxRequestBytes is the maximal length of a raw request accepted by the parser.
	MaxRequestBytes = 8192
	// MaxPathBytes is the capacity of the path buffer. A raw path span must be
	// strictly shorter than this value.
	MaxPathBytes = 256
	// HeadersCount is the number of header slots in a response.
	HeadersCount = 100
)
