package core

import "fmt"

// Renderer turns a format string and its arguments into message bytes.
// It is the text-interpolation collaborator of the dispatch core and is
// invoked once per sink per dispatch. Malformed format strings fail in
// whatever way the renderer defines; the default fmt renderer emits
// in-band %! markers rather than returning an error.
type Renderer func(format string, args ...interface{}) []byte

// Sprintf is the default Renderer, backed by the fmt package.
func Sprintf(format string, args ...interface{}) []byte {
	return fmt.Appendf(nil, format, args...)
}
