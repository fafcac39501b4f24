package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to an io.Writer
type DefaultLogger struct {
	w io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewDefaultLogger creates a logger that writes to w.
// The CLI passes stderr so the image can go to stdout.
func NewDefaultLogger(w io.Writer) core.Logger {
	return &DefaultLogger{w: w}
}
