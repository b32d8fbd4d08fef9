package input

import (
	"io"
	"os"

	"github.com/katalvlaran/raybox/ray"
)

// RayCommand is one parsed line of a ray file.
type RayCommand struct {
	Line  int
	Token string
	Ray   ray.Ray
}

// RayOption configures ReadRays.
type RayOption func(*rayOptions)

type rayOptions struct {
	onInvalid func(err error)
}

// WithSkipInvalid makes ReadRays report malformed lines to fn and carry on
// instead of aborting on the first one.
func WithSkipInvalid(fn func(err error)) RayOption {
	return func(o *rayOptions) { o.onInvalid = fn }
}

// ReadRays parses ray tokens from r against a size×size board and calls each
// for every command, in order. The first error from each, or the first
// malformed line (unless WithSkipInvalid is set), stops reading.
func ReadRays(r io.Reader, name string, size int, each func(RayCommand) error, opts ...RayOption) error {
	var o rayOptions
	for _, opt := range opts {
		opt(&o)
	}

	lr := newLineReader(r, name)
	for {
		text, ok := lr.next()
		if !ok {
			break
		}
		rr, err := ray.Parse(text, size)
		if err != nil {
			err = lr.wrap(err)
			if o.onInvalid == nil {
				return err
			}
			o.onInvalid(err)
			continue
		}
		if err := each(RayCommand{Line: lr.line, Token: text, Ray: rr}); err != nil {
			return err
		}
	}

	return lr.err()
}

// ProcessRayFile opens path and hands it to ReadRays.
func ProcessRayFile(path string, size int, each func(RayCommand) error, opts ...RayOption) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ReadRays(f, path, size, each, opts...)
}
