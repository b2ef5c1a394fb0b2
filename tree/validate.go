package tree

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid tree")

// Validate checks the geometry of every element and the first page. The
// layout engine trusts its input, so trees from untrusted sources should be
// validated before rendering.
func (t Tree) Validate() error {
	var errs []error
	for i, b := range t.Elements {
		l := b.Bounds()
		for _, f := range []struct {
			name string
			v    float64
		}{{"x", l.X}, {"y", l.Y}, {"width", l.Width}, {"height", l.Height}} {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
				errs = append(errs, fmt.Errorf("%w: element %d (%s): %s is not finite", ErrInvalid, i, b.Kind(), f.name))
			}
		}
		if l.Width < 0 || l.Height < 0 {
			errs = append(errs, fmt.Errorf("%w: element %d (%s): negative size %gx%g", ErrInvalid, i, b.Kind(), l.Width, l.Height))
		}
	}
	if len(t.Pages) > 0 {
		g := t.Pages[0].Resolve()
		if !(g.Width > 0) || !(g.Height > 0) || math.IsInf(g.Width, 0) || math.IsInf(g.Height, 0) {
			errs = append(errs, fmt.Errorf("%w: page 0: size %gx%g", ErrInvalid, g.Width, g.Height))
		}
	}
	return errors.Join(errs...)
}
