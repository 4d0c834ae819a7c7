package geom

import "github.com/pkg/errors"

// Threading errors up and down the recursive traversal code in the clippers
// and the monotone machinery would add a ton of complexity. Instead, internal
// code panics through the helpers below, and the public entry points in the
// planar package recover and convert to an error.

// Sentinel error kinds. Test with errors.Cause (or errors.Is on 1.13+).
var (
	// ErrInvalidArgument marks nil, empty, or too-short input: the caller
	// passed nothing usable. Detected eagerly, before any computation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain marks structurally unusable input: wrong orientation for an
	// operation that requires one, zero-length segments where a direction is
	// needed, and the like. The caller passed something, but not something
	// this operation can work on.
	ErrDomain = errors.New("precondition violation")
)

// geomPanic wraps errors raised by this package so that RecoverError never
// swallows foreign panics (runtime errors included).
type geomPanic struct {
	err error
}

// fatalf panics with a plain internal error. Reserved for "this cannot
// happen" states; argument and precondition problems use the kinded variants.
func fatalf(format string, args ...interface{}) {
	panic(geomPanic{errors.Errorf(format, args...)})
}

func invalidArgf(format string, args ...interface{}) {
	panic(geomPanic{errors.Wrapf(ErrInvalidArgument, format, args...)})
}

func domainf(format string, args ...interface{}) {
	panic(geomPanic{errors.Wrapf(ErrDomain, format, args...)})
}

// RecoverError converts a recovered panic value raised by this package into
// the error it carries. Foreign panics are re-raised. Use it in a deferred
// recover around any call into this package:
//
//	defer func() {
//		if e := geom.RecoverError(recover()); e != nil {
//			err = e
//		}
//	}()
func RecoverError(r interface{}) error {
	if r == nil {
		return nil
	}
	if p, ok := r.(geomPanic); ok {
		return p.err
	}
	panic(r)
}
