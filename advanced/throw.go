package advanced

import "github.com/pkg/errors"

var (
	// Recoverable. Reported without touching any state.
	ErrOutOfBounds           = errors.New("point is not strictly inside the outer triangle")
	ErrSelfIntersectingInput = errors.New("edge crosses an existing polygon edge")
	ErrTooFewPoints          = errors.New("polygon needs at least three points")
	ErrPolygonClosed         = errors.New("polygon is already closed")
	ErrNotBuilt              = errors.New("hierarchy has not been reduced to its root yet")

	// Fatal. These mean the planar graph is not a valid triangulated disk, and
	// the hierarchy refuses any further reduction once one has been seen.
	ErrDegenerateIndependentSet = errors.New("no removable vertex in independent set selection")
	ErrNonManifoldFan           = errors.New("incident triangles do not form a single fan")
	ErrIncompleteTriangulation  = errors.New("triangulator output does not cover the polygon")
	ErrHalted                   = errors.New("hierarchy halted after a fatal error")
)

// Threading errors through every step of vertex removal and re-triangulation
// would add a ton of noise to the graph code. Instead, invariant violations
// panic with a fatalError, and the exported entry points recover to convert
// it back to an error.
type fatalError struct {
	error
}

func (e fatalError) Unwrap() error {
	return e.error
}

// Panic with a fatal error.
func fatalf(format string, args ...interface{}) {
	panic(fatalError{errors.Errorf(format, args...)})
}

// Panic with a fatal error wrapping one of the sentinels, so callers can still
// errors.Is against it after recovery.
func fatalWrapf(cause error, format string, args ...interface{}) {
	panic(fatalError{errors.Wrapf(cause, format, args...)})
}

// Convert a recovered fatalError into an error. Anything else is a real panic
// and is rethrown.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(fatalError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
