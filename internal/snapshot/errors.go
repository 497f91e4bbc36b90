package snapshot

import "errors"

// Sentinel error kinds per §7. Use errors.Is against these, or errors.As
// against *SnapshotError for the offending field/stage.
var (
	// ErrTransport wraps an underlying transport failure; always fatal.
	ErrTransport = errors.New("snapshot: transport error")
	// ErrProtocolShape marks a response missing an expected top-level
	// field (nodes in the AX response, the DOM walker's root). Fatal.
	ErrProtocolShape = errors.New("snapshot: unexpected protocol shape")
	// ErrParse marks JSON that cannot be decoded into the expected
	// schema. Fatal for DOM/mini/AX; recovered (AX fallback) for fiber.
	ErrParse = errors.New("snapshot: parse error")
	// ErrFiberUnavailable marks a fiber walker result of found=false.
	// Always recovered by falling back to the AX path.
	ErrFiberUnavailable = errors.New("snapshot: fiber tree unavailable")
)

// SnapshotError annotates one of the sentinel kinds above with the stage
// that produced it and an underlying cause, for logging and errors.As.
type SnapshotError struct {
	Kind  error
	Stage string
	Err   error
}

func (e *SnapshotError) Error() string {
	if e.Err == nil {
		return e.Stage + ": " + e.Kind.Error()
	}
	return e.Stage + ": " + e.Kind.Error() + ": " + e.Err.Error()
}

func (e *SnapshotError) Unwrap() error {
	return e.Kind
}

func newError(kind error, stage string, cause error) *SnapshotError {
	return &SnapshotError{Kind: kind, Stage: stage, Err: cause}
}
