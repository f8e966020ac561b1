package neartree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the neartree package, mirroring the error
// taxonomy of spec.md §7. There is no ErrAllocationFailed: unlike the
// original C source, Go's make/append have no recoverable
// allocation-failure return — they panic on exhaustion — so spec.md §7's
// allocation-failed kind has no corresponding Go error value to wire.
var (
	// ErrBadConfig indicates Create was called with an unrecognized
	// element/metric combination, or a non-positive dimension.
	ErrBadConfig = errors.New("neartree: invalid type/metric configuration")

	// ErrNotFound indicates a query that requires at least one qualifying
	// point found none. Not a bug — a normal outcome for nearest/farthest on
	// an out-of-range probe.
	ErrNotFound = errors.New("neartree: no qualifying point found")

	// ErrEmptyTree is the whole-tree-predicate specialization of ErrNotFound:
	// Nearest/Farthest return it instead of ErrNotFound when the tree holds
	// no points at all. It wraps ErrNotFound, so errors.Is(err, ErrNotFound)
	// still holds for callers that only check the general case.
	ErrEmptyTree = fmt.Errorf("neartree: tree is empty: %w", ErrNotFound)

	// ErrBadArgument indicates a malformed call: mismatched probe dimension,
	// a negative k, or a nil sink.
	ErrBadArgument = errors.New("neartree: bad argument")

	// ErrNotFlushed indicates Freeze was called on a tree with pending
	// deferred inserts still queued.
	ErrNotFlushed = errors.New("neartree: tree has unflushed deferred inserts")
)
