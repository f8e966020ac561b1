package resultset

import "errors"

// ErrInsertFailed wraps a failure from a TreeSink's underlying insert
// callback, so callers can distinguish "the query engine failed" from
// "the downstream tree rejected a match".
var ErrInsertFailed = errors.New("resultset: underlying insert failed")

// Entry is one matched point and its parallel payload, as collected by a
// Sink. Point and Payload carry whatever concrete type the originating
// tree's element/payload slots hold.
type Entry struct {
	Point   any
	Payload any
}

// Sink receives matched points from find_in_sphere, find_out_sphere,
// find_in_annulus, find_k_nearest, and find_k_farthest. Implementations
// must not assume any particular call order or count in advance.
type Sink interface {
	Collect(point, payload any) error
}

// SliceSink is the flat-sequence sink: it appends every match, in the order
// the query engine visits them, to an in-memory slice. Results are not
// sorted (spec.md §4.3).
type SliceSink struct {
	Entries []Entry
}

// NewSliceSink returns an empty SliceSink ready to collect matches.
func NewSliceSink() *SliceSink {
	return &SliceSink{}
}

// Collect appends (point, payload) to Entries. Never fails.
func (s *SliceSink) Collect(point, payload any) error {
	s.Entries = append(s.Entries, Entry{Point: point, Payload: payload})
	return nil
}

// Len returns the number of entries collected so far.
func (s *SliceSink) Len() int { return len(s.Entries) }

// Insert is the shape of the callback a TreeSink re-inserts matches
// through — typically a *neartree.Tree's InsertImmediate method.
type Insert func(point, payload any) error

// TreeSink adapts a caller-supplied Insert callback into a Sink, so a query
// can populate a freshly constructed tree instead of a flat slice
// (spec.md §4.4: "preserves the option of iterating further proximity
// queries on the filtered subset without rescanning the original").
type TreeSink struct {
	insert Insert
	count  int
}

// NewTreeSink wraps insert (e.g. a fresh tree's InsertImmediate) as a Sink.
// insert must not be nil.
func NewTreeSink(insert Insert) *TreeSink {
	return &TreeSink{insert: insert}
}

// Collect re-inserts (point, payload) via the wrapped callback. A non-nil
// error from the callback is wrapped in ErrInsertFailed.
func (s *TreeSink) Collect(point, payload any) error {
	if err := s.insert(point, payload); err != nil {
		return &insertError{cause: err}
	}
	s.count++
	return nil
}

// Count returns how many matches were successfully inserted so far.
func (s *TreeSink) Count() int { return s.count }

type insertError struct{ cause error }

func (e *insertError) Error() string { return ErrInsertFailed.Error() + ": " + e.cause.Error() }
func (e *insertError) Unwrap() error { return ErrInsertFailed }
func (e *insertError) Cause() error  { return e.cause }
