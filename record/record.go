// Package record provides the immutable value-record substrate the budget
// model is built on (spec §4.1): construction and every field update runs
// invariant checks and fails fatally with InvariantViolation rather than
// mutating in place. There is no generic reflection-based field store here
// — each concrete record type in the model package owns its fields and
// implements Invariant; this package supplies the copy-check-return plumbing
// shared by every Set/Merge/WithMutations call, plus the shared error type.
package record

import "fmt"

// InvariantViolation is the fatal error every constructor, Set, Merge, and
// WithMutations call returns when a structural assertion fails (spec §7).
// It is a typed error value, not a panic, following the teacher's style of
// per-failure-kind error structs (ledger.AccountNotOpenError and friends)
// rather than ad hoc fmt.Errorf strings.
type InvariantViolation struct {
	Record  string // record type name, e.g. "Category"
	Field   string // field name, or "" if the violation is not field-specific
	Message string
}

func (e *InvariantViolation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Record, e.Message)
	}
	return fmt.Sprintf("%s: %s (field=%s)", e.Record, e.Message, e.Field)
}

// NewInvariantViolation constructs an InvariantViolation. field may be "".
func NewInvariantViolation(recordName, field, message string) *InvariantViolation {
	return &InvariantViolation{Record: recordName, Field: field, Message: message}
}

// Invariant is implemented by every record type in the model package.
// CheckInvariants reports the first violated assertion, or nil if the value
// is well-formed.
type Invariant interface {
	CheckInvariants() error
}

// Set applies mutate to a copy of v and checks invariants once the closure
// returns. This single helper realizes all three of the spec's update
// protocols (single-field set, merge, and batched WithMutations): in a
// statically typed language without an "undefined means omit" convention,
// a single-field set and a batch of field writes both reduce to "copy,
// mutate, check once" (spec §9's design notes leave the exact realization
// open). On failure the original v is returned alongside the error; v is
// never mutated.
func Set[T Invariant](v T, mutate func(*T)) (T, error) {
	next := v
	mutate(&next)
	if err := next.CheckInvariants(); err != nil {
		return v, err
	}
	return next, nil
}

// Merge is Set under another name, for call sites that replace several
// fields wholesale from a partial value (spec's merge(partial)).
func Merge[T Invariant](v T, mutate func(*T)) (T, error) {
	return Set(v, mutate)
}

// WithMutations is Set under another name, for call sites that perform a
// batch of logically-grouped field writes (spec's batched update protocol).
func WithMutations[T Invariant](v T, mutate func(*T)) (T, error) {
	return Set(v, mutate)
}

// MustSet is Set, panicking on invariant violation. Intended for
// constructing fixtures in tests where the override is known-valid.
func MustSet[T Invariant](v T, mutate func(*T)) T {
	next, err := Set(v, mutate)
	if err != nil {
		panic(err)
	}
	return next
}
