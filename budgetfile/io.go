package budgetfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wrenlabs/budget/model"
)

// Loader reads a Document from a configured source. Configure it with
// functional options passed to New, mirroring the teacher's loader.Loader
// (New(opts ...Option) *Loader): unlike the teacher there is no include
// concept to follow, so the only option controls whether Load validates
// the decoded Budget's invariants before returning it.
type Loader struct {
	skipValidation bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithoutValidation skips CheckInvariants after decoding, for tooling that
// wants to inspect a possibly-invalid document (e.g. a doctor command).
func WithoutValidation() Option {
	return func(l *Loader) { l.skipValidation = true }
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load decodes a Document from r and returns its Budget and Version.
func (l *Loader) Load(r io.Reader) (model.Budget, Version, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.Budget{}, Version{}, fmt.Errorf("budgetfile: decode: %w", err)
	}
	if !l.skipValidation {
		if err := doc.Budget.CheckInvariants(); err != nil {
			return model.Budget{}, Version{}, fmt.Errorf("budgetfile: %w", err)
		}
	}
	return doc.Budget, doc.Version, nil
}

// LoadBytes decodes a Document from raw JSON bytes.
func (l *Loader) LoadBytes(data []byte) (model.Budget, Version, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Budget{}, Version{}, fmt.Errorf("budgetfile: decode: %w", err)
	}
	if !l.skipValidation {
		if err := doc.Budget.CheckInvariants(); err != nil {
			return model.Budget{}, Version{}, fmt.Errorf("budgetfile: %w", err)
		}
	}
	return doc.Budget, doc.Version, nil
}

// Save encodes b as a Document at CurrentVersion and writes it to w,
// indented for human-readability since the persisted form doubles as a
// file a user might open directly (spec §6 names no wire-compactness
// requirement).
func Save(w io.Writer, b model.Budget) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(b))
}
