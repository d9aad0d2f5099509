// Package sample draws random query fragments from a reference sequence.
//
// Each fragment is a contiguous window of the reference, uppercased, and
// guaranteed not to contain the forbidden symbol (usually 'N', the ambiguous
// base). Windows that contain the forbidden symbol are rejected and a fresh
// length AND offset are drawn, so accepted fragments stay uniform over the
// valid windows.
package sample

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when no fragment in the requested length
	// range fits within the reference
	ErrInvalidRange = errors.New("invalid query length range")

	// ErrExhausted is returned when a retry budget was set and a fragment
	// could not be drawn within it
	ErrExhausted = errors.New("sampling retries exhausted")
)

// RangeError reports a length range that cannot produce a valid window.
type RangeError struct {
	MinLen, MaxLen int
	RefLen         int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("no query length in [%d,%d) fits a %dbp reference", e.MinLen, e.MaxLen, e.RefLen)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// ExhaustedError reports a query whose rejection loop ran out of retries.
type ExhaustedError struct {
	// Index is the 0-based emission index of the query that failed
	Index int

	// Retries is the budget that was exceeded
	Retries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("query %d: gave up after %d rejected draws", e.Index, e.Retries)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }

// Rand is the source of randomness a Sampler draws from. *rand.Rand
// satisfies it; tests inject scripted sources for reproducible draws.
type Rand interface {
	// Intn returns a uniform int in [0,n). Panics if n <= 0.
	Intn(n int) int
}

// Record is a single emitted query: its 0-based emission index and the
// uppercased fragment drawn from the reference.
type Record struct {
	Index int
	Frag  []byte
}

// ID is the record's FASTA header label, "{index}:{length}".
func (r Record) ID() string {
	return fmt.Sprintf("%d:%d", r.Index, len(r.Frag))
}

// Sampler generates query records from a reference sequence.
type Sampler struct {
	// Rand is the injected source of randomness
	Rand Rand

	// Forbidden is the symbol that disqualifies a window, usually 'N'
	Forbidden byte

	// MaxRetries caps rejected draws per query. 0 means retry forever
	MaxRetries int
}

// Generate draws count query records from ref. Lengths are uniform over
// [minLen, maxLen) and offsets uniform over the positions where the window
// fits. Rejected windows cost a retry and resample both length and offset.
func (s *Sampler) Generate(ref []byte, count, minLen, maxLen int) ([]Record, error) {
	if minLen < 1 || maxLen <= minLen || minLen > len(ref) {
		return nil, &RangeError{MinLen: minLen, MaxLen: maxLen, RefLen: len(ref)}
	}

	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		frag, err := s.draw(ref, i, minLen, maxLen)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Index: i, Frag: frag})
	}

	return records, nil
}

// draw finds an acceptable window for the query at emission index i.
func (s *Sampler) draw(ref []byte, i, minLen, maxLen int) ([]byte, error) {
	for retries := 0; ; retries++ {
		if s.MaxRetries > 0 && retries > s.MaxRetries {
			return nil, &ExhaustedError{Index: i, Retries: s.MaxRetries}
		}

		length := minLen + s.Rand.Intn(maxLen-minLen)
		if length > len(ref) {
			// no offset lets this window fit
			return nil, &RangeError{MinLen: minLen, MaxLen: maxLen, RefLen: len(ref)}
		}
		offset := s.Rand.Intn(len(ref) - length + 1)

		frag := bytes.ToUpper(ref[offset : offset+length])
		if bytes.IndexByte(frag, s.Forbidden) < 0 {
			return frag, nil
		}
	}
}
