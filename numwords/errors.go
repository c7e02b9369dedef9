package numwords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

// Kinds are ordered by specificity. When two failures occur at the same
// offset, the higher kind is reported.
const (
	TokenMismatch         ErrorKind = iota // No recognized word at the position
	BoundaryViolation                      // A word matched but runs into more letters ("tenant")
	InvalidMagnitudeOrder                  // Multiplier out of range for its magnitude ("fifty hundred")
	IncompleteInput                        // Full parse left input unconsumed
)

var kindNames = [...]string{
	TokenMismatch:         "TokenMismatch",
	BoundaryViolation:     "BoundaryViolation",
	InvalidMagnitudeOrder: "InvalidMagnitudeOrder",
	IncompleteInput:       "IncompleteInput",
}

// String returns the name of the kind.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors. A *ParseError unwraps to the sentinel of its kind, so
// errors.Is(err, ErrInvalidMagnitudeOrder) works on any returned error.
var (
	ErrEmptyInput            = errors.New("numwords: empty input")
	ErrTokenMismatch         = errors.New("numwords: unrecognized word")
	ErrBoundaryViolation     = errors.New("numwords: word not followed by a boundary")
	ErrInvalidMagnitudeOrder = errors.New("numwords: invalid multiplier for magnitude")
	ErrIncompleteInput       = errors.New("numwords: unexpected trailing input")
)

var kindErrors = [...]error{
	TokenMismatch:         ErrTokenMismatch,
	BoundaryViolation:     ErrBoundaryViolation,
	InvalidMagnitudeOrder: ErrInvalidMagnitudeOrder,
	IncompleteInput:       ErrIncompleteInput,
}

// ParseError reports where and why a parse failed.
type ParseError struct {
	Kind     ErrorKind
	Offset   int      // Byte offset in the input
	Expected []string // What the grammar would have accepted at Offset
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Unwrap(), e.Offset)
	if len(e.Expected) > 0 {
		msg += ": expected " + strings.Join(e.Expected, ", ")
	}
	return msg
}

// Unwrap returns the sentinel error for e.Kind.
func (e *ParseError) Unwrap() error {
	if int(e.Kind) >= 0 && int(e.Kind) < len(kindErrors) {
		return kindErrors[e.Kind]
	}
	return fmt.Errorf("numwords: %v", e.Kind)
}

// failure is the furthest failure seen during one parse call.
type failure struct {
	offset   int
	kind     ErrorKind
	expected []string
}

// record merges a failure at offset into f. The furthest offset wins; at
// equal offsets the more specific kind wins and expectations accumulate.
func (f *failure) record(offset int, kind ErrorKind, what string) {
	switch {
	case offset > f.offset:
		f.offset = offset
		f.kind = kind
		f.expected = f.expected[:0]
	case offset < f.offset:
		return
	case kind > f.kind:
		f.kind = kind
	}
	if what == "" {
		return
	}
	for _, e := range f.expected {
		if e == what {
			return
		}
	}
	f.expected = append(f.expected, what)
}

func (f *failure) err() *ParseError {
	return &ParseError{
		Kind:     f.kind,
		Offset:   f.offset,
		Expected: append([]string(nil), f.expected...),
	}
}
