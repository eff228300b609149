package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a structural fault in schematic input.
type ErrorKind int

const (
	// KindMalformedNumber is a digit run that does not fit in a uint64.
	KindMalformedNumber ErrorKind = iota + 1
	// KindIrregularGrid is a row whose length differs from the first row.
	KindIrregularGrid
	// KindMissingInput is an input file that could not be read.
	KindMissingInput
	// KindOverflow is a sum or gear product that does not fit in a uint64.
	KindOverflow
)

// Sentinels for errors.Is.
var (
	ErrMalformedNumber = errors.New("malformed number")
	ErrIrregularGrid   = errors.New("irregular grid")
	ErrMissingInput    = errors.New("missing input")
	ErrOverflow        = errors.New("numeric overflow")
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedNumber:
		return "MalformedNumber"
	case KindIrregularGrid:
		return "IrregularGrid"
	case KindMissingInput:
		return "MissingInput"
	case KindOverflow:
		return "Overflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMalformedNumber:
		return ErrMalformedNumber
	case KindIrregularGrid:
		return ErrIrregularGrid
	case KindMissingInput:
		return ErrMissingInput
	case KindOverflow:
		return ErrOverflow
	}
	return nil
}

// Error is a typed failure naming where in the input it happened.
// Row and Col are zero-based; a negative value means "not applicable".
type Error struct {
	Kind ErrorKind
	Path string
	Row  int
	Col  int
	Err  error
}

// NewError builds an Error with no file path attached.
func NewError(kind ErrorKind, row, col int, err error) *Error {
	return &Error{Kind: kind, Row: row, Col: col, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	switch {
	case e.Row >= 0 && e.Col >= 0:
		fmt.Fprintf(&b, " at line %d, column %d", e.Row+1, e.Col+1)
	case e.Row >= 0:
		fmt.Fprintf(&b, " at line %d", e.Row+1)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// WithPath returns err annotated with the file it came from.
// Errors that are not *Error are returned unchanged.
func WithPath(err error, path string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	annotated := *e
	annotated.Path = path
	return &annotated
}
