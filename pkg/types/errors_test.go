package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	err := NewError(KindIrregularGrid, 3, -1, errors.New("expected 10 columns, got 9"))

	assert.ErrorIs(t, err, ErrIrregularGrid)
	assert.NotErrorIs(t, err, ErrMalformedNumber)

	wrapped := fmt.Errorf("scanning: %w", err)
	assert.ErrorIs(t, wrapped, ErrIrregularGrid)

	var typed *Error
	require.ErrorAs(t, wrapped, &typed)
	assert.Equal(t, KindIrregularGrid, typed.Kind)
	assert.Equal(t, 3, typed.Row)
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "row and column",
			err:      NewError(KindMalformedNumber, 0, 4, errors.New("value out of range")),
			expected: "malformed number at line 1, column 5: value out of range",
		},
		{
			name:     "row only",
			err:      NewError(KindIrregularGrid, 2, -1, nil),
			expected: "irregular grid at line 3",
		},
		{
			name:     "path",
			err:      &Error{Kind: KindMissingInput, Path: "grid.txt", Row: -1, Col: -1},
			expected: "missing input in grid.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWithPath(t *testing.T) {
	orig := NewError(KindMalformedNumber, 1, 1, nil)

	annotated := WithPath(orig, "input/03.txt")
	assert.Contains(t, annotated.Error(), "in input/03.txt")
	assert.Empty(t, orig.Path, "original error must not be mutated")

	plain := errors.New("boom")
	assert.Same(t, plain, WithPath(plain, "x"))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "MalformedNumber", KindMalformedNumber.String())
	assert.Equal(t, "Overflow", KindOverflow.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
