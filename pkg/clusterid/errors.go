package clusterid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidByteLength matches any *InvalidByteLengthError.
	ErrInvalidByteLength = errors.New("clusterid: invalid byte length")
	// ErrInvalidVersion matches any *InvalidVersionError.
	ErrInvalidVersion = errors.New("clusterid: invalid version")
	// ErrInvalidEncoding is returned when a string is neither hex nor base58.
	ErrInvalidEncoding = errors.New("clusterid: invalid encoding")

	// ErrUnsupportedValue is returned by encoders for domain values they have no code for.
	ErrUnsupportedValue = errors.New("clusterid: unsupported value")
	// ErrFieldOverflow is returned when a code does not fit the width of its field.
	ErrFieldOverflow = errors.New("clusterid: code overflows field")
	// ErrDuplicateCode is returned when two domain values share a code.
	ErrDuplicateCode = errors.New("clusterid: duplicate code")
)

// InvalidByteLengthError reports a buffer that is not exactly Size bytes long.
type InvalidByteLengthError struct {
	Length int
}

func (e *InvalidByteLengthError) Error() string {
	return fmt.Sprintf("expected %d bytes, got %d", Size, e.Length)
}

func (e *InvalidByteLengthError) Is(target error) bool {
	return target == ErrInvalidByteLength
}

// InvalidVersionError reports a details byte carrying an unsupported format version.
type InvalidVersionError struct {
	Expected uint8
	Received uint8
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("expected version %d, got %d", e.Expected, e.Received)
}

func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}
