package phu

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic          = errors.New("invalid PHU file: bad magic")
	ErrUnknownTagType    = errors.New("unknown tag type")
	ErrTruncatedInput    = errors.New("truncated input")
	ErrMissingResolution = errors.New("missing resolution")
	ErrInvalidText       = errors.New("invalid text")
)

// TruncatedInputError is returned when fewer bytes remain than a read requires
type TruncatedInputError struct {
	Offset int64 // stream offset the read started at
	Want   int
	Got    int
	// Bin is the histogram bin being read, or -1 when not reading bins
	Bin int
}

func (e *TruncatedInputError) Error() string {
	if e.Bin >= 0 {
		return fmt.Sprintf("truncated input at 0x%X, bin %d/%d: wanted %d bytes, got %d", e.Offset, e.Bin, HistogramBins, e.Want, e.Got)
	}
	return fmt.Sprintf("truncated input at 0x%X: wanted %d bytes, got %d", e.Offset, e.Want, e.Got)
}

func (e *TruncatedInputError) Unwrap() error {
	return ErrTruncatedInput
}

// UnknownTagTypeError is returned when a tag record carries a type code outside TagType
type UnknownTagTypeError struct {
	Offset     int64 // stream offset of the tag record
	Identifier string
	Code       uint32
}

func (e *UnknownTagTypeError) Error() string {
	return fmt.Sprintf("unknown tag type 0x%08X for tag %q at 0x%X", e.Code, e.Identifier, e.Offset)
}

func (e *UnknownTagTypeError) Unwrap() error {
	return ErrUnknownTagType
}

// MissingResolutionError is a non-fatal warning - a declared curve has no resolution tag
type MissingResolutionError struct {
	Curve int
}

func (e *MissingResolutionError) Error() string {
	return fmt.Sprintf("curve %d: no %s(%d) tag", e.Curve, TagNameResolution, e.Curve)
}

func (e *MissingResolutionError) Unwrap() error {
	return ErrMissingResolution
}
