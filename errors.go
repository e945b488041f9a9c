// Copyright (c) 2024 Neomantra Corp

package dbn

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is.
var (
	// ErrNoMetadata is returned when an operation requires metadata that has
	// not yet been read from the stream.
	ErrNoMetadata = errors.New("no metadata")
	// ErrNoRecord is returned when Record() is called before a successful Next().
	ErrNoRecord = errors.New("no record scanned")
	// ErrWrongStypesForMapping is returned when a symbol lookup is attempted
	// with SType values the mapping table wasn't built for.
	ErrWrongStypesForMapping = errors.New("wrong stypes for mapping")
	// ErrDateOutsideQueryRange is returned by symbol map lookups outside the
	// covered interval.
	ErrDateOutsideQueryRange = errors.New("date outside the query range")
	// ErrWriterClosed is returned by any write operation on a StreamWriter
	// after Close has been called.
	ErrWriterClosed = errors.New("writer is closed")
	// ErrEncodeOverflow reports a value that cannot be represented in its
	// wire field, e.g. a string longer than its fixed-width NUL-padded slot.
	// The encoders in this package do not return it: MarshalBinary and
	// Metadata.Write truncate over-long strings to their slot width.
	ErrEncodeOverflow = errors.New("value overflows its wire encoding")
)

// InvalidFormatError reports that a byte stream does not look like DBN (or
// Zstd-framed DBN) at all: a bad magic number, truncated prefix, etc.
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid DBN format: %s", e.Reason)
}

// UnsupportedVersionError reports a DBN version this module does not decode
// (this module supports versions 2 and 3 only).
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported DBN version %d (supported: 2, 3)", e.Version)
}

// UnknownRecordTypeError reports an rtype byte that does not match any known
// record layout, with the byte offset it was read at.
type UnknownRecordTypeError struct {
	RType  RType
	Offset int64
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("unknown rtype 0x%02X at offset %d", uint8(e.RType), e.Offset)
}

// TruncatedRecordError reports that fewer bytes remained in the stream than a
// record's declared length required.
type TruncatedRecordError struct {
	RType    RType
	Offset   int64
	Want     int
	Got      int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("truncated %s record at offset %d: want %d bytes, got %d", e.RType, e.Offset, e.Want, e.Got)
}

// UnexpectedLengthError reports a header/prefix/string field whose on-wire
// length didn't match what was expected.
type UnexpectedLengthError struct {
	Field string
	Want  int
	Got   int
}

func (e *UnexpectedLengthError) Error() string {
	return fmt.Sprintf("unexpected length for %s: want %d bytes, got %d", e.Field, e.Want, e.Got)
}

func unexpectedBytesError(field string, want int, got int) error {
	return &UnexpectedLengthError{Field: field, Want: want, Got: got}
}

func unexpectedRTypeError(got RType, want RType) error {
	return fmt.Errorf("expected RType %s, got %s", want, got)
}
