// Copyright (c) 2024 Neomantra Corp
//
// File-level orchestration on top of DbnScanner/StreamWriter: whole-file
// reads, lazy streaming iteration, and typed callback dispatch, all aware of
// the .zst/.zstd compression convention used throughout this module.

package dbn

import (
	"io"
)

// ReadAll opens path (transparently decompressing if named or detected as
// Zstd), reads its Metadata, and decodes every record as R into a slice.
// Closes the file before returning.
func ReadAll[R Record, RP RecordPtr[R]](path string) ([]R, *Metadata, error) {
	reader, closer, err := MakeCompressedReader(path, false)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if closer != nil {
			closer.Close()
		}
	}()
	return ReadDBNToSlice[R, RP](reader)
}

// RecordStream is a lazy, pull-based iterator over a DBN file's records of a
// single type. Call Next until it returns false, then check Err.
type RecordStream[R Record, RP RecordPtr[R]] struct {
	scanner *DbnScanner
	closer  io.Closer
	current R
	err     error
}

// Stream opens path and returns a RecordStream over its records of type R,
// without reading the whole file into memory up front.
func Stream[R Record, RP RecordPtr[R]](path string) (*RecordStream[R, RP], error) {
	reader, closer, err := MakeCompressedReader(path, false)
	if err != nil {
		return nil, err
	}
	scanner := NewDbnScanner(reader)
	if _, err := scanner.Metadata(); err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	return &RecordStream[R, RP]{scanner: scanner, closer: closer}, nil
}

// Metadata returns the stream's Metadata header.
func (rs *RecordStream[R, RP]) Metadata() *Metadata {
	md, _ := rs.scanner.Metadata()
	return md
}

// Next advances to the next record of type R, returning false at EOF or on
// error (see Err).
func (rs *RecordStream[R, RP]) Next() bool {
	if !rs.scanner.Next() {
		rs.err = rs.scanner.Error()
		if rs.err == io.EOF {
			rs.err = nil
		}
		return false
	}
	r, err := DbnScannerDecode[R, RP](rs.scanner)
	if err != nil {
		rs.err = err
		return false
	}
	rs.current = *r
	return true
}

// Record returns the most recently decoded record.
func (rs *RecordStream[R, RP]) Record() R {
	return rs.current
}

// Err returns the error that stopped iteration, or nil on a clean EOF.
func (rs *RecordStream[R, RP]) Err() error {
	return rs.err
}

// Close releases the underlying file, if any (e.g. not for stdin/"-").
func (rs *RecordStream[R, RP]) Close() error {
	if rs.closer != nil {
		return rs.closer.Close()
	}
	return nil
}

// ForEachOf opens path and invokes fn once per decoded record of type R,
// stopping (and returning) at the first error from fn or from decoding.
func ForEachOf[R Record, RP RecordPtr[R]](path string, fn func(R) error) error {
	stream, err := Stream[R, RP](path)
	if err != nil {
		return err
	}
	defer stream.Close()

	for stream.Next() {
		if err := fn(stream.Record()); err != nil {
			return err
		}
	}
	return stream.Err()
}

// marshalable is satisfied by every fixed-layout record type's pointer.
type marshalable interface {
	MarshalBinary() ([]byte, error)
}

// WriteAll writes metadata followed by records to path, choosing Zstd
// framing by the filename's .zst/.zstd suffix (see MakeCompressedWriter).
func WriteAll[R any, RP interface {
	*R
	marshalable
}](path string, metadata Metadata, records []R) error {
	writer, closeFn, err := MakeCompressedWriter(path, false)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := metadata.Write(writer); err != nil {
		return err
	}
	for i := range records {
		rp := RP(&records[i])
		raw, err := rp.MarshalBinary()
		if err != nil {
			return err
		}
		if _, err := writer.Write(raw); err != nil {
			return err
		}
	}
	return nil
}

// CompressFile streams src (transparently decompressing if it is itself
// Zstd-framed) into dst, Zstd-compressing the output regardless of dst's
// filename suffix. Used to normalize historical DBN files onto disk.
func CompressFile(src string, dst string) error {
	reader, srcCloser, err := MakeCompressedReader(src, false)
	if err != nil {
		return err
	}
	defer func() {
		if srcCloser != nil {
			srcCloser.Close()
		}
	}()

	writer, dstCloser, err := MakeCompressedWriter(dst, true)
	if err != nil {
		return err
	}
	defer dstCloser()

	_, err = io.Copy(writer, reader)
	return err
}
