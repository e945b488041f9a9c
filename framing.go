// Copyright (c) 2025 Neomantra Corp
// Reader/Writer compression framing.
//
// Adapted from Neomantra's Gist, but simplified to only support zstd:
// https://gist.github.com/neomantra/691a6028cdf2ac3fc6ec97d00e8ea802

package dbn

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the 4-byte frame magic number Zstandard prefixes every frame
// with, used to detect compression on the read side even when the filename
// doesn't carry a .zst/.zstd suffix (e.g. reading from stdin or a socket).
var zstdMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

///////////////////////////////////////////////////////////////////////////////

// MakeCompressedWriter returns an io.Writer for the given filename, or
// os.Stdout if filename is "-". Also returns a closing function to defer and
// any error. If the filename ends in ".zst" or ".zstd", or if useZstd is
// true, the writer will zstd-compress the output.
func MakeCompressedWriter(filename string, useZstd bool) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	fileCloser := func() {
		if closer != nil {
			closer.Close()
		}
	}
	if filename != "-" {
		if file, err := os.Create(filename); err == nil {
			writer, closer = file, file
		} else {
			return nil, nil, err
		}
	} else {
		writer, closer = os.Stdout, nil
	}

	if useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd") {
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			fileCloser()
			return nil, nil, err
		}
		zstdCloser := func() {
			zstdWriter.Close()
			fileCloser()
		}
		return zstdWriter, zstdCloser, nil
	}
	return writer, fileCloser, nil
}

///////////////////////////////////////////////////////////////////////////////

// MakeCompressedReader returns an io.Reader for the given filename, or
// os.Stdin if filename is "-". Also returns a closer to defer. Compression is
// detected by peeking the stream's first 4 bytes for the Zstandard magic
// number, so callers don't need to know up front whether a stream is
// compressed (useZstd forces decompression regardless).
func MakeCompressedReader(filename string, useZstd bool) (io.Reader, io.Closer, error) {
	var reader io.Reader
	var closer io.Closer

	if filename != "-" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, nil, err
		}
		reader, closer = file, file
	} else {
		reader, closer = os.Stdin, nil
	}

	bufReader := bufio.NewReader(reader)
	isZstd := useZstd
	if !isZstd {
		if peeked, err := bufReader.Peek(4); err == nil && [4]byte(peeked) == zstdMagic {
			isZstd = true
		}
	}

	if isZstd {
		zr, err := zstd.NewReader(bufReader)
		if err != nil {
			if closer != nil {
				closer.Close()
			}
			return nil, nil, err
		}
		return zr.IOReadCloser(), closer, nil
	}
	return bufReader, closer, nil
}
