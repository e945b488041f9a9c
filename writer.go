// Copyright (c) 2024 Neomantra Corp
//
// StreamWriter encodes a Metadata header followed by a stream of records to
// an io.Writer, tracking the running ts_event bounds and record count the
// way the DBN metadata header requires, and (when the underlying writer
// supports seeking) backpatching Start/End/Limit into the header on Close.

package dbn

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// writerState is the StreamWriter's internal lifecycle state.
type writerState int

const (
	writerInitialized writerState = iota
	writerAppending
	writerClosed
)

// StreamWriter writes a DBN Metadata header followed by a sequence of
// records. Start/End/Limit in the header are tracked as records are
// appended; if the destination io.Writer also implements io.WriteSeeker,
// Close seeks back and rewrites the header with the final values. Against a
// non-seekable destination (e.g. a network socket or os.Stdout piped to
// another process), the header keeps the provisional sentinels written by
// Start, and Close only writes the header if nothing was written yet, flushes,
// and logs a warning.
type StreamWriter struct {
	w        io.Writer
	metadata Metadata
	state    writerState
	count    uint64
	minTs    uint64
	maxTs    uint64

	autoFlush     bool
	flushInterval int
	sinceFlush    int

	logger *slog.Logger
}

// NewStreamWriter creates a StreamWriter that will write metadata (a copy is
// taken and its Start/End/Limit possibly rewritten as records arrive) and
// then records to w. The copy's Start/End/Limit are forced to the provisional
// sentinels (UNDEF_TIMESTAMP/0/0) regardless of what the caller supplied,
// since those fields are only meaningful once Close observes the actual
// records written.
func NewStreamWriter(w io.Writer, metadata Metadata) *StreamWriter {
	metadata.Start = UNDEF_TIMESTAMP
	metadata.End = 0
	metadata.Limit = 0
	return &StreamWriter{
		w:             w,
		metadata:      metadata,
		state:         writerInitialized,
		minTs:         UNDEF_TIMESTAMP,
		maxTs:         0,
		autoFlush:     true,
		flushInterval: 1000,
		logger:        slog.Default(),
	}
}

// SetAutoFlush controls whether the writer calls Flush on the underlying
// writer (if it implements one) every flushInterval records. Enabled by
// default with an interval of 1000.
func (sw *StreamWriter) SetAutoFlush(enabled bool, flushInterval int) {
	sw.autoFlush = enabled
	if flushInterval > 0 {
		sw.flushInterval = flushInterval
	}
}

// SetLogger overrides the default slog.Logger used for progress logging.
func (sw *StreamWriter) SetLogger(logger *slog.Logger) {
	sw.logger = logger
}

// Start writes the Metadata header. Must be called exactly once, before any
// WriteRecord call.
func (sw *StreamWriter) Start() error {
	if sw.state != writerInitialized {
		return fmt.Errorf("StreamWriter.Start called in state %d, want Initialized", sw.state)
	}
	if err := sw.metadata.Write(sw.w); err != nil {
		return err
	}
	sw.state = writerAppending
	return nil
}

// WriteRecord writes a single record's wire bytes (as returned by its
// MarshalBinary) and updates the running ts_event bounds and count.
func (sw *StreamWriter) WriteRecord(header RHeader, raw []byte) error {
	if sw.state == writerClosed {
		return ErrWriterClosed
	}
	if sw.state == writerInitialized {
		if err := sw.Start(); err != nil {
			return err
		}
	}

	if _, err := sw.w.Write(raw); err != nil {
		return err
	}

	sw.count++
	if header.TsEvent < sw.minTs {
		sw.minTs = header.TsEvent
	}
	if header.TsEvent > sw.maxTs {
		sw.maxTs = header.TsEvent
	}

	sw.sinceFlush++
	if sw.autoFlush && sw.sinceFlush >= sw.flushInterval {
		sw.sinceFlush = 0
		sw.flush()
		if sw.logger != nil {
			sw.logger.Debug("dbn: flushed stream writer",
				"records_written", humanize.Comma(int64(sw.count)))
		}
	}
	return nil
}

// WriteRecordValue marshals record via its MarshalBinary method and writes
// it. The caller passes the record's header separately, since the Record
// interface exposes no accessor for it.
func (sw *StreamWriter) WriteRecordValue(record interface{ MarshalBinary() ([]byte, error) }, header RHeader) error {
	raw, err := record.MarshalBinary()
	if err != nil {
		return err
	}
	return sw.WriteRecord(header, raw)
}

type flusher interface {
	Flush() error
}

func (sw *StreamWriter) flush() {
	if f, ok := sw.w.(flusher); ok {
		_ = f.Flush()
	}
}

// Close finalizes the stream. If the underlying writer is also an
// io.WriteSeeker, it seeks back to the start and rewrites the Metadata header
// with the observed Start/End/Limit; otherwise the header written at Start
// time is left as-is (a documented limitation of non-seekable destinations,
// e.g. live sockets or unseekable pipes).
func (sw *StreamWriter) Close() error {
	if sw.state == writerClosed {
		return nil
	}
	if sw.state == writerInitialized {
		// Nothing was ever written; still emit an empty, valid stream.
		if err := sw.Start(); err != nil {
			return err
		}
	}
	sw.state = writerClosed
	sw.flush()

	ws, ok := sw.w.(io.WriteSeeker)
	if !ok {
		if sw.logger != nil {
			sw.logger.Warn("dbn: stream writer destination is not seekable, header left unpatched")
		}
		return nil
	}

	finalMeta := sw.metadata
	if sw.count > 0 {
		finalMeta.Start = sw.minTs
		finalMeta.End = sw.maxTs
		finalMeta.Limit = sw.count
	}

	if _, err := ws.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := finalMeta.Write(ws); err != nil {
		return err
	}
	if sw.logger != nil {
		sw.logger.Info("dbn: closed stream writer",
			"records_written", humanize.Comma(int64(sw.count)))
	}
	return nil
}
