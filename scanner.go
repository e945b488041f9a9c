// Copyright (c) 2024 Neomantra Corp

package dbn

import (
	"bufio"
	"io"
)

///////////////////////////////////////////////////////////////////////////////

// Default buffer size for decoding
const DEFAULT_DECODE_BUFFER_SIZE = 16 * 1024
const DEFAULT_SCRATCH_BUFFER_SIZE = 1024 // bigger than largest record size (InstrumentDefMsgV3)

// DbnScanner scans a raw DBN stream, reading the Metadata header once and
// then one record at a time.
type DbnScanner struct {
	srcReader  io.Reader     // the source we pull data from
	buffReader *bufio.Reader // the buffer reader we scan over
	metadata   *Metadata     // the metadata for the stream
	lastError  error         // the last error encountered
	lastRecord []byte        // last record read, waiting for decode
	lastSize   int           // the size of the last record read
	pos        int64         // bytes consumed from buffReader since metadata
}

// NewDbnScanner creates a new dbn.DbnScanner
func NewDbnScanner(sourceReader io.Reader) *DbnScanner {
	return &DbnScanner{
		srcReader:  sourceReader,
		buffReader: bufio.NewReaderSize(sourceReader, DEFAULT_DECODE_BUFFER_SIZE),
		metadata:   nil,
		lastError:  nil,
		lastRecord: make([]byte, DEFAULT_SCRATCH_BUFFER_SIZE),
		lastSize:   0,
	}
}

/////////////////////////////////////////////////////////////////////////////

// Metadata returns the metadata for the stream, or nil if none.
// May try to read the metadata, which may result in an error.
func (s *DbnScanner) Metadata() (*Metadata, error) {
	if s.metadata != nil {
		return s.metadata, nil
	}
	err := s.readMetadata()
	return s.metadata, err
}

// Error returns the last error from Next(). May be io.EOF.
func (s *DbnScanner) Error() error {
	return s.lastError
}

// GetLastHeader returns the RHeader of the last record read, or an error.
func (s *DbnScanner) GetLastHeader() (RHeader, error) {
	var rheader RHeader
	err := FillRHeader_Raw(s.lastRecord[0:RHeader_Size], &rheader)
	return rheader, err
}

// GetLastRecord returns the raw bytes of the last record read.
func (s *DbnScanner) GetLastRecord() []byte {
	return s.lastRecord[0:s.lastSize]
}

// GetLastSize returns the size of the last record read.
func (s *DbnScanner) GetLastSize() int {
	return s.lastSize
}

/////////////////////////////////////////////////////////////////////////////

// readMetadata is an internal method to read metadata from the stream.
func (s *DbnScanner) readMetadata() error {
	if s.metadata != nil {
		return nil
	}
	m, err := ReadMetadata(s.buffReader)
	if err != nil {
		s.lastError = err
		s.lastSize = 0
		return err
	}
	s.lastError = nil
	s.lastSize = 0
	s.metadata = m
	return nil
}

func (s *DbnScanner) growScratch(n int) {
	if cap(s.lastRecord) >= n {
		s.lastRecord = s.lastRecord[:n]
		return
	}
	grown := make([]byte, n)
	s.lastRecord = grown
}

// Next parses the next record's raw bytes from the stream, making them
// available via GetLastRecord/GetLastHeader/Visit. Returns false on EOF or
// error; check Error() to distinguish the two.
func (s *DbnScanner) Next() bool {
	if s.metadata == nil {
		if err := s.readMetadata(); err != nil {
			return false
		}
	}

	recordStart := s.pos

	// Record length is stored, in words, as the header's first byte.
	recordLenWord, err := s.buffReader.ReadByte()
	if err != nil {
		s.lastError = err
		s.lastSize = 0
		return false
	}
	s.pos++
	mustRead := 4 * int(recordLenWord)
	if mustRead < RHeader_Size {
		s.lastError = &InvalidFormatError{Reason: "record length shorter than header"}
		s.lastSize = 0
		return false
	}
	s.growScratch(mustRead)
	s.lastRecord[0] = recordLenWord

	numRead, err := io.ReadFull(s.buffReader, s.lastRecord[1:mustRead])
	s.pos += int64(numRead)
	if err != nil {
		gotRType := RType(0)
		if numRead >= 1 {
			gotRType = RType(s.lastRecord[1])
		}
		s.lastError = &TruncatedRecordError{RType: gotRType, Offset: recordStart, Want: mustRead, Got: numRead + 1}
		s.lastSize = 0
		return false
	}
	s.lastError = nil
	s.lastSize = mustRead
	return true
}

// DbnScannerDecode parses the Scanner's current record as an R.
// This is a plain function because receiver methods cannot be generic.
func DbnScannerDecode[R Record, RP RecordPtr[R]](s *DbnScanner) (*R, error) {
	if s.lastSize <= RHeader_Size {
		return nil, ErrNoRecord
	}

	var rp RP = new(R)

	// Fill before checking the rtype: types shared by several rtypes (Ohlcv)
	// report the rtype from their decoded header.
	if err := rp.Fill_Raw(s.lastRecord[0:s.lastSize]); err != nil {
		return nil, err
	}

	rtype := RType(s.lastRecord[1])
	if !rtype.IsCompatibleWith(rp.RType()) {
		return nil, unexpectedRTypeError(rtype, rp.RType())
	}
	return rp, nil
}

// Visit parses the Scanner's current record and dispatches it to the
// matching Visitor callback.
func (s *DbnScanner) Visit(visitor Visitor) error {
	if s.lastSize <= RHeader_Size {
		return ErrNoRecord
	}
	if s.metadata == nil {
		return ErrNoMetadata
	}

	raw := s.lastRecord[0:s.lastSize]
	switch rtype := RType(raw[1]); {
	case rtype == RType_Mbp0:
		record := Mbp0{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnMbp0(&record)

	case rtype == RType_Mbp1:
		record := Mbp1Msg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnMbp1(&record)

	case rtype == RType_Mbp10:
		record := Mbp10Msg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnMbp10(&record)

	case rtype == RType_Mbo:
		record := MboMsg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnMbo(&record)

	case rtype == RType_Cmbp1:
		record := Cmbp1Msg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnCmbp1(&record)

	case rtype.IsConsolidatedBbo():
		record := BboMsg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnBbo(&record)

	case rtype.IsCandle():
		record := Ohlcv{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnOhlcv(&record)

	case rtype == RType_Imbalance:
		record := Imbalance{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnImbalance(&record)

	case rtype == RType_Status:
		record := StatusMsg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnStatus(&record)

	case rtype == RType_Error:
		record := ErrorMsg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnErrorMsg(&record)

	case rtype == RType_System:
		record := SystemMsg{}
		if err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnSystemMsg(&record)

	case rtype == RType_SymbolMapping:
		record := SymbolMappingMsg{}
		if _, err := record.Fill_Raw(raw); err != nil {
			return err
		}
		return visitor.OnSymbolMappingMsg(&record)

	case rtype == RType_Statistics:
		record, err := DecodeStat(s.metadata.VersionNum, raw)
		if err != nil {
			return err
		}
		return visitor.OnStatMsg(record)

	case rtype == RType_InstrumentDef:
		record, err := DecodeInstrumentDef(s.metadata.VersionNum, raw)
		if err != nil {
			return err
		}
		return visitor.OnInstrumentDef(record)

	default:
		return &UnknownRecordTypeError{RType: rtype, Offset: s.pos - int64(s.lastSize)}
	}
}

/////////////////////////////////////////////////////////////////////////////

// ReadDBNToSlice reads the entire raw DBN stream from an io.Reader.
// It scans for type R (for example Mbp0) and decodes it into a slice of R.
// Returns the slice, the stream's metadata, and any error.
//
// Example:
//
//	fileReader, err := os.Open(dbnFilename)
//	records, metadata, err := dbn.ReadDBNToSlice[dbn.Mbp0](fileReader)
func ReadDBNToSlice[R Record, RP RecordPtr[R]](reader io.Reader) ([]R, *Metadata, error) {
	records := make([]R, 0)
	scanner := NewDbnScanner(reader)
	for scanner.Next() {
		r, err := DbnScannerDecode[R, RP](scanner)
		if err != nil {
			return records, scanner.metadata, err
		}
		records = append(records, *r)
	}
	err := scanner.Error()
	if err == io.EOF {
		err = nil
	}

	return records, scanner.metadata, err
}
