// Copyright (c) 2024 Neomantra Corp

package dbn

import (
	"bytes"
	"encoding/binary"
	"io"
)

const (
	HeaderVersion2           = 2
	HeaderVersion3           = 3
	MetadataV2_SymbolCstrLen = 71
	MetadataV2_ReservedLen   = 53
	MetadataV3_SymbolCstrLen = 71
	MetadataV3_ReservedLen   = 53
	Metadata_DatasetCstrLen  = 16
	Metadata_PrefixSize      = 8
	MetadataHeaderV2_Size    = 100 // size of the fixed-size portion of Metadata v2, without Prefix
	MetadataHeaderV3_Size    = 100 // size of the fixed-size portion of Metadata v3, without Prefix
)

// Metadata describes the data contained in a DBN file or stream. DBN requires
// the Metadata to be included at the start of the encoded data.
type Metadata struct {
	VersionNum       uint8
	Schema           Schema // u16::MAX indicates a potential mix of schemas and record types, which will always be the case for live data.
	Start            uint64 // Start of query range, UNIX epoch nanoseconds.
	End              uint64 // End of query range, UNIX epoch nanoseconds. u64::MAX indicates no end time was provided.
	Limit            uint64 // Maximum number of records to return. 0 indicates no limit.
	StypeIn          SType  // Symbology type of input symbols. u8::MAX indicates a potential mix of types, as with live data.
	StypeOut         SType  // Symbology type of output symbols.
	TsOut            uint8  // Whether each record has an appended gateway send timestamp.
	SymbolCstrLen    uint16 // Number of bytes in fixed-length string symbols, including a NUL terminator.
	Dataset          string
	SchemaDefinition []byte // Self-describing schema, reserved for future use.
	Symbols          []string
	Partial          []string
	NotFound         []string
	Mappings         []MappingEntry
}

// MappingEntry is a single flat symbol-mapping tuple: a raw (input) symbol
// resolved to an output symbol over a nanosecond-timestamp interval.
type MappingEntry struct {
	RawSymbol string // The symbol assigned by the publisher.
	SymbolOut string // The resolved symbol for this interval.
	StartTs   int64  // Start of the mapping interval, UNIX epoch nanoseconds (inclusive).
	EndTs     int64  // End of the mapping interval, UNIX epoch nanoseconds (exclusive).
}

// IsInverseMapping returns true if the map goes from InstrumentId to some
// other type. Returns an error if neither StypeIn nor StypeOut is InstrumentId.
func (m *Metadata) IsInverseMapping() (bool, error) {
	if m.StypeIn == SType_InstrumentId {
		return true, nil
	}
	if m.StypeOut == SType_InstrumentId {
		return false, nil
	}
	return false, &InvalidFormatError{Reason: "can only build symbol maps when StypeIn or StypeOut is SType_InstrumentId"}
}

// lengthPrefixWidth returns the width in bytes of the u16/u32 length prefixes
// used throughout the variable-length metadata section: v3 widened these
// from u16 to u32, earlier versions (here, v2) keep u16.
func lengthPrefixWidth(version uint8) int {
	if version >= 3 {
		return 4
	}
	return 2
}

func readLengthPrefix(r io.Reader, version uint8) (uint32, error) {
	if lengthPrefixWidth(version) == 4 {
		var v uint32
		err := binary.Read(r, binary.LittleEndian, &v)
		return v, err
	}
	var v uint16
	err := binary.Read(r, binary.LittleEndian, &v)
	return uint32(v), err
}

func writeLengthPrefix(w io.Writer, version uint8, n int) error {
	if lengthPrefixWidth(version) == 4 {
		return binary.Write(w, binary.LittleEndian, uint32(n))
	}
	return binary.Write(w, binary.LittleEndian, uint16(n))
}

// Write writes the Metadata to a DBN stream over an io.Writer.
func (m *Metadata) Write(writer io.Writer) error {
	cstrLen := int(MetadataV2_SymbolCstrLen)
	if m.SymbolCstrLen != 0 {
		cstrLen = int(m.SymbolCstrLen)
	}
	prefixW := lengthPrefixWidth(m.VersionNum)

	metaLength := MetadataHeaderV2_Size
	metaLength += prefixW + len(m.SchemaDefinition)
	metaLength += prefixW + len(m.Symbols)*cstrLen
	metaLength += prefixW + len(m.Partial)*cstrLen
	metaLength += prefixW + len(m.NotFound)*cstrLen
	metaLength += prefixW + len(m.Mappings)*(2*cstrLen+16)

	if err := binary.Write(writer, binary.LittleEndian, MetadataPrefix{
		VersionRaw: [4]byte{'D', 'B', 'N', m.VersionNum},
		Length:     uint32(metaLength),
	}); err != nil {
		return err
	}

	mh := MetadataHeaderV2{
		Schema:        m.Schema,
		Start:         m.Start,
		End:           m.End,
		Limit:         m.Limit,
		StypeIn:       m.StypeIn,
		StypeOut:      m.StypeOut,
		TsOut:         m.TsOut,
		SymbolCstrLen: uint16(cstrLen),
	}
	copy(mh.DatasetRaw[:], m.Dataset)
	if err := binary.Write(writer, binary.LittleEndian, mh); err != nil {
		return err
	}

	if err := writeLengthPrefix(writer, m.VersionNum, len(m.SchemaDefinition)); err != nil {
		return err
	}
	if err := binary.Write(writer, binary.LittleEndian, m.SchemaDefinition); err != nil {
		return err
	}

	if err := writeStringArray(writer, m.VersionNum, uint16(cstrLen), m.Symbols); err != nil {
		return err
	}
	if err := writeStringArray(writer, m.VersionNum, uint16(cstrLen), m.Partial); err != nil {
		return err
	}
	if err := writeStringArray(writer, m.VersionNum, uint16(cstrLen), m.NotFound); err != nil {
		return err
	}
	return writeMappingEntries(writer, m.VersionNum, uint16(cstrLen), m.Mappings)
}

///////////////////////////////////////////////////////////////////////////////

// MetadataPrefix is the start of every Metadata header, independent of version.
type MetadataPrefix struct {
	VersionRaw [4]byte // "DBN" followed by the version as a u8.
	Length     uint32  // Length of the remaining metadata header, excluding this prefix.
}

// MetadataHeaderV2 is the raw, fixed-size DBN metadata header shared by
// versions 2 and 3 (the variable-length tail differs by length-prefix width).
type MetadataHeaderV2 struct {
	DatasetRaw    [Metadata_DatasetCstrLen]byte
	Schema        Schema
	Start         uint64
	End           uint64
	Limit         uint64
	StypeIn       SType
	StypeOut      SType
	TsOut         uint8
	SymbolCstrLen uint16
	Reserved      [MetadataV2_ReservedLen]byte
}

func (mh *MetadataHeaderV2) FillFixed_Raw(b []byte) error {
	if len(b) < MetadataHeaderV2_Size {
		return &InvalidFormatError{Reason: "metadata header shorter than expected"}
	}
	copy(mh.DatasetRaw[:], b[:Metadata_DatasetCstrLen])
	mh.Schema = Schema(binary.LittleEndian.Uint16(b[Metadata_DatasetCstrLen:18]))
	mh.Start = binary.LittleEndian.Uint64(b[18:26])
	mh.End = binary.LittleEndian.Uint64(b[26:34])
	mh.Limit = binary.LittleEndian.Uint64(b[34:42])
	mh.StypeIn = SType(b[42])
	mh.StypeOut = SType(b[43])
	mh.TsOut = b[44]
	mh.SymbolCstrLen = binary.LittleEndian.Uint16(b[45:47])
	copy(mh.Reserved[:], b[47:47+MetadataV2_ReservedLen])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// ReadMetadata reads the Metadata from a DBN stream over an io.Reader.
func ReadMetadata(r io.Reader) (*Metadata, error) {
	var mp MetadataPrefix
	if err := binary.Read(r, binary.LittleEndian, &mp); err != nil {
		return nil, err
	}
	if mp.VersionRaw[0] != 'D' || mp.VersionRaw[1] != 'B' || mp.VersionRaw[2] != 'N' {
		return nil, &InvalidFormatError{Reason: "missing DBN magic prefix"}
	}

	b := make([]byte, mp.Length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}

	version := mp.VersionRaw[3]
	switch version {
	case HeaderVersion2, HeaderVersion3:
		return readMetadataHeader(b, mp, version)
	default:
		return nil, &UnsupportedVersionError{Version: version}
	}
}

func readMetadataHeader(b []byte, mp MetadataPrefix, version uint8) (*Metadata, error) {
	var mh MetadataHeaderV2
	if err := mh.FillFixed_Raw(b); err != nil {
		return nil, err
	}

	m := Metadata{
		VersionNum:    version,
		Dataset:       TrimNullBytes(mh.DatasetRaw[:]),
		Schema:        mh.Schema,
		Start:         mh.Start,
		End:           mh.End,
		Limit:         mh.Limit,
		StypeIn:       mh.StypeIn,
		StypeOut:      mh.StypeOut,
		TsOut:         mh.TsOut,
		SymbolCstrLen: mh.SymbolCstrLen,
	}

	r := bytes.NewReader(b[MetadataHeaderV2_Size:])

	schemaDefLen, err := readLengthPrefix(r, version)
	if err != nil {
		return nil, err
	}
	schemaDefBytes := make([]byte, schemaDefLen)
	if err := binary.Read(r, binary.LittleEndian, &schemaDefBytes); err != nil {
		return nil, err
	}
	m.SchemaDefinition = schemaDefBytes

	if err := decodeToStringArray(r, version, mh.SymbolCstrLen, &m.Symbols); err != nil {
		return nil, err
	}
	if err := decodeToStringArray(r, version, mh.SymbolCstrLen, &m.Partial); err != nil {
		return nil, err
	}
	if err := decodeToStringArray(r, version, mh.SymbolCstrLen, &m.NotFound); err != nil {
		return nil, err
	}
	if err := decodeToMappingEntries(r, version, mh.SymbolCstrLen, &m.Mappings); err != nil {
		return nil, err
	}

	return &m, nil
}

///////////////////////////////////////////////////////////////////////////////

func decodeToStringArray(r io.Reader, version uint8, cstrLength uint16, strArray *[]string) error {
	arrayLen, err := readLengthPrefix(r, version)
	if err != nil {
		return err
	}

	strBytes := make([]byte, cstrLength)
	for i := uint32(0); i < arrayLen; i++ {
		if err := binary.Read(r, binary.LittleEndian, &strBytes); err != nil {
			return err
		}
		*strArray = append(*strArray, TrimNullBytes(strBytes))
	}
	return nil
}

// decodeToMappingEntries decodes the flat (raw_symbol, symbol_out, start_ts,
// end_ts) tuple list that makes up the metadata mapping table.
func decodeToMappingEntries(r io.Reader, version uint8, cstrLength uint16, mappings *[]MappingEntry) error {
	mappingLen, err := readLengthPrefix(r, version)
	if err != nil {
		return err
	}

	rawBytes := make([]byte, cstrLength)
	outBytes := make([]byte, cstrLength)
	for i := uint32(0); i < mappingLen; i++ {
		var entry MappingEntry
		if err := binary.Read(r, binary.LittleEndian, &rawBytes); err != nil {
			return err
		}
		entry.RawSymbol = TrimNullBytes(rawBytes)
		if err := binary.Read(r, binary.LittleEndian, &outBytes); err != nil {
			return err
		}
		entry.SymbolOut = TrimNullBytes(outBytes)
		if err := binary.Read(r, binary.LittleEndian, &entry.StartTs); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &entry.EndTs); err != nil {
			return err
		}
		*mappings = append(*mappings, entry)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

func fillZero(slice []byte) {
	for i := range slice {
		slice[i] = 0
	}
}

func writeStringArray(w io.Writer, version uint8, cstrLength uint16, strs []string) error {
	if err := writeLengthPrefix(w, version, len(strs)); err != nil {
		return err
	}
	cstr := make([]byte, cstrLength)
	for _, s := range strs {
		fillZero(cstr)
		copy(cstr, s)
		if err := binary.Write(w, binary.LittleEndian, cstr); err != nil {
			return err
		}
	}
	return nil
}

func writeMappingEntries(w io.Writer, version uint8, cstrLength uint16, mappings []MappingEntry) error {
	if err := writeLengthPrefix(w, version, len(mappings)); err != nil {
		return err
	}
	rawCstr := make([]byte, cstrLength)
	outCstr := make([]byte, cstrLength)
	for _, entry := range mappings {
		fillZero(rawCstr)
		copy(rawCstr, entry.RawSymbol)
		if err := binary.Write(w, binary.LittleEndian, rawCstr); err != nil {
			return err
		}
		fillZero(outCstr)
		copy(outCstr, entry.SymbolOut)
		if err := binary.Write(w, binary.LittleEndian, outCstr); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, entry.StartTs); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, entry.EndTs); err != nil {
			return err
		}
	}
	return nil
}
