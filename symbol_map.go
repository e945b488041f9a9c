// Copyright (c) 2024 Neomantra Corp

package dbn

import (
	"strconv"
	"time"
)

// TsSymbolMap is a timeseries symbol map, keyed by calendar day and
// instrument ID. Generally useful for working with historical data and is
// commonly built from a Metadata object.
type TsSymbolMap struct {
	symbolMap map[tsSymbolKey]string
}

type tsSymbolKey struct {
	Date uint32 // YMD date
	ID   uint32
}

func NewTsSymbolMap() *TsSymbolMap {
	return &TsSymbolMap{
		symbolMap: make(map[tsSymbolKey]string),
	}
}

// IsEmpty returns true if there are no mappings.
func (tsm *TsSymbolMap) IsEmpty() bool {
	return len(tsm.symbolMap) == 0
}

// Len returns the number of symbol mappings in the map.
func (tsm *TsSymbolMap) Len() int {
	return len(tsm.symbolMap)
}

// Get returns the symbol mapping for the given date and instrument ID.
// Returns empty string if no mapping exists.
func (tsm *TsSymbolMap) Get(dt time.Time, instrID uint32) string {
	key := tsSymbolKey{Date: TimeToYMD(dt), ID: instrID}
	symbol, ok := tsm.symbolMap[key]
	if !ok {
		return ""
	}
	return symbol
}

// FillFromMetadata fills the TsSymbolMap with mappings from metadata,
// replacing any existing mappings. Each MappingEntry's [StartTs, EndTs)
// nanosecond interval is expanded into its covered calendar days.
func (tsm *TsSymbolMap) FillFromMetadata(metadata *Metadata) error {
	tsm.symbolMap = make(map[tsSymbolKey]string)

	isInverse, err := metadata.IsInverseMapping()
	if err != nil {
		return err
	}

	for _, mapping := range metadata.Mappings {
		if mapping.SymbolOut == "" {
			continue
		}
		var instrID int
		var symbol string
		if isInverse {
			// RawSymbol carries the instrument ID; SymbolOut is the resolved symbol.
			instrID, err = strconv.Atoi(mapping.RawSymbol)
			symbol = mapping.SymbolOut
		} else {
			// SymbolOut carries the instrument ID; RawSymbol is the resolved symbol.
			instrID, err = strconv.Atoi(mapping.SymbolOut)
			symbol = mapping.RawSymbol
		}
		if err != nil {
			return err
		}
		if err := tsm.Insert(uint32(instrID), mapping.StartTs, mapping.EndTs, symbol); err != nil {
			return err
		}
	}
	return nil
}

// Insert adds mappings for every calendar day touched by the nanosecond
// interval [startTs, endTs).
func (tsm *TsSymbolMap) Insert(instrID uint32, startTs int64, endTs int64, ticker string) error {
	if startTs > endTs {
		return &InvalidFormatError{Reason: "mapping startTs is after endTs"}
	}

	start := time.Unix(0, startTs).UTC().Truncate(24 * time.Hour)
	end := time.Unix(0, endTs).UTC()
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := tsSymbolKey{Date: TimeToYMD(d), ID: instrID}
		tsm.symbolMap[key] = ticker
	}
	return nil
}

//////////////////////////////////////////////////////////////////////////////

// PitSymbolMap is a point-in-time symbol map. Useful for working with live
// symbology or a historical request over a single day or other situations
// where the symbol mappings are known not to change.
type PitSymbolMap struct {
	mapping    map[uint32]string
	mappingInv map[string]uint32
}

func NewPitSymbolMap() *PitSymbolMap {
	return &PitSymbolMap{
		mapping:    make(map[uint32]string),
		mappingInv: make(map[string]uint32),
	}
}

// IsEmpty returns true if there are no mappings.
func (p *PitSymbolMap) IsEmpty() bool {
	return len(p.mapping) == 0
}

// Len returns the number of symbol mappings in the map.
func (p *PitSymbolMap) Len() int {
	return len(p.mapping)
}

// Get returns the string mapping of the instrument ID, or empty string if
// not found.
func (p *PitSymbolMap) Get(instrumentID uint32) string {
	str, ok := p.mapping[instrumentID]
	if !ok {
		return ""
	}
	return str
}

// OnSymbolMappingMsg updates the mapping from a live SymbolMappingMsg record,
// keyed by the record header's instrument ID.
func (p *PitSymbolMap) OnSymbolMappingMsg(symbolMapping *SymbolMappingMsg) error {
	p.mapping[symbolMapping.Header.InstrumentID] = symbolMapping.StypeOutSymbol
	p.mappingInv[symbolMapping.StypeOutSymbol] = symbolMapping.Header.InstrumentID
	return nil
}

// FillFromMetadata fills the PitSymbolMap with mappings from metadata valid
// at timestamp (UNIX epoch nanoseconds), clearing any existing contents.
func (p *PitSymbolMap) FillFromMetadata(metadata *Metadata, timestamp uint64) error {
	if metadata.StypeIn != SType_InstrumentId && metadata.StypeOut != SType_InstrumentId {
		return ErrWrongStypesForMapping
	}
	if timestamp < metadata.Start || timestamp >= metadata.End {
		return ErrDateOutsideQueryRange
	}

	isInverse, err := metadata.IsInverseMapping()
	if err != nil {
		return err
	}

	p.mapping = make(map[uint32]string, len(metadata.Mappings))
	p.mappingInv = make(map[string]uint32, len(metadata.Mappings))

	ts := int64(timestamp)
	for _, mapping := range metadata.Mappings {
		if ts < mapping.StartTs || ts >= mapping.EndTs {
			continue
		}
		if mapping.SymbolOut == "" {
			continue
		}

		var instrID int
		var symbol string
		if isInverse {
			instrID, err = strconv.Atoi(mapping.RawSymbol)
			symbol = mapping.SymbolOut
		} else {
			instrID, err = strconv.Atoi(mapping.SymbolOut)
			symbol = mapping.RawSymbol
		}
		if err != nil {
			return err
		}
		p.mapping[uint32(instrID)] = symbol
		p.mappingInv[symbol] = uint32(instrID)
	}
	return nil
}
