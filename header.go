// Copyright (c) 2024 Neomantra Corp
//
// DBN File Layout:
//   https://databento.com/docs/knowledge-base/new-users/dbn-encoding/layout
//
// DBN encoding is little-endian.

package dbn

import (
	"encoding/binary"
)

// Record is the interface satisfied by every concrete DBN record type.
type Record interface {
	RType() RType
}

// RecordPtr constrains a pointer-to-T to decode itself from a fixed-layout
// wire buffer. Used by the generic scanner/writer helpers for every record
// whose size is known without external context (i.e. not version- or
// length-prefix-dependent).
type RecordPtr[T any] interface {
	*T
	Record

	RSize() uint8
	Fill_Raw([]byte) error
}

// RHeader is the 16-byte record header common to every DBN record.
type RHeader struct {
	Length       uint8  `json:"len,omitempty"`                     // The length of the record in 32-bit words.
	RType        RType  `json:"rtype" csv:"rtype"`                 // Sentinel values for different DBN record types.
	PublisherID  uint16 `json:"publisher_id" csv:"publisher_id"`   // The publisher ID assigned by Databento, denoting dataset and venue.
	InstrumentID uint32 `json:"instrument_id" csv:"instrument_id"` // The numeric instrument ID.
	TsEvent      uint64 `json:"ts_event" csv:"ts_event"`           // Matching-engine-received timestamp, nanoseconds since the UNIX epoch.
}

const RHeader_Size = 16

// LengthBytes returns the record's total byte length, as encoded in Length
// (which counts 32-bit words).
func (h *RHeader) LengthBytes() int {
	return int(h.Length) * 4
}

func (h *RHeader) RSize() uint8 {
	return RHeader_Size
}

func FillRHeader_Raw(b []byte, h *RHeader) error {
	if len(b) < RHeader_Size {
		return unexpectedBytesError("RHeader", RHeader_Size, len(b))
	}
	h.Length = b[0]
	h.RType = RType(b[1])
	h.PublisherID = binary.LittleEndian.Uint16(b[2:4])
	h.InstrumentID = binary.LittleEndian.Uint32(b[4:8])
	h.TsEvent = binary.LittleEndian.Uint64(b[8:16])
	return nil
}

// MarshalBinary encodes h to its 16-byte wire representation.
func (h *RHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, RHeader_Size)
	b[0] = h.Length
	b[1] = uint8(h.RType)
	binary.LittleEndian.PutUint16(b[2:4], h.PublisherID)
	binary.LittleEndian.PutUint32(b[4:8], h.InstrumentID)
	binary.LittleEndian.PutUint64(b[8:16], h.TsEvent)
	return b, nil
}

// BidAskPair is one level of a market-by-price book: a bid/ask price and size
// pair plus order counts, used by Mbp1/Mbp10/Cmbp1/Bbo-family records.
type BidAskPair struct {
	BidPx    int64  `json:"bid_px" csv:"bid_px"`
	AskPx    int64  `json:"ask_px" csv:"ask_px"`
	BidSz    uint32 `json:"bid_sz" csv:"bid_sz"`
	AskSz    uint32 `json:"ask_sz" csv:"ask_sz"`
	BidCt    uint32 `json:"bid_ct" csv:"bid_ct"`
	AskCt    uint32 `json:"ask_ct" csv:"ask_ct"`
}

const BidAskPair_Size = 32

func FillBidAskPair_Raw(b []byte, p *BidAskPair) error {
	if len(b) < BidAskPair_Size {
		return unexpectedBytesError("BidAskPair", BidAskPair_Size, len(b))
	}
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidCt = binary.LittleEndian.Uint32(b[24:28])
	p.AskCt = binary.LittleEndian.Uint32(b[28:32])
	return nil
}

func (p *BidAskPair) MarshalBinary() ([]byte, error) {
	b := make([]byte, BidAskPair_Size)
	binary.LittleEndian.PutUint64(b[0:8], uint64(p.BidPx))
	binary.LittleEndian.PutUint64(b[8:16], uint64(p.AskPx))
	binary.LittleEndian.PutUint32(b[16:20], p.BidSz)
	binary.LittleEndian.PutUint32(b[20:24], p.AskSz)
	binary.LittleEndian.PutUint32(b[24:28], p.BidCt)
	binary.LittleEndian.PutUint32(b[28:32], p.AskCt)
	return b, nil
}

// ConsolidatedBidAskPair is the CMBP-1 analogue of BidAskPair: it drops the
// per-venue order counts (which are meaningless once consolidated across
// publishers) in favor of the publisher ID each side of the quote came from.
type ConsolidatedBidAskPair struct {
	BidPx int64  `json:"bid_px" csv:"bid_px"`
	AskPx int64  `json:"ask_px" csv:"ask_px"`
	BidSz uint32 `json:"bid_sz" csv:"bid_sz"`
	AskSz uint32 `json:"ask_sz" csv:"ask_sz"`
	BidPb uint32 `json:"bid_pb" csv:"bid_pb"` // publisher ID of the bid
	AskPb uint32 `json:"ask_pb" csv:"ask_pb"` // publisher ID of the ask
}

const ConsolidatedBidAskPair_Size = 32

func FillConsolidatedBidAskPair_Raw(b []byte, p *ConsolidatedBidAskPair) error {
	if len(b) < ConsolidatedBidAskPair_Size {
		return unexpectedBytesError("ConsolidatedBidAskPair", ConsolidatedBidAskPair_Size, len(b))
	}
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidPb = binary.LittleEndian.Uint32(b[24:28])
	p.AskPb = binary.LittleEndian.Uint32(b[28:32])
	return nil
}

func (p *ConsolidatedBidAskPair) MarshalBinary() ([]byte, error) {
	b := make([]byte, ConsolidatedBidAskPair_Size)
	binary.LittleEndian.PutUint64(b[0:8], uint64(p.BidPx))
	binary.LittleEndian.PutUint64(b[8:16], uint64(p.AskPx))
	binary.LittleEndian.PutUint32(b[16:20], p.BidSz)
	binary.LittleEndian.PutUint32(b[20:24], p.AskSz)
	binary.LittleEndian.PutUint32(b[24:28], p.BidPb)
	binary.LittleEndian.PutUint32(b[28:32], p.AskPb)
	return b, nil
}
