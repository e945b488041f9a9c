// Copyright (c) 2024 Neomantra Corp
//
// Variable-content records: System/Error carry a fixed-width, NUL-padded text
// slot (fixed per DBN version, not truly variable-length); SymbolMapping
// carries two independently length-prefixed strings. SystemMsg and ErrorMsg
// satisfy the RecordPtr[T] generic constraint; SymbolMappingMsg does not,
// because its Fill_Raw also returns the number of bytes consumed.

package dbn

import (
	"encoding/binary"
)

// System message text width, fixed across versions 2 and 3 (grounded on the
// teacher's live.go SYSTEM_MSG_SIZE_V2 constant).
const SystemMsg_TextSize = 303

// SystemMsg is a non-error gateway message, including heartbeats.
type SystemMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	Msg    string  `json:"msg" csv:"msg"`
	Code   uint8   `json:"code" csv:"code"`
}

const SystemMsg_Size = RHeader_Size + SystemMsg_TextSize + 1

func (*SystemMsg) RType() RType { return RType_System }
func (*SystemMsg) RSize() uint8 {
	// SystemMsg_Size doesn't fit in a uint8 (320 > 255); callers use
	// SystemMsg_Size directly.
	return 0
}

func (r *SystemMsg) Fill_Raw(b []byte) error {
	if len(b) < SystemMsg_Size {
		return unexpectedBytesError("SystemMsg", SystemMsg_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Msg = TrimNullBytes(body[0:SystemMsg_TextSize])
	r.Code = body[SystemMsg_TextSize]
	return nil
}

func (r *SystemMsg) MarshalBinary() ([]byte, error) {
	b := make([]byte, SystemMsg_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	copy(body[0:SystemMsg_TextSize], PadNullBytes(r.Msg, SystemMsg_TextSize))
	body[SystemMsg_TextSize] = r.Code
	return b, nil
}

// Error message text width, fixed across versions 2 and 3 (grounded on the
// teacher's live.go ERROR_ERR_SIZE_V2 constant).
const ErrorMsg_TextSize = 302

// ErrorMsg is an error message from the gateway.
type ErrorMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	Err    string  `json:"err" csv:"err"`
	Code   uint8   `json:"code" csv:"code"`
	IsLast uint8   `json:"is_last" csv:"is_last"`
}

const ErrorMsg_Size = RHeader_Size + ErrorMsg_TextSize + 2

func (*ErrorMsg) RType() RType { return RType_Error }
func (*ErrorMsg) RSize() uint8 {
	// ErrorMsg_Size doesn't fit in a uint8 (320 > 255); callers use
	// ErrorMsg_Size directly.
	return 0
}

func (r *ErrorMsg) Fill_Raw(b []byte) error {
	if len(b) < ErrorMsg_Size {
		return unexpectedBytesError("ErrorMsg", ErrorMsg_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Err = TrimNullBytes(body[0:ErrorMsg_TextSize])
	r.Code = body[ErrorMsg_TextSize]
	r.IsLast = body[ErrorMsg_TextSize+1]
	return nil
}

func (r *ErrorMsg) MarshalBinary() ([]byte, error) {
	b := make([]byte, ErrorMsg_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	copy(body[0:ErrorMsg_TextSize], PadNullBytes(r.Err, ErrorMsg_TextSize))
	body[ErrorMsg_TextSize] = r.Code
	body[ErrorMsg_TextSize+1] = r.IsLast
	return b, nil
}

// IsLastError reports whether this is the last in a series of error records.
func (r *ErrorMsg) IsLastError() bool {
	return r.IsLast != 0
}

///////////////////////////////////////////////////////////////////////////////

// SymbolMappingMsg is the record-level symbol mapping message (rtype 0x16).
// Unlike the metadata symbol tables, its two symbol strings are each u16
// length-prefixed rather than fixed-width. It is decoded from its own bytes
// alone, with no external context, but its total size varies record to
// record, so Fill_Raw reports how many bytes it consumed.
type SymbolMappingMsg struct {
	Header         RHeader `json:"hd" csv:"hd"`
	StypeIn        SType   `json:"stype_in" csv:"stype_in"`
	StypeInSymbol  string  `json:"stype_in_symbol" csv:"stype_in_symbol"`
	StypeOut       SType   `json:"stype_out" csv:"stype_out"`
	StypeOutSymbol string  `json:"stype_out_symbol" csv:"stype_out_symbol"`
	StartTs        uint64  `json:"start_ts" csv:"start_ts"`
	EndTs          uint64  `json:"end_ts" csv:"end_ts"`
}

func (*SymbolMappingMsg) RType() RType { return RType_SymbolMapping }

// Fill_Raw decodes a SymbolMappingMsg from b, returning the number of bytes
// consumed (the record's true size, needed by the scanner since it isn't
// known up front).
func (r *SymbolMappingMsg) Fill_Raw(b []byte) (int, error) {
	if len(b) < RHeader_Size+1 {
		return 0, unexpectedBytesError("SymbolMappingMsg header", RHeader_Size+1, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return 0, err
	}
	body := b[RHeader_Size:]
	pos := 0
	r.StypeIn = SType(body[pos])
	pos++
	if len(body) < pos+2 {
		return 0, unexpectedBytesError("SymbolMappingMsg stype_in_symbol length", pos+2, len(body))
	}
	inLen := int(binary.LittleEndian.Uint16(body[pos : pos+2]))
	pos += 2
	if len(body) < pos+inLen {
		return 0, unexpectedBytesError("SymbolMappingMsg stype_in_symbol", pos+inLen, len(body))
	}
	r.StypeInSymbol = TrimNullBytes(body[pos : pos+inLen])
	pos += inLen

	if len(body) < pos+1 {
		return 0, unexpectedBytesError("SymbolMappingMsg stype_out", pos+1, len(body))
	}
	r.StypeOut = SType(body[pos])
	pos++
	if len(body) < pos+2 {
		return 0, unexpectedBytesError("SymbolMappingMsg stype_out_symbol length", pos+2, len(body))
	}
	outLen := int(binary.LittleEndian.Uint16(body[pos : pos+2]))
	pos += 2
	if len(body) < pos+outLen {
		return 0, unexpectedBytesError("SymbolMappingMsg stype_out_symbol", pos+outLen, len(body))
	}
	r.StypeOutSymbol = TrimNullBytes(body[pos : pos+outLen])
	pos += outLen

	if len(body) < pos+16 {
		return 0, unexpectedBytesError("SymbolMappingMsg timestamps", pos+16, len(body))
	}
	r.StartTs = binary.LittleEndian.Uint64(body[pos : pos+8])
	r.EndTs = binary.LittleEndian.Uint64(body[pos+8 : pos+16])
	pos += 16

	return RHeader_Size + pos, nil
}

func (r *SymbolMappingMsg) MarshalBinary() ([]byte, error) {
	inBytes := []byte(r.StypeInSymbol)
	outBytes := []byte(r.StypeOutSymbol)
	size := RHeader_Size + 1 + 2 + len(inBytes) + 1 + 2 + len(outBytes) + 16
	b := make([]byte, size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	pos := 0
	body[pos] = uint8(r.StypeIn)
	pos++
	binary.LittleEndian.PutUint16(body[pos:pos+2], uint16(len(inBytes)))
	pos += 2
	copy(body[pos:pos+len(inBytes)], inBytes)
	pos += len(inBytes)
	body[pos] = uint8(r.StypeOut)
	pos++
	binary.LittleEndian.PutUint16(body[pos:pos+2], uint16(len(outBytes)))
	pos += 2
	copy(body[pos:pos+len(outBytes)], outBytes)
	pos += len(outBytes)
	binary.LittleEndian.PutUint64(body[pos:pos+8], r.StartTs)
	binary.LittleEndian.PutUint64(body[pos+8:pos+16], r.EndTs)
	return b, nil
}
