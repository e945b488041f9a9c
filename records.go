// Copyright (c) 2024 Neomantra Corp
//
// Schemas:
//   https://databento.com/docs/knowledge-base/new-users/fields-by-schema/
//
// Adapted from DataBento's DBN:
//   https://github.com/databento/dbn/blob/main/rust/dbn/src/record.rs
//

package dbn

import (
	"encoding/binary"
)

///////////////////////////////////////////////////////////////////////////////

// Mbp0 is the Trades schema record: a single trade event, book depth 0.
type Mbp0 struct {
	Header    RHeader `json:"hd" csv:"hd"`
	Price     int64   `json:"price" csv:"price"`
	Size      uint32  `json:"size" csv:"size"`
	Action    uint8   `json:"action" csv:"action"`
	Side      uint8   `json:"side" csv:"side"`
	Flags     uint8   `json:"flags" csv:"flags"`
	Depth     uint8   `json:"depth" csv:"depth"`
	TsRecv    uint64  `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32   `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32  `json:"sequence" csv:"sequence"`
}

const Mbp0_Size = RHeader_Size + 32

func (*Mbp0) RType() RType { return RType_Mbp0 }
func (*Mbp0) RSize() uint8 { return Mbp0_Size }

func (r *Mbp0) Fill_Raw(b []byte) error {
	if len(b) < Mbp0_Size {
		return unexpectedBytesError("Mbp0", Mbp0_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Price = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.Size = binary.LittleEndian.Uint32(body[8:12])
	r.Action = body[12]
	r.Side = body[13]
	r.Flags = body[14]
	r.Depth = body[15]
	r.TsRecv = binary.LittleEndian.Uint64(body[16:24])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	return nil
}

func (r *Mbp0) MarshalBinary() ([]byte, error) {
	b := make([]byte, Mbp0_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[8:12], r.Size)
	body[12] = r.Action
	body[13] = r.Side
	body[14] = r.Flags
	body[15] = r.Depth
	binary.LittleEndian.PutUint64(body[16:24], r.TsRecv)
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// MboMsg is the Mbo schema record: a single order book event.
type MboMsg struct {
	Header    RHeader `json:"hd" csv:"hd"`
	OrderID   uint64  `json:"order_id" csv:"order_id"`
	Price     int64   `json:"price" csv:"price"`
	Size      uint32  `json:"size" csv:"size"`
	Flags     uint8   `json:"flags" csv:"flags"`
	ChannelID uint8   `json:"channel_id" csv:"channel_id"`
	Action    uint8   `json:"action" csv:"action"`
	Side      uint8   `json:"side" csv:"side"`
	TsRecv    uint64  `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32   `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32  `json:"sequence" csv:"sequence"`
}

const MboMsg_Size = RHeader_Size + 40

func (*MboMsg) RType() RType { return RType_Mbo }
func (*MboMsg) RSize() uint8 { return MboMsg_Size }

func (r *MboMsg) Fill_Raw(b []byte) error {
	if len(b) < MboMsg_Size {
		return unexpectedBytesError("MboMsg", MboMsg_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.OrderID = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Flags = body[20]
	r.ChannelID = body[21]
	r.Action = body[22]
	r.Side = body[23]
	r.TsRecv = binary.LittleEndian.Uint64(body[24:32])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[32:36]))
	r.Sequence = binary.LittleEndian.Uint32(body[36:40])
	return nil
}

func (r *MboMsg) MarshalBinary() ([]byte, error) {
	b := make([]byte, MboMsg_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.OrderID)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Flags
	body[21] = r.ChannelID
	body[22] = r.Action
	body[23] = r.Side
	binary.LittleEndian.PutUint64(body[24:32], r.TsRecv)
	binary.LittleEndian.PutUint32(body[32:36], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[36:40], r.Sequence)
	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// Mbp1Msg is the Mbp1/Tbbo schema record: a trade (or quote, for Mbp1)
// event plus the top-of-book level.
type Mbp1Msg struct {
	Header    RHeader    `json:"hd" csv:"hd"`
	Price     int64      `json:"price" csv:"price"`
	Size      uint32     `json:"size" csv:"size"`
	Action    uint8      `json:"action" csv:"action"`
	Side      uint8      `json:"side" csv:"side"`
	Flags     uint8      `json:"flags" csv:"flags"`
	Depth     uint8      `json:"depth" csv:"depth"`
	TsRecv    uint64     `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32      `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32     `json:"sequence" csv:"sequence"`
	Levels    [1]BidAskPair `json:"levels" csv:"levels"`
}

const Mbp1Msg_Size = Mbp0_Size + BidAskPair_Size

func (*Mbp1Msg) RType() RType { return RType_Mbp1 }
func (*Mbp1Msg) RSize() uint8 { return Mbp1Msg_Size }

func (r *Mbp1Msg) Fill_Raw(b []byte) error {
	if len(b) < Mbp1Msg_Size {
		return unexpectedBytesError("Mbp1Msg", Mbp1Msg_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Price = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.Size = binary.LittleEndian.Uint32(body[8:12])
	r.Action = body[12]
	r.Side = body[13]
	r.Flags = body[14]
	r.Depth = body[15]
	r.TsRecv = binary.LittleEndian.Uint64(body[16:24])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	return FillBidAskPair_Raw(body[32:64], &r.Levels[0])
}

func (r *Mbp1Msg) MarshalBinary() ([]byte, error) {
	b := make([]byte, Mbp1Msg_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[8:12], r.Size)
	body[12] = r.Action
	body[13] = r.Side
	body[14] = r.Flags
	body[15] = r.Depth
	binary.LittleEndian.PutUint64(body[16:24], r.TsRecv)
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	lb, _ := r.Levels[0].MarshalBinary()
	copy(body[32:64], lb)
	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// Mbp10Msg is the Mbp10 schema record: a trade event plus 10 book levels.
type Mbp10Msg struct {
	Header    RHeader        `json:"hd" csv:"hd"`
	Price     int64          `json:"price" csv:"price"`
	Size      uint32         `json:"size" csv:"size"`
	Action    uint8          `json:"action" csv:"action"`
	Side      uint8          `json:"side" csv:"side"`
	Flags     uint8          `json:"flags" csv:"flags"`
	Depth     uint8          `json:"depth" csv:"depth"`
	TsRecv    uint64         `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32          `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32         `json:"sequence" csv:"sequence"`
	Levels    [10]BidAskPair `json:"levels" csv:"levels"`
}

const Mbp10Msg_Size = Mbp0_Size + 10*BidAskPair_Size

func (*Mbp10Msg) RType() RType { return RType_Mbp10 }
func (*Mbp10Msg) RSize() uint8 {
	// Mbp10Msg_Size doesn't fit in a uint8 (368 > 255); callers use
	// Mbp10Msg_Size directly.
	return 0
}

func (r *Mbp10Msg) Fill_Raw(b []byte) error {
	if len(b) < Mbp10Msg_Size {
		return unexpectedBytesError("Mbp10Msg", Mbp10Msg_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Price = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.Size = binary.LittleEndian.Uint32(body[8:12])
	r.Action = body[12]
	r.Side = body[13]
	r.Flags = body[14]
	r.Depth = body[15]
	r.TsRecv = binary.LittleEndian.Uint64(body[16:24])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	for i := 0; i < 10; i++ {
		off := 32 + i*BidAskPair_Size
		if err := FillBidAskPair_Raw(body[off:off+BidAskPair_Size], &r.Levels[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Mbp10Msg) MarshalBinary() ([]byte, error) {
	b := make([]byte, Mbp10Msg_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[8:12], r.Size)
	body[12] = r.Action
	body[13] = r.Side
	body[14] = r.Flags
	body[15] = r.Depth
	binary.LittleEndian.PutUint64(body[16:24], r.TsRecv)
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	for i := 0; i < 10; i++ {
		lb, _ := r.Levels[i].MarshalBinary()
		copy(body[32+i*BidAskPair_Size:32+(i+1)*BidAskPair_Size], lb)
	}
	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// Cmbp1Msg is the Cmbp1 schema record: a consolidated (cross-publisher)
// analogue of Mbp1Msg, with publisher IDs instead of order counts per side.
type Cmbp1Msg struct {
	Header    RHeader                   `json:"hd" csv:"hd"`
	Price     int64                     `json:"price" csv:"price"`
	Size      uint32                    `json:"size" csv:"size"`
	Action    uint8                     `json:"action" csv:"action"`
	Side      uint8                     `json:"side" csv:"side"`
	Flags     uint8                     `json:"flags" csv:"flags"`
	Reserved  uint8                     `json:"reserved" csv:"reserved"`
	TsRecv    uint64                    `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32                     `json:"ts_in_delta" csv:"ts_in_delta"`
	Reserved2 int32                     `json:"reserved2" csv:"reserved2"`
	Levels    [1]ConsolidatedBidAskPair `json:"levels" csv:"levels"`
}

const Cmbp1Msg_Size = Mbp0_Size + ConsolidatedBidAskPair_Size

func (*Cmbp1Msg) RType() RType { return RType_Cmbp1 }
func (*Cmbp1Msg) RSize() uint8 { return Cmbp1Msg_Size }

func (r *Cmbp1Msg) Fill_Raw(b []byte) error {
	if len(b) < Cmbp1Msg_Size {
		return unexpectedBytesError("Cmbp1Msg", Cmbp1Msg_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Price = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.Size = binary.LittleEndian.Uint32(body[8:12])
	r.Action = body[12]
	r.Side = body[13]
	r.Flags = body[14]
	r.Reserved = body[15]
	r.TsRecv = binary.LittleEndian.Uint64(body[16:24])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Reserved2 = int32(binary.LittleEndian.Uint32(body[28:32]))
	return FillConsolidatedBidAskPair_Raw(body[32:64], &r.Levels[0])
}

func (r *Cmbp1Msg) MarshalBinary() ([]byte, error) {
	b := make([]byte, Cmbp1Msg_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[8:12], r.Size)
	body[12] = r.Action
	body[13] = r.Side
	body[14] = r.Flags
	body[15] = r.Reserved
	binary.LittleEndian.PutUint64(body[16:24], r.TsRecv)
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], uint32(r.Reserved2))
	lb, _ := r.Levels[0].MarshalBinary()
	copy(body[32:64], lb)
	return b, nil
}

// BboMsg is shared by the Bbo1S/Bbo1M/Cbbo1S/Cbbo1M/Tcbbo schemas: they all
// share Cmbp1Msg's wire shape (a sampled top-of-book snapshot), differing
// only in rtype/schema. A single Go type can't carry five distinct RType()
// constants: the record's own rtype stays in Header.RType, while RType()
// reports RType_Cmbp1, so DbnScannerDecode accepts only Cmbp1 records for
// this type. Visit dispatches the BBO family to OnBbo by the wire rtype.
type BboMsg = Cmbp1Msg

///////////////////////////////////////////////////////////////////////////////

// Ohlcv is shared by the Ohlcv1S/1M/1H/1D/Eod schemas: an OHLCV candle at a
// given cadence, distinguished by the header's rtype.
type Ohlcv struct {
	Header RHeader `json:"hd" csv:"hd"`
	Open   int64   `json:"open" csv:"open"`
	High   int64   `json:"high" csv:"high"`
	Low    int64   `json:"low" csv:"low"`
	Close  int64   `json:"close" csv:"close"`
	Volume uint64  `json:"volume" csv:"volume"`
}

const Ohlcv_Size = RHeader_Size + 40

func (r *Ohlcv) RType() RType { return r.Header.RType }
func (*Ohlcv) RSize() uint8   { return Ohlcv_Size }

func (r *Ohlcv) Fill_Raw(b []byte) error {
	if len(b) < Ohlcv_Size {
		return unexpectedBytesError("Ohlcv", Ohlcv_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Open = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.High = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Low = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Close = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.Volume = binary.LittleEndian.Uint64(body[32:40])
	return nil
}

func (r *Ohlcv) MarshalBinary() ([]byte, error) {
	b := make([]byte, Ohlcv_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(r.Open))
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.High))
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.Low))
	binary.LittleEndian.PutUint64(body[24:32], uint64(r.Close))
	binary.LittleEndian.PutUint64(body[32:40], r.Volume)
	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// Imbalance is the Imbalance schema record: an auction imbalance event.
type Imbalance struct {
	Header               RHeader `json:"hd" csv:"hd"`
	TsRecv               uint64  `json:"ts_recv" csv:"ts_recv"`
	RefPrice             int64   `json:"ref_price" csv:"ref_price"`
	AuctionTime          uint64  `json:"auction_time" csv:"auction_time"`
	ContBookClrPrice     int64   `json:"cont_book_clr_price" csv:"cont_book_clr_price"`
	AuctInterestClrPrice int64   `json:"auct_interest_clr_price" csv:"auct_interest_clr_price"`
	SsrFillingPrice      int64   `json:"ssr_filling_price" csv:"ssr_filling_price"`
	IndMatchPrice        int64   `json:"ind_match_price" csv:"ind_match_price"`
	UpperCollar          int64   `json:"upper_collar" csv:"upper_collar"`
	LowerCollar          int64   `json:"lower_collar" csv:"lower_collar"`
	PairedQty            uint32  `json:"paired_qty" csv:"paired_qty"`
	TotalImbalanceQty    uint32  `json:"total_imbalance_qty" csv:"total_imbalance_qty"`
	MarketImbalanceQty   uint32  `json:"market_imbalance_qty" csv:"market_imbalance_qty"`
	UnpairedQty          int32   `json:"unpaired_qty" csv:"unpaired_qty"`
	AuctionType          uint8   `json:"auction_type" csv:"auction_type"`
	Side                 uint8   `json:"side" csv:"side"`
	AuctionStatus        uint8   `json:"auction_status" csv:"auction_status"`
	FreezeStatus         uint8   `json:"freeze_status" csv:"freeze_status"`
	NumExtensions        uint8   `json:"num_extensions" csv:"num_extensions"`
	UnpairedSide         uint8   `json:"unpaired_side" csv:"unpaired_side"`
	SignificantImbalance uint8   `json:"significant_imbalance" csv:"significant_imbalance"`
	Reserved             uint8   `json:"reserved" csv:"reserved"`
}

const Imbalance_Size = RHeader_Size + 96

func (*Imbalance) RType() RType { return RType_Imbalance }
func (*Imbalance) RSize() uint8 { return Imbalance_Size }

func (r *Imbalance) Fill_Raw(b []byte) error {
	if len(b) < Imbalance_Size {
		return unexpectedBytesError("Imbalance", Imbalance_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.RefPrice = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.AuctionTime = binary.LittleEndian.Uint64(body[16:24])
	r.ContBookClrPrice = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.AuctInterestClrPrice = int64(binary.LittleEndian.Uint64(body[32:40]))
	r.SsrFillingPrice = int64(binary.LittleEndian.Uint64(body[40:48]))
	r.IndMatchPrice = int64(binary.LittleEndian.Uint64(body[48:56]))
	r.UpperCollar = int64(binary.LittleEndian.Uint64(body[56:64]))
	r.LowerCollar = int64(binary.LittleEndian.Uint64(body[64:72]))
	r.PairedQty = binary.LittleEndian.Uint32(body[72:76])
	r.TotalImbalanceQty = binary.LittleEndian.Uint32(body[76:80])
	r.MarketImbalanceQty = binary.LittleEndian.Uint32(body[80:84])
	r.UnpairedQty = int32(binary.LittleEndian.Uint32(body[84:88]))
	r.AuctionType = body[88]
	r.Side = body[89]
	r.AuctionStatus = body[90]
	r.FreezeStatus = body[91]
	r.NumExtensions = body[92]
	r.UnpairedSide = body[93]
	r.SignificantImbalance = body[94]
	r.Reserved = body[95]
	return nil
}

func (r *Imbalance) MarshalBinary() ([]byte, error) {
	b := make([]byte, Imbalance_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.RefPrice))
	binary.LittleEndian.PutUint64(body[16:24], r.AuctionTime)
	binary.LittleEndian.PutUint64(body[24:32], uint64(r.ContBookClrPrice))
	binary.LittleEndian.PutUint64(body[32:40], uint64(r.AuctInterestClrPrice))
	binary.LittleEndian.PutUint64(body[40:48], uint64(r.SsrFillingPrice))
	binary.LittleEndian.PutUint64(body[48:56], uint64(r.IndMatchPrice))
	binary.LittleEndian.PutUint64(body[56:64], uint64(r.UpperCollar))
	binary.LittleEndian.PutUint64(body[64:72], uint64(r.LowerCollar))
	binary.LittleEndian.PutUint32(body[72:76], r.PairedQty)
	binary.LittleEndian.PutUint32(body[76:80], r.TotalImbalanceQty)
	binary.LittleEndian.PutUint32(body[80:84], r.MarketImbalanceQty)
	binary.LittleEndian.PutUint32(body[84:88], uint32(r.UnpairedQty))
	body[88] = r.AuctionType
	body[89] = r.Side
	body[90] = r.AuctionStatus
	body[91] = r.FreezeStatus
	body[92] = r.NumExtensions
	body[93] = r.UnpairedSide
	body[94] = r.SignificantImbalance
	body[95] = r.Reserved
	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// StatusMsg is the Status schema record: an exchange trading-status update.
type StatusMsg struct {
	Header  RHeader      `json:"hd" csv:"hd"`
	TsRecv  uint64       `json:"ts_recv" csv:"ts_recv"`
	Action  StatusAction `json:"action" csv:"action"`
	Reason  StatusReason `json:"reason" csv:"reason"`
	TradingEvent TradingEvent `json:"trading_event" csv:"trading_event"`
	IsTrading     TriState `json:"is_trading" csv:"is_trading"`
	IsQuoting     TriState `json:"is_quoting" csv:"is_quoting"`
	IsShortSellRestricted TriState `json:"is_short_sell_restricted" csv:"is_short_sell_restricted"`
	Reserved  [7]byte `json:"-" csv:"-"`
}

const StatusMsg_Size = RHeader_Size + 24

func (*StatusMsg) RType() RType { return RType_Status }
func (*StatusMsg) RSize() uint8 { return StatusMsg_Size }

func (r *StatusMsg) Fill_Raw(b []byte) error {
	if len(b) < StatusMsg_Size {
		return unexpectedBytesError("StatusMsg", StatusMsg_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Action = StatusAction(binary.LittleEndian.Uint16(body[8:10]))
	r.Reason = StatusReason(binary.LittleEndian.Uint16(body[10:12]))
	r.TradingEvent = TradingEvent(binary.LittleEndian.Uint16(body[12:14]))
	r.IsTrading = TriState(body[14])
	r.IsQuoting = TriState(body[15])
	r.IsShortSellRestricted = TriState(body[16])
	copy(r.Reserved[:], body[17:24])
	return nil
}

func (r *StatusMsg) MarshalBinary() ([]byte, error) {
	b := make([]byte, StatusMsg_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint16(body[8:10], uint16(r.Action))
	binary.LittleEndian.PutUint16(body[10:12], uint16(r.Reason))
	binary.LittleEndian.PutUint16(body[12:14], uint16(r.TradingEvent))
	body[14] = uint8(r.IsTrading)
	body[15] = uint8(r.IsQuoting)
	body[16] = uint8(r.IsShortSellRestricted)
	copy(body[17:24], r.Reserved[:])
	return b, nil
}
