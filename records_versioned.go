// Copyright (c) 2024 Neomantra Corp
//
// Version-dependent records: InstrumentDef and Stat have distinct wire
// layouts in DBN version 2 vs version 3. The decoder is handed the source
// version explicitly (from Metadata.VersionNum) and picks the matching Go type;
// it never silently widens a v2 record into the v3 shape.

package dbn

import (
	"encoding/binary"
)

///////////////////////////////////////////////////////////////////////////////

// InstrumentDefMsgV2 is the version-2 instrument definition record.
type InstrumentDefMsgV2 struct {
	Header RHeader `json:"hd" csv:"hd"`

	TsRecv                  uint64 `json:"ts_recv" csv:"ts_recv"`
	MinPriceIncrement       int64  `json:"min_price_increment" csv:"min_price_increment"`
	DisplayFactor           int64  `json:"display_factor" csv:"display_factor"`
	Expiration              int64  `json:"expiration" csv:"expiration"`
	Activation              int64  `json:"activation" csv:"activation"`
	HighLimitPrice          int64  `json:"high_limit_price" csv:"high_limit_price"`
	LowLimitPrice           int64  `json:"low_limit_price" csv:"low_limit_price"`
	MaxPriceVariation       int64  `json:"max_price_variation" csv:"max_price_variation"`
	TradingReferencePrice   int64  `json:"trading_reference_price" csv:"trading_reference_price"`
	UnitOfMeasureQty        int64  `json:"unit_of_measure_qty" csv:"unit_of_measure_qty"`
	MinPriceIncrementAmount int64  `json:"min_price_increment_amount" csv:"min_price_increment_amount"`
	PriceRatio              int64  `json:"price_ratio" csv:"price_ratio"`
	StrikePrice             int64  `json:"strike_price" csv:"strike_price"`

	InstAttribValue       int32  `json:"inst_attrib_value" csv:"inst_attrib_value"`
	UnderlyingID          uint32 `json:"underlying_id" csv:"underlying_id"`
	RawInstrumentID       uint32 `json:"raw_instrument_id" csv:"raw_instrument_id"`
	MarketDepthImplied    int32  `json:"market_depth_implied" csv:"market_depth_implied"`
	MarketDepth           int32  `json:"market_depth" csv:"market_depth"`
	MarketSegmentID       uint32 `json:"market_segment_id" csv:"market_segment_id"`
	MaxTradeVol           uint32 `json:"max_trade_vol" csv:"max_trade_vol"`
	MinLotSize            int32  `json:"min_lot_size" csv:"min_lot_size"`
	MinLotSizeBlock       int32  `json:"min_lot_size_block" csv:"min_lot_size_block"`
	MinLotSizeRoundLot    int32  `json:"min_lot_size_round_lot" csv:"min_lot_size_round_lot"`
	MinTradeVol           uint32 `json:"min_trade_vol" csv:"min_trade_vol"`
	ContractMultiplier    int32  `json:"contract_multiplier" csv:"contract_multiplier"`
	DecayQuantity         int32  `json:"decay_quantity" csv:"decay_quantity"`
	OriginalContractSize  int32  `json:"original_contract_size" csv:"original_contract_size"`

	TradingReferenceDate uint16 `json:"trading_reference_date" csv:"trading_reference_date"`
	ApplID               uint16 `json:"appl_id" csv:"appl_id"`
	MaturityYear         uint16 `json:"maturity_year" csv:"maturity_year"`
	DecayStartDate       uint16 `json:"decay_start_date" csv:"decay_start_date"`
	ChannelID            uint16 `json:"channel_id" csv:"channel_id"`

	RawSymbol           string `json:"raw_symbol" csv:"raw_symbol"`
	Group               string `json:"group" csv:"group"`
	Exchange            string `json:"exchange" csv:"exchange"`
	Asset               string `json:"asset" csv:"asset"`
	CFI                 string `json:"cfi" csv:"cfi"`
	SecurityType        string `json:"security_type" csv:"security_type"`
	Underlying          string `json:"underlying" csv:"underlying"`
	StrikePriceCurrency string `json:"strike_price_currency" csv:"strike_price_currency"`
	Currency            string `json:"currency" csv:"currency"`
	SettlCurrency       string `json:"settl_currency" csv:"settl_currency"`
	SecuritySubType     string `json:"security_sub_type" csv:"security_sub_type"`
	UnitOfMeasure       string `json:"unit_of_measure" csv:"unit_of_measure"`

	InstrumentClass       InstrumentClass       `json:"instrument_class" csv:"instrument_class"`
	MatchAlgorithm        MatchAlgorithm        `json:"match_algorithm" csv:"match_algorithm"`
	MainFraction          uint8                 `json:"main_fraction" csv:"main_fraction"`
	PriceDisplayFormat    uint8                 `json:"price_display_format" csv:"price_display_format"`
	SettlPriceType        uint8                 `json:"settl_price_type" csv:"settl_price_type"`
	SubFraction           uint8                 `json:"sub_fraction" csv:"sub_fraction"`
	UnderlyingProduct     uint8                 `json:"underlying_product" csv:"underlying_product"`
	SecurityUpdateAction  SecurityUpdateAction  `json:"security_update_action" csv:"security_update_action"`
	MaturityMonth         uint8                 `json:"maturity_month" csv:"maturity_month"`
	MaturityDay           uint8                 `json:"maturity_day" csv:"maturity_day"`
	MaturityWeek          uint8                 `json:"maturity_week" csv:"maturity_week"`
	UserDefinedInstrument UserDefinedInstrument `json:"user_defined_instrument" csv:"user_defined_instrument"`
	ContractMultiplierUnit int8                 `json:"contract_multiplier_unit" csv:"contract_multiplier_unit"`
	FlowScheduleType      int8                  `json:"flow_schedule_type" csv:"flow_schedule_type"`
	TickRule              uint8                 `json:"tick_rule" csv:"tick_rule"`
	Reserved1             uint8                 `json:"-" csv:"-"`

	Reserved [10]byte `json:"-" csv:"-"`
}

const (
	instrumentDefStringWidth_RawSymbol           = 71
	instrumentDefStringWidth_Group               = 21
	instrumentDefStringWidth_Exchange            = 5
	instrumentDefStringWidth_Asset               = 7
	instrumentDefStringWidth_CFI                 = 7
	instrumentDefStringWidth_SecurityType        = 7
	instrumentDefStringWidth_Underlying          = 21
	instrumentDefStringWidth_StrikePriceCurrency = 4
	instrumentDefStringWidth_Currency            = 4
	instrumentDefStringWidth_SettlCurrency       = 4
	instrumentDefStringWidth_SecuritySubType     = 6
	instrumentDefStringWidth_UnitOfMeasure       = 31

	InstrumentDefMsgV2_Size = RHeader_Size + 384
)

func (*InstrumentDefMsgV2) RType() RType { return RType_InstrumentDef }
func (*InstrumentDefMsgV2) RSize() uint8 {
	// RSize doesn't fit in a uint8 for this record (400 > 255), so it
	// returns 0; callers use InstrumentDefMsgV2_Size directly.
	return 0
}

func (r *InstrumentDefMsgV2) Fill_Raw(b []byte) error {
	if len(b) < InstrumentDefMsgV2_Size {
		return unexpectedBytesError("InstrumentDefMsgV2", InstrumentDefMsgV2_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	pos := 0
	readI64 := func() int64 {
		v := int64(binary.LittleEndian.Uint64(body[pos : pos+8]))
		pos += 8
		return v
	}
	readU64 := func() uint64 {
		v := binary.LittleEndian.Uint64(body[pos : pos+8])
		pos += 8
		return v
	}
	readI32 := func() int32 {
		v := int32(binary.LittleEndian.Uint32(body[pos : pos+4]))
		pos += 4
		return v
	}
	readU32 := func() uint32 {
		v := binary.LittleEndian.Uint32(body[pos : pos+4])
		pos += 4
		return v
	}
	readU16 := func() uint16 {
		v := binary.LittleEndian.Uint16(body[pos : pos+2])
		pos += 2
		return v
	}
	readStr := func(width int) string {
		s := TrimNullBytes(body[pos : pos+width])
		pos += width
		return s
	}
	readU8 := func() uint8 {
		v := body[pos]
		pos++
		return v
	}

	r.TsRecv = readU64()
	r.MinPriceIncrement = readI64()
	r.DisplayFactor = readI64()
	r.Expiration = readI64()
	r.Activation = readI64()
	r.HighLimitPrice = readI64()
	r.LowLimitPrice = readI64()
	r.MaxPriceVariation = readI64()
	r.TradingReferencePrice = readI64()
	r.UnitOfMeasureQty = readI64()
	r.MinPriceIncrementAmount = readI64()
	r.PriceRatio = readI64()
	r.StrikePrice = readI64()

	r.InstAttribValue = readI32()
	r.UnderlyingID = readU32()
	r.RawInstrumentID = readU32()
	r.MarketDepthImplied = readI32()
	r.MarketDepth = readI32()
	r.MarketSegmentID = readU32()
	r.MaxTradeVol = readU32()
	r.MinLotSize = readI32()
	r.MinLotSizeBlock = readI32()
	r.MinLotSizeRoundLot = readI32()
	r.MinTradeVol = readU32()
	r.ContractMultiplier = readI32()
	r.DecayQuantity = readI32()
	r.OriginalContractSize = readI32()

	r.TradingReferenceDate = readU16()
	r.ApplID = readU16()
	r.MaturityYear = readU16()
	r.DecayStartDate = readU16()
	r.ChannelID = readU16()

	r.RawSymbol = readStr(instrumentDefStringWidth_RawSymbol)
	r.Group = readStr(instrumentDefStringWidth_Group)
	r.Exchange = readStr(instrumentDefStringWidth_Exchange)
	r.Asset = readStr(instrumentDefStringWidth_Asset)
	r.CFI = readStr(instrumentDefStringWidth_CFI)
	r.SecurityType = readStr(instrumentDefStringWidth_SecurityType)
	r.Underlying = readStr(instrumentDefStringWidth_Underlying)
	r.StrikePriceCurrency = readStr(instrumentDefStringWidth_StrikePriceCurrency)
	r.Currency = readStr(instrumentDefStringWidth_Currency)
	r.SettlCurrency = readStr(instrumentDefStringWidth_SettlCurrency)
	r.SecuritySubType = readStr(instrumentDefStringWidth_SecuritySubType)
	r.UnitOfMeasure = readStr(instrumentDefStringWidth_UnitOfMeasure)

	r.InstrumentClass = InstrumentClass(readU8())
	r.MatchAlgorithm = MatchAlgorithm(readU8())
	r.MainFraction = readU8()
	r.PriceDisplayFormat = readU8()
	r.SettlPriceType = readU8()
	r.SubFraction = readU8()
	r.UnderlyingProduct = readU8()
	r.SecurityUpdateAction = SecurityUpdateAction(readU8())
	r.MaturityMonth = readU8()
	r.MaturityDay = readU8()
	r.MaturityWeek = readU8()
	r.UserDefinedInstrument = UserDefinedInstrument(readU8())
	r.ContractMultiplierUnit = int8(readU8())
	r.FlowScheduleType = int8(readU8())
	r.TickRule = readU8()
	r.Reserved1 = readU8()

	copy(r.Reserved[:], body[pos:pos+10])
	pos += 10

	return nil
}

func (r *InstrumentDefMsgV2) MarshalBinary() ([]byte, error) {
	b := make([]byte, InstrumentDefMsgV2_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	pos := 0
	writeI64 := func(v int64) { binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(v)); pos += 8 }
	writeU64 := func(v uint64) { binary.LittleEndian.PutUint64(body[pos:pos+8], v); pos += 8 }
	writeI32 := func(v int32) { binary.LittleEndian.PutUint32(body[pos:pos+4], uint32(v)); pos += 4 }
	writeU32 := func(v uint32) { binary.LittleEndian.PutUint32(body[pos:pos+4], v); pos += 4 }
	writeU16 := func(v uint16) { binary.LittleEndian.PutUint16(body[pos:pos+2], v); pos += 2 }
	writeStr := func(s string, width int) { copy(body[pos:pos+width], PadNullBytes(s, width)); pos += width }
	writeU8 := func(v uint8) { body[pos] = v; pos++ }

	writeU64(r.TsRecv)
	writeI64(r.MinPriceIncrement)
	writeI64(r.DisplayFactor)
	writeI64(r.Expiration)
	writeI64(r.Activation)
	writeI64(r.HighLimitPrice)
	writeI64(r.LowLimitPrice)
	writeI64(r.MaxPriceVariation)
	writeI64(r.TradingReferencePrice)
	writeI64(r.UnitOfMeasureQty)
	writeI64(r.MinPriceIncrementAmount)
	writeI64(r.PriceRatio)
	writeI64(r.StrikePrice)

	writeI32(r.InstAttribValue)
	writeU32(r.UnderlyingID)
	writeU32(r.RawInstrumentID)
	writeI32(r.MarketDepthImplied)
	writeI32(r.MarketDepth)
	writeU32(r.MarketSegmentID)
	writeU32(r.MaxTradeVol)
	writeI32(r.MinLotSize)
	writeI32(r.MinLotSizeBlock)
	writeI32(r.MinLotSizeRoundLot)
	writeU32(r.MinTradeVol)
	writeI32(r.ContractMultiplier)
	writeI32(r.DecayQuantity)
	writeI32(r.OriginalContractSize)

	writeU16(r.TradingReferenceDate)
	writeU16(r.ApplID)
	writeU16(r.MaturityYear)
	writeU16(r.DecayStartDate)
	writeU16(r.ChannelID)

	writeStr(r.RawSymbol, instrumentDefStringWidth_RawSymbol)
	writeStr(r.Group, instrumentDefStringWidth_Group)
	writeStr(r.Exchange, instrumentDefStringWidth_Exchange)
	writeStr(r.Asset, instrumentDefStringWidth_Asset)
	writeStr(r.CFI, instrumentDefStringWidth_CFI)
	writeStr(r.SecurityType, instrumentDefStringWidth_SecurityType)
	writeStr(r.Underlying, instrumentDefStringWidth_Underlying)
	writeStr(r.StrikePriceCurrency, instrumentDefStringWidth_StrikePriceCurrency)
	writeStr(r.Currency, instrumentDefStringWidth_Currency)
	writeStr(r.SettlCurrency, instrumentDefStringWidth_SettlCurrency)
	writeStr(r.SecuritySubType, instrumentDefStringWidth_SecuritySubType)
	writeStr(r.UnitOfMeasure, instrumentDefStringWidth_UnitOfMeasure)

	writeU8(uint8(r.InstrumentClass))
	writeU8(uint8(r.MatchAlgorithm))
	writeU8(r.MainFraction)
	writeU8(r.PriceDisplayFormat)
	writeU8(r.SettlPriceType)
	writeU8(r.SubFraction)
	writeU8(r.UnderlyingProduct)
	writeU8(uint8(r.SecurityUpdateAction))
	writeU8(r.MaturityMonth)
	writeU8(r.MaturityDay)
	writeU8(r.MaturityWeek)
	writeU8(uint8(r.UserDefinedInstrument))
	writeU8(uint8(r.ContractMultiplierUnit))
	writeU8(uint8(r.FlowScheduleType))
	writeU8(r.TickRule)
	writeU8(r.Reserved1)

	copy(body[pos:pos+10], r.Reserved[:])
	pos += 10

	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// InstrumentLeg is one leg of a multi-leg instrument, added in DBN v3.
type InstrumentLeg struct {
	LegCount                 uint16
	LegIndex                 uint16
	LegInstrumentID          uint32
	LegRawSymbol             string
	LegSide                  uint8
	LegUnderlyingID          uint32
	LegInstrumentClass       InstrumentClass
	LegRatioPriceNumerator   int64
	LegRatioPriceDenominator int64
	LegRatioQtyNumerator     int64
	LegRatioQtyDenominator   int64
	LegPrice                 int64
	LegDelta                 int64
	Reserved                 [37]byte
}

const instrumentLeg_Size = 2 + 2 + 4 + 21 + 1 + 4 + 1 + 8 + 8 + 8 + 8 + 8 + 8 + 37 // == 120

func fillInstrumentLeg_Raw(body []byte, leg *InstrumentLeg) {
	pos := 0
	leg.LegCount = binary.LittleEndian.Uint16(body[pos : pos+2])
	pos += 2
	leg.LegIndex = binary.LittleEndian.Uint16(body[pos : pos+2])
	pos += 2
	leg.LegInstrumentID = binary.LittleEndian.Uint32(body[pos : pos+4])
	pos += 4
	leg.LegRawSymbol = TrimNullBytes(body[pos : pos+21])
	pos += 21
	leg.LegSide = body[pos]
	pos++
	leg.LegUnderlyingID = binary.LittleEndian.Uint32(body[pos : pos+4])
	pos += 4
	leg.LegInstrumentClass = InstrumentClass(body[pos])
	pos++
	leg.LegRatioPriceNumerator = int64(binary.LittleEndian.Uint64(body[pos : pos+8]))
	pos += 8
	leg.LegRatioPriceDenominator = int64(binary.LittleEndian.Uint64(body[pos : pos+8]))
	pos += 8
	leg.LegRatioQtyNumerator = int64(binary.LittleEndian.Uint64(body[pos : pos+8]))
	pos += 8
	leg.LegRatioQtyDenominator = int64(binary.LittleEndian.Uint64(body[pos : pos+8]))
	pos += 8
	leg.LegPrice = int64(binary.LittleEndian.Uint64(body[pos : pos+8]))
	pos += 8
	leg.LegDelta = int64(binary.LittleEndian.Uint64(body[pos : pos+8]))
	pos += 8
	copy(leg.Reserved[:], body[pos:pos+37])
}

func marshalInstrumentLeg(body []byte, leg *InstrumentLeg) {
	pos := 0
	binary.LittleEndian.PutUint16(body[pos:pos+2], leg.LegCount)
	pos += 2
	binary.LittleEndian.PutUint16(body[pos:pos+2], leg.LegIndex)
	pos += 2
	binary.LittleEndian.PutUint32(body[pos:pos+4], leg.LegInstrumentID)
	pos += 4
	copy(body[pos:pos+21], PadNullBytes(leg.LegRawSymbol, 21))
	pos += 21
	body[pos] = leg.LegSide
	pos++
	binary.LittleEndian.PutUint32(body[pos:pos+4], leg.LegUnderlyingID)
	pos += 4
	body[pos] = uint8(leg.LegInstrumentClass)
	pos++
	binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(leg.LegRatioPriceNumerator))
	pos += 8
	binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(leg.LegRatioPriceDenominator))
	pos += 8
	binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(leg.LegRatioQtyNumerator))
	pos += 8
	binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(leg.LegRatioQtyDenominator))
	pos += 8
	binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(leg.LegPrice))
	pos += 8
	binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(leg.LegDelta))
	pos += 8
	copy(body[pos:pos+37], leg.Reserved[:])
}

// InstrumentDefMsgV3 is the version-3 instrument definition record: the v2
// layout plus a trailing multi-leg strategy block.
type InstrumentDefMsgV3 struct {
	InstrumentDefMsgV2
	Leg InstrumentLeg
}

const InstrumentDefMsgV3_Size = InstrumentDefMsgV2_Size + instrumentLeg_Size

func (*InstrumentDefMsgV3) RType() RType { return RType_InstrumentDef }

func (r *InstrumentDefMsgV3) Fill_Raw(b []byte) error {
	if len(b) < InstrumentDefMsgV3_Size {
		return unexpectedBytesError("InstrumentDefMsgV3", InstrumentDefMsgV3_Size, len(b))
	}
	if err := r.InstrumentDefMsgV2.Fill_Raw(b[:InstrumentDefMsgV2_Size]); err != nil {
		return err
	}
	fillInstrumentLeg_Raw(b[InstrumentDefMsgV2_Size:InstrumentDefMsgV3_Size], &r.Leg)
	return nil
}

func (r *InstrumentDefMsgV3) MarshalBinary() ([]byte, error) {
	v2Bytes, err := r.InstrumentDefMsgV2.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b := make([]byte, InstrumentDefMsgV3_Size)
	copy(b[:InstrumentDefMsgV2_Size], v2Bytes)
	marshalInstrumentLeg(b[InstrumentDefMsgV2_Size:], &r.Leg)
	return b, nil
}

///////////////////////////////////////////////////////////////////////////////

// StatMsgV2 is the version-2 statistics record (32-bit quantity).
type StatMsgV2 struct {
	Header       RHeader          `json:"hd" csv:"hd"`
	TsRecv       uint64           `json:"ts_recv" csv:"ts_recv"`
	TsRef        uint64           `json:"ts_ref" csv:"ts_ref"`
	Price        int64            `json:"price" csv:"price"`
	Quantity     int32            `json:"quantity" csv:"quantity"`
	StatType     StatType         `json:"stat_type" csv:"stat_type"`
	ChannelID    uint16           `json:"channel_id" csv:"channel_id"`
	UpdateAction StatUpdateAction `json:"update_action" csv:"update_action"`
	StatFlags    uint8            `json:"stat_flags" csv:"stat_flags"`
	Reserved     [14]byte         `json:"-" csv:"-"`
}

const StatMsgV2_Size = RHeader_Size + 48

func (*StatMsgV2) RType() RType { return RType_Statistics }
func (*StatMsgV2) RSize() uint8 { return StatMsgV2_Size }

func (r *StatMsgV2) Fill_Raw(b []byte) error {
	if len(b) < StatMsgV2_Size {
		return unexpectedBytesError("StatMsgV2", StatMsgV2_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.TsRef = binary.LittleEndian.Uint64(body[8:16])
	r.Price = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Quantity = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.StatType = StatType(binary.LittleEndian.Uint16(body[28:30]))
	r.ChannelID = binary.LittleEndian.Uint16(body[30:32])
	r.UpdateAction = StatUpdateAction(body[32])
	r.StatFlags = body[33]
	copy(r.Reserved[:], body[34:48])
	return nil
}

func (r *StatMsgV2) MarshalBinary() ([]byte, error) {
	b := make([]byte, StatMsgV2_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], r.TsRef)
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.Quantity))
	binary.LittleEndian.PutUint16(body[28:30], uint16(r.StatType))
	binary.LittleEndian.PutUint16(body[30:32], r.ChannelID)
	body[32] = uint8(r.UpdateAction)
	body[33] = r.StatFlags
	copy(body[34:48], r.Reserved[:])
	return b, nil
}

// StatMsgV3 is the version-3 statistics record (64-bit quantity).
type StatMsgV3 struct {
	Header       RHeader          `json:"hd" csv:"hd"`
	TsRecv       uint64           `json:"ts_recv" csv:"ts_recv"`
	TsRef        uint64           `json:"ts_ref" csv:"ts_ref"`
	Price        int64            `json:"price" csv:"price"`
	Quantity     int64            `json:"quantity" csv:"quantity"`
	StatType     StatType         `json:"stat_type" csv:"stat_type"`
	ChannelID    uint16           `json:"channel_id" csv:"channel_id"`
	UpdateAction StatUpdateAction `json:"update_action" csv:"update_action"`
	StatFlags    uint8            `json:"stat_flags" csv:"stat_flags"`
	Reserved     [10]byte         `json:"-" csv:"-"`
}

const StatMsgV3_Size = RHeader_Size + 48

func (*StatMsgV3) RType() RType { return RType_Statistics }
func (*StatMsgV3) RSize() uint8 { return StatMsgV3_Size }

func (r *StatMsgV3) Fill_Raw(b []byte) error {
	if len(b) < StatMsgV3_Size {
		return unexpectedBytesError("StatMsgV3", StatMsgV3_Size, len(b))
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.TsRef = binary.LittleEndian.Uint64(body[8:16])
	r.Price = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Quantity = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.StatType = StatType(binary.LittleEndian.Uint16(body[32:34]))
	r.ChannelID = binary.LittleEndian.Uint16(body[34:36])
	r.UpdateAction = StatUpdateAction(body[36])
	r.StatFlags = body[37]
	copy(r.Reserved[:], body[38:48])
	return nil
}

func (r *StatMsgV3) MarshalBinary() ([]byte, error) {
	b := make([]byte, StatMsgV3_Size)
	hb, _ := r.Header.MarshalBinary()
	copy(b[0:RHeader_Size], hb)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], r.TsRef)
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.Price))
	binary.LittleEndian.PutUint64(body[24:32], uint64(r.Quantity))
	binary.LittleEndian.PutUint16(body[32:34], uint16(r.StatType))
	binary.LittleEndian.PutUint16(body[34:36], r.ChannelID)
	body[36] = uint8(r.UpdateAction)
	body[37] = r.StatFlags
	copy(body[38:48], r.Reserved[:])
	return b, nil
}

// DecodeInstrumentDef decodes an InstrumentDef record appropriate to version
// (2 or 3), returning it as the Record interface.
func DecodeInstrumentDef(version uint8, b []byte) (Record, error) {
	switch version {
	case 2:
		r := &InstrumentDefMsgV2{}
		if err := r.Fill_Raw(b); err != nil {
			return nil, err
		}
		return r, nil
	case 3:
		r := &InstrumentDefMsgV3{}
		if err := r.Fill_Raw(b); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, &UnsupportedVersionError{Version: version}
	}
}

// DecodeStat decodes a Stat record appropriate to version (2 or 3),
// returning it as the Record interface.
func DecodeStat(version uint8, b []byte) (Record, error) {
	switch version {
	case 2:
		r := &StatMsgV2{}
		if err := r.Fill_Raw(b); err != nil {
			return nil, err
		}
		return r, nil
	case 3:
		r := &StatMsgV3{}
		if err := r.Fill_Raw(b); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, &UnsupportedVersionError{Version: version}
	}
}
