// Copyright (c) 2024 Neomantra Corp
//
// Adapted from DataBento's DBN:
//   https://github.com/databento/dbn/blob/main/rust/dbn/src/enums.rs
//

package dbn

// Side
type Side uint8

const (
	// A sell order or sell aggressor in a trade.
	Side_Ask Side = 'A'
	// A buy order or a buy aggressor in a trade.
	Side_Bid Side = 'B'
	// No side specified by the original source.
	Side_None Side = 'N'
)

func (s Side) String() string {
	switch s {
	case Side_Ask:
		return "ask"
	case Side_Bid:
		return "bid"
	case Side_None:
		return "none"
	default:
		return "unknown"
	}
}

// Action
type Action uint8

const (
	// An existing order was modified.
	Action_Modify Action = 'M'
	// A trade executed.
	Action_Trade Action = 'T'
	// An existing order was filled.
	Action_Fill Action = 'F'
	// An order was cancelled.
	Action_Cancel Action = 'C'
	// A new order was added.
	Action_Add Action = 'A'
	// Reset the book; clear all orders for an instrument.
	Action_Clear Action = 'R'
)

func (a Action) String() string {
	switch a {
	case Action_Modify:
		return "modify"
	case Action_Trade:
		return "trade"
	case Action_Fill:
		return "fill"
	case Action_Cancel:
		return "cancel"
	case Action_Add:
		return "add"
	case Action_Clear:
		return "clear"
	default:
		return "unknown"
	}
}

// InstrumentClass
type InstrumentClass uint8

const (
	// A bond.
	InstrumentClass_Bond InstrumentClass = 'B'
	// A call option.
	InstrumentClass_Call InstrumentClass = 'C'
	// A future.
	InstrumentClass_Future InstrumentClass = 'F'
	// A stock.
	InstrumentClass_Stock InstrumentClass = 'K'
	// A spread composed of multiple instrument classes.
	InstrumentClass_MixedSpread InstrumentClass = 'M'
	// A put option.
	InstrumentClass_Put InstrumentClass = 'P'
	// A spread composed of futures.
	InstrumentClass_FutureSpread InstrumentClass = 'S'
	// A spread composed of options.
	InstrumentClass_OptionSpread InstrumentClass = 'T'
	// A foreign exchange spot.
	InstrumentClass_FxSpot InstrumentClass = 'X'
)

// MatchAlgorithm
type MatchAlgorithm uint8

const (
	// First-in-first-out matching.
	MatchAlgorithm_Fifo MatchAlgorithm = 'F'
	// A configurable match algorithm.
	MatchAlgorithm_Configurable MatchAlgorithm = 'K'
	// Trade quantity is allocated to resting orders based on a pro-rata percentage:
	// resting order quantity divided by total quantity.
	MatchAlgorithm_ProRata MatchAlgorithm = 'C'
	// Like Fifo but with LMM allocations prior to FIFO allocations.
	MatchAlgorithm_FifoLmm MatchAlgorithm = 'T'
	// Like ProRata but includes a configurable allocation to the first order
	// that improves the market.
	MatchAlgorithm_ThresholdProRata MatchAlgorithm = 'O'
	// Like FifoLmm but includes a configurable allocation to the first order
	// that improves the market.
	MatchAlgorithm_FifoTopLmm MatchAlgorithm = 'S'
	// Like ThresholdProRata but includes a special priority to LMMs.
	MatchAlgorithm_ThresholdProRataLmm MatchAlgorithm = 'Q'
	// Special variant used only for Eurodollar futures on CME.
	MatchAlgorithm_EurodollarFutures MatchAlgorithm = 'Y'
)

// UserDefinedInstrument
type UserDefinedInstrument uint8

const (
	// The instrument is not user-defined.
	UserDefinedInstrument_No UserDefinedInstrument = 'N'
	// The instrument is user-defined.
	UserDefinedInstrument_Yes UserDefinedInstrument = 'Y'
)

// SType is the symbology type.
type SType uint8

const (
	// Symbology using a unique numeric ID.
	SType_InstrumentId SType = 0
	// Symbology using the original symbols provided by the publisher.
	SType_RawSymbol SType = 1
	// Deprecated: a set of Databento-specific symbologies for referring to
	// groups of symbols.
	SType_Smart SType = 2
	// A Databento-specific symbology where one symbol may point to different
	// instruments at different points of time, e.g. to always refer to the
	// front month future.
	SType_Continuous SType = 3
	// A Databento-specific symbology for referring to a group of symbols by
	// one "parent" symbol, e.g. ES.FUT to refer to all ES futures.
	SType_Parent SType = 4
	// Symbology for US equities using NASDAQ Integrated suffix conventions.
	SType_Nasdaq SType = 5
	// Symbology for US equities using CMS suffix conventions.
	SType_Cms SType = 6
)

// RType is the sentinel value identifying a record's concrete wire layout.
type RType uint8

const (
	// comments from: https://github.com/databento/dbn/blob/main/rust/dbn/src/enums.rs
	RType_Mbp0            RType = 0x00 // market-by-price, depth 0 (Trades schema)
	RType_Mbp1            RType = 0x01 // market-by-price, depth 1 (also Tbbo)
	RType_Mbp10           RType = 0x0A // market-by-price, depth 10
	RType_OhlcvDeprecated RType = 0x11 // deprecated in 0.4.0
	RType_Status          RType = 0x12 // exchange status record
	RType_InstrumentDef   RType = 0x13 // instrument definition record
	RType_Imbalance       RType = 0x14 // order imbalance record
	RType_Error           RType = 0x15 // error from gateway
	RType_SymbolMapping   RType = 0x16 // symbol mapping record
	RType_System          RType = 0x17 // non-error gateway message, also heartbeats
	RType_Statistics      RType = 0x18 // publisher-calculated statistics record
	RType_Ohlcv1S         RType = 0x20 // OHLCV, 1-second cadence
	RType_Ohlcv1M         RType = 0x21 // OHLCV, 1-minute cadence
	RType_Ohlcv1H         RType = 0x22 // OHLCV, 1-hour cadence
	RType_Ohlcv1D         RType = 0x23 // OHLCV, 1-day cadence (UTC date)
	RType_OhlcvEod        RType = 0x24 // OHLCV, end-of-session cadence
	RType_Mbo             RType = 0xA0 // market by order record
	RType_Cmbp1           RType = 0xB1 // consolidated market-by-price, depth 1
	RType_Cbbo1S          RType = 0xC0 // consolidated BBO, 1-second sampling
	RType_Cbbo1M          RType = 0xC1 // consolidated BBO, 1-minute sampling
	RType_Tcbbo           RType = 0xC2 // trade with consolidated BBO
	RType_Bbo1S           RType = 0xC3 // BBO, 1-second sampling
	RType_Bbo1M           RType = 0xC4 // BBO, 1-minute sampling
	RType_Unknown         RType = 0xFF // Golang-only: unknown or invalid record type
)

// IsCompatibleWith returns true if rtype and rtype2 are interchangeable for
// decoding purposes: identical, or both cadences of the OHLCV family.
func (rtype RType) IsCompatibleWith(rtype2 RType) bool {
	if rtype == rtype2 {
		return true
	}
	return rtype.IsCandle() && rtype2.IsCandle()
}

// IsCandle returns true if rtype is one of the OHLCV cadences.
func (rtype RType) IsCandle() bool {
	switch rtype {
	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		return true
	default:
		return false
	}
}

// IsConsolidatedBbo returns true if rtype is one of the CBBO/TCBBO/BBO family,
// which all share the MBP-1 wire shape.
func (rtype RType) IsConsolidatedBbo() bool {
	switch rtype {
	case RType_Cbbo1S, RType_Cbbo1M, RType_Tcbbo, RType_Bbo1S, RType_Bbo1M:
		return true
	default:
		return false
	}
}

func (rtype RType) String() string {
	switch rtype {
	case RType_Mbp0:
		return "mbp-0"
	case RType_Mbp1:
		return "mbp-1"
	case RType_Mbp10:
		return "mbp-10"
	case RType_OhlcvDeprecated:
		return "ohlcv-deprecated"
	case RType_Status:
		return "status"
	case RType_InstrumentDef:
		return "instrument-def"
	case RType_Imbalance:
		return "imbalance"
	case RType_Error:
		return "error"
	case RType_SymbolMapping:
		return "symbol-mapping"
	case RType_System:
		return "system"
	case RType_Statistics:
		return "statistics"
	case RType_Ohlcv1S:
		return "ohlcv-1s"
	case RType_Ohlcv1M:
		return "ohlcv-1m"
	case RType_Ohlcv1H:
		return "ohlcv-1h"
	case RType_Ohlcv1D:
		return "ohlcv-1d"
	case RType_OhlcvEod:
		return "ohlcv-eod"
	case RType_Mbo:
		return "mbo"
	case RType_Cmbp1:
		return "cmbp-1"
	case RType_Cbbo1S:
		return "cbbo-1s"
	case RType_Cbbo1M:
		return "cbbo-1m"
	case RType_Tcbbo:
		return "tcbbo"
	case RType_Bbo1S:
		return "bbo-1s"
	case RType_Bbo1M:
		return "bbo-1m"
	default:
		return "unknown"
	}
}

// Schema identifies the normalized record schema of a dataset or stream.
type Schema uint16

const (
	// u16::MAX indicates a potential mix of schemas and record types, which
	// will always be the case for live data.
	Schema_Mixed Schema = 0xFFFF
	// Market by order.
	Schema_Mbo Schema = 0
	// Market by price with a book depth of 1.
	Schema_Mbp1 Schema = 1
	// Market by price with a book depth of 10.
	Schema_Mbp10 Schema = 2
	// All trade events with the BBO immediately before the effect of the trade.
	Schema_Tbbo Schema = 3
	// All trade events.
	Schema_Trades Schema = 4
	// OHLCV, 1-second interval.
	Schema_Ohlcv1S Schema = 5
	// OHLCV, 1-minute interval.
	Schema_Ohlcv1M Schema = 6
	// OHLCV, 1-hour interval.
	Schema_Ohlcv1H Schema = 7
	// OHLCV, 1-day interval based on UTC date.
	Schema_Ohlcv1D Schema = 8
	// Instrument definitions.
	Schema_Definition Schema = 9
	// Additional data disseminated by publishers.
	Schema_Statistics Schema = 10
	// Trading status events.
	Schema_Status Schema = 11
	// Auction imbalance events.
	Schema_Imbalance Schema = 12
	// OHLCV, daily cadence based on end of trading session.
	Schema_OhlcvEod Schema = 13
	// Best bid and offer, sampled every second.
	Schema_Bbo1S Schema = 14
	// Best bid and offer, sampled every minute.
	Schema_Bbo1M Schema = 15
	// Consolidated market-by-price with a book depth of 1.
	Schema_Cmbp1 Schema = 16
	// Consolidated best bid and offer, sampled every second.
	Schema_Cbbo1S Schema = 17
	// Consolidated best bid and offer, sampled every minute.
	Schema_Cbbo1M Schema = 18
	// Trade events with the consolidated BBO immediately before the trade.
	Schema_Tcbbo Schema = 19
)

func (s Schema) String() string {
	switch s {
	case Schema_Mbo:
		return "mbo"
	case Schema_Mbp1:
		return "mbp-1"
	case Schema_Mbp10:
		return "mbp-10"
	case Schema_Tbbo:
		return "tbbo"
	case Schema_Trades:
		return "trades"
	case Schema_Ohlcv1S:
		return "ohlcv-1s"
	case Schema_Ohlcv1M:
		return "ohlcv-1m"
	case Schema_Ohlcv1H:
		return "ohlcv-1h"
	case Schema_Ohlcv1D:
		return "ohlcv-1d"
	case Schema_Definition:
		return "definition"
	case Schema_Statistics:
		return "statistics"
	case Schema_Status:
		return "status"
	case Schema_Imbalance:
		return "imbalance"
	case Schema_OhlcvEod:
		return "ohlcv-eod"
	case Schema_Bbo1S:
		return "bbo-1s"
	case Schema_Bbo1M:
		return "bbo-1m"
	case Schema_Cmbp1:
		return "cmbp-1"
	case Schema_Cbbo1S:
		return "cbbo-1s"
	case Schema_Cbbo1M:
		return "cbbo-1m"
	case Schema_Tcbbo:
		return "tcbbo"
	case Schema_Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Encoding is a data encoding format.
type Encoding uint8

const (
	// Databento Binary Encoding.
	Encoding_Dbn Encoding = 0
	// Comma-separated values.
	Encoding_Csv Encoding = 1
	// JavaScript object notation.
	Encoding_Json Encoding = 2
)

// Compression is a compression format, or none if uncompressed.
type Compression uint8

const (
	// Uncompressed.
	Compression_None Compression = 0
	// Zstandard compressed.
	Compression_ZStd Compression = 1
)

// Constants for the bit flag record fields.
const (
	// Indicates it's the last message in the packet from the venue for a given instrument_id.
	RFlag_LAST uint8 = 1 << 7
	// Indicates a top-of-book message, not an individual order.
	RFlag_TOB uint8 = 1 << 6
	// Indicates the message was sourced from a replay, such as a snapshot server.
	RFlag_SNAPSHOT uint8 = 1 << 5
	// Indicates an aggregated price level message, not an individual order.
	RFlag_MBP uint8 = 1 << 4
	// Indicates the ts_recv value is inaccurate due to clock issues or packet reordering.
	RFlag_BAD_TS_RECV uint8 = 1 << 3
	// Indicates an unrecoverable gap was detected in the channel.
	RFlag_MAYBE_BAD_BOOK uint8 = 1 << 2
)

// SecurityUpdateAction is the type of InstrumentDef update.
type SecurityUpdateAction uint8

const (
	// A new instrument definition.
	SecurityUpdateAction_Add SecurityUpdateAction = 'A'
	// A modified instrument definition of an existing one.
	SecurityUpdateAction_Modify SecurityUpdateAction = 'M'
	// Removal of an instrument definition.
	SecurityUpdateAction_Delete SecurityUpdateAction = 'D'
	// Deprecated: still present in legacy files.
	SecurityUpdateAction_Invalid SecurityUpdateAction = '~'
)

// StatType is the type of statistic contained in a StatMsg.
type StatType uint16

const (
	// The price of the first trade of an instrument. price will be set.
	StatType_OpeningPrice StatType = 1
	// The probable price of the first trade published during pre-open.
	StatType_IndicativeOpeningPrice StatType = 2
	// The settlement price of an instrument.
	StatType_SettlementPrice StatType = 3
	// The lowest trade price of an instrument during the trading session.
	StatType_TradingSessionLowPrice StatType = 4
	// The highest trade price of an instrument during the trading session.
	StatType_TradingSessionHighPrice StatType = 5
	// The number of contracts cleared for an instrument on the previous trading date.
	StatType_ClearedVolume StatType = 6
	// The lowest offer price for an instrument during the trading session.
	StatType_LowestOffer StatType = 7
	// The highest bid price for an instrument during the trading session.
	StatType_HighestBid StatType = 8
	// The current number of outstanding contracts of an instrument.
	StatType_OpenInterest StatType = 9
	// The volume-weighted average price (VWAP) for a fixing period.
	StatType_FixingPrice StatType = 10
	// The last trade price during a trading session.
	StatType_ClosePrice StatType = 11
	// The change in price from the previous session's close.
	StatType_NetChange StatType = 12
	// The volume-weighted average price (VWAP) during the trading session.
	StatType_Vwap StatType = 13
)

// StatUpdateAction is the type of StatMsg update.
type StatUpdateAction uint8

const (
	// A new statistic.
	StatUpdateAction_New StatUpdateAction = 1
	// A removal of a statistic.
	StatUpdateAction_Delete StatUpdateAction = 2
)

// StatusAction is the primary enum for the type of StatusMsg update.
type StatusAction uint16

const (
	StatusAction_None                   StatusAction = 0
	StatusAction_PreOpen                StatusAction = 1
	StatusAction_PreCross                StatusAction = 2
	StatusAction_Quoting                StatusAction = 3
	StatusAction_Cross                   StatusAction = 4
	StatusAction_Rotation                StatusAction = 5
	StatusAction_NewPriceIndication       StatusAction = 6
	StatusAction_Trading                  StatusAction = 7
	StatusAction_Halt                     StatusAction = 8
	StatusAction_Pause                    StatusAction = 9
	StatusAction_Suspend                  StatusAction = 10
	StatusAction_PreClose                 StatusAction = 11
	StatusAction_Close                    StatusAction = 12
	StatusAction_PostClose                StatusAction = 13
	StatusAction_SsrChange                StatusAction = 14
	StatusAction_NotAvailableForTrading    StatusAction = 15
)

// StatusReason is the secondary enum for a StatusMsg update, explaining the
// cause of a halt or other change in Action. It is its own named type in
// this module (the teacher repo this was adapted from had declared these
// constants with the StatusAction type by mistake).
type StatusReason uint16

const (
	StatusReason_None                          StatusReason = 0
	StatusReason_Scheduled                      StatusReason = 1
	StatusReason_SurveillanceIntervention       StatusReason = 2
	StatusReason_MarketEvent                    StatusReason = 3
	StatusReason_InstrumentActivation           StatusReason = 4
	StatusReason_InstrumentExpiration           StatusReason = 5
	StatusReason_RecoveryInProcess              StatusReason = 6
	StatusReason_Regulatory                     StatusReason = 10
	StatusReason_Administrative                 StatusReason = 11
	StatusReason_NonCompliance                  StatusReason = 12
	StatusReason_FilingsNotCurrent              StatusReason = 13
	StatusReason_SecTradingSuspension           StatusReason = 14
	StatusReason_NewIssue                       StatusReason = 15
	StatusReason_IssueAvailable                 StatusReason = 16
	StatusReason_IssuesReviewed                 StatusReason = 17
	StatusReason_FilingReqsSatisfied            StatusReason = 18
	StatusReason_NewsPending                    StatusReason = 30
	StatusReason_NewsReleased                   StatusReason = 31
	StatusReason_NewsAndResumptionTimes         StatusReason = 32
	StatusReason_NewsNotForthcoming             StatusReason = 33
	StatusReason_OrderImbalance                 StatusReason = 40
	StatusReason_LuldPause                      StatusReason = 50
	StatusReason_Operational                    StatusReason = 60
	StatusReason_AdditionalInformationRequested StatusReason = 70
	StatusReason_MergerEffective                StatusReason = 80
	StatusReason_Etf                            StatusReason = 90
	StatusReason_CorporateAction                StatusReason = 100
	StatusReason_NewSecurityOffering             StatusReason = 110
	StatusReason_MarketWideHaltLevel1            StatusReason = 120
	StatusReason_MarketWideHaltLevel2            StatusReason = 121
	StatusReason_MarketWideHaltLevel3            StatusReason = 122
	StatusReason_MarketWideHaltCarryover         StatusReason = 123
	StatusReason_MarketWideHaltResumption        StatusReason = 124
	StatusReason_QuotationNotAvailable           StatusReason = 130
)

// TradingEvent gives further information about a status update.
type TradingEvent uint16

const (
	// No additional information given.
	TradingEvent_None TradingEvent = 0
	// Order entry and modification are not allowed.
	TradingEvent_NoCancel TradingEvent = 1
	// A change of trading session occurred. Daily statistics are reset.
	TradingEvent_ChangeTradingSession TradingEvent = 2
	// Implied matching is available.
	TradingEvent_ImpliedMatchingOn TradingEvent = 3
	// Implied matching is not available.
	TradingEvent_ImpliedMatchingOff TradingEvent = 4
)

// TriState represents an unknown, true, or false value: an optional bool with
// a human-readable wire representation. Its own named type in this module
// (the teacher repo had declared these constants with the TradingEvent type
// by mistake).
type TriState uint8

const (
	// The value is not applicable or not known.
	TriState_NotAvailable TriState = '~'
	// False
	TriState_No TriState = 'N'
	// True
	TriState_Yes TriState = 'Y'
)

// VersionUpgradePolicy controls how to handle decoding DBN data from a prior version.
type VersionUpgradePolicy uint8

const (
	// Decode data from previous versions as-is.
	VersionUpgradePolicy_AsIs VersionUpgradePolicy = 0
	// Decode data from previous versions converting it to the latest version.
	VersionUpgradePolicy_Upgrade VersionUpgradePolicy = 1
)
