// Copyright (c) 2024 Neomantra Corp

package dbn

// Visitor receives each decoded record from a DbnScanner, one callback per
// wire shape. InstrumentDef and Statistics are version-dependent (their
// layout differs between DBN v2 and v3), so those two callbacks take the
// Record interface and the caller type-switches on *InstrumentDefMsgV2 vs
// *InstrumentDefMsgV3 (respectively *StatMsgV2 vs *StatMsgV3).
type Visitor interface {
	OnMbo(record *MboMsg) error
	OnMbp0(record *Mbp0) error
	OnMbp1(record *Mbp1Msg) error
	OnMbp10(record *Mbp10Msg) error
	OnCmbp1(record *Cmbp1Msg) error
	OnBbo(record *BboMsg) error

	OnOhlcv(record *Ohlcv) error
	OnImbalance(record *Imbalance) error
	OnStatus(record *StatusMsg) error
	OnStatMsg(record Record) error
	OnInstrumentDef(record Record) error

	OnErrorMsg(record *ErrorMsg) error
	OnSystemMsg(record *SystemMsg) error
	OnSymbolMappingMsg(record *SymbolMappingMsg) error

	OnStreamEnd() error
}
