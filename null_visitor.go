// Copyright (c) 2024 Neomantra Corp

package dbn

// NullVisitor is a no-op implementation of the Visitor interface.
// It is useful for embedding and overriding just the callbacks one cares
// about.
type NullVisitor struct {
}

func (v *NullVisitor) OnMbo(record *MboMsg) error {
	return nil
}

func (v *NullVisitor) OnMbp0(record *Mbp0) error {
	return nil
}

func (v *NullVisitor) OnMbp1(record *Mbp1Msg) error {
	return nil
}

func (v *NullVisitor) OnMbp10(record *Mbp10Msg) error {
	return nil
}

func (v *NullVisitor) OnCmbp1(record *Cmbp1Msg) error {
	return nil
}

func (v *NullVisitor) OnBbo(record *BboMsg) error {
	return nil
}

func (v *NullVisitor) OnOhlcv(record *Ohlcv) error {
	return nil
}

func (v *NullVisitor) OnImbalance(record *Imbalance) error {
	return nil
}

func (v *NullVisitor) OnStatus(record *StatusMsg) error {
	return nil
}

func (v *NullVisitor) OnStatMsg(record Record) error {
	return nil
}

func (v *NullVisitor) OnInstrumentDef(record Record) error {
	return nil
}

func (v *NullVisitor) OnErrorMsg(record *ErrorMsg) error {
	return nil
}

func (v *NullVisitor) OnSystemMsg(record *SystemMsg) error {
	return nil
}

func (v *NullVisitor) OnSymbolMappingMsg(record *SymbolMappingMsg) error {
	return nil
}

func (v *NullVisitor) OnStreamEnd() error {
	return nil
}
