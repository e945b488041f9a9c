// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SystemMsg", func() {
	It("round-trips a heartbeat message", func() {
		r := dbn.SystemMsg{
			Header: baseHeader(dbn.RType_System, dbn.SystemMsg_Size),
			Msg:    "heartbeat",
			Code:   0,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.SystemMsg_Size))

		var decoded dbn.SystemMsg
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("ErrorMsg", func() {
	It("round-trips a gateway error message", func() {
		r := dbn.ErrorMsg{
			Header: baseHeader(dbn.RType_Error, dbn.ErrorMsg_Size),
			Err:    "auth failed",
			Code:   3,
			IsLast: 1,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.ErrorMsg_Size))

		var decoded dbn.ErrorMsg
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
		Expect(decoded.IsLastError()).To(BeTrue())
	})
})

var _ = Describe("SymbolMappingMsg", func() {
	It("round-trips with independently-lengthed symbol strings", func() {
		r := dbn.SymbolMappingMsg{
			Header:         baseHeader(dbn.RType_SymbolMapping, 0),
			StypeIn:        dbn.SType_RawSymbol,
			StypeInSymbol:  "ESM4",
			StypeOut:       dbn.SType_InstrumentId,
			StypeOutSymbol: "5482",
			StartTs:        1700000000000000000,
			EndTs:          1700000100000000000,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())

		var decoded dbn.SymbolMappingMsg
		n, err := decoded.Fill_Raw(b)
		Expect(err).To(BeNil())
		Expect(n).To(Equal(len(b)))
		Expect(decoded).To(Equal(r))
	})

	It("rejects a buffer truncated mid-symbol", func() {
		r := dbn.SymbolMappingMsg{
			Header:         baseHeader(dbn.RType_SymbolMapping, 0),
			StypeIn:        dbn.SType_RawSymbol,
			StypeInSymbol:  "ESM4",
			StypeOut:       dbn.SType_InstrumentId,
			StypeOutSymbol: "5482",
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())

		var decoded dbn.SymbolMappingMsg
		_, err = decoded.Fill_Raw(b[:len(b)-4])
		Expect(err).ToNot(BeNil())
	})
})
