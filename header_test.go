// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RHeader", func() {
	It("round-trips through MarshalBinary/FillRHeader_Raw", func() {
		h := dbn.RHeader{
			Length:       uint8(dbn.Mbp0_Size / 4),
			RType:        dbn.RType_Mbp0,
			PublisherID:  42,
			InstrumentID: 1234,
			TsEvent:      1700000000000000000,
		}
		b, err := h.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.RHeader_Size))

		var decoded dbn.RHeader
		Expect(dbn.FillRHeader_Raw(b, &decoded)).To(Succeed())
		Expect(decoded).To(Equal(h))
		Expect(decoded.LengthBytes()).To(Equal(dbn.Mbp0_Size))
	})

	It("rejects a buffer shorter than RHeader_Size", func() {
		var decoded dbn.RHeader
		err := dbn.FillRHeader_Raw(make([]byte, 4), &decoded)
		Expect(err).ToNot(BeNil())
		var lenErr *dbn.UnexpectedLengthError
		Expect(err).To(BeAssignableToTypeOf(lenErr))
	})
})

var _ = Describe("BidAskPair", func() {
	It("round-trips through MarshalBinary/FillBidAskPair_Raw", func() {
		p := dbn.BidAskPair{
			BidPx: dbn.FloatToPrice(100.25),
			AskPx: dbn.FloatToPrice(100.50),
			BidSz: 10,
			AskSz: 20,
			BidCt: 1,
			AskCt: 2,
		}
		b, err := p.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.BidAskPair_Size))

		var decoded dbn.BidAskPair
		Expect(dbn.FillBidAskPair_Raw(b, &decoded)).To(Succeed())
		Expect(decoded).To(Equal(p))
	})
})

var _ = Describe("ConsolidatedBidAskPair", func() {
	It("round-trips through MarshalBinary/FillConsolidatedBidAskPair_Raw", func() {
		p := dbn.ConsolidatedBidAskPair{
			BidPx: dbn.FloatToPrice(4500.00),
			AskPx: dbn.FloatToPrice(4500.25),
			BidSz: 5,
			AskSz: 7,
			BidPb: 2,
			AskPb: 3,
		}
		b, err := p.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.ConsolidatedBidAskPair_Size))

		var decoded dbn.ConsolidatedBidAskPair
		Expect(dbn.FillConsolidatedBidAskPair_Raw(b, &decoded)).To(Succeed())
		Expect(decoded).To(Equal(p))
	})
})
