// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func baseHeader(rtype dbn.RType, size int) dbn.RHeader {
	return dbn.RHeader{
		Length:       uint8(size / 4),
		RType:        rtype,
		PublisherID:  1,
		InstrumentID: 100,
		TsEvent:      1700000000000000000,
	}
}

var _ = Describe("Mbp0", func() {
	It("round-trips a trade record", func() {
		r := dbn.Mbp0{
			Header:    baseHeader(dbn.RType_Mbp0, dbn.Mbp0_Size),
			Price:     dbn.FloatToPrice(4321.50),
			Size:      10,
			Action:    uint8(dbn.Action_Trade),
			Side:      uint8(dbn.Side_Bid),
			Flags:     dbn.RFlag_LAST,
			Depth:     0,
			TsRecv:    1700000000100000000,
			TsInDelta: 500,
			Sequence:  99,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.Mbp0_Size))

		var decoded dbn.Mbp0
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
		Expect(decoded.RType()).To(Equal(dbn.RType_Mbp0))
	})

	It("rejects a truncated buffer", func() {
		var decoded dbn.Mbp0
		err := decoded.Fill_Raw(make([]byte, dbn.Mbp0_Size-1))
		Expect(err).ToNot(BeNil())
	})
})

var _ = Describe("MboMsg", func() {
	It("round-trips an order book event", func() {
		r := dbn.MboMsg{
			Header:    baseHeader(dbn.RType_Mbo, dbn.MboMsg_Size),
			OrderID:   55555,
			Price:     dbn.FloatToPrice(10.125),
			Size:      3,
			Flags:     0,
			ChannelID: 1,
			Action:    uint8(dbn.Action_Add),
			Side:      uint8(dbn.Side_Ask),
			TsRecv:    1700000000200000000,
			TsInDelta: -12,
			Sequence:  7,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())

		var decoded dbn.MboMsg
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("Mbp1Msg", func() {
	It("round-trips a trade-plus-top-of-book record", func() {
		r := dbn.Mbp1Msg{
			Header: baseHeader(dbn.RType_Mbp1, dbn.Mbp1Msg_Size),
			Price:  dbn.FloatToPrice(99.5),
			Size:   1,
			Action: uint8(dbn.Action_Trade),
			Side:   uint8(dbn.Side_Bid),
			TsRecv: 1700000000300000000,
			Levels: [1]dbn.BidAskPair{
				{BidPx: dbn.FloatToPrice(99.25), AskPx: dbn.FloatToPrice(99.75), BidSz: 4, AskSz: 6, BidCt: 1, AskCt: 1},
			},
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.Mbp1Msg_Size))

		var decoded dbn.Mbp1Msg
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("Mbp10Msg", func() {
	It("round-trips a 10-level book snapshot", func() {
		r := dbn.Mbp10Msg{
			Header: baseHeader(dbn.RType_Mbp10, dbn.Mbp10Msg_Size),
			Price:  dbn.FloatToPrice(1.0),
			Size:   2,
		}
		for i := 0; i < 10; i++ {
			r.Levels[i] = dbn.BidAskPair{
				BidPx: dbn.FloatToPrice(float64(100 - i)),
				AskPx: dbn.FloatToPrice(float64(100 + i)),
				BidSz: uint32(i + 1),
				AskSz: uint32(i + 2),
			}
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.Mbp10Msg_Size))

		var decoded dbn.Mbp10Msg
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("Cmbp1Msg", func() {
	It("round-trips a consolidated top-of-book record", func() {
		r := dbn.Cmbp1Msg{
			Header: baseHeader(dbn.RType_Cmbp1, dbn.Cmbp1Msg_Size),
			Price:  dbn.FloatToPrice(50.0),
			Size:   3,
			Levels: [1]dbn.ConsolidatedBidAskPair{
				{BidPx: dbn.FloatToPrice(49.75), AskPx: dbn.FloatToPrice(50.25), BidSz: 2, AskSz: 3, BidPb: 1, AskPb: 2},
			},
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())

		var decoded dbn.Cmbp1Msg
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("Ohlcv", func() {
	It("round-trips across every candle rtype", func() {
		for _, rtype := range []dbn.RType{
			dbn.RType_Ohlcv1S, dbn.RType_Ohlcv1M, dbn.RType_Ohlcv1H, dbn.RType_Ohlcv1D, dbn.RType_OhlcvEod,
		} {
			r := dbn.Ohlcv{
				Header: baseHeader(rtype, dbn.Ohlcv_Size),
				Open:   dbn.FloatToPrice(10),
				High:   dbn.FloatToPrice(12),
				Low:    dbn.FloatToPrice(9),
				Close:  dbn.FloatToPrice(11),
				Volume: 1000,
			}
			b, err := r.MarshalBinary()
			Expect(err).To(BeNil())

			var decoded dbn.Ohlcv
			Expect(decoded.Fill_Raw(b)).To(Succeed())
			Expect(decoded).To(Equal(r))
			Expect(decoded.RType()).To(Equal(rtype))
		}
	})
})

var _ = Describe("Imbalance", func() {
	It("round-trips with non-overlapping fields", func() {
		r := dbn.Imbalance{
			Header:               baseHeader(dbn.RType_Imbalance, dbn.Imbalance_Size),
			TsRecv:                1700000000400000000,
			RefPrice:              dbn.FloatToPrice(25.5),
			AuctionTime:           1700000000500000000,
			ContBookClrPrice:      dbn.FloatToPrice(25.4),
			AuctInterestClrPrice:  dbn.FloatToPrice(25.6),
			SsrFillingPrice:       dbn.FloatToPrice(25.3),
			IndMatchPrice:         dbn.FloatToPrice(25.45),
			UpperCollar:           dbn.FloatToPrice(26),
			LowerCollar:           dbn.FloatToPrice(24),
			PairedQty:             100,
			TotalImbalanceQty:     20,
			MarketImbalanceQty:    5,
			UnpairedQty:           -3,
			AuctionType:           'O',
			Side:                  uint8(dbn.Side_Bid),
			AuctionStatus:         1,
			FreezeStatus:          0,
			NumExtensions:         2,
			UnpairedSide:          uint8(dbn.Side_None),
			SignificantImbalance: 'Y',
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.Imbalance_Size))

		var decoded dbn.Imbalance
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("StatusMsg", func() {
	It("round-trips a trading-status update", func() {
		r := dbn.StatusMsg{
			Header:                baseHeader(dbn.RType_Status, dbn.StatusMsg_Size),
			TsRecv:                1700000000600000000,
			Action:                dbn.StatusAction_Halt,
			Reason:                dbn.StatusReason_Regulatory,
			TradingEvent:          dbn.TradingEvent_NoCancel,
			IsTrading:             dbn.TriState_No,
			IsQuoting:             dbn.TriState_Yes,
			IsShortSellRestricted: dbn.TriState_NotAvailable,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())

		var decoded dbn.StatusMsg
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})
