// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func baseInstrumentDefV2() dbn.InstrumentDefMsgV2 {
	return dbn.InstrumentDefMsgV2{
		Header:                baseHeader(dbn.RType_InstrumentDef, dbn.InstrumentDefMsgV2_Size),
		TsRecv:                1700000000000000000,
		MinPriceIncrement:     dbn.FloatToPrice(0.01),
		DisplayFactor:         dbn.FloatToPrice(1),
		Expiration:            1800000000000000000,
		Activation:            1600000000000000000,
		HighLimitPrice:        dbn.FloatToPrice(5000),
		LowLimitPrice:         dbn.FloatToPrice(4000),
		MaxPriceVariation:     dbn.FloatToPrice(100),
		StrikePrice:           dbn.UNDEF_PRICE,
		InstAttribValue:       1,
		UnderlyingID:          42,
		RawInstrumentID:       42,
		MarketDepth:           10,
		MaxTradeVol:           1000000,
		MinLotSize:            1,
		MinTradeVol:           1,
		ContractMultiplier:    50,
		TradingReferenceDate:  20240412,
		RawSymbol:             "ESM4",
		Group:                 "ES",
		Exchange:               "XCME",
		Asset:                 "ES",
		CFI:                   "FXXXXX",
		SecurityType:          "FUT",
		Currency:              "USD",
		InstrumentClass:       dbn.InstrumentClass_Future,
		MatchAlgorithm:        dbn.MatchAlgorithm_Fifo,
		SecurityUpdateAction:  dbn.SecurityUpdateAction_Add,
		UserDefinedInstrument: dbn.UserDefinedInstrument_No,
	}
}

var _ = Describe("InstrumentDefMsgV2", func() {
	It("round-trips through MarshalBinary/Fill_Raw at the spec-mandated size", func() {
		r := baseInstrumentDefV2()
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.InstrumentDefMsgV2_Size))
		Expect(dbn.InstrumentDefMsgV2_Size).To(Equal(400))

		var decoded dbn.InstrumentDefMsgV2
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("InstrumentDefMsgV3", func() {
	It("round-trips the v2 fields plus the multi-leg block at the spec-mandated size", func() {
		r := dbn.InstrumentDefMsgV3{
			InstrumentDefMsgV2: baseInstrumentDefV2(),
			Leg: dbn.InstrumentLeg{
				LegCount:        2,
				LegIndex:        0,
				LegInstrumentID: 7,
				LegRawSymbol:    "ESM4-ESU4",
				LegSide:         uint8(dbn.Side_Bid),
				LegUnderlyingID: 42,
				LegInstrumentClass: dbn.InstrumentClass_FutureSpread,
				LegRatioPriceNumerator:   1,
				LegRatioPriceDenominator: 1,
				LegRatioQtyNumerator:     1,
				LegRatioQtyDenominator:   1,
				LegPrice:                 dbn.FloatToPrice(0.25),
				LegDelta:                 dbn.UNDEF_PRICE,
			},
		}
		r.Header = baseHeader(dbn.RType_InstrumentDef, dbn.InstrumentDefMsgV3_Size)

		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())
		Expect(b).To(HaveLen(dbn.InstrumentDefMsgV3_Size))
		Expect(dbn.InstrumentDefMsgV3_Size).To(Equal(520))

		var decoded dbn.InstrumentDefMsgV3
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("StatMsgV2 and StatMsgV3", func() {
	It("both occupy 64 bytes total despite differing Quantity width", func() {
		Expect(dbn.StatMsgV2_Size).To(Equal(64))
		Expect(dbn.StatMsgV3_Size).To(Equal(64))
	})

	It("round-trips a v2 (32-bit quantity) statistic", func() {
		r := dbn.StatMsgV2{
			Header:       baseHeader(dbn.RType_Statistics, dbn.StatMsgV2_Size),
			TsRecv:       1700000000700000000,
			TsRef:        1700000000000000000,
			Price:        dbn.FloatToPrice(42.0),
			Quantity:     100,
			StatType:     dbn.StatType_OpeningPrice,
			ChannelID:    1,
			UpdateAction: dbn.StatUpdateAction_New,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())

		var decoded dbn.StatMsgV2
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})

	It("round-trips a v3 (64-bit quantity) statistic", func() {
		r := dbn.StatMsgV3{
			Header:       baseHeader(dbn.RType_Statistics, dbn.StatMsgV3_Size),
			TsRecv:       1700000000800000000,
			TsRef:        1700000000000000000,
			Price:        dbn.FloatToPrice(42.0),
			Quantity:     1 << 40,
			StatType:     dbn.StatType_SettlementPrice,
			ChannelID:    1,
			UpdateAction: dbn.StatUpdateAction_New,
		}
		b, err := r.MarshalBinary()
		Expect(err).To(BeNil())

		var decoded dbn.StatMsgV3
		Expect(decoded.Fill_Raw(b)).To(Succeed())
		Expect(decoded).To(Equal(r))
	})
})

var _ = Describe("DecodeInstrumentDef and DecodeStat", func() {
	It("dispatches to the right concrete type by version", func() {
		v2 := baseInstrumentDefV2()
		b, err := v2.MarshalBinary()
		Expect(err).To(BeNil())

		rec, err := dbn.DecodeInstrumentDef(2, b)
		Expect(err).To(BeNil())
		Expect(rec).To(BeAssignableToTypeOf(&dbn.InstrumentDefMsgV2{}))

		_, err = dbn.DecodeInstrumentDef(9, b)
		Expect(err).ToNot(BeNil())
		var unsupported *dbn.UnsupportedVersionError
		Expect(err).To(BeAssignableToTypeOf(unsupported))
	})

	It("rejects unsupported stat versions", func() {
		_, err := dbn.DecodeStat(9, make([]byte, dbn.StatMsgV2_Size))
		Expect(err).ToNot(BeNil())
		var unsupported *dbn.UnsupportedVersionError
		Expect(err).To(BeAssignableToTypeOf(unsupported))
	})
})
