// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"math"
	"time"

	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Primitives", func() {
	Context("price conversion", func() {
		It("converts fixed9 to float correctly", func() {
			Expect(dbn.Fixed9ToFloat64(1234567890123456789)).To(Equal(float64(1234567890.123456789)))
		})
		It("round-trips FloatToPrice/PriceToFloat", func() {
			price := dbn.FloatToPrice(4321.50)
			Expect(dbn.PriceToFloat(price)).To(Equal(4321.50))
		})
		It("maps UNDEF_PRICE to NaN and back", func() {
			Expect(math.IsNaN(dbn.PriceToFloat(dbn.UNDEF_PRICE))).To(BeTrue())
			Expect(dbn.FloatToPrice(math.NaN())).To(Equal(dbn.UNDEF_PRICE))
		})
	})

	Context("timestamp conversion", func() {
		It("converts timestamp to sec, nanos correctly", func() {
			sec, nanos := dbn.TimestampToSecNanos(1234567890123456789)
			Expect(sec).To(Equal(int64(1234567890)))
			Expect(nanos).To(Equal(int64(123456789)))
		})
		It("converts timestamps to time.Time correctly", func() {
			Expect(dbn.TimestampToTime(0).UTC()).To(Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(dbn.TimestampToTime(1234567890123456789).UTC()).To(Equal(time.Date(2009, 02, 13, 23, 31, 30, 123456789, time.UTC)))
		})
		It("round-trips DatetimeToTs/TsToDatetime", func() {
			when := time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC)
			ts := dbn.DatetimeToTs(when)
			got, ok := dbn.TsToDatetime(ts)
			Expect(ok).To(BeTrue())
			Expect(got.UTC()).To(Equal(when))
		})
		It("reports UNDEF_TIMESTAMP as INT64_MAX, not UINT64_MAX", func() {
			Expect(dbn.UNDEF_TIMESTAMP).To(Equal(uint64(math.MaxInt64)))
		})
		It("treats UNDEF_TIMESTAMP as undefined", func() {
			_, ok := dbn.TsToDatetime(dbn.UNDEF_TIMESTAMP)
			Expect(ok).To(BeFalse())
		})
		It("converts times to YMD correctly", func() {
			Expect(dbn.TimeToYMD(time.Time{})).To(Equal(uint32(0)))
			Expect(dbn.TimeToYMD(time.Date(2024, 04, 12, 0, 0, 0, 0, time.UTC))).To(Equal(uint32(20240412)))
		})
	})

	Context("fixed-width byte slots", func() {
		It("trims null bytes correctly", func() {
			Expect(dbn.TrimNullBytes([]byte("hello\x00\x00\x00\x00"))).To(Equal("hello"))
		})
		It("does not malform regular strings", func() {
			Expect(dbn.TrimNullBytes([]byte("hello"))).To(Equal("hello"))
		})
		It("pads and truncates to a fixed width", func() {
			Expect(dbn.PadNullBytes("ESM4", 8)).To(Equal([]byte{'E', 'S', 'M', '4', 0, 0, 0, 0}))
			Expect(dbn.PadNullBytes("ESM4TOOLONG", 4)).To(Equal([]byte("ESM4")))
		})
	})
})
