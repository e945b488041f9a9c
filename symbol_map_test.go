// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"time"

	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("TsSymbolMap", func() {
	It("expands a mapping interval across its covered calendar days", func() {
		tsm := dbn.NewTsSymbolMap()
		md := &dbn.Metadata{
			StypeIn:  dbn.SType_RawSymbol,
			StypeOut: dbn.SType_InstrumentId,
			Mappings: []dbn.MappingEntry{
				{
					RawSymbol: "ESM4",
					SymbolOut: "5482",
					StartTs:   int64(dbn.DatetimeToTs(mustDate(2024, 4, 10))),
					EndTs:     int64(dbn.DatetimeToTs(mustDate(2024, 4, 12))),
				},
			},
		}
		Expect(tsm.FillFromMetadata(md)).To(Succeed())
		Expect(tsm.IsEmpty()).To(BeFalse())
		Expect(tsm.Get(mustDate(2024, 4, 11), 5482)).To(Equal("ESM4"))
		Expect(tsm.Get(mustDate(2024, 4, 20), 5482)).To(Equal(""))
	})
})

var _ = Describe("PitSymbolMap", func() {
	It("resolves mappings valid at a point in time", func() {
		p := dbn.NewPitSymbolMap()
		md := &dbn.Metadata{
			StypeIn:  dbn.SType_RawSymbol,
			StypeOut: dbn.SType_InstrumentId,
			Start:    dbn.DatetimeToTs(mustDate(2024, 4, 1)),
			End:      dbn.DatetimeToTs(mustDate(2024, 4, 30)),
			Mappings: []dbn.MappingEntry{
				{
					RawSymbol: "ESM4",
					SymbolOut: "5482",
					StartTs:   int64(dbn.DatetimeToTs(mustDate(2024, 4, 10))),
					EndTs:     int64(dbn.DatetimeToTs(mustDate(2024, 4, 12))),
				},
			},
		}
		ts := dbn.DatetimeToTs(mustDate(2024, 4, 11))
		Expect(p.FillFromMetadata(md, ts)).To(Succeed())
		Expect(p.Get(5482)).To(Equal("ESM4"))
	})

	It("rejects timestamps outside the query range", func() {
		p := dbn.NewPitSymbolMap()
		md := &dbn.Metadata{
			StypeIn:  dbn.SType_RawSymbol,
			StypeOut: dbn.SType_InstrumentId,
			Start:    dbn.DatetimeToTs(mustDate(2024, 4, 1)),
			End:      dbn.DatetimeToTs(mustDate(2024, 4, 30)),
		}
		ts := dbn.DatetimeToTs(mustDate(2024, 5, 1))
		err := p.FillFromMetadata(md, ts)
		Expect(err).To(Equal(dbn.ErrDateOutsideQueryRange))
	})

	It("rejects metadata with neither stype as InstrumentId", func() {
		p := dbn.NewPitSymbolMap()
		md := &dbn.Metadata{
			StypeIn:  dbn.SType_RawSymbol,
			StypeOut: dbn.SType_Parent,
		}
		err := p.FillFromMetadata(md, 0)
		Expect(err).To(Equal(dbn.ErrWrongStypesForMapping))
	})
})
