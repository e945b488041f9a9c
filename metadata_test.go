// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"bytes"
	"unsafe"

	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Metadata", func() {
	Context("correctness", func() {
		It("metadata sizes should be correct", func() {
			Expect(unsafe.Sizeof(dbn.RType_Error)).To(Equal(uintptr(1)))
			Expect(unsafe.Sizeof(dbn.SType_RawSymbol)).To(Equal(uintptr(1)))
			Expect(unsafe.Sizeof(dbn.Schema_Mixed)).To(Equal(uintptr(2)))
			Expect(unsafe.Sizeof(dbn.MetadataPrefix{})).To(Equal(uintptr(dbn.Metadata_PrefixSize)))
			Expect(dbn.Metadata_DatasetCstrLen).To(Equal(16))
		})
	})

	Context("round-trip", func() {
		baseMetadata := func(version uint8) *dbn.Metadata {
			return &dbn.Metadata{
				VersionNum:    version,
				Dataset:       "GLBX.MDP3",
				Schema:        dbn.Schema_Ohlcv1S,
				Start:         1609160400000000000,
				End:           1609200000000000000,
				Limit:         2,
				StypeIn:       dbn.SType_RawSymbol,
				StypeOut:      dbn.SType_InstrumentId,
				TsOut:         0,
				SymbolCstrLen: dbn.MetadataV2_SymbolCstrLen,
				Symbols:       []string{"ESH1"},
				Mappings: []dbn.MappingEntry{
					{RawSymbol: "ESH1", SymbolOut: "5482", StartTs: 1609142400000000000, EndTs: 1609228800000000000},
				},
			}
		}

		It("round-trips a v2 header through Write/ReadMetadata", func() {
			m := baseMetadata(2)
			var buf bytes.Buffer
			Expect(m.Write(&buf)).To(Succeed())

			decoded, err := dbn.ReadMetadata(&buf)
			Expect(err).To(BeNil())
			Expect(decoded.VersionNum).To(Equal(uint8(2)))
			Expect(decoded.Dataset).To(Equal("GLBX.MDP3"))
			Expect(decoded.Schema).To(Equal(dbn.Schema_Ohlcv1S))
			Expect(decoded.Start).To(Equal(uint64(1609160400000000000)))
			Expect(decoded.End).To(Equal(uint64(1609200000000000000)))
			Expect(decoded.StypeIn).To(Equal(dbn.SType_RawSymbol))
			Expect(decoded.StypeOut).To(Equal(dbn.SType_InstrumentId))
			Expect(decoded.SymbolCstrLen).To(Equal(uint16(dbn.MetadataV2_SymbolCstrLen)))
			Expect(decoded.Symbols).To(Equal([]string{"ESH1"}))
			Expect(decoded.Mappings).To(HaveLen(1))
			Expect(decoded.Mappings[0].RawSymbol).To(Equal("ESH1"))
			Expect(decoded.Mappings[0].SymbolOut).To(Equal("5482"))
			Expect(decoded.Mappings[0].StartTs).To(Equal(int64(1609142400000000000)))
			Expect(decoded.Mappings[0].EndTs).To(Equal(int64(1609228800000000000)))
		})

		It("round-trips a v3 header, using u32 length prefixes", func() {
			m := baseMetadata(3)
			var buf bytes.Buffer
			Expect(m.Write(&buf)).To(Succeed())

			decoded, err := dbn.ReadMetadata(&buf)
			Expect(err).To(BeNil())
			Expect(decoded.VersionNum).To(Equal(uint8(3)))
			Expect(decoded.Symbols).To(Equal([]string{"ESH1"}))
			Expect(decoded.Mappings).To(HaveLen(1))
		})

		It("rejects an unsupported version", func() {
			var buf bytes.Buffer
			buf.Write([]byte{'D', 'B', 'N', 9})
			buf.Write([]byte{0, 0, 0, 0}) // Length=0
			_, err := dbn.ReadMetadata(&buf)
			Expect(err).ToNot(BeNil())
			var unsupported *dbn.UnsupportedVersionError
			Expect(err).To(BeAssignableToTypeOf(unsupported))
		})

		It("rejects a stream missing the DBN magic prefix", func() {
			var buf bytes.Buffer
			buf.Write([]byte{'X', 'X', 'X', 2})
			buf.Write([]byte{0, 0, 0, 0})
			_, err := dbn.ReadMetadata(&buf)
			Expect(err).ToNot(BeNil())
			var invalid *dbn.InvalidFormatError
			Expect(err).To(BeAssignableToTypeOf(invalid))
		})
	})
})
