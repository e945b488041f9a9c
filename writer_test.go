// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"bytes"
	"os"

	"github.com/neomantra/dbn-go-codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StreamWriter", func() {
	It("tracks Start/End/Limit and backpatches the header on a seekable destination", func() {
		f, err := os.CreateTemp("", "dbn-writer-*.dbn")
		Expect(err).To(BeNil())
		defer os.Remove(f.Name())
		defer f.Close()

		sw := dbn.NewStreamWriter(f, dbn.Metadata{
			VersionNum: 2,
			Dataset:    "GLBX.MDP3",
			Schema:     dbn.Schema_Trades,
			StypeIn:    dbn.SType_RawSymbol,
			StypeOut:   dbn.SType_InstrumentId,
		})
		Expect(sw.Start()).To(Succeed())

		trades := []dbn.Mbp0{
			{Header: dbn.RHeader{Length: uint8(dbn.Mbp0_Size / 4), RType: dbn.RType_Mbp0, TsEvent: 100}, Price: dbn.FloatToPrice(10)},
			{Header: dbn.RHeader{Length: uint8(dbn.Mbp0_Size / 4), RType: dbn.RType_Mbp0, TsEvent: 300}, Price: dbn.FloatToPrice(11)},
			{Header: dbn.RHeader{Length: uint8(dbn.Mbp0_Size / 4), RType: dbn.RType_Mbp0, TsEvent: 200}, Price: dbn.FloatToPrice(12)},
		}
		for _, trade := range trades {
			raw, err := trade.MarshalBinary()
			Expect(err).To(BeNil())
			Expect(sw.WriteRecord(trade.Header, raw)).To(Succeed())
		}
		Expect(sw.Close()).To(Succeed())

		_, err = f.Seek(0, 0)
		Expect(err).To(BeNil())
		md, err := dbn.ReadMetadata(f)
		Expect(err).To(BeNil())
		Expect(md.Start).To(Equal(uint64(100)))
		Expect(md.End).To(Equal(uint64(300)))
		Expect(md.Limit).To(Equal(uint64(3)))
	})

	It("writes the provisional sentinels when closed with zero records", func() {
		f, err := os.CreateTemp("", "dbn-writer-empty-*.dbn")
		Expect(err).To(BeNil())
		defer os.Remove(f.Name())
		defer f.Close()

		sw := dbn.NewStreamWriter(f, dbn.Metadata{VersionNum: 2, Dataset: "GLBX.MDP3"})
		Expect(sw.Close()).To(Succeed())

		_, err = f.Seek(0, 0)
		Expect(err).To(BeNil())
		md, err := dbn.ReadMetadata(f)
		Expect(err).To(BeNil())
		Expect(md.Start).To(Equal(dbn.UNDEF_TIMESTAMP))
		Expect(md.End).To(Equal(uint64(0)))
		Expect(md.Limit).To(Equal(uint64(0)))
	})

	It("rejects writes after Close", func() {
		var buf bytes.Buffer
		sw := dbn.NewStreamWriter(&buf, dbn.Metadata{VersionNum: 2, Dataset: "GLBX.MDP3"})
		Expect(sw.Close()).To(Succeed())

		r := dbn.Mbp0{Header: dbn.RHeader{Length: uint8(dbn.Mbp0_Size / 4), RType: dbn.RType_Mbp0}}
		raw, _ := r.MarshalBinary()
		err := sw.WriteRecord(r.Header, raw)
		Expect(err).To(Equal(dbn.ErrWriterClosed))
	})

	It("still produces a valid (if unpatched) header against a non-seekable writer", func() {
		var buf bytes.Buffer
		sw := dbn.NewStreamWriter(&buf, dbn.Metadata{VersionNum: 2, Dataset: "GLBX.MDP3"})
		Expect(sw.Start()).To(Succeed())
		Expect(sw.Close()).To(Succeed())

		md, err := dbn.ReadMetadata(bytes.NewReader(buf.Bytes()))
		Expect(err).To(BeNil())
		Expect(md.Dataset).To(Equal("GLBX.MDP3"))
	})
})
