package phu

import (
	"bytes"
	"encoding/binary"
	"math"
)

// phuBuilder assembles synthetic PHU byte streams for tests
type phuBuilder struct {
	buf bytes.Buffer
}

func newPHU() *phuBuilder {
	b := &phuBuilder{}
	b.fixed(Magic, 8)
	b.fixed("1.0.00", 8)
	return b
}

func (b *phuBuilder) fixed(s string, size int) *phuBuilder {
	field := make([]byte, size)
	copy(field, s)
	b.buf.Write(field)
	return b
}

func (b *phuBuilder) tagHeader(identifier string, index int32, typ TagType) *phuBuilder {
	b.fixed(identifier, identifierSize)
	_ = binary.Write(&b.buf, binary.LittleEndian, index)
	_ = binary.Write(&b.buf, binary.LittleEndian, uint32(typ))
	return b
}

func (b *phuBuilder) int64s(vs ...int64) *phuBuilder {
	for _, v := range vs {
		_ = binary.Write(&b.buf, binary.LittleEndian, v)
	}
	return b
}

func (b *phuBuilder) empty(identifier string, index int32) *phuBuilder {
	return b.tagHeader(identifier, index, TagTypeEmpty).int64s(0)
}

func (b *phuBuilder) integer(identifier string, index int32, typ TagType, v int64) *phuBuilder {
	return b.tagHeader(identifier, index, typ).int64s(v)
}

func (b *phuBuilder) float(identifier string, index int32, typ TagType, v float64) *phuBuilder {
	return b.tagHeader(identifier, index, typ).int64s(int64(math.Float64bits(v)))
}

func (b *phuBuilder) text(identifier string, index int32, typ TagType, payload []byte) *phuBuilder {
	b.tagHeader(identifier, index, typ).int64s(int64(len(payload)))
	b.buf.Write(payload)
	return b
}

func (b *phuBuilder) end() *phuBuilder {
	return b.empty(TagNameHeaderEnd, NoIndex)
}

// curve declares a curve index and its resolution
func (b *phuBuilder) curve(index int32, resolution float64) *phuBuilder {
	b.integer(TagNameCurveIndex, index, TagTypeInt, int64(index))
	return b.float(TagNameResolution, index, TagTypeFloat, resolution)
}

func (b *phuBuilder) bins(counts []int32) *phuBuilder {
	_ = binary.Write(&b.buf, binary.LittleEndian, counts)
	return b
}

func (b *phuBuilder) raw(data ...byte) *phuBuilder {
	b.buf.Write(data)
	return b
}

func (b *phuBuilder) bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

func (b *phuBuilder) reader() *bytes.Reader {
	return bytes.NewReader(b.bytes())
}

// testCounts returns a full set of bin counts with varied (including negative) values
func testCounts() []int32 {
	counts := make([]int32, HistogramBins)
	for i := range counts {
		counts[i] = int32(i*7919) - int32(i%3)*1000000
	}
	counts[0] = math.MinInt32
	counts[HistogramBins-1] = math.MaxInt32
	return counts
}
