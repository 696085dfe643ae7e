package phu

import (
	"strconv"
	"time"
)

// Tag is a single identifier/index/type/value record from the PHU header
type Tag struct {
	Identifier string
	// Index is the tag's index, or NoIndex
	Index int32
	Type  TagType
	Value Value
	// Offset is the stream offset the tag record started at
	Offset int64
}

const NoIndex int32 = -1

// HasIndex reports whether the tag is indexed (i.e. its name carries an "(index)" suffix)
func (t *Tag) HasIndex() bool {
	return t.Index > NoIndex
}

// Name returns the display name of the tag - e.g. "Identifier" or "Identifier(3)"
func (t *Tag) Name() string {
	return displayName(t.Identifier, t.Index)
}

func displayName(identifier string, index int32) string {
	if index > NoIndex {
		return identifier + "(" + strconv.Itoa(int(index)) + ")"
	}
	return identifier
}

// Int returns the value of an Int, BitSet64 or Color tag
func (t *Tag) Int() (int64, bool) {
	switch v := t.Value.(type) {
	case IntValue:
		return int64(v), true
	case BitSet64Value:
		return int64(v), true
	case ColorValue:
		return int64(v), true
	}
	return 0, false
}

func (t *Tag) Float() (float64, bool) {
	v, ok := t.Value.(FloatValue)
	return float64(v), ok
}

func (t *Tag) Bool() (bool, bool) {
	v, ok := t.Value.(BoolValue)
	return bool(v), ok
}

// Text returns the value of an AnsiString or WideString tag
func (t *Tag) Text() (string, bool) {
	switch v := t.Value.(type) {
	case AnsiStringValue:
		return string(v), true
	case WideStringValue:
		return string(v), true
	}
	return "", false
}

func (t *Tag) Time() (time.Time, bool) {
	v, ok := t.Value.(DateTimeValue)
	return v.Time, ok
}

// Value is the decoded value of a tag - one concrete type per TagType
type Value interface {
	TagType() TagType
	String() string
}

type EmptyValue struct{}

func (EmptyValue) TagType() TagType { return TagTypeEmpty }
func (EmptyValue) String() string   { return "<empty Tag>" }

type BoolValue bool

func (BoolValue) TagType() TagType { return TagTypeBool }
func (v BoolValue) String() string {
	if v {
		return "True"
	}
	return "False"
}

type IntValue int64

func (IntValue) TagType() TagType { return TagTypeInt }
func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }

// BitSet64Value is the raw bit pattern - interpreting the bits is up to the caller
type BitSet64Value int64

func (BitSet64Value) TagType() TagType { return TagTypeBitSet64 }
func (v BitSet64Value) String() string { return "0x" + strconv.FormatUint(uint64(v), 16) }

type ColorValue int64

func (ColorValue) TagType() TagType { return TagTypeColor }
func (v ColorValue) String() string { return strconv.FormatInt(int64(v), 10) }

type FloatValue float64

func (FloatValue) TagType() TagType { return TagTypeFloat }
func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// DateTimeValue is an OLE automation date, converted to UTC
type DateTimeValue struct {
	time.Time
	// Days is the raw day count relative to 1899-12-30
	Days float64
}

func (DateTimeValue) TagType() TagType { return TagTypeDateTime }
func (v DateTimeValue) String() string { return v.Time.Format(time.RFC3339) }

// FloatArrayValue records only the declared byte length of the array payload
type FloatArrayValue struct {
	ByteLength int64
}

func (FloatArrayValue) TagType() TagType { return TagTypeFloatArray }
func (v FloatArrayValue) String() string { return strconv.FormatInt(v.ByteLength, 10) }

type AnsiStringValue string

func (AnsiStringValue) TagType() TagType { return TagTypeAnsiString }
func (v AnsiStringValue) String() string { return string(v) }

type WideStringValue string

func (WideStringValue) TagType() TagType { return TagTypeWideString }
func (v WideStringValue) String() string { return string(v) }

// BinaryBlobValue records only the declared byte length of the blob payload
type BinaryBlobValue struct {
	ByteLength int64
}

func (BinaryBlobValue) TagType() TagType { return TagTypeBinaryBlob }
func (v BinaryBlobValue) String() string { return strconv.FormatInt(v.ByteLength, 10) }
