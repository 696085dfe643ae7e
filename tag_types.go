package phu

import "fmt"

// TagType is the type code of a tag record, as stored (little-endian) in the file
type TagType uint32

const (
	TagTypeEmpty      TagType = 0xFFFF0008
	TagTypeBool       TagType = 0x00000008
	TagTypeInt        TagType = 0x10000008
	TagTypeBitSet64   TagType = 0x11000008
	TagTypeColor      TagType = 0x12000008
	TagTypeFloat      TagType = 0x20000008
	TagTypeDateTime   TagType = 0x21000008
	TagTypeFloatArray TagType = 0x2001FFFF
	TagTypeAnsiString TagType = 0x4001FFFF
	TagTypeWideString TagType = 0x4002FFFF
	TagTypeBinaryBlob TagType = 0xFFFFFFFF
)

var tagTypeNames = map[TagType]string{
	TagTypeEmpty:      "tyEmpty8",
	TagTypeBool:       "tyBool8",
	TagTypeInt:        "tyInt8",
	TagTypeBitSet64:   "tyBitSet64",
	TagTypeColor:      "tyColor8",
	TagTypeFloat:      "tyFloat8",
	TagTypeDateTime:   "tyTDateTime",
	TagTypeFloatArray: "tyFloat8Array",
	TagTypeAnsiString: "tyAnsiString",
	TagTypeWideString: "tyWideString",
	TagTypeBinaryBlob: "tyBinaryBlob",
}

// Valid reports whether the type code is one of the known tag types
func (t TagType) Valid() bool {
	_, ok := tagTypeNames[t]
	return ok
}

func (t TagType) String() string {
	if name, ok := tagTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(t))
}

// well-known tag identifiers...
const (
	TagNameHeaderEnd  = "Header_End"
	TagNameCurveIndex = "HistResDscr_CurveIndex"
	TagNameResolution = "HistResDscr_MDescResolution"
)
