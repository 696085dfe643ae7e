package phu

import (
	"bytes"
	"fmt"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"math"
	"time"
)

// oleEpochDays is the OLE automation day number of the unix epoch (1970-01-01)
const oleEpochDays = 25569

var wideStringEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeTagValue decodes the payload of a tag of the given type, leaving the cursor
// just past the bytes that type consumes
func decodeTagValue(c *cursor, typ TagType, options *DecodeOptions) (Value, error) {
	switch typ {
	case TagTypeEmpty:
		if _, err := c.readExact(8); err != nil {
			return nil, err
		}
		return EmptyValue{}, nil
	case TagTypeBool:
		v, err := c.readInt64()
		return BoolValue(v != 0), err
	case TagTypeInt:
		v, err := c.readInt64()
		return IntValue(v), err
	case TagTypeBitSet64:
		v, err := c.readInt64()
		return BitSet64Value(v), err
	case TagTypeColor:
		v, err := c.readInt64()
		return ColorValue(v), err
	case TagTypeFloat:
		v, err := c.readFloat64()
		return FloatValue(v), err
	case TagTypeDateTime:
		v, err := c.readFloat64()
		if err != nil {
			return nil, err
		}
		return DateTimeValue{Time: oleDateToTime(v), Days: v}, nil
	case TagTypeFloatArray, TagTypeBinaryBlob:
		length, err := c.readInt64()
		if err != nil {
			return nil, err
		}
		// only the declared length is recorded - the payload is left in the stream
		// unless explicitly asked to skip it...
		if options.SkipVariablePayloads {
			if length < 0 {
				return nil, fmt.Errorf("negative payload length %d", length)
			}
			if err = c.skip(length); err != nil {
				return nil, err
			}
		}
		if typ == TagTypeFloatArray {
			return FloatArrayValue{ByteLength: length}, nil
		}
		return BinaryBlobValue{ByteLength: length}, nil
	case TagTypeAnsiString:
		s, err := readText(c, options.AnsiEncoding)
		return AnsiStringValue(s), err
	case TagTypeWideString:
		enc := options.AnsiEncoding
		if options.DecodeWideStrings {
			enc = wideStringEncoding
		}
		s, err := readText(c, enc)
		return WideStringValue(s), err
	}
	return nil, ErrUnknownTagType
}

// readText reads a length-prefixed string payload
//
// with a nil encoding the payload must be plain 7-bit ASCII
func readText(c *cursor, enc encoding.Encoding) (string, error) {
	length, err := c.readInt64()
	if err != nil {
		return "", err
	}
	if length < 0 || length > math.MaxInt32 {
		return "", fmt.Errorf("%w: string length %d out of range", ErrInvalidText, length)
	}
	raw, err := c.readExact(int(length))
	if err != nil {
		return "", err
	}
	if enc == nil {
		for i, b := range raw {
			if b > 0x7F {
				return "", fmt.Errorf("%w: non-ASCII byte 0x%02X at position %d", ErrInvalidText, b, i)
			}
		}
		return string(bytes.TrimRight(raw, "\x00")), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidText, err)
	}
	return string(bytes.TrimRight(decoded, "\x00")), nil
}

// oleDateToTime converts an OLE automation date (days since 1899-12-30) to UTC,
// truncated to whole seconds
func oleDateToTime(days float64) time.Time {
	seconds := int64((days - oleEpochDays) * 86400)
	return time.Unix(seconds, 0).UTC()
}
