package phu

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	Magic          = "PQHISTO"
	identifierSize = 32
)

// Header represents the parsed PHU header - the magic, version and the ordered tag records
type Header struct {
	Magic   string
	Version string
	// Tags is every tag record in file order, up to and including Header_End
	Tags  []*Tag
	index map[tagKey]*Tag
}

type tagKey struct {
	identifier string
	index      int32
}

// Lookup returns the tag with the given identifier and index (use NoIndex for un-indexed tags)
//
// if the identifier/index pair occurs more than once, the first occurrence is returned
func (h *Header) Lookup(identifier string, index int32) (*Tag, bool) {
	t, ok := h.index[tagKey{identifier: identifier, index: index}]
	return t, ok
}

// TagByName returns the tag with the given display name - e.g. "HistResDscr_MDescResolution(1)"
func (h *Header) TagByName(name string) (*Tag, bool) {
	identifier, index, err := splitDisplayName(name)
	if err != nil {
		return nil, false
	}
	return h.Lookup(identifier, index)
}

// TagsByIdentifier returns all the tags with the given identifier, in file order
func (h *Header) TagsByIdentifier(identifier string) []*Tag {
	result := make([]*Tag, 0)
	for _, t := range h.Tags {
		if t.Identifier == identifier {
			result = append(result, t)
		}
	}
	return result
}

func (h *Header) mapTags() {
	h.index = make(map[tagKey]*Tag, len(h.Tags))
	for _, t := range h.Tags {
		key := tagKey{identifier: t.Identifier, index: t.Index}
		if _, exists := h.index[key]; !exists {
			h.index[key] = t
		}
	}
}

func parseHeader(c *cursor, options *DecodeOptions) (Header, error) {
	raw, err := c.readExact(8)
	if err != nil {
		if errors.Is(err, ErrTruncatedInput) {
			return Header{}, fmt.Errorf("%w: %w", ErrBadMagic, err)
		}
		return Header{}, err
	}
	magic := nullStripped(raw)
	if magic != Magic {
		return Header{}, fmt.Errorf("%w: got %q, expected %q", ErrBadMagic, magic, Magic)
	}
	if raw, err = c.readExact(8); err != nil {
		return Header{}, fmt.Errorf("failed to read version: %w", err)
	}
	result := Header{
		Magic:   magic,
		Version: nullStripped(raw),
	}
	if result.Tags, err = parseTags(c, options); err != nil {
		return Header{}, err
	}
	result.mapTags()
	return result, nil
}

func parseTags(c *cursor, options *DecodeOptions) ([]*Tag, error) {
	result := make([]*Tag, 0, 64)
	for {
		tag, err := parseTag(c, options)
		if err != nil {
			return nil, err
		}
		result = append(result, tag)
		if tag.Identifier == TagNameHeaderEnd {
			return result, nil
		}
	}
}

func parseTag(c *cursor, options *DecodeOptions) (*Tag, error) {
	tag := &Tag{Offset: c.offset}
	raw, err := c.readExact(identifierSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag identifier at 0x%X: %w", tag.Offset, err)
	}
	tag.Identifier = nullStripped(raw)
	if tag.Index, err = c.readInt32(); err != nil {
		return nil, fmt.Errorf("failed to read index of tag %q at 0x%X: %w", tag.Identifier, tag.Offset, err)
	}
	code, err := c.readUint32()
	if err != nil {
		return nil, fmt.Errorf("failed to read type of tag %q at 0x%X: %w", tag.Identifier, tag.Offset, err)
	}
	tag.Type = TagType(code)
	if !tag.Type.Valid() {
		return nil, &UnknownTagTypeError{Offset: tag.Offset, Identifier: tag.Identifier, Code: code}
	}
	if tag.Value, err = decodeTagValue(c, tag.Type, options); err != nil {
		return nil, fmt.Errorf("failed to decode tag %q (%s) at 0x%X: %w", tag.Name(), tag.Type, tag.Offset, err)
	}
	return tag, nil
}

// nullStripped decodes a fixed-size, null-padded ASCII field
func nullStripped(raw []byte) string {
	return string(bytes.TrimRight(raw, "\x00"))
}
