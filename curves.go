package phu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CurveInfo is a curve declared in the header, before any bins are read
type CurveInfo struct {
	Index int
	// Resolution is the curve's seconds-per-bin, or nil when the header has no resolution tag for it
	Resolution *float64
}

// resolveCurves finds the curve indices declared by HistResDscr_CurveIndex tags, in header order,
// along with each curve's resolution
//
// problems that don't prevent decoding (missing resolutions, unusable curve index tags) are
// returned as warnings
func resolveCurves(h *Header) (curves []CurveInfo, warnings []error) {
	seen := make(map[int]bool)
	for _, t := range h.TagsByIdentifier(TagNameCurveIndex) {
		v, ok := t.Int()
		if !ok {
			warnings = append(warnings, fmt.Errorf("tag %q at 0x%X: curve index has non-integer type %s", t.Name(), t.Offset, t.Type))
			continue
		}
		if v < 0 || v > maxCurveIndex {
			warnings = append(warnings, fmt.Errorf("tag %q at 0x%X: curve index %d out of range", t.Name(), t.Offset, v))
			continue
		}
		ci := int(v)
		if seen[ci] {
			continue
		}
		seen[ci] = true
		info := CurveInfo{Index: ci}
		if res, ok := h.Lookup(TagNameResolution, int32(ci)); ok {
			if f, ok := res.Float(); ok {
				info.Resolution = &f
			}
		}
		if info.Resolution == nil {
			warnings = append(warnings, &MissingResolutionError{Curve: ci})
		}
		curves = append(curves, info)
	}
	return curves, warnings
}

const maxCurveIndex = 1<<31 - 1

// splitDisplayName parses a display name such as "Ident" or "Ident(12)" into identifier and index
func splitDisplayName(name string) (identifier string, index int32, err error) {
	if !strings.HasSuffix(name, ")") {
		return name, NoIndex, nil
	}
	open := strings.LastIndexByte(name, '(')
	if open < 0 {
		return "", 0, fmt.Errorf("invalid tag name %q: unbalanced parentheses", name)
	}
	n, err := strconv.ParseInt(name[open+1:len(name)-1], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("invalid tag name %q: %w", name, errors.Unwrap(err))
	}
	if n < 0 {
		return "", 0, fmt.Errorf("invalid tag name %q: negative index", name)
	}
	return name[:open], int32(n), nil
}
