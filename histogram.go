package phu

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HistogramBins is the fixed number of time bins in every curve
const HistogramBins = 65536

// Curve is one photon-count histogram channel
type Curve struct {
	Index int
	// Resolution is the seconds-per-bin (vendor units), nil if the header doesn't declare one
	Resolution *float64
	Counts     [HistogramBins]int32
	// TruncatedBins lists the bins whose read ran out of input (their counts were left as-is)
	TruncatedBins []int
}

// Truncated reports whether any of the curve's bins could not be read from the input
func (c *Curve) Truncated() bool {
	return len(c.TruncatedBins) > 0
}

// binsCurve is the only curve whose bin data is present in the stream
//
// TODO: files declaring more than one curve have only curve 0 read; the remaining curves' bin data
// follows in the stream but isn't consumed - find a multi-curve sample before changing this
const binsCurve = 0

// decodeHistograms builds the curves for the resolved indices, reading bin data for curve 0
//
// unless strict is set, a truncated read is recorded per bin rather than aborting
func decodeHistograms(c *cursor, infos []CurveInfo, strict bool) (map[int]*Curve, []error, error) {
	curves := make(map[int]*Curve, len(infos))
	var warnings []error
	for _, info := range infos {
		curve := &Curve{
			Index:      info.Index,
			Resolution: info.Resolution,
		}
		curves[info.Index] = curve
		if info.Index != binsCurve {
			continue
		}
		var first *TruncatedInputError
		for bin := 0; bin < HistogramBins; bin++ {
			raw, err := c.readExact(4)
			if err != nil {
				var te *TruncatedInputError
				if !errors.As(err, &te) {
					return nil, nil, fmt.Errorf("failed to read curve %d bin %d: %w", info.Index, bin, err)
				}
				te.Bin = bin
				if strict {
					return nil, nil, fmt.Errorf("curve %d: %w", info.Index, te)
				}
				if first == nil {
					first = te
				}
				// slot keeps whatever it already held...
				curve.TruncatedBins = append(curve.TruncatedBins, bin)
				continue
			}
			curve.Counts[bin] = int32(binary.LittleEndian.Uint32(raw))
		}
		if first != nil {
			warnings = append(warnings, &HistogramTruncationError{Curve: info.Index, First: first, Bins: len(curve.TruncatedBins)})
		}
	}
	return curves, warnings, nil
}

// HistogramTruncationError is a non-fatal warning - the input ended before all of a curve's bins were read
type HistogramTruncationError struct {
	Curve int
	// First is the truncation of the first bin that failed
	First *TruncatedInputError
	// Bins is the number of bins that could not be read
	Bins int
}

func (e *HistogramTruncationError) Error() string {
	return fmt.Sprintf("curve %d: the file ended earlier than expected, at bin %d/%d (%d bins not read)", e.Curve, e.First.Bin, HistogramBins, e.Bins)
}

func (e *HistogramTruncationError) Unwrap() error {
	return e.First
}
