package phu

import (
	"bufio"
	"fmt"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"io"
	"os"
)

type DecodeMode uint8

const (
	DecodeFull DecodeMode = iota
	DecodeHeaderOnly
)

// DecodeOptions represents the decoding options passed to Decode
type DecodeOptions struct {
	// Mode determines how much of the file to decode
	//
	// the default is DecodeFull - header, curves and histogram bins
	//
	// DecodeHeaderOnly stops after the Header_End tag - useful for just listing file metadata
	Mode DecodeMode
	// SkipVariablePayloads determines whether FloatArray and BinaryBlob payloads are skipped
	//
	// defaults to false - only the declared length is read and the payload bytes are left in the stream,
	// which misaligns any tag that follows
	SkipVariablePayloads bool
	// StrictHistogram determines whether running out of input while reading histogram bins is an error
	//
	// defaults to false - failing bins are recorded in Curve.TruncatedBins and reported in Dataset.Warnings
	StrictHistogram bool
	// AnsiEncoding is the text encoding of string tags
	//
	// if nil, string tags must be plain ASCII
	AnsiEncoding encoding.Encoding
	// DecodeWideStrings determines whether WideString tags are decoded as UTF-16LE
	//
	// defaults to false - WideString tags are decoded the same way as AnsiString tags
	DecodeWideStrings bool
	// Logger receives warnings about recoverable problems (if nil, nothing is logged)
	Logger *zerolog.Logger
}

func (o *DecodeOptions) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

// Dataset represents the decoded contents of a PHU file
type Dataset struct {
	Header Header
	// Curves is the decoded curves, by curve index
	Curves map[int]*Curve
	// CurveIndices is the curve indices in the order the header declares them
	CurveIndices []int
	// Warnings is the recoverable problems encountered while decoding (missing resolutions,
	// truncated histograms)
	Warnings []error
}

// Curve returns the curve with the given index
func (d *Dataset) Curve(index int) (*Curve, bool) {
	c, ok := d.Curves[index]
	return c, ok
}

// Counts returns the photon counts of the given curve
func (d *Dataset) Counts(index int) ([]int32, error) {
	if c, ok := d.Curves[index]; ok {
		return c.Counts[:], nil
	}
	return nil, fmt.Errorf("curve %d not found", index)
}

// Decode decodes a PHU file from the supplied reader with the supplied DecodeOptions
//
// if the DecodeOptions supplied is nil, default (full) options are used
//
// no partial Dataset is returned on error
func Decode(r io.Reader, options *DecodeOptions) (*Dataset, error) {
	if options == nil {
		options = &DecodeOptions{
			Mode: DecodeFull,
		}
	}
	log := options.logger()
	c := newCursor(r)
	hdr, err := parseHeader(c, options)
	if err != nil {
		return nil, err
	}
	result := &Dataset{
		Header: hdr,
		Curves: make(map[int]*Curve),
	}
	log.Debug().Str("version", hdr.Version).Int("tags", len(hdr.Tags)).Int64("offset", c.offset).Msg("parsed PHU header")
	if options.Mode >= DecodeHeaderOnly {
		return result, nil
	}
	infos, warnings := resolveCurves(&result.Header)
	for _, info := range infos {
		result.CurveIndices = append(result.CurveIndices, info.Index)
	}
	curves, histWarnings, err := decodeHistograms(c, infos, options.StrictHistogram)
	if err != nil {
		return nil, err
	}
	result.Curves = curves
	result.Warnings = append(warnings, histWarnings...)
	for _, w := range result.Warnings {
		logWarning(log, w)
	}
	return result, nil
}

// DecodeFile opens and decodes the named PHU file - the file is always closed before returning
func DecodeFile(name string, options *DecodeOptions) (result *Dataset, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			result, err = nil, cErr
		}
	}()
	if result, err = Decode(bufio.NewReader(f), options); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", name, err)
	}
	return result, nil
}

func logWarning(log *zerolog.Logger, w error) {
	switch e := w.(type) {
	case *HistogramTruncationError:
		log.Warn().
			Int("curve", e.Curve).
			Int("bin", e.First.Bin).
			Int("bins", e.Bins).
			Int64("offset", e.First.Offset).
			Msg("the file ended earlier than expected, histogram bins not read")
	case *MissingResolutionError:
		log.Warn().
			Int("curve", e.Curve).
			Msg("curve has no resolution tag")
	default:
		log.Warn().Err(w).Msg("ignoring curve index tag")
	}
}
