// Package speedhq implements the entropy-coding and slice-framing stage of
// a SpeedHQ-style intra-only video encoder.
//
// The package turns quantized transform coefficients into a packed
// bitstream: differentially coded DC coefficients, run/level coded AC
// coefficients with an escape form, and relocatable length-prefixed
// slices. It consumes coefficient blocks and produces bits; the forward
// transform, quantizer, rate control and container muxing are external.
//
// Basic usage:
//
//	enc, err := speedhq.NewEncoder(&speedhq.Options{
//	    Width: 1920, Height: 1080,
//	    ChromaFormat: speedhq.Chroma422, QScale: 4,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc.BeginPicture()
//	for _, mb := range macroblocks {
//	    enc.EncodeMacroblock(&mb)
//	}
//	enc.EndSlice()
//	stream := enc.Bytes()
package speedhq

import (
	"fmt"

	"github.com/gomedia/go-speedhq/internal/entropy"
)

// ChromaFormat selects the chroma sampling of the encoded picture, which
// determines how many chroma blocks a macroblock carries.
type ChromaFormat int

const (
	// Chroma420 is 4:2:0 sampling (2 chroma blocks per macroblock).
	Chroma420 ChromaFormat = iota
	// Chroma422 is 4:2:2 sampling (4 chroma blocks per macroblock).
	Chroma422
	// Chroma444 is 4:4:4 sampling (8 chroma blocks per macroblock).
	Chroma444
)

// String returns the string representation of the chroma format.
func (f ChromaFormat) String() string {
	switch f {
	case Chroma420:
		return "4:2:0"
	case Chroma422:
		return "4:2:2"
	case Chroma444:
		return "4:4:4"
	default:
		return "Unknown"
	}
}

// Tag returns the FourCC identifying the format in a container.
func (f ChromaFormat) Tag() string {
	switch f {
	case Chroma420:
		return "SHQ0"
	case Chroma422:
		return "SHQ2"
	case Chroma444:
		return "SHQ4"
	default:
		return ""
	}
}

// BlocksPerMacroblock returns how many coefficient blocks a macroblock
// encodes in this format: 4 luma plus 2, 4 or 8 chroma.
func (f ChromaFormat) BlocksPerMacroblock() int {
	switch f {
	case Chroma420:
		return 6
	case Chroma422:
		return 8
	case Chroma444:
		return 12
	default:
		return 0
	}
}

// Legal range of quantized coefficients. The escape form covers this range
// exactly; coefficients outside it cannot be represented.
const (
	MinCoeff = -2048
	MaxCoeff = 2047
)

// MaxDimension is the largest supported picture width or height.
const MaxDimension = 65500

// Block holds the quantized transform coefficients of one 8x8 block in
// natural (non-scan) order. Coeffs[0] is the DC coefficient. LastIndex is
// the last scan position at which a nonzero coefficient exists; a value of
// 0 marks a DC-only block.
type Block struct {
	Coeffs    [64]int32
	LastIndex int
}

// Macroblock holds the up-to-12 coefficient blocks of one macroblock.
// Blocks 0-3 are luma; blocks 4 and up alternate between the two chroma
// components. Formats with fewer chroma blocks leave the tail unused.
type Macroblock [12]Block

// ScanOrder is a permutation from scan position to natural block position.
// It is immutable once an Encoder is created from it.
type ScanOrder [64]uint8

// DefaultScanOrder returns the standard zigzag scan.
func DefaultScanOrder() *ScanOrder {
	s := ScanOrder(entropy.ZigzagScan)
	return &s
}

// Options holds the encoding parameters.
type Options struct {
	// Width and Height are the picture dimensions in pixels. Width must
	// be a multiple of 16; neither may exceed MaxDimension.
	Width  int
	Height int

	// ChromaFormat selects the chroma sampling.
	ChromaFormat ChromaFormat

	// QScale is the quantizer scale recorded in the picture header,
	// in [1, 31].
	QScale int

	// Scan overrides the coefficient scan order. Nil selects the
	// standard zigzag scan.
	Scan *ScanOrder
}

// DefaultOptions returns the default encoding options for the given
// dimensions.
func DefaultOptions(width, height int) *Options {
	return &Options{
		Width:        width,
		Height:       height,
		ChromaFormat: Chroma422,
		QScale:       4,
	}
}

// validate checks the options for encodability.
func (o *Options) validate() error {
	if o.Width > MaxDimension || o.Height > MaxDimension {
		return fmt.Errorf("speedhq: resolutions above %dx%d are not supported", MaxDimension, MaxDimension)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("speedhq: invalid picture dimensions %dx%d", o.Width, o.Height)
	}
	if o.Width%16 != 0 {
		return fmt.Errorf("speedhq: width must be a multiple of 16, got %d", o.Width)
	}
	switch o.ChromaFormat {
	case Chroma420, Chroma422, Chroma444:
	default:
		return fmt.Errorf("speedhq: unknown chroma format %d", o.ChromaFormat)
	}
	if o.QScale < 1 || o.QScale > 31 {
		return fmt.Errorf("speedhq: qscale %d out of range [1, 31]", o.QScale)
	}
	return nil
}
