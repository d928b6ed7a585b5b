package speedhq

import (
	"github.com/gomedia/go-speedhq/internal/bitio"
	"github.com/gomedia/go-speedhq/internal/entropy"
)

// blockOrder444 is the chroma visiting order for 4:4:4 after the six
// blocks shared with the other formats.
var blockOrder444 = [6]int{8, 9, 6, 7, 10, 11}

// Encoder encodes macroblocks of quantized coefficients into a SpeedHQ
// bitstream, one picture at a time.
//
// An Encoder is not safe for concurrent use; picture-level parallelism is
// achieved by giving each slice its own Encoder and output region.
type Encoder struct {
	opts Options
	tab  *entropy.Tables
	scan *ScanOrder

	w *bitio.Writer

	// lastDC holds the running DC predictor per component class.
	lastDC [3]int32

	// sliceStart is the byte offset of the open slice's length
	// placeholder.
	sliceStart int
	inPicture  bool

	texBits int64
}

// NewEncoder creates an encoder for the given options. The shared code
// tables are built on first use, once per process.
func NewEncoder(opts *Options) (*Encoder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	scan := opts.Scan
	if scan == nil {
		scan = DefaultScanOrder()
	}
	return &Encoder{
		opts: *opts,
		tab:  entropy.Shared(),
		scan: scan,
		w:    bitio.NewWriter(),
	}, nil
}

// BeginPicture starts a new picture: it resets the output buffer and the
// DC predictors, writes the picture header and opens the first slice.
func (e *Encoder) BeginPicture() {
	e.w.Reset()
	e.ResetPredictors()
	e.texBits = 0

	e.w.WriteBits(uint32(100-2*e.opts.QScale), 8)
	// no second field
	e.w.WriteBits(4, 24)

	e.sliceStart = e.w.Len()
	e.w.WriteBits(0, 24)
	e.inPicture = true
}

// EncodeMacroblock encodes the blocks of one macroblock in the fixed
// visiting order for the encoder's chroma format and accumulates the
// texture-bit counter. BeginPicture must have been called.
func (e *Encoder) EncodeMacroblock(mb *Macroblock) {
	if !e.inPicture {
		panic("speedhq: EncodeMacroblock before BeginPicture")
	}
	mark := e.w.BitsWritten()

	for i := 0; i < 6; i++ {
		e.encodeBlock(&mb[i], i)
	}
	switch e.opts.ChromaFormat {
	case Chroma444:
		for _, n := range blockOrder444 {
			e.encodeBlock(&mb[n], n)
		}
	case Chroma422:
		e.encodeBlock(&mb[6], 6)
		e.encodeBlock(&mb[7], 7)
	}

	e.texBits += e.w.BitsWritten() - mark
}

func (e *Encoder) encodeBlock(b *Block, n int) {
	e.tab.EncodeBlock(e.w, &b.Coeffs, n, b.LastIndex, (*[64]uint8)(e.scan), &e.lastDC)
}

// EndSlice closes the open slice: the stream is flushed to a byte
// boundary, the slice's 3-byte length field is backpatched, and the next
// slice region is opened immediately. The final open region of a picture
// is intentionally never closed here; finishing the picture is the
// caller's concern.
func (e *Encoder) EndSlice() {
	if !e.inPicture {
		panic("speedhq: EndSlice before BeginPicture")
	}
	e.w.FlushAligned()
	sliceLen := e.w.Len() - e.sliceStart
	e.w.PatchUint24(e.sliceStart, uint32(sliceLen))

	e.sliceStart = e.w.Len()
	e.w.WriteBits(0, 24)
}

// ResetPredictors restores the per-component DC predictors to their
// initial state. When to reset is the frame/slice driver's decision.
func (e *Encoder) ResetPredictors() {
	e.lastDC = [3]int32{}
}

// TextureBits returns the number of texture bits emitted by macroblock
// encoding since BeginPicture, for rate accounting.
func (e *Encoder) TextureBits() int64 {
	return e.texBits
}

// CodeBits returns the bit cost of coding a (run, level) AC pair, sign
// included, with 24 bits for escape-coded pairs. It is a table lookup
// intended for rate estimation; run must be in [0, 63] and level in
// [-64, 63].
func (e *Encoder) CodeBits(run, level int) int {
	return e.tab.CodeBits(run, level)
}

// Bytes returns the encoded stream for the current picture. The slice
// aliases the encoder's buffer and is only valid until the next call into
// the encoder.
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}
