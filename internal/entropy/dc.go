package entropy

import (
	"github.com/gomedia/go-speedhq/internal/bitio"
)

// Component classes for DC prediction and code table selection.
const (
	ComponentLuma    = 0
	ComponentChromaA = 1
	ComponentChromaB = 2
)

// EncodeDC appends exactly one variable-length code for the DC differential
// diff. Differentials in [-255, 255] use the precomputed unified table;
// anything larger is synthesized from the magnitude-class base tables.
// diff must stay within the quantizer's legal coefficient range.
func (t *Tables) EncodeDC(w *bitio.Writer, diff int32, component int) {
	if u := uint32(diff + 255); u < 511 {
		var e *dcCode
		if component == ComponentLuma {
			e = &t.lumaDC[u]
		} else {
			e = &t.chromaDC[u]
		}
		w.WriteBits(e.code, uint(e.bits))
		return
	}

	adiff := diff
	if adiff < 0 {
		adiff = -adiff
	}
	index := log2(uint32(2 * adiff))
	if diff < 0 {
		diff--
	}

	if component == ComponentLuma {
		w.WriteBits(
			uint32(dcLumaCode[index])|zeroExtend(diff, index)<<dcLumaBits[index],
			uint(dcLumaBits[index])+index)
	} else {
		w.WriteBits(
			uint32(dcChromaCode[index])|zeroExtend(diff, index)<<dcChromaBits[index],
			uint(dcChromaBits[index])+index)
	}
}
