package entropy

import (
	"github.com/gomedia/go-speedhq/internal/bitio"
)

// ComponentForBlock returns the component class of block n within a
// macroblock: the first four blocks are luma, the rest alternate between
// the two chroma classes.
func ComponentForBlock(n int) int {
	if n <= 3 {
		return ComponentLuma
	}
	return n&1 + 1
}

// EncodeBlock encodes one 8x8 coefficient block: a DC differential code,
// the run/level codes of the nonzero AC coefficients in scan order, and
// the end-of-block code.
//
// coeffs holds the 64 quantized coefficients in natural order with the DC
// coefficient at index 0. lastIndex bounds how far in scan order nonzero
// coefficients exist; scan maps scan positions to natural positions.
// lastDC is updated with the block's DC coefficient for its component.
func (t *Tables) EncodeBlock(w *bitio.Writer, coeffs *[64]int32, n, lastIndex int, scan *[64]uint8, lastDC *[3]int32) {
	component := ComponentForBlock(n)
	dc := coeffs[0]
	t.EncodeDC(w, lastDC[component]-dc, component)
	lastDC[component] = dc

	lastNonZero := 0
	for i := 1; i <= lastIndex; i++ {
		level := coeffs[scan[i]]
		if level == 0 {
			continue
		}
		run := i - lastNonZero - 1

		alevel := level
		var sign uint32
		if alevel < 0 {
			alevel = -alevel
			sign = 1
		}

		if alevel <= int32(t.maxLevel[run]) {
			c := acCode[int(t.indexRun[run])+int(alevel)-1]
			w.WriteBits(uint32(c[0])|sign<<c[1], uint(c[1])+1)
		} else {
			w.WriteBits(escCode, escBits)
			w.WriteBits(uint32(run), escRunBits)
			w.WriteBits(uint32(level+2048), escLevelBits)
		}
		lastNonZero = i
	}

	w.WriteBits(eobCode, eobBits)
}
