package entropy

import (
	"fmt"
	"testing"

	"github.com/gomedia/go-speedhq/internal/bitio"
)

// Test-only inverse-VLC decoders. Codes are emitted least-significant bit
// first, so reading bits in stream order reconstructs the transmission-order
// (bit-reversed) form of each stored code; the lookup tables below are keyed
// on that form.

// reverseBits reverses the low n bits of c.
func reverseBits(c uint32, n uint8) uint32 {
	var r uint32
	for i := uint8(0); i < n; i++ {
		r = r<<1 | c&1
		c >>= 1
	}
	return r
}

type acSymbol struct {
	run   int
	level int
}

type vlcKey struct {
	bits uint8
	code uint32 // transmission order, msb first
}

// buildACDecodeMap maps transmission-order run/level codes (sign excluded)
// to their symbol.
func buildACDecodeMap(t *testing.T) map[vlcKey]acSymbol {
	t.Helper()
	m := make(map[vlcKey]acSymbol, len(acCode))
	for i, c := range acCode {
		k := vlcKey{uint8(c[1]), reverseBits(uint32(c[0]), uint8(c[1]))}
		if prev, dup := m[k]; dup {
			t.Fatalf("duplicate AC code %d/%d for %v and run=%d level=%d",
				k.code, k.bits, prev, acRun[i], acLevel[i])
		}
		m[k] = acSymbol{int(acRun[i]), int(acLevel[i])}
	}
	return m
}

var (
	eobKey = vlcKey{eobBits, reverseBits(eobCode, eobBits)}
	escKey = vlcKey{escBits, reverseBits(escCode, escBits)}
)

// decodeDC reads one DC differential code for the given component.
func decodeDC(t *testing.T, r *bitio.Reader, component int) int32 {
	t.Helper()
	sizeBits, sizeCode := &dcLumaBits, &dcLumaCode
	if component != ComponentLuma {
		sizeBits, sizeCode = &dcChromaBits, &dcChromaCode
	}

	var acc uint32
	var n uint8
	index := -1
	for index < 0 {
		bit := r.ReadBit()
		if bit < 0 {
			t.Fatal("decodeDC: out of data")
		}
		acc = acc<<1 | uint32(bit)
		n++
		for i := range sizeBits {
			if sizeBits[i] == n && reverseBits(uint32(sizeCode[i]), n) == acc {
				index = i
				break
			}
		}
		if n > 12 {
			t.Fatalf("decodeDC: no code matches prefix %b", acc)
		}
	}

	if index == 0 {
		return 0
	}
	val, ok := r.ReadBits(uint(index))
	if !ok {
		t.Fatal("decodeDC: out of data in magnitude bits")
	}
	if val>>(index-1) == 0 {
		return int32(val) - (1 << index) + 1
	}
	return int32(val)
}

// decodeBlock reads one block bitstream (DC code, AC codes, EOB) and
// reconstructs the coefficients in natural order.
func decodeBlock(t *testing.T, r *bitio.Reader, n int, lastDC *[3]int32, acMap map[vlcKey]acSymbol) [64]int32 {
	t.Helper()
	var coeffs [64]int32

	component := ComponentForBlock(n)
	diff := decodeDC(t, r, component)
	dc := lastDC[component] - diff
	coeffs[0] = dc
	lastDC[component] = dc

	pos := 0
	for {
		var acc uint32
		var bits uint8
		var sym acSymbol
		matched := false
		for !matched {
			bit := r.ReadBit()
			if bit < 0 {
				t.Fatal("decodeBlock: out of data")
			}
			acc = acc<<1 | uint32(bit)
			bits++
			k := vlcKey{bits, acc}
			if k == eobKey {
				return coeffs
			}
			if k == escKey {
				run, ok1 := r.ReadBits(escRunBits)
				biased, ok2 := r.ReadBits(escLevelBits)
				if !ok1 || !ok2 {
					t.Fatal("decodeBlock: truncated escape")
				}
				sym = acSymbol{int(run), int(biased) - 2048}
				matched = true
				break
			}
			if s, ok := acMap[k]; ok {
				sign := r.ReadBit()
				if sign < 0 {
					t.Fatal("decodeBlock: missing sign bit")
				}
				sym = s
				if sign == 1 {
					sym.level = -sym.level
				}
				matched = true
			}
			if bits > 17 {
				t.Fatalf("decodeBlock: no code matches prefix %b", acc)
			}
		}

		pos += sym.run + 1
		if pos > 63 {
			t.Fatalf("decodeBlock: scan position %d out of range", pos)
		}
		coeffs[ZigzagScan[pos]] = int32(sym.level)
	}
}

func TestReverseBits(t *testing.T) {
	tests := []struct {
		c    uint32
		n    uint8
		want uint32
	}{
		{0b1, 1, 0b1},
		{0b10, 2, 0b01},
		{0x6, 4, 0x6},
		{0x20, 6, 0x01},
		{0x3, 7, 0b1100000},
	}
	for _, tt := range tests {
		if got := reverseBits(tt.c, tt.n); got != tt.want {
			t.Errorf("reverseBits(%#b, %d) = %#b, want %#b", tt.c, tt.n, got, tt.want)
		}
	}
}

func ExampleTables_CodeBits() {
	t := Shared()
	fmt.Println(t.CodeBits(0, 1), t.CodeBits(0, -1), t.CodeBits(0, 33))
	// Output: 3 3 24
}
