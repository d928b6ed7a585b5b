// Package entropy implements SpeedHQ entropy coding.
//
// This includes:
// - Differential DC coding with per-component code tables
// - AC run/level coding with an escape form for out-of-table magnitudes
// - One-time construction of the derived lookup tables
package entropy

import (
	"math/bits"
	"sync"
)

// dcCode is a precomputed variable-length code for a DC differential.
type dcCode struct {
	bits uint8
	code uint32
}

// Tables holds the derived lookup tables shared by all encoder instances.
// A Tables value is immutable after construction and safe for concurrent
// reads.
type Tables struct {
	// maxLevel gives, per run, the largest magnitude representable
	// without the escape form. Runs with no table entries hold 0.
	maxLevel [64]uint8

	// indexRun gives, per run, the index of that run's first entry in
	// acCode. baseIndex(run)+magnitude-1 addresses the code for a pair.
	indexRun [64]uint8

	// acLen gives the emitted bit count for every (run, level) pair,
	// sign included, indexed by run*128 + level + 64. Used for rate
	// estimation only, never for packing.
	acLen [64 * 128]uint8

	// lumaDC and chromaDC hold one precomputed code per DC differential
	// in [-255, 255], indexed by diff+255.
	lumaDC   [512]dcCode
	chromaDC [512]dcCode
}

var (
	tablesOnce   sync.Once
	sharedTables *Tables
)

// Shared returns the process-wide code tables, building them on first use.
// Construction happens exactly once regardless of how many goroutines call
// Shared concurrently; every caller observes the completed tables.
func Shared() *Tables {
	tablesOnce.Do(func() {
		sharedTables = buildTables()
	})
	return sharedTables
}

func buildTables() *Tables {
	t := &Tables{}

	for i := range t.indexRun {
		t.indexRun[i] = 0xFF
	}
	for i := range acRun {
		run, level := acRun[i], acLevel[i]
		if t.indexRun[run] == 0xFF {
			t.indexRun[run] = uint8(i)
		}
		if level > t.maxLevel[run] {
			t.maxLevel[run] = level
		}
	}

	// Unified AC length table over runs 0..63 and levels -64..63.
	for run := 0; run < 64; run++ {
		for i := 0; i < 128; i++ {
			level := i - 64
			if level == 0 {
				continue
			}
			alevel := level
			if alevel < 0 {
				alevel = -alevel
			}
			if alevel <= int(t.maxLevel[run]) {
				t.acLen[run*128+i] = uint8(acCode[int(t.indexRun[run])+alevel-1][1]) + 1
			} else {
				t.acLen[run*128+i] = escTotalBits
			}
		}
	}

	// Unified DC tables for small differentials.
	for i := -255; i < 256; i++ {
		diff := int32(i)
		adiff := diff
		if adiff < 0 {
			adiff = -adiff
			diff--
		}
		index := log2(uint32(2 * adiff))

		t.lumaDC[i+255] = dcCode{
			bits: dcLumaBits[index] + uint8(index),
			code: uint32(dcLumaCode[index]) | zeroExtend(diff, index)<<dcLumaBits[index],
		}
		t.chromaDC[i+255] = dcCode{
			bits: dcChromaBits[index] + uint8(index),
			code: uint32(dcChromaCode[index]) | zeroExtend(diff, index)<<dcChromaBits[index],
		}
	}

	return t
}

// MaxLevel returns the largest magnitude codable for run without escaping.
func (t *Tables) MaxLevel(run int) int {
	return int(t.maxLevel[run])
}

// CodeBits returns the number of bits the coder emits for a (run, level)
// pair, sign bit included. run must be in [0, 63] and level in [-64, 63];
// a zero level has no code and reports 0.
func (t *Tables) CodeBits(run, level int) int {
	return int(t.acLen[run*128+level+64])
}

// log2 returns floor(log2(x)), and 0 for x == 0.
func log2(x uint32) uint {
	if x == 0 {
		return 0
	}
	return uint(bits.Len32(x)) - 1
}

// zeroExtend returns the low n bits of v as an unsigned value.
func zeroExtend(v int32, n uint) uint32 {
	return uint32(v) & (1<<n - 1)
}
