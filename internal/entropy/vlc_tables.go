// Package entropy - vlc_tables.go holds the fixed SpeedHQ code tables.
//
// All codes are stored bit-reversed so they can be emitted directly in
// little-endian bit order: bit 0 of a stored code is the first bit that
// appears in the stream.
package entropy

// acRun and acLevel list the (run, level) pair of each entry in acCode,
// grouped by run with levels ascending. Pairs outside this set use the
// escape form.
var acRun = [...]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 4, 4,
	4, 4, 5, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
	9, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15, 16,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
	32, 33, 34, 35, 36, 37, 38, 39, 40,
}

var acLevel = [...]uint8{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	1, 2, 3, 4, 5, 6, 7, 8, 1, 2, 3, 4, 5, 6, 1, 2,
	3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 1, 2, 3,
	1, 2, 3, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1,
	2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// acCode holds the {code, bits} pair for each run/level entry, sign bit
// excluded. The sign is OR'd in at bit position [1] at encode time.
var acCode = [...][2]uint16{
	{0x0001, 2}, {0x0008, 4}, {0x0010, 5}, {0x0000, 6},
	{0x0003, 7}, {0x0063, 8}, {0x00B3, 9}, {0x000B, 10},
	{0x018B, 11}, {0x058B, 11}, {0x054B, 12}, {0x0D4B, 12},
	{0x034B, 12}, {0x0B4B, 12}, {0x06CB, 13}, {0x16CB, 13},
	{0x0ECB, 13}, {0x1ECB, 13}, {0x01CB, 13}, {0x11CB, 13},
	{0x0FCB, 14}, {0x2FCB, 14}, {0x1FCB, 14}, {0x3FCB, 14},
	{0x002B, 14}, {0x202B, 14}, {0x102B, 14}, {0x302B, 14},
	{0x082B, 14}, {0x282B, 14}, {0x182B, 14}, {0x382B, 14},
	{0x0004, 3}, {0x000A, 6}, {0x00E3, 8}, {0x01B3, 9},
	{0x038B, 11}, {0x074B, 12}, {0x09CB, 13}, {0x19CB, 13},
	{0x042B, 14}, {0x242B, 14}, {0x142B, 14}, {0x342B, 14},
	{0x062B, 15}, {0x462B, 15}, {0x262B, 15}, {0x662B, 15},
	{0x000E, 4}, {0x0013, 8}, {0x020B, 10}, {0x0F4B, 12},
	{0x05CB, 13}, {0x0C2B, 14}, {0x162B, 15}, {0x562B, 15},
	{0x0002, 5}, {0x0093, 8}, {0x078B, 11}, {0x15CB, 13},
	{0x2C2B, 14}, {0x362B, 15}, {0x0012, 5}, {0x0073, 9},
	{0x00CB, 12}, {0x1C2B, 14}, {0x002A, 6}, {0x010B, 10},
	{0x0DCB, 13}, {0x762B, 15}, {0x001A, 6}, {0x004B, 11},
	{0x1DCB, 13}, {0x0E2B, 15}, {0x003A, 6}, {0x044B, 11},
	{0x3C2B, 14}, {0x0043, 7}, {0x08CB, 12}, {0x022B, 14},
	{0x0023, 7}, {0x04CB, 12}, {0x4E2B, 15}, {0x0053, 8},
	{0x03CB, 13}, {0x00D3, 8}, {0x13CB, 13}, {0x0033, 8},
	{0x222B, 14}, {0x0173, 9}, {0x122B, 14}, {0x00F3, 9},
	{0x322B, 14}, {0x01F3, 9}, {0x2E2B, 15}, {0x030B, 10},
	{0x6E2B, 15}, {0x008B, 10}, {0x028B, 10}, {0x024B, 11},
	{0x064B, 11}, {0x014B, 11}, {0x0CCB, 12}, {0x02CB, 12},
	{0x0ACB, 12}, {0x0BCB, 13}, {0x1BCB, 13}, {0x07CB, 13},
	{0x17CB, 13}, {0x0A2B, 14}, {0x2A2B, 14}, {0x1A2B, 14},
	{0x3A2B, 14}, {0x1E2B, 15}, {0x5E2B, 15}, {0x3E2B, 15},
	{0x7E2B, 15}, {0x012B, 16}, {0x812B, 16}, {0x412B, 16},
	{0xC12B, 16},
}

// Escape form: 6-bit marker, 6-bit run, 12-bit biased level.
const (
	escCode      = 0x20
	escBits      = 6
	escRunBits   = 6
	escLevelBits = 12
	escTotalBits = escBits + escRunBits + escLevelBits
)

// End-of-block code, emitted once per block.
const (
	eobCode = 0x06
	eobBits = 4
)

// DC size code tables, one entry per magnitude class. Classes 0-10 are the
// MPEG-2 dct_dc_size codes with the bits reversed for little-endian
// emission. Classes 11-12 split the last MPEG-2 codeword so that
// differentials up to magnitude 2048 stay encodable; class 11 emissions
// therefore differ from encoders built on the 12-entry tables, which stop
// at class 11 and cannot code magnitude 2048 at all.
var (
	dcLumaBits = [13]uint8{3, 2, 2, 3, 3, 4, 5, 6, 7, 8, 9, 10, 10}
	dcLumaCode = [13]uint16{
		0x001, 0x000, 0x002, 0x005, 0x003, 0x007, 0x00F, 0x01F,
		0x03F, 0x07F, 0x0FF, 0x1FF, 0x3FF,
	}

	dcChromaBits = [13]uint8{2, 2, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 11}
	dcChromaCode = [13]uint16{
		0x000, 0x002, 0x001, 0x003, 0x007, 0x00F, 0x01F, 0x03F,
		0x07F, 0x0FF, 0x1FF, 0x3FF, 0x7FF,
	}
)

// ZigzagScan maps a scan position (0-63) to its natural block position,
// ordered by increasing spatial frequency. Position 0 is the DC slot and
// is never walked by the AC loop.
var ZigzagScan = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}
