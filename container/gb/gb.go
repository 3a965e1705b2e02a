// Package gb builds the Game Boy cartridge header at ROM offset 0x100
// (spec §4.4). No pack example targets the Game Boy; built directly from
// spec.md's byte-exact field table (see DESIGN.md).
package gb

import (
	"fmt"

	"github.com/chriskillpack/retroasm/container/common"
)

// NintendoLogo is the fixed 48-byte boot-ROM comparison blob (spec
// glossary); bit-exact, never computed.
var NintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Config holds the gb_header_config fields spec §6 names.
type Config struct {
	Title         string
	CGBFlag       byte // 0x00, 0x80, or 0xC0
	SGBFlag       bool
	CartridgeType byte
	ROMSizeKB     int
	RAMSizeKB     int
	Region        byte
	Version       byte
	EntryPoint    uint16 // default 0x150
	NewLicensee   [2]byte
	OldLicensee   byte
}

func romSizeCode(kb int) byte {
	code := 0
	for 32<<uint(code) < kb {
		code++
	}
	return byte(code)
}

var ramSizeCodes = map[int]byte{0: 0, 8: 2, 32: 3, 64: 5, 128: 4}

// Build pads a copy of image with zeros to the next power of two that is
// at least 32 KiB and at least cfg.ROMSizeKB, writes the header into
// rom[0x100:0x150] (overwriting whatever image had there), and patches the
// two checksums (spec §4.4, §8 scenario S5).
func Build(image []byte, cfg Config) ([]byte, error) {
	total := common.NextPowerOfTwo(len(image))
	if declared := cfg.ROMSizeKB * 1024; total < declared {
		total = common.NextPowerOfTwo(declared)
	}
	if total < 32*1024 {
		total = 32 * 1024
	}
	rom := common.PadTo(image, total, 0)
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("gb: ROM too small for header")
	}

	entry := cfg.EntryPoint
	if entry == 0 {
		entry = 0x150
	}
	rom[0x100] = 0x00
	rom[0x101] = 0xC3
	rom[0x102] = byte(entry)
	rom[0x103] = byte(entry >> 8)

	copy(rom[0x104:0x134], NintendoLogo[:])

	titleLen := 16
	if cfg.CGBFlag != 0x00 {
		titleLen = 15
	}
	copy(rom[0x134:0x134+titleLen], common.ASCIIPad(cfg.Title, titleLen, 0))
	if cfg.CGBFlag != 0x00 {
		rom[0x143] = cfg.CGBFlag
	}

	rom[0x144] = cfg.NewLicensee[0]
	rom[0x145] = cfg.NewLicensee[1]
	if cfg.SGBFlag {
		rom[0x146] = 0x03
	}
	rom[0x147] = cfg.CartridgeType
	rom[0x148] = romSizeCode(cfg.ROMSizeKB)
	code, ok := ramSizeCodes[cfg.RAMSizeKB]
	if !ok {
		return nil, fmt.Errorf("gb: unsupported RAM size %d KB", cfg.RAMSizeKB)
	}
	rom[0x149] = code
	rom[0x14A] = cfg.Region
	oldLicensee := cfg.OldLicensee
	if oldLicensee == 0 && cfg.NewLicensee != [2]byte{} {
		// 0x33 tells readers to use the new-licensee field at 0x144-0x145
		// instead; route there automatically when the caller populated it
		// but left the old-style code unset.
		oldLicensee = 0x33
	}
	rom[0x14B] = oldLicensee
	rom[0x14C] = cfg.Version

	var x int
	for i := 0x134; i <= 0x14C; i++ {
		x -= int(rom[i]) + 1
	}
	rom[0x14D] = byte(x & 0xFF)

	var sum uint16
	for i, b := range rom {
		if i == 0x14E || i == 0x14F {
			continue
		}
		sum += uint16(b)
	}
	common.PutBE16(rom[0x14E:], uint64(sum))

	return rom, nil
}
