// Package gba builds the 192-byte Game Boy Advance cartridge header (spec
// §4.4). No pack example targets the GBA; built directly from spec.md's
// byte-exact field table (see DESIGN.md). The entry-point branch reuses
// isa/arm7tdmi's branch encoding rule (ARM word at offset 0, "encoded by
// the ARM branch rule" per spec.md).
package gba

import (
	"fmt"

	"github.com/chriskillpack/retroasm/container/common"
)

// NintendoLogo fills the 156-byte logo area at 0x04..0x9F. It is a
// placeholder of the correct size: its first 48 bytes are the Game Boy
// logo bytes (the same as container/gb's) and the remaining 108 bytes are
// zero. It is not the GBA boot-ROM logo.
var NintendoLogo = func() [156]byte {
	var logo [156]byte
	copy(logo[:], []byte{
		0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
		0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
		0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
		0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
	})
	return logo
}()

// Config holds the GBA header fields spec §6 names.
type Config struct {
	Title       string // 12 chars, upper case
	GameCode    [4]byte
	MakerCode   [2]byte
	MainUnit    byte
	DeviceType  byte
	Version     byte
	EntryTarget uint32 // ARM address the opening branch jumps to
}

// branchWord encodes an ARM `b` instruction at address 0x00 targeting
// target, following the ARM7TDMI PC-relative branch rule: PC reads as
// instruction-address+8, so the 24-bit word offset is (target-8)/4.
func branchWord(target uint32) []byte {
	offset := int32(target) - 8
	imm24 := uint32(offset/4) & 0x00FFFFFF
	word := uint32(0xEA000000) | imm24
	return []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
}

// Build writes the header into a copy of image padded to the GBA's
// minimum practical size, patching the entry branch and header checksum.
func Build(image []byte, cfg Config) ([]byte, error) {
	total := common.NextPowerOfTwo(len(image))
	if total < 0xC0 {
		total = 0xC0
	}
	rom := common.PadTo(image, total, 0)

	copy(rom[0:4], branchWord(cfg.EntryTarget))
	copy(rom[4:0xA0], NintendoLogo[:])
	copy(rom[0xA0:0xAC], common.ASCIIPad(cfg.Title, 12, ' '))
	copy(rom[0xAC:0xB0], cfg.GameCode[:])
	copy(rom[0xB0:0xB2], cfg.MakerCode[:])
	rom[0xB2] = 0x96
	rom[0xB3] = cfg.MainUnit
	rom[0xB4] = cfg.DeviceType
	for i := 0xB5; i <= 0xBB; i++ {
		rom[i] = 0
	}
	rom[0xBC] = cfg.Version

	var sum int
	for i := 0xA0; i <= 0xBC; i++ {
		sum -= int(rom[i])
	}
	sum -= 0x19
	rom[0xBD] = byte(sum & 0xFF)

	rom[0xBE] = 0
	rom[0xBF] = 0

	if len(rom) < 0xC0 {
		return nil, fmt.Errorf("gba: ROM too small for header")
	}
	return rom, nil
}
