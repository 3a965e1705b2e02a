// Package snes builds the 64-byte SNES internal header and patches the
// ROM checksum/complement pair (spec §4.4). No pack example targets the
// SNES; built directly from spec.md's byte-exact field table (see
// DESIGN.md).
package snes

import (
	"fmt"

	"github.com/chriskillpack/retroasm/container/common"
)

type MapMode int

const (
	LoROM MapMode = iota
	HiROM
	ExHiROM
)

// Config holds the snes_header_config fields spec §6 names.
type Config struct {
	Title         string
	Map           MapMode
	FastROM       bool
	CartridgeType byte
	ROMSizeKB     int
	RAMSizeKB     int
	Region        byte
	DeveloperID   byte
	Version       byte
	// Vectors holds the twelve interrupt vectors in the fixed order
	// spec.md lists: native COP/BRK/ABORT/NMI/RESET/IRQ then emulation
	// COP/BRK/ABORT/NMI/RESET/IRQ.
	Vectors [12]uint16
}

func headerOffset(m MapMode) int {
	switch m {
	case LoROM:
		return 0x7FC0
	case HiROM:
		return 0xFFC0
	case ExHiROM:
		return 0x40FFC0
	}
	return 0x7FC0
}

func romSizeCode(kb int) byte {
	code := 0
	for (1 << uint(code)) < kb {
		code++
	}
	return byte(code)
}

func minROMSize(m MapMode) int {
	if m == LoROM {
		return 32 * 1024
	}
	return 64 * 1024
}

// Build pads image to a power-of-two size appropriate for m, writes the
// 64-byte header at the mode's fixed offset, and patches the checksum and
// its complement (spec §4.4, §8 scenario S7).
func Build(image []byte, cfg Config) ([]byte, error) {
	offset := headerOffset(cfg.Map)
	minSize := minROMSize(cfg.Map)
	total := common.NextPowerOfTwo(len(image))
	if total < minSize {
		total = minSize
	}
	if offset+64 > total {
		return nil, fmt.Errorf("snes: ROM size %d too small for header at offset 0x%X", total, offset)
	}

	rom := common.PadTo(image, total, 0)

	h := make([]byte, 64)
	copy(h[0:21], common.ASCIIPad(cfg.Title, 21, ' '))

	mapByte := byte(0)
	switch cfg.Map {
	case LoROM:
		mapByte = 0x20
	case HiROM:
		mapByte = 0x21
	case ExHiROM:
		mapByte = 0x25
	}
	if cfg.FastROM {
		mapByte |= 0x10
	}
	h[0x15] = mapByte
	h[0x16] = cfg.CartridgeType
	h[0x17] = romSizeCode(cfg.ROMSizeKB)
	h[0x18] = romSizeCode(cfg.RAMSizeKB)
	h[0x19] = cfg.Region
	h[0x1A] = cfg.DeveloperID
	h[0x1B] = cfg.Version
	// Checksum fields at +0x1C..0x1F start zeroed for the checksum pass.

	// Native vectors occupy +0x24..+0x2F, emulation vectors +0x34..+0x3F;
	// the +0x30..+0x33 gap is reserved.
	for i := 0; i < 6; i++ {
		common.PutLE16(h[0x24+i*2:], uint64(cfg.Vectors[i]))
	}
	for i := 0; i < 6; i++ {
		common.PutLE16(h[0x34+i*2:], uint64(cfg.Vectors[6+i]))
	}

	copy(rom[offset:offset+64], h)

	sum := common.SumBytes(rom, 16)
	// Checksum fields must read as zero while summing (spec §4.4).
	sum -= uint64(rom[offset+0x1C]) + uint64(rom[offset+0x1D])<<8
	sum -= uint64(rom[offset+0x1E]) + uint64(rom[offset+0x1F])<<8
	sum &= 0xFFFF
	complement := sum ^ 0xFFFF

	common.PutLE16(rom[offset+0x1C:], complement)
	common.PutLE16(rom[offset+0x1E:], sum)

	return rom, nil
}
