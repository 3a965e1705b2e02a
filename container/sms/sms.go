// Package sms builds the Sega Master System / Game Gear 16-byte footer
// (spec §4.4). No pack example targets the SMS/GG; built directly from
// spec.md's byte-exact field table (see DESIGN.md).
package sms

import (
	"fmt"

	"github.com/chriskillpack/retroasm/container/common"
)

// Config holds the SMS/GG footer fields spec §6 names.
type Config struct {
	ProductCodeBCD uint32 // up to 5 BCD digits, low-to-high
	Version        byte
	Region         byte // 3=SMS Japan, 4=SMS export, 5=GG Japan, 6=GG export, 7=GG international
}

func footerOffset(romSize int) (int, error) {
	switch {
	case romSize >= 32*1024:
		return 0x7FF0, nil
	case romSize == 16*1024:
		return 0x3FF0, nil
	case romSize == 8*1024:
		return 0x1FF0, nil
	default:
		return 0, fmt.Errorf("sms: unsupported ROM size %d", romSize)
	}
}

func sizeCode(romSize int) byte {
	switch romSize {
	case 8 * 1024:
		return 0xA
	case 16 * 1024:
		return 0xB
	case 32 * 1024:
		return 0xC
	case 48 * 1024:
		return 0xD
	case 64 * 1024:
		return 0xF
	case 128 * 1024:
		return 0x0
	case 256 * 1024:
		return 0x1
	case 512 * 1024:
		return 0x2
	case 1024 * 1024:
		return 0x3
	default:
		return 0x2
	}
}

// Build writes the 16-byte footer into a copy of image at the offset its
// size implies and patches the running checksum.
func Build(image []byte, cfg Config) ([]byte, error) {
	romSize := common.NextPowerOfTwo(len(image))
	if romSize < 8*1024 {
		romSize = 8 * 1024
	}
	off, err := footerOffset(romSize)
	if err != nil {
		return nil, err
	}
	rom := common.PadTo(image, romSize, 0)

	sum := common.SumBytes(rom[:off], 16)

	f := rom[off : off+16]
	copy(f[0:8], []byte("TMR SEGA"))
	f[8], f[9] = 0, 0
	common.PutLE16(f[10:12], sum)

	digits := cfg.ProductCodeBCD
	bcd := func(n uint32) byte { return byte(((n/10)%10)<<4 | n%10) }
	f[12] = bcd(digits % 100)
	f[13] = bcd(digits / 100 % 100)
	topDigit := byte((digits / 10000) % 10)
	f[14] = cfg.Version&0x0F<<4 | topDigit

	f[15] = cfg.Region<<4 | sizeCode(romSize)

	return rom, nil
}
