// Package genesis builds the 512-byte Sega Genesis/Mega Drive header
// (spec §4.4). No pack example targets the Genesis; built directly from
// spec.md's byte-exact field table (see DESIGN.md). All multi-byte
// numeric fields are big-endian, matching the M68000 target's own
// endianness (spec §8 scenario 4).
package genesis

import (
	"github.com/chriskillpack/retroasm/container/common"
)

// Config holds the Genesis header fields spec §6 names.
type Config struct {
	ConsoleName    string
	Copyright      string
	DomesticName   string
	OverseasName   string
	ProductCode    string
	IOSupport      string
	ROMStart       uint32
	ROMEnd         uint32
	RAMStart       uint32
	RAMEnd         uint32
	SRAMType       byte
	SRAMStart      uint32
	SRAMEnd        uint32
	Modem          string
	Memo           string
	Region         string
}

func put32BE(buf []byte, v uint32) {
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
}

// Build writes the 512-byte header into offsets 0x100..0x1FF of a copy of
// image and patches the running checksum.
func Build(image []byte, cfg Config) ([]byte, error) {
	total := len(image)
	if total < 0x200 {
		total = 0x200
	}
	rom := common.PadTo(image, total, 0)

	h := rom[0x100:0x200]
	copy(h[0x00:0x10], common.ASCIIPad(cfg.ConsoleName, 16, ' '))
	copy(h[0x10:0x20], common.ASCIIPad(cfg.Copyright, 16, ' '))
	copy(h[0x20:0x50], common.ASCIIPad(cfg.DomesticName, 48, ' '))
	copy(h[0x50:0x80], common.ASCIIPad(cfg.OverseasName, 48, ' '))
	copy(h[0x80:0x8E], common.ASCIIPad(cfg.ProductCode, 14, ' '))
	// Checksum at 0x8E..0x8F patched after the body is assembled.
	copy(h[0x90:0xA0], common.ASCIIPad(cfg.IOSupport, 16, ' '))
	put32BE(h[0xA0:0xA4], cfg.ROMStart)
	put32BE(h[0xA4:0xA8], cfg.ROMEnd)
	put32BE(h[0xA8:0xAC], cfg.RAMStart)
	put32BE(h[0xAC:0xB0], cfg.RAMEnd)

	copy(h[0xB0:0xB2], []byte("RA"))
	h[0xB2] = cfg.SRAMType
	h[0xB3] = ' '
	put32BE(h[0xB4:0xB8], cfg.SRAMStart)
	put32BE(h[0xB8:0xBC], cfg.SRAMEnd)

	copy(h[0xBC:0xC8], common.ASCIIPad(cfg.Modem, 12, ' '))
	copy(h[0xC8:0xF0], common.ASCIIPad(cfg.Memo, 40, ' '))
	copy(h[0xF0:0x100], common.ASCIIPad(cfg.Region, 16, ' '))

	sum := common.SumWordsBE(rom[0x200:], 16)
	common.PutBE16(h[0x8E:0x90], sum)

	return rom, nil
}
