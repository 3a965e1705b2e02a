// Package spc builds a fixed 66 KiB SPC700 sound-file image (spec §4.4).
// No pack example targets this format; built directly from spec.md's
// byte-exact field table (see DESIGN.md).
package spc

import (
	"fmt"

	"github.com/chriskillpack/retroasm/container/common"
)

const fileSize = 66048 // 0x10200

// ID666 is the optional extended tag block at 0x2E..0xD2.
type ID666 struct {
	Song           string
	Game           string
	Dumper         string
	Comments       string
	Date           string
	FadeOutSeconds string
	FadeLenMS      string
	Artist         string
	DefaultChannel byte
	EmulatorID     byte
}

// Config holds the SPC header fields spec §6 names.
type Config struct {
	HasID666 bool
	Tag      ID666

	PC  uint16
	A   byte
	X   byte
	Y   byte
	PSW byte
	SP  byte

	// APURAM is the 64 KiB APU address space; DSPRegs is 128 bytes;
	// ExtraRAM is 64 bytes. Shorter inputs are zero-padded.
	APURAM   []byte
	DSPRegs  []byte
	ExtraRAM []byte
}

var signature = []byte("SNES-SPC700 Sound File Data v0.30")

// Build assembles the fixed 66 KiB SPC file from cfg. The flattened
// assembler image is expected to already be loaded into cfg.APURAM by the
// caller (spec §4.4: this package only handles container framing, not
// where in the 64 KiB APU space the generator placed its segments).
func Build(cfg Config) ([]byte, error) {
	out := make([]byte, fileSize)

	copy(out[0x00:0x23], signature)
	out[0x23] = 0x1A
	if cfg.HasID666 {
		out[0x23] = 0x1A
	} else {
		out[0x23] = 0x1B
	}
	out[0x24] = 30

	common.PutLE16(out[0x25:0x27], uint64(cfg.PC))
	out[0x27] = cfg.A
	out[0x28] = cfg.X
	out[0x29] = cfg.Y
	out[0x2A] = cfg.PSW
	out[0x2B] = cfg.SP

	if cfg.HasID666 {
		t := cfg.Tag
		copy(out[0x2E:0x4E], common.ASCIIPad(t.Song, 32, 0))
		copy(out[0x4E:0x6E], common.ASCIIPad(t.Game, 32, 0))
		copy(out[0x6E:0x7E], common.ASCIIPad(t.Dumper, 16, 0))
		copy(out[0x7E:0x9E], common.ASCIIPad(t.Comments, 32, 0))
		copy(out[0x9E:0xA9], common.ASCIIPad(t.Date, 11, 0))
		copy(out[0xA9:0xAC], common.ASCIIPad(t.FadeOutSeconds, 3, '0'))
		copy(out[0xAC:0xB1], common.ASCIIPad(t.FadeLenMS, 5, '0'))
		copy(out[0xB1:0xD1], common.ASCIIPad(t.Artist, 32, 0))
		out[0xD1] = t.DefaultChannel
		out[0xD2] = t.EmulatorID
	}

	if len(cfg.APURAM) > 64*1024 {
		return nil, fmt.Errorf("spc: APU RAM image is %d bytes, max 65536", len(cfg.APURAM))
	}
	copy(out[0x100:0x10100], cfg.APURAM)
	copy(out[0x10100:0x10180], cfg.DSPRegs)
	copy(out[0x10180:0x101C0], cfg.ExtraRAM)

	return out, nil
}
