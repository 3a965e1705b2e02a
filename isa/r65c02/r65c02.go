// Package r65c02 extends the base 6502 catalog with the 65C02's additional
// addressing mode (ZeroPageIndirect) and the bra, phx/plx/phy/ply, stz and
// trb/tsb instructions; the bbr/bbs/rmb/smb bit instructions are not in
// this catalog. Grounded on the teacher's table plus the size/mode table
// style referenced in beevik-go6502's cpu/instructions.go
// (_examples/other_examples/39ca82d7_...).
package r65c02

import (
	"github.com/chriskillpack/retroasm/isa"
	"github.com/chriskillpack/retroasm/isa/mos6502"
)

// ZeroPageIndirect is the 65C02-only addressing mode, e.g. "lda ($12)".
const ZeroPageIndirect isa.AddressingMode = 100

var extra = []mos6502.Entry{
	{Mnemonic: "adc", Mode: ZeroPageIndirect, Opcode: 0x72, Size: 2},
	{Mnemonic: "and", Mode: ZeroPageIndirect, Opcode: 0x32, Size: 2},
	{Mnemonic: "cmp", Mode: ZeroPageIndirect, Opcode: 0xD2, Size: 2},
	{Mnemonic: "eor", Mode: ZeroPageIndirect, Opcode: 0x52, Size: 2},
	{Mnemonic: "lda", Mode: ZeroPageIndirect, Opcode: 0xB2, Size: 2},
	{Mnemonic: "ora", Mode: ZeroPageIndirect, Opcode: 0x12, Size: 2},
	{Mnemonic: "sbc", Mode: ZeroPageIndirect, Opcode: 0xF2, Size: 2},
	{Mnemonic: "sta", Mode: ZeroPageIndirect, Opcode: 0x92, Size: 2},

	{Mnemonic: "bra", Mode: mos6502.Relative, Opcode: 0x80, Size: 2},
	{Mnemonic: "phx", Mode: mos6502.Implied, Opcode: 0xDA, Size: 1},
	{Mnemonic: "plx", Mode: mos6502.Implied, Opcode: 0xFA, Size: 1},
	{Mnemonic: "phy", Mode: mos6502.Implied, Opcode: 0x5A, Size: 1},
	{Mnemonic: "ply", Mode: mos6502.Implied, Opcode: 0x7A, Size: 1},
	{Mnemonic: "stz", Mode: mos6502.ZeroPage, Opcode: 0x64, Size: 2},
	{Mnemonic: "stz", Mode: mos6502.ZeroPageX, Opcode: 0x74, Size: 2},
	{Mnemonic: "stz", Mode: mos6502.Absolute, Opcode: 0x9C, Size: 3},
	{Mnemonic: "stz", Mode: mos6502.AbsoluteX, Opcode: 0x9E, Size: 3},
	{Mnemonic: "trb", Mode: mos6502.ZeroPage, Opcode: 0x14, Size: 2},
	{Mnemonic: "trb", Mode: mos6502.Absolute, Opcode: 0x1C, Size: 3},
	{Mnemonic: "tsb", Mode: mos6502.ZeroPage, Opcode: 0x04, Size: 2},
	{Mnemonic: "tsb", Mode: mos6502.Absolute, Opcode: 0x0C, Size: 3},
}

var hintNames = func() map[string]isa.AddressingMode {
	m := make(map[string]isa.AddressingMode, len(mos6502.HintNames)+1)
	for k, v := range mos6502.HintNames {
		m[k] = v
	}
	m["zeropageindirect"] = ZeroPageIndirect
	return m
}()

func init() {
	cat := mos6502.NewCatalog(extra...)
	cat.AddBranch("bra")
	isa.Register(isa.R65C02, cat)
	isa.RegisterModeNames(isa.R65C02, hintNames)
}
