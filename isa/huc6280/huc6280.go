// Package huc6280 catalogs the PC Engine/TurboGrafx-16 CPU: a 65C02
// derivative adding block-transfer, zero-page-bit, and zero-page-relative
// addressing per spec §4.1. Grounded on the teacher's base 6502 table
// extended with the HuC6280-only forms the spec names.
package huc6280

import (
	"github.com/chriskillpack/retroasm/isa"
	"github.com/chriskillpack/retroasm/isa/mos6502"
)

const (
	ZeroPageIndirect isa.AddressingMode = 200 + iota
	AbsoluteIndirectX
	BlockTransfer
	ZeroPageBit
	ZeroPageRelative
)

var extra = []mos6502.Entry{
	{Mnemonic: "adc", Mode: ZeroPageIndirect, Opcode: 0x72, Size: 2},
	{Mnemonic: "and", Mode: ZeroPageIndirect, Opcode: 0x32, Size: 2},
	{Mnemonic: "cmp", Mode: ZeroPageIndirect, Opcode: 0xD2, Size: 2},
	{Mnemonic: "eor", Mode: ZeroPageIndirect, Opcode: 0x52, Size: 2},
	{Mnemonic: "lda", Mode: ZeroPageIndirect, Opcode: 0xB2, Size: 2},
	{Mnemonic: "ora", Mode: ZeroPageIndirect, Opcode: 0x12, Size: 2},
	{Mnemonic: "sbc", Mode: ZeroPageIndirect, Opcode: 0xF2, Size: 2},
	{Mnemonic: "sta", Mode: ZeroPageIndirect, Opcode: 0x92, Size: 2},

	{Mnemonic: "jmp", Mode: AbsoluteIndirectX, Opcode: 0x7C, Size: 3},

	// Block-transfer instructions are 7 bytes: opcode, source (16-bit
	// LE), destination (16-bit LE), length (16-bit LE).
	{Mnemonic: "tii", Mode: BlockTransfer, Opcode: 0x73, Size: 7},
	{Mnemonic: "tdd", Mode: BlockTransfer, Opcode: 0xC3, Size: 7},
	{Mnemonic: "tin", Mode: BlockTransfer, Opcode: 0xD3, Size: 7},
	{Mnemonic: "tia", Mode: BlockTransfer, Opcode: 0xE3, Size: 7},
	{Mnemonic: "tai", Mode: BlockTransfer, Opcode: 0xF3, Size: 7},

	// Zero-page-bit test/set/clear, one byte operand (zero-page addr).
	{Mnemonic: "rmb0", Mode: ZeroPageBit, Opcode: 0x07, Size: 2},
	{Mnemonic: "rmb1", Mode: ZeroPageBit, Opcode: 0x17, Size: 2},
	{Mnemonic: "smb0", Mode: ZeroPageBit, Opcode: 0x87 | 0x80, Size: 2},
	{Mnemonic: "smb1", Mode: ZeroPageBit, Opcode: 0x97 | 0x80, Size: 2},

	// Zero-page-relative (test bit then branch): zero-page addr + signed
	// displacement, 3 bytes.
	{Mnemonic: "bbr0", Mode: ZeroPageRelative, Opcode: 0x0F, Size: 3},
	{Mnemonic: "bbs0", Mode: ZeroPageRelative, Opcode: 0x8F, Size: 3},

	{Mnemonic: "tsb", Mode: mos6502.ZeroPage, Opcode: 0x04, Size: 2},
	{Mnemonic: "tsb", Mode: mos6502.Absolute, Opcode: 0x0C, Size: 3},
	{Mnemonic: "trb", Mode: mos6502.ZeroPage, Opcode: 0x14, Size: 2},
	{Mnemonic: "trb", Mode: mos6502.Absolute, Opcode: 0x1C, Size: 3},
	{Mnemonic: "stz", Mode: mos6502.ZeroPage, Opcode: 0x64, Size: 2},
	{Mnemonic: "stz", Mode: mos6502.Absolute, Opcode: 0x9C, Size: 3},
	{Mnemonic: "bra", Mode: mos6502.Relative, Opcode: 0x80, Size: 2},
}

var hintNames = func() map[string]isa.AddressingMode {
	m := make(map[string]isa.AddressingMode, len(mos6502.HintNames)+5)
	for k, v := range mos6502.HintNames {
		m[k] = v
	}
	m["zeropageindirect"] = ZeroPageIndirect
	m["absoluteindirectx"] = AbsoluteIndirectX
	m["blocktransfer"] = BlockTransfer
	m["zeropagebit"] = ZeroPageBit
	m["zeropagerelative"] = ZeroPageRelative
	return m
}()

func init() {
	cat := mos6502.NewCatalog(extra...)
	cat.AddBranch("bra")
	isa.Register(isa.HuC6280, cat)
	isa.RegisterModeNames(isa.HuC6280, hintNames)
}
