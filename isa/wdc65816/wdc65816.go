// Package wdc65816 catalogs the WDC 65816, a 6502/65C02 superset. It
// reuses the teacher's base table (isa/mos6502) for direct-page-equivalent
// modes and adds the 65816-only modes spec §4.1 lists: AbsoluteLong,
// AbsoluteLongX, StackRelative, StackRelativeIndirectIndexed,
// DirectPageIndirectLong, DirectPageIndirectLongY,
// AbsoluteIndexedIndirect, AbsoluteIndirectLong, BlockMove. Grounded
// additionally on the struct shape in beevik-go6502/instructions.go
// (_examples/other_examples/02899b48_...).
package wdc65816

import (
	"github.com/chriskillpack/retroasm/isa"
	"github.com/chriskillpack/retroasm/isa/mos6502"
)

const (
	AbsoluteLong isa.AddressingMode = 300 + iota
	AbsoluteLongX
	StackRelative
	StackRelativeIndirectIndexed
	DirectPageIndirectLong
	DirectPageIndirectLongY
	AbsoluteIndexedIndirect
	AbsoluteIndirectLong
	BlockMove
	// ImmediateWide is the 16-bit immediate form used when the
	// accumulator or index registers are in 16-bit mode. It shares
	// mos6502.Immediate's opcode but differs in size, so it needs its
	// own catalog key (§4.1, §8 scenario S7: mode narrowing never
	// touches immediate forms, and the two widths never collide).
	ImmediateWide
)

var extra = []mos6502.Entry{
	{Mnemonic: "adc", Mode: AbsoluteLong, Opcode: 0x6F, Size: 4},
	{Mnemonic: "adc", Mode: AbsoluteLongX, Opcode: 0x7F, Size: 4},
	{Mnemonic: "adc", Mode: StackRelative, Opcode: 0x63, Size: 2},
	{Mnemonic: "adc", Mode: StackRelativeIndirectIndexed, Opcode: 0x73, Size: 2},
	{Mnemonic: "adc", Mode: DirectPageIndirectLong, Opcode: 0x67, Size: 2},
	{Mnemonic: "adc", Mode: DirectPageIndirectLongY, Opcode: 0x77, Size: 2},

	{Mnemonic: "lda", Mode: AbsoluteLong, Opcode: 0xAF, Size: 4},
	{Mnemonic: "lda", Mode: AbsoluteLongX, Opcode: 0xBF, Size: 4},
	{Mnemonic: "lda", Mode: StackRelative, Opcode: 0xA3, Size: 2},
	{Mnemonic: "lda", Mode: StackRelativeIndirectIndexed, Opcode: 0xB3, Size: 2},
	{Mnemonic: "lda", Mode: DirectPageIndirectLong, Opcode: 0xA7, Size: 2},
	{Mnemonic: "lda", Mode: DirectPageIndirectLongY, Opcode: 0xB7, Size: 2},

	{Mnemonic: "sta", Mode: AbsoluteLong, Opcode: 0x8F, Size: 4},
	{Mnemonic: "sta", Mode: AbsoluteLongX, Opcode: 0x9F, Size: 4},
	{Mnemonic: "sta", Mode: StackRelative, Opcode: 0x83, Size: 2},
	{Mnemonic: "sta", Mode: StackRelativeIndirectIndexed, Opcode: 0x93, Size: 2},
	{Mnemonic: "sta", Mode: DirectPageIndirectLong, Opcode: 0x87, Size: 2},
	{Mnemonic: "sta", Mode: DirectPageIndirectLongY, Opcode: 0x97, Size: 2},

	{Mnemonic: "jmp", Mode: AbsoluteLong, Opcode: 0x5C, Size: 4},
	{Mnemonic: "jmp", Mode: AbsoluteIndirectLong, Opcode: 0xDC, Size: 3},
	{Mnemonic: "jmp", Mode: AbsoluteIndexedIndirect, Opcode: 0x7C, Size: 3},
	{Mnemonic: "jsr", Mode: AbsoluteLong, Opcode: 0x22, Size: 4},
	{Mnemonic: "jsr", Mode: AbsoluteIndexedIndirect, Opcode: 0xFC, Size: 3},

	{Mnemonic: "mvn", Mode: BlockMove, Opcode: 0x54, Size: 3},
	{Mnemonic: "mvp", Mode: BlockMove, Opcode: 0x44, Size: 3},

	{Mnemonic: "phb", Mode: mos6502.Implied, Opcode: 0x8B, Size: 1},
	{Mnemonic: "plb", Mode: mos6502.Implied, Opcode: 0xAB, Size: 1},
	{Mnemonic: "phd", Mode: mos6502.Implied, Opcode: 0x0B, Size: 1},
	{Mnemonic: "pld", Mode: mos6502.Implied, Opcode: 0x2B, Size: 1},
	{Mnemonic: "phk", Mode: mos6502.Implied, Opcode: 0x4B, Size: 1},
	{Mnemonic: "rep", Mode: mos6502.Immediate, Opcode: 0xC2, Size: 2},
	{Mnemonic: "sep", Mode: mos6502.Immediate, Opcode: 0xE2, Size: 2},
	{Mnemonic: "xce", Mode: mos6502.Implied, Opcode: 0xFB, Size: 1},
	{Mnemonic: "rtl", Mode: mos6502.Implied, Opcode: 0x6B, Size: 1},

	{Mnemonic: "bra", Mode: mos6502.Relative, Opcode: 0x80, Size: 2},

	// 16-bit immediate forms: same opcode as the 8-bit mos6502.Immediate
	// entry, one byte wider.
	{Mnemonic: "adc", Mode: ImmediateWide, Opcode: 0x69, Size: 3},
	{Mnemonic: "and", Mode: ImmediateWide, Opcode: 0x29, Size: 3},
	{Mnemonic: "cmp", Mode: ImmediateWide, Opcode: 0xC9, Size: 3},
	{Mnemonic: "eor", Mode: ImmediateWide, Opcode: 0x49, Size: 3},
	{Mnemonic: "lda", Mode: ImmediateWide, Opcode: 0xA9, Size: 3},
	{Mnemonic: "ldx", Mode: ImmediateWide, Opcode: 0xA2, Size: 3},
	{Mnemonic: "ldy", Mode: ImmediateWide, Opcode: 0xA0, Size: 3},
	{Mnemonic: "ora", Mode: ImmediateWide, Opcode: 0x09, Size: 3},
	{Mnemonic: "sbc", Mode: ImmediateWide, Opcode: 0xE9, Size: 3},
}

var hintNames = func() map[string]isa.AddressingMode {
	m := make(map[string]isa.AddressingMode, len(mos6502.HintNames)+10)
	for k, v := range mos6502.HintNames {
		m[k] = v
	}
	m["absolutelong"] = AbsoluteLong
	m["absolutelongx"] = AbsoluteLongX
	m["stackrelative"] = StackRelative
	m["stackrelativeindirectindexed"] = StackRelativeIndirectIndexed
	m["directpageindirectlong"] = DirectPageIndirectLong
	m["directpageindirectlongy"] = DirectPageIndirectLongY
	m["absoluteindexedindirect"] = AbsoluteIndexedIndirect
	m["absoluteindirectlong"] = AbsoluteIndirectLong
	m["blockmove"] = BlockMove
	m["immediatewide"] = ImmediateWide
	return m
}()

func init() {
	cat := mos6502.NewCatalog(extra...)
	cat.AddBranch("bra")
	isa.Register(isa.WDC65816, cat)
	isa.RegisterModeNames(isa.WDC65816, hintNames)
}
