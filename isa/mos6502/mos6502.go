// Package mos6502 is the MOS 6502 instruction-set catalog. The opcode data
// is adapted directly from the teacher's decode-direction table
// (opcodes.go's OpCodes/OpCodesMap), repurposed here for the inverse
// problem: encoding a (mnemonic, mode) pair into opcode bytes rather than
// decoding an opcode byte into a mnemonic.
package mos6502

import (
	"strings"

	"github.com/chriskillpack/retroasm/isa"
)

// Addressing modes, same taxonomy as spec §4.1's 6502 family list.
const (
	Implied isa.AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
	Relative
)

// Entry is one catalog row: mnemonic, addressing mode, opcode byte, and
// total instruction size.
type Entry struct {
	Mnemonic string
	Mode     isa.AddressingMode
	Opcode   byte
	Size     int
}

// Table is the opcode list, exported so isa/r65c02, isa/mos6507, and
// isa/huc6280 can build on top of it without duplicating entries.
var Table = []Entry{
	{"adc", Immediate, 0x69, 2}, {"adc", ZeroPage, 0x65, 2}, {"adc", ZeroPageX, 0x75, 2},
	{"adc", Absolute, 0x6D, 3}, {"adc", AbsoluteX, 0x7D, 3}, {"adc", AbsoluteY, 0x79, 3},
	{"adc", IndexedIndirect, 0x61, 2}, {"adc", IndirectIndexed, 0x71, 2},

	{"and", Immediate, 0x29, 2}, {"and", ZeroPage, 0x25, 2}, {"and", ZeroPageX, 0x35, 2},
	{"and", Absolute, 0x2D, 3}, {"and", AbsoluteX, 0x3D, 3}, {"and", AbsoluteY, 0x39, 3},
	{"and", IndexedIndirect, 0x21, 2}, {"and", IndirectIndexed, 0x31, 2},

	{"asl", Accumulator, 0x0A, 1}, {"asl", ZeroPage, 0x06, 2}, {"asl", ZeroPageX, 0x16, 2},
	{"asl", Absolute, 0x0E, 3}, {"asl", AbsoluteX, 0x1E, 3},

	{"bit", ZeroPage, 0x24, 2}, {"bit", Absolute, 0x2C, 3},

	{"bpl", Relative, 0x10, 2}, {"bmi", Relative, 0x30, 2}, {"bvc", Relative, 0x50, 2},
	{"bvs", Relative, 0x70, 2}, {"bcc", Relative, 0x90, 2}, {"bcs", Relative, 0xB0, 2},
	{"bne", Relative, 0xD0, 2}, {"beq", Relative, 0xF0, 2},

	{"brk", Implied, 0x00, 1},

	{"cmp", Immediate, 0xC9, 2}, {"cmp", ZeroPage, 0xC5, 2}, {"cmp", ZeroPageX, 0xD5, 2},
	{"cmp", Absolute, 0xCD, 3}, {"cmp", AbsoluteX, 0xDD, 3}, {"cmp", AbsoluteY, 0xD9, 3},
	{"cmp", IndexedIndirect, 0xC1, 2}, {"cmp", IndirectIndexed, 0xD1, 2},

	{"cpx", Immediate, 0xE0, 2}, {"cpx", ZeroPage, 0xE4, 2}, {"cpx", Absolute, 0xEC, 3},
	{"cpy", Immediate, 0xC0, 2}, {"cpy", ZeroPage, 0xC4, 2}, {"cpy", Absolute, 0xCC, 3},

	{"dec", ZeroPage, 0xC6, 2}, {"dec", ZeroPageX, 0xD6, 2}, {"dec", Absolute, 0xCE, 3},
	{"dec", AbsoluteX, 0xDE, 3},

	{"eor", Immediate, 0x49, 2}, {"eor", ZeroPage, 0x45, 2}, {"eor", ZeroPageX, 0x55, 2},
	{"eor", Absolute, 0x4D, 3}, {"eor", AbsoluteX, 0x5D, 3}, {"eor", AbsoluteY, 0x59, 3},
	{"eor", IndexedIndirect, 0x41, 2}, {"eor", IndirectIndexed, 0x51, 2},

	{"clc", Implied, 0x18, 1}, {"sec", Implied, 0x38, 1}, {"cli", Implied, 0x58, 1},
	{"sei", Implied, 0x78, 1}, {"clv", Implied, 0xB8, 1}, {"cld", Implied, 0xD8, 1},
	{"sed", Implied, 0xF8, 1},

	{"inc", ZeroPage, 0xE6, 2}, {"inc", ZeroPageX, 0xF6, 2}, {"inc", Absolute, 0xEE, 3},
	{"inc", AbsoluteX, 0xFE, 3},

	{"jmp", Absolute, 0x4C, 3}, {"jmp", Indirect, 0x6C, 3},
	{"jsr", Absolute, 0x20, 3},

	{"lda", Immediate, 0xA9, 2}, {"lda", ZeroPage, 0xA5, 2}, {"lda", ZeroPageX, 0xB5, 2},
	{"lda", Absolute, 0xAD, 3}, {"lda", AbsoluteX, 0xBD, 3}, {"lda", AbsoluteY, 0xB9, 3},
	{"lda", IndexedIndirect, 0xA1, 2}, {"lda", IndirectIndexed, 0xB1, 2},

	{"ldx", Immediate, 0xA2, 2}, {"ldx", ZeroPage, 0xA6, 2}, {"ldx", ZeroPageY, 0xB6, 2},
	{"ldx", Absolute, 0xAE, 3}, {"ldx", AbsoluteY, 0xBE, 3},

	{"ldy", Immediate, 0xA0, 2}, {"ldy", ZeroPage, 0xA4, 2}, {"ldy", ZeroPageX, 0xB4, 2},
	{"ldy", Absolute, 0xAC, 3}, {"ldy", AbsoluteX, 0xBC, 3},

	{"lsr", Accumulator, 0x4A, 1}, {"lsr", ZeroPage, 0x46, 2}, {"lsr", ZeroPageX, 0x56, 2},
	{"lsr", Absolute, 0x4E, 3}, {"lsr", AbsoluteX, 0x5E, 3},

	{"nop", Implied, 0xEA, 1},

	{"ora", Immediate, 0x09, 2}, {"ora", ZeroPage, 0x05, 2}, {"ora", ZeroPageX, 0x15, 2},
	{"ora", Absolute, 0x0D, 3}, {"ora", AbsoluteX, 0x1D, 3}, {"ora", AbsoluteY, 0x19, 3},
	{"ora", IndexedIndirect, 0x01, 2}, {"ora", IndirectIndexed, 0x11, 2},

	{"tax", Implied, 0xAA, 1}, {"txa", Implied, 0x8A, 1}, {"dex", Implied, 0xCA, 1},
	{"inx", Implied, 0xE8, 1}, {"tay", Implied, 0xA8, 1}, {"tya", Implied, 0x98, 1},
	{"dey", Implied, 0x88, 1}, {"iny", Implied, 0xC8, 1},

	{"rol", Accumulator, 0x2A, 1}, {"rol", ZeroPage, 0x26, 2}, {"rol", ZeroPageX, 0x36, 2},
	{"rol", Absolute, 0x2E, 3}, {"rol", AbsoluteX, 0x3E, 3},

	{"ror", Accumulator, 0x6A, 1}, {"ror", ZeroPage, 0x66, 2}, {"ror", ZeroPageX, 0x76, 2},
	{"ror", Absolute, 0x6E, 3}, {"ror", AbsoluteX, 0x7E, 3},

	{"rti", Implied, 0x40, 1},
	{"rts", Implied, 0x60, 1},

	{"sbc", Immediate, 0xE9, 2}, {"sbc", ZeroPage, 0xE5, 2}, {"sbc", ZeroPageX, 0xF5, 2},
	{"sbc", Absolute, 0xED, 3}, {"sbc", AbsoluteX, 0xFD, 3}, {"sbc", AbsoluteY, 0xF9, 3},
	{"sbc", IndexedIndirect, 0xE1, 2}, {"sbc", IndirectIndexed, 0xF1, 2},

	{"sta", ZeroPage, 0x85, 2}, {"sta", ZeroPageX, 0x95, 2}, {"sta", Absolute, 0x8D, 3},
	{"sta", AbsoluteX, 0x9D, 3}, {"sta", AbsoluteY, 0x99, 3}, {"sta", IndexedIndirect, 0x81, 2},
	{"sta", IndirectIndexed, 0x91, 2},

	{"txs", Implied, 0x9A, 1}, {"tsx", Implied, 0xBA, 1}, {"pha", Implied, 0x48, 1},
	{"pla", Implied, 0x68, 1}, {"php", Implied, 0x08, 1}, {"plp", Implied, 0x28, 1},

	{"stx", ZeroPage, 0x86, 2}, {"stx", ZeroPageY, 0x96, 2}, {"stx", Absolute, 0x8E, 3},
	{"sty", ZeroPage, 0x84, 2}, {"sty", ZeroPageX, 0x94, 2}, {"sty", Absolute, 0x8C, 3},
}

// BranchMnemonics lists the PC-relative branch instructions, same set as
// the teacher's branchInstructions.
var BranchMnemonics = []string{"bpl", "bmi", "bvc", "bvs", "bcc", "bcs", "bne", "beq"}

type key struct {
	mnemonic string
	mode     isa.AddressingMode
}

// Catalog implements isa.Catalog for the 6502. isa/mos6507, isa/r65c02,
// isa/wdc65816 and isa/huc6280 also build their catalogs with NewCatalog,
// the last three passing extra entries to extend the base table.
type Catalog struct {
	encodings map[key]isa.Encoding
	branch    map[string]bool
}

// NewCatalog builds a Catalog from table, folding in the base 6502 table
// plus any extra entries (e.g. 65C02/HuC6280 additions) passed in extra.
func NewCatalog(extra ...Entry) *Catalog {
	c := &Catalog{
		encodings: make(map[key]isa.Encoding),
		branch:    make(map[string]bool),
	}
	for _, e := range Table {
		c.add(e)
	}
	for _, e := range extra {
		c.add(e)
	}
	for _, b := range BranchMnemonics {
		c.branch[b] = true
	}
	return c
}

func (c *Catalog) add(e Entry) {
	c.encodings[key{e.Mnemonic, e.Mode}] = isa.Encoding{Opcode: []byte{e.Opcode}, Size: e.Size}
}

func (c *Catalog) Lookup(mnemonic string, mode isa.AddressingMode) (isa.Encoding, bool) {
	enc, ok := c.encodings[key{strings.ToLower(mnemonic), mode}]
	return enc, ok
}

func (c *Catalog) IsBranch(mnemonic string) bool {
	return c.branch[strings.ToLower(mnemonic)]
}

// AddBranch marks additional mnemonics as PC-relative branches, for
// extension packages (isa/r65c02, isa/huc6280, isa/wdc65816) that add
// branch-family instructions (e.g. "bra") beyond BranchMnemonics.
func (c *Catalog) AddBranch(mnemonics ...string) {
	for _, m := range mnemonics {
		c.branch[strings.ToLower(m)] = true
	}
}

// Entries implements isa.Enumerable.
func (c *Catalog) Entries() []isa.Entry {
	out := make([]isa.Entry, 0, len(c.encodings))
	for k, v := range c.encodings {
		out = append(out, isa.Entry{Mnemonic: k.mnemonic, Mode: k.mode, Encoding: v})
	}
	return out
}

// Narrow implements the §4.1 zero-page substitution rule: Absolute(X/Y)
// narrows to ZeroPage(X/Y) when value fits in 0..0xFF and the mnemonic has
// a zero-page variant.
func (c *Catalog) Narrow(mnemonic string, mode isa.AddressingMode, value int64) (isa.AddressingMode, bool) {
	if value < 0 || value > 0xFF {
		return mode, false
	}
	m := strings.ToLower(mnemonic)
	var narrow isa.AddressingMode
	switch mode {
	case Absolute:
		narrow = ZeroPage
	case AbsoluteX:
		narrow = ZeroPageX
	case AbsoluteY:
		narrow = ZeroPageY
	default:
		return mode, false
	}
	if _, ok := c.encodings[key{m, narrow}]; ok {
		return narrow, true
	}
	return mode, false
}

func (c *Catalog) Endianness() isa.Endianness { return isa.LittleEndian }

// HintNames is the generic-hint-string table shared by every 6502-family
// target (mos6507, r65c02, huc6280, wdc65816 all reuse it, adding their
// own extra entries where their mode set grows).
var HintNames = map[string]isa.AddressingMode{
	"implied":          Implied,
	"accumulator":      Accumulator,
	"immediate":        Immediate,
	"zeropage":         ZeroPage,
	"zeropagex":        ZeroPageX,
	"zeropagey":        ZeroPageY,
	"absolute":         Absolute,
	"absolutex":        AbsoluteX,
	"absolutey":        AbsoluteY,
	"indirect":         Indirect,
	"indexedindirect":  IndexedIndirect,
	"indirectindexed":  IndirectIndexed,
	"relative":         Relative,
}

func init() {
	isa.Register(isa.MOS6502, NewCatalog())
	isa.RegisterModeNames(isa.MOS6502, HintNames)
}
