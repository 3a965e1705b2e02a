// Package arm7tdmi catalogs the ARM7TDMI in its 32-bit ARM instruction
// mode (§4.1; Thumb mode is a Non-goal per spec). Every ARM instruction is
// a fixed 4-byte little-endian word (§4.1, §8 scenario 4), condition code
// included, so unlike the variable-width targets this catalog's Size is
// always 4 and Opcode carries a 32-bit instruction template with the
// condition field pre-set to AL (0xE) — codegen patches in a different
// condition via the mnemonic's condition suffix at the catalog-key level,
// the same folding convention isa/z80 and isa/m68000 use for register
// operands. Grounded on the bit-field and instruction-template style of
// _examples/other_examples/b55e6ddd_lookbusy1344-arm_emulator__vm-constants.go.go
// and .../bbfb9ee4_..._encoder-constants.go.go.
package arm7tdmi

import (
	"strings"

	"github.com/chriskillpack/retroasm/isa"
)

const (
	RegDirect isa.AddressingMode = iota
	Immediate
	RegIndirect
	RegIndirectOffset
	RegIndirectOffsetPre
	Branch
	Implied
)

var conditions = map[string]uint32{
	"eq": 0x0, "ne": 0x1, "cs": 0x2, "cc": 0x3,
	"mi": 0x4, "pl": 0x5, "vs": 0x6, "vc": 0x7,
	"hi": 0x8, "ls": 0x9, "ge": 0xA, "lt": 0xB,
	"gt": 0xC, "le": 0xD, "al": 0xE,
}

type key struct {
	mnemonic string
	mode     isa.AddressingMode
}

// Catalog is the ARM7TDMI instruction-set catalog.
type Catalog struct {
	encodings map[key]isa.Encoding
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func add(c *Catalog, mnemonic string, mode isa.AddressingMode, template uint32) {
	c.encodings[key{mnemonic, mode}] = isa.Encoding{Opcode: le32(template), Size: 4}
}

// withConditions registers mnemonic and mnemonic+cc for every ARM
// condition code, each with the condition field (bits 31-28) patched in.
func withConditions(c *Catalog, mnemonic string, mode isa.AddressingMode, template uint32) {
	add(c, mnemonic, mode, template|(0xE<<28))
	for cc, bits := range conditions {
		add(c, mnemonic+cc, mode, (template&0x0FFFFFFF)|(bits<<28))
	}
}

// dp returns a data-processing instruction template with the opcode field
// (bits 21-24), Rn and Rd filled in; the I-bit and S-bit are left to the
// caller.
func dp(opcode uint32, rd, rn uint32) uint32 {
	return 0x00000000 | opcode<<21 | rn<<16 | rd<<12
}

func newBase() *Catalog {
	c := &Catalog{encodings: make(map[key]isa.Encoding)}

	dpOps := map[string]uint32{
		"and": 0x0, "eor": 0x1, "sub": 0x2, "rsb": 0x3,
		"add": 0x4, "adc": 0x5, "sbc": 0x6, "rsc": 0x7,
		"tst": 0x8, "teq": 0x9, "cmp": 0xA, "cmn": 0xB,
		"orr": 0xC, "mov": 0xD, "bic": 0xE, "mvn": 0xF,
	}
	for name, op := range dpOps {
		// Register form: cond 00 0 opcode S Rn Rd 00000000 Rm
		withConditions(c, name, RegDirect, dp(op, 0, 0))
		// Immediate form: cond 00 1 opcode S Rn Rd rotate imm8; I-bit set.
		withConditions(c, name, Immediate, dp(op, 0, 0)|(1<<25))
	}

	// Branch / branch-with-link: cond 101 L offset24.
	withConditions(c, "b", Branch, 0x0A000000)
	withConditions(c, "bl", Branch, 0x0B000000)
	withConditions(c, "bx", RegDirect, 0x012FFF10)

	// Single data transfer: cond 01 I P U B W L Rn Rd offset12.
	// Load/store word, pre-indexed immediate offset, up, word, writeback off.
	withConditions(c, "ldr", RegIndirectOffset, 0x05900000)
	withConditions(c, "str", RegIndirectOffset, 0x05800000)
	withConditions(c, "ldrb", RegIndirectOffset, 0x05D00000)
	withConditions(c, "strb", RegIndirectOffset, 0x05C00000)
	withConditions(c, "ldr", RegIndirect, 0x05900000)
	withConditions(c, "str", RegIndirect, 0x05800000)

	// Block transfer: cond 100 P U S W L Rn register_list.
	withConditions(c, "push", Implied, 0x092D0000)
	withConditions(c, "pop", Implied, 0x08BD0000)

	withConditions(c, "nop", Implied, 0x01A00000) // mov r0, r0
	withConditions(c, "swi", Immediate, 0x0F000000)

	return c
}

func (c *Catalog) Lookup(mnemonic string, mode isa.AddressingMode) (isa.Encoding, bool) {
	enc, ok := c.encodings[key{strings.ToLower(mnemonic), mode}]
	return enc, ok
}

func (c *Catalog) IsBranch(mnemonic string) bool {
	m := strings.ToLower(mnemonic)
	base := m
	for cc := range conditions {
		if strings.HasSuffix(m, cc) && len(m) > len(cc) {
			base = strings.TrimSuffix(m, cc)
			break
		}
	}
	return base == "b" || base == "bl"
}

// Entries implements isa.Enumerable.
func (c *Catalog) Entries() []isa.Entry {
	out := make([]isa.Entry, 0, len(c.encodings))
	for k, v := range c.encodings {
		out = append(out, isa.Entry{Mnemonic: k.mnemonic, Mode: k.mode, Encoding: v})
	}
	return out
}

// Narrow is a no-op: ARM has no narrower encoding for the same addressing
// mode, every instruction is the fixed 4-byte word.
func (c *Catalog) Narrow(mnemonic string, mode isa.AddressingMode, value int64) (isa.AddressingMode, bool) {
	return mode, false
}

func (c *Catalog) Endianness() isa.Endianness { return isa.LittleEndian }

var hintNames = map[string]isa.AddressingMode{
	"regdirect": RegDirect, "immediate": Immediate, "regindirect": RegIndirect,
	"regindirectoffset": RegIndirectOffset, "regindirectoffsetpre": RegIndirectOffsetPre,
	"branch": Branch, "implied": Implied,
}

func init() {
	isa.Register(isa.ARM7TDMI, newBase())
	isa.RegisterModeNames(isa.ARM7TDMI, hintNames)
}
