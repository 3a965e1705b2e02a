// Package m68000 catalogs the Motorola 68000. Operation size is a
// ".b"/".w"/".l" mnemonic suffix (stripped by the generator per §4.2 step
// 2) and all multi-byte operands are big-endian (§4.1, §8 scenario 4).
// Like isa/z80 and isa/sm83, a destination register operand is folded into
// the mnemonic and the single AST operand expression supplies the source
// addressing mode, since ast.InstructionNode carries one operand
// expression (spec §3) — grounded on
// _examples/other_examples/cd5d54ae_Urethramancer-m68k__assembler-assembler.go.go
// (two-pass size resolution, size-suffix parsing) and
// .../44766b41_..._m68k__disassembler-disassemble.go.go (big-endian word
// emission, EA decoding).
package m68000

import (
	"strings"

	"github.com/chriskillpack/retroasm/isa"
)

const (
	DataRegDirect isa.AddressingMode = iota
	AddrRegDirect
	AddrRegInd
	AddrRegIndPostinc
	AddrRegIndPredec
	AddrRegIndDisp
	AddrRegIndIndex
	AbsShort
	AbsLong
	PcDisp
	PcIndex
	Immediate
	Implied
	Relative
	QuickImmediate
)

type key struct {
	mnemonic string
	mode     isa.AddressingMode
}

// Catalog is the M68000 instruction-set catalog.
type Catalog struct {
	encodings map[key]isa.Encoding
}

func add(c *Catalog, mnemonic string, mode isa.AddressingMode, opcode []byte, size int) {
	c.encodings[key{mnemonic, mode}] = isa.Encoding{Opcode: opcode, Size: size}
}

// dn returns the opcode word's register field value for data register n
// (0-7), shifted into place.
func dn(base uint16, reg, shift uint) uint16 { return base | uint16(reg)<<shift }

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func newBase() *Catalog {
	c := &Catalog{encodings: make(map[key]isa.Encoding)}

	add(c, "nop", Implied, be16(0x4E71), 2)
	add(c, "rts", Implied, be16(0x4E75), 2)
	add(c, "rte", Implied, be16(0x4E73), 2)
	add(c, "trapv", Implied, be16(0x4E76), 2)
	add(c, "illegal", Implied, be16(0x4AFC), 2)

	for n := uint(0); n < 8; n++ {
		suffix := string(rune('0' + n))
		add(c, "moveq.l:d"+suffix, QuickImmediate, be16(dn(0x7000, n, 9)), 2)
		add(c, "clr.b:d"+suffix, Implied, be16(dn(0x4200, n, 0)), 2)
		add(c, "clr.w:d"+suffix, Implied, be16(dn(0x4240, n, 0)), 2)
		add(c, "clr.l:d"+suffix, Implied, be16(dn(0x4280, n, 0)), 2)
		add(c, "not.l:d"+suffix, Implied, be16(dn(0x4680, n, 0)), 2)
		add(c, "neg.l:d"+suffix, Implied, be16(dn(0x4480, n, 0)), 2)
		add(c, "tst.l:d"+suffix, Implied, be16(dn(0x4A80, n, 0)), 2)

		add(c, "move.l:d"+suffix, DataRegDirect, be16(dn(0x2000, n, 9)), 2)
		add(c, "move.l:d"+suffix, Immediate, be16(dn(0x2000, n, 9)|0x3C), 6)
		add(c, "move.w:d"+suffix, Immediate, be16(dn(0x3000, n, 9)|0x3C), 4)
		add(c, "move.b:d"+suffix, Immediate, be16(dn(0x1000, n, 9)|0x3C), 3)

		add(c, "add.l:d"+suffix, DataRegDirect, be16(dn(0xD080, n, 9)), 2)
		add(c, "add.l:d"+suffix, Immediate, be16(dn(0x0680, n, 0)), 6)
		add(c, "sub.l:d"+suffix, DataRegDirect, be16(dn(0x9080, n, 9)), 2)
		add(c, "sub.l:d"+suffix, Immediate, be16(dn(0x0480, n, 0)), 6)
		add(c, "and.l:d"+suffix, DataRegDirect, be16(dn(0xC080, n, 9)), 2)
		add(c, "or.l:d"+suffix, DataRegDirect, be16(dn(0x8080, n, 9)), 2)
		add(c, "eor.l:d"+suffix, DataRegDirect, be16(dn(0xB180, n, 9)), 2)
		add(c, "cmp.l:d"+suffix, DataRegDirect, be16(dn(0xB080, n, 9)), 2)
		add(c, "cmp.l:d"+suffix, Immediate, be16(dn(0x0C80, n, 0)), 6)

		add(c, "addq.l:d"+suffix, QuickImmediate, be16(dn(0x5080, n, 0)), 2)
		add(c, "subq.l:d"+suffix, QuickImmediate, be16(dn(0x5180, n, 0)), 2)

		add(c, "lea:a"+suffix, AbsLong, be16(dn(0x41F9, n, 9)), 6)
		add(c, "lea:a"+suffix, AddrRegInd, be16(dn(0x41D0, n, 9)), 2)
		add(c, "move.l:a"+suffix, DataRegDirect, be16(dn(0x2040, n, 9)), 2)
		add(c, "movea.l:a"+suffix, Immediate, be16(dn(0x207C, n, 9)), 6)

		add(c, "jmp:a"+suffix, AddrRegInd, be16(0x4ED0|uint16(n)), 2)
		add(c, "jsr:a"+suffix, AddrRegInd, be16(0x4E90|uint16(n)), 2)
	}

	add(c, "jmp", AbsLong, be16(0x4EF9), 6)
	add(c, "jsr", AbsLong, be16(0x4EB9), 6)

	// Branch mnemonics carry an 8-bit displacement in the low byte of
	// the opcode word when it fits, else a following 16-bit word; this
	// catalog always reserves the 16-bit form (4 bytes) and lets the
	// generator's branch-range check (§4.2 step 8) apply per target.
	branches := map[string]uint16{
		"bra": 0x6000, "bsr": 0x6100, "bhi": 0x6200, "bls": 0x6300,
		"bcc": 0x6400, "bcs": 0x6500, "bne": 0x6600, "beq": 0x6700,
		"bvc": 0x6800, "bvs": 0x6900, "bpl": 0x6A00, "bmi": 0x6B00,
		"bge": 0x6C00, "blt": 0x6D00, "bgt": 0x6E00, "ble": 0x6F00,
	}
	for name, op := range branches {
		add(c, name, Relative, be16(op), 4)
	}

	return c
}

func (c *Catalog) Lookup(mnemonic string, mode isa.AddressingMode) (isa.Encoding, bool) {
	enc, ok := c.encodings[key{strings.ToLower(mnemonic), mode}]
	return enc, ok
}

func (c *Catalog) IsBranch(mnemonic string) bool {
	m := strings.ToLower(mnemonic)
	switch m {
	case "bra", "bsr", "bhi", "bls", "bcc", "bcs", "bne", "beq", "bvc", "bvs", "bpl", "bmi", "bge", "blt", "bgt", "ble":
		return true
	}
	return false
}

// Entries implements isa.Enumerable.
func (c *Catalog) Entries() []isa.Entry {
	out := make([]isa.Entry, 0, len(c.encodings))
	for k, v := range c.encodings {
		out = append(out, isa.Entry{Mnemonic: k.mnemonic, Mode: k.mode, Encoding: v})
	}
	return out
}

func (c *Catalog) Narrow(mnemonic string, mode isa.AddressingMode, value int64) (isa.AddressingMode, bool) {
	return mode, false
}

func (c *Catalog) Endianness() isa.Endianness { return isa.BigEndian }

var hintNames = map[string]isa.AddressingMode{
	"dataregdirect": DataRegDirect, "addregdirect": AddrRegDirect,
	"addregind": AddrRegInd, "addregindpostinc": AddrRegIndPostinc,
	"addregindpredec": AddrRegIndPredec, "addreginddisp": AddrRegIndDisp,
	"addregindindex": AddrRegIndIndex, "absshort": AbsShort, "abslong": AbsLong,
	"pcdisp": PcDisp, "pcindex": PcIndex, "immediate": Immediate,
	"implied": Implied, "relative": Relative, "quickimmediate": QuickImmediate,
}

func init() {
	isa.Register(isa.M68000, newBase())
	isa.RegisterModeNames(isa.M68000, hintNames)
}
