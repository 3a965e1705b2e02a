// Package sm83 catalogs the Game Boy CPU. Per spec §4.1/§9, operands are
// register-encoded (register, indirect-HL, postinc/predec) rather than a
// flat opcode table; this catalog keys on (mnemonic, AddressingMode) like
// every other target package here, deliberately not reproducing the
// fully-stringified-operand scheme spec §9 flags as an open question (see
// DESIGN.md decision 2) — an 8-bit load's destination register is folded
// into the mnemonic (e.g. "ld.a", "ld.b") and its source is the
// AddressingMode, mirroring the RegisterOpcodes disambiguation map in
// _examples/other_examples/ae75e9d1_retroenv-retrogolib__arch-cpu-z80-instruction.go.go.
package sm83

import (
	"strings"

	"github.com/chriskillpack/retroasm/isa"
)

const (
	Implied isa.AddressingMode = iota
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	IndHL
	IndHLInc
	IndHLDec
	IndBC
	IndDE
	RegBC
	RegDE
	RegHLPair
	RegSP
	RegAF
	Immediate8
	Immediate16
	Extended // 16-bit absolute address operand (ld (nn),a / ld a,(nn))
	Relative
	Bit
	Restart
	Condition
	IndC // ldh (c),a
	SPOffset
)

type key struct {
	mnemonic string
	mode     isa.AddressingMode
}

// Catalog is the SM83 instruction-set catalog.
type Catalog struct {
	encodings map[key]isa.Encoding
}

func add(c *Catalog, mnemonic string, mode isa.AddressingMode, opcode []byte, size int) {
	c.encodings[key{mnemonic, mode}] = isa.Encoding{Opcode: opcode, Size: size}
}

var reg8Code = map[isa.AddressingMode]byte{
	RegB: 0, RegC: 1, RegD: 2, RegE: 3, RegH: 4, RegL: 5, IndHL: 6, RegA: 7,
}

var reg8Name = map[isa.AddressingMode]string{
	RegB: "b", RegC: "c", RegD: "d", RegE: "e", RegH: "h", RegL: "l", IndHL: "(hl)", RegA: "a",
}

func newBase() *Catalog {
	c := &Catalog{encodings: make(map[key]isa.Encoding)}

	add(c, "nop", Implied, []byte{0x00}, 1)
	add(c, "stop", Implied, []byte{0x10, 0x00}, 2)
	add(c, "halt", Implied, []byte{0x76}, 1)
	add(c, "di", Implied, []byte{0xF3}, 1)
	add(c, "ei", Implied, []byte{0xFB}, 1)

	// ld <dst>,<src> for every 8-bit register/(hl) pair except hl,hl
	// (that encoding is "halt").
	for dstMode, dst := range reg8Code {
		mnemonic := "ld." + reg8Name[dstMode]
		for srcMode, src := range reg8Code {
			if dstMode == IndHL && srcMode == IndHL {
				continue
			}
			add(c, mnemonic, srcMode, []byte{0x40 + dst<<3 + src}, 1)
		}
		add(c, mnemonic, Immediate8, []byte{0x06 + dst<<3}, 2)
	}

	add(c, "ld.bc", Immediate16, []byte{0x01}, 3)
	add(c, "ld.de", Immediate16, []byte{0x11}, 3)
	add(c, "ld.hl", Immediate16, []byte{0x21}, 3)
	add(c, "ld.sp", Immediate16, []byte{0x31}, 3)
	add(c, "ld.sp", RegHLPair, []byte{0xF9}, 1)

	add(c, "ld.a", IndBC, []byte{0x0A}, 1)
	add(c, "ld.a", IndDE, []byte{0x1A}, 1)
	add(c, "ld.a", IndHLInc, []byte{0x2A}, 1)
	add(c, "ld.a", IndHLDec, []byte{0x3A}, 1)
	add(c, "ld.bc", RegA, []byte{0x02}, 1) // ld (bc),a: dst is memory, encode under "ld.bc" with mode RegA
	add(c, "ld.de", RegA, []byte{0x12}, 1)
	add(c, "ld.hlinc", RegA, []byte{0x22}, 1)
	add(c, "ld.hldec", RegA, []byte{0x32}, 1)

	add(c, "ld.mem", RegA, []byte{0xEA}, 3) // ld (nn),a
	add(c, "ld.a", Extended, []byte{0xFA}, 3) // ld a,(nn)
	add(c, "ldh.mem", RegA, []byte{0xE0}, 2) // ldh (n),a
	add(c, "ldh.a", Immediate8, []byte{0xF0}, 2) // ldh a,(n)
	add(c, "ldh.c", RegA, []byte{0xE2}, 1) // ldh (c),a
	add(c, "ldh.a", IndC, []byte{0xF2}, 1) // ldh a,(c)

	add(c, "push", RegBC, []byte{0xC5}, 1)
	add(c, "push", RegDE, []byte{0xD5}, 1)
	add(c, "push", RegHLPair, []byte{0xE5}, 1)
	add(c, "push", RegAF, []byte{0xF5}, 1)
	add(c, "pop", RegBC, []byte{0xC1}, 1)
	add(c, "pop", RegDE, []byte{0xD1}, 1)
	add(c, "pop", RegHLPair, []byte{0xE1}, 1)
	add(c, "pop", RegAF, []byte{0xF1}, 1)

	alu := map[string]byte{"add": 0x80, "adc": 0x88, "sub": 0x90, "sbc": 0x98, "and": 0xA0, "xor": 0xA8, "or": 0xB0, "cp": 0xB8}
	aluImm := map[string]byte{"add": 0xC6, "adc": 0xCE, "sub": 0xD6, "sbc": 0xDE, "and": 0xE6, "xor": 0xEE, "or": 0xF6, "cp": 0xFE}
	for name, base := range alu {
		for mode, r := range reg8Code {
			add(c, name, mode, []byte{base + r}, 1)
		}
		add(c, name, Immediate8, []byte{aluImm[name]}, 2)
	}

	add(c, "inc16", RegBC, []byte{0x03}, 1)
	add(c, "inc16", RegDE, []byte{0x13}, 1)
	add(c, "inc16", RegHLPair, []byte{0x23}, 1)
	add(c, "inc16", RegSP, []byte{0x33}, 1)
	add(c, "dec16", RegBC, []byte{0x0B}, 1)
	add(c, "dec16", RegDE, []byte{0x1B}, 1)
	add(c, "dec16", RegHLPair, []byte{0x2B}, 1)
	add(c, "dec16", RegSP, []byte{0x3B}, 1)
	for mode, r := range reg8Code {
		add(c, "inc", mode, []byte{0x04 + r<<3}, 1)
		add(c, "dec", mode, []byte{0x05 + r<<3}, 1)
	}

	add(c, "jp", Extended, []byte{0xC3}, 3)
	add(c, "jp", IndHL, []byte{0xE9}, 1)
	add(c, "jr", Relative, []byte{0x18}, 2)
	add(c, "call", Extended, []byte{0xCD}, 3)
	add(c, "ret", Implied, []byte{0xC9}, 1)
	add(c, "reti", Implied, []byte{0xD9}, 1)

	conds := map[string]byte{"nz": 0, "z": 1, "nc": 2, "c": 3}
	for cc, n := range conds {
		add(c, "jp."+cc, Condition, []byte{0xC2 + n<<3}, 3)
		add(c, "jr."+cc, Condition, []byte{0x20 + n<<3}, 2)
		add(c, "call."+cc, Condition, []byte{0xC4 + n<<3}, 3)
		add(c, "ret."+cc, Condition, []byte{0xC0 + n<<3}, 1)
	}

	for n := 0; n < 8; n++ {
		add(c, "rst", Restart, []byte{0xC7 + byte(n)<<3}, 1)
	}

	add(c, "rlca", Implied, []byte{0x07}, 1)
	add(c, "rrca", Implied, []byte{0x0F}, 1)
	add(c, "rla", Implied, []byte{0x17}, 1)
	add(c, "rra", Implied, []byte{0x1F}, 1)
	add(c, "cpl", Implied, []byte{0x2F}, 1)
	add(c, "scf", Implied, []byte{0x37}, 1)
	add(c, "ccf", Implied, []byte{0x3F}, 1)
	add(c, "daa", Implied, []byte{0x27}, 1)

	for mode, r := range reg8Code {
		add(c, "rlc", mode, []byte{0xCB, 0x00 + r}, 2)
		add(c, "rrc", mode, []byte{0xCB, 0x08 + r}, 2)
		add(c, "rl", mode, []byte{0xCB, 0x10 + r}, 2)
		add(c, "rr", mode, []byte{0xCB, 0x18 + r}, 2)
		add(c, "sla", mode, []byte{0xCB, 0x20 + r}, 2)
		add(c, "sra", mode, []byte{0xCB, 0x28 + r}, 2)
		add(c, "swap", mode, []byte{0xCB, 0x30 + r}, 2)
		add(c, "srl", mode, []byte{0xCB, 0x38 + r}, 2)
	}
	for bit := 0; bit < 8; bit++ {
		suffix := string(rune('0' + bit))
		for mode, r := range reg8Code {
			add(c, "bit"+suffix, mode, []byte{0xCB, 0x40 + byte(bit)<<3 + r}, 2)
			add(c, "res"+suffix, mode, []byte{0xCB, 0x80 + byte(bit)<<3 + r}, 2)
			add(c, "set"+suffix, mode, []byte{0xCB, 0xC0 + byte(bit)<<3 + r}, 2)
		}
	}

	add(c, "add.sp", SPOffset, []byte{0xE8}, 2)
	add(c, "ldhl", SPOffset, []byte{0xF8}, 2)
	add(c, "add.hl", RegBC, []byte{0x09}, 1)
	add(c, "add.hl", RegDE, []byte{0x19}, 1)
	add(c, "add.hl", RegHLPair, []byte{0x29}, 1)
	add(c, "add.hl", RegSP, []byte{0x39}, 1)

	return c
}

func (c *Catalog) Lookup(mnemonic string, mode isa.AddressingMode) (isa.Encoding, bool) {
	enc, ok := c.encodings[key{strings.ToLower(mnemonic), mode}]
	return enc, ok
}

func (c *Catalog) IsBranch(mnemonic string) bool {
	m := strings.ToLower(mnemonic)
	return m == "jr" || strings.HasPrefix(m, "jr.")
}

// Entries implements isa.Enumerable.
func (c *Catalog) Entries() []isa.Entry {
	out := make([]isa.Entry, 0, len(c.encodings))
	for k, v := range c.encodings {
		out = append(out, isa.Entry{Mnemonic: k.mnemonic, Mode: k.mode, Encoding: v})
	}
	return out
}

// Narrow is a no-op for SM83: it has no absolute/zero-page duality.
func (c *Catalog) Narrow(mnemonic string, mode isa.AddressingMode, value int64) (isa.AddressingMode, bool) {
	return mode, false
}

func (c *Catalog) Endianness() isa.Endianness { return isa.LittleEndian }

var hintNames = map[string]isa.AddressingMode{
	"implied": Implied, "a": RegA, "b": RegB, "c": RegC, "d": RegD, "e": RegE,
	"h": RegH, "l": RegL, "indhl": IndHL, "indhlinc": IndHLInc, "indhldec": IndHLDec,
	"indbc": IndBC, "indde": IndDE, "bc": RegBC, "de": RegDE, "hl": RegHLPair,
	"sp": RegSP, "af": RegAF, "immediate8": Immediate8, "immediate16": Immediate16,
	"extended": Extended, "relative": Relative, "bit": Bit, "restart": Restart,
	"condition": Condition, "indc": IndC, "spoffset": SPOffset,
}

func init() {
	isa.Register(isa.SM83, newBase())
	isa.RegisterModeNames(isa.SM83, hintNames)
}
