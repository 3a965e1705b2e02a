// Package z80 catalogs the Zilog Z80, the SM83's ancestor with a larger
// register file and CB/DD/ED/FD prefix bytes (§4.1). Grounded on
// _examples/other_examples/6ae36f83_retroenv-retrogolib__arch-cpu-z80-opcode.go.go
// and .../ae75e9d1_..._z80-instruction.go.go for the prefix-byte and
// condition-code handling; the (mnemonic,mode) keying follows the same
// destination-folded-into-mnemonic convention as isa/sm83 (see its doc
// comment and DESIGN.md decision 2).
package z80

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
	RegBC
	RegDE
	RegHLPair
	RegSP
	RegAF
	RegAFAlt
	RegIX
	RegIY
	IndBC
	IndDE
	Immediate8
	Immediate16
	Extended
	Relative
	Bit
	Restart
	Condition
	IndC
)

type key struct {
	mnemonic string
	mode     isa.AddressingMode
}

// Catalog is the Z80 instruction-set catalog.
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
	add(c, "halt", Implied, []byte{0x76}, 1)
	add(c, "di", Implied, []byte{0xF3}, 1)
	add(c, "ei", Implied, []byte{0xFB}, 1)
	add(c, "exx", Implied, []byte{0xD9}, 1)
	add(c, "ex.afaf", Implied, []byte{0x08}, 1)
	add(c, "ex.dehl", Implied, []byte{0xEB}, 1)

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
	add(c, "ld.ix", Immediate16, []byte{0xDD, 0x21}, 4)
	add(c, "ld.iy", Immediate16, []byte{0xFD, 0x21}, 4)

	add(c, "ld.a", IndBC, []byte{0x0A}, 1)
	add(c, "ld.a", IndDE, []byte{0x1A}, 1)
	add(c, "ld.bc", RegA, []byte{0x02}, 1)
	add(c, "ld.de", RegA, []byte{0x12}, 1)
	add(c, "ld.mem", RegA, []byte{0x32}, 3) // ld (nn),a
	add(c, "ld.a", Extended, []byte{0x3A}, 3)
	add(c, "ld.mem16", RegHLPair, []byte{0x22}, 3) // ld (nn),hl
	add(c, "ld.hl", Extended, []byte{0x2A}, 3)

	add(c, "push", RegBC, []byte{0xC5}, 1)
	add(c, "push", RegDE, []byte{0xD5}, 1)
	add(c, "push", RegHLPair, []byte{0xE5}, 1)
	add(c, "push", RegAF, []byte{0xF5}, 1)
	add(c, "push", RegIX, []byte{0xDD, 0xE5}, 2)
	add(c, "push", RegIY, []byte{0xFD, 0xE5}, 2)
	add(c, "pop", RegBC, []byte{0xC1}, 1)
	add(c, "pop", RegDE, []byte{0xD1}, 1)
	add(c, "pop", RegHLPair, []byte{0xE1}, 1)
	add(c, "pop", RegAF, []byte{0xF1}, 1)
	add(c, "pop", RegIX, []byte{0xDD, 0xE1}, 2)
	add(c, "pop", RegIY, []byte{0xFD, 0xE1}, 2)

	alu := map[string]byte{"add": 0x80, "adc": 0x88, "sub": 0x90, "sbc": 0x98, "and": 0xA0, "xor": 0xA8, "or": 0xB0, "cp": 0xB8}
	aluImm := map[string]byte{"add": 0xC6, "adc": 0xCE, "sub": 0xD6, "sbc": 0xDE, "and": 0xE6, "xor": 0xEE, "or": 0xF6, "cp": 0xFE}
	for name, base := range alu {
		for mode, r := range reg8Code {
			add(c, name, mode, []byte{base + r}, 1)
		}
		add(c, name, Immediate8, []byte{aluImm[name]}, 2)
	}
	add(c, "add.hl", RegBC, []byte{0x09}, 1)
	add(c, "add.hl", RegDE, []byte{0x19}, 1)
	add(c, "add.hl", RegHLPair, []byte{0x29}, 1)
	add(c, "add.hl", RegSP, []byte{0x39}, 1)

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
	add(c, "djnz", Relative, []byte{0x10}, 2)
	add(c, "call", Extended, []byte{0xCD}, 3)
	add(c, "ret", Implied, []byte{0xC9}, 1)
	add(c, "reti", Implied, []byte{0xED, 0x4D}, 2)
	add(c, "retn", Implied, []byte{0xED, 0x45}, 2)

	conds := map[string]byte{"nz": 0, "z": 1, "nc": 2, "c": 3, "po": 4, "pe": 5, "p": 6, "m": 7}
	for cc, n := range conds {
		add(c, "jp."+cc, Condition, []byte{0xC2 + n<<3}, 3)
		add(c, "call."+cc, Condition, []byte{0xC4 + n<<3}, 3)
		add(c, "ret."+cc, Condition, []byte{0xC0 + n<<3}, 1)
	}
	jrConds := map[string]byte{"nz": 0, "z": 1, "nc": 2, "c": 3}
	for cc, n := range jrConds {
		add(c, "jr."+cc, Condition, []byte{0x20 + n<<3}, 2)
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

	// ED-prefixed block/IO instructions.
	add(c, "ldi", Implied, []byte{0xED, 0xA0}, 2)
	add(c, "ldir", Implied, []byte{0xED, 0xB0}, 2)
	add(c, "ldd", Implied, []byte{0xED, 0xA8}, 2)
	add(c, "lddr", Implied, []byte{0xED, 0xB8}, 2)
	add(c, "cpi", Implied, []byte{0xED, 0xA1}, 2)
	add(c, "cpir", Implied, []byte{0xED, 0xB1}, 2)
	add(c, "neg", Implied, []byte{0xED, 0x44}, 2)
	add(c, "im0", Implied, []byte{0xED, 0x46}, 2)
	add(c, "im1", Implied, []byte{0xED, 0x56}, 2)
	add(c, "im2", Implied, []byte{0xED, 0x5E}, 2)

	for mode, r := range reg8Code {
		add(c, "rlc", mode, []byte{0xCB, 0x00 + r}, 2)
		add(c, "rrc", mode, []byte{0xCB, 0x08 + r}, 2)
		add(c, "rl", mode, []byte{0xCB, 0x10 + r}, 2)
		add(c, "rr", mode, []byte{0xCB, 0x18 + r}, 2)
		add(c, "sla", mode, []byte{0xCB, 0x20 + r}, 2)
		add(c, "sra", mode, []byte{0xCB, 0x28 + r}, 2)
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

	add(c, "in.a", IndC, []byte{0xDB}, 2)
	add(c, "out.c", RegA, []byte{0xD3}, 2)

	return c
}

func (c *Catalog) Lookup(mnemonic string, mode isa.AddressingMode) (isa.Encoding, bool) {
	enc, ok := c.encodings[key{strings.ToLower(mnemonic), mode}]
	return enc, ok
}

func (c *Catalog) IsBranch(mnemonic string) bool {
	m := strings.ToLower(mnemonic)
	return m == "jr" || strings.HasPrefix(m, "jr.") || m == "djnz"
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

func (c *Catalog) Endianness() isa.Endianness { return isa.LittleEndian }

var hintNames = map[string]isa.AddressingMode{
	"implied": Implied, "a": RegA, "b": RegB, "c": RegC, "d": RegD, "e": RegE,
	"h": RegH, "l": RegL, "indhl": IndHL, "bc": RegBC, "de": RegDE, "hl": RegHLPair,
	"sp": RegSP, "af": RegAF, "afalt": RegAFAlt, "ix": RegIX, "iy": RegIY,
	"indbc": IndBC, "indde": IndDE, "immediate8": Immediate8, "immediate16": Immediate16,
	"extended": Extended, "relative": Relative, "bit": Bit, "restart": Restart,
	"condition": Condition, "indc": IndC,
}

func init() {
	isa.Register(isa.Z80, newBase())
	isa.RegisterModeNames(isa.Z80, hintNames)
}
