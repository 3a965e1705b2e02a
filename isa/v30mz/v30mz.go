// Package v30mz catalogs the NEC V30MZ, an 8086-compatible core (§4.1).
// Like the Z80/SM83 catalogs, register operands fold into the mnemonic
// and the AST's single operand expression supplies the memory/immediate
// addressing mode. Grounded on the opcode-table shape in
// _examples/other_examples/648ade99_retroenv-retrogolib__arch-cpu-x86-opcode.go.go.
package v30mz

import (
	"strings"

	"github.com/chriskillpack/retroasm/isa"
)

const (
	Implied isa.AddressingMode = iota
	RegDirect8
	RegDirect16
	Immediate8
	Immediate16
	MemDirect
	MemIndirectBX
	MemIndirectBP
	Relative8
	Far
)

type key struct {
	mnemonic string
	mode     isa.AddressingMode
}

// Catalog is the V30MZ instruction-set catalog.
type Catalog struct {
	encodings map[key]isa.Encoding
}

func add(c *Catalog, mnemonic string, mode isa.AddressingMode, opcode []byte, size int) {
	c.encodings[key{mnemonic, mode}] = isa.Encoding{Opcode: opcode, Size: size}
}

var reg16Code = map[string]byte{"ax": 0, "cx": 1, "dx": 2, "bx": 3, "sp": 4, "bp": 5, "si": 6, "di": 7}
var reg8Code = map[string]byte{"al": 0, "cl": 1, "dl": 2, "bl": 3, "ah": 4, "ch": 5, "dh": 6, "bh": 7}

func newBase() *Catalog {
	c := &Catalog{encodings: make(map[key]isa.Encoding)}

	add(c, "nop", Implied, []byte{0x90}, 1)
	add(c, "hlt", Implied, []byte{0xF4}, 1)
	add(c, "cli", Implied, []byte{0xFA}, 1)
	add(c, "sti", Implied, []byte{0xFB}, 1)
	add(c, "cld", Implied, []byte{0xFC}, 1)
	add(c, "std", Implied, []byte{0xFD}, 1)
	add(c, "ret", Implied, []byte{0xC3}, 1)
	add(c, "retf", Implied, []byte{0xCB}, 1)
	add(c, "iret", Implied, []byte{0xCF}, 1)

	for name, r := range reg16Code {
		add(c, "mov."+name, Immediate16, []byte{0xB8 + r}, 3)
		add(c, "push."+name, Implied, []byte{0x50 + r}, 1)
		add(c, "pop."+name, Implied, []byte{0x58 + r}, 1)
		add(c, "inc."+name, Implied, []byte{0x40 + r}, 1)
		add(c, "dec."+name, Implied, []byte{0x48 + r}, 1)
	}
	for name, r := range reg8Code {
		add(c, "mov."+name, Immediate8, []byte{0xB0 + r}, 2)
	}

	add(c, "push.es", Implied, []byte{0x06}, 1)
	add(c, "pop.es", Implied, []byte{0x07}, 1)
	add(c, "push.cs", Implied, []byte{0x0E}, 1)
	add(c, "push.ss", Implied, []byte{0x16}, 1)
	add(c, "pop.ss", Implied, []byte{0x17}, 1)
	add(c, "push.ds", Implied, []byte{0x1E}, 1)
	add(c, "pop.ds", Implied, []byte{0x1F}, 1)

	alu := map[string]byte{"add": 0x00, "or": 0x08, "adc": 0x10, "sbb": 0x18, "and": 0x20, "sub": 0x28, "xor": 0x30, "cmp": 0x38}
	aluImmAl := map[string]byte{"add": 0x04, "or": 0x0C, "adc": 0x14, "sbb": 0x1C, "and": 0x24, "sub": 0x2C, "xor": 0x34, "cmp": 0x3C}
	aluImmAx := map[string]byte{"add": 0x05, "or": 0x0D, "adc": 0x15, "sbb": 0x1D, "and": 0x25, "sub": 0x2D, "xor": 0x35, "cmp": 0x3D}
	for name := range alu {
		add(c, name+".al", Immediate8, []byte{aluImmAl[name]}, 2)
		add(c, name+".ax", Immediate16, []byte{aluImmAx[name]}, 3)
	}

	add(c, "jmp", Relative8, []byte{0xEB}, 2)
	add(c, "jmp", Far, []byte{0xEA}, 5)
	add(c, "call", Far, []byte{0x9A}, 5)
	add(c, "call", Relative8, []byte{0xE8}, 3)

	jcc := map[string]byte{
		"jo": 0x70, "jno": 0x71, "jb": 0x72, "jae": 0x73, "je": 0x74, "jne": 0x75,
		"jbe": 0x76, "ja": 0x77, "js": 0x78, "jns": 0x79, "jp": 0x7A, "jnp": 0x7B,
		"jl": 0x7C, "jge": 0x7D, "jle": 0x7E, "jg": 0x7F,
	}
	for name, op := range jcc {
		add(c, name, Relative8, []byte{op}, 2)
	}
	add(c, "loop", Relative8, []byte{0xE2}, 2)
	add(c, "loope", Relative8, []byte{0xE1}, 2)
	add(c, "loopne", Relative8, []byte{0xE0}, 2)
	add(c, "jcxz", Relative8, []byte{0xE3}, 2)

	add(c, "int", Immediate8, []byte{0xCD}, 2)
	add(c, "int3", Implied, []byte{0xCC}, 1)

	add(c, "mov.al", MemDirect, []byte{0xA0}, 3)
	add(c, "mov.ax", MemDirect, []byte{0xA1}, 3)

	return c
}

func (c *Catalog) Lookup(mnemonic string, mode isa.AddressingMode) (isa.Encoding, bool) {
	enc, ok := c.encodings[key{strings.ToLower(mnemonic), mode}]
	return enc, ok
}

func (c *Catalog) IsBranch(mnemonic string) bool {
	m := strings.ToLower(mnemonic)
	switch m {
	case "jmp", "jo", "jno", "jb", "jae", "je", "jne", "jbe", "ja", "js", "jns", "jp", "jnp", "jl", "jge", "jle", "jg", "loop", "loope", "loopne", "jcxz", "call":
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

func (c *Catalog) Endianness() isa.Endianness { return isa.LittleEndian }

var hintNames = map[string]isa.AddressingMode{
	"implied": Implied, "regdirect8": RegDirect8, "regdirect16": RegDirect16,
	"immediate8": Immediate8, "immediate16": Immediate16, "memdirect": MemDirect,
	"memindirectbx": MemIndirectBX, "memindirectbp": MemIndirectBP,
	"relative8": Relative8, "far": Far,
}

func init() {
	isa.Register(isa.V30MZ, newBase())
	isa.RegisterModeNames(isa.V30MZ, hintNames)
}
