package r65c02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskillpack/retroasm/isa"
)

func TestRegistersWithZeroPageIndirectMode(t *testing.T) {
	cat, ok := isa.Registry[isa.R65C02]
	require.True(t, ok)

	enc, ok := cat.Lookup("lda", ZeroPageIndirect)
	assert.True(t, ok)
	assert.Equal(t, []byte{0xB2}, enc.Opcode)
}

func TestInheritsBaseTable(t *testing.T) {
	cat := isa.Registry[isa.R65C02]
	enc, ok := cat.Lookup("lda", 2 /* mos6502.Immediate */)
	assert.True(t, ok)
	assert.Equal(t, []byte{0xA9}, enc.Opcode)
}

func TestBneAndBraAreBranches(t *testing.T) {
	cat := isa.Registry[isa.R65C02]
	assert.True(t, cat.IsBranch("bne"))
	assert.True(t, cat.IsBranch("bra"))
}

func TestHintNamesIncludesNewMode(t *testing.T) {
	mode, ok := isa.ResolveMode(isa.R65C02, "zeropageindirect")
	assert.True(t, ok)
	assert.Equal(t, ZeroPageIndirect, mode)
}
