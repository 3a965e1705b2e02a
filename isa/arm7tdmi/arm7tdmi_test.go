package arm7tdmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskillpack/retroasm/isa"
)

func TestEveryEncodingIsFourBytesLittleEndian(t *testing.T) {
	cat, ok := isa.Registry[isa.ARM7TDMI]
	require.True(t, ok)

	enc, ok := cat.Lookup("mov", RegDirect)
	assert.True(t, ok)
	assert.Len(t, enc.Opcode, 4)
	assert.Equal(t, 4, enc.Size)
	assert.Equal(t, isa.LittleEndian, cat.Endianness())
}

func TestConditionSuffixPatchesTopNibble(t *testing.T) {
	cat := isa.Registry[isa.ARM7TDMI]

	al, ok := cat.Lookup("mov", RegDirect)
	require.True(t, ok)
	assert.Equal(t, byte(0xE0), al.Opcode[3]&0xF0)

	eq, ok := cat.Lookup("moveq", RegDirect)
	require.True(t, ok)
	assert.Equal(t, byte(0x00), eq.Opcode[3]&0xF0)
}

func TestIsBranchRecognizesConditionalForms(t *testing.T) {
	cat := isa.Registry[isa.ARM7TDMI]
	assert.True(t, cat.IsBranch("b"))
	assert.True(t, cat.IsBranch("bl"))
	assert.True(t, cat.IsBranch("bne"))
	assert.True(t, cat.IsBranch("bleq"))
	assert.False(t, cat.IsBranch("mov"))
	assert.False(t, cat.IsBranch("bx"))
}

func TestNarrowIsAlwaysANoOp(t *testing.T) {
	cat := isa.Registry[isa.ARM7TDMI]
	_, did := cat.Narrow("mov", Immediate, 5)
	assert.False(t, did)
}
