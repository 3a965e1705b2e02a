package wdc65816

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskillpack/retroasm/isa"
	"github.com/chriskillpack/retroasm/isa/mos6502"
)

// S7 - immediate mode (8-bit) and ImmediateWide (16-bit) are distinct
// catalog keys with the same opcode; neither narrows into the other.
func TestImmediateAndImmediateWideAreDistinctKeys(t *testing.T) {
	cat, ok := isa.Registry[isa.WDC65816]
	require.True(t, ok)

	narrow, ok := cat.Lookup("lda", mos6502.Immediate)
	require.True(t, ok)
	assert.Equal(t, 2, narrow.Size)

	wide, ok := cat.Lookup("lda", ImmediateWide)
	require.True(t, ok)
	assert.Equal(t, 3, wide.Size)

	assert.Equal(t, narrow.Opcode, wide.Opcode)
}

func TestAbsoluteLongEncoding(t *testing.T) {
	cat := isa.Registry[isa.WDC65816]
	enc, ok := cat.Lookup("adc", AbsoluteLong)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x6F}, enc.Opcode)
	assert.Equal(t, 4, enc.Size)
}

func TestBraIsBranch(t *testing.T) {
	cat := isa.Registry[isa.WDC65816]
	assert.True(t, cat.IsBranch("bra"))
}
