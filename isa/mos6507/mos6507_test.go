package mos6507

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskillpack/retroasm/isa"
)

func TestRegistersIdenticalTableToMOS6502(t *testing.T) {
	cat, ok := isa.Registry[isa.MOS6507]
	require.True(t, ok)

	enc, ok := cat.Lookup("lda", 2 /* mos6502.Immediate */)
	assert.True(t, ok)
	assert.Equal(t, []byte{0xA9}, enc.Opcode)
	assert.Equal(t, isa.LittleEndian, cat.Endianness())
}
