package pcengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskillpack/retroasm/container/common"
)

func TestVectorTableWrittenAsFinal12Bytes(t *testing.T) {
	v := Vectors{IRQ2BRK: 0x1111, IRQ1: 0x2222, Timer: 0x3333, Unused: 0x4444, NMI: 0x5555, RESET: 0x6666}
	rom, err := Build(make([]byte, 0), v)
	require.NoError(t, err)

	tail := rom[len(rom)-12:]
	want := []uint16{v.IRQ2BRK, v.IRQ1, v.Timer, v.Unused, v.NMI, v.RESET}
	for i, w := range want {
		got := uint16(tail[i*2]) | uint16(tail[i*2+1])<<8
		assert.Equal(t, w, got)
	}
}

func TestROMPaddedToAtLeast8KiB(t *testing.T) {
	rom, err := Build(make([]byte, 0), Vectors{})
	require.NoError(t, err)
	assert.Equal(t, 8*1024, len(rom))
}

func TestROMRoundsUpToPowerOfTwo(t *testing.T) {
	rom, err := Build(make([]byte, 9*1024), Vectors{})
	require.NoError(t, err)
	assert.Equal(t, common.NextPowerOfTwo(9*1024), len(rom))
}

func TestImageLargerThan1MiBErrors(t *testing.T) {
	_, err := Build(make([]byte, 2*1024*1024), Vectors{})
	assert.Error(t, err)
}
