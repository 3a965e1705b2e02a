package gba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryBranchWordEncodesARMBranch(t *testing.T) {
	rom, err := Build(make([]byte, 0), Config{EntryTarget: 0xC0})
	require.NoError(t, err)

	offset := int32(0xC0) - 8
	imm24 := uint32(offset/4) & 0x00FFFFFF
	want := uint32(0xEA000000) | imm24
	got := uint32(rom[0]) | uint32(rom[1])<<8 | uint32(rom[2])<<16 | uint32(rom[3])<<24
	assert.Equal(t, want, got)
}

func TestLogoPlacedAtFixedOffset(t *testing.T) {
	rom, err := Build(make([]byte, 0), Config{})
	require.NoError(t, err)
	assert.Equal(t, NintendoLogo[:], rom[4:0xA0])
}

func TestFixedValidationByteIs0x96(t *testing.T) {
	rom, err := Build(make([]byte, 0), Config{})
	require.NoError(t, err)
	assert.Equal(t, byte(0x96), rom[0xB2])
}

func TestTitleGameCodeMakerCodeFieldsRoundTrip(t *testing.T) {
	cfg := Config{
		Title:     "MYGAME",
		GameCode:  [4]byte{'A', 'B', 'C', 'D'},
		MakerCode: [2]byte{'0', '1'},
	}
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte("MYGAME      "), rom[0xA0:0xAC])
	assert.Equal(t, []byte{'A', 'B', 'C', 'D'}, rom[0xAC:0xB0])
	assert.Equal(t, []byte{'0', '1'}, rom[0xB0:0xB2])
}

func TestHeaderChecksumFormula(t *testing.T) {
	rom, err := Build(make([]byte, 0), Config{Title: "TESTGAME"})
	require.NoError(t, err)

	var sum int
	for i := 0xA0; i <= 0xBC; i++ {
		sum -= int(rom[i])
	}
	sum -= 0x19
	assert.Equal(t, byte(sum&0xFF), rom[0xBD])
}

func TestReservedBytesAreZero(t *testing.T) {
	rom, err := Build(make([]byte, 0), Config{})
	require.NoError(t, err)
	for i := 0xB5; i <= 0xBB; i++ {
		assert.Equal(t, byte(0), rom[i])
	}
	assert.Equal(t, byte(0), rom[0xBE])
	assert.Equal(t, byte(0), rom[0xBF])
}

func TestROMPaddedToMinimum192Bytes(t *testing.T) {
	rom, err := Build(make([]byte, 0), Config{})
	require.NoError(t, err)
	assert.True(t, len(rom) >= 0xC0)
}
