package wonderswan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooterFieldsRoundTrip(t *testing.T) {
	cfg := Config{Publisher: 0x01, Mode: Color, GameID: 0x02, Revision: 0x03, SaveType: 0x04, Flags: 0x05, RTC: true}
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)

	footer := rom[len(rom)-10:]
	assert.Equal(t, byte(0x01), footer[0])
	assert.Equal(t, byte(1), footer[1])
	assert.Equal(t, byte(0x02), footer[2])
	assert.Equal(t, byte(0x03), footer[3])
	assert.Equal(t, byte(0x04), footer[5])
	assert.Equal(t, byte(0x05), footer[6])
	assert.Equal(t, byte(1), footer[7])
}

func TestChecksumSumsEverythingExceptItsOwnTwoBytes(t *testing.T) {
	rom, err := Build(make([]byte, 200), Config{Publisher: 0x07})
	require.NoError(t, err)

	var sum uint64
	for _, b := range rom[:len(rom)-2] {
		sum += uint64(b)
	}
	got := uint64(rom[len(rom)-2]) | uint64(rom[len(rom)-1])<<8
	assert.Equal(t, sum&0xFFFF, got)
}

func TestROMSizeCodeRejectsNonStandardSize(t *testing.T) {
	_, err := romSizeCode(100)
	assert.Error(t, err)
}

func TestROMSizeCodeAcceptsStandardSizes(t *testing.T) {
	code, err := romSizeCode(128)
	require.NoError(t, err)
	assert.Equal(t, byte(0), code)

	code, err = romSizeCode(16384)
	require.NoError(t, err)
	assert.Equal(t, byte(len(validSizesKB)-1), code)
}

func TestROMPaddedToSmallestValidSize(t *testing.T) {
	rom, err := Build(make([]byte, 100*1024), Config{})
	require.NoError(t, err)
	// 100KB image + 10 byte footer fits within the next valid size (128KB).
	assert.Equal(t, 128*1024, len(rom))
}
