package atari2600

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSizeAcceptedForBankNone(t *testing.T) {
	_, err := Build(make([]byte, 2048), Config{Bank: BankNone})
	assert.NoError(t, err)

	_, err = Build(make([]byte, 4096), Config{Bank: BankNone})
	assert.NoError(t, err)
}

func TestInvalidSizeRejectedForBank(t *testing.T) {
	_, err := Build(make([]byte, 1024), Config{Bank: BankNone})
	assert.Error(t, err)

	_, err = Build(make([]byte, 4096), Config{Bank: BankF8})
	assert.Error(t, err)
}

func TestUnknownBankSwitchMethodErrors(t *testing.T) {
	_, err := Build(make([]byte, 2048), Config{Bank: BankSwitch(999)})
	assert.Error(t, err)
}

func TestResetVectorOverridesExistingZero(t *testing.T) {
	image := make([]byte, 2048)
	rom, err := Build(image, Config{Bank: BankNone, CodeOrigin: 0xF000})
	require.NoError(t, err)
	got := uint16(rom[len(rom)-4]) | uint16(rom[len(rom)-3])<<8
	assert.Equal(t, uint16(0xF000), got)
}

func TestExplicitResetVectorTakesPriority(t *testing.T) {
	image := make([]byte, 2048)
	image[len(image)-4] = 0x34
	image[len(image)-3] = 0x12
	rom, err := Build(image, Config{Bank: BankNone, ResetVector: 0xABCD, CodeOrigin: 0xF000})
	require.NoError(t, err)
	got := uint16(rom[len(rom)-4]) | uint16(rom[len(rom)-3])<<8
	assert.Equal(t, uint16(0xABCD), got)
}

func TestExistingNonZeroVectorPreservedWhenNoOverride(t *testing.T) {
	image := make([]byte, 2048)
	image[len(image)-4] = 0x34
	image[len(image)-3] = 0x12
	rom, err := Build(image, Config{Bank: BankNone, CodeOrigin: 0xF000})
	require.NoError(t, err)
	got := uint16(rom[len(rom)-4]) | uint16(rom[len(rom)-3])<<8
	assert.Equal(t, uint16(0x1234), got)
}

func TestBank3FAcceptsMultipleSizes(t *testing.T) {
	for _, sz := range []int{8192, 16384, 32768, 65536} {
		_, err := Build(make([]byte, sz), Config{Bank: Bank3F})
		assert.NoError(t, err)
	}
}
