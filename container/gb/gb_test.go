package gb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskillpack/retroasm/container/common"
)

func baseConfig() Config {
	return Config{
		ROMSizeKB: 32,
		RAMSizeKB: 0,
	}
}

func TestEntryPointDefaultsTo0x150(t *testing.T) {
	rom, err := Build(make([]byte, 0), baseConfig())
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), rom[0x100])
	assert.Equal(t, byte(0xC3), rom[0x101])
	assert.Equal(t, byte(0x50), rom[0x102])
	assert.Equal(t, byte(0x01), rom[0x103])
}

func TestEntryPointOverride(t *testing.T) {
	cfg := baseConfig()
	cfg.EntryPoint = 0x200
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), rom[0x102])
	assert.Equal(t, byte(0x02), rom[0x103])
}

func TestNintendoLogoPlacedAtFixedOffset(t *testing.T) {
	rom, err := Build(make([]byte, 0), baseConfig())
	require.NoError(t, err)
	assert.Equal(t, NintendoLogo[:], rom[0x104:0x134])
}

func TestHeaderChecksumFormula(t *testing.T) {
	rom, err := Build(make([]byte, 0), baseConfig())
	require.NoError(t, err)

	var x int
	for i := 0x134; i <= 0x14C; i++ {
		x -= int(rom[i]) + 1
	}
	assert.Equal(t, byte(x&0xFF), rom[0x14D])
	// All-zero header window (empty title, zeroed metadata) is documented
	// to land on 0xE7.
	assert.Equal(t, byte(0xE7), rom[0x14D])
}

func TestGlobalChecksumMatchesFullSumExcludingItsOwnBytes(t *testing.T) {
	rom, err := Build(make([]byte, 0), baseConfig())
	require.NoError(t, err)

	var sum uint16
	for i, b := range rom {
		if i == 0x14E || i == 0x14F {
			continue
		}
		sum += uint16(b)
	}
	got := uint16(rom[0x14E])<<8 | uint16(rom[0x14F])
	assert.Equal(t, sum, got)
}

func TestTitleTruncatedTo15BytesWhenCGBFlagSet(t *testing.T) {
	cfg := baseConfig()
	cfg.CGBFlag = 0xC0
	cfg.Title = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)

	assert.Equal(t, []byte("ABCDEFGHIJKLMNO"), rom[0x134:0x134+15])
	assert.Equal(t, byte(0xC0), rom[0x143])
}

func TestSGBFlagSetsIndicatorByte(t *testing.T) {
	cfg := baseConfig()
	cfg.SGBFlag = true
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(0x03), rom[0x146])
}

func TestOldLicenseeRoutesToNewLicenseeWhenUnset(t *testing.T) {
	cfg := baseConfig()
	cfg.NewLicensee = [2]byte{'0', '1'}
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(0x33), rom[0x14B])
	assert.Equal(t, []byte{'0', '1'}, rom[0x144:0x146])
}

func TestOldLicenseeExplicitValuePreserved(t *testing.T) {
	cfg := baseConfig()
	cfg.NewLicensee = [2]byte{'0', '1'}
	cfg.OldLicensee = 0x01
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), rom[0x14B])
}

func TestUnsupportedRAMSizeErrors(t *testing.T) {
	cfg := baseConfig()
	cfg.RAMSizeKB = 999
	_, err := Build(make([]byte, 0), cfg)
	assert.Error(t, err)
}

func TestROMPaddedToAtLeast32KiB(t *testing.T) {
	rom, err := Build(make([]byte, 0), baseConfig())
	require.NoError(t, err)
	assert.Equal(t, 32*1024, len(rom))
}

func TestROMSizeCodeDoubling(t *testing.T) {
	cfg := baseConfig()
	cfg.ROMSizeKB = 128
	rom, err := Build(make([]byte, 0), cfg)
	require.NoError(t, err)
	assert.Equal(t, common.NextPowerOfTwo(128*1024), len(rom))
	// 32KB << code >= 128KB => code 2 (32*4=128)
	assert.Equal(t, byte(2), rom[0x148])
}
