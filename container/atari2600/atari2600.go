// Package atari2600 validates and finalizes a raw 2 KiB/4 KiB Atari 2600
// cartridge image (spec §4.4). No pack example targets the 2600; built
// directly from spec.md's byte-exact description (see DESIGN.md).
package atari2600

import "fmt"

// BankSwitch names the cartridge's bank-switching method. It only
// constrains valid ROM sizes; it never alters the image bytes (spec
// §4.4).
type BankSwitch int

const (
	BankNone BankSwitch = iota
	BankF8
	BankF6
	BankF4
	BankFE
	BankE0
	Bank3F
	BankE7
)

var validSizes = map[BankSwitch][]int{
	BankNone: {2048, 4096},
	BankF8:   {8192},
	BankF6:   {16384},
	BankF4:   {32768},
	BankFE:   {8192},
	BankE0:   {8192},
	Bank3F:   {8192, 16384, 32768, 65536},
	BankE7:   {16384},
}

// Config holds the Atari 2600 container fields spec §6 names.
type Config struct {
	Bank BankSwitch
	// ResetVector, if nonzero, overrides the default reset vector the
	// generator's code origin would otherwise supply.
	ResetVector uint16
	CodeOrigin  uint16
}

// Build validates image's size against bank and patches the reset vector
// at ROM_SIZE-4..-3: a nonzero cfg.ResetVector always wins; otherwise a
// nonzero vector already in image is kept, and a zero one is replaced by
// cfg.CodeOrigin.
func Build(image []byte, cfg Config) ([]byte, error) {
	sizes, ok := validSizes[cfg.Bank]
	if !ok {
		return nil, fmt.Errorf("atari2600: unknown bank-switch method %v", cfg.Bank)
	}
	valid := false
	for _, s := range sizes {
		if len(image) == s {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("atari2600: image size %d incompatible with bank-switch method %v (want one of %v)", len(image), cfg.Bank, sizes)
	}

	rom := make([]byte, len(image))
	copy(rom, image)

	vecOff := len(rom) - 4
	existing := uint16(rom[vecOff]) | uint16(rom[vecOff+1])<<8
	vector := cfg.ResetVector
	if vector == 0 && existing == 0 {
		vector = cfg.CodeOrigin
	} else if vector == 0 {
		vector = existing
	}
	rom[vecOff] = byte(vector)
	rom[vecOff+1] = byte(vector >> 8)

	return rom, nil
}
