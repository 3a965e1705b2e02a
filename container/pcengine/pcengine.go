// Package pcengine finalizes a raw TurboGrafx-16/PC Engine HuCard image:
// pads it to a valid power-of-two size and writes the six trailing vector
// words (spec §4.4). No pack example targets this platform; built
// directly from spec.md's byte-exact description (see DESIGN.md).
package pcengine

import (
	"fmt"

	"github.com/chriskillpack/retroasm/container/common"
)

// Vectors names the six trailing vector slots in their fixed order.
type Vectors struct {
	IRQ2BRK uint16
	IRQ1    uint16
	Timer   uint16
	Unused  uint16
	NMI     uint16
	RESET   uint16
}

// Build pads image to a power-of-two size in [8 KiB, 1 MiB] and writes
// the 12-byte vector table as its final bytes.
func Build(image []byte, v Vectors) ([]byte, error) {
	total := common.NextPowerOfTwo(len(image))
	if total < 8*1024 {
		total = 8 * 1024
	}
	if total > 1024*1024 {
		return nil, fmt.Errorf("pcengine: image too large for an 8KiB-1MiB HuCard (%d bytes)", len(image))
	}

	rom := common.PadTo(image, total, 0)
	tail := rom[total-12:]
	words := []uint16{v.IRQ2BRK, v.IRQ1, v.Timer, v.Unused, v.NMI, v.RESET}
	for i, w := range words {
		common.PutLE16(tail[i*2:], uint64(w))
	}
	return rom, nil
}
