// Package mos6507 catalogs the Atari 2600's CPU, a pin-starved 6502 with an
// identical instruction set (spec §2's ISC family list groups it with
// mos6502). This is a thin wrapper, not a copy: it reuses
// isa/mos6502.Catalog unchanged.
package mos6507

import (
	"github.com/chriskillpack/retroasm/isa"
	"github.com/chriskillpack/retroasm/isa/mos6502"
)

func init() {
	isa.Register(isa.MOS6507, mos6502.NewCatalog())
	isa.RegisterModeNames(isa.MOS6507, mos6502.HintNames)
}
