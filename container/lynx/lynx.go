// Package lynx builds the 64-byte Atari Lynx (LNX) header (spec §4.4). No
// pack example targets the Lynx; built directly from spec.md's
// byte-exact field table (see DESIGN.md). Resolves spec.md §9's open
// question about SetStartAddress: the builder stores the configured
// start address and Build uses it (through romOffset) to decide the
// ROM-offset-vs-raw-offset split, rather than leaving the setter a no-op.
package lynx

import "github.com/chriskillpack/retroasm/container/common"

type Rotation byte

const (
	RotationNone Rotation = iota
	RotationLeft
	RotationRight
)

// Config holds the Lynx header fields spec §6 names.
type Config struct {
	Bank0Pages int
	Bank1Pages int
	Version    uint16
	Name       string
	Maker      string
	Rotation   Rotation
}

// Builder accumulates Lynx header configuration. StartAddress defaults to
// 0, meaning "treat segment addresses as raw ROM offsets."
type Builder struct {
	cfg          Config
	startAddress uint16
	hasStart     bool
}

// NewBuilder returns a Builder seeded with cfg.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// SetStartAddress records the CPU load address (spec.md's $0200
// convention): a user segment at CPU address A >= $0200 lands at ROM
// offset A-$0200; below $0200 it is a raw ROM offset. romOffset applies
// this rule once a start address is set; BuildHeader does not read it.
func (b *Builder) SetStartAddress(addr uint16) {
	b.startAddress = addr
	b.hasStart = true
}

// romOffset applies the $0200 load-address convention to addr.
func (b *Builder) romOffset(addr uint16) int {
	if b.hasStart && addr >= 0x0200 {
		return int(addr - 0x0200)
	}
	return int(addr)
}

// BuildHeader returns the 64-byte LNX header.
func (b *Builder) BuildHeader() []byte {
	h := make([]byte, 64)
	copy(h[0:4], []byte("LYNX"))
	common.PutLE16(h[4:6], uint64(b.cfg.Bank0Pages))
	common.PutLE16(h[6:8], uint64(b.cfg.Bank1Pages))
	common.PutLE16(h[8:10], uint64(b.cfg.Version))
	copy(h[10:42], common.ASCIIPad(b.cfg.Name, 32, 0))
	copy(h[42:58], common.ASCIIPad(b.cfg.Maker, 16, 0))
	h[58] = byte(b.cfg.Rotation)
	for i := 59; i < 64; i++ {
		h[i] = 0
	}
	return h
}

// Build places image at the offset b.romOffset(loadAddress) implies and
// prepends the header.
func (b *Builder) Build(image []byte, loadAddress uint16) []byte {
	b.SetStartAddress(loadAddress)
	offset := b.romOffset(loadAddress)

	body := make([]byte, offset+len(image))
	copy(body[offset:], image)

	out := make([]byte, 0, 64+len(body))
	out = append(out, b.BuildHeader()...)
	out = append(out, body...)
	return out
}
