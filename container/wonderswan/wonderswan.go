// Package wonderswan builds the 10-byte WonderSwan ROM footer (spec
// §4.4). No pack example targets the WonderSwan; built directly from
// spec.md's byte-exact field table (see DESIGN.md).
package wonderswan

import (
	"fmt"

	"github.com/chriskillpack/retroasm/container/common"
)

var validSizesKB = []int{128, 256, 512, 1024, 2048, 4096, 8192, 16384}

// ColorMode selects mono vs. color cartridge footer encoding.
type ColorMode byte

const (
	Mono  ColorMode = 0
	Color ColorMode = 1
)

// Config holds the WonderSwan footer fields spec §6 names.
type Config struct {
	Publisher byte
	Mode      ColorMode
	GameID    byte
	Revision  byte
	ROMSizeKB int
	SaveType  byte
	Flags     byte
	RTC       bool
}

func romSizeCode(kb int) (byte, error) {
	for i, v := range validSizesKB {
		if v == kb {
			return byte(i), nil
		}
	}
	return 0, fmt.Errorf("wonderswan: ROM size %d KB is not a valid WonderSwan size", kb)
}

func smallestValidSize(n int) int {
	for _, v := range validSizesKB {
		if v*1024 >= n {
			return v * 1024
		}
	}
	return validSizesKB[len(validSizesKB)-1] * 1024
}

// Build pads image to the smallest valid WonderSwan size and appends the
// 10-byte footer with its checksum.
func Build(image []byte, cfg Config) ([]byte, error) {
	total := smallestValidSize(len(image) + 10)
	rom := common.PadTo(image, total-10, 0)

	sizeCode, err := romSizeCode((total) / 1024)
	if err != nil {
		return nil, err
	}

	footer := make([]byte, 10)
	footer[0] = cfg.Publisher
	footer[1] = byte(cfg.Mode)
	footer[2] = cfg.GameID
	footer[3] = cfg.Revision
	footer[4] = sizeCode
	footer[5] = cfg.SaveType
	footer[6] = cfg.Flags
	if cfg.RTC {
		footer[7] = 1
	}

	out := append(rom, footer...)
	var sum uint64
	for _, b := range out[:len(out)-2] {
		sum += uint64(b)
	}
	common.PutLE16(out[len(out)-2:], sum&0xFFFF)

	return out, nil
}
