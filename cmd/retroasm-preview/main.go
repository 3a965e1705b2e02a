// Command retroasm-preview is a debug aid, not part of the core assembler
// (spec §1's scope stops at generated bytes): it opens an SDL2 window and
// blits an assembled ROM's bytes as a raw 256-wide grayscale bitmap, for
// eyeballing CHR/graphics data an .incbin directive baked into the image.
// Grounded on yoshiomiyamae-gones/pkg/gui's window/renderer/texture setup
// and event loop, stripped of everything NES-specific (no APU, no input,
// no per-frame emulation step; the image is static).
package main

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	bitmapWidth = 256
	windowScale = 2
	windowTitle = "retroasm-preview"
)

func loadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("retroasm-preview: %w", err)
	}
	return data, nil
}

// toRGBA converts data, read as raw bytes, into an ABGR8888 framebuffer
// bitmapWidth pixels wide: each byte becomes one grayscale pixel. The
// final row is padded with black if data isn't an exact multiple of the
// row width.
func toRGBA(data []byte) (pixels []byte, height int) {
	height = (len(data) + bitmapWidth - 1) / bitmapWidth
	if height == 0 {
		height = 1
	}
	pixels = make([]byte, bitmapWidth*height*4)
	for i := 0; i < len(data); i++ {
		v := data[i]
		pixels[i*4+0] = v
		pixels[i*4+1] = v
		pixels[i*4+2] = v
		pixels[i*4+3] = 0xFF
	}
	for i := len(data) * 4; i < len(pixels); i += 4 {
		pixels[i+3] = 0xFF
	}
	return pixels, height
}

func run(path string) error {
	data, err := loadImage(path)
	if err != nil {
		return err
	}
	pixels, height := toRGBA(data)

	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		fmt.Sprintf("%s - %s (%d bytes)", windowTitle, path, len(data)),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		bitmapWidth*windowScale, height*windowScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, int32(bitmapWidth), int32(height))
	if err != nil {
		return err
	}
	defer texture.Destroy()

	if err := texture.Update(nil, unsafe.Pointer(&pixels[0]), bitmapWidth*4); err != nil {
		return err
	}

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}

	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: retroasm-preview <flattened-rom-or-binary-file>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
