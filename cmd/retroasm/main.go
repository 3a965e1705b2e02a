package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/template"

	"github.com/urfave/cli/v2"

	"github.com/chriskillpack/retroasm/codegen"
	"github.com/chriskillpack/retroasm/container/atari2600"
	"github.com/chriskillpack/retroasm/container/gb"
	"github.com/chriskillpack/retroasm/container/gba"
	"github.com/chriskillpack/retroasm/container/genesis"
	"github.com/chriskillpack/retroasm/container/lynx"
	"github.com/chriskillpack/retroasm/container/nes"
	"github.com/chriskillpack/retroasm/container/pcengine"
	"github.com/chriskillpack/retroasm/container/sms"
	"github.com/chriskillpack/retroasm/container/snes"
	"github.com/chriskillpack/retroasm/container/spc"
	"github.com/chriskillpack/retroasm/container/wonderswan"
	"github.com/chriskillpack/retroasm/eval"
	"github.com/chriskillpack/retroasm/internal/fixture"
	"github.com/chriskillpack/retroasm/internal/rlog"
	"github.com/chriskillpack/retroasm/isa"
	"github.com/chriskillpack/retroasm/segment"
	"github.com/chriskillpack/retroasm/symtab"

	_ "github.com/chriskillpack/retroasm/isa/arm7tdmi"
	_ "github.com/chriskillpack/retroasm/isa/huc6280"
	_ "github.com/chriskillpack/retroasm/isa/m68000"
	_ "github.com/chriskillpack/retroasm/isa/mos6502"
	_ "github.com/chriskillpack/retroasm/isa/mos6507"
	_ "github.com/chriskillpack/retroasm/isa/r65c02"
	_ "github.com/chriskillpack/retroasm/isa/sm83"
	_ "github.com/chriskillpack/retroasm/isa/spc700"
	_ "github.com/chriskillpack/retroasm/isa/v30mz"
	_ "github.com/chriskillpack/retroasm/isa/wdc65816"
	_ "github.com/chriskillpack/retroasm/isa/z80"
)

// assemble drives codegen.Generator from a JSON program fixture and, if
// --format names a container, pipes the flattened bytes through it.
func assemble(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("assemble needs a fixture path", 1)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(err, 1)
	}

	var doc fixture.Program
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cli.Exit(fmt.Errorf("assemble: parse %s: %w", path, err), 1)
	}

	targetName := doc.Target
	if c.String("target") != "" {
		targetName = c.String("target")
	}
	target, ok := isa.ParseTarget(targetName)
	if !ok {
		return cli.Exit(fmt.Errorf("assemble: unknown target %q", targetName), 1)
	}

	prog, symbols, err := fixture.Load(bytes.NewReader(raw))
	if err != nil {
		return cli.Exit(err, 1)
	}

	log := rlog.New(rlog.LevelFromString(c.String("log-level")), os.Stderr)

	gen, err := codegen.New(target, symbols, symtab.StaticMacroTable{}, eval.SymbolEvaluator{Symbols: symbols}, log)
	if err != nil {
		return cli.Exit(err, 1)
	}

	_, errs := gen.Generate(prog)
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(errs) > 0 && !c.Bool("keep-going") {
		return cli.Exit(fmt.Sprintf("assemble: %d error(s)", len(errs)), 1)
	}

	image := segment.Flatten(gen.Segments())

	format := c.String("format")
	if format != "" {
		built, err := buildContainer(format, image, c)
		if err != nil {
			return cli.Exit(err, 1)
		}
		image = built
	}

	out := c.String("out")
	if out == "" {
		out = "out.bin"
	}
	if err := os.WriteFile(out, image, 0644); err != nil {
		return cli.Exit(err, 1)
	}

	log.Infof("wrote %d bytes to %s", len(image), out)
	return nil
}

// buildContainer wraps image in the named ROM/sound-file format. Each
// format's Config is populated from generic CLI flags only where the two
// line up (mapper number, PRG/CHR unit counts, title, entry and load
// addresses); every other Config field keeps its zero value.
func buildContainer(format string, image []byte, c *cli.Context) ([]byte, error) {
	switch format {
	case "nes":
		return nes.Build(image, nes.Config{
			PRGUnits16K: c.Int("prg-units"),
			CHRUnits8K:  c.Int("chr-units"),
			Mapper:      c.Int("mapper"),
			Mirroring:   nes.Horizontal,
		})
	case "snes-lorom":
		return snes.Build(image, snes.Config{Map: snes.LoROM, Title: c.String("title")})
	case "snes-hirom":
		return snes.Build(image, snes.Config{Map: snes.HiROM, Title: c.String("title")})
	case "gb":
		return gb.Build(image, gb.Config{Title: c.String("title"), EntryPoint: uint16(c.Int("entry"))})
	case "gba":
		return gba.Build(image, gba.Config{Title: c.String("title"), EntryTarget: uint32(c.Int("entry"))})
	case "genesis":
		return genesis.Build(image, genesis.Config{DomesticName: c.String("title"), OverseasName: c.String("title")})
	case "sms":
		return sms.Build(image, sms.Config{})
	case "atari2600":
		return atari2600.Build(image, atari2600.Config{Bank: atari2600.BankNone})
	case "lynx":
		return lynx.NewBuilder(lynx.Config{Name: c.String("title")}).Build(image, uint16(c.Int("load-addr"))), nil
	case "wonderswan":
		return wonderswan.Build(image, wonderswan.Config{ROMSizeKB: c.Int("rom-size-kb")})
	case "pcengine":
		return pcengine.Build(image, pcengine.Vectors{RESET: uint16(c.Int("reset-vector"))})
	case "spc", "spc700":
		return spc.Build(spc.Config{APURAM: image})
	default:
		return nil, fmt.Errorf("buildContainer: unknown format %q", format)
	}
}

// catalogHeader is rendered once per catalog dump, the same text/template
// idiom the teacher's disassemble.go uses for its disasmHeader report
// (Parse once, Execute against a small anonymous struct, write to stdout).
const catalogHeader = `Target: {{.Target}}  Endianness: {{.Endianness}}  Entries: {{.Count}}

Mnemonic        Mode  Opcode      Size  Branch
`

var catalogTmpl = template.Must(template.New("catalog").Parse(catalogHeader))

// catalogDump prints a target's full (mnemonic, mode) -> encoding table,
// the assemble command's companion for inspecting catalog completeness,
// same role the teacher's "list" command plays for DFS catalogs.
func catalogDump(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return cli.Exit("catalog needs a target name", 1)
	}
	target, ok := isa.ParseTarget(name)
	if !ok {
		return cli.Exit(fmt.Errorf("catalog: unknown target %q", name), 1)
	}
	cat, ok := isa.Registry[target]
	if !ok {
		return cli.Exit(fmt.Errorf("catalog: target %q has no registered catalog", name), 1)
	}
	enumerable, ok := cat.(isa.Enumerable)
	if !ok {
		return cli.Exit(fmt.Errorf("catalog: target %q's catalog does not support enumeration", name), 1)
	}

	entries := enumerable.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Mnemonic != entries[j].Mnemonic {
			return entries[i].Mnemonic < entries[j].Mnemonic
		}
		return entries[i].Mode < entries[j].Mode
	})

	data := struct {
		Target     string
		Endianness isa.Endianness
		Count      int
	}{name, cat.Endianness(), len(entries)}
	if err := catalogTmpl.Execute(os.Stdout, data); err != nil {
		return cli.Exit(err, 1)
	}
	for _, e := range entries {
		fmt.Printf("%-15s %-5d % -11x %-5d %v\n", e.Mnemonic, e.Mode, e.Encoding.Opcode, e.Encoding.Size, cat.IsBranch(e.Mnemonic))
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "retroasm"
	app.Usage = "Multi-target retro-console assembler code generator and ROM container builder"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "assemble",
			Usage:     "Generate code and an optional container image from a JSON program fixture",
			ArgsUsage: "fixture.json",
			Action:    assemble,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "target", Usage: "override the fixture's target"},
				&cli.StringFlag{Name: "format", Usage: "container format (nes, snes-lorom, snes-hirom, gb, gba, genesis, sms, atari2600, lynx, wonderswan, pcengine)"},
				&cli.StringFlag{Name: "out", Value: "out.bin", Usage: "output file"},
				&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "off, error, warn, info, debug"},
				&cli.BoolFlag{Name: "keep-going", Usage: "write output even if CodeErrors were recorded"},
				&cli.IntFlag{Name: "mapper", Usage: "NES mapper number"},
				&cli.IntFlag{Name: "prg-units", Usage: "NES PRG-ROM units (16KB each)"},
				&cli.IntFlag{Name: "chr-units", Usage: "NES CHR-ROM units (8KB each)"},
				&cli.StringFlag{Name: "title", Usage: "container title/name field"},
				&cli.IntFlag{Name: "entry", Usage: "entry address/target for GB/GBA headers"},
				&cli.IntFlag{Name: "load-addr", Usage: "Lynx CPU load address"},
				&cli.IntFlag{Name: "rom-size-kb", Usage: "WonderSwan ROM size in KB"},
				&cli.IntFlag{Name: "reset-vector", Usage: "PC Engine reset vector"},
			},
		},
		{
			Name:      "catalog",
			Usage:     "Dump a target's (mnemonic, mode) -> encoding catalog",
			ArgsUsage: "target",
			Action:    catalogDump,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
