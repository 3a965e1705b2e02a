// Package codegen walks an analyzed ast.Program and emits its bytes into
// address-anchored segments (spec §4.2). It replaces the teacher's
// virtual-visitor Disassembler.Disassemble with a tagged-union dispatch
// over ast.Statement, and inverts its "scan state as struct fields" idiom
// (Disassembler.Program/.Offset/.CodeAddrs) from decode to encode: the
// Generator owns the segment list and address cursor for the lifetime of
// one generation job, exactly as Disassembler owned its output buffer and
// offset for the lifetime of one disassembly pass.
package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chriskillpack/retroasm/ast"
	"github.com/chriskillpack/retroasm/eval"
	"github.com/chriskillpack/retroasm/internal/rlog"
	"github.com/chriskillpack/retroasm/isa"
	"github.com/chriskillpack/retroasm/segment"
	"github.com/chriskillpack/retroasm/symtab"
)

// Generator walks a Program for a single target and produces segments plus
// any accumulated errors (spec §4.2, §7: errors never abort generation).
type Generator struct {
	Target    isa.Target
	Catalog   isa.Catalog
	Evaluator eval.Evaluator
	Symbols   symtab.SymbolTable
	Macros    symtab.MacroTable
	Log       *rlog.Logger

	segments Segments
	current  *segment.OutputSegment
	address  int64
	errors   []ast.CodeError
}

// Segments is an alias kept local so callers don't need to import
// segment just to read back Generator.Segments().
type Segments = segment.Segments

// New builds a Generator. log may be nil, in which case generation runs
// silently.
func New(target isa.Target, symbols symtab.SymbolTable, macros symtab.MacroTable, evaluator eval.Evaluator, log *rlog.Logger) (*Generator, error) {
	cat, ok := isa.Registry[target]
	if !ok {
		return nil, fmt.Errorf("codegen: no catalog registered for target %v", target)
	}
	return &Generator{
		Target:    target,
		Catalog:   cat,
		Evaluator: evaluator,
		Symbols:   symbols,
		Macros:    macros,
		Log:       log,
	}, nil
}

// Generate visits every statement in prog and returns the flattened image
// plus the accumulated error list, per the §6 `generate` contract.
func (g *Generator) Generate(prog ast.Program) ([]byte, []ast.CodeError) {
	g.segments = nil
	g.current = nil
	g.address = 0
	g.errors = nil

	g.visitAll(prog.Statements)

	return segment.Flatten(g.segments), g.errors
}

// Segments returns the segment list built by the last Generate call, for
// downstream consumers (listing, container builder) per §6.
func (g *Generator) Segments() Segments { return g.segments }

func (g *Generator) fail(loc ast.Location, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	g.errors = append(g.errors, ast.CodeError{Message: msg, Loc: loc})
	if g.Log != nil {
		g.Log.Codegenf("%s: %s", loc, msg)
	}
}

func (g *Generator) ensureSegment() {
	if g.current == nil {
		g.current = &segment.OutputSegment{StartAddress: g.address}
		g.segments = append(g.segments, g.current)
	}
}

func (g *Generator) emit(b ...byte) {
	g.ensureSegment()
	g.current.Append(b...)
	g.address += int64(len(b))
}

func (g *Generator) visitAll(stmts []ast.Statement) {
	for _, s := range stmts {
		g.visit(s)
	}
}

func (g *Generator) visit(s ast.Statement) {
	switch s.Kind {
	case ast.KindLabel:
		// Values are fixed by the analyzer before generation; nothing to
		// emit (§4.2).
	case ast.KindInstruction:
		g.visitInstruction(s)
	case ast.KindDirective:
		g.visitDirective(s)
	case ast.KindConditional:
		g.visitConditional(s)
	case ast.KindRepeat:
		g.visitRepeat(s)
	case ast.KindMacroInvocation:
		g.visitMacroInvocation(s)
	case ast.KindEnumerationBlock:
		// Value assignment already performed by the analyzer.
	case ast.KindMacroDefinition:
		// Handled by the macro table; no emission.
	default:
		g.fail(s.Loc, "unknown statement kind %d", s.Kind)
	}
}

// splitSize strips a trailing ".b"/".w"/".l" suffix from mnemonic, per
// §4.2 step 2.
func splitSize(mnemonic string) (base string, size byte, has bool) {
	if len(mnemonic) < 2 || mnemonic[len(mnemonic)-2] != '.' {
		return mnemonic, 0, false
	}
	suffix := mnemonic[len(mnemonic)-1]
	switch suffix {
	case 'b', 'w', 'l', 'B', 'W', 'L':
		return mnemonic[:len(mnemonic)-2], byte(strings.ToLower(string(suffix))[0]), true
	}
	return mnemonic, 0, false
}

func sizeWidth(target isa.Target, suffix byte) int {
	switch suffix {
	case 'b':
		return 1
	case 'w':
		return 2
	case 'l':
		if target == isa.WDC65816 {
			return 3
		}
		return 4
	}
	return 0
}

func (g *Generator) visitInstruction(s ast.Statement) {
	in := s.Instruction
	g.ensureSegment()

	mnemonic, sizeSuffix, hasSize := splitSize(in.Mnemonic)

	// Publish the current address for anonymous-label and PC-relative
	// resolution before evaluating the operand (§4.2 step 3).
	startAddr := g.address

	mode, hasMode := isa.ResolveMode(g.Target, in.ModeHint)
	if !hasMode {
		mode = isa.AddressingMode(-1)
	}

	var value int64
	var resolvedOk = true
	if in.Operand != nil {
		v, ok := g.Evaluator.Evaluate(in.Operand, startAddr)
		if !ok {
			resolvedOk = false
		}
		value = v
	}

	if resolvedOk && hasMode {
		if narrowed, did := g.Catalog.Narrow(mnemonic, mode, value); did {
			mode = narrowed
		}
	}

	enc, ok := g.Catalog.Lookup(mnemonic, mode)
	if !ok {
		g.fail(s.Loc, "invalid addressing mode for %q", in.Mnemonic)
		return
	}

	g.emit(enc.Opcode...)

	operandWidth := enc.Size - len(enc.Opcode)
	if hasSize {
		if w := sizeWidth(g.Target, sizeSuffix); w > 0 {
			operandWidth = w
		}
	}

	if g.Catalog.IsBranch(mnemonic) {
		g.emitBranch(s.Loc, value, resolvedOk, operandWidth)
		return
	}

	if in.Operand == nil {
		return
	}

	if !resolvedOk {
		g.fail(s.Loc, "could not resolve operand for %q", in.Mnemonic)
		g.emit(make([]byte, operandWidth)...)
		return
	}

	g.emitWidth(value, operandWidth)
}

// emitBranch computes a PC-relative displacement and emits it, range
// checking per §4.2 step 8 / §7 BranchOutOfRange.
func (g *Generator) emitBranch(loc ast.Location, target int64, resolvedOk bool, width int) {
	if !resolvedOk {
		g.fail(loc, "could not resolve branch target")
		g.emit(make([]byte, width)...)
		return
	}
	disp := target - (g.address + int64(width))
	lo, hi := branchRange(width)
	if disp < lo || disp > hi {
		g.fail(loc, "branch out of range: displacement %d outside [%d, %d]", disp, lo, hi)
	}
	g.emitWidth(disp, width)
}

func branchRange(width int) (int64, int64) {
	switch width {
	case 1:
		return -128, 127
	case 2:
		return -32768, 32767
	default:
		return -1 << 31, 1<<31 - 1
	}
}

// emitWidth emits v's low `width` bytes in the target's endianness,
// masking explicitly (§9: "every arithmetic truncation...masks
// explicitly").
func (g *Generator) emitWidth(v int64, width int) {
	uv := uint64(v)
	buf := make([]byte, width)
	if g.Catalog.Endianness() == isa.BigEndian {
		for i := 0; i < width; i++ {
			buf[width-1-i] = byte(uv >> (8 * uint(i)))
		}
	} else {
		for i := 0; i < width; i++ {
			buf[i] = byte(uv >> (8 * uint(i)))
		}
	}
	g.emit(buf...)
}

func (g *Generator) visitDirective(s ast.Statement) {
	d := s.Directive
	switch d.Name {
	case "org":
		g.directiveOrg(s.Loc, d)
	case "byte", "db":
		g.directiveByte(s.Loc, d)
	case "word", "dw":
		g.directiveWord(s.Loc, d)
	case "long", "dl", "dd":
		g.directiveLong(s.Loc, d)
	case "ds", "fill", "res":
		g.directiveFill(s.Loc, d)
	case "incbin":
		g.directiveIncbin(s.Loc, d)
	case "align":
		g.directiveAlign(s.Loc, d)
	case "pad":
		g.directivePad(s.Loc, d)
	default:
		// Metadata/header-configuration directives are absorbed by the
		// analyzer and are no-ops to the core (spec §4.2).
	}
}

func (g *Generator) directiveOrg(loc ast.Location, d *ast.DirectiveNode) {
	if len(d.Args) != 1 {
		g.fail(loc, "org requires exactly one argument")
		return
	}
	v, ok := g.Evaluator.Evaluate(d.Args[0], g.address)
	if !ok {
		g.fail(loc, "could not resolve org address")
		return
	}
	g.address = v
	g.current = &segment.OutputSegment{StartAddress: v}
	g.segments = append(g.segments, g.current)
}

func (g *Generator) directiveByte(loc ast.Location, d *ast.DirectiveNode) {
	for _, arg := range d.Args {
		if str, ok := arg.(string); ok {
			for _, r := range str {
				g.emit(byte(r))
			}
			continue
		}
		v, ok := g.Evaluator.Evaluate(arg, g.address)
		if !ok {
			g.fail(loc, "could not resolve .byte argument")
			g.emit(0)
			continue
		}
		g.emit(byte(v))
	}
}

func (g *Generator) directiveWord(loc ast.Location, d *ast.DirectiveNode) {
	for _, arg := range d.Args {
		v, ok := g.Evaluator.Evaluate(arg, g.address)
		if !ok {
			g.fail(loc, "could not resolve .word argument")
			g.emit(0, 0)
			continue
		}
		g.emit(byte(v), byte(v>>8))
	}
}

func (g *Generator) directiveLong(loc ast.Location, d *ast.DirectiveNode) {
	width := 4
	if g.Target == isa.WDC65816 {
		width = 3
	}
	for _, arg := range d.Args {
		v, ok := g.Evaluator.Evaluate(arg, g.address)
		if !ok {
			g.fail(loc, "could not resolve long-directive argument")
			g.emit(make([]byte, width)...)
			continue
		}
		buf := make([]byte, width)
		for i := 0; i < width; i++ {
			buf[i] = byte(v >> (8 * uint(i)))
		}
		g.emit(buf...)
	}
}

func (g *Generator) directiveFill(loc ast.Location, d *ast.DirectiveNode) {
	if len(d.Args) < 1 {
		g.fail(loc, "%s requires a count argument", d.Name)
		return
	}
	count, ok := g.Evaluator.Evaluate(d.Args[0], g.address)
	if !ok {
		g.fail(loc, "could not resolve %s count", d.Name)
		return
	}
	var fill int64
	if len(d.Args) > 1 {
		fill, ok = g.Evaluator.Evaluate(d.Args[1], g.address)
		if !ok {
			g.fail(loc, "could not resolve %s fill byte", d.Name)
			fill = 0
		}
	}
	if count < 0 {
		g.fail(loc, "%s count must not be negative", d.Name)
		return
	}
	buf := make([]byte, count)
	for i := range buf {
		buf[i] = byte(fill)
	}
	g.emit(buf...)
}

func (g *Generator) directiveIncbin(loc ast.Location, d *ast.DirectiveNode) {
	if len(d.Args) < 1 {
		g.fail(loc, "incbin requires a path argument")
		return
	}
	path, ok := d.Args[0].(string)
	if !ok {
		g.fail(loc, "incbin path must be a string literal")
		return
	}
	if !filepath.IsAbs(path) && d.SourceFile != "" {
		path = filepath.Join(filepath.Dir(d.SourceFile), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		g.fail(loc, "incbin: %s", err)
		return
	}

	offset, length := int64(0), int64(len(data))
	if len(d.Args) > 1 {
		offset, ok = g.Evaluator.Evaluate(d.Args[1], g.address)
		if !ok {
			g.fail(loc, "could not resolve incbin offset")
			return
		}
	}
	if len(d.Args) > 2 {
		length, ok = g.Evaluator.Evaluate(d.Args[2], g.address)
		if !ok {
			g.fail(loc, "could not resolve incbin length")
			return
		}
	} else {
		length = int64(len(data)) - offset
	}
	if offset < 0 || offset > int64(len(data)) || offset+length > int64(len(data)) || length < 0 {
		g.fail(loc, "incbin: offset/length out of range for %s", path)
		return
	}
	g.emit(data[offset : offset+length]...)
}

func (g *Generator) directiveAlign(loc ast.Location, d *ast.DirectiveNode) {
	if len(d.Args) < 1 {
		g.fail(loc, "align requires an argument")
		return
	}
	n, ok := g.Evaluator.Evaluate(d.Args[0], g.address)
	if !ok || n <= 0 {
		g.fail(loc, "align requires a positive n")
		return
	}
	var fill int64
	if len(d.Args) > 1 {
		fill, _ = g.Evaluator.Evaluate(d.Args[1], g.address)
	}
	for g.address%n != 0 {
		g.emit(byte(fill))
	}
}

func (g *Generator) directivePad(loc ast.Location, d *ast.DirectiveNode) {
	if len(d.Args) < 1 {
		g.fail(loc, "pad requires a target address")
		return
	}
	target, ok := g.Evaluator.Evaluate(d.Args[0], g.address)
	if !ok {
		g.fail(loc, "could not resolve pad target")
		return
	}
	var fill int64
	if len(d.Args) > 1 {
		fill, _ = g.Evaluator.Evaluate(d.Args[1], g.address)
	}
	if g.address > target {
		g.fail(loc, "cannot pad backwards: current address %d > target %d", g.address, target)
		return
	}
	for g.address < target {
		g.emit(byte(fill))
	}
}

func (g *Generator) visitConditional(s ast.Statement) {
	if g.Evaluator.EvaluateCondition(s.Cond) != 0 {
		g.visitAll(s.Then)
		return
	}
	for _, ei := range s.ElseIfs {
		if g.Evaluator.EvaluateCondition(ei.Cond) != 0 {
			g.visitAll(ei.Body)
			return
		}
	}
	g.visitAll(s.Else)
}

func (g *Generator) visitRepeat(s ast.Statement) {
	count, ok := g.Evaluator.Evaluate(s.Count, g.address)
	if !ok {
		g.fail(s.Loc, "could not resolve repeat count")
		return
	}
	if count < 0 {
		g.fail(s.Loc, "repeat count must not be negative")
		return
	}
	for i := int64(0); i < count; i++ {
		g.visitAll(s.Body)
	}
}

func (g *Generator) visitMacroInvocation(s ast.Statement) {
	def, ok := g.Macros.Get(s.Name)
	if !ok {
		g.fail(s.Loc, "undefined macro %q", s.Name)
		return
	}
	// s.Args is not consulted here: symtab.MacroTable.Get resolves by
	// name only, so a macro's body is the same static statement sequence
	// at every call site. Per-argument substitution is out of scope for
	// this implementation; a parameterized macro system would need to
	// thread s.Args into a fresh evaluation scope, which nothing upstream
	// of this generator currently provides.
	g.visitAll(def.Body)
}
