// Package fixture reads the self-contained JSON program fixtures the
// assemble CLI command drives the generator from (spec.md's parser and
// semantic analyzer are out of this module's scope; fixture stands in for
// them the same way ParseDFS in the teacher's bbcdisasm.go turns a raw
// byte blob into the struct the rest of the tool operates on).
package fixture

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chriskillpack/retroasm/ast"
	"github.com/chriskillpack/retroasm/symtab"
)

// Expr is the fixture's operand-expression shape: either a resolved
// integer, a bare symbol reference, or absent (nil). convertExpr below
// turns it into an int64 or a symbol-name string, both of which
// eval.SymbolEvaluator resolves.
type Expr struct {
	// Int, if Ref == "", is used as the expression's resolved value.
	Int int64 `json:"int,omitempty"`
	// Ref, if non-empty, names a symbol to resolve against the fixture's
	// symbol table instead of using Int directly.
	Ref string `json:"ref,omitempty"`
}

// Statement mirrors ast.Statement as plain JSON. Only the fields for the
// named Kind are meaningful, same contract as ast.Statement itself.
type Statement struct {
	Kind string `json:"kind"`

	Label string `json:"label,omitempty"`

	Mnemonic string `json:"mnemonic,omitempty"`
	Operand  *Expr  `json:"operand,omitempty"`
	ModeHint string `json:"modeHint,omitempty"`

	Directive string `json:"directive,omitempty"`
	Args      []Expr `json:"args,omitempty"`
	DirFile   string `json:"file,omitempty"`

	Cond  *Expr       `json:"cond,omitempty"`
	Then  []Statement `json:"then,omitempty"`
	Else  []Statement `json:"else,omitempty"`

	Count *Expr       `json:"count,omitempty"`
	Body  []Statement `json:"body,omitempty"`

	Name string `json:"name,omitempty"`
}

// Symbol is one entry of the fixture's symbol table.
type Symbol struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Program is the top-level fixture document cmd/retroasm's assemble
// command reads: a statement list plus the pre-resolved symbol table the
// analyzer would otherwise have built.
type Program struct {
	Target     string      `json:"target"`
	Statements []Statement `json:"statements"`
	Symbols    []Symbol    `json:"symbols"`
}

var kindNames = map[string]ast.StatementKind{
	"label":             ast.KindLabel,
	"instruction":       ast.KindInstruction,
	"directive":         ast.KindDirective,
	"conditional":       ast.KindConditional,
	"repeat":            ast.KindRepeat,
	"macroInvocation":  ast.KindMacroInvocation,
	"enumerationBlock": ast.KindEnumerationBlock,
	"macroDefinition":  ast.KindMacroDefinition,
}

// Load parses a fixture document from r into an ast.Program and a
// symtab.StaticSymbolTable built from its Symbols list.
func Load(r io.Reader) (ast.Program, symtab.StaticSymbolTable, error) {
	var doc Program
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ast.Program{}, nil, fmt.Errorf("fixture: decode: %w", err)
	}

	symbols := make(symtab.StaticSymbolTable, len(doc.Symbols))
	for _, s := range doc.Symbols {
		symbols[s.Name] = symtab.Symbol{Name: s.Name, Value: s.Value, Kind: symtab.KindConstant, Defined: true}
	}

	stmts, err := convertStatements(doc.Statements)
	if err != nil {
		return ast.Program{}, nil, err
	}

	return ast.Program{Statements: stmts}, symbols, nil
}

func convertStatements(in []Statement) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(in))
	for _, s := range in {
		cs, err := convertStatement(s)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}

func convertStatement(s Statement) (ast.Statement, error) {
	kind, ok := kindNames[s.Kind]
	if !ok {
		return ast.Statement{}, fmt.Errorf("fixture: unknown statement kind %q", s.Kind)
	}

	out := ast.Statement{Kind: kind, Label: s.Label, Name: s.Name}

	switch kind {
	case ast.KindInstruction:
		out.Instruction = &ast.InstructionNode{
			Mnemonic: s.Mnemonic,
			Operand:  convertExpr(s.Operand),
			ModeHint: s.ModeHint,
		}
	case ast.KindDirective:
		args := make([]ast.Expr, len(s.Args))
		for i := range s.Args {
			args[i] = convertExpr(&s.Args[i])
		}
		out.Directive = &ast.DirectiveNode{Name: s.Directive, Args: args, SourceFile: s.DirFile}
	case ast.KindConditional:
		out.Cond = convertExpr(s.Cond)
		then, err := convertStatements(s.Then)
		if err != nil {
			return ast.Statement{}, err
		}
		els, err := convertStatements(s.Else)
		if err != nil {
			return ast.Statement{}, err
		}
		out.Then, out.Else = then, els
	case ast.KindRepeat:
		out.Count = convertExpr(s.Count)
		body, err := convertStatements(s.Body)
		if err != nil {
			return ast.Statement{}, err
		}
		out.Body = body
	case ast.KindMacroInvocation:
		args := make([]ast.Expr, len(s.Args))
		for i := range s.Args {
			args[i] = convertExpr(&s.Args[i])
		}
		out.Args = args
	}

	return out, nil
}

// convertExpr turns a fixture Expr into an ast.Expr that eval.ConstMap (or
// the CLI's symbol-aware wrapper, see cmd/retroasm) knows how to resolve.
// A symbol reference is carried as its Name string; a literal is carried
// as an int64. Nil stays nil (implied operand).
func convertExpr(e *Expr) ast.Expr {
	if e == nil {
		return nil
	}
	if e.Ref != "" {
		return e.Ref
	}
	return e.Int
}
