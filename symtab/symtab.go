// Package symtab declares the read-only interfaces the code generator uses
// to query symbols and macros. The semantic analyzer that owns and
// populates these tables lives outside this module (spec §1); this package
// also provides simple map-backed implementations for tests and the CLI's
// fixture loader.
package symtab

import "github.com/chriskillpack/retroasm/ast"

// Kind classifies a Symbol.
type Kind int

const (
	KindLabel Kind = iota
	KindConstant
	KindMacro
	KindExternal
)

// Symbol is a named, analyzer-resolved value. Value is only meaningful when
// Defined is true.
type Symbol struct {
	Name    string
	Value   int64
	Kind    Kind
	Defined bool
}

// SymbolTable is the read-only view the core holds onto the analyzer's
// symbol table.
type SymbolTable interface {
	TryLookup(name string) (Symbol, bool)
}

// MacroTable is the read-only view the core holds onto the analyzer's
// macro table.
type MacroTable interface {
	Get(name string) (ast.Statement, bool)
}

// StaticSymbolTable is a fixed, map-backed SymbolTable, convenient for
// tests and for driving the generator from a self-contained fixture.
type StaticSymbolTable map[string]Symbol

func (t StaticSymbolTable) TryLookup(name string) (Symbol, bool) {
	s, ok := t[name]
	return s, ok
}

// StaticMacroTable is a fixed, map-backed MacroTable.
type StaticMacroTable map[string]ast.Statement

func (t StaticMacroTable) Get(name string) (ast.Statement, bool) {
	s, ok := t[name]
	return s, ok
}
