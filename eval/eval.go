// Package eval declares the bridge interface the code generator calls on
// the external semantic analyzer to resolve operand and condition
// expressions (spec §4, component b). The analyzer's real expression
// evaluator lives outside this module's scope; this package also provides
// small evaluators used by tests and the CLI fixture loader.
package eval

import (
	"github.com/chriskillpack/retroasm/ast"
	"github.com/chriskillpack/retroasm/symtab"
)

// Evaluator resolves operand expressions against whatever context the
// external analyzer maintains (symbol table, anonymous-label stack, macro
// argument bindings). CurrentAddress is the address of the instruction or
// directive being emitted, published by the generator before each call, so
// PC-relative and anonymous-label forms can resolve correctly.
type Evaluator interface {
	// Evaluate returns (value, true) if expr resolves to a concrete
	// integer, or (0, false) if it cannot be resolved.
	Evaluate(expr ast.Expr, currentAddress int64) (int64, bool)
	// EvaluateCondition evaluates a conditional's guard expression.
	// Zero means false; any other value means true. Condition
	// expressions are assumed always resolvable by the analyzer (spec
	// §6) so this does not return an ok flag.
	EvaluateCondition(expr ast.Expr) int64
}

// ConstMap is a trivial, context-free Evaluator, handy for tests and
// fixtures: expressions are plain int64 values wrapped as ast.Expr, and
// ConstMap type-asserts them back out.
type ConstMap struct{}

// Evaluate implements Evaluator by expecting expr to already be an int64
// (or a function returning one, for address-dependent fixtures).
func (ConstMap) Evaluate(expr ast.Expr, currentAddress int64) (int64, bool) {
	switch v := expr.(type) {
	case nil:
		return 0, false
	case int64:
		return v, true
	case int:
		return int64(v), true
	case func(int64) (int64, bool):
		return v(currentAddress)
	default:
		return 0, false
	}
}

// EvaluateCondition implements Evaluator for the same fixture expression
// shapes Evaluate accepts.
func (c ConstMap) EvaluateCondition(expr ast.Expr) int64 {
	v, ok := c.Evaluate(expr, 0)
	if !ok {
		return 0
	}
	return v
}

// SymbolEvaluator extends ConstMap's literal handling with a string case:
// a string expression names a symbol, looked up in Symbols. It is the
// Evaluator cmd/retroasm's assemble command uses to drive the generator
// from a fixture.Program, whose convertExpr carries unresolved references
// as bare strings.
type SymbolEvaluator struct {
	Symbols symtab.SymbolTable
}

// Evaluate resolves int64/int/func(int64) literals as ConstMap does, plus
// string symbol references against Symbols.
func (e SymbolEvaluator) Evaluate(expr ast.Expr, currentAddress int64) (int64, bool) {
	if name, ok := expr.(string); ok {
		sym, found := e.Symbols.TryLookup(name)
		if !found || !sym.Defined {
			return 0, false
		}
		return sym.Value, true
	}
	return (ConstMap{}).Evaluate(expr, currentAddress)
}

// EvaluateCondition mirrors ConstMap's fallback-to-zero behavior for the
// same expression shapes Evaluate accepts.
func (e SymbolEvaluator) EvaluateCondition(expr ast.Expr) int64 {
	v, ok := e.Evaluate(expr, 0)
	if !ok {
		return 0
	}
	return v
}
