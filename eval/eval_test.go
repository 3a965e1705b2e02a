package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chriskillpack/retroasm/symtab"
)

func TestConstMapEvaluate(t *testing.T) {
	c := ConstMap{}

	v, ok := c.Evaluate(int64(7), 0)
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)

	v, ok = c.Evaluate(3, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)

	_, ok = c.Evaluate(nil, 0)
	assert.False(t, ok)

	_, ok = c.Evaluate("not a literal", 0)
	assert.False(t, ok)
}

func TestConstMapEvaluateAddressFunc(t *testing.T) {
	c := ConstMap{}
	pcRelative := func(addr int64) (int64, bool) { return addr + 2, true }

	v, ok := c.Evaluate(pcRelative, 0x100)
	assert.True(t, ok)
	assert.Equal(t, int64(0x102), v)
}

func TestConstMapEvaluateCondition(t *testing.T) {
	c := ConstMap{}
	assert.Equal(t, int64(1), c.EvaluateCondition(int64(1)))
	assert.Equal(t, int64(0), c.EvaluateCondition(nil))
}

func TestSymbolEvaluatorResolvesDefinedSymbol(t *testing.T) {
	e := SymbolEvaluator{Symbols: symtab.StaticSymbolTable{
		"loop": {Name: "loop", Value: 0x8010, Defined: true},
	}}

	v, ok := e.Evaluate("loop", 0)
	assert.True(t, ok)
	assert.Equal(t, int64(0x8010), v)
}

func TestSymbolEvaluatorRejectsUndefinedSymbol(t *testing.T) {
	e := SymbolEvaluator{Symbols: symtab.StaticSymbolTable{
		"forward_ref": {Name: "forward_ref", Defined: false},
	}}

	_, ok := e.Evaluate("forward_ref", 0)
	assert.False(t, ok)
}

func TestSymbolEvaluatorRejectsUnknownSymbol(t *testing.T) {
	e := SymbolEvaluator{Symbols: symtab.StaticSymbolTable{}}

	_, ok := e.Evaluate("nonexistent", 0)
	assert.False(t, ok)
}

func TestSymbolEvaluatorFallsBackToLiterals(t *testing.T) {
	e := SymbolEvaluator{Symbols: symtab.StaticSymbolTable{}}

	v, ok := e.Evaluate(int64(99), 0)
	assert.True(t, ok)
	assert.Equal(t, int64(99), v)
}

func TestSymbolEvaluatorEvaluateCondition(t *testing.T) {
	e := SymbolEvaluator{Symbols: symtab.StaticSymbolTable{
		"flag": {Name: "flag", Value: 1, Defined: true},
	}}
	assert.Equal(t, int64(1), e.EvaluateCondition("flag"))
	assert.Equal(t, int64(0), e.EvaluateCondition("unknown"))
}
