package fixture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskillpack/retroasm/ast"
)

func TestLoadInstructionAndDirective(t *testing.T) {
	doc := `{
		"target": "mos6502",
		"symbols": [{"name": "start", "value": 32768}],
		"statements": [
			{"kind": "instruction", "mnemonic": "lda", "modeHint": "immediate", "operand": {"int": 66}},
			{"kind": "directive", "directive": "org", "args": [{"ref": "start"}]}
		]
	}`

	prog, symbols, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	sym, ok := symbols.TryLookup("start")
	require.True(t, ok)
	assert.Equal(t, int64(32768), sym.Value)
	assert.True(t, sym.Defined)

	require.Len(t, prog.Statements, 2)

	instr := prog.Statements[0]
	assert.Equal(t, ast.KindInstruction, instr.Kind)
	assert.Equal(t, "lda", instr.Instruction.Mnemonic)
	assert.Equal(t, "immediate", instr.Instruction.ModeHint)
	assert.Equal(t, int64(66), instr.Instruction.Operand)

	dir := prog.Statements[1]
	assert.Equal(t, ast.KindDirective, dir.Kind)
	assert.Equal(t, "org", dir.Directive.Name)
	require.Len(t, dir.Directive.Args, 1)
	assert.Equal(t, "start", dir.Directive.Args[0])
}

func TestLoadConditionalAndRepeat(t *testing.T) {
	doc := `{
		"target": "mos6502",
		"statements": [
			{
				"kind": "conditional",
				"cond": {"int": 1},
				"then": [{"kind": "instruction", "mnemonic": "nop", "modeHint": "implied"}],
				"else": [{"kind": "instruction", "mnemonic": "clc", "modeHint": "implied"}]
			},
			{
				"kind": "repeat",
				"count": {"int": 3},
				"body": [{"kind": "instruction", "mnemonic": "nop", "modeHint": "implied"}]
			}
		]
	}`

	prog, _, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	cond := prog.Statements[0]
	assert.Equal(t, ast.KindConditional, cond.Kind)
	assert.Equal(t, int64(1), cond.Cond)
	require.Len(t, cond.Then, 1)
	require.Len(t, cond.Else, 1)
	assert.Equal(t, "nop", cond.Then[0].Instruction.Mnemonic)
	assert.Equal(t, "clc", cond.Else[0].Instruction.Mnemonic)

	rep := prog.Statements[1]
	assert.Equal(t, ast.KindRepeat, rep.Kind)
	assert.Equal(t, int64(3), rep.Count)
	require.Len(t, rep.Body, 1)
}

func TestLoadMacroInvocation(t *testing.T) {
	doc := `{
		"target": "mos6502",
		"statements": [
			{"kind": "macroInvocation", "name": "push_all", "args": [{"int": 1}, {"ref": "sym"}]}
		]
	}`

	prog, _, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	inv := prog.Statements[0]
	assert.Equal(t, ast.KindMacroInvocation, inv.Kind)
	assert.Equal(t, "push_all", inv.Name)
	require.Len(t, inv.Args, 2)
	assert.Equal(t, int64(1), inv.Args[0])
	assert.Equal(t, "sym", inv.Args[1])
}

func TestLoadUnknownKindErrors(t *testing.T) {
	doc := `{"target": "mos6502", "statements": [{"kind": "bogus"}]}`

	_, _, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoadMalformedJSONErrors(t *testing.T) {
	_, _, err := Load(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestConvertExprNilIsImpliedOperand(t *testing.T) {
	assert.Nil(t, convertExpr(nil))
}
