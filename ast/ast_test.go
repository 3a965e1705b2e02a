package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationStringWithAndWithoutFile(t *testing.T) {
	assert.Equal(t, "3:7", Location{Line: 3, Col: 7}.String())
	assert.Equal(t, "main.asm:3:7", Location{File: "main.asm", Line: 3, Col: 7}.String())
}

func TestCodeErrorFormatsLocationAndMessage(t *testing.T) {
	err := CodeError{Message: "branch out of range", Loc: Location{File: "a.asm", Line: 10, Col: 1}}
	assert.Equal(t, "a.asm:10:1: branch out of range", err.Error())
}

func TestStatementKindFieldsAreIndependentOfKind(t *testing.T) {
	stmt := Statement{
		Kind:        KindInstruction,
		Instruction: &InstructionNode{Mnemonic: "lda", ModeHint: "immediate", Operand: int64(5)},
	}
	assert.Equal(t, KindInstruction, stmt.Kind)
	assert.Equal(t, "lda", stmt.Instruction.Mnemonic)
	assert.Nil(t, stmt.Directive)
}

func TestKindIsAnAliasForStatementKind(t *testing.T) {
	var k Kind = KindDirective
	assert.Equal(t, StatementKind(KindDirective), k)
}
