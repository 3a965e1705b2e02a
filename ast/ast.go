// Package ast defines the data model that the code generator consumes: a
// previously parsed and semantically analyzed program, expressed as a
// sequence of statements. The lexer, parser, and semantic analyzer that
// produce this tree live outside this module's scope (see spec §1); ast
// only describes the shape they hand off.
package ast

import "fmt"

// Location identifies where in assembly source a Statement originated, for
// error reporting.
type Location struct {
	File string
	Line int
	Col  int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// StatementKind tags the variant carried by a Statement.
type StatementKind int

const (
	KindLabel StatementKind = iota
	KindInstruction
	KindDirective
	KindConditional
	KindRepeat
	KindMacroInvocation
	KindEnumerationBlock
	KindMacroDefinition
)

// Expr is an opaque, externally-evaluable operand expression tree. The core
// never inspects it directly; it is only ever handed to an eval.Evaluator.
type Expr interface{}

// InstructionNode is one assembly-language instruction.
type InstructionNode struct {
	// Mnemonic is the instruction name as written, case-insensitive, and
	// may carry a trailing ".b"/".w"/".l" size suffix that the generator
	// strips before catalog lookup.
	Mnemonic string
	// Operand is nil for implied/accumulator-only instructions.
	Operand Expr
	// ModeHint is the addressing-mode shape the parser inferred from
	// operand syntax (e.g. "absolute" vs "immediate"), named generically
	// so it is portable across targets; the generator maps it to a
	// target-specific isa.AddressingMode and may narrow it (§4.1) once
	// the operand value is known.
	ModeHint string
}

// DirectiveNode is a single assembler directive with its ordered argument
// expressions.
type DirectiveNode struct {
	// Name is the lowercase canonical directive name (e.g. "org", "byte").
	Name string
	Args []Expr
	// SourceFile is the file the directive appeared in, used to resolve
	// incbin paths relative to it.
	SourceFile string
}

// Statement is a tagged union over the eight statement kinds the generator
// dispatches on. Only the field matching Kind is populated.
type Statement struct {
	Kind Kind
	Loc  Location

	Label       string
	Instruction *InstructionNode
	Directive   *DirectiveNode

	// Conditional: Cond is the "if" expression; ElseIfs pair each
	// "elseif" expression with its body; Else is the fallback body (may
	// be nil).
	Cond    Expr
	Then    []Statement
	ElseIfs []ElseIf
	Else    []Statement

	// Repeat: Count is evaluated once; Body is visited Count times.
	Count Expr
	Body  []Statement

	// MacroInvocation / MacroDefinition: Name identifies the macro.
	Name string
	Args []Expr

	// EnumerationBlock: Entries is opaque to the generator (value
	// assignment already performed by the semantic analyzer).
	Entries []Statement
}

// Kind is an alias retained for readability at call sites
// (ast.Statement{Kind: ast.KindLabel, ...}).
type Kind = StatementKind

// ElseIf pairs a condition with the body selected when it is the first
// true condition encountered.
type ElseIf struct {
	Cond Expr
	Body []Statement
}

// Program is the ordered top-level statement sequence; iteration order is
// emission order.
type Program struct {
	Statements []Statement
}

// CodeError records one non-fatal failure detected during code generation.
// Errors accumulate; they never abort generation (spec §7).
type CodeError struct {
	Message string
	Loc     Location
}

func (e CodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}
