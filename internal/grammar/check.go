package grammar

import (
	"fmt"

	"monkey/internal/ast"
)

// Mismatch describes the first statement where the two parsers disagree.
type Mismatch struct {
	Index   int
	Pratt   string
	Grammar string
	Reason  string
}

func (m *Mismatch) String() string {
	if m.Reason != "" {
		return m.Reason
	}
	return fmt.Sprintf("statement %d: pratt=%q grammar=%q", m.Index, m.Pratt, m.Grammar)
}

// CrossCheck parses source with the reference grammar and compares the
// canonical form of every statement with the program produced elsewhere.
// It returns nil when both agree.
func CrossCheck(name, source string, program *ast.Program) (*Mismatch, error) {
	tree, err := ParseString(name, source)
	if err != nil {
		return nil, fmt.Errorf("reference grammar: %w", err)
	}

	reference, err := ToAST(tree)
	if err != nil {
		return nil, fmt.Errorf("reference grammar: %w", err)
	}

	if len(reference.Statements) != len(program.Statements) {
		return &Mismatch{
			Reason: fmt.Sprintf("statement count differs: pratt=%d grammar=%d",
				len(program.Statements), len(reference.Statements)),
		}, nil
	}

	for i := range program.Statements {
		want, got := program.Statements[i].String(), reference.Statements[i].String()
		if want != got {
			return &Mismatch{Index: i, Pratt: want, Grammar: got}, nil
		}
	}

	return nil, nil
}
