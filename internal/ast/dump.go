package ast

import "fmt"

// NodeDump is a serializable view of a node, used for YAML and JSON output.
type NodeDump struct {
	Kind     string      `yaml:"kind" json:"kind"`
	Line     int         `yaml:"line,omitempty" json:"line,omitempty"`
	Column   int         `yaml:"column,omitempty" json:"column,omitempty"`
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Value    *int64      `yaml:"value,omitempty" json:"value,omitempty"`
	Operator string      `yaml:"operator,omitempty" json:"operator,omitempty"`
	Operand  *NodeDump   `yaml:"operand,omitempty" json:"operand,omitempty"`
	Left     *NodeDump   `yaml:"left,omitempty" json:"left,omitempty"`
	Right    *NodeDump   `yaml:"right,omitempty" json:"right,omitempty"`
	Expr     *NodeDump   `yaml:"expr,omitempty" json:"expr,omitempty"`
	Body     []*NodeDump `yaml:"statements,omitempty" json:"statements,omitempty"`
}

// Dump converts a node tree into its serializable form.
func Dump(n Node) (*NodeDump, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot dump nil node")
	}

	d := &NodeDump{
		Kind:   n.NodeType().String(),
		Line:   n.NodePos().Line,
		Column: n.NodePos().Column,
	}

	var err error
	switch v := n.(type) {
	case *Program:
		d.Line, d.Column = 0, 0
		d.Body = make([]*NodeDump, 0, len(v.Statements))
		for _, stmt := range v.Statements {
			child, err := Dump(stmt)
			if err != nil {
				return nil, err
			}
			d.Body = append(d.Body, child)
		}
	case *Identifier:
		d.Name = v.Name
	case *IntegerLiteral:
		value := v.Value
		d.Value = &value
	case *PrefixExpr:
		d.Operator = v.Op.Name()
		d.Operand, err = Dump(v.Operand)
	case *InfixExpr:
		d.Operator = v.Op.Name()
		if d.Left, err = Dump(v.Left); err != nil {
			return nil, err
		}
		d.Right, err = Dump(v.Right)
	case *LetStmt:
		d.Name = v.Name.Name
		d.Expr, err = Dump(v.Value)
	case *ReturnStmt:
		d.Expr, err = Dump(v.Value)
	case *ExprStmt:
		d.Expr, err = Dump(v.Expr)
	default:
		return nil, fmt.Errorf("unsupported node type %T", n)
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}
