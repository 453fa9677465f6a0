package ast

import (
	"fmt"
	"strings"
)

// Dump returns an indented description of the statements, expressions, and
// table references in a tree, one node kind per line in visit order. It is
// a debugging aid; the output format is not stable.
func Dump(node Node) string {
	d := &dumpVisitor{}
	if err := Walk(d, node); err != nil {
		fmt.Fprintf(&d.sb, "! %v\n", err)
	}
	return d.sb.String()
}

type dumpVisitor struct {
	BaseVisitor
	sb    strings.Builder
	depth int
}

func (d *dumpVisitor) line(label string) {
	d.sb.WriteString(strings.Repeat(" ", d.depth))
	d.sb.WriteString(label)
	d.sb.WriteString("\n")
}

func kindName(node Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}

func (d *dumpVisitor) PreVisitStatement(stmt Statement) Signal {
	d.line(kindName(stmt))
	d.depth++
	return Continue
}

func (d *dumpVisitor) PostVisitStatement(Statement) { d.depth-- }

func (d *dumpVisitor) PreVisitExpression(expr Expression) Signal {
	d.line(kindName(expr))
	d.depth++
	return Continue
}

func (d *dumpVisitor) PostVisitExpression(Expression) { d.depth-- }

func (d *dumpVisitor) PreVisitTableFactor(factor TableFactor) Signal {
	d.line(kindName(factor))
	d.depth++
	return Continue
}

func (d *dumpVisitor) PostVisitTableFactor(TableFactor) { d.depth-- }

func (d *dumpVisitor) PreVisitRelation(name *ObjectName) Signal {
	d.line("Relation " + name.Unquoted())
	d.depth++
	return Continue
}

func (d *dumpVisitor) PostVisitRelation(*ObjectName) { d.depth-- }
