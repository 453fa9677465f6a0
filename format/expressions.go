package format

import (
	"fmt"

	"github.com/kyleconroy/sqltree/ast"
)

// expression formats an expression.
func (p *printer) expression(expr ast.Expression) {
	if expr == nil || !p.enter() {
		return
	}
	defer p.leave()

	switch e := expr.(type) {
	case *ast.Literal:
		p.literal(e)
	case *ast.IdentifierExpr:
		p.ident(e.Ident)
	case *ast.CompoundIdentifierExpr:
		p.objectName(e.Name)
	case *ast.Wildcard:
		p.write("*")
	case *ast.QualifiedWildcard:
		p.objectName(e.Name)
		p.write(".*")
	case *ast.BinaryExpr:
		p.expression(e.Left)
		p.write(" ")
		p.write(string(e.Op))
		p.write(" ")
		p.expression(e.Right)
	case *ast.UnaryExpr:
		p.write(string(e.Op))
		if e.Op == ast.OpNot {
			p.write(" ")
		}
		p.expression(e.Operand)
	case *ast.IsNullExpr:
		p.expression(e.Expr)
		if e.Negated {
			p.write(" IS NOT NULL")
		} else {
			p.write(" IS NULL")
		}
	case *ast.IsDistinctFromExpr:
		p.expression(e.Left)
		if e.Negated {
			p.write(" IS NOT DISTINCT FROM ")
		} else {
			p.write(" IS DISTINCT FROM ")
		}
		p.expression(e.Right)
	case *ast.InListExpr:
		p.expression(e.Expr)
		if e.Negated {
			p.write(" NOT")
		}
		p.write(" IN (")
		p.expressions(e.List, ", ")
		p.write(")")
	case *ast.InSubqueryExpr:
		p.expression(e.Expr)
		if e.Negated {
			p.write(" NOT")
		}
		p.write(" IN (")
		p.query(e.Subquery)
		p.write(")")
	case *ast.BetweenExpr:
		p.expression(e.Expr)
		if e.Negated {
			p.write(" NOT")
		}
		p.write(" BETWEEN ")
		p.expression(e.Low)
		p.write(" AND ")
		p.expression(e.High)
	case *ast.LikeExpr:
		p.expression(e.Expr)
		if e.Negated {
			p.write(" NOT")
		}
		if e.CaseInsensitive {
			p.write(" ILIKE ")
		} else {
			p.write(" LIKE ")
		}
		p.expression(e.Pattern)
		if e.Escape != nil {
			p.write(" ESCAPE ")
			p.expression(e.Escape)
		}
	case *ast.CastExpr:
		if e.Try {
			p.write("TRY_CAST(")
		} else {
			p.write("CAST(")
		}
		p.expression(e.Expr)
		p.write(" AS ")
		p.dataType(e.Type)
		p.write(")")
	case *ast.ExtractExpr:
		p.write("EXTRACT(")
		p.write(string(e.Field))
		p.write(" FROM ")
		p.expression(e.Expr)
		p.write(")")
	case *ast.CollateExpr:
		p.expression(e.Expr)
		p.write(" COLLATE ")
		p.objectName(e.Collation)
	case *ast.NestedExpr:
		p.write("(")
		p.expression(e.Expr)
		p.write(")")
	case *ast.TupleExpr:
		p.write("(")
		p.expressions(e.Exprs, ", ")
		p.write(")")
	case *ast.ArrayExpr:
		p.write("[")
		p.expressions(e.Exprs, ", ")
		p.write("]")
	case *ast.CaseExpr:
		p.write("CASE")
		if e.Operand != nil {
			p.write(" ")
			p.expression(e.Operand)
		}
		for _, when := range e.Whens {
			p.write(" WHEN ")
			p.expression(when.Condition)
			p.write(" THEN ")
			p.expression(when.Result)
		}
		if e.Else != nil {
			p.write(" ELSE ")
			p.expression(e.Else)
		}
		p.write(" END")
	case *ast.ExistsExpr:
		if e.Negated {
			p.write("NOT ")
		}
		p.write("EXISTS (")
		p.query(e.Subquery)
		p.write(")")
	case *ast.SubqueryExpr:
		p.write("(")
		p.query(e.Subquery)
		p.write(")")
	case *ast.FunctionCall:
		p.functionCall(e)
	case *ast.IntervalExpr:
		p.write("INTERVAL ")
		p.expression(e.Value)
		if e.Unit != "" {
			p.write(" ")
			p.write(string(e.Unit))
		}
	case *ast.AliasedExpr:
		p.expression(e.Expr)
		p.write(" AS ")
		p.ident(e.Alias)
	default:
		p.unsupported(expr)
	}
}

// literal formats a literal value, exhaustively over LiteralType.
func (p *printer) literal(lit *ast.Literal) {
	switch lit.Type {
	case ast.LiteralString:
		if s, ok := lit.Value.(string); ok {
			p.delimited(s, "'", "'")
		} else {
			p.unsupported(lit.Value)
		}
	case ast.LiteralNationalString:
		if s, ok := lit.Value.(string); ok {
			p.write("N")
			p.delimited(s, "'", "'")
		} else {
			p.unsupported(lit.Value)
		}
	case ast.LiteralHexString:
		if s, ok := lit.Value.(string); ok {
			p.write("X'")
			p.write(s)
			p.write("'")
		} else {
			p.unsupported(lit.Value)
		}
	case ast.LiteralInteger:
		switch v := lit.Value.(type) {
		case int64:
			p.write(fmt.Sprintf("%d", v))
		case uint64:
			p.write(fmt.Sprintf("%d", v))
		case int:
			p.write(fmt.Sprintf("%d", v))
		default:
			p.unsupported(lit.Value)
		}
	case ast.LiteralFloat:
		p.write(fmt.Sprintf("%v", lit.Value))
	case ast.LiteralBoolean:
		switch b := lit.Value.(type) {
		case bool:
			if b {
				p.write("true")
			} else {
				p.write("false")
			}
		default:
			p.unsupported(lit.Value)
		}
	case ast.LiteralNull:
		p.write("NULL")
	default:
		p.unsupported(lit)
	}
}

func (p *printer) functionCall(fn *ast.FunctionCall) {
	p.objectName(fn.Name)
	p.write("(")
	if fn.Distinct {
		p.write("DISTINCT ")
	}
	p.expressions(fn.Args, ", ")
	p.write(")")
	if fn.Filter != nil {
		p.write(" FILTER (WHERE ")
		p.expression(fn.Filter)
		p.write(")")
	}
	if fn.Over != nil {
		p.write(" OVER (")
		p.windowSpec(fn.Over)
		p.write(")")
	}
}

func (p *printer) windowSpec(spec *ast.WindowSpec) {
	var segments []func()
	if len(spec.PartitionBy) > 0 {
		segments = append(segments, func() {
			p.write("PARTITION BY ")
			p.expressions(spec.PartitionBy, ", ")
		})
	}
	if len(spec.OrderBy) > 0 {
		segments = append(segments, func() {
			p.write("ORDER BY ")
			p.orderByList(spec.OrderBy)
		})
	}
	if spec.Frame != nil {
		segments = append(segments, func() { p.windowFrame(spec.Frame) })
	}
	p.join(len(segments), " ", func(i int) { segments[i]() })
}

func (p *printer) windowFrame(frame *ast.WindowFrame) {
	p.write(string(frame.Units))
	p.write(" ")
	if frame.End != nil {
		p.write("BETWEEN ")
		p.frameBound(frame.Start)
		p.write(" AND ")
		p.frameBound(frame.End)
	} else {
		p.frameBound(frame.Start)
	}
}

func (p *printer) frameBound(bound *ast.FrameBound) {
	switch bound.Type {
	case ast.BoundCurrentRow:
		p.write("CURRENT ROW")
	case ast.BoundUnboundedPreceding:
		p.write("UNBOUNDED PRECEDING")
	case ast.BoundUnboundedFollowing:
		p.write("UNBOUNDED FOLLOWING")
	case ast.BoundPreceding:
		p.expression(bound.Offset)
		p.write(" PRECEDING")
	case ast.BoundFollowing:
		p.expression(bound.Offset)
		p.write(" FOLLOWING")
	default:
		p.unsupported(bound)
	}
}

// orderByExpr formats one ORDER BY element. Unset tristates contribute no
// text at all.
func (p *printer) orderByExpr(o *ast.OrderByExpr) {
	p.expression(o.Expr)
	if o.Asc != nil {
		if *o.Asc {
			p.write(" ASC")
		} else {
			p.write(" DESC")
		}
	}
	if o.NullsFirst != nil {
		if *o.NullsFirst {
			p.write(" NULLS FIRST")
		} else {
			p.write(" NULLS LAST")
		}
	}
}

func (p *printer) orderByList(items []*ast.OrderByExpr) {
	p.join(len(items), ", ", func(i int) { p.orderByExpr(items[i]) })
}

// dataType formats a type reference, exhaustively over DataTypeKind.
func (p *printer) dataType(t *ast.DataType) {
	if t == nil {
		return
	}
	switch t.Kind {
	case ast.TypeChar, ast.TypeVarchar, ast.TypeBinary, ast.TypeVarbinary, ast.TypeFloat:
		p.write(string(t.Kind))
		if t.Length != nil {
			p.write("(")
			p.uint(*t.Length)
			p.write(")")
		}
	case ast.TypeNumeric, ast.TypeDecimal:
		p.write(string(t.Kind))
		if t.Precision != nil {
			p.write("(")
			p.uint(*t.Precision)
			if t.Scale != nil {
				p.write(", ")
				p.uint(*t.Scale)
			}
			p.write(")")
		}
	case ast.TypeTime, ast.TypeTimestamp:
		p.write(string(t.Kind))
		if t.Timezone != nil {
			if *t.Timezone {
				p.write(" WITH TIME ZONE")
			} else {
				p.write(" WITHOUT TIME ZONE")
			}
		}
	case ast.TypeArray:
		p.dataType(t.Elem)
		p.write("[]")
	case ast.TypeCustom:
		p.objectName(t.Name)
	case ast.TypeText, ast.TypeSmallInt, ast.TypeInt, ast.TypeBigInt,
		ast.TypeReal, ast.TypeDouble, ast.TypeBoolean, ast.TypeDate,
		ast.TypeInterval, ast.TypeJSON, ast.TypeUUID, ast.TypeBytea:
		p.write(string(t.Kind))
	default:
		p.unsupported(t)
	}
}
