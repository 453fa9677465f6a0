// Package format renders AST nodes back into SQL text.
//
// Serialization is total over well-formed trees: it appends to the sink and
// never reads it back. The two failure modes are structural, not syntactic:
// a node variant the engine does not know (ast.UnsupportedVariantError) and
// tree depth beyond the configured bound (ast.RecursionLimitError). On
// either error the sink's partial contents are invalid and must be
// discarded by the caller.
package format

import (
	"strconv"
	"strings"

	"github.com/kyleconroy/sqltree/ast"
)

// Format returns the SQL text for stmts, one per line, each terminated
// with a semicolon.
func Format(stmts []ast.Statement) (string, error) {
	var sb strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			sb.WriteString("\n")
		}
		if err := Statement(&sb, stmt); err != nil {
			return "", err
		}
		sb.WriteString(";")
	}
	return sb.String(), nil
}

// Statement writes the SQL text for a single statement to sb.
func Statement(sb *strings.Builder, stmt ast.Statement) error {
	p := &printer{sb: sb, maxDepth: ast.DefaultMaxDepth}
	p.statement(stmt)
	return p.err
}

// Expression writes the SQL text for an expression to sb.
func Expression(sb *strings.Builder, expr ast.Expression) error {
	p := &printer{sb: sb, maxDepth: ast.DefaultMaxDepth}
	p.expression(expr)
	return p.err
}

// Node writes the SQL text for any AST node to sb. It accepts statements,
// expressions, table references, and the standalone clause kinds.
func Node(sb *strings.Builder, node ast.Node) error {
	return NodeDepth(sb, node, ast.DefaultMaxDepth)
}

// NodeDepth is Node with an explicit recursion bound.
func NodeDepth(sb *strings.Builder, node ast.Node, maxDepth int) error {
	p := &printer{sb: sb, maxDepth: maxDepth}
	p.node(node)
	return p.err
}

// printer carries the sink, the depth budget, and the first error raised.
// Every write method no-ops once an error is set, so per-kind formatting
// code stays free of error plumbing.
type printer struct {
	sb       *strings.Builder
	depth    int
	maxDepth int
	err      error
}

func (p *printer) write(s string) {
	if p.err == nil {
		p.sb.WriteString(s)
	}
}

func (p *printer) unsupported(node interface{}) {
	if p.err == nil {
		p.err = &ast.UnsupportedVariantError{Node: node}
	}
}

func (p *printer) enter() bool {
	if p.err != nil {
		return false
	}
	if p.depth >= p.maxDepth {
		p.err = &ast.RecursionLimitError{Limit: p.maxDepth}
		return false
	}
	p.depth++
	return true
}

func (p *printer) leave() {
	p.depth--
}

// join is the one list primitive: n items rendered by item, separated by
// sep. Every delimited sequence in the engine goes through it so that
// separator handling stays in one place.
func (p *printer) join(n int, sep string, item func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			p.write(sep)
		}
		item(i)
	}
}

func (p *printer) expressions(exprs []ast.Expression, sep string) {
	p.join(len(exprs), sep, func(i int) { p.expression(exprs[i]) })
}

func (p *printer) idents(ids []*ast.Ident, sep string) {
	p.join(len(ids), sep, func(i int) { p.ident(ids[i]) })
}

func (p *printer) objectNames(names []*ast.ObjectName, sep string) {
	p.join(len(names), sep, func(i int) { p.objectName(names[i]) })
}

// node dispatches any node kind that can stand alone as serialized text.
func (p *printer) node(node ast.Node) {
	switch n := node.(type) {
	case ast.Statement:
		p.statement(n)
	case ast.Expression:
		p.expression(n)
	case ast.TableFactor:
		p.tableFactor(n)
	case *ast.Ident:
		p.ident(n)
	case *ast.ObjectName:
		p.objectName(n)
	case *ast.OrderByExpr:
		p.orderByExpr(n)
	case *ast.DataType:
		p.dataType(n)
	case *ast.TableWithJoins:
		p.tableWithJoins(n)
	case *ast.ColumnDef:
		p.columnDef(n)
	case ast.TableConstraint:
		p.tableConstraint(n)
	default:
		p.unsupported(node)
	}
}

// ident writes an identifier in its stored quote style. Escaping doubles
// the closing delimiter character.
func (p *printer) ident(id *ast.Ident) {
	switch id.Quote {
	case ast.QuoteNone:
		p.write(id.Value)
	case ast.QuoteDouble:
		p.delimited(id.Value, `"`, `"`)
	case ast.QuoteSingle:
		p.delimited(id.Value, `'`, `'`)
	case ast.QuoteBacktick:
		p.delimited(id.Value, "`", "`")
	case ast.QuoteBracket:
		p.delimited(id.Value, "[", "]")
	default:
		p.unsupported(id.Quote)
	}
}

func (p *printer) delimited(value, open, close string) {
	p.write(open)
	p.write(strings.ReplaceAll(value, close, close+close))
	p.write(close)
}

func (p *printer) objectName(name *ast.ObjectName) {
	p.join(len(name.Parts), ".", func(i int) { p.ident(name.Parts[i]) })
}

func (p *printer) uint(v uint64) {
	p.write(strconv.FormatUint(v, 10))
}
