package format

import (
	"github.com/kyleconroy/sqltree/ast"
)

// statement formats a single statement.
func (p *printer) statement(stmt ast.Statement) {
	if stmt == nil || !p.enter() {
		return
	}
	defer p.leave()

	switch s := stmt.(type) {
	case *ast.Query:
		p.query(s)
	case *ast.Insert:
		p.insert(s)
	case *ast.Update:
		p.update(s)
	case *ast.Delete:
		p.delete(s)
	case *ast.CreateTable:
		p.createTable(s)
	case *ast.CreateView:
		p.createView(s)
	case *ast.CreateIndex:
		p.createIndex(s)
	case *ast.CreateSchema:
		p.createSchema(s)
	case *ast.CreateSequence:
		p.createSequence(s)
	case *ast.CreateRole:
		p.createRole(s)
	case *ast.CreateTrigger:
		p.createTrigger(s)
	case *ast.AlterTable:
		p.alterTable(s)
	case *ast.Drop:
		p.drop(s)
	case *ast.Truncate:
		p.write("TRUNCATE TABLE ")
		p.objectName(s.Name)
	case *ast.CommentStmt:
		p.comment(s)
	case *ast.Declare:
		p.declare(s)
	case *ast.StartTransaction:
		p.startTransaction(s)
	case *ast.Commit:
		p.write("COMMIT")
		if s.Chain {
			p.write(" AND CHAIN")
		}
	case *ast.Rollback:
		p.write("ROLLBACK")
		if s.Chain {
			p.write(" AND CHAIN")
		}
		if s.Savepoint != nil {
			p.write(" TO SAVEPOINT ")
			p.ident(s.Savepoint)
		}
	case *ast.Savepoint:
		p.write("SAVEPOINT ")
		p.ident(s.Name)
	case *ast.Grant:
		p.grant(s)
	case *ast.Revoke:
		p.revoke(s)
	case *ast.Use:
		p.write("USE ")
		p.objectName(s.Name)
	case *ast.Explain:
		p.write("EXPLAIN ")
		if s.Analyze {
			p.write("ANALYZE ")
		}
		if s.Verbose {
			p.write("VERBOSE ")
		}
		p.statement(s.Statement)
	default:
		p.unsupported(stmt)
	}
}

// query formats a Query: optional WITH, the body, then the trailing clauses
// in declared order.
func (p *printer) query(q *ast.Query) {
	if q == nil || !p.enter() {
		return
	}
	defer p.leave()

	if q.With != nil {
		p.withClause(q.With)
		p.write(" ")
	}
	p.setExpr(q.Body)
	if len(q.OrderBy) > 0 {
		p.write(" ORDER BY ")
		p.orderByList(q.OrderBy)
	}
	if q.Limit != nil {
		p.write(" LIMIT ")
		p.expression(q.Limit)
	}
	if q.Offset != nil {
		p.write(" OFFSET ")
		p.expression(q.Offset.Value)
		switch q.Offset.Rows {
		case ast.OffsetNone:
		case ast.OffsetRow:
			p.write(" ROW")
		case ast.OffsetRowsKeyword:
			p.write(" ROWS")
		default:
			p.unsupported(q.Offset.Rows)
		}
	}
	if len(q.LimitBy) > 0 {
		p.write(" BY ")
		p.expressions(q.LimitBy, ", ")
	}
	if q.Fetch != nil {
		p.fetch(q.Fetch)
	}
	for _, lock := range q.Locks {
		p.lock(lock)
	}
	if q.For != nil {
		p.write(" FOR ")
		p.write(string(q.For.Mode))
	}
}

func (p *printer) withClause(w *ast.WithClause) {
	p.write("WITH ")
	if w.Recursive {
		p.write("RECURSIVE ")
	}
	p.join(len(w.CTEs), ", ", func(i int) { p.cte(w.CTEs[i]) })
}

func (p *printer) cte(c *ast.CTE) {
	p.tableAlias(c.Alias)
	p.write(" AS (")
	p.query(c.Query)
	p.write(")")
	if c.From != nil {
		p.write(" FROM ")
		p.ident(c.From)
	}
}

func (p *printer) fetch(f *ast.FetchClause) {
	p.write(" FETCH FIRST ")
	if f.Quantity != nil {
		p.expression(f.Quantity)
		p.write(" ")
		if f.Percent {
			p.write("PERCENT ")
		}
	}
	p.write("ROWS ")
	if f.WithTies {
		p.write("WITH TIES")
	} else {
		p.write("ONLY")
	}
}

func (p *printer) lock(l *ast.LockClause) {
	switch l.Type {
	case ast.LockUpdate:
		p.write(" FOR UPDATE")
	case ast.LockShare:
		p.write(" FOR SHARE")
	default:
		p.unsupported(l.Type)
	}
	if l.Of != nil {
		p.write(" OF ")
		p.objectName(l.Of)
	}
	switch l.NonBlock {
	case ast.BlockDefault:
	case ast.BlockNowait:
		p.write(" NOWAIT")
	case ast.BlockSkipLocked:
		p.write(" SKIP LOCKED")
	default:
		p.unsupported(l.NonBlock)
	}
}

// setExpr formats a query body.
func (p *printer) setExpr(body ast.SetExpr) {
	if body == nil || !p.enter() {
		return
	}
	defer p.leave()

	switch b := body.(type) {
	case *ast.Select:
		p.selectBody(b)
	case *ast.QueryBody:
		p.write("(")
		p.query(b.Query)
		p.write(")")
	case *ast.SetOperation:
		p.setExpr(b.Left)
		p.write(" ")
		p.write(string(b.Op))
		switch b.Quantifier {
		case ast.SetNone:
		case ast.SetAll:
			p.write(" ALL")
		case ast.SetDistinct:
			p.write(" DISTINCT")
		default:
			p.unsupported(b.Quantifier)
		}
		p.write(" ")
		p.setExpr(b.Right)
	case *ast.Values:
		p.write("VALUES ")
		p.join(len(b.Rows), ", ", func(i int) {
			p.write("(")
			p.expressions(b.Rows[i], ", ")
			p.write(")")
		})
	default:
		p.unsupported(body)
	}
}

func (p *printer) selectBody(s *ast.Select) {
	p.write("SELECT")
	if s.Distinct != nil {
		if len(s.Distinct.On) > 0 {
			p.write(" DISTINCT ON (")
			p.expressions(s.Distinct.On, ", ")
			p.write(")")
		} else {
			p.write(" DISTINCT")
		}
	}
	if s.Top != nil {
		p.write(" TOP ")
		p.expression(s.Top.Quantity)
		if s.Top.Percent {
			p.write(" PERCENT")
		}
		if s.Top.WithTies {
			p.write(" WITH TIES")
		}
	}
	p.write(" ")
	p.expressions(s.Projection, ", ")
	if s.Into != nil {
		p.write(" INTO ")
		if s.Into.Temporary {
			p.write("TEMPORARY ")
		}
		if s.Into.Unlogged {
			p.write("UNLOGGED ")
		}
		if s.Into.Table {
			p.write("TABLE ")
		}
		p.objectName(s.Into.Name)
	}
	if len(s.From) > 0 {
		p.write(" FROM ")
		p.join(len(s.From), ", ", func(i int) { p.tableWithJoins(s.From[i]) })
	}
	if s.Selection != nil {
		p.write(" WHERE ")
		p.expression(s.Selection)
	}
	if len(s.GroupBy) > 0 {
		p.write(" GROUP BY ")
		p.expressions(s.GroupBy, ", ")
	}
	if s.Having != nil {
		p.write(" HAVING ")
		p.expression(s.Having)
	}
	if len(s.NamedWindows) > 0 {
		p.write(" WINDOW ")
		p.join(len(s.NamedWindows), ", ", func(i int) {
			p.ident(s.NamedWindows[i].Name)
			p.write(" AS (")
			p.windowSpec(s.NamedWindows[i].Spec)
			p.write(")")
		})
	}
	if s.Qualify != nil {
		p.write(" QUALIFY ")
		p.expression(s.Qualify)
	}
}

// -----------------------------------------------------------------------------
// Table references

func (p *printer) tableWithJoins(t *ast.TableWithJoins) {
	p.tableFactor(t.Relation)
	for _, j := range t.Joins {
		p.joinClause(j)
	}
}

func (p *printer) tableFactor(factor ast.TableFactor) {
	if factor == nil || !p.enter() {
		return
	}
	defer p.leave()

	switch f := factor.(type) {
	case *ast.Table:
		p.objectName(f.Name)
		if len(f.Partitions) > 0 {
			p.write(" PARTITION (")
			p.idents(f.Partitions, ", ")
			p.write(")")
		}
		if f.Args != nil {
			p.write("(")
			p.expressions(f.Args, ", ")
			p.write(")")
		}
		if f.Alias != nil {
			p.write(" AS ")
			p.tableAlias(f.Alias)
		}
		if f.Version != nil {
			p.write(" FOR SYSTEM_TIME AS OF ")
			p.expression(f.Version.Expr)
		}
		if len(f.WithHints) > 0 {
			p.write(" WITH (")
			p.expressions(f.WithHints, ", ")
			p.write(")")
		}
	case *ast.Derived:
		if f.Lateral {
			p.write("LATERAL ")
		}
		p.write("(")
		p.query(f.Subquery)
		p.write(")")
		if f.Alias != nil {
			p.write(" AS ")
			p.tableAlias(f.Alias)
		}
	case *ast.NestedJoin:
		p.write("(")
		p.tableWithJoins(f.Inner)
		p.write(")")
		if f.Alias != nil {
			p.write(" AS ")
			p.tableAlias(f.Alias)
		}
	default:
		p.unsupported(factor)
	}
}

func (p *printer) tableAlias(a *ast.TableAlias) {
	p.ident(a.Name)
	if len(a.Columns) > 0 {
		p.write(" (")
		p.idents(a.Columns, ", ")
		p.write(")")
	}
}

// joinClause formats one join step. INNER is spelled as a bare JOIN so the
// output round-trips through parsers that normalize it away.
func (p *printer) joinClause(j *ast.Join) {
	if j.Operator == ast.JoinCross {
		p.write(" CROSS JOIN ")
		p.tableFactor(j.Relation)
		return
	}
	p.write(" ")
	if _, ok := j.Constraint.(*ast.NaturalConstraint); ok {
		p.write("NATURAL ")
	}
	switch j.Operator {
	case ast.JoinInner:
	case ast.JoinLeftOuter:
		p.write("LEFT ")
	case ast.JoinRightOuter:
		p.write("RIGHT ")
	case ast.JoinFullOuter:
		p.write("FULL ")
	default:
		p.unsupported(j.Operator)
	}
	p.write("JOIN ")
	p.tableFactor(j.Relation)
	switch c := j.Constraint.(type) {
	case nil, *ast.NaturalConstraint:
	case *ast.OnConstraint:
		p.write(" ON ")
		p.expression(c.Expr)
	case *ast.UsingConstraint:
		p.write(" USING (")
		p.idents(c.Columns, ", ")
		p.write(")")
	default:
		p.unsupported(j.Constraint)
	}
}

// -----------------------------------------------------------------------------
// DML

func (p *printer) insert(s *ast.Insert) {
	p.write("INSERT ")
	if s.Overwrite {
		p.write("OVERWRITE ")
	}
	p.write("INTO ")
	p.objectName(s.Table)
	if len(s.Columns) > 0 {
		p.write(" (")
		p.idents(s.Columns, ", ")
		p.write(")")
	}
	if s.Source != nil {
		p.write(" ")
		p.query(s.Source)
	} else {
		p.write(" DEFAULT VALUES")
	}
	if s.On != nil {
		p.write(" ON CONFLICT")
		if len(s.On.Target) > 0 {
			p.write(" (")
			p.idents(s.On.Target, ", ")
			p.write(")")
		}
		switch a := s.On.Action.(type) {
		case *ast.DoNothing:
			p.write(" DO NOTHING")
		case *ast.DoUpdate:
			p.write(" DO UPDATE SET ")
			p.assignments(a.Assignments)
			if a.Selection != nil {
				p.write(" WHERE ")
				p.expression(a.Selection)
			}
		default:
			p.unsupported(s.On.Action)
		}
	}
	p.returning(s.Returning)
}

func (p *printer) assignments(as []*ast.Assignment) {
	p.join(len(as), ", ", func(i int) {
		p.objectName(as[i].Target)
		p.write(" = ")
		p.expression(as[i].Value)
	})
}

func (p *printer) returning(exprs []ast.Expression) {
	if len(exprs) > 0 {
		p.write(" RETURNING ")
		p.expressions(exprs, ", ")
	}
}

func (p *printer) update(s *ast.Update) {
	p.write("UPDATE ")
	p.tableWithJoins(s.Table)
	p.write(" SET ")
	p.assignments(s.Assignments)
	if s.From != nil {
		p.write(" FROM ")
		p.tableWithJoins(s.From)
	}
	if s.Selection != nil {
		p.write(" WHERE ")
		p.expression(s.Selection)
	}
	p.returning(s.Returning)
}

func (p *printer) delete(s *ast.Delete) {
	p.write("DELETE FROM ")
	p.tableWithJoins(s.From)
	if s.Using != nil {
		p.write(" USING ")
		p.tableWithJoins(s.Using)
	}
	if s.Selection != nil {
		p.write(" WHERE ")
		p.expression(s.Selection)
	}
	p.returning(s.Returning)
}

func (p *printer) declare(s *ast.Declare) {
	p.write("DECLARE ")
	p.ident(s.Name)
	if s.Binary {
		p.write(" BINARY")
	}
	if s.Sensitive != nil {
		if *s.Sensitive {
			p.write(" SENSITIVE")
		} else {
			p.write(" INSENSITIVE")
		}
	}
	if s.Scroll != nil {
		if *s.Scroll {
			p.write(" SCROLL")
		} else {
			p.write(" NO SCROLL")
		}
	}
	p.write(" CURSOR")
	if s.Hold != nil {
		if *s.Hold {
			p.write(" WITH HOLD")
		} else {
			p.write(" WITHOUT HOLD")
		}
	}
	p.write(" FOR ")
	p.query(s.Query)
}

// -----------------------------------------------------------------------------
// Transactions

func (p *printer) startTransaction(s *ast.StartTransaction) {
	p.write("START TRANSACTION")
	if len(s.Modes) > 0 {
		p.write(" ")
		p.join(len(s.Modes), ", ", func(i int) { p.transactionMode(s.Modes[i]) })
	}
}

func (p *printer) transactionMode(mode ast.TransactionMode) {
	switch m := mode.(type) {
	case *ast.TransactionAccessMode:
		if m.ReadOnly {
			p.write("READ ONLY")
		} else {
			p.write("READ WRITE")
		}
	case *ast.TransactionIsolationLevel:
		p.write("ISOLATION LEVEL ")
		p.write(string(m.Level))
	default:
		p.unsupported(mode)
	}
}

// -----------------------------------------------------------------------------
// GRANT / REVOKE

func (p *printer) grant(s *ast.Grant) {
	p.write("GRANT ")
	p.privileges(s.Privileges)
	p.write(" ON ")
	p.grantObjects(s.Objects)
	p.write(" TO ")
	p.idents(s.Grantees, ", ")
	if s.WithGrantOption {
		p.write(" WITH GRANT OPTION")
	}
	if s.GrantedBy != nil {
		p.write(" GRANTED BY ")
		p.ident(s.GrantedBy)
	}
}

func (p *printer) revoke(s *ast.Revoke) {
	p.write("REVOKE ")
	p.privileges(s.Privileges)
	p.write(" ON ")
	p.grantObjects(s.Objects)
	p.write(" FROM ")
	p.idents(s.Grantees, ", ")
	if s.GrantedBy != nil {
		p.write(" GRANTED BY ")
		p.ident(s.GrantedBy)
	}
	if s.Cascade {
		p.write(" CASCADE")
	}
}

func (p *printer) privileges(priv ast.Privileges) {
	switch pr := priv.(type) {
	case *ast.AllPrivileges:
		p.write("ALL")
		if pr.WithPrivilegesKeyword {
			p.write(" PRIVILEGES")
		}
	case *ast.ActionPrivileges:
		p.join(len(pr.Actions), ", ", func(i int) {
			a := pr.Actions[i]
			p.write(string(a.Type))
			if len(a.Columns) > 0 {
				p.write(" (")
				p.idents(a.Columns, ", ")
				p.write(")")
			}
		})
	default:
		p.unsupported(priv)
	}
}

func (p *printer) grantObjects(objects ast.GrantObjects) {
	switch o := objects.(type) {
	case *ast.GrantTables:
		p.objectNames(o.Names, ", ")
	case *ast.GrantSchemas:
		p.write("SCHEMA ")
		p.objectNames(o.Names, ", ")
	case *ast.GrantSequences:
		p.write("SEQUENCE ")
		p.objectNames(o.Names, ", ")
	case *ast.GrantAllTablesInSchema:
		p.write("ALL TABLES IN SCHEMA ")
		p.objectNames(o.Schemas, ", ")
	case *ast.GrantAllSequencesInSchema:
		p.write("ALL SEQUENCES IN SCHEMA ")
		p.objectNames(o.Schemas, ", ")
	default:
		p.unsupported(objects)
	}
}
