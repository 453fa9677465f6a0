package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyleconroy/sqltree/ast"
	"github.com/kyleconroy/sqltree/format"
)

func stmtSQL(t *testing.T, s ast.Statement) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, format.Statement(&sb, s))
	return sb.String()
}

func selectOf(projection ...ast.Expression) *ast.Select {
	return &ast.Select{Projection: projection}
}

func queryOf(body ast.SetExpr) *ast.Query {
	return &ast.Query{Body: body}
}

func from(name ...string) []*ast.TableWithJoins {
	return []*ast.TableWithJoins{
		{Relation: &ast.Table{Name: ast.MustObjectName(name...)}},
	}
}

func TestSelectQuery(t *testing.T) {
	sel := selectOf(col("a"), col("b"))
	sel.From = from("t")
	sel.Selection = &ast.BinaryExpr{Left: col("x"), Op: ast.OpEq, Right: num(1)}
	sel.GroupBy = []ast.Expression{col("a")}
	sel.Having = &ast.BinaryExpr{
		Left:  &ast.FunctionCall{Name: ast.MustObjectName("count"), Args: []ast.Expression{&ast.Wildcard{}}},
		Op:    ast.OpGt,
		Right: num(1),
	}

	q := queryOf(sel)
	q.OrderBy = []*ast.OrderByExpr{{Expr: col("a"), Asc: boolPtr(false), NullsFirst: boolPtr(true)}}
	q.Limit = num(10)
	q.Offset = &ast.OffsetClause{Value: num(5), Rows: ast.OffsetRowsKeyword}

	assert.Equal(t,
		"SELECT a, b FROM t WHERE x = 1 GROUP BY a HAVING count(*) > 1 ORDER BY a DESC NULLS FIRST LIMIT 10 OFFSET 5 ROWS",
		stmtSQL(t, q))
}

func TestSelectModifiers(t *testing.T) {
	distinct := selectOf(col("a"))
	distinct.Distinct = &ast.Distinct{}
	assert.Equal(t, "SELECT DISTINCT a", stmtSQL(t, queryOf(distinct)))

	distinctOn := selectOf(col("a"))
	distinctOn.Distinct = &ast.Distinct{On: []ast.Expression{col("b"), col("c")}}
	assert.Equal(t, "SELECT DISTINCT ON (b, c) a", stmtSQL(t, queryOf(distinctOn)))

	top := selectOf(col("a"))
	top.Top = &ast.TopClause{Quantity: num(5), Percent: true, WithTies: true}
	top.From = from("t")
	assert.Equal(t, "SELECT TOP 5 PERCENT WITH TIES a FROM t", stmtSQL(t, queryOf(top)))

	into := selectOf(col("a"))
	into.Into = &ast.SelectInto{Temporary: true, Table: true, Name: ast.MustObjectName("tmp")}
	into.From = from("t")
	assert.Equal(t, "SELECT a INTO TEMPORARY TABLE tmp FROM t", stmtSQL(t, queryOf(into)))

	qualify := selectOf(col("a"))
	qualify.From = from("t")
	qualify.Qualify = &ast.BinaryExpr{Left: col("rn"), Op: ast.OpEq, Right: num(1)}
	assert.Equal(t, "SELECT a FROM t QUALIFY rn = 1", stmtSQL(t, queryOf(qualify)))
}

func TestWithClause(t *testing.T) {
	cte := &ast.CTE{
		Alias: &ast.TableAlias{Name: ast.NewIdent("recent")},
		Query: queryOf(selectOf(num(1))),
	}
	q := queryOf(selectOf(col("a")))
	q.With = &ast.WithClause{CTEs: []*ast.CTE{cte}}
	assert.Equal(t, "WITH recent AS (SELECT 1) SELECT a", stmtSQL(t, q))

	q.With.Recursive = true
	assert.Equal(t, "WITH RECURSIVE recent AS (SELECT 1) SELECT a", stmtSQL(t, q))
}

func TestSetOperations(t *testing.T) {
	left := selectOf(col("a"))
	right := selectOf(col("b"))
	q := queryOf(&ast.SetOperation{Op: ast.Union, Quantifier: ast.SetAll, Left: left, Right: right})
	assert.Equal(t, "SELECT a UNION ALL SELECT b", stmtSQL(t, q))

	q = queryOf(&ast.SetOperation{Op: ast.Except, Left: left, Right: right})
	assert.Equal(t, "SELECT a EXCEPT SELECT b", stmtSQL(t, q))

	q = queryOf(&ast.SetOperation{Op: ast.Intersect, Quantifier: ast.SetDistinct, Left: left, Right: right})
	assert.Equal(t, "SELECT a INTERSECT DISTINCT SELECT b", stmtSQL(t, q))
}

func TestJoins(t *testing.T) {
	base := &ast.Table{Name: ast.MustObjectName("orders")}
	joined := &ast.Table{Name: ast.MustObjectName("users")}

	onJoin := &ast.TableWithJoins{
		Relation: base,
		Joins: []*ast.Join{{
			Relation: joined,
			Operator: ast.JoinLeftOuter,
			Constraint: &ast.OnConstraint{
				Expr: &ast.BinaryExpr{
					Left:  &ast.CompoundIdentifierExpr{Name: ast.MustObjectName("orders", "user_id")},
					Op:    ast.OpEq,
					Right: &ast.CompoundIdentifierExpr{Name: ast.MustObjectName("users", "id")},
				},
			},
		}},
	}
	sel := selectOf(&ast.Wildcard{})
	sel.From = []*ast.TableWithJoins{onJoin}
	assert.Equal(t,
		"SELECT * FROM orders LEFT JOIN users ON orders.user_id = users.id",
		stmtSQL(t, queryOf(sel)))

	usingJoin := &ast.TableWithJoins{
		Relation: base,
		Joins: []*ast.Join{{
			Relation:   joined,
			Operator:   ast.JoinInner,
			Constraint: &ast.UsingConstraint{Columns: []*ast.Ident{ast.NewIdent("user_id")}},
		}},
	}
	sel.From = []*ast.TableWithJoins{usingJoin}
	assert.Equal(t, "SELECT * FROM orders JOIN users USING (user_id)", stmtSQL(t, queryOf(sel)))

	crossJoin := &ast.TableWithJoins{
		Relation: base,
		Joins:    []*ast.Join{{Relation: joined, Operator: ast.JoinCross}},
	}
	sel.From = []*ast.TableWithJoins{crossJoin}
	assert.Equal(t, "SELECT * FROM orders CROSS JOIN users", stmtSQL(t, queryOf(sel)))

	naturalJoin := &ast.TableWithJoins{
		Relation: base,
		Joins: []*ast.Join{{
			Relation:   joined,
			Operator:   ast.JoinFullOuter,
			Constraint: &ast.NaturalConstraint{},
		}},
	}
	sel.From = []*ast.TableWithJoins{naturalJoin}
	assert.Equal(t, "SELECT * FROM orders NATURAL FULL JOIN users", stmtSQL(t, queryOf(sel)))
}

func TestTableFactors(t *testing.T) {
	aliased := &ast.Table{
		Name:  ast.MustObjectName("public", "users"),
		Alias: &ast.TableAlias{Name: ast.NewIdent("u")},
	}
	sel := selectOf(&ast.Wildcard{})
	sel.From = []*ast.TableWithJoins{{Relation: aliased}}
	assert.Equal(t, "SELECT * FROM public.users AS u", stmtSQL(t, queryOf(sel)))

	versioned := &ast.Table{
		Name:    ast.MustObjectName("t"),
		Version: &ast.TableVersion{Expr: str("2024-01-01")},
	}
	sel.From = []*ast.TableWithJoins{{Relation: versioned}}
	assert.Equal(t, "SELECT * FROM t FOR SYSTEM_TIME AS OF '2024-01-01'", stmtSQL(t, queryOf(sel)))

	derived := &ast.Derived{
		Lateral:  true,
		Subquery: queryOf(selectOf(num(1))),
		Alias:    &ast.TableAlias{Name: ast.NewIdent("d"), Columns: []*ast.Ident{ast.NewIdent("x")}},
	}
	sel.From = []*ast.TableWithJoins{{Relation: derived}}
	assert.Equal(t, "SELECT * FROM LATERAL (SELECT 1) AS d (x)", stmtSQL(t, queryOf(sel)))

	tableFn := &ast.Table{
		Name: ast.MustObjectName("generate_series"),
		Args: []ast.Expression{num(1), num(10)},
	}
	sel.From = []*ast.TableWithJoins{{Relation: tableFn}}
	assert.Equal(t, "SELECT * FROM generate_series(1, 10)", stmtSQL(t, queryOf(sel)))
}

func TestQueryTrailingClauses(t *testing.T) {
	q := queryOf(selectOf(col("a")))
	q.Fetch = &ast.FetchClause{Quantity: num(3)}
	assert.Equal(t, "SELECT a FETCH FIRST 3 ROWS ONLY", stmtSQL(t, q))

	q.Fetch = &ast.FetchClause{Quantity: num(50), Percent: true, WithTies: true}
	assert.Equal(t, "SELECT a FETCH FIRST 50 PERCENT ROWS WITH TIES", stmtSQL(t, q))

	q = queryOf(selectOf(col("a")))
	q.Locks = []*ast.LockClause{
		{Type: ast.LockUpdate, NonBlock: ast.BlockNowait},
		{Type: ast.LockShare, Of: ast.MustObjectName("t"), NonBlock: ast.BlockSkipLocked},
	}
	assert.Equal(t, "SELECT a FOR UPDATE NOWAIT FOR SHARE OF t SKIP LOCKED", stmtSQL(t, q))

	q = queryOf(selectOf(col("a")))
	q.Limit = num(10)
	q.LimitBy = []ast.Expression{col("grp")}
	assert.Equal(t, "SELECT a LIMIT 10 BY grp", stmtSQL(t, q))

	q = queryOf(selectOf(col("a")))
	q.For = &ast.ForClause{Mode: ast.ForJSONAuto}
	assert.Equal(t, "SELECT a FOR JSON AUTO", stmtSQL(t, q))
}

func TestInsert(t *testing.T) {
	values := &ast.Values{Rows: [][]ast.Expression{
		{num(1), str("a")},
		{num(2), str("b")},
	}}
	ins := &ast.Insert{
		Table:   ast.MustObjectName("t"),
		Columns: []*ast.Ident{ast.NewIdent("id"), ast.NewIdent("name")},
		Source:  queryOf(values),
	}
	assert.Equal(t, "INSERT INTO t (id, name) VALUES (1, 'a'), (2, 'b')", stmtSQL(t, ins))

	ins.On = &ast.OnConflict{
		Target: []*ast.Ident{ast.NewIdent("id")},
		Action: &ast.DoNothing{},
	}
	assert.Equal(t,
		"INSERT INTO t (id, name) VALUES (1, 'a'), (2, 'b') ON CONFLICT (id) DO NOTHING",
		stmtSQL(t, ins))

	ins.On.Action = &ast.DoUpdate{
		Assignments: []*ast.Assignment{{Target: ast.MustObjectName("name"), Value: str("c")}},
		Selection:   &ast.BinaryExpr{Left: col("id"), Op: ast.OpGt, Right: num(0)},
	}
	ins.Returning = []ast.Expression{col("id")}
	assert.Equal(t,
		"INSERT INTO t (id, name) VALUES (1, 'a'), (2, 'b') ON CONFLICT (id) DO UPDATE SET name = 'c' WHERE id > 0 RETURNING id",
		stmtSQL(t, ins))

	defaults := &ast.Insert{Table: ast.MustObjectName("t")}
	assert.Equal(t, "INSERT INTO t DEFAULT VALUES", stmtSQL(t, defaults))
}

func TestUpdateDelete(t *testing.T) {
	upd := &ast.Update{
		Table: &ast.TableWithJoins{Relation: &ast.Table{Name: ast.MustObjectName("t")}},
		Assignments: []*ast.Assignment{
			{Target: ast.MustObjectName("a"), Value: num(1)},
			{Target: ast.MustObjectName("b"), Value: num(2)},
		},
		Selection: &ast.BinaryExpr{Left: col("id"), Op: ast.OpEq, Right: num(9)},
	}
	assert.Equal(t, "UPDATE t SET a = 1, b = 2 WHERE id = 9", stmtSQL(t, upd))

	del := &ast.Delete{
		From:      &ast.TableWithJoins{Relation: &ast.Table{Name: ast.MustObjectName("t")}},
		Using:     &ast.TableWithJoins{Relation: &ast.Table{Name: ast.MustObjectName("u")}},
		Selection: &ast.BinaryExpr{Left: col("t.id"), Op: ast.OpEq, Right: col("u.id")},
		Returning: []ast.Expression{&ast.Wildcard{}},
	}
	assert.Equal(t, "DELETE FROM t USING u WHERE t.id = u.id RETURNING *", stmtSQL(t, del))
}

func TestDeclare(t *testing.T) {
	d := &ast.Declare{
		Name:      ast.NewIdent("c"),
		Binary:    true,
		Sensitive: boolPtr(false),
		Scroll:    boolPtr(true),
		Hold:      boolPtr(true),
		Query:     queryOf(selectOf(num(1))),
	}
	assert.Equal(t, "DECLARE c BINARY INSENSITIVE SCROLL CURSOR WITH HOLD FOR SELECT 1", stmtSQL(t, d))

	plain := &ast.Declare{Name: ast.NewIdent("c"), Query: queryOf(selectOf(num(1)))}
	assert.Equal(t, "DECLARE c CURSOR FOR SELECT 1", stmtSQL(t, plain))
}

func TestTransactions(t *testing.T) {
	start := &ast.StartTransaction{Modes: []ast.TransactionMode{
		&ast.TransactionAccessMode{ReadOnly: true},
		&ast.TransactionIsolationLevel{Level: ast.Serializable},
	}}
	assert.Equal(t, "START TRANSACTION READ ONLY, ISOLATION LEVEL SERIALIZABLE", stmtSQL(t, start))

	assert.Equal(t, "START TRANSACTION", stmtSQL(t, &ast.StartTransaction{}))
	assert.Equal(t, "COMMIT", stmtSQL(t, &ast.Commit{}))
	assert.Equal(t, "COMMIT AND CHAIN", stmtSQL(t, &ast.Commit{Chain: true}))
	assert.Equal(t, "ROLLBACK", stmtSQL(t, &ast.Rollback{}))
	assert.Equal(t, "ROLLBACK TO SAVEPOINT sp", stmtSQL(t, &ast.Rollback{Savepoint: ast.NewIdent("sp")}))
	assert.Equal(t, "SAVEPOINT sp", stmtSQL(t, &ast.Savepoint{Name: ast.NewIdent("sp")}))
}

func TestGrantRevoke(t *testing.T) {
	grant := &ast.Grant{
		Privileges: &ast.ActionPrivileges{Actions: []*ast.PrivilegeAction{
			{Type: ast.PrivilegeSelect, Columns: []*ast.Ident{ast.NewIdent("a"), ast.NewIdent("b")}},
			{Type: ast.PrivilegeUsage},
		}},
		Objects:         &ast.GrantSchemas{Names: []*ast.ObjectName{ast.MustObjectName("s")}},
		Grantees:        []*ast.Ident{ast.NewIdent("alice"), ast.NewIdent("bob")},
		WithGrantOption: true,
	}
	assert.Equal(t, "GRANT SELECT (a, b), USAGE ON SCHEMA s TO alice, bob WITH GRANT OPTION", stmtSQL(t, grant))

	all := &ast.Grant{
		Privileges: &ast.AllPrivileges{WithPrivilegesKeyword: true},
		Objects: &ast.GrantAllTablesInSchema{
			Schemas: []*ast.ObjectName{ast.MustObjectName("public")},
		},
		Grantees: []*ast.Ident{ast.NewIdent("carol")},
	}
	assert.Equal(t, "GRANT ALL PRIVILEGES ON ALL TABLES IN SCHEMA public TO carol", stmtSQL(t, all))

	revoke := &ast.Revoke{
		Privileges: &ast.ActionPrivileges{Actions: []*ast.PrivilegeAction{{Type: ast.PrivilegeInsert}}},
		Objects:    &ast.GrantTables{Names: []*ast.ObjectName{ast.MustObjectName("t")}},
		Grantees:   []*ast.Ident{ast.NewIdent("alice")},
		GrantedBy:  ast.NewIdent("admin"),
		Cascade:    true,
	}
	assert.Equal(t, "REVOKE INSERT ON t FROM alice GRANTED BY admin CASCADE", stmtSQL(t, revoke))
}

func TestMiscStatements(t *testing.T) {
	assert.Equal(t, "USE analytics", stmtSQL(t, &ast.Use{Name: ast.MustObjectName("analytics")}))

	explain := &ast.Explain{
		Analyze:   true,
		Statement: queryOf(selectOf(num(1))),
	}
	assert.Equal(t, "EXPLAIN ANALYZE SELECT 1", stmtSQL(t, explain))

	assert.Equal(t, "TRUNCATE TABLE t", stmtSQL(t, &ast.Truncate{Name: ast.MustObjectName("t")}))
}

func TestFormatJoinsStatements(t *testing.T) {
	out, err := format.Format([]ast.Statement{
		queryOf(selectOf(num(1))),
		&ast.Commit{},
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\nCOMMIT;", out)
}
