package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyleconroy/sqltree/ast"
)

func uintPtr(v uint64) *uint64 { return &v }

func strPtr(s string) *string { return &s }

func TestCreateTable(t *testing.T) {
	ct := &ast.CreateTable{
		IfNotExists: true,
		Name:        ast.MustObjectName("public", "users"),
		Columns: []*ast.ColumnDef{
			{
				Name: ast.NewIdent("id"),
				Type: &ast.DataType{Kind: ast.TypeBigInt},
				Options: []*ast.ColumnOptionDef{
					{Option: &ast.ColumnUnique{IsPrimary: true}},
				},
			},
			{
				Name: ast.NewIdent("email"),
				Type: &ast.DataType{Kind: ast.TypeVarchar, Length: uintPtr(255)},
				Options: []*ast.ColumnOptionDef{
					{Option: &ast.ColumnNotNull{}},
					{Name: ast.NewIdent("email_unique"), Option: &ast.ColumnUnique{}},
				},
			},
			{
				Name: ast.NewIdent("balance"),
				Type: &ast.DataType{Kind: ast.TypeNumeric, Precision: uintPtr(10), Scale: uintPtr(2)},
				Options: []*ast.ColumnOptionDef{
					{Option: &ast.ColumnDefault{Expr: num(0)}},
				},
			},
		},
		Constraints: []ast.TableConstraint{
			&ast.ForeignKeyConstraint{
				Columns:         []*ast.Ident{ast.NewIdent("org_id")},
				ForeignTable:    ast.MustObjectName("orgs"),
				ReferredColumns: []*ast.Ident{ast.NewIdent("id")},
				OnDelete:        ast.ActionCascade,
			},
		},
	}
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS public.users ("+
			"id BIGINT PRIMARY KEY, "+
			"email VARCHAR(255) NOT NULL CONSTRAINT email_unique UNIQUE, "+
			"balance NUMERIC(10, 2) DEFAULT 0, "+
			"FOREIGN KEY (org_id) REFERENCES orgs (id) ON DELETE CASCADE)",
		stmtSQL(t, ct))
}

func TestCreateTableAs(t *testing.T) {
	ct := &ast.CreateTable{
		Temporary: true,
		Name:      ast.MustObjectName("snapshot"),
		Options: []*ast.SQLOption{
			{Name: ast.NewIdent("fillfactor"), Value: num(70)},
		},
		Query: queryOf(selectOf(&ast.Wildcard{})),
	}
	ct.Query.Body.(*ast.Select).From = from("t")
	assert.Equal(t,
		"CREATE TEMPORARY TABLE snapshot WITH (fillfactor = 70) AS SELECT * FROM t",
		stmtSQL(t, ct))
}

func TestCreateView(t *testing.T) {
	cv := &ast.CreateView{
		OrReplace:    true,
		Materialized: true,
		Name:         ast.MustObjectName("active_users"),
		Columns:      []*ast.Ident{ast.NewIdent("id"), ast.NewIdent("name")},
		Query:        queryOf(selectOf(col("id"), col("name"))),
	}
	cv.Query.Body.(*ast.Select).From = from("users")
	assert.Equal(t,
		"CREATE OR REPLACE MATERIALIZED VIEW active_users (id, name) AS SELECT id, name FROM users",
		stmtSQL(t, cv))
}

func TestCreateIndex(t *testing.T) {
	ci := &ast.CreateIndex{
		Unique: true,
		Name:   ast.NewIdent("users_email_idx"),
		Table:  ast.MustObjectName("users"),
		Using:  ast.NewIdent("btree"),
		Columns: []*ast.OrderByExpr{
			{Expr: col("email")},
			{Expr: col("created_at"), Asc: boolPtr(false)},
		},
	}
	assert.Equal(t,
		"CREATE UNIQUE INDEX users_email_idx ON users USING btree (email, created_at DESC)",
		stmtSQL(t, ci))

	unnamed := &ast.CreateIndex{
		Table:   ast.MustObjectName("t"),
		Columns: []*ast.OrderByExpr{{Expr: col("a")}},
	}
	assert.Equal(t, "CREATE INDEX ON t (a)", stmtSQL(t, unnamed))
}

func TestCreateSchema(t *testing.T) {
	assert.Equal(t, "CREATE SCHEMA IF NOT EXISTS analytics",
		stmtSQL(t, &ast.CreateSchema{Name: ast.MustObjectName("analytics"), IfNotExists: true}))
}

func TestCreateSequence(t *testing.T) {
	cs := &ast.CreateSequence{
		Name: ast.MustObjectName("order_seq"),
		Type: &ast.DataType{Kind: ast.TypeBigInt},
		Options: []ast.SequenceOption{
			&ast.SequenceIncrementBy{Value: num(2), By: true},
			&ast.SequenceMinValue{Value: ast.SomeValue(num(1))},
			&ast.SequenceMaxValue{Value: ast.NoValue()},
			&ast.SequenceStartWith{Value: num(10), With: true},
			&ast.SequenceCache{Value: num(5)},
			&ast.SequenceCycle{Cycle: true},
		},
		OwnedBy: &ast.OwnedBy{Name: ast.MustObjectName("orders", "id")},
	}
	assert.Equal(t,
		"CREATE SEQUENCE order_seq AS BIGINT INCREMENT BY 2 MINVALUE 1 NO MAXVALUE START WITH 10 CACHE 5 CYCLE OWNED BY orders.id",
		stmtSQL(t, cs))
}

func TestSequenceValueStates(t *testing.T) {
	base := func(v ast.MinMaxValue) string {
		return stmtSQL(t, &ast.CreateSequence{
			Name:    ast.MustObjectName("s"),
			Options: []ast.SequenceOption{&ast.SequenceMinValue{Value: v}},
		})
	}
	assert.Equal(t, "CREATE SEQUENCE s", base(ast.UnspecifiedValue()))
	assert.Equal(t, "CREATE SEQUENCE s NO MINVALUE", base(ast.NoValue()))
	assert.Equal(t, "CREATE SEQUENCE s MINVALUE 100", base(ast.SomeValue(num(100))))
}

func TestSequenceOwnedByNone(t *testing.T) {
	cs := &ast.CreateSequence{
		Name:    ast.MustObjectName("s"),
		OwnedBy: &ast.OwnedBy{None: true},
	}
	assert.Equal(t, "CREATE SEQUENCE s OWNED BY NONE", stmtSQL(t, cs))
}

func TestCreateRole(t *testing.T) {
	cr := &ast.CreateRole{
		Names: []*ast.ObjectName{ast.MustObjectName("app")},
		Options: []ast.RoleOption{
			&ast.RoleLogin{Value: true},
			&ast.RoleSuperUser{Value: false},
			&ast.RoleBypassRLS{Value: true},
			&ast.RoleConnectionLimit{Limit: num(10)},
			&ast.RoleValidUntil{Until: str("2027-01-01")},
			&ast.RolePassword{Password: ast.Password{Kind: ast.PasswordSet, Value: str("secret")}},
		},
	}
	assert.Equal(t,
		"CREATE ROLE app LOGIN NOSUPERUSER BYPASSRLS CONNECTION LIMIT 10 VALID UNTIL '2027-01-01' PASSWORD 'secret'",
		stmtSQL(t, cr))
}

func TestCreateRoleKeywordPairs(t *testing.T) {
	pair := func(opt ast.RoleOption) string {
		return stmtSQL(t, &ast.CreateRole{
			Names:   []*ast.ObjectName{ast.MustObjectName("r")},
			Options: []ast.RoleOption{opt},
		})
	}
	assert.Equal(t, "CREATE ROLE r NOBYPASSRLS", pair(&ast.RoleBypassRLS{}))
	assert.Equal(t, "CREATE ROLE r NOLOGIN", pair(&ast.RoleLogin{}))
	assert.Equal(t, "CREATE ROLE r CREATEDB", pair(&ast.RoleCreateDB{Value: true}))
	assert.Equal(t, "CREATE ROLE r NOINHERIT", pair(&ast.RoleInherit{}))
	assert.Equal(t, "CREATE ROLE r REPLICATION", pair(&ast.RoleReplication{Value: true}))
	assert.Equal(t, "CREATE ROLE r PASSWORD NULL",
		pair(&ast.RolePassword{Password: ast.Password{Kind: ast.PasswordNull}}))
}

func TestCreateTrigger(t *testing.T) {
	tr := &ast.CreateTrigger{
		Name:   ast.NewIdent("audit_users"),
		Period: ast.TriggerAfter,
		Events: []ast.TriggerEvent{
			{Type: ast.TriggerInsert},
			{Type: ast.TriggerUpdate, Columns: []*ast.Ident{ast.NewIdent("email")}},
		},
		Table:      ast.MustObjectName("users"),
		ForEachRow: true,
		Exec:       ast.MustObjectName("audit_fn"),
	}
	assert.Equal(t,
		"CREATE TRIGGER audit_users AFTER INSERT OR UPDATE OF email ON users FOR EACH ROW EXECUTE FUNCTION audit_fn()",
		stmtSQL(t, tr))
}

func TestAlterTable(t *testing.T) {
	at := &ast.AlterTable{
		Name: ast.MustObjectName("users"),
		Operations: []ast.AlterTableOperation{
			&ast.AddColumn{Column: &ast.ColumnDef{
				Name: ast.NewIdent("age"),
				Type: &ast.DataType{Kind: ast.TypeInt},
			}},
			&ast.AlterColumn{Name: ast.NewIdent("email"), Op: &ast.SetNotNull{}},
		},
	}
	assert.Equal(t,
		"ALTER TABLE users ADD COLUMN age INT, ALTER COLUMN email SET NOT NULL",
		stmtSQL(t, at))
}

func TestAlterColumnOperations(t *testing.T) {
	op := func(o ast.AlterColumnOperation) string {
		return stmtSQL(t, &ast.AlterTable{
			Name: ast.MustObjectName("t"),
			Operations: []ast.AlterTableOperation{
				&ast.AlterColumn{Name: ast.NewIdent("c"), Op: o},
			},
		})
	}
	assert.Equal(t, "ALTER TABLE t ALTER COLUMN c DROP NOT NULL", op(&ast.DropNotNull{}))
	assert.Equal(t, "ALTER TABLE t ALTER COLUMN c SET DEFAULT 0", op(&ast.SetDefault{Expr: num(0)}))
	assert.Equal(t, "ALTER TABLE t ALTER COLUMN c DROP DEFAULT", op(&ast.DropDefault{}))
	assert.Equal(t,
		"ALTER TABLE t ALTER COLUMN c SET DATA TYPE BIGINT USING CAST(c AS BIGINT)",
		op(&ast.SetDataType{
			Type:  &ast.DataType{Kind: ast.TypeBigInt},
			Using: &ast.CastExpr{Expr: col("c"), Type: &ast.DataType{Kind: ast.TypeBigInt}},
		}))
}

func TestAlterTableRenames(t *testing.T) {
	at := &ast.AlterTable{
		Name:     ast.MustObjectName("old_users"),
		IfExists: true,
		Only:     true,
		Operations: []ast.AlterTableOperation{
			&ast.RenameTable{Name: ast.MustObjectName("users")},
		},
	}
	assert.Equal(t, "ALTER TABLE IF EXISTS ONLY old_users RENAME TO users", stmtSQL(t, at))

	at = &ast.AlterTable{
		Name: ast.MustObjectName("t"),
		Operations: []ast.AlterTableOperation{
			&ast.RenameColumn{OldName: ast.NewIdent("a"), NewName: ast.NewIdent("b")},
			&ast.DropConstraint{Name: ast.NewIdent("fk"), IfExists: true, Cascade: true},
		},
	}
	assert.Equal(t,
		"ALTER TABLE t RENAME COLUMN a TO b, DROP CONSTRAINT IF EXISTS fk CASCADE",
		stmtSQL(t, at))
}

func TestDrop(t *testing.T) {
	d := &ast.Drop{
		ObjectType: ast.ObjectTable,
		IfExists:   true,
		Names:      []*ast.ObjectName{ast.MustObjectName("a"), ast.MustObjectName("b")},
		Cascade:    true,
	}
	assert.Equal(t, "DROP TABLE IF EXISTS a, b CASCADE", stmtSQL(t, d))

	d = &ast.Drop{
		ObjectType: ast.ObjectSequence,
		Names:      []*ast.ObjectName{ast.MustObjectName("s")},
		Restrict:   true,
	}
	assert.Equal(t, "DROP SEQUENCE s RESTRICT", stmtSQL(t, d))
}

func TestComment(t *testing.T) {
	c := &ast.CommentStmt{
		ObjectType: ast.ObjectTable,
		Name:       ast.MustObjectName("users"),
		Comment:    strPtr("all registered users"),
	}
	assert.Equal(t, "COMMENT ON TABLE users IS 'all registered users'", stmtSQL(t, c))

	c = &ast.CommentStmt{
		ObjectType: ast.ObjectColumn,
		Name:       ast.MustObjectName("users", "email"),
		IfExists:   true,
	}
	assert.Equal(t, "COMMENT IF EXISTS ON COLUMN users.email IS NULL", stmtSQL(t, c))
}
