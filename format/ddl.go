package format

import (
	"github.com/kyleconroy/sqltree/ast"
)

func (p *printer) createTable(s *ast.CreateTable) {
	p.write("CREATE ")
	if s.OrReplace {
		p.write("OR REPLACE ")
	}
	if s.Temporary {
		p.write("TEMPORARY ")
	}
	p.write("TABLE ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	p.objectName(s.Name)
	if len(s.Columns) > 0 || len(s.Constraints) > 0 {
		p.write(" (")
		p.join(len(s.Columns), ", ", func(i int) { p.columnDef(s.Columns[i]) })
		if len(s.Columns) > 0 && len(s.Constraints) > 0 {
			p.write(", ")
		}
		p.join(len(s.Constraints), ", ", func(i int) { p.tableConstraint(s.Constraints[i]) })
		p.write(")")
	}
	if len(s.Options) > 0 {
		p.write(" WITH (")
		p.join(len(s.Options), ", ", func(i int) {
			p.ident(s.Options[i].Name)
			p.write(" = ")
			p.expression(s.Options[i].Value)
		})
		p.write(")")
	}
	if s.Query != nil {
		p.write(" AS ")
		p.query(s.Query)
	}
}

func (p *printer) columnDef(c *ast.ColumnDef) {
	p.ident(c.Name)
	p.write(" ")
	p.dataType(c.Type)
	if c.Collation != nil {
		p.write(" COLLATE ")
		p.objectName(c.Collation)
	}
	for _, opt := range c.Options {
		p.write(" ")
		if opt.Name != nil {
			p.write("CONSTRAINT ")
			p.ident(opt.Name)
			p.write(" ")
		}
		p.columnOption(opt.Option)
	}
}

func (p *printer) columnOption(opt ast.ColumnOption) {
	switch o := opt.(type) {
	case *ast.ColumnNull:
		p.write("NULL")
	case *ast.ColumnNotNull:
		p.write("NOT NULL")
	case *ast.ColumnDefault:
		p.write("DEFAULT ")
		p.expression(o.Expr)
	case *ast.ColumnUnique:
		if o.IsPrimary {
			p.write("PRIMARY KEY")
		} else {
			p.write("UNIQUE")
		}
	case *ast.ColumnCheck:
		p.write("CHECK (")
		p.expression(o.Expr)
		p.write(")")
	case *ast.ColumnForeignKey:
		p.write("REFERENCES ")
		p.objectName(o.ForeignTable)
		if len(o.ReferredColumns) > 0 {
			p.write(" (")
			p.idents(o.ReferredColumns, ", ")
			p.write(")")
		}
		p.referentialActions(o.OnDelete, o.OnUpdate)
	default:
		p.unsupported(opt)
	}
}

func (p *printer) referentialActions(onDelete, onUpdate ast.ReferentialAction) {
	if onDelete != ast.ActionNone {
		p.write(" ON DELETE ")
		p.referentialAction(onDelete)
	}
	if onUpdate != ast.ActionNone {
		p.write(" ON UPDATE ")
		p.referentialAction(onUpdate)
	}
}

func (p *printer) referentialAction(a ast.ReferentialAction) {
	switch a {
	case ast.ActionRestrict:
		p.write("RESTRICT")
	case ast.ActionCascade:
		p.write("CASCADE")
	case ast.ActionSetNull:
		p.write("SET NULL")
	case ast.ActionNoAction:
		p.write("NO ACTION")
	case ast.ActionSetDefault:
		p.write("SET DEFAULT")
	default:
		p.unsupported(a)
	}
}

func (p *printer) tableConstraint(c ast.TableConstraint) {
	switch t := c.(type) {
	case *ast.UniqueConstraint:
		p.constraintName(t.Name)
		if t.IsPrimary {
			p.write("PRIMARY KEY (")
		} else {
			p.write("UNIQUE (")
		}
		p.idents(t.Columns, ", ")
		p.write(")")
	case *ast.ForeignKeyConstraint:
		p.constraintName(t.Name)
		p.write("FOREIGN KEY (")
		p.idents(t.Columns, ", ")
		p.write(") REFERENCES ")
		p.objectName(t.ForeignTable)
		if len(t.ReferredColumns) > 0 {
			p.write(" (")
			p.idents(t.ReferredColumns, ", ")
			p.write(")")
		}
		p.referentialActions(t.OnDelete, t.OnUpdate)
	case *ast.CheckConstraint:
		p.constraintName(t.Name)
		p.write("CHECK (")
		p.expression(t.Expr)
		p.write(")")
	default:
		p.unsupported(c)
	}
}

func (p *printer) constraintName(name *ast.Ident) {
	if name != nil {
		p.write("CONSTRAINT ")
		p.ident(name)
		p.write(" ")
	}
}

func (p *printer) createView(s *ast.CreateView) {
	p.write("CREATE ")
	if s.OrReplace {
		p.write("OR REPLACE ")
	}
	if s.Materialized {
		p.write("MATERIALIZED ")
	}
	p.write("VIEW ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	p.objectName(s.Name)
	if len(s.Columns) > 0 {
		p.write(" (")
		p.idents(s.Columns, ", ")
		p.write(")")
	}
	p.write(" AS ")
	p.query(s.Query)
}

func (p *printer) createIndex(s *ast.CreateIndex) {
	p.write("CREATE ")
	if s.Unique {
		p.write("UNIQUE ")
	}
	p.write("INDEX ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	if s.Name != nil {
		p.ident(s.Name)
		p.write(" ")
	}
	p.write("ON ")
	p.objectName(s.Table)
	if s.Using != nil {
		p.write(" USING ")
		p.ident(s.Using)
	}
	p.write(" (")
	p.orderByList(s.Columns)
	p.write(")")
}

func (p *printer) createSchema(s *ast.CreateSchema) {
	p.write("CREATE SCHEMA ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	p.objectName(s.Name)
}

func (p *printer) createSequence(s *ast.CreateSequence) {
	p.write("CREATE ")
	if s.Temporary {
		p.write("TEMPORARY ")
	}
	p.write("SEQUENCE ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	p.objectName(s.Name)
	if s.Type != nil {
		p.write(" AS ")
		p.dataType(s.Type)
	}
	for _, opt := range s.Options {
		p.sequenceOption(opt)
	}
	if s.OwnedBy != nil {
		p.write(" OWNED BY ")
		if s.OwnedBy.None {
			p.write("NONE")
		} else {
			p.objectName(s.OwnedBy.Name)
		}
	}
}

// sequenceOption writes one sequence option, leading space included, so an
// absent option contributes zero bytes.
func (p *printer) sequenceOption(opt ast.SequenceOption) {
	switch o := opt.(type) {
	case *ast.SequenceIncrementBy:
		p.write(" INCREMENT")
		if o.By {
			p.write(" BY")
		}
		p.write(" ")
		p.expression(o.Value)
	case *ast.SequenceMinValue:
		p.minMaxValue(o.Value, "MINVALUE")
	case *ast.SequenceMaxValue:
		p.minMaxValue(o.Value, "MAXVALUE")
	case *ast.SequenceStartWith:
		p.write(" START")
		if o.With {
			p.write(" WITH")
		}
		p.write(" ")
		p.expression(o.Value)
	case *ast.SequenceCache:
		p.write(" CACHE ")
		p.expression(o.Value)
	case *ast.SequenceCycle:
		if o.Cycle {
			p.write(" CYCLE")
		} else {
			p.write(" NO CYCLE")
		}
	default:
		p.unsupported(opt)
	}
}

func (p *printer) minMaxValue(v ast.MinMaxValue, keyword string) {
	switch v.Kind {
	case ast.MinMaxUnspecified:
	case ast.MinMaxNone:
		p.write(" NO ")
		p.write(keyword)
	case ast.MinMaxSet:
		p.write(" ")
		p.write(keyword)
		p.write(" ")
		p.expression(v.Value)
	default:
		p.unsupported(v.Kind)
	}
}

func (p *printer) createRole(s *ast.CreateRole) {
	p.write("CREATE ROLE ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	p.objectNames(s.Names, ", ")
	for _, opt := range s.Options {
		p.write(" ")
		p.roleOption(opt)
	}
}

// roleOption maps every boolean role option to its explicit keyword pair.
func (p *printer) roleOption(opt ast.RoleOption) {
	keyword := func(value bool, yes, no string) {
		if value {
			p.write(yes)
		} else {
			p.write(no)
		}
	}
	switch o := opt.(type) {
	case *ast.RoleSuperUser:
		keyword(o.Value, "SUPERUSER", "NOSUPERUSER")
	case *ast.RoleCreateDB:
		keyword(o.Value, "CREATEDB", "NOCREATEDB")
	case *ast.RoleCreateRole:
		keyword(o.Value, "CREATEROLE", "NOCREATEROLE")
	case *ast.RoleInherit:
		keyword(o.Value, "INHERIT", "NOINHERIT")
	case *ast.RoleLogin:
		keyword(o.Value, "LOGIN", "NOLOGIN")
	case *ast.RoleReplication:
		keyword(o.Value, "REPLICATION", "NOREPLICATION")
	case *ast.RoleBypassRLS:
		keyword(o.Value, "BYPASSRLS", "NOBYPASSRLS")
	case *ast.RoleConnectionLimit:
		p.write("CONNECTION LIMIT ")
		p.expression(o.Limit)
	case *ast.RoleValidUntil:
		p.write("VALID UNTIL ")
		p.expression(o.Until)
	case *ast.RolePassword:
		switch o.Password.Kind {
		case ast.PasswordSet:
			p.write("PASSWORD ")
			p.expression(o.Password.Value)
		case ast.PasswordNull:
			p.write("PASSWORD NULL")
		default:
			p.unsupported(o.Password.Kind)
		}
	default:
		p.unsupported(opt)
	}
}

func (p *printer) createTrigger(s *ast.CreateTrigger) {
	p.write("CREATE TRIGGER ")
	p.ident(s.Name)
	p.write(" ")
	p.write(string(s.Period))
	p.write(" ")
	p.join(len(s.Events), " OR ", func(i int) {
		e := s.Events[i]
		p.write(string(e.Type))
		if len(e.Columns) > 0 {
			p.write(" OF ")
			p.idents(e.Columns, ", ")
		}
	})
	p.write(" ON ")
	p.objectName(s.Table)
	if s.ForEachRow {
		p.write(" FOR EACH ROW")
	} else {
		p.write(" FOR EACH STATEMENT")
	}
	if s.Condition != nil {
		p.write(" WHEN (")
		p.expression(s.Condition)
		p.write(")")
	}
	p.write(" EXECUTE FUNCTION ")
	p.objectName(s.Exec)
	p.write("(")
	p.expressions(s.ExecArgs, ", ")
	p.write(")")
}

func (p *printer) alterTable(s *ast.AlterTable) {
	p.write("ALTER TABLE ")
	if s.IfExists {
		p.write("IF EXISTS ")
	}
	if s.Only {
		p.write("ONLY ")
	}
	p.objectName(s.Name)
	p.write(" ")
	p.join(len(s.Operations), ", ", func(i int) { p.alterTableOperation(s.Operations[i]) })
}

func (p *printer) alterTableOperation(op ast.AlterTableOperation) {
	switch o := op.(type) {
	case *ast.AddColumn:
		p.write("ADD COLUMN ")
		if o.IfNotExists {
			p.write("IF NOT EXISTS ")
		}
		p.columnDef(o.Column)
	case *ast.DropColumn:
		p.write("DROP COLUMN ")
		if o.IfExists {
			p.write("IF EXISTS ")
		}
		p.ident(o.Name)
		if o.Cascade {
			p.write(" CASCADE")
		}
	case *ast.RenameColumn:
		p.write("RENAME COLUMN ")
		p.ident(o.OldName)
		p.write(" TO ")
		p.ident(o.NewName)
	case *ast.RenameTable:
		p.write("RENAME TO ")
		p.objectName(o.Name)
	case *ast.AddConstraint:
		p.write("ADD ")
		p.tableConstraint(o.Constraint)
	case *ast.DropConstraint:
		p.write("DROP CONSTRAINT ")
		if o.IfExists {
			p.write("IF EXISTS ")
		}
		p.ident(o.Name)
		if o.Cascade {
			p.write(" CASCADE")
		}
	case *ast.RenameConstraint:
		p.write("RENAME CONSTRAINT ")
		p.ident(o.OldName)
		p.write(" TO ")
		p.ident(o.NewName)
	case *ast.AlterColumn:
		p.write("ALTER COLUMN ")
		p.ident(o.Name)
		p.write(" ")
		p.alterColumnOperation(o.Op)
	default:
		p.unsupported(op)
	}
}

// alterColumnOperation resolves the SET/DROP keyword pairs exhaustively.
func (p *printer) alterColumnOperation(op ast.AlterColumnOperation) {
	switch o := op.(type) {
	case *ast.SetNotNull:
		p.write("SET NOT NULL")
	case *ast.DropNotNull:
		p.write("DROP NOT NULL")
	case *ast.SetDefault:
		p.write("SET DEFAULT ")
		p.expression(o.Expr)
	case *ast.DropDefault:
		p.write("DROP DEFAULT")
	case *ast.SetDataType:
		p.write("SET DATA TYPE ")
		p.dataType(o.Type)
		if o.Using != nil {
			p.write(" USING ")
			p.expression(o.Using)
		}
	default:
		p.unsupported(op)
	}
}

func (p *printer) drop(s *ast.Drop) {
	p.write("DROP ")
	p.write(string(s.ObjectType))
	p.write(" ")
	if s.IfExists {
		p.write("IF EXISTS ")
	}
	p.objectNames(s.Names, ", ")
	if s.Cascade {
		p.write(" CASCADE")
	}
	if s.Restrict {
		p.write(" RESTRICT")
	}
}

func (p *printer) comment(s *ast.CommentStmt) {
	p.write("COMMENT ")
	if s.IfExists {
		p.write("IF EXISTS ")
	}
	p.write("ON ")
	p.write(string(s.ObjectType))
	p.write(" ")
	p.objectName(s.Name)
	p.write(" IS ")
	if s.Comment != nil {
		p.delimited(*s.Comment, "'", "'")
	} else {
		p.write("NULL")
	}
}
