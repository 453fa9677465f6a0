package ast

// Signal is the control-flow result of a pre-visit hook.
type Signal int

const (
	// Continue descends into the node's children.
	Continue Signal = iota
	// Break skips the node's children and its post-visit hook. Siblings
	// and the rest of the walk are unaffected.
	Break
)

// Visitor receives callbacks during a Walk. Pre hooks run before a node's
// children are visited, post hooks after. A Break from a pre hook prunes
// that subtree only; there is no engine-level whole-walk abort.
//
// Base-table references fire the relation hooks in addition to the table
// factor hooks, so visitors can special-case "this is a named table"
// without re-deriving it from node shape.
type Visitor interface {
	PreVisitStatement(stmt Statement) Signal
	PostVisitStatement(stmt Statement)
	PreVisitExpression(expr Expression) Signal
	PostVisitExpression(expr Expression)
	PreVisitTableFactor(factor TableFactor) Signal
	PostVisitTableFactor(factor TableFactor)
	PreVisitRelation(name *ObjectName) Signal
	PostVisitRelation(name *ObjectName)
}

// BaseVisitor is a Visitor whose hooks all continue and do nothing. Embed
// it and override only the hooks you need.
type BaseVisitor struct{}

func (BaseVisitor) PreVisitStatement(Statement) Signal     { return Continue }
func (BaseVisitor) PostVisitStatement(Statement)           {}
func (BaseVisitor) PreVisitExpression(Expression) Signal   { return Continue }
func (BaseVisitor) PostVisitExpression(Expression)         {}
func (BaseVisitor) PreVisitTableFactor(TableFactor) Signal { return Continue }
func (BaseVisitor) PostVisitTableFactor(TableFactor)       {}
func (BaseVisitor) PreVisitRelation(*ObjectName) Signal    { return Continue }
func (BaseVisitor) PostVisitRelation(*ObjectName)          {}

// DefaultMaxDepth bounds tree depth during traversal and serialization.
const DefaultMaxDepth = 512

// Walk traverses node and its descendants in each node kind's declared
// child order, invoking v's hooks. It fails with RecursionLimitError when
// tree depth exceeds DefaultMaxDepth.
func Walk(v Visitor, node Node) error {
	return WalkDepth(v, node, DefaultMaxDepth)
}

// WalkDepth is Walk with an explicit depth bound.
func WalkDepth(v Visitor, node Node, maxDepth int) error {
	w := &walker{v: v, maxDepth: maxDepth}
	return w.walk(node)
}

type walker struct {
	v        Visitor
	depth    int
	maxDepth int
}

func (w *walker) walk(node Node) error {
	if node == nil {
		return nil
	}
	w.depth++
	defer func() { w.depth-- }()
	if w.depth > w.maxDepth {
		return &RecursionLimitError{Limit: w.maxDepth}
	}

	switch n := node.(type) {
	case Statement:
		if w.v.PreVisitStatement(n) == Break {
			return nil
		}
		if err := w.children(n); err != nil {
			return err
		}
		w.v.PostVisitStatement(n)
		return nil
	case Expression:
		if w.v.PreVisitExpression(n) == Break {
			return nil
		}
		if err := w.children(n); err != nil {
			return err
		}
		w.v.PostVisitExpression(n)
		return nil
	case TableFactor:
		return w.walkTableFactor(n)
	default:
		return w.children(node)
	}
}

// walkTableFactor brackets a base table's descent with the relation hooks,
// inside the generic table factor hooks.
func (w *walker) walkTableFactor(factor TableFactor) error {
	if w.v.PreVisitTableFactor(factor) == Break {
		return nil
	}
	if t, ok := factor.(*Table); ok {
		if w.v.PreVisitRelation(t.Name) == Continue {
			if err := w.children(factor); err != nil {
				return err
			}
			w.v.PostVisitRelation(t.Name)
		}
	} else {
		if err := w.children(factor); err != nil {
			return err
		}
	}
	w.v.PostVisitTableFactor(factor)
	return nil
}

func (w *walker) walkExprs(exprs []Expression) error {
	for _, e := range exprs {
		if err := w.walk(e); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkOrderBy(items []*OrderByExpr) error {
	for _, o := range items {
		if err := w.walk(o); err != nil {
			return err
		}
	}
	return nil
}

// children visits node's children in the node kind's declared order. The
// order is part of each kind's contract and is independent of struct field
// layout.
func (w *walker) children(node Node) error {
	switch n := node.(type) {

	// Statements
	case *Query:
		if n.With != nil {
			if err := w.walk(n.With); err != nil {
				return err
			}
		}
		if err := w.walk(n.Body); err != nil {
			return err
		}
		if err := w.walkOrderBy(n.OrderBy); err != nil {
			return err
		}
		if err := w.walk(n.Limit); err != nil {
			return err
		}
		if n.Offset != nil {
			if err := w.walk(n.Offset); err != nil {
				return err
			}
		}
		if err := w.walkExprs(n.LimitBy); err != nil {
			return err
		}
		if n.Fetch != nil {
			if err := w.walk(n.Fetch); err != nil {
				return err
			}
		}
		for _, l := range n.Locks {
			if err := w.walk(l); err != nil {
				return err
			}
		}
		if n.For != nil {
			if err := w.walk(n.For); err != nil {
				return err
			}
		}
		return nil
	case *Insert:
		if n.Source != nil {
			if err := w.walk(n.Source); err != nil {
				return err
			}
		}
		if n.On != nil {
			if err := w.walk(n.On); err != nil {
				return err
			}
		}
		return w.walkExprs(n.Returning)
	case *Update:
		if n.Table != nil {
			if err := w.walk(n.Table); err != nil {
				return err
			}
		}
		for _, a := range n.Assignments {
			if err := w.walk(a); err != nil {
				return err
			}
		}
		if n.From != nil {
			if err := w.walk(n.From); err != nil {
				return err
			}
		}
		if err := w.walk(n.Selection); err != nil {
			return err
		}
		return w.walkExprs(n.Returning)
	case *Delete:
		if n.From != nil {
			if err := w.walk(n.From); err != nil {
				return err
			}
		}
		if n.Using != nil {
			if err := w.walk(n.Using); err != nil {
				return err
			}
		}
		if err := w.walk(n.Selection); err != nil {
			return err
		}
		return w.walkExprs(n.Returning)
	case *CreateTable:
		for _, c := range n.Columns {
			if err := w.walk(c); err != nil {
				return err
			}
		}
		for _, c := range n.Constraints {
			if err := w.walk(c); err != nil {
				return err
			}
		}
		for _, o := range n.Options {
			if err := w.walk(o); err != nil {
				return err
			}
		}
		if n.Query != nil {
			return w.walk(n.Query)
		}
		return nil
	case *CreateView:
		if n.Query != nil {
			return w.walk(n.Query)
		}
		return nil
	case *CreateIndex:
		return w.walkOrderBy(n.Columns)
	case *CreateSchema:
		return nil
	case *CreateSequence:
		for _, o := range n.Options {
			if err := w.walk(o); err != nil {
				return err
			}
		}
		return nil
	case *CreateRole:
		for _, o := range n.Options {
			if err := w.walk(o); err != nil {
				return err
			}
		}
		return nil
	case *AlterTable:
		for _, op := range n.Operations {
			if err := w.walk(op); err != nil {
				return err
			}
		}
		return nil
	case *CreateTrigger:
		for i := range n.Events {
			if err := w.walk(&n.Events[i]); err != nil {
				return err
			}
		}
		if err := w.walk(n.Condition); err != nil {
			return err
		}
		return w.walkExprs(n.ExecArgs)
	case *Drop, *Truncate, *CommentStmt, *Use, *Savepoint, *Commit, *Rollback:
		return nil
	case *Declare:
		if n.Query != nil {
			return w.walk(n.Query)
		}
		return nil
	case *StartTransaction:
		for _, m := range n.Modes {
			if err := w.walk(m); err != nil {
				return err
			}
		}
		return nil
	case *Grant:
		if err := w.walk(n.Privileges); err != nil {
			return err
		}
		return w.walk(n.Objects)
	case *Revoke:
		if err := w.walk(n.Privileges); err != nil {
			return err
		}
		return w.walk(n.Objects)
	case *Explain:
		return w.walk(n.Statement)

	// Query bodies
	case *QueryBody:
		return w.walk(n.Query)
	case *SetOperation:
		if err := w.walk(n.Left); err != nil {
			return err
		}
		return w.walk(n.Right)
	case *Values:
		for _, row := range n.Rows {
			if err := w.walkExprs(row); err != nil {
				return err
			}
		}
		return nil
	case *Select:
		if n.Distinct != nil {
			if err := w.walk(n.Distinct); err != nil {
				return err
			}
		}
		if n.Top != nil {
			if err := w.walk(n.Top); err != nil {
				return err
			}
		}
		if err := w.walkExprs(n.Projection); err != nil {
			return err
		}
		if n.Into != nil {
			if err := w.walk(n.Into); err != nil {
				return err
			}
		}
		for _, f := range n.From {
			if err := w.walk(f); err != nil {
				return err
			}
		}
		if err := w.walk(n.Selection); err != nil {
			return err
		}
		if err := w.walkExprs(n.GroupBy); err != nil {
			return err
		}
		if err := w.walk(n.Having); err != nil {
			return err
		}
		for _, nw := range n.NamedWindows {
			if err := w.walk(nw); err != nil {
				return err
			}
		}
		return w.walk(n.Qualify)

	// Table references
	case *Table:
		if err := w.walkExprs(n.Args); err != nil {
			return err
		}
		if err := w.walkExprs(n.WithHints); err != nil {
			return err
		}
		if n.Version != nil {
			return w.walk(n.Version.Expr)
		}
		return nil
	case *Derived:
		return w.walk(n.Subquery)
	case *NestedJoin:
		return w.walk(n.Inner)
	case *TableWithJoins:
		if err := w.walk(n.Relation); err != nil {
			return err
		}
		for _, j := range n.Joins {
			if err := w.walk(j); err != nil {
				return err
			}
		}
		return nil
	case *Join:
		if err := w.walk(n.Relation); err != nil {
			return err
		}
		if n.Constraint != nil {
			return w.walk(n.Constraint)
		}
		return nil
	case *OnConstraint:
		return w.walk(n.Expr)
	case *UsingConstraint, *NaturalConstraint:
		return nil

	// Query clauses
	case *WithClause:
		for _, cte := range n.CTEs {
			if err := w.walk(cte); err != nil {
				return err
			}
		}
		return nil
	case *CTE:
		if n.Query != nil {
			return w.walk(n.Query)
		}
		return nil
	case *OrderByExpr:
		return w.walk(n.Expr)
	case *OffsetClause:
		return w.walk(n.Value)
	case *FetchClause:
		return w.walk(n.Quantity)
	case *LockClause, *ForClause, *SelectInto:
		return nil
	case *Distinct:
		return w.walkExprs(n.On)
	case *TopClause:
		return w.walk(n.Quantity)
	case *NamedWindow:
		return w.walk(n.Spec)

	// Expressions
	case *IdentifierExpr, *CompoundIdentifierExpr, *Wildcard, *QualifiedWildcard, *Literal:
		return nil
	case *BinaryExpr:
		if err := w.walk(n.Left); err != nil {
			return err
		}
		return w.walk(n.Right)
	case *UnaryExpr:
		return w.walk(n.Operand)
	case *IsNullExpr:
		return w.walk(n.Expr)
	case *IsDistinctFromExpr:
		if err := w.walk(n.Left); err != nil {
			return err
		}
		return w.walk(n.Right)
	case *InListExpr:
		if err := w.walk(n.Expr); err != nil {
			return err
		}
		return w.walkExprs(n.List)
	case *InSubqueryExpr:
		if err := w.walk(n.Expr); err != nil {
			return err
		}
		return w.walk(n.Subquery)
	case *BetweenExpr:
		if err := w.walk(n.Expr); err != nil {
			return err
		}
		if err := w.walk(n.Low); err != nil {
			return err
		}
		return w.walk(n.High)
	case *LikeExpr:
		if err := w.walk(n.Expr); err != nil {
			return err
		}
		if err := w.walk(n.Pattern); err != nil {
			return err
		}
		return w.walk(n.Escape)
	case *CastExpr:
		return w.walk(n.Expr)
	case *ExtractExpr:
		return w.walk(n.Expr)
	case *CollateExpr:
		return w.walk(n.Expr)
	case *NestedExpr:
		return w.walk(n.Expr)
	case *TupleExpr:
		return w.walkExprs(n.Exprs)
	case *ArrayExpr:
		return w.walkExprs(n.Exprs)
	case *CaseExpr:
		if err := w.walk(n.Operand); err != nil {
			return err
		}
		for _, wc := range n.Whens {
			if err := w.walk(wc); err != nil {
				return err
			}
		}
		return w.walk(n.Else)
	case *WhenClause:
		if err := w.walk(n.Condition); err != nil {
			return err
		}
		return w.walk(n.Result)
	case *ExistsExpr:
		return w.walk(n.Subquery)
	case *SubqueryExpr:
		return w.walk(n.Subquery)
	case *FunctionCall:
		if err := w.walkExprs(n.Args); err != nil {
			return err
		}
		if err := w.walk(n.Filter); err != nil {
			return err
		}
		if n.Over != nil {
			return w.walk(n.Over)
		}
		return nil
	case *IntervalExpr:
		return w.walk(n.Value)
	case *AliasedExpr:
		return w.walk(n.Expr)
	case *WindowSpec:
		if err := w.walkExprs(n.PartitionBy); err != nil {
			return err
		}
		if err := w.walkOrderBy(n.OrderBy); err != nil {
			return err
		}
		if n.Frame != nil {
			return w.walk(n.Frame)
		}
		return nil
	case *WindowFrame:
		if n.Start != nil {
			if err := w.walk(n.Start); err != nil {
				return err
			}
		}
		if n.End != nil {
			return w.walk(n.End)
		}
		return nil
	case *FrameBound:
		return w.walk(n.Offset)

	// DDL clauses
	case *ColumnDef:
		for _, o := range n.Options {
			if err := w.walk(o); err != nil {
				return err
			}
		}
		return nil
	case *ColumnOptionDef:
		return w.walk(n.Option)
	case *ColumnNull, *ColumnNotNull, *ColumnUnique:
		return nil
	case *ColumnDefault:
		return w.walk(n.Expr)
	case *ColumnCheck:
		return w.walk(n.Expr)
	case *ColumnForeignKey:
		return nil
	case *UniqueConstraint:
		return nil
	case *ForeignKeyConstraint:
		return nil
	case *CheckConstraint:
		return w.walk(n.Expr)
	case *SQLOption:
		return w.walk(n.Value)
	case *SequenceIncrementBy:
		return w.walk(n.Value)
	case *SequenceMinValue:
		return w.walk(n.Value.Value)
	case *SequenceMaxValue:
		return w.walk(n.Value.Value)
	case *SequenceStartWith:
		return w.walk(n.Value)
	case *SequenceCache:
		return w.walk(n.Value)
	case *SequenceCycle, *OwnedBy:
		return nil
	case *RoleSuperUser, *RoleCreateDB, *RoleCreateRole, *RoleInherit,
		*RoleLogin, *RoleReplication, *RoleBypassRLS:
		return nil
	case *RoleConnectionLimit:
		return w.walk(n.Limit)
	case *RoleValidUntil:
		return w.walk(n.Until)
	case *RolePassword:
		return w.walk(n.Password.Value)
	case *AddColumn:
		return w.walk(n.Column)
	case *DropColumn, *RenameColumn, *RenameTable, *DropConstraint, *RenameConstraint:
		return nil
	case *AddConstraint:
		return w.walk(n.Constraint)
	case *AlterColumn:
		return w.walk(n.Op)
	case *SetNotNull, *DropNotNull, *DropDefault:
		return nil
	case *SetDefault:
		return w.walk(n.Expr)
	case *SetDataType:
		return w.walk(n.Using)
	case *TriggerEvent:
		return nil

	// DML clauses
	case *OnConflict:
		if n.Action != nil {
			return w.walk(n.Action)
		}
		return nil
	case *DoNothing:
		return nil
	case *DoUpdate:
		for _, a := range n.Assignments {
			if err := w.walk(a); err != nil {
				return err
			}
		}
		return w.walk(n.Selection)
	case *Assignment:
		return w.walk(n.Value)
	case *TransactionAccessMode, *TransactionIsolationLevel:
		return nil
	case *AllPrivileges:
		return nil
	case *ActionPrivileges:
		for _, a := range n.Actions {
			if err := w.walk(a); err != nil {
				return err
			}
		}
		return nil
	case *PrivilegeAction:
		return nil
	case *GrantTables, *GrantSchemas, *GrantSequences,
		*GrantAllTablesInSchema, *GrantAllSequencesInSchema:
		return nil
	case *Ident, *ObjectName, *TableAlias, *TableVersion, *DataType:
		return nil

	default:
		return &UnsupportedVariantError{Node: node}
	}
}
