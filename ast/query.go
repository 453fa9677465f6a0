package ast

// Query is a complete query: an optional WITH clause, a body, and the
// trailing ordering, limiting, and locking clauses. Its declared child-visit
// order is: With, Body, OrderBy, Limit, Offset, LimitBy, Fetch, Locks, For.
type Query struct {
	With    *WithClause
	Body    SetExpr
	OrderBy []*OrderByExpr
	Limit   Expression
	Offset  *OffsetClause
	LimitBy []Expression
	Fetch   *FetchClause
	Locks   []*LockClause
	For     *ForClause
}

func (q *Query) node()          {}
func (q *Query) statementNode() {}

// SetExpr is a query body: a plain SELECT, a nested query, a set operation
// over two bodies, or a VALUES list.
type SetExpr interface {
	Node
	setExprNode()
}

// QueryBody wraps a parenthesized Query appearing as a set-expression
// operand.
type QueryBody struct {
	Query *Query
}

func (q *QueryBody) node()        {}
func (q *QueryBody) setExprNode() {}

// SetOperation combines two query bodies with UNION, EXCEPT, or INTERSECT.
type SetOperation struct {
	Op         SetOperator
	Quantifier SetQuantifier
	Left       SetExpr
	Right      SetExpr
}

func (s *SetOperation) node()        {}
func (s *SetOperation) setExprNode() {}

// SetOperator is a set-operation keyword.
type SetOperator string

const (
	Union     SetOperator = "UNION"
	Except    SetOperator = "EXCEPT"
	Intersect SetOperator = "INTERSECT"
)

// SetQuantifier modifies a set operation.
type SetQuantifier int

const (
	// SetNone omits the quantifier keyword.
	SetNone SetQuantifier = iota
	// SetAll emits ALL.
	SetAll
	// SetDistinct emits DISTINCT.
	SetDistinct
)

// Values is a VALUES list body.
type Values struct {
	Rows [][]Expression
}

func (v *Values) node()        {}
func (v *Values) setExprNode() {}

// Select is a single SELECT. Child-visit order: Distinct, Top, Projection,
// Into, From, Selection, GroupBy, Having, NamedWindows, Qualify.
type Select struct {
	Distinct     *Distinct
	Top          *TopClause
	Projection   []Expression
	Into         *SelectInto
	From         []*TableWithJoins
	Selection    Expression
	GroupBy      []Expression
	Having       Expression
	NamedWindows []*NamedWindow
	Qualify      Expression
}

func (s *Select) node()        {}
func (s *Select) setExprNode() {}

// Distinct is the SELECT DISTINCT modifier. An empty On list is plain
// DISTINCT; a non-empty one is DISTINCT ON (exprs).
type Distinct struct {
	On []Expression
}

func (d *Distinct) node() {}

// TopClause is `TOP [quantity] [PERCENT] [WITH TIES]`.
type TopClause struct {
	Quantity Expression
	Percent  bool
	WithTies bool
}

func (t *TopClause) node() {}

// SelectInto is `INTO [TEMPORARY|UNLOGGED] [TABLE] name`.
type SelectInto struct {
	Temporary bool
	Unlogged  bool
	Table     bool
	Name      *ObjectName
}

func (s *SelectInto) node() {}

// -----------------------------------------------------------------------------
// Table references

// TableWithJoins is a FROM-clause element: a leading relation followed by
// zero or more joins.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []*Join
}

func (t *TableWithJoins) node() {}

// Table is a base table reference.
type Table struct {
	Name       *ObjectName
	Alias      *TableAlias
	Args       []Expression // table-valued function arguments
	WithHints  []Expression
	Version    *TableVersion
	Partitions []*Ident
}

func (t *Table) node()            {}
func (t *Table) tableFactorNode() {}

// TableVersion is a temporal `FOR SYSTEM_TIME AS OF expr` clause. A nil
// *TableVersion on Table means no version clause.
type TableVersion struct {
	Expr Expression
}

func (t *TableVersion) node() {}

// Derived is a (possibly LATERAL) parenthesized subquery in FROM.
type Derived struct {
	Lateral  bool
	Subquery *Query
	Alias    *TableAlias
}

func (d *Derived) node()            {}
func (d *Derived) tableFactorNode() {}

// NestedJoin is a parenthesized join tree appearing as a table factor.
type NestedJoin struct {
	Inner *TableWithJoins
	Alias *TableAlias
}

func (n *NestedJoin) node()            {}
func (n *NestedJoin) tableFactorNode() {}

// TableAlias is `AS name [(col, ...)]`.
type TableAlias struct {
	Name    *Ident
	Columns []*Ident
}

func (t *TableAlias) node() {}

// Join is one join step: the joined relation plus operator and constraint.
type Join struct {
	Relation   TableFactor
	Operator   JoinOperator
	Constraint JoinConstraint // nil for constraint-free joins such as CROSS
}

func (j *Join) node() {}

// JoinOperator is the join keyword spelling.
type JoinOperator string

const (
	JoinInner      JoinOperator = "INNER"
	JoinLeftOuter  JoinOperator = "LEFT"
	JoinRightOuter JoinOperator = "RIGHT"
	JoinFullOuter  JoinOperator = "FULL"
	JoinCross      JoinOperator = "CROSS"
)

// JoinConstraint is an ON, USING, or NATURAL join qualifier.
type JoinConstraint interface {
	Node
	joinConstraintNode()
}

// OnConstraint is `ON expr`.
type OnConstraint struct {
	Expr Expression
}

func (o *OnConstraint) node()               {}
func (o *OnConstraint) joinConstraintNode() {}

// UsingConstraint is `USING (col, ...)`.
type UsingConstraint struct {
	Columns []*Ident
}

func (u *UsingConstraint) node()               {}
func (u *UsingConstraint) joinConstraintNode() {}

// NaturalConstraint marks a NATURAL join.
type NaturalConstraint struct{}

func (n *NaturalConstraint) node()               {}
func (n *NaturalConstraint) joinConstraintNode() {}

// -----------------------------------------------------------------------------
// Trailing query clauses

// WithClause is `WITH [RECURSIVE] cte, ...`.
type WithClause struct {
	Recursive bool
	CTEs      []*CTE
}

func (w *WithClause) node() {}

// CTE is one common table expression.
type CTE struct {
	Alias *TableAlias
	Query *Query
	From  *Ident // `cte FROM name` reference form
}

func (c *CTE) node() {}

// OrderByExpr is one ORDER BY element. Asc and NullsFirst are tristate:
// nil omits the clause entirely, which is distinct from either spelling.
type OrderByExpr struct {
	Expr       Expression
	Asc        *bool
	NullsFirst *bool
}

func (o *OrderByExpr) node() {}

// OffsetClause is `OFFSET value [ROW|ROWS]`.
type OffsetClause struct {
	Value Expression
	Rows  OffsetRows
}

func (o *OffsetClause) node() {}

// OffsetRows selects the optional ROW/ROWS keyword after OFFSET.
type OffsetRows int

const (
	// OffsetNone omits the keyword.
	OffsetNone OffsetRows = iota
	// OffsetRow emits ROW.
	OffsetRow
	// OffsetRowsKeyword emits ROWS.
	OffsetRowsKeyword
)

// FetchClause is `FETCH FIRST quantity [PERCENT] ROWS ONLY|WITH TIES`.
// A nil Quantity omits the count.
type FetchClause struct {
	Quantity Expression
	Percent  bool
	WithTies bool
}

func (f *FetchClause) node() {}

// LockClause is `FOR UPDATE|SHARE [OF name] [NOWAIT|SKIP LOCKED]`.
type LockClause struct {
	Type     LockType
	Of       *ObjectName
	NonBlock NonBlock
}

func (l *LockClause) node() {}

// LockType selects the lock strength keyword.
type LockType string

const (
	LockUpdate LockType = "UPDATE"
	LockShare  LockType = "SHARE"
)

// NonBlock selects the non-blocking behavior keyword of a lock clause.
type NonBlock int

const (
	// BlockDefault omits the keyword.
	BlockDefault NonBlock = iota
	// BlockNowait emits NOWAIT.
	BlockNowait
	// BlockSkipLocked emits SKIP LOCKED.
	BlockSkipLocked
)

// ForClause is the trailing `FOR BROWSE|JSON|XML` clause.
type ForClause struct {
	Mode ForClauseMode
}

func (f *ForClause) node() {}

// ForClauseMode selects the FOR clause keyword pair.
type ForClauseMode string

const (
	ForBrowse   ForClauseMode = "BROWSE"
	ForJSONAuto ForClauseMode = "JSON AUTO"
	ForJSONPath ForClauseMode = "JSON PATH"
	ForXMLAuto  ForClauseMode = "XML AUTO"
	ForXMLPath  ForClauseMode = "XML PATH"
)
