package ast

// IdentifierExpr is a bare column or variable reference.
type IdentifierExpr struct {
	Ident *Ident
}

func (e *IdentifierExpr) node()           {}
func (e *IdentifierExpr) expressionNode() {}

// CompoundIdentifierExpr is a multi-part reference such as t.col or
// schema.table.col.
type CompoundIdentifierExpr struct {
	Name *ObjectName
}

func (e *CompoundIdentifierExpr) node()           {}
func (e *CompoundIdentifierExpr) expressionNode() {}

// Wildcard is the bare `*` projection item.
type Wildcard struct{}

func (e *Wildcard) node()           {}
func (e *Wildcard) expressionNode() {}

// QualifiedWildcard is a `name.*` projection item.
type QualifiedWildcard struct {
	Name *ObjectName
}

func (e *QualifiedWildcard) node()           {}
func (e *QualifiedWildcard) expressionNode() {}

// BinaryOp is a binary operator spelling.
type BinaryOp string

const (
	OpPlus          BinaryOp = "+"
	OpMinus         BinaryOp = "-"
	OpMultiply      BinaryOp = "*"
	OpDivide        BinaryOp = "/"
	OpModulo        BinaryOp = "%"
	OpStringConcat  BinaryOp = "||"
	OpGt            BinaryOp = ">"
	OpLt            BinaryOp = "<"
	OpGtEq          BinaryOp = ">="
	OpLtEq          BinaryOp = "<="
	OpEq            BinaryOp = "="
	OpNotEq         BinaryOp = "<>"
	OpAnd           BinaryOp = "AND"
	OpOr            BinaryOp = "OR"
	OpXor           BinaryOp = "XOR"
	OpBitwiseAnd    BinaryOp = "&"
	OpBitwiseOr     BinaryOp = "|"
	OpBitwiseXor    BinaryOp = "^"
	OpShiftLeft     BinaryOp = "<<"
	OpShiftRight    BinaryOp = ">>"
	OpJSONArrow     BinaryOp = "->"
	OpJSONLongArrow BinaryOp = "->>"
)

// BinaryExpr is a binary operation.
type BinaryExpr struct {
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (e *BinaryExpr) node()           {}
func (e *BinaryExpr) expressionNode() {}

// UnaryOp is a unary operator spelling.
type UnaryOp string

const (
	OpNot        UnaryOp = "NOT"
	OpNegate     UnaryOp = "-"
	OpIdentity   UnaryOp = "+"
	OpBitwiseNot UnaryOp = "~"
)

// UnaryExpr is a unary operation.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expression
}

func (e *UnaryExpr) node()           {}
func (e *UnaryExpr) expressionNode() {}

// IsNullExpr is `expr IS [NOT] NULL`.
type IsNullExpr struct {
	Expr    Expression
	Negated bool
}

func (e *IsNullExpr) node()           {}
func (e *IsNullExpr) expressionNode() {}

// IsDistinctFromExpr is `expr IS [NOT] DISTINCT FROM expr`.
type IsDistinctFromExpr struct {
	Left    Expression
	Right   Expression
	Negated bool
}

func (e *IsDistinctFromExpr) node()           {}
func (e *IsDistinctFromExpr) expressionNode() {}

// InListExpr is `expr [NOT] IN (expr, ...)`.
type InListExpr struct {
	Expr    Expression
	List    []Expression
	Negated bool
}

func (e *InListExpr) node()           {}
func (e *InListExpr) expressionNode() {}

// InSubqueryExpr is `expr [NOT] IN (query)`.
type InSubqueryExpr struct {
	Expr     Expression
	Subquery *Query
	Negated  bool
}

func (e *InSubqueryExpr) node()           {}
func (e *InSubqueryExpr) expressionNode() {}

// BetweenExpr is `expr [NOT] BETWEEN low AND high`.
type BetweenExpr struct {
	Expr    Expression
	Negated bool
	Low     Expression
	High    Expression
}

func (e *BetweenExpr) node()           {}
func (e *BetweenExpr) expressionNode() {}

// LikeExpr is `expr [NOT] LIKE|ILIKE pattern [ESCAPE char]`.
type LikeExpr struct {
	Expr            Expression
	Pattern         Expression
	Negated         bool
	CaseInsensitive bool // ILIKE
	Escape          Expression
}

func (e *LikeExpr) node()           {}
func (e *LikeExpr) expressionNode() {}

// CastExpr is `CAST(expr AS type)` or `TRY_CAST(expr AS type)`.
type CastExpr struct {
	Expr Expression
	Type *DataType
	Try  bool
}

func (e *CastExpr) node()           {}
func (e *CastExpr) expressionNode() {}

// ExtractExpr is `EXTRACT(field FROM expr)`.
type ExtractExpr struct {
	Field DateTimeField
	Expr  Expression
}

func (e *ExtractExpr) node()           {}
func (e *ExtractExpr) expressionNode() {}

// DateTimeField names a date/time component for EXTRACT and INTERVAL.
type DateTimeField string

const (
	FieldYear    DateTimeField = "YEAR"
	FieldMonth   DateTimeField = "MONTH"
	FieldWeek    DateTimeField = "WEEK"
	FieldDay     DateTimeField = "DAY"
	FieldHour    DateTimeField = "HOUR"
	FieldMinute  DateTimeField = "MINUTE"
	FieldSecond  DateTimeField = "SECOND"
	FieldQuarter DateTimeField = "QUARTER"
	FieldEpoch   DateTimeField = "EPOCH"
)

// CollateExpr is `expr COLLATE collation`.
type CollateExpr struct {
	Expr      Expression
	Collation *ObjectName
}

func (e *CollateExpr) node()           {}
func (e *CollateExpr) expressionNode() {}

// NestedExpr is a parenthesized expression.
type NestedExpr struct {
	Expr Expression
}

func (e *NestedExpr) node()           {}
func (e *NestedExpr) expressionNode() {}

// TupleExpr is a parenthesized expression list `(a, b, c)`.
type TupleExpr struct {
	Exprs []Expression
}

func (e *TupleExpr) node()           {}
func (e *TupleExpr) expressionNode() {}

// ArrayExpr is an array constructor `[a, b, c]`.
type ArrayExpr struct {
	Exprs []Expression
}

func (e *ArrayExpr) node()           {}
func (e *ArrayExpr) expressionNode() {}

// CaseExpr is a CASE expression. Operand is nil for the searched form.
type CaseExpr struct {
	Operand Expression
	Whens   []*WhenClause
	Else    Expression
}

func (e *CaseExpr) node()           {}
func (e *CaseExpr) expressionNode() {}

// WhenClause is one `WHEN condition THEN result` arm of a CASE expression.
type WhenClause struct {
	Condition Expression
	Result    Expression
}

func (w *WhenClause) node() {}

// ExistsExpr is `[NOT] EXISTS (query)`.
type ExistsExpr struct {
	Subquery *Query
	Negated  bool
}

func (e *ExistsExpr) node()           {}
func (e *ExistsExpr) expressionNode() {}

// SubqueryExpr is a parenthesized scalar subquery.
type SubqueryExpr struct {
	Subquery *Query
}

func (e *SubqueryExpr) node()           {}
func (e *SubqueryExpr) expressionNode() {}

// FunctionCall is a function invocation, optionally with DISTINCT, a FILTER
// clause, and an OVER window.
type FunctionCall struct {
	Name     *ObjectName
	Args     []Expression
	Distinct bool
	Filter   Expression
	Over     *WindowSpec
}

func (e *FunctionCall) node()           {}
func (e *FunctionCall) expressionNode() {}

// IntervalExpr is `INTERVAL value [unit]`.
type IntervalExpr struct {
	Value Expression
	Unit  DateTimeField // empty when the literal carries its own unit text
}

func (e *IntervalExpr) node()           {}
func (e *IntervalExpr) expressionNode() {}

// AliasedExpr is `expr AS alias`, used in projections.
type AliasedExpr struct {
	Expr  Expression
	Alias *Ident
}

func (e *AliasedExpr) node()           {}
func (e *AliasedExpr) expressionNode() {}

// WindowSpec is the body of an OVER clause.
type WindowSpec struct {
	PartitionBy []Expression
	OrderBy     []*OrderByExpr
	Frame       *WindowFrame
}

func (w *WindowSpec) node() {}

// WindowFrame is a ROWS/RANGE/GROUPS frame specification.
type WindowFrame struct {
	Units WindowFrameUnits
	Start *FrameBound
	End   *FrameBound // nil means a single-bound frame
}

func (w *WindowFrame) node() {}

// WindowFrameUnits selects the frame mode.
type WindowFrameUnits string

const (
	FrameRows   WindowFrameUnits = "ROWS"
	FrameRange  WindowFrameUnits = "RANGE"
	FrameGroups WindowFrameUnits = "GROUPS"
)

// FrameBound is one endpoint of a window frame.
type FrameBound struct {
	Type   FrameBoundType
	Offset Expression // set only for preceding/following bounds
}

func (f *FrameBound) node() {}

// FrameBoundType discriminates window frame endpoints.
type FrameBoundType string

const (
	BoundCurrentRow         FrameBoundType = "CurrentRow"
	BoundUnboundedPreceding FrameBoundType = "UnboundedPreceding"
	BoundUnboundedFollowing FrameBoundType = "UnboundedFollowing"
	BoundPreceding          FrameBoundType = "Preceding"
	BoundFollowing          FrameBoundType = "Following"
)

// NamedWindow is one entry of a WINDOW clause.
type NamedWindow struct {
	Name *Ident
	Spec *WindowSpec
}

func (w *NamedWindow) node() {}
