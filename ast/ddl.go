package ast

// DataType is a SQL type reference. Optional size fields are pointers so
// that an unspecified size omits the parenthesized suffix entirely.
type DataType struct {
	Kind      DataTypeKind
	Length    *uint64     // CHAR/VARCHAR/BINARY/FLOAT width
	Precision *uint64     // NUMERIC/DECIMAL precision
	Scale     *uint64     // NUMERIC/DECIMAL scale
	Timezone  *bool       // TIME/TIMESTAMP: nil unspecified, WITH/WITHOUT TIME ZONE
	Elem      *DataType   // ARRAY element type
	Name      *ObjectName // custom types
}

func (d *DataType) node() {}

// DataTypeKind discriminates the built-in type shapes.
type DataTypeKind string

const (
	TypeChar      DataTypeKind = "CHAR"
	TypeVarchar   DataTypeKind = "VARCHAR"
	TypeText      DataTypeKind = "TEXT"
	TypeSmallInt  DataTypeKind = "SMALLINT"
	TypeInt       DataTypeKind = "INT"
	TypeBigInt    DataTypeKind = "BIGINT"
	TypeNumeric   DataTypeKind = "NUMERIC"
	TypeDecimal   DataTypeKind = "DECIMAL"
	TypeReal      DataTypeKind = "REAL"
	TypeDouble    DataTypeKind = "DOUBLE PRECISION"
	TypeFloat     DataTypeKind = "FLOAT"
	TypeBoolean   DataTypeKind = "BOOLEAN"
	TypeDate      DataTypeKind = "DATE"
	TypeTime      DataTypeKind = "TIME"
	TypeTimestamp DataTypeKind = "TIMESTAMP"
	TypeInterval  DataTypeKind = "INTERVAL"
	TypeJSON      DataTypeKind = "JSON"
	TypeUUID      DataTypeKind = "UUID"
	TypeBytea     DataTypeKind = "BYTEA"
	TypeBinary    DataTypeKind = "BINARY"
	TypeVarbinary DataTypeKind = "VARBINARY"
	TypeArray     DataTypeKind = "ARRAY"
	TypeCustom    DataTypeKind = "CUSTOM"
)

// -----------------------------------------------------------------------------
// CREATE TABLE

// CreateTable is a CREATE TABLE statement, including the CREATE TABLE AS
// query form.
type CreateTable struct {
	OrReplace   bool
	Temporary   bool
	IfNotExists bool
	Name        *ObjectName
	Columns     []*ColumnDef
	Constraints []TableConstraint
	Options     []*SQLOption
	Query       *Query
}

func (s *CreateTable) node()          {}
func (s *CreateTable) statementNode() {}

// SQLOption is a `key = value` table option.
type SQLOption struct {
	Name  *Ident
	Value Expression
}

func (o *SQLOption) node() {}

// ColumnDef is one column definition in CREATE TABLE.
type ColumnDef struct {
	Name      *Ident
	Type      *DataType
	Collation *ObjectName
	Options   []*ColumnOptionDef
}

func (c *ColumnDef) node() {}

// ColumnOptionDef is an optionally named column option
// (`[CONSTRAINT name] option`).
type ColumnOptionDef struct {
	Name   *Ident
	Option ColumnOption
}

func (c *ColumnOptionDef) node() {}

// ColumnOption is one column constraint or attribute.
type ColumnOption interface {
	Node
	columnOptionNode()
}

// ColumnNull is the explicit NULL option.
type ColumnNull struct{}

func (c *ColumnNull) node()             {}
func (c *ColumnNull) columnOptionNode() {}

// ColumnNotNull is the NOT NULL option.
type ColumnNotNull struct{}

func (c *ColumnNotNull) node()             {}
func (c *ColumnNotNull) columnOptionNode() {}

// ColumnDefault is `DEFAULT expr`.
type ColumnDefault struct {
	Expr Expression
}

func (c *ColumnDefault) node()             {}
func (c *ColumnDefault) columnOptionNode() {}

// ColumnUnique is UNIQUE, or PRIMARY KEY when IsPrimary is set.
type ColumnUnique struct {
	IsPrimary bool
}

func (c *ColumnUnique) node()             {}
func (c *ColumnUnique) columnOptionNode() {}

// ColumnCheck is `CHECK (expr)`.
type ColumnCheck struct {
	Expr Expression
}

func (c *ColumnCheck) node()             {}
func (c *ColumnCheck) columnOptionNode() {}

// ColumnForeignKey is `REFERENCES table [(cols)] [ON DELETE ...] [ON UPDATE ...]`.
type ColumnForeignKey struct {
	ForeignTable    *ObjectName
	ReferredColumns []*Ident
	OnDelete        ReferentialAction
	OnUpdate        ReferentialAction
}

func (c *ColumnForeignKey) node()             {}
func (c *ColumnForeignKey) columnOptionNode() {}

// ReferentialAction is the action of an ON DELETE / ON UPDATE clause.
// ActionNone omits the clause.
type ReferentialAction int

const (
	ActionNone ReferentialAction = iota
	ActionRestrict
	ActionCascade
	ActionSetNull
	ActionNoAction
	ActionSetDefault
)

// TableConstraint is one table-level constraint in CREATE TABLE or
// ALTER TABLE ADD.
type TableConstraint interface {
	Node
	tableConstraintNode()
}

// UniqueConstraint is `[CONSTRAINT name] UNIQUE|PRIMARY KEY (cols)`.
type UniqueConstraint struct {
	Name      *Ident
	Columns   []*Ident
	IsPrimary bool
}

func (c *UniqueConstraint) node()                {}
func (c *UniqueConstraint) tableConstraintNode() {}

// ForeignKeyConstraint is `[CONSTRAINT name] FOREIGN KEY (cols) REFERENCES ...`.
type ForeignKeyConstraint struct {
	Name            *Ident
	Columns         []*Ident
	ForeignTable    *ObjectName
	ReferredColumns []*Ident
	OnDelete        ReferentialAction
	OnUpdate        ReferentialAction
}

func (c *ForeignKeyConstraint) node()                {}
func (c *ForeignKeyConstraint) tableConstraintNode() {}

// CheckConstraint is `[CONSTRAINT name] CHECK (expr)`.
type CheckConstraint struct {
	Name *Ident
	Expr Expression
}

func (c *CheckConstraint) node()                {}
func (c *CheckConstraint) tableConstraintNode() {}

// -----------------------------------------------------------------------------
// Other CREATE statements

// CreateView is a CREATE [MATERIALIZED] VIEW statement.
type CreateView struct {
	OrReplace    bool
	Materialized bool
	IfNotExists  bool
	Name         *ObjectName
	Columns      []*Ident
	Query        *Query
}

func (s *CreateView) node()          {}
func (s *CreateView) statementNode() {}

// CreateIndex is a CREATE [UNIQUE] INDEX statement.
type CreateIndex struct {
	Name        *Ident // nil for unnamed indexes
	Table       *ObjectName
	Using       *Ident
	Columns     []*OrderByExpr
	Unique      bool
	IfNotExists bool
}

func (s *CreateIndex) node()          {}
func (s *CreateIndex) statementNode() {}

// CreateSchema is a CREATE SCHEMA statement.
type CreateSchema struct {
	Name        *ObjectName
	IfNotExists bool
}

func (s *CreateSchema) node()          {}
func (s *CreateSchema) statementNode() {}

// CreateSequence is a CREATE SEQUENCE statement.
type CreateSequence struct {
	Temporary   bool
	IfNotExists bool
	Name        *ObjectName
	Type        *DataType
	Options     []SequenceOption
	OwnedBy     *OwnedBy // nil omits the clause
}

func (s *CreateSequence) node()          {}
func (s *CreateSequence) statementNode() {}

// SequenceOption is one option of a CREATE SEQUENCE statement.
type SequenceOption interface {
	Node
	sequenceOptionNode()
}

// SequenceIncrementBy is `INCREMENT [BY] value`.
type SequenceIncrementBy struct {
	Value Expression
	By    bool
}

func (o *SequenceIncrementBy) node()               {}
func (o *SequenceIncrementBy) sequenceOptionNode() {}

// SequenceMinValue is the MINVALUE option; the three-state payload keeps
// "unspecified", "NO MINVALUE", and "MINVALUE expr" mutually exclusive.
type SequenceMinValue struct {
	Value MinMaxValue
}

func (o *SequenceMinValue) node()               {}
func (o *SequenceMinValue) sequenceOptionNode() {}

// SequenceMaxValue is the MAXVALUE option.
type SequenceMaxValue struct {
	Value MinMaxValue
}

func (o *SequenceMaxValue) node()               {}
func (o *SequenceMaxValue) sequenceOptionNode() {}

// SequenceStartWith is `START [WITH] value`.
type SequenceStartWith struct {
	Value Expression
	With  bool
}

func (o *SequenceStartWith) node()               {}
func (o *SequenceStartWith) sequenceOptionNode() {}

// SequenceCache is `CACHE value`.
type SequenceCache struct {
	Value Expression
}

func (o *SequenceCache) node()               {}
func (o *SequenceCache) sequenceOptionNode() {}

// SequenceCycle is `CYCLE` or `NO CYCLE`.
type SequenceCycle struct {
	Cycle bool
}

func (o *SequenceCycle) node()               {}
func (o *SequenceCycle) sequenceOptionNode() {}

// MinMaxValue is the tagged payload of MINVALUE/MAXVALUE options.
type MinMaxValue struct {
	Kind  MinMaxValueKind
	Value Expression // set only for MinMaxSet
}

// MinMaxValueKind discriminates the three MINVALUE/MAXVALUE states.
type MinMaxValueKind int

const (
	// MinMaxUnspecified emits nothing after the option keyword position.
	MinMaxUnspecified MinMaxValueKind = iota
	// MinMaxNone emits the NO-prefixed keyword.
	MinMaxNone
	// MinMaxSet emits the keyword followed by the value expression.
	MinMaxSet
)

// UnspecifiedValue returns the "option not spelled out" MinMaxValue.
func UnspecifiedValue() MinMaxValue { return MinMaxValue{Kind: MinMaxUnspecified} }

// NoValue returns the `NO MINVALUE`/`NO MAXVALUE` MinMaxValue.
func NoValue() MinMaxValue { return MinMaxValue{Kind: MinMaxNone} }

// SomeValue returns a MinMaxValue carrying an explicit bound.
func SomeValue(expr Expression) MinMaxValue {
	return MinMaxValue{Kind: MinMaxSet, Value: expr}
}

// OwnedBy is the `OWNED BY NONE` / `OWNED BY name` clause of a sequence.
type OwnedBy struct {
	None bool
	Name *ObjectName // set only when None is false
}

func (o *OwnedBy) node() {}

// CreateRole is a CREATE ROLE statement.
type CreateRole struct {
	Names       []*ObjectName
	IfNotExists bool
	Options     []RoleOption
}

func (s *CreateRole) node()          {}
func (s *CreateRole) statementNode() {}

// RoleOption is one option of CREATE ROLE / ALTER ROLE. Every boolean
// option maps to an explicit keyword pair during serialization.
type RoleOption interface {
	Node
	roleOptionNode()
}

// RoleSuperUser is SUPERUSER / NOSUPERUSER.
type RoleSuperUser struct{ Value bool }

// RoleCreateDB is CREATEDB / NOCREATEDB.
type RoleCreateDB struct{ Value bool }

// RoleCreateRole is CREATEROLE / NOCREATEROLE.
type RoleCreateRole struct{ Value bool }

// RoleInherit is INHERIT / NOINHERIT.
type RoleInherit struct{ Value bool }

// RoleLogin is LOGIN / NOLOGIN.
type RoleLogin struct{ Value bool }

// RoleReplication is REPLICATION / NOREPLICATION.
type RoleReplication struct{ Value bool }

// RoleBypassRLS is BYPASSRLS / NOBYPASSRLS.
type RoleBypassRLS struct{ Value bool }

// RoleConnectionLimit is `CONNECTION LIMIT expr`.
type RoleConnectionLimit struct{ Limit Expression }

// RoleValidUntil is `VALID UNTIL expr`.
type RoleValidUntil struct{ Until Expression }

// RolePassword is the PASSWORD option with its tagged expr-or-NULL payload.
type RolePassword struct{ Password Password }

func (o *RoleSuperUser) node()       {}
func (o *RoleCreateDB) node()        {}
func (o *RoleCreateRole) node()      {}
func (o *RoleInherit) node()         {}
func (o *RoleLogin) node()           {}
func (o *RoleReplication) node()     {}
func (o *RoleBypassRLS) node()       {}
func (o *RoleConnectionLimit) node() {}
func (o *RoleValidUntil) node()      {}
func (o *RolePassword) node()        {}

func (o *RoleSuperUser) roleOptionNode()       {}
func (o *RoleCreateDB) roleOptionNode()        {}
func (o *RoleCreateRole) roleOptionNode()      {}
func (o *RoleInherit) roleOptionNode()         {}
func (o *RoleLogin) roleOptionNode()           {}
func (o *RoleReplication) roleOptionNode()     {}
func (o *RoleBypassRLS) roleOptionNode()       {}
func (o *RoleConnectionLimit) roleOptionNode() {}
func (o *RoleValidUntil) roleOptionNode()      {}
func (o *RolePassword) roleOptionNode()        {}

// Password is the tagged payload of the PASSWORD role option:
// `PASSWORD expr` or `PASSWORD NULL`.
type Password struct {
	Kind  PasswordKind
	Value Expression // set only for PasswordSet
}

// PasswordKind discriminates the PASSWORD payload.
type PasswordKind int

const (
	// PasswordSet emits PASSWORD followed by the value expression.
	PasswordSet PasswordKind = iota
	// PasswordNull emits PASSWORD NULL.
	PasswordNull
)

// -----------------------------------------------------------------------------
// ALTER TABLE

// AlterTable is an ALTER TABLE statement carrying one or more operations.
type AlterTable struct {
	Name       *ObjectName
	IfExists   bool
	Only       bool
	Operations []AlterTableOperation
}

func (s *AlterTable) node()          {}
func (s *AlterTable) statementNode() {}

// AlterTableOperation is one ALTER TABLE action.
type AlterTableOperation interface {
	Node
	alterTableOperationNode()
}

// AddColumn is `ADD COLUMN [IF NOT EXISTS] def`.
type AddColumn struct {
	IfNotExists bool
	Column      *ColumnDef
}

// DropColumn is `DROP COLUMN [IF EXISTS] name [CASCADE]`.
type DropColumn struct {
	Name     *Ident
	IfExists bool
	Cascade  bool
}

// RenameColumn is `RENAME COLUMN old TO new`.
type RenameColumn struct {
	OldName *Ident
	NewName *Ident
}

// RenameTable is `RENAME TO name`.
type RenameTable struct {
	Name *ObjectName
}

// AddConstraint is `ADD constraint`.
type AddConstraint struct {
	Constraint TableConstraint
}

// DropConstraint is `DROP CONSTRAINT [IF EXISTS] name [CASCADE]`.
type DropConstraint struct {
	Name     *Ident
	IfExists bool
	Cascade  bool
}

// RenameConstraint is `RENAME CONSTRAINT old TO new`.
type RenameConstraint struct {
	OldName *Ident
	NewName *Ident
}

// AlterColumn is `ALTER COLUMN name op`.
type AlterColumn struct {
	Name *Ident
	Op   AlterColumnOperation
}

func (o *AddColumn) node()        {}
func (o *DropColumn) node()       {}
func (o *RenameColumn) node()     {}
func (o *RenameTable) node()      {}
func (o *AddConstraint) node()    {}
func (o *DropConstraint) node()   {}
func (o *RenameConstraint) node() {}
func (o *AlterColumn) node()      {}

func (o *AddColumn) alterTableOperationNode()        {}
func (o *DropColumn) alterTableOperationNode()       {}
func (o *RenameColumn) alterTableOperationNode()     {}
func (o *RenameTable) alterTableOperationNode()      {}
func (o *AddConstraint) alterTableOperationNode()    {}
func (o *DropConstraint) alterTableOperationNode()   {}
func (o *RenameConstraint) alterTableOperationNode() {}
func (o *AlterColumn) alterTableOperationNode()      {}

// AlterColumnOperation is the action of an ALTER COLUMN clause.
type AlterColumnOperation interface {
	Node
	alterColumnOperationNode()
}

// SetNotNull is `SET NOT NULL`.
type SetNotNull struct{}

// DropNotNull is `DROP NOT NULL`.
type DropNotNull struct{}

// SetDefault is `SET DEFAULT expr`.
type SetDefault struct {
	Expr Expression
}

// DropDefault is `DROP DEFAULT`.
type DropDefault struct{}

// SetDataType is `SET DATA TYPE type [USING expr]`.
type SetDataType struct {
	Type  *DataType
	Using Expression
}

func (o *SetNotNull) node()  {}
func (o *DropNotNull) node() {}
func (o *SetDefault) node()  {}
func (o *DropDefault) node() {}
func (o *SetDataType) node() {}

func (o *SetNotNull) alterColumnOperationNode()  {}
func (o *DropNotNull) alterColumnOperationNode() {}
func (o *SetDefault) alterColumnOperationNode()  {}
func (o *DropDefault) alterColumnOperationNode() {}
func (o *SetDataType) alterColumnOperationNode() {}

// -----------------------------------------------------------------------------
// Triggers

// CreateTrigger is a CREATE TRIGGER statement.
type CreateTrigger struct {
	Name       *Ident
	Period     TriggerPeriod
	Events     []TriggerEvent
	Table      *ObjectName
	ForEachRow bool // statement-level when false
	Condition  Expression
	Exec       *ObjectName // EXECUTE FUNCTION target
	ExecArgs   []Expression
}

func (s *CreateTrigger) node()          {}
func (s *CreateTrigger) statementNode() {}

// TriggerPeriod is BEFORE, AFTER, or INSTEAD OF.
type TriggerPeriod string

const (
	TriggerBefore    TriggerPeriod = "BEFORE"
	TriggerAfter     TriggerPeriod = "AFTER"
	TriggerInsteadOf TriggerPeriod = "INSTEAD OF"
)

// TriggerEvent is one firing event of a trigger. Columns is set only for
// UPDATE OF.
type TriggerEvent struct {
	Type    TriggerEventType
	Columns []*Ident
}

func (t *TriggerEvent) node() {}

// TriggerEventType discriminates trigger firing events.
type TriggerEventType string

const (
	TriggerInsert   TriggerEventType = "INSERT"
	TriggerUpdate   TriggerEventType = "UPDATE"
	TriggerDelete   TriggerEventType = "DELETE"
	TriggerTruncate TriggerEventType = "TRUNCATE"
)

// -----------------------------------------------------------------------------
// DROP and friends

// Drop is a DROP statement over any object type.
type Drop struct {
	ObjectType ObjectType
	IfExists   bool
	Names      []*ObjectName
	Cascade    bool
	Restrict   bool
}

func (s *Drop) node()          {}
func (s *Drop) statementNode() {}

// ObjectType names the kind of object a DROP or COMMENT targets.
type ObjectType string

const (
	ObjectTable    ObjectType = "TABLE"
	ObjectView     ObjectType = "VIEW"
	ObjectIndex    ObjectType = "INDEX"
	ObjectSchema   ObjectType = "SCHEMA"
	ObjectSequence ObjectType = "SEQUENCE"
	ObjectRole     ObjectType = "ROLE"
	ObjectColumn   ObjectType = "COLUMN"
)

// Truncate is a TRUNCATE TABLE statement.
type Truncate struct {
	Name *ObjectName
}

func (s *Truncate) node()          {}
func (s *Truncate) statementNode() {}

// CommentStmt is `COMMENT ON type name IS 'text'`; a nil Comment emits
// IS NULL, which clears the comment.
type CommentStmt struct {
	ObjectType ObjectType
	Name       *ObjectName
	Comment    *string
	IfExists   bool
}

func (s *CommentStmt) node()          {}
func (s *CommentStmt) statementNode() {}
