package ast

// Insert is an INSERT statement.
type Insert struct {
	Table     *ObjectName
	Columns   []*Ident
	Source    *Query
	Overwrite bool
	On        *OnConflict
	Returning []Expression
}

func (s *Insert) node()          {}
func (s *Insert) statementNode() {}

// OnConflict is `ON CONFLICT [(target, ...)] action`.
type OnConflict struct {
	Target []*Ident
	Action OnConflictAction
}

func (o *OnConflict) node() {}

// OnConflictAction is the DO NOTHING / DO UPDATE arm of ON CONFLICT.
type OnConflictAction interface {
	Node
	onConflictActionNode()
}

// DoNothing is `DO NOTHING`.
type DoNothing struct{}

func (a *DoNothing) node()                 {}
func (a *DoNothing) onConflictActionNode() {}

// DoUpdate is `DO UPDATE SET assignments [WHERE condition]`.
type DoUpdate struct {
	Assignments []*Assignment
	Selection   Expression
}

func (a *DoUpdate) node()                 {}
func (a *DoUpdate) onConflictActionNode() {}

// Assignment is one `target = value` pair in UPDATE or DO UPDATE SET.
type Assignment struct {
	Target *ObjectName
	Value  Expression
}

func (a *Assignment) node() {}

// Update is an UPDATE statement.
type Update struct {
	Table       *TableWithJoins
	Assignments []*Assignment
	From        *TableWithJoins
	Selection   Expression
	Returning   []Expression
}

func (s *Update) node()          {}
func (s *Update) statementNode() {}

// Delete is a DELETE statement.
type Delete struct {
	From      *TableWithJoins
	Using     *TableWithJoins
	Selection Expression
	Returning []Expression
}

func (s *Delete) node()          {}
func (s *Delete) statementNode() {}

// Declare is a DECLARE cursor statement. Sensitive, Scroll, and Hold are
// tristate: nil omits the clause, which differs from either spelling.
type Declare struct {
	Name      *Ident
	Binary    bool
	Sensitive *bool // SENSITIVE / INSENSITIVE
	Scroll    *bool // SCROLL / NO SCROLL
	Hold      *bool // WITH HOLD / WITHOUT HOLD
	Query     *Query
}

func (s *Declare) node()          {}
func (s *Declare) statementNode() {}

// -----------------------------------------------------------------------------
// Transactions

// StartTransaction is `START TRANSACTION [modes]`.
type StartTransaction struct {
	Modes []TransactionMode
}

func (s *StartTransaction) node()          {}
func (s *StartTransaction) statementNode() {}

// TransactionMode is one mode of START TRANSACTION / SET TRANSACTION.
type TransactionMode interface {
	Node
	transactionModeNode()
}

// TransactionAccessMode is READ ONLY / READ WRITE.
type TransactionAccessMode struct {
	ReadOnly bool
}

func (m *TransactionAccessMode) node()                {}
func (m *TransactionAccessMode) transactionModeNode() {}

// TransactionIsolationLevel is `ISOLATION LEVEL level`.
type TransactionIsolationLevel struct {
	Level IsolationLevel
}

func (m *TransactionIsolationLevel) node()                {}
func (m *TransactionIsolationLevel) transactionModeNode() {}

// IsolationLevel is a transaction isolation level keyword sequence.
type IsolationLevel string

const (
	ReadUncommitted IsolationLevel = "READ UNCOMMITTED"
	ReadCommitted   IsolationLevel = "READ COMMITTED"
	RepeatableRead  IsolationLevel = "REPEATABLE READ"
	Serializable    IsolationLevel = "SERIALIZABLE"
)

// Commit is `COMMIT [AND [NO] CHAIN]`.
type Commit struct {
	Chain bool
}

func (s *Commit) node()          {}
func (s *Commit) statementNode() {}

// Rollback is `ROLLBACK [AND [NO] CHAIN] [TO SAVEPOINT name]`.
type Rollback struct {
	Chain     bool
	Savepoint *Ident
}

func (s *Rollback) node()          {}
func (s *Rollback) statementNode() {}

// Savepoint is a SAVEPOINT statement.
type Savepoint struct {
	Name *Ident
}

func (s *Savepoint) node()          {}
func (s *Savepoint) statementNode() {}

// -----------------------------------------------------------------------------
// GRANT / REVOKE

// Grant is a GRANT statement.
type Grant struct {
	Privileges      Privileges
	Objects         GrantObjects
	Grantees        []*Ident
	WithGrantOption bool
	GrantedBy       *Ident
}

func (s *Grant) node()          {}
func (s *Grant) statementNode() {}

// Revoke is a REVOKE statement.
type Revoke struct {
	Privileges Privileges
	Objects    GrantObjects
	Grantees   []*Ident
	GrantedBy  *Ident
	Cascade    bool
}

func (s *Revoke) node()          {}
func (s *Revoke) statementNode() {}

// Privileges is either ALL [PRIVILEGES] or an explicit action list.
type Privileges interface {
	Node
	privilegesNode()
}

// AllPrivileges is `ALL [PRIVILEGES]`.
type AllPrivileges struct {
	WithPrivilegesKeyword bool
}

func (p *AllPrivileges) node()           {}
func (p *AllPrivileges) privilegesNode() {}

// ActionPrivileges is an explicit privilege action list.
type ActionPrivileges struct {
	Actions []*PrivilegeAction
}

func (p *ActionPrivileges) node()           {}
func (p *ActionPrivileges) privilegesNode() {}

// PrivilegeAction is one privilege keyword with an optional column list.
type PrivilegeAction struct {
	Type    PrivilegeType
	Columns []*Ident // SELECT/INSERT/UPDATE/REFERENCES only
}

func (a *PrivilegeAction) node() {}

// PrivilegeType is a privilege keyword.
type PrivilegeType string

const (
	PrivilegeSelect     PrivilegeType = "SELECT"
	PrivilegeInsert     PrivilegeType = "INSERT"
	PrivilegeUpdate     PrivilegeType = "UPDATE"
	PrivilegeDelete     PrivilegeType = "DELETE"
	PrivilegeReferences PrivilegeType = "REFERENCES"
	PrivilegeUsage      PrivilegeType = "USAGE"
	PrivilegeConnect    PrivilegeType = "CONNECT"
	PrivilegeCreate     PrivilegeType = "CREATE"
	PrivilegeExecute    PrivilegeType = "EXECUTE"
	PrivilegeTemporary  PrivilegeType = "TEMPORARY"
	PrivilegeTrigger    PrivilegeType = "TRIGGER"
	PrivilegeTruncate   PrivilegeType = "TRUNCATE"
)

// GrantObjects is the object set of GRANT/REVOKE.
type GrantObjects interface {
	Node
	grantObjectsNode()
}

// GrantTables is `[TABLE] name, ...`.
type GrantTables struct {
	Names []*ObjectName
}

// GrantSchemas is `SCHEMA name, ...`.
type GrantSchemas struct {
	Names []*ObjectName
}

// GrantSequences is `SEQUENCE name, ...`.
type GrantSequences struct {
	Names []*ObjectName
}

// GrantAllTablesInSchema is `ALL TABLES IN SCHEMA name, ...`.
type GrantAllTablesInSchema struct {
	Schemas []*ObjectName
}

// GrantAllSequencesInSchema is `ALL SEQUENCES IN SCHEMA name, ...`.
type GrantAllSequencesInSchema struct {
	Schemas []*ObjectName
}

func (g *GrantTables) node()               {}
func (g *GrantSchemas) node()              {}
func (g *GrantSequences) node()            {}
func (g *GrantAllTablesInSchema) node()    {}
func (g *GrantAllSequencesInSchema) node() {}

func (g *GrantTables) grantObjectsNode()               {}
func (g *GrantSchemas) grantObjectsNode()              {}
func (g *GrantSequences) grantObjectsNode()            {}
func (g *GrantAllTablesInSchema) grantObjectsNode()    {}
func (g *GrantAllSequencesInSchema) grantObjectsNode() {}

// -----------------------------------------------------------------------------
// Misc statements

// Use is a USE statement.
type Use struct {
	Name *ObjectName
}

func (s *Use) node()          {}
func (s *Use) statementNode() {}

// Explain is an EXPLAIN statement wrapping another statement.
type Explain struct {
	Analyze   bool
	Verbose   bool
	Statement Statement
}

func (s *Explain) node()          {}
func (s *Explain) statementNode() {}
