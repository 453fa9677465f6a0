// Package ast defines the abstract syntax tree for multi-dialect SQL.
//
// Nodes are constructed once, by a parser or by hand, and are never mutated
// by traversal or serialization. Rewrites build replacement nodes instead of
// editing in place.
package ast

import "strings"

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()
}

// Statement is the interface implemented by all statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// TableFactor is the interface implemented by table references in a FROM
// clause: base tables, derived tables, and nested joins.
type TableFactor interface {
	Node
	tableFactorNode()
}

// -----------------------------------------------------------------------------
// Identifiers

// QuoteStyle selects the delimiter pair and escaping rule for an identifier.
// The parser resolves dialect quoting before node construction; the
// serializer only replays the stored style.
type QuoteStyle int

const (
	// QuoteNone emits the identifier verbatim with no delimiters.
	QuoteNone QuoteStyle = iota
	// QuoteDouble wraps the identifier in double quotes.
	QuoteDouble
	// QuoteSingle wraps the identifier in single quotes.
	QuoteSingle
	// QuoteBacktick wraps the identifier in backticks.
	QuoteBacktick
	// QuoteBracket wraps the identifier in square brackets.
	QuoteBracket
)

// Ident is a single identifier, optionally quoted.
type Ident struct {
	Value string
	Quote QuoteStyle
}

func (i *Ident) node() {}

// NewIdent returns an unquoted identifier.
func NewIdent(value string) *Ident {
	return &Ident{Value: value}
}

// QuotedIdent returns an identifier with the given quote style.
func QuotedIdent(value string, quote QuoteStyle) *Ident {
	return &Ident{Value: value, Quote: quote}
}

// ObjectName is a period-separated path of identifiers, such as
// schema.table.column. It always has at least one part.
type ObjectName struct {
	Parts []*Ident
}

func (o *ObjectName) node() {}

// NewObjectName builds an object name from unquoted parts. It fails with
// MalformedNodeError when no parts are given.
func NewObjectName(parts ...string) (*ObjectName, error) {
	if len(parts) == 0 {
		return nil, &MalformedNodeError{Node: "ObjectName", Reason: "name must have at least one part"}
	}
	idents := make([]*Ident, len(parts))
	for i, p := range parts {
		idents[i] = NewIdent(p)
	}
	return &ObjectName{Parts: idents}, nil
}

// MustObjectName is NewObjectName for names known valid at compile time.
// It panics on an empty part list.
func MustObjectName(parts ...string) *ObjectName {
	name, err := NewObjectName(parts...)
	if err != nil {
		panic(err)
	}
	return name
}

// ObjectNameFromIdents builds an object name from already-constructed
// identifiers, preserving their quote styles.
func ObjectNameFromIdents(parts ...*Ident) (*ObjectName, error) {
	if len(parts) == 0 {
		return nil, &MalformedNodeError{Node: "ObjectName", Reason: "name must have at least one part"}
	}
	return &ObjectName{Parts: parts}, nil
}

// Unquoted returns the dot-joined raw values of the name's parts, with no
// quoting applied. Useful for diagnostics and map keys.
func (o *ObjectName) Unquoted() string {
	parts := make([]string, len(o.Parts))
	for i, p := range o.Parts {
		parts[i] = p.Value
	}
	return strings.Join(parts, ".")
}
