package ast

// Literal represents a literal value.
type Literal struct {
	Type  LiteralType
	Value interface{}
}

func (l *Literal) node()           {}
func (l *Literal) expressionNode() {}

// LiteralType discriminates the kinds of literal values.
type LiteralType string

const (
	LiteralString         LiteralType = "String"
	LiteralNationalString LiteralType = "NationalString"
	LiteralHexString      LiteralType = "HexString"
	LiteralInteger        LiteralType = "Integer"
	LiteralFloat          LiteralType = "Float"
	LiteralBoolean        LiteralType = "Boolean"
	LiteralNull           LiteralType = "Null"
)

// StringLiteral returns a single-quoted string literal.
func StringLiteral(s string) *Literal {
	return &Literal{Type: LiteralString, Value: s}
}

// IntLiteral returns an integer literal.
func IntLiteral(v int64) *Literal {
	return &Literal{Type: LiteralInteger, Value: v}
}

// FloatLiteral returns a floating-point literal. The value is kept as the
// original text so serialization reproduces the source spelling.
func FloatLiteral(text string) *Literal {
	return &Literal{Type: LiteralFloat, Value: text}
}

// BoolLiteral returns a boolean literal.
func BoolLiteral(v bool) *Literal {
	return &Literal{Type: LiteralBoolean, Value: v}
}

// NullLiteral returns the NULL literal.
func NullLiteral() *Literal {
	return &Literal{Type: LiteralNull}
}
