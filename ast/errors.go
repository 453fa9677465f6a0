package ast

import "fmt"

// MalformedNodeError reports a construction-time invariant violation, such
// as an object name with no parts. The producing parser or builder is at
// fault; the node must not be used.
type MalformedNodeError struct {
	Node   string
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed %s node: %s", e.Node, e.Reason)
}

// UnsupportedVariantError reports a node variant that a serializer or
// traversal dispatch has no handling for. It indicates the taxonomy and an
// engine have fallen out of lock-step, which is a programming error rather
// than a condition to recover from.
type UnsupportedVariantError struct {
	Node interface{}
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported node variant %T", e.Node)
}

// RecursionLimitError reports that tree depth exceeded the configured bound
// during traversal or serialization. Any partial output produced before the
// error is invalid and must be discarded by the caller.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("tree depth exceeds recursion limit %d", e.Limit)
}
