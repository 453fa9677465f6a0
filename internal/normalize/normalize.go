// Package normalize provides SQL text normalization for comparing
// semantically equivalent statements that may differ in surface spelling.
package normalize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex     = regexp.MustCompile(`\s+`)
	innerJoinRegex      = regexp.MustCompile(`(?i)\bINNER\s+JOIN\b`)
	leftOuterJoinRegex  = regexp.MustCompile(`(?i)\bLEFT\s+OUTER\s+JOIN\b`)
	rightOuterJoinRegex = regexp.MustCompile(`(?i)\bRIGHT\s+OUTER\s+JOIN\b`)
	fullOuterJoinRegex  = regexp.MustCompile(`(?i)\bFULL\s+OUTER\s+JOIN\b`)
	ascRegex            = regexp.MustCompile(`\s+ASC\b`)
	offsetRowsRegex     = regexp.MustCompile(`\bOFFSET\s+(\S+)\s+ROWS?\b`)
	unionDistinctRegex  = regexp.MustCompile(`(?i)\bUNION\s+DISTINCT\b`)
)

// Whitespace collapses whitespace runs to a single space and trims the
// result.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// EscapesInStrings rewrites backslash-escaped quotes inside single-quoted
// strings to the SQL-standard doubled form, so texts produced with either
// escape style compare equal.
func EscapesInStrings(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch != '\'' {
			result.WriteByte(ch)
			i++
			continue
		}
		result.WriteByte(ch)
		i++
		for i < len(s) {
			ch = s[i]
			if ch == '\\' && i+1 < len(s) && s[i+1] == '\'' {
				result.WriteString("''")
				i += 2
			} else if ch == '\\' && i+1 < len(s) && s[i+1] == '\\' {
				result.WriteByte('\\')
				i += 2
			} else if ch == '\'' {
				result.WriteByte(ch)
				i++
				if i < len(s) && s[i] == '\'' {
					// doubled quote stays inside the literal
					result.WriteByte(s[i])
					i++
					continue
				}
				break
			} else {
				result.WriteByte(ch)
				i++
			}
		}
	}
	return result.String()
}

// Statement normalizes a statement for comparison: whitespace collapsed,
// default keywords dropped (INNER, OUTER, ASC, UNION DISTINCT, OFFSET n
// ROWS), escapes canonicalized, and the trailing semicolon removed.
func Statement(s string) string {
	n := Whitespace(s)
	n = EscapesInStrings(n)
	n = innerJoinRegex.ReplaceAllString(n, "JOIN")
	n = leftOuterJoinRegex.ReplaceAllString(n, "LEFT JOIN")
	n = rightOuterJoinRegex.ReplaceAllString(n, "RIGHT JOIN")
	n = fullOuterJoinRegex.ReplaceAllString(n, "FULL JOIN")
	n = ascRegex.ReplaceAllString(n, "")
	n = offsetRowsRegex.ReplaceAllString(n, "OFFSET $1")
	n = unionDistinctRegex.ReplaceAllString(n, "UNION")
	n = strings.TrimSuffix(strings.TrimSpace(n), ";")
	return strings.TrimSpace(n)
}
