package seed

import "strings"

const nullLiteral = "null"

// Literal quotes s as a SQL string literal, doubling embedded quotes.
func Literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// OptionalLiteral is Literal, except that an empty string becomes null.
func OptionalLiteral(s string) string {
	if s == "" {
		return nullLiteral
	}
	return Literal(s)
}
