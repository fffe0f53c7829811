package graphql

import (
	"strconv"
	"strings"
)

// Arg is a key:value argument pair rendered into a query document. The
// value is inserted verbatim, so string values must already be quoted
// (see String and Int).
type Arg struct {
	Key   string
	Value string
}

// String builds an Arg carrying a quoted string value.
func String(key, value string) Arg {
	return Arg{Key: key, Value: strconv.Quote(value)}
}

// Int builds an Arg carrying an integer value.
func Int(key string, value int) Arg {
	return Arg{Key: key, Value: strconv.Itoa(value)}
}

// Raw builds an Arg whose value is inserted without quoting, for
// booleans, enums, and pre-rendered values.
func Raw(key, value string) Arg {
	return Arg{Key: key, Value: value}
}

// BuildQuery renders a single-field query document:
//
//	{ cast (eid:"X",versionNumber:3) { eid title fieldInfo } }
//
// With no args the parenthesized list is omitted.
func BuildQuery(field string, args []Arg, fields []string) string {
	var b strings.Builder
	b.WriteString("{\n  ")
	b.WriteString(field)
	if len(args) > 0 {
		b.WriteString(" ")
		b.WriteString(renderArgs(args))
	}
	b.WriteString(" {\n    ")
	b.WriteString(strings.Join(fields, " "))
	b.WriteString("\n  }\n}")
	return b.String()
}

// renderArgs joins argument pairs as (k1:v1,k2:v2).
func renderArgs(args []Arg) string {
	pairs := make([]string, len(args))
	for i, a := range args {
		pairs[i] = a.Key + ":" + a.Value
	}
	return "(" + strings.Join(pairs, ",") + ")"
}
