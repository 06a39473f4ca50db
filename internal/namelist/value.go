package namelist

import (
	"strconv"
	"strings"
)

// Kind discriminates the scalar types a namelist field can hold.
type Kind int

const (
	// KindRaw preserves value text this package does not interpret
	// (arrays, repeat counts, derived-type references) so untouched
	// template content survives a read/write cycle.
	KindRaw Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

// Value is one scalar namelist value.
type Value struct {
	Kind  Kind
	Str   string // KindString payload, or verbatim text for KindRaw
	Int   int64
	Float float64
	Bool  bool
}

func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Int(n int64) Value      { return Value{Kind: KindInt, Int: n} }
func Float(f float64) Value  { return Value{Kind: KindFloat, Float: f} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func Raw(text string) Value  { return Value{Kind: KindRaw, Str: text} }

// Text renders the value as a Fortran namelist literal.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return "'" + strings.ReplaceAll(v.Str, "'", "''") + "'"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return ".true."
		}
		return ".false."
	default:
		return v.Str
	}
}

// parseValue classifies raw value text into a typed Value. Anything this
// package cannot interpret is kept verbatim as KindRaw.
func parseValue(text string) Value {
	t := strings.TrimSpace(text)

	if len(t) >= 2 {
		if (t[0] == '\'' && t[len(t)-1] == '\'') || (t[0] == '"' && t[len(t)-1] == '"') {
			quote := string(t[0])
			inner := t[1 : len(t)-1]
			return String(strings.ReplaceAll(inner, quote+quote, quote))
		}
	}

	switch strings.ToLower(t) {
	case ".true.", ".t.", "t", "true":
		return Bool(true)
	case ".false.", ".f.", "f", "false":
		return Bool(false)
	}

	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Int(n)
	}

	// Fortran permits d/D exponent markers on real literals.
	norm := strings.NewReplacer("d", "e", "D", "e").Replace(t)
	if f, err := strconv.ParseFloat(norm, 64); err == nil {
		return Float(f)
	}

	return Raw(t)
}
