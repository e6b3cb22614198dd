// Package jsonprint implements a human-debug pretty printer for value.Value
// trees. It is explicitly not part of the wire contract: its whitespace,
// number formatting (%g, not the 17-significant-digit form encode uses), and
// Go-quoted (%q) string output differ from encode's canonical output. Do not use
// it to produce bytes you intend to feed back to decode.Decode; use the
// encode package for that.
package jsonprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/radikant-go/strictjson/value"
)

// Fprint writes a human-readable, indented rendering of v to w. indent is
// the string repeated once per nesting level (e.g. "  " or "\t").
func Fprint(w io.Writer, v *value.Value, indent string) error {
	return fprintValue(w, v, indent, 0)
}

// Sprint is a convenience wrapper over Fprint that returns the rendering as
// a string.
func Sprint(v *value.Value, indent string) string {
	var b strings.Builder
	_ = Fprint(&b, v, indent)
	return b.String()
}

func fprintValue(w io.Writer, v *value.Value, indent string, depth int) error {
	switch v.Kind() {
	case value.Null:
		return writeStr(w, "null")
	case value.Bool:
		b, _ := v.Bool()
		return writeStr(w, fmt.Sprintf("%t", b))
	case value.Number:
		n, _ := v.Num()
		// %g, unlike encode's fixed 17-significant-digit form: cosmetic only.
		return writeStr(w, fmt.Sprintf("%g", n))
	case value.String:
		s, _ := v.Str()
		// Go %q quoting, unlike encode: cosmetic only. Control bytes and
		// non-printable runes use Go escapes (\x01, \a, \v, \U...), so the
		// result is not always valid JSON.
		return writeStr(w, fmt.Sprintf("%q", s))
	case value.Array:
		return fprintArray(w, v, indent, depth)
	case value.Object:
		return fprintObject(w, v, indent, depth)
	default:
		return writeStr(w, "<invalid>")
	}
}

func fprintArray(w io.Writer, v *value.Value, indent string, depth int) error {
	elems := v.Elems()
	if len(elems) == 0 {
		return writeStr(w, "[]")
	}
	if err := writeStr(w, "[\n"); err != nil {
		return err
	}
	for i, e := range elems {
		if err := writeIndent(w, indent, depth+1); err != nil {
			return err
		}
		if err := fprintValue(w, e, indent, depth+1); err != nil {
			return err
		}
		if i < len(elems)-1 {
			if err := writeStr(w, ","); err != nil {
				return err
			}
		}
		if err := writeStr(w, "\n"); err != nil {
			return err
		}
	}
	if err := writeIndent(w, indent, depth); err != nil {
		return err
	}
	return writeStr(w, "]")
}

func fprintObject(w io.Writer, v *value.Value, indent string, depth int) error {
	members := v.Members()
	if len(members) == 0 {
		return writeStr(w, "{}")
	}
	if err := writeStr(w, "{\n"); err != nil {
		return err
	}
	for i, m := range members {
		if err := writeIndent(w, indent, depth+1); err != nil {
			return err
		}
		if err := writeStr(w, fmt.Sprintf("%q: ", m.Key)); err != nil {
			return err
		}
		if err := fprintValue(w, m.Value, indent, depth+1); err != nil {
			return err
		}
		if i < len(members)-1 {
			if err := writeStr(w, ","); err != nil {
				return err
			}
		}
		if err := writeStr(w, "\n"); err != nil {
			return err
		}
	}
	if err := writeIndent(w, indent, depth); err != nil {
		return err
	}
	return writeStr(w, "}")
}

func writeIndent(w io.Writer, indent string, depth int) error {
	return writeStr(w, strings.Repeat(indent, depth))
}

func writeStr(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
