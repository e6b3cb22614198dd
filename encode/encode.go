// Package encode implements the compact RFC 8259 encoder: a recursive
// serializer that walks a value.Value tree into a buf.Buffer, escaping
// strings and formatting numbers, and fails on non-finite numbers or
// excessive nesting depth.
//
// Object keys are emitted in insertion order (not sorted by UTF-16 code
// unit), and numbers are formatted with a fixed 17 significant digits
// rather than ECMA-262's shortest-round-trip algorithm.
package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/radikant-go/strictjson/buf"
	"github.com/radikant-go/strictjson/jsonerr"
	"github.com/radikant-go/strictjson/value"
)

// Encode serializes v into a compact UTF-8 JSON byte string: no optional
// whitespace, commas and colons only. It fails if the tree contains a
// non-finite number or nests deeper than value.MaxDepth.
func Encode(v *value.Value) ([]byte, error) {
	b := buf.New(64)
	if err := encodeValue(b, v, 0); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodeValue(b *buf.Buffer, v *value.Value, depth int) error {
	switch v.Kind() {
	case value.Null:
		b.AppendString("null")
		return nil
	case value.Bool:
		bv, _ := v.Bool()
		if bv {
			b.AppendString("true")
		} else {
			b.AppendString("false")
		}
		return nil
	case value.Number:
		n, _ := v.Num()
		return encodeNumber(b, n)
	case value.String:
		s, _ := v.Str()
		encodeString(b, s)
		return nil
	case value.Array:
		return encodeArray(b, v, depth)
	case value.Object:
		return encodeObject(b, v, depth)
	default:
		return jsonerr.Newf(jsonerr.Internal, -1, "unknown value kind %v", v.Kind())
	}
}

func pushDepth(depth int) (int, error) {
	next := depth + 1
	if next > value.MaxDepth {
		return 0, jsonerr.Newf(jsonerr.DepthExceeded, -1, "nesting depth exceeds maximum %d", value.MaxDepth)
	}
	return next, nil
}

func encodeArray(b *buf.Buffer, v *value.Value, depth int) error {
	depth, err := pushDepth(depth)
	if err != nil {
		return err
	}
	b.AppendByte('[')
	for i, e := range v.Elems() {
		if i > 0 {
			b.AppendByte(',')
		}
		if err := encodeValue(b, e, depth); err != nil {
			return err
		}
	}
	b.AppendByte(']')
	return nil
}

func encodeObject(b *buf.Buffer, v *value.Value, depth int) error {
	depth, err := pushDepth(depth)
	if err != nil {
		return err
	}
	b.AppendByte('{')
	for i, m := range v.Members() {
		if i > 0 {
			b.AppendByte(',')
		}
		encodeString(b, m.Key)
		b.AppendByte(':')
		if err := encodeValue(b, m.Value, depth); err != nil {
			return err
		}
	}
	b.AppendByte('}')
	return nil
}

// encodeNumber formats f with 17 significant decimal digits, sufficient to
// round-trip any finite binary64. strconv.FormatFloat never consults host
// locale, so '.' is always the decimal point; the Replace below documents
// that invariant defensively rather than implementing a real fallback.
func encodeNumber(b *buf.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return jsonerr.New(jsonerr.EncodeFailure, -1, "cannot encode non-finite number")
	}
	s := strconv.FormatFloat(f, 'g', 17, 64)
	if strings.ContainsRune(s, ',') {
		s = strings.ReplaceAll(s, ",", ".")
	}
	s = normalizeExponent(s)
	b.AppendString(s)
	return nil
}

// normalizeExponent rewrites strconv's "e+05"/"e-05" exponents (which always
// carry a sign and may zero-pad) into the minimal RFC 8259-legal form our
// decoder itself produces, e.g. "1e+21" stays but "1e+05" -> "1e+5". This
// keeps double round-trip stability (encode(decode(encode(decode(d)))) ==
// encode(decode(d))) since our own decoder never reintroduces the padding.
func normalizeExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i], s[i+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign = string(exp[0])
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

// encodeString writes v as a JSON string literal: opening quote, each byte
// escaped per the table below, closing quote.
//
//	"          -> \"
//	\          -> \\
//	\b (0x08)  -> \b
//	\f (0x0C)  -> \f
//	\n (0x0A)  -> \n
//	\r (0x0D)  -> \r
//	\t (0x09)  -> \t
//	other <0x20 -> \u00XX (lowercase hex)
//	/          -> / (verbatim; not escaped)
//	>= 0x20 otherwise -> verbatim (including UTF-8 continuation bytes)
func encodeString(b *buf.Buffer, s string) {
	b.AppendByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		esc, ok := escapeFor(c)
		if !ok {
			continue
		}
		if i > start {
			b.AppendString(s[start:i])
		}
		b.AppendString(esc)
		start = i + 1
	}
	if start < len(s) {
		b.AppendString(s[start:])
	}
	b.AppendByte('"')
}

func escapeFor(c byte) (string, bool) {
	switch c {
	case '"':
		return `\"`, true
	case '\\':
		return `\\`, true
	case '\b':
		return `\b`, true
	case '\f':
		return `\f`, true
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	default:
		if c < 0x20 {
			const hex = "0123456789abcdef"
			return string([]byte{'\\', 'u', '0', '0', hex[c>>4], hex[c&0x0F]}), true
		}
		return "", false
	}
}
