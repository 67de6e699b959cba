package value

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// String renders v in display form: numbers and booleans naturally, strings
// quoted, ranges as start..end, None as the literal None, and lists as
// [e1,e2,] with a comma after every element including the last.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case KindNone:
		b.WriteString("None")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(formatFloat(v.f))
	case KindStr:
		writeQuoted(b, v.s)
	case KindRange:
		b.WriteString(v.r.String())
	case KindList:
		b.WriteByte('[')
		for _, e := range v.l {
			e.write(b)
			b.WriteByte(',')
		}
		b.WriteByte(']')
	}
}

// writeQuoted quotes s with \0 \t \r \n \\ and \" escapes. Other
// non-graphic runes are written as \u{hex}, so "\x1f" prints as "\u{1f}".
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case 0:
			b.WriteString(`\0`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			if unicode.IsGraphic(r) {
				b.WriteRune(r)
				continue
			}
			b.WriteString(`\u{`)
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte('}')
		}
	}
	b.WriteByte('"')
}

func (r Range) String() string {
	return strconv.FormatInt(r.Start, 10) + ".." + strconv.FormatInt(r.End, 10)
}

// formatFloat prints the shortest decimal that round-trips, never in exponent form.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
