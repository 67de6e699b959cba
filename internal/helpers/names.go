package helpers

import "strings"

// BindingName turns an arbitrary key, such as an HTTP header name, into an
// identifier usable in an expression: ASCII letters are lowered, every other
// character except digits becomes '_', and a leading digit gets a '_' prefix.
func BindingName(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(key) + 1)
	if key[0] >= '0' && key[0] <= '9' {
		b.WriteByte('_')
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
			b.WriteByte(c)
		case c >= 0x80:
			// skip the rest of a multi-byte rune, keep one '_'
			b.WriteByte('_')
			for i+1 < len(key) && key[i+1]&0xC0 == 0x80 {
				i++
			}
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
