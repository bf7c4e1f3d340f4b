package checkignore

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadQuoting is returned by Unquote for input that is not a well
// formed C-style quoted string.
var ErrBadQuoting = errors.New("invalid quoting")

func mustQuote(ch byte) bool {
	return ch == '"' || ch == '\\' || ch < 0x20 || ch >= 0x7f
}

// Quote escapes a path the way C string literals are written: control
// bytes, double quotes, backslashes and non-ASCII bytes are escaped and
// the result is wrapped in double quotes. A path that needs no escaping
// is returned unchanged, without surrounding quotes, so clean paths
// round-trip byte for byte.
func Quote(s string) string {
	needed := false
	for i := 0; i < len(s); i++ {
		if mustQuote(s[i]) {
			needed = true
			break
		}
	}
	if !needed {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if mustQuote(ch) {
				fmt.Fprintf(&b, `\%03o`, ch)
			} else {
				b.WriteByte(ch)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote reverses Quote for a string that begins with a double quote.
// The closing quote must end the string; anything after it, an
// unterminated string or an unknown escape is an error.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' {
		return "", ErrBadQuoting
	}

	var b strings.Builder
	i := 1
	for i < len(s) {
		ch := s[i]
		i++
		switch ch {
		case '"':
			if i != len(s) {
				return "", ErrBadQuoting
			}
			return b.String(), nil
		case '\\':
			if i >= len(s) {
				return "", ErrBadQuoting
			}
			esc := s[i]
			i++
			switch esc {
			case 'a':
				b.WriteByte('\a')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'v':
				b.WriteByte('\v')
			case '"', '\\':
				b.WriteByte(esc)
			case '0', '1', '2', '3':
				// Octal escapes are always three digits.
				if i+1 >= len(s) {
					return "", ErrBadQuoting
				}
				v := esc - '0'
				for k := 0; k < 2; k++ {
					d := s[i]
					if d < '0' || d > '7' {
						return "", ErrBadQuoting
					}
					v = v<<3 | (d - '0')
					i++
				}
				b.WriteByte(v)
			default:
				return "", ErrBadQuoting
			}
		default:
			b.WriteByte(ch)
		}
	}
	return "", ErrBadQuoting
}
