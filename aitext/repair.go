package aitext

import (
	"strings"

	"github.com/fwojciec/nicobar"
)

type repairState int

const (
	outside repairState = iota
	inString
	inEscapedString // opened by \" instead of "
)

// Repair fixes the escaping of an extracted JSON document.
//
// Outside strings, line breaks are dropped and an escaped quote used as a
// string boundary is unescaped. A string opened by an escaped quote is closed
// by the next escaped quote. Inside strings, raw line breaks and tabs are
// escaped and existing escape sequences are preserved. The repaired text is
// returned trimmed.
func Repair(extracted string) (string, error) {
	var b strings.Builder
	b.Grow(len(extracted))

	state := outside
	for i := 0; i < len(extracted); i++ {
		c := extracted[i]
		escapedQuote := c == '\\' && i+1 < len(extracted) && extracted[i+1] == '"'

		switch state {
		case outside:
			switch {
			case escapedQuote:
				b.WriteByte('"')
				i++
				state = inEscapedString
			case c == '"':
				b.WriteByte('"')
				state = inString
			case c == '\n' || c == '\r':
			default:
				b.WriteByte(c)
			}

		case inString:
			switch {
			case c == '\\':
				if i+1 >= len(extracted) {
					return "", unterminated(extracted)
				}
				b.WriteByte(c)
				b.WriteByte(extracted[i+1])
				i++
			case c == '"':
				b.WriteByte('"')
				state = outside
			default:
				writeStringByte(&b, c)
			}

		case inEscapedString:
			switch {
			case escapedQuote:
				b.WriteByte('"')
				i++
				state = outside
			case c == '"':
				b.WriteString(`\"`)
			case c == '\\':
				if i+1 >= len(extracted) {
					return "", unterminated(extracted)
				}
				b.WriteByte(c)
				b.WriteByte(extracted[i+1])
				i++
			default:
				writeStringByte(&b, c)
			}
		}
	}

	if state != outside {
		return "", unterminated(extracted)
	}
	return strings.TrimSpace(b.String()), nil
}

// writeStringByte writes c inside a JSON string, escaping control characters
// models emit verbatim.
func writeStringByte(b *strings.Builder, c byte) {
	switch c {
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	default:
		b.WriteByte(c)
	}
}

func unterminated(extracted string) error {
	return &nicobar.CleanResponseError{
		ExtractResponse: extracted,
		Message:         "unterminated string",
	}
}
