package bashconf

import (
	"errors"
	"strings"
)

// DecodeValue turns a raw right-hand-side token into its logical string
// value and reports which quoting convention it used.
//
// Single-quoted values are literal, bash style: no escape processing at
// all. Double-quoted values process the minimal escape set \" \\ \$ \` and
// backslash-newline continuation; any other backslash stays literal.
// Unquoted values are taken as written with surrounding whitespace trimmed.
//
// A quoted value is only recognized when the quote wraps the whole token;
// a closing quote followed by more content (PATH="$HOME/bin":$PATH) is not
// an error, the token simply counts as unquoted and stays literal. The one
// malformed case is a quote that opens and never closes; Parse surfaces
// that as a ParseError for the offending line.
func DecodeValue(raw string) (string, QuoteStyle, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", QuoteNone, nil
	}

	switch raw[0] {
	case '\'':
		end := strings.IndexByte(raw[1:], '\'')
		if end < 0 {
			return "", QuoteNone, errors.New("unterminated single-quoted value")
		}
		if 1+end != len(raw)-1 {
			// Closing quote with trailing content: not wrapped.
			return raw, QuoteNone, nil
		}
		return raw[1 : len(raw)-1], QuoteSingle, nil
	case '"':
		return decodeDouble(raw)
	}
	return raw, QuoteNone, nil
}

func decodeDouble(raw string) (string, QuoteStyle, error) {
	var b strings.Builder
	for i := 1; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '\\':
			if i == len(raw)-1 {
				return "", QuoteNone, errors.New("unterminated double-quoted value")
			}
			switch next := raw[i+1]; next {
			case '"', '\\', '$', '`':
				b.WriteByte(next)
				i++
			case '\n':
				// Line continuation: backslash-newline disappears.
				i++
			default:
				b.WriteByte('\\')
			}
		case '"':
			if i != len(raw)-1 {
				// Closing quote with trailing content: not wrapped.
				return raw, QuoteNone, nil
			}
			return b.String(), QuoteDouble, nil
		default:
			b.WriteByte(c)
		}
	}
	return "", QuoteNone, errors.New("unterminated double-quoted value")
}

// EncodeValue is the inverse of DecodeValue: it re-wraps and re-escapes
// value so that decoding the result yields value again under the same
// style. It fails for values the style cannot represent: a literal single
// quote under QuoteSingle (single-quoted bash strings cannot escape one), a
// leading quote character or surrounding whitespace under QuoteNone, and a
// literal newline under any style of this line-based format.
func EncodeValue(value string, style QuoteStyle) (string, error) {
	if strings.ContainsAny(value, "\n\r") {
		return "", errors.New("value contains a newline, which no quote style can represent")
	}

	switch style {
	case QuoteSingle:
		if strings.Contains(value, "'") {
			return "", errors.New("value contains a single quote, which cannot be escaped inside a single-quoted string")
		}
		return "'" + value + "'", nil
	case QuoteDouble:
		return `"` + doubleQuoteEscaper.Replace(value) + `"`, nil
	default:
		if value != strings.TrimSpace(value) {
			return "", errors.New("value has surrounding whitespace, which an unquoted token cannot keep")
		}
		if value != "" && (value[0] == '\'' || value[0] == '"') {
			return "", errors.New("value starts with a quote character and must be quoted")
		}
		return value, nil
	}
}

var doubleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)
