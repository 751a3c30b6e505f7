package bashconf

// SyntaxKind identifies which of the four surface grammars produced an
// entry. It determines how the entry is re-emitted on save.
type SyntaxKind int

const (
	// SyntaxPlain is a bare NAME=VALUE assignment. This is the only form
	// that accepts dotted names (de.example.Key=value).
	SyntaxPlain SyntaxKind = iota
	// SyntaxExport is an `export NAME=VALUE` assignment.
	SyntaxExport
	// SyntaxDeclareX is a `declare -x NAME=VALUE` assignment.
	SyntaxDeclareX
	// SyntaxSetenv is a csh-style `setenv NAME VALUE` definition,
	// space-separated with no equals sign.
	SyntaxSetenv
)

func (k SyntaxKind) String() string {
	switch k {
	case SyntaxPlain:
		return "plain"
	case SyntaxExport:
		return "export"
	case SyntaxDeclareX:
		return "declare -x"
	case SyntaxSetenv:
		return "setenv"
	default:
		return "unknown"
	}
}

// QuoteStyle is the quoting convention used for a value's textual
// representation. It is preserved across rewrites so that updating a value
// keeps the file's quoting convention stable.
type QuoteStyle int

const (
	QuoteNone QuoteStyle = iota
	QuoteSingle
	QuoteDouble
)

func (q QuoteStyle) String() string {
	switch q {
	case QuoteNone:
		return "none"
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Variable is one recognized assignment in a Document.
type Variable struct {
	Name  string
	Value string
	Kind  SyntaxKind
	Quote QuoteStyle

	lineIndex int
	prefix    string // line text before the value token, e.g. "export FOO="
	raw       string // value token as read from the file
	dirty     bool
}

// LineIndex returns the zero-based position of the entry's line in the
// document's line sequence.
func (v *Variable) LineIndex() int {
	return v.lineIndex
}
