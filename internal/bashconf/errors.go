package bashconf

import "fmt"

// ParseError reports malformed quoting found while loading a document.
// Line is 1-based. Loading is all-or-nothing: a ParseError means no
// document was produced.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// KeyNotFoundError reports a lookup for a variable the document does not
// define.
type KeyNotFoundError struct {
	Name string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("variable %q not found", e.Name)
}

// InvalidNameError reports a Set with a name outside the dotted-identifier
// charset.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid variable name %q", e.Name)
}

// EncodingError reports a Set with a value that cannot be represented
// under the entry's existing quote style.
type EncodingError struct {
	Name   string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode value for %q: %s", e.Name, e.Reason)
}
