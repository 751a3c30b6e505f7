package bashconf

import (
	"sort"
	"strings"
)

// Document is an in-memory shell configuration file: the ordered raw line
// sequence plus a name-to-entry mapping for the assignments found in it.
//
// A Document is not safe for concurrent mutation. Callers that share a file
// between processes must hold an external exclusive lock around their
// load/mutate/save sequence.
type Document struct {
	lines    []string
	vars     map[string]*Variable
	removed  map[int]bool
	path     string
	original string
	trailing bool

	// Backup controls whether Save copies an existing destination to a
	// .bak file before overwriting it. Defaults to true.
	Backup bool
}

// Parse builds a Document from raw text. The only error condition is
// malformed quoting on an assignment line; anything else that fails the
// four grammars is accepted as passthrough. On error no partial document is
// returned.
func Parse(text string) (*Document, error) {
	d := &Document{
		vars:     make(map[string]*Variable),
		removed:  make(map[int]bool),
		original: text,
		Backup:   true,
	}

	if text != "" {
		d.lines = strings.Split(text, "\n")
		if last := len(d.lines) - 1; d.lines[last] == "" {
			d.trailing = true
			d.lines = d.lines[:last]
		}
	}

	for i, line := range d.lines {
		m, ok := Classify(line)
		if !ok {
			continue
		}
		value, quote, err := DecodeValue(m.Raw)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Reason: err.Error()}
		}
		// Sequential assignment semantics: a later definition of the
		// same name wins and keeps its own syntax form. The earlier
		// line stays in the file as passthrough text.
		d.vars[m.Name] = &Variable{
			Name:      m.Name,
			Value:     value,
			Kind:      m.Kind,
			Quote:     quote,
			lineIndex: i,
			prefix:    m.Prefix,
			raw:       m.Raw,
		}
	}

	return d, nil
}

// Path returns the file the document was loaded from, or "" for documents
// parsed from raw text.
func (d *Document) Path() string {
	return d.path
}

// Has reports whether the document defines name.
func (d *Document) Has(name string) bool {
	_, ok := d.vars[name]
	return ok
}

// Get returns the decoded value of name.
func (d *Document) Get(name string) (string, error) {
	v, ok := d.vars[name]
	if !ok {
		return "", &KeyNotFoundError{Name: name}
	}
	return v.Value, nil
}

// Entry returns the full entry for name, exposing its syntax kind and
// quote style.
func (d *Document) Entry(name string) (*Variable, error) {
	v, ok := d.vars[name]
	if !ok {
		return nil, &KeyNotFoundError{Name: name}
	}
	return v, nil
}

// Literal returns the value token for name as it will be written: the
// original bytes if the value is untouched, the re-encoded token otherwise.
func (d *Document) Literal(name string) (string, error) {
	v, ok := d.vars[name]
	if !ok {
		return "", &KeyNotFoundError{Name: name}
	}
	if !v.dirty {
		return v.raw, nil
	}
	enc, err := EncodeValue(v.Value, v.Quote)
	if err != nil {
		return "", &EncodingError{Name: name, Reason: err.Error()}
	}
	return enc, nil
}

// Line returns the full assignment line for name as it will be written.
func (d *Document) Line(name string) (string, error) {
	v, ok := d.vars[name]
	if !ok {
		return "", &KeyNotFoundError{Name: name}
	}
	if !v.dirty {
		return d.lines[v.lineIndex], nil
	}
	enc, err := EncodeValue(v.Value, v.Quote)
	if err != nil {
		return "", &EncodingError{Name: name, Reason: err.Error()}
	}
	return v.prefix + enc, nil
}

// Set updates name to value, or defines it if absent.
//
// Existing entries keep their syntax kind, quote style and line position;
// only the value token changes. New entries are validated against the
// dotted-identifier charset and appended after all original lines as plain
// NAME=VALUE assignments, unquoted unless the value contains whitespace.
// Values the target quote style cannot represent are rejected with an
// EncodingError and the document is left unchanged.
func (d *Document) Set(name, value string) error {
	if !ValidName(name) {
		return &InvalidNameError{Name: name}
	}

	if v, ok := d.vars[name]; ok {
		if _, err := EncodeValue(value, v.Quote); err != nil {
			return &EncodingError{Name: name, Reason: err.Error()}
		}
		v.Value = value
		v.dirty = true
		return nil
	}

	quote := QuoteNone
	if strings.ContainsAny(value, " \t") {
		quote = QuoteDouble
	} else if _, err := EncodeValue(value, QuoteNone); err != nil {
		quote = QuoteDouble
	}
	if _, err := EncodeValue(value, quote); err != nil {
		return &EncodingError{Name: name, Reason: err.Error()}
	}

	v := &Variable{
		Name:      name,
		Value:     value,
		Kind:      SyntaxPlain,
		Quote:     quote,
		lineIndex: len(d.lines),
		prefix:    name + "=",
		dirty:     true,
	}
	d.vars[name] = v
	d.lines = append(d.lines, "")
	return nil
}

// AppendComment adds a comment line after all current lines.
func (d *Document) AppendComment(text string) {
	d.lines = append(d.lines, "# "+text)
}

// AppendBlank adds an empty line after all current lines.
func (d *Document) AppendBlank() {
	d.lines = append(d.lines, "")
}

// Unset removes name and its line from the document.
func (d *Document) Unset(name string) error {
	v, ok := d.vars[name]
	if !ok {
		return &KeyNotFoundError{Name: name}
	}
	d.removed[v.lineIndex] = true
	delete(d.vars, name)
	return nil
}

// Names returns all defined variable names in file order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.vars))
	for name := range d.vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return d.vars[names[i]].lineIndex < d.vars[names[j]].lineIndex
	})
	return names
}

// Vars returns all variables as a plain name-to-value map.
func (d *Document) Vars() map[string]string {
	out := make(map[string]string, len(d.vars))
	for name, v := range d.vars {
		out[name] = v.Value
	}
	return out
}

// Len returns the number of defined variables.
func (d *Document) Len() int {
	return len(d.vars)
}

// Text serializes the document. Untouched lines are emitted byte-for-byte;
// modified entries are re-encoded in place using their original prefix and
// quote style; removed lines are dropped; appended entries follow the
// original content.
func (d *Document) Text() (string, error) {
	dirty := make(map[int]string, len(d.vars))
	for _, v := range d.vars {
		if !v.dirty {
			continue
		}
		enc, err := EncodeValue(v.Value, v.Quote)
		if err != nil {
			return "", &EncodingError{Name: v.Name, Reason: err.Error()}
		}
		dirty[v.lineIndex] = v.prefix + enc
	}

	out := make([]string, 0, len(d.lines))
	for i, raw := range d.lines {
		if d.removed[i] {
			continue
		}
		if line, ok := dirty[i]; ok {
			out = append(out, line)
			continue
		}
		out = append(out, raw)
	}

	text := strings.Join(out, "\n")
	if d.trailing && len(out) > 0 {
		text += "\n"
	}
	return text, nil
}
