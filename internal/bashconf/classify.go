package bashconf

import (
	"regexp"
	"strings"
)

// Match is the result of classifying a single line as an assignment.
type Match struct {
	Name string
	// Raw is the value token exactly as written, right-trimmed.
	Raw  string
	Kind SyntaxKind
	// Prefix is everything on the line before the value token, including
	// leading whitespace, the keyword, the name and the separator. A
	// rewritten line is Prefix plus the re-encoded value, so original
	// spacing survives edits.
	Prefix string
}

// Patterns are tried in order of specificity so that `export FOO=bar` is
// never misread as a plain assignment. The keyword forms require whitespace
// after the keyword; `export=5` therefore classifies as a plain assignment
// to a variable literally named "export".
var (
	reDeclareX = regexp.MustCompile(`^(\s*declare\s+-x\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*)(.*)$`)
	reExport   = regexp.MustCompile(`^(\s*export\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*)(.*)$`)
	reSetenv   = regexp.MustCompile(`^(\s*setenv\s+([A-Za-z_][A-Za-z0-9_]*)\s+)(.*)$`)
	rePlain    = regexp.MustCompile(`^(\s*([A-Za-z_][A-Za-z0-9_.]*)\s*=\s*)(.*)$`)

	reName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
)

var classifiers = []struct {
	re   *regexp.Regexp
	kind SyntaxKind
}{
	{reDeclareX, SyntaxDeclareX},
	{reExport, SyntaxExport},
	{reSetenv, SyntaxSetenv},
	{rePlain, SyntaxPlain},
}

// Classify reports whether line is one of the four supported assignment
// forms. Lines that match none of them are passthrough and preserved
// verbatim on save.
func Classify(line string) (Match, bool) {
	for _, c := range classifiers {
		m := c.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return Match{
			Name:   m[2],
			Raw:    strings.TrimRight(m[3], " \t"),
			Kind:   c.kind,
			Prefix: m[1],
		}, true
	}
	return Match{}, false
}

// ValidName reports whether name satisfies the dotted-identifier charset,
// the most permissive of the four grammars. Set uses it to validate names
// for new entries.
func ValidName(name string) bool {
	return reName.MatchString(name)
}
