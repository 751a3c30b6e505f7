package bashconf

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the pending edits as a line-oriented diff between the text
// the document was loaded from and its current serialization. An untouched
// document diffs to its own content with no insertions or deletions.
func (d *Document) Diff() (string, error) {
	current, err := d.Text()
	if err != nil {
		return "", err
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(d.original, current)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	return dmp.DiffPrettyText(diffs), nil
}
