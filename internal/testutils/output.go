package testutils

import (
	"fmt"
	"os"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single comparison scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable prints a formatted table of comparison results and fails
// the test if any case has Pass=false. Failing rows are marked with
// pointers so they stand out in long tables.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Input\tExpected Value\tReturned Value\t\n")

	for _, tc := range cases {
		leftPtr, rightPtr := " ", " "
		if !tc.Pass {
			leftPtr, rightPtr = ">", "<"
			t.Errorf("%s: input %q: expected %q, got %q", tc.Name, tc.Input, tc.Expected, tc.Actual)
		}
		fmt.Fprintf(w, "%s %q\t%q\t%q\t%s\n", leftPtr, tc.Input, tc.Expected, tc.Actual, rightPtr)
	}

	w.Flush()
}
