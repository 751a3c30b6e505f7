package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"shellconf/internal/version"
)

// PrintUsage writes the command usage to stderr.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, "%s reads and rewrites variables in shell-style configuration files.\n\n", version.ApplicationName)
	fmt.Fprintf(os.Stderr, "Usage:\n  %s --file FILE [operation]\n\nOperations and options:\n", version.CommandName)
	fmt.Fprint(os.Stderr, pflag.CommandLine.FlagUsages())
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s -f ~/.bashrc --get EDITOR\n", version.CommandName)
	fmt.Fprintf(os.Stderr, "  %s -f app.properties --set de.example.Password=secret\n", version.CommandName)
	fmt.Fprintf(os.Stderr, "  %s -f .env --set TZ=Europe/Berlin --diff\n", version.CommandName)
}
