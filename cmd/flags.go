package cmd

import (
	"github.com/spf13/pflag"
)

type options struct {
	file *string

	get        *string
	getLiteral *string
	getLine    *string
	set        *string
	unset      *string
	list       *bool
	dump       *bool
	diff       *bool

	initConfig *bool
	noBackup   *bool

	verbose *bool
	debug   *bool
	version *bool
	help    *bool
}

var opts options

// InitFlags defines the pflags used for argument validation and help.
func InitFlags() {
	opts.file = pflag.StringP("file", "f", "", "Configuration file to operate on")

	// Variable operations
	opts.get = pflag.String("get", "", "Print variable value")
	opts.getLiteral = pflag.String("get-literal", "", "Print variable value as written, quotes included")
	opts.getLine = pflag.String("get-line", "", "Print full variable line")
	opts.set = pflag.String("set", "", "Set variable (NAME=VALUE)")
	opts.unset = pflag.String("unset", "", "Remove variable")
	opts.list = pflag.BoolP("list", "l", false, "List variable names")
	opts.dump = pflag.BoolP("dump", "d", false, "Print all variables as YAML")
	opts.diff = pflag.Bool("diff", false, "Show pending changes instead of writing them")

	// Tool configuration
	opts.initConfig = pflag.Bool("init-config", false, "Write the default configuration file")
	opts.noBackup = pflag.Bool("no-backup", false, "Do not create a .bak file when writing")

	// Modifiers
	opts.verbose = pflag.BoolP("verbose", "v", false, "Verbose output")
	opts.debug = pflag.BoolP("debug", "x", false, "Debug output")
	opts.version = pflag.BoolP("version", "V", false, "Show version")
	opts.help = pflag.BoolP("help", "h", false, "Show help")
}
