// Package bashconf reads and rewrites variable assignments in shell-style
// configuration files (.bashrc fragments, .env files, .properties files
// written in a bash-like syntax) without invoking a shell.
//
// A file is treated as a flat list of candidate assignment lines. Four
// surface forms are recognized:
//
//	NAME=VALUE              (plain, dotted names allowed)
//	export NAME=VALUE
//	declare -x NAME=VALUE
//	setenv NAME VALUE       (csh/tcsh)
//
// Everything else — comments, blank lines, arbitrary script text — is
// passthrough and preserved byte-for-byte. Values may be unquoted, single
// quoted (literal) or double quoted (minimal escape set: \" \\ \$ \` and
// backslash-newline). A Document loaded and saved without modification
// reproduces its source exactly; modified entries are re-emitted in their
// original syntax form and quote style.
//
// The package performs no variable expansion, command substitution or any
// other bash evaluation.
package bashconf
