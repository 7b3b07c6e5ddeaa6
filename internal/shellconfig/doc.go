// Package shellconfig extracts PATH contributions from shell startup files.
// It is not a shell interpreter: it finds `export PATH=...` statements with
// regular expressions and substitutes `$NAME` / `${NAME}` references from the
// process environment or from the last assignment of NAME in the same file.
package shellconfig
