// Package doctor diagnoses the PATH sources envpath reads: the shell probe,
// the startup files, unresolvable variables and the current PATH.
package doctor
