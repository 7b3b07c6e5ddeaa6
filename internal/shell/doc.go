// Package shell renders shell snippets that export a resolved PATH and
// installs the envpath rc-file hook.
// Supported shells: zsh, bash and sh (POSIX export), fish (set -gx) and
// powershell ($env:PATH).
package shell
