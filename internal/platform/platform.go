// Package platform identifies the host operating system family and the
// conventions (list separator, path separator) that go with it.
package platform

import "runtime"

// OS is a host operating system family.
type OS string

const (
	// Windows hosts read PATH through cmd.exe.
	Windows OS = "windows"
	// Darwin hosts need a login shell because GUI launches skip startup files.
	Darwin OS = "darwin"
	// Unix covers Linux and every other Unix-like host.
	Unix OS = "unix"
)

// Current returns the family of the running host.
func Current() OS {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a runtime.GOOS value to its OS family.
func FromGOOS(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Unix
	}
}

// ListSeparator returns the PATH list separator for the family.
func (o OS) ListSeparator() string {
	if o == Windows {
		return ";"
	}
	return ":"
}

// PathSeparator returns the directory separator for the family.
func (o OS) PathSeparator() string {
	if o == Windows {
		return `\`
	}
	return "/"
}

// JoinPath joins elements with the family's directory separator.
// filepath.Join is not used because the family may differ from the host in tests.
func (o OS) JoinPath(elem ...string) string {
	out := ""
	sep := o.PathSeparator()
	for _, e := range elem {
		if e == "" {
			continue
		}
		if out == "" {
			out = e
			continue
		}
		if len(out) >= len(sep) && out[len(out)-len(sep):] == sep {
			out += e
		} else {
			out += sep + e
		}
	}
	return out
}
