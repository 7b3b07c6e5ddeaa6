// Package pathlist splits, joins and de-duplicates PATH-style lists.
package pathlist

import "strings"

// Split breaks list into segments on sep. An empty list has no segments.
func Split(list, sep string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, sep)
}

// Join concatenates segments with sep.
func Join(segments []string, sep string) string {
	return strings.Join(segments, sep)
}

// Concat joins non-empty lists with sep, in order.
func Concat(sep string, lists ...string) string {
	var parts []string
	for _, l := range lists {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, sep)
}

// Dedupe removes repeated segments, keeping the first occurrence of each.
func Dedupe(segments []string) []string {
	seen := make(map[string]struct{}, len(segments))
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// HasVariableRef reports whether segment still carries a shell variable reference.
func HasVariableRef(segment string) bool {
	return strings.Contains(segment, "$")
}

// Blank reports whether segment is empty or whitespace only.
func Blank(segment string) bool {
	return strings.TrimSpace(segment) == ""
}
