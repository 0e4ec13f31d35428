package config

import "strings"

// Set replaces the value of key in lines, or appends key=value when the key
// is absent. It reports whether a line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + quote(value)

	for i, line := range lines {
		if k, _, ok := entryKey(line); ok && k == key {
			lines[i] = entry
			return lines, true
		}
	}

	return append(lines, entry), false
}

// Unset drops every line assigning key and reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if k, _, ok := entryKey(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

func entryKey(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, rest, ok = strings.Cut(trimmed, "=")
	return strings.TrimSpace(key), rest, ok
}
