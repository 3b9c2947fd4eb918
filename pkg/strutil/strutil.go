package strutil

import "strings"

// DedupeStrSlice returns the strings of in without duplicates, keeping the first
// occurrence of each so the original order is preserved.
func DedupeStrSlice(in []string) []string {
	seen := make(map[string]struct{}, len(in))

	var res []string

	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		res = append(res, s)
		seen[s] = struct{}{}
	}

	return res
}

// TrimTrailingSlashes removes every trailing "/" of path, except for the filesystem root.
func TrimTrailingSlashes(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}
