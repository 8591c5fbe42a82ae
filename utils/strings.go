package utils

import "strings"

// Join URL path segments with exactly one slash between them
func JoinPaths(base string, paths ...string) string {
	parts := make([]string, 0, len(paths)+1)
	parts = append(parts, strings.TrimRight(base, "/"))
	for _, p := range paths {
		parts = append(parts, strings.Trim(p, "/"))
	}
	return strings.Join(parts, "/")
}
