package types

import "strings"

// containsFold reports whether needle occurs in haystack, case-insensitively.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ContainsFold is the exported form used by the view pipeline's search step.
func ContainsFold(haystack, needle string) bool {
	return containsFold(haystack, needle)
}
