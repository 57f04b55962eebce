package service

import "strings"

// MajorSeparator joins and splits multi-major values on the wire, e.g.
// "COMPUTER SCIENCE & MATH".
const MajorSeparator = " & "

// SplitMajorSpec splits a compound major value into trimmed names.
func SplitMajorSpec(spec string) []string {
	parts := strings.Split(spec, MajorSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func keep[T any](items []T, pred func(T) bool) []T {
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func intSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
