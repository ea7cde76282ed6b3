package util

import "strings"

// TrimString cuts s down to at most length bytes.
func TrimString(s string, length int) string {
	if len(s) <= length {
		return s
	}

	return s[:length]
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var list []string

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	return list
}
