package utils

import (
	"regexp"
	"strings"
)

var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// ExtractHashtags returns the lower-cased #word tokens of text in first-seen
// order, without duplicates.
func ExtractHashtags(text string) []string {
	return MergeHashtags(text, "")
}

// MergeHashtags extracts the hashtags of text and appends the explicit tag
// (with or without its leading '#') when it is not already present.
func MergeHashtags(text, tag string) []string {
	tags := []string{}
	seen := map[string]bool{}
	add := func(t string) {
		t = NormalizeHashtag(t)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		tags = append(tags, t)
	}

	for _, m := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	add(tag)
	return tags
}

// NormalizeHashtag lower-cases a tag and strips surrounding spaces and leading '#'.
func NormalizeHashtag(tag string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(tag), "#"))
}
