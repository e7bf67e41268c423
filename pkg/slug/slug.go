// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Artist profiles are addressable by slug ("arjun-sharma") as well as by ID.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// Accents are folded through NFD decomposition, so "Zoë Fernandes" becomes
// "zoe-fernandes". Anything else outside [a-z0-9] becomes a single hyphen.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase, then anything outside [a-z0-9-] becomes a hyphen
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")

	// 3. Clean up hyphenation
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// WithSuffix appends a short disambiguator, used when a slug is already taken.
func WithSuffix(base, suffix string) string {
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
