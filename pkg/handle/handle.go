// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package handle normalizes free-form user input into profile handles.
//
// # Usage
//
// Handles are the primary key of a profile ("nova", "dev_42"). They are
// lowercase and drawn from [a-z0-9_].
package handle

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From converts an arbitrary Unicode string into a handle candidate.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (é → e + combining acute).
// 2. Removes combining marks.
// 3. Converts to lowercase.
// 4. Drops every rune outside [a-z0-9_].
//
// The result may be shorter than the minimum handle length; callers validate.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, strings.TrimSpace(s))

	result = strings.ToLower(result)

	return strings.Map(func(r rune) rune {
		if Allowed(r) {
			return r
		}
		return -1
	}, result)
}

// Allowed reports whether r may appear in a handle.
func Allowed(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
