// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package transfer

import "strings"

// latinateSuffixes are common Latinate/French-derived endings signaling a
// Romance-cognate surface pattern.
var latinateSuffixes = []string{
	"tion", "sion", "ment", "ity", "able", "ible", "ous", "ive", "ize",
	"ance", "ence", "ary", "ory",
}

// germanicSuffixes are common Germanic endings.
var germanicSuffixes = []string{
	"ness", "ship", "hood", "ward", "some", "ing", "dom",
}

// CognateHint classifies a word's surface pattern as likely Latinate or
// Germanic in origin, a cheap heuristic (suffix matching, no etymology
// database) rather than a true cognate lookup.
type CognateHint string

const (
	CognateHintNone     CognateHint = "none"
	CognateHintLatinate CognateHint = "latinate"
	CognateHintGermanic CognateHint = "germanic"
)

// DetectCognateHint classifies word by suffix pattern.
func DetectCognateHint(word string) CognateHint {
	w := strings.ToLower(word)
	for _, suf := range latinateSuffixes {
		if strings.HasSuffix(w, suf) {
			return CognateHintLatinate
		}
	}
	for _, suf := range germanicSuffixes {
		if strings.HasSuffix(w, suf) {
			return CognateHintGermanic
		}
	}
	return CognateHintNone
}

// IsLikelyCognateFor reports whether a word's surface pattern is likely
// to be a cognate for a speaker of the given L1 family: Latinate patterns
// for Romance speakers, Germanic patterns for Germanic speakers.
func IsLikelyCognateFor(word string, family L1Family) bool {
	hint := DetectCognateHint(word)
	switch family {
	case FamilyRomance:
		return hint == CognateHintLatinate
	case FamilyGermanic:
		return hint == CognateHintGermanic
	default:
		return false
	}
}
