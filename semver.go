// Package semver provides parsing, validation, and precedence comparison of
// semantic versions according to the SemVer 2.0 specification.
//
// A Version is an immutable value: build one from explicit fields with New,
// or parse the canonical MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA] text form
// with Parse.
//
// Quick Start:
//
//	// Parse a canonical version string
//	v, ok := semver.Parse("1.2.3-beta.2+build.5")
//	v.Prerelease() // "beta.2"
//
//	// Compare versions by precedence
//	semver.MustParse("1.0.0-alpha").Less(semver.MustParse("1.0.0")) // true
//
//	// Compare version strings directly
//	semver.Compare("1.2.3", "1.2.4") // -1
//
// See https://semver.org/spec/v2.0.0.html
package semver

import (
	"fmt"
	"slices"
)

// MustParse parses a version literal, panicking when it does not parse.
// Use it for constants known correct at write time; runtime input belongs
// with Parse.
func MustParse(s string) Version {
	v, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("semver: unparseable version literal %q", s))
	}
	return v
}

// Valid checks if a version string is valid canonical form.
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Compare compares two version strings by precedence.
// Returns -1 if a < b, 0 if a == b, 1 if a > b. An unparseable string
// orders below any parseable one; two unparseable strings compare bytewise.
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	va, okA := Parse(a)
	vb, okB := Parse(b)

	if !okA && !okB {
		// Fall back to string comparison
		if a < b {
			return -1
		}
		return 1
	}
	if !okA {
		return -1
	}
	if !okB {
		return 1
	}

	return va.Compare(vb)
}

// Sort orders versions in place by ascending precedence.
func Sort(versions []Version) {
	slices.SortFunc(versions, Version.Compare)
}
