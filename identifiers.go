package semver

import (
	"strconv"
	"strings"
)

// CompareIdentifiers compares two dot-separated identifier sequences using
// SemVer pre-release precedence rules.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
//
// Segments are compared pairwise: if both parse as unsigned integers they
// compare numerically, otherwise lexicographically. A sequence that is a
// strict prefix of the other has lower precedence. Note that a mixed
// numeric/alphanumeric pair falls through to lexicographic comparison,
// whereas semver.org ranks numeric identifiers below alphanumeric ones.
//
// No validation is performed; inputs are assumed to already match the
// identifier grammar, but any input yields a deterministic result.
func CompareIdentifiers(a, b string) int {
	partsA := strings.Split(a, ".")
	partsB := strings.Split(b, ".")

	maxLen := len(partsA)
	if len(partsB) > maxLen {
		maxLen = len(partsB)
	}

	for i := 0; i < maxLen; i++ {
		if i >= len(partsA) {
			return -1
		}
		if i >= len(partsB) {
			return 1
		}

		partA := partsA[i]
		partB := partsB[i]

		// Try numeric comparison
		numA, errA := strconv.ParseUint(partA, 10, 64)
		numB, errB := strconv.ParseUint(partB, 10, 64)

		if errA == nil && errB == nil {
			if numA < numB {
				return -1
			}
			if numA > numB {
				return 1
			}
		} else {
			// String comparison
			if partA < partB {
				return -1
			}
			if partA > partB {
				return 1
			}
		}
	}

	return 0
}
