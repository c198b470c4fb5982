package semver

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"sync"
)

// canonicalRegex matches the canonical form MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA].
// Numeric fields carry no leading zeros, and major must be positive: the
// text form reserves zero majors, which remain constructible through New.
var canonicalRegex = regexp.MustCompile(
	`^([1-9][0-9]*)\.(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)` +
		`(?:-((?:0|[1-9][0-9]*|[0-9]*[A-Za-z-][0-9A-Za-z-]*)(?:\.(?:0|[1-9][0-9]*|[0-9]*[A-Za-z-][0-9A-Za-z-]*))*))?` +
		`(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

// identifiersRegex matches a non-empty dot-separated identifier sequence.
var identifiersRegex = regexp.MustCompile(`^[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*$`)

// Validation errors returned by New and FromRecord.
var (
	ErrPrereleaseInvalid = errors.New("invalid prerelease identifiers")
	ErrMetadataInvalid   = errors.New("invalid build metadata identifiers")
)

// versionCache caches parsed versions to avoid re-parsing the same strings.
var versionCache = &boundedCache{
	items: make(map[string]Version),
	max:   10000,
}

type boundedCache struct {
	mu    sync.RWMutex
	items map[string]Version
	max   int
}

func (c *boundedCache) Load(key string) (Version, bool) {
	c.mu.RLock()
	v, ok := c.items[key]
	c.mu.RUnlock()
	return v, ok
}

func (c *boundedCache) Store(key string, value Version) {
	c.mu.Lock()
	if len(c.items) >= c.max {
		c.items = make(map[string]Version)
	}
	c.items[key] = value
	c.mu.Unlock()
}

// Version is an immutable semantic version. The zero value is "0.0.0".
// Versions are values: copying one produces an independent equal value, and
// no method mutates its receiver, so Versions are safe to share across
// goroutines without synchronization.
type Version struct {
	major      uint64
	minor      uint64
	patch      uint64
	prerelease string
	metadata   string
}

// MaxVersion is the highest representable version, with no prerelease or
// metadata. It serves as an unbounded upper limit in comparisons.
var MaxVersion = Version{major: math.MaxUint64, minor: math.MaxUint64, patch: math.MaxUint64}

// New builds a Version from explicit fields. Empty prerelease and metadata
// strings mean the suffix is absent; non-empty ones must match the
// dot-separated identifier grammar [0-9A-Za-z-]+(.[0-9A-Za-z-]+)*, or New
// fails with ErrPrereleaseInvalid or ErrMetadataInvalid respectively.
//
// Unlike Parse, New accepts a zero major and does not reject leading zeros
// in numeric prerelease identifiers.
func New(major, minor, patch uint64, prerelease, metadata string) (Version, error) {
	if prerelease != "" && !identifiersRegex.MatchString(prerelease) {
		return Version{}, fmt.Errorf("%w: %q", ErrPrereleaseInvalid, prerelease)
	}
	if metadata != "" && !identifiersRegex.MatchString(metadata) {
		return Version{}, fmt.Errorf("%w: %q", ErrMetadataInvalid, metadata)
	}
	return Version{
		major:      major,
		minor:      minor,
		patch:      patch,
		prerelease: prerelease,
		metadata:   metadata,
	}, nil
}

// Parse parses a canonical version string. The second result reports whether
// s matched the grammar; malformed text is a normal no-match, never an error.
//
// The accepted form is MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA] with all
// three numeric fields present and free of leading zeros, major positive,
// and numeric prerelease identifiers free of leading zeros. Metadata
// identifiers carry no leading-zero restriction.
func Parse(s string) (Version, bool) {
	// Check cache first
	if cached, ok := versionCache.Load(s); ok {
		return cached, true
	}

	matches := canonicalRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, false
	}

	major, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.ParseUint(matches[2], 10, 64)
	if err != nil {
		return Version{}, false
	}
	patch, err := strconv.ParseUint(matches[3], 10, 64)
	if err != nil {
		return Version{}, false
	}

	v := Version{
		major:      major,
		minor:      minor,
		patch:      patch,
		prerelease: matches[4],
		metadata:   matches[5],
	}
	versionCache.Store(s, v)
	return v, true
}

// Major returns the major version number.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor version number.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch version number.
func (v Version) Patch() uint64 { return v.patch }

// Prerelease returns the prerelease identifiers, or "" if absent.
func (v Version) Prerelease() string { return v.prerelease }

// Metadata returns the build metadata identifiers, or "" if absent.
func (v Version) Metadata() string { return v.metadata }

// Core returns the three-part numeric form "MAJOR.MINOR.PATCH".
func (v Version) Core() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// String returns the canonical version string, including the prerelease and
// metadata suffixes when present.
func (v Version) String() string {
	result := v.Core()
	if v.prerelease != "" {
		result += "-" + v.prerelease
	}
	if v.metadata != "" {
		result += "+" + v.metadata
	}
	return result
}

// Compare compares this version to another by precedence.
// Returns -1 if v < other, 0 if they rank equally, 1 if v > other.
//
// Major, minor, and patch compare numerically in order. On a tie, a version
// with a prerelease ranks below one without; two unequal prereleases compare
// with CompareIdentifiers. Metadata is never consulted.
func (v Version) Compare(other Version) int {
	// Compare major
	if v.major < other.major {
		return -1
	}
	if v.major > other.major {
		return 1
	}

	// Compare minor
	if v.minor < other.minor {
		return -1
	}
	if v.minor > other.minor {
		return 1
	}

	// Compare patch
	if v.patch < other.patch {
		return -1
	}
	if v.patch > other.patch {
		return 1
	}

	// Handle prerelease comparison
	// No prerelease > has prerelease (1.0.0 > 1.0.0-alpha)
	if v.prerelease == "" && other.prerelease != "" {
		return 1
	}
	if v.prerelease != "" && other.prerelease == "" {
		return -1
	}
	if v.prerelease == other.prerelease {
		return 0
	}

	return CompareIdentifiers(v.prerelease, other.prerelease)
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Greater reports whether v has higher precedence than other.
func (v Version) Greater(other Version) bool {
	return other.Compare(v) < 0
}

// LessOrEqual reports whether v ranks at or below other.
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// GreaterOrEqual reports whether v ranks at or above other.
func (v Version) GreaterOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// Equal reports semantic equality: major, minor, patch, and prerelease all
// match. Metadata is ignored; use Identical to include it.
func (v Version) Equal(other Version) bool {
	return v.major == other.major &&
		v.minor == other.minor &&
		v.patch == other.patch &&
		v.prerelease == other.prerelease
}

// Identical reports whether every field matches, metadata included. Two
// versions can be Equal yet not Identical when they carry different
// build metadata.
func (v Version) Identical(other Version) bool {
	return v.Equal(other) && v.metadata == other.metadata
}

// IsStable returns true if this is a stable release (no prerelease).
func (v Version) IsStable() bool {
	return v.prerelease == ""
}

// IsPrerelease returns true if this is a prerelease version.
func (v Version) IsPrerelease() bool {
	return v.prerelease != ""
}
