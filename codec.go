package semver

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Record is the structured form of a Version, for serialization frameworks
// that exchange versions field by field rather than as canonical text.
type Record struct {
	Major      uint64 `json:"major" yaml:"major"`
	Minor      uint64 `json:"minor" yaml:"minor"`
	Patch      uint64 `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Metadata   string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Record returns the structured form of v.
func (v Version) Record() Record {
	return Record{
		Major:      v.major,
		Minor:      v.minor,
		Patch:      v.patch,
		Prerelease: v.prerelease,
		Metadata:   v.metadata,
	}
}

// FromRecord builds a Version from its structured form. Decoding is
// equivalent to calling New, not Parse: a zero major is accepted, and only
// the identifier grammar of the optional fields is validated.
func FromRecord(r Record) (Version, error) {
	return New(r.Major, r.Minor, r.Patch, r.Prerelease, r.Metadata)
}

// MarshalJSON encodes v as its structured record.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Record())
}

// UnmarshalJSON decodes a structured record, validating it through New.
func (v *Version) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalYAML encodes v as its structured record.
func (v Version) MarshalYAML() (any, error) {
	return v.Record(), nil
}

// UnmarshalYAML decodes a structured record, validating it through New.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var r Record
	if err := node.Decode(&r); err != nil {
		return err
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
