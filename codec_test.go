package semver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecordRoundTrip(t *testing.T) {
	v := MustParse("1.2.3-alpha.1+build.5")

	r := v.Record()
	require.Equal(t, Record{Major: 1, Minor: 2, Patch: 3, Prerelease: "alpha.1", Metadata: "build.5"}, r)

	decoded, err := FromRecord(r)
	require.NoError(t, err)
	require.True(t, decoded.Identical(v))
}

func TestFromRecordValidation(t *testing.T) {
	// Decoding follows constructor rules, not text-parse rules: a zero major
	// is fine.
	v, err := FromRecord(Record{Major: 0, Minor: 1, Patch: 0})
	require.NoError(t, err)
	require.Equal(t, "0.1.0", v.String())

	_, err = FromRecord(Record{Major: 1, Prerelease: "#invalid"})
	require.ErrorIs(t, err, ErrPrereleaseInvalid)

	_, err = FromRecord(Record{Major: 1, Prerelease: "alpha", Metadata: "#invalid"})
	require.ErrorIs(t, err, ErrMetadataInvalid)
}

func TestVersionJSON(t *testing.T) {
	v := MustParse("1.2.3-beta.2+build.123")

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `{"major":1,"minor":2,"patch":3,"prerelease":"beta.2","metadata":"build.123"}`, string(data))

	var decoded Version
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Identical(v))
}

func TestVersionJSONOmitsAbsentFields(t *testing.T) {
	v := MustParse("1.2.3")

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `{"major":1,"minor":2,"patch":3}`, string(data))
}

func TestVersionJSONInvalidRecord(t *testing.T) {
	var v Version
	err := json.Unmarshal([]byte(`{"major":1,"minor":0,"patch":0,"prerelease":"a..b"}`), &v)
	require.ErrorIs(t, err, ErrPrereleaseInvalid)
}

func TestVersionYAML(t *testing.T) {
	v := MustParse("2.0.1-rc.1+sha-d0f3a81")

	data, err := yaml.Marshal(v)
	require.NoError(t, err)

	var decoded Version
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.True(t, decoded.Identical(v))
}

func TestVersionYAMLZeroMajor(t *testing.T) {
	var v Version
	require.NoError(t, yaml.Unmarshal([]byte("major: 0\nminor: 1\npatch: 0\n"), &v))
	require.Equal(t, "0.1.0", v.String())
}

func TestVersionYAMLInvalidRecord(t *testing.T) {
	var v Version
	err := yaml.Unmarshal([]byte("major: 1\nminor: 0\npatch: 0\nmetadata: '+bad'\n"), &v)
	require.ErrorIs(t, err, ErrMetadataInvalid)
}
