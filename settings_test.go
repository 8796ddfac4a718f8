package tween

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-transform-tween/ease"
)

// TestParseSettings verifies a fully specified YAML document round-trips
// into settings.
func TestParseSettings(t *testing.T) {
	data := []byte(`
duration: 2.5
ease: bounce-out
space: local
dynamicTarget: true
autoApply: false
smoothTime: 0.75
maxSpeed: 40
`)

	s, err := ParseSettings(data)
	require.NoError(t, err)

	assert.Equal(t, 2.5, s.Duration)
	assert.Equal(t, ease.BounceOut, s.Ease)
	assert.Equal(t, Local, s.Space)
	assert.True(t, s.DynamicTarget)
	assert.False(t, s.AutoApply)
	assert.Equal(t, 0.75, s.SmoothTime)
	assert.Equal(t, 40.0, s.MaxSpeed)
}

// TestParseSettingsDefaults verifies omitted fields fall back to the
// defaults instead of zero values.
func TestParseSettingsDefaults(t *testing.T) {
	s, err := ParseSettings([]byte(`ease: quad-in-out`))
	require.NoError(t, err)

	defaults := DefaultSettings()
	assert.Equal(t, defaults.Duration, s.Duration)
	assert.Equal(t, ease.QuadInOut, s.Ease)
	assert.Equal(t, World, s.Space)
	assert.Equal(t, defaults.AutoApply, s.AutoApply)
	assert.Equal(t, defaults.SmoothTime, s.SmoothTime)
}

// TestParseSettingsNegativeDurationClamped verifies the duration clamp
// applies on the file-loading write path too.
func TestParseSettingsNegativeDurationClamped(t *testing.T) {
	s, err := ParseSettings([]byte(`duration: -3`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Duration)
}

// TestParseSettingsErrors verifies malformed documents and unknown enum
// names are rejected.
func TestParseSettingsErrors(t *testing.T) {
	_, err := ParseSettings([]byte(`ease: zigzag`))
	assert.ErrorIs(t, err, ease.ErrUnknownType)

	_, err = ParseSettings([]byte(`space: screen`))
	assert.ErrorIs(t, err, ErrInvalidSettings)

	_, err = ParseSettings([]byte(`duration: [nope`))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

// TestLoadSettings verifies loading from a file on disk.
func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: 1.5\nease: spring\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, s.Duration)
	assert.Equal(t, ease.Spring, s.Ease)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestSettingsValidate exercises the validation rules.
func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	s.Duration = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = DefaultSettings()
	s.SmoothTime = -0.5
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = DefaultSettings()
	s.Space = Space(7)
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = DefaultSettings()
	s.Ease = ease.Type(1234)
	assert.ErrorIs(t, s.Validate(), ease.ErrUnknownType)
}

// TestSetDurationClamps verifies the write-side clamp.
func TestSetDurationClamps(t *testing.T) {
	s := DefaultSettings()
	s.SetDuration(-2)
	assert.Equal(t, 0.0, s.Duration)
	s.SetDuration(3)
	assert.Equal(t, 3.0, s.Duration)
}

// TestSpaceRoundTrip verifies space names parse back to themselves.
func TestSpaceRoundTrip(t *testing.T) {
	for _, space := range []Space{World, Local} {
		parsed, err := ParseSpace(space.String())
		require.NoError(t, err)
		assert.Equal(t, space, parsed)
	}

	parsed, err := ParseSpace("")
	require.NoError(t, err)
	assert.Equal(t, World, parsed, "empty means world")
}
