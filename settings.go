package tween

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-transform-tween/ease"
)

// settingsFile is the on-disk YAML shape of Settings. Enum fields use
// their canonical string names; pointer fields distinguish "omitted" from
// an explicit zero so omitted fields fall back to defaults.
type settingsFile struct {
	Duration      *float64 `yaml:"duration"`
	Ease          string   `yaml:"ease"`
	Space         string   `yaml:"space"`
	DynamicTarget bool     `yaml:"dynamicTarget"`
	AutoApply     *bool    `yaml:"autoApply"`
	SmoothTime    *float64 `yaml:"smoothTime"`
	MaxSpeed      float64  `yaml:"maxSpeed"`
}

// LoadSettings reads interpolation settings from a YAML file. Omitted
// fields keep the DefaultSettings values. Example:
//
//	duration: 2.5
//	ease: bounce-out
//	space: local
//	dynamicTarget: true
//	maxSpeed: 40
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings parses YAML settings data. Omitted fields keep the
// DefaultSettings values; the result is validated before being returned.
func ParseSettings(data []byte) (*Settings, error) {
	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	s := DefaultSettings()

	if file.Duration != nil {
		s.SetDuration(*file.Duration)
	}
	if file.Ease != "" {
		t, err := ease.ParseType(file.Ease)
		if err != nil {
			return nil, err
		}
		s.Ease = t
	}
	space, err := ParseSpace(file.Space)
	if err != nil {
		return nil, err
	}
	s.Space = space
	s.DynamicTarget = file.DynamicTarget
	if file.AutoApply != nil {
		s.AutoApply = *file.AutoApply
	}
	if file.SmoothTime != nil {
		s.SmoothTime = *file.SmoothTime
	}
	s.MaxSpeed = file.MaxSpeed

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
