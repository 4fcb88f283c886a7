package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile carries the scan knobs a repeated engagement wants pinned down in
// a file instead of retyped as flags. Flags given on the command line win
// over profile values.
type Profile struct {
	RecordSize      int    `yaml:"record_size"`
	Workers         int    `yaml:"workers"`
	Hash            string `yaml:"hash"`
	DetectAnomalies bool   `yaml:"detect_anomalies"`
	FullPaths       bool   `yaml:"full_paths"`
	BodyFileUseFN   bool   `yaml:"bodyfile_use_fn"`
	LocalTimezone   bool   `yaml:"local_timezone"`
	Logging         bool   `yaml:"logging"`
}

func Default() Profile {
	return Profile{
		RecordSize:      1024,
		DetectAnomalies: true,
		FullPaths:       true,
	}
}

func Load(filename string) (Profile, error) {
	profile := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return profile, fmt.Errorf("reading profile %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parsing profile %s: %w", filename, err)
	}
	if profile.RecordSize <= 0 {
		return profile, fmt.Errorf("profile %s: record size %d is not positive", filename, profile.RecordSize)
	}
	return profile, nil
}
