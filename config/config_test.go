package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func TestLoadProfile(t *testing.T) {
	filename := writeProfile(t, `
record_size: 4096
workers: 4
hash: sha256
detect_anomalies: false
bodyfile_use_fn: true
local_timezone: true
`)
	profile, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, 4096, profile.RecordSize)
	assert.Equal(t, 4, profile.Workers)
	assert.Equal(t, "sha256", profile.Hash)
	assert.False(t, profile.DetectAnomalies)
	assert.True(t, profile.BodyFileUseFN)
	assert.True(t, profile.LocalTimezone)
}

func TestLoadProfileDefaults(t *testing.T) {
	profile, err := Load(writeProfile(t, "workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 1024, profile.RecordSize, "unset keys keep their defaults")
	assert.True(t, profile.DetectAnomalies)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadProfileBadYAML(t *testing.T) {
	_, err := Load(writeProfile(t, "record_size: [not a number\n"))
	assert.Error(t, err)
}

func TestLoadProfileRejectsNonPositiveRecordSize(t *testing.T) {
	_, err := Load(writeProfile(t, "record_size: -8\n"))
	assert.Error(t, err)
}
