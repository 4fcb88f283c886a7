package img

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReader(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "mft.bin")
	payload := []byte("0123456789abcdef")
	require.NoError(t, os.WriteFile(filename, payload, 0644))

	handler, err := GetHandler(filename)
	require.NoError(t, err)
	defer handler.CloseHandler()

	assert.IsType(t, &FileReader{}, handler)
	assert.Equal(t, int64(len(payload)), handler.GetDiskSize())
	assert.Equal(t, []byte("4567"), handler.ReadFile(4, 4))
	assert.Equal(t, []byte("ef"), handler.ReadFile(14, 4), "short read at end of source")
	assert.Nil(t, handler.ReadFile(100, 4), "nothing left to read")
}

func TestGetHandlerMissingFile(t *testing.T) {
	_, err := GetHandler(filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(t, err)
}
