package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestExportThenImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ChatsFile)
	in := []record{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	require.NoError(t, ExportJSON(path, in))
	assert.True(t, Exists(path))

	var out []record
	require.NoError(t, ImportJSON(path, &out))
	assert.Equal(t, in, out)
}

func TestImportJSONIfExistsMissing(t *testing.T) {
	var out []record
	ok, err := ImportJSONIfExists(filepath.Join(t.TempDir(), MassMessagesFile), &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestImportJSONBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	var out []record
	_, err := ImportJSONIfExists(path, &out)
	assert.Error(t, err)
}
