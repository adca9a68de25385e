package testsupp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type TreeTestCase struct {
	Name  string
	Files map[string]string
}

// InitTestTree materializes a fixture directory tree under ./testdata.
// Keys of Files are relative paths; a key ending with "/" creates an
// empty directory instead of a file.
func InitTestTree(t *testing.T, tc TreeTestCase) string {
	t.Helper()

	testDir := filepath.Join("testdata", strings.ReplaceAll(tc.Name, " ", "_"))
	require.NoError(t, os.RemoveAll(testDir))
	require.NoError(t, os.MkdirAll(testDir, os.ModePerm))

	for name, content := range tc.Files {
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(filepath.Join(testDir, name), os.ModePerm))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(testDir, name)), os.ModePerm))
		require.NoError(t, os.WriteFile(filepath.Join(testDir, name), []byte(content), os.ModePerm))
	}

	return testDir
}
