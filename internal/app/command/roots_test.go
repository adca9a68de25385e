package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoots(t *testing.T) {
	roots := DefaultRoots(filepath.Join("tree", "tools", "dictionaries"))

	require.Equal(t, filepath.Join("tree", "dictionaries"), roots.DictionariesDir)
	require.Equal(t, filepath.Join("tree", "sdkjs"), roots.SDKDir)
	require.Equal(t, filepath.Join("tree", "tools", "FileConverter", "bin", "x2t"), roots.ConverterBin)
}

func TestLoadRoots_NoConfigFile(t *testing.T) {
	workDir := t.TempDir()

	roots, err := LoadRoots(workDir)
	require.NoError(t, err)
	require.Equal(t, DefaultRoots(workDir), roots)
}

func TestLoadRoots_ConfigOverrides(t *testing.T) {
	workDir := t.TempDir()
	cfg := `dictionaries_dir = "/data/dictionaries"` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte(cfg), os.ModePerm))

	roots, err := LoadRoots(workDir)
	require.NoError(t, err)
	require.Equal(t, "/data/dictionaries", roots.DictionariesDir)
	// untouched keys keep their derived defaults
	require.Equal(t, DefaultRoots(workDir).SDKDir, roots.SDKDir)
}

func TestLoadRoots_BadConfig(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte("not toml ["), os.ModePerm))

	_, err := LoadRoots(workDir)
	require.Error(t, err)
}

func TestResolveRoots_FlagsWin(t *testing.T) {
	workDir := t.TempDir()
	cfg := `sdk_dir = "/from/config/sdkjs"` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte(cfg), os.ModePerm))

	cmd := &cobra.Command{Use: "test"}
	AddWorkDirFlag(cmd)
	AddRootsFlags(cmd)
	// merge persistent flags into the command's flag set
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, cmd.Flags().Set("working-dir", workDir))
	require.NoError(t, cmd.Flags().Set("sdk-dir", "/from/flag/sdkjs"))

	roots, err := ResolveRoots(cmd)
	require.NoError(t, err)
	require.Equal(t, "/from/flag/sdkjs", roots.SDKDir)
	require.Equal(t, DefaultRoots(workDir).DictionariesDir, roots.DictionariesDir)
}

func TestResolveRoots_ConfigBeatsDefault(t *testing.T) {
	workDir := t.TempDir()
	cfg := `converter_bin = "/opt/converter/x2t"` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte(cfg), os.ModePerm))

	cmd := &cobra.Command{Use: "test"}
	AddWorkDirFlag(cmd)
	AddRootsFlags(cmd)
	// merge persistent flags into the command's flag set
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, cmd.Flags().Set("working-dir", workDir))

	roots, err := ResolveRoots(cmd)
	require.NoError(t, err)
	require.Equal(t, "/opt/converter/x2t", roots.ConverterBin)
}
