package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const (
	workingDirFlag = "working-dir"
	dictDirFlag    = "dictionaries-dir"
	sdkDirFlag     = "sdk-dir"
	converterFlag  = "converter-bin"

	// ConfigFileName is the optional per-tree configuration file,
	// looked up in the working directory.
	ConfigFileName = "dictsync.toml"
)

// Roots locates everything the pipeline touches. Every stage receives
// its paths from here instead of reaching for the working directory.
type Roots struct {
	DictionariesDir string `toml:"dictionaries_dir"`
	SDKDir          string `toml:"sdk_dir"`
	ConverterBin    string `toml:"converter_bin"`
}

// DefaultRoots derives the conventional tree layout around the tool's
// working directory: the dictionaries root two levels up, the SDK
// checkout next to it and the converter under FileConverter/bin.
func DefaultRoots(workDir string) Roots {
	dictDir := filepath.Join(workDir, "..", "..", "dictionaries")
	return Roots{
		DictionariesDir: dictDir,
		SDKDir:          filepath.Join(dictDir, "..", "sdkjs"),
		ConverterBin:    filepath.Join(workDir, "..", "FileConverter", "bin", "x2t"),
	}
}

// LoadRoots resolves roots from the layout defaults, overridden by an
// optional dictsync.toml in the working directory.
func LoadRoots(workDir string) (Roots, error) {
	r := DefaultRoots(workDir)

	cfgPath := filepath.Join(workDir, ConfigFileName)
	if _, err := os.Stat(cfgPath); err != nil {
		return r, nil
	}
	if _, err := toml.DecodeFile(cfgPath, &r); err != nil {
		return Roots{}, fmt.Errorf("decode %s: %w", ConfigFileName, err)
	}
	return r, nil
}

func AddWorkDirFlag(cmd *cobra.Command) {
	cwd, _ := os.Getwd()

	cmd.PersistentFlags().StringP(workingDirFlag, "w", cwd, "define working directory")
}

func AddRootsFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(dictDirFlag, "", "dictionaries root directory")
	cmd.PersistentFlags().String(sdkDirFlag, "", "SDK checkout root directory")
	cmd.PersistentFlags().String(converterFlag, "", "path to the converter executable")
}

func GetWorkingDir(cmd *cobra.Command) (string, error) {
	baseDir, err := cmd.Flags().GetString(workingDirFlag)
	if err != nil {
		return "", fmt.Errorf("get working-dir flag: %w", err)
	}
	return baseDir, nil
}

// ResolveRoots layers flag > config file > derived default.
func ResolveRoots(cmd *cobra.Command) (Roots, error) {
	workDir, err := GetWorkingDir(cmd)
	if err != nil {
		return Roots{}, err
	}

	roots, err := LoadRoots(workDir)
	if err != nil {
		return Roots{}, err
	}

	for flag, dst := range map[string]*string{
		dictDirFlag:   &roots.DictionariesDir,
		sdkDirFlag:    &roots.SDKDir,
		converterFlag: &roots.ConverterBin,
	} {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		v, err := cmd.Flags().GetString(flag)
		if err != nil {
			return Roots{}, fmt.Errorf("get %s flag: %w", flag, err)
		}
		*dst = v
	}
	return roots, nil
}
