package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/docsdk/go-dictsync/pkg/filesys"
)

const (
	// HyphenPrefix is the conventional basename prefix of hyphenation
	// data files shipped alongside a dictionary.
	HyphenPrefix = "hyph_"

	codesField = "codes"
)

// ErrNoDescriptor marks a subdirectory that has no descriptor file at
// all. Callers treat it as "not a dictionary package", not a failure.
var ErrNoDescriptor = errors.New("dictionary descriptor not found")

// Descriptor is the parsed form of `<name>/<name>.json`.
type Descriptor struct {
	Name   string
	Codes  []string
	Hyphen bool
}

// ConfigPath returns the descriptor file path for a dictionary.
func ConfigPath(root, name string) string {
	return filepath.Join(root, name, name+".json")
}

// HyphenPath returns the hyphenation data file path for a dictionary.
// Only its presence matters; the content is never read.
func HyphenPath(root, name string) string {
	return filepath.Join(root, name, HyphenPrefix+name+".dic")
}

// ReadDescriptor reads and parses one dictionary descriptor. Language
// codes are coerced to strings whatever their JSON type, so numeric
// locale identifiers survive aggregation.
func ReadDescriptor(root, name string) (*Descriptor, error) {
	cfgPath := ConfigPath(root, name)
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDescriptor
		}
		return nil, fmt.Errorf("read descriptor %s: %w", cfgPath, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse descriptor %s: invalid JSON", cfgPath)
	}

	codes := gjson.GetBytes(data, codesField)
	if !codes.IsArray() {
		return nil, fmt.Errorf("descriptor %s: required field %q is missing or not an array", cfgPath, codesField)
	}

	d := &Descriptor{
		Name:   name,
		Hyphen: filesys.IsFile(HyphenPath(root, name)),
	}
	for _, code := range codes.Array() {
		d.Codes = append(d.Codes, code.String())
	}
	return d, nil
}
