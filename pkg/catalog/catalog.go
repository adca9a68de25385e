package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/docsdk/go-dictsync/pkg/filesys"
)

type LangCode string

// Entry describes which dictionary package serves a language code.
type Entry struct {
	Name   string `json:"name"`
	Hyphen bool   `json:"hyphen"`
}

// Catalog maps every declared language code to its dictionary package.
// When two descriptors declare the same code, the one read later wins;
// directories are visited in sorted name order, so the winner is stable.
type Catalog map[LangCode]Entry

// Build scans the immediate subdirectories of dictDir and aggregates
// their descriptors. Subdirectories without a descriptor are skipped.
// A descriptor that exists but cannot be read or parsed aborts the build.
func Build(dictDir string) (Catalog, error) {
	entries, err := os.ReadDir(dictDir)
	if err != nil {
		return nil, fmt.Errorf("read dictionaries root: %w", err)
	}

	c := Catalog{}
	for _, e := range entries {
		name := e.Name()
		if !filesys.IsDir(filepath.Join(dictDir, name)) {
			continue
		}
		d, err := ReadDescriptor(dictDir, name)
		if err != nil {
			if errors.Is(err, ErrNoDescriptor) {
				slog.Debug("No descriptor, skipping", slog.String("dictionary", name))
				continue
			}
			return nil, err
		}
		slog.Debug("Collected dictionary",
			slog.String("dictionary", name),
			slog.Int("codes", len(d.Codes)),
			slog.Bool("hyphen", d.Hyphen))
		for _, code := range d.Codes {
			c[LangCode(code)] = Entry{Name: name, Hyphen: d.Hyphen}
		}
	}
	return c, nil
}

// Codes returns all language codes in lexicographic order.
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	return codes
}

// Marshal serializes the catalog with sorted keys and compact
// separators. The output is byte-identical across runs for an
// unchanged dictionary tree, which keeps patched bundles diff-stable.
func (c Catalog) Marshal() ([]byte, error) {
	om := orderedmap.New[string, Entry](len(c))
	for _, code := range c.Codes() {
		om.Set(code, c[LangCode(code)])
	}
	data, err := json.Marshal(om)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}
