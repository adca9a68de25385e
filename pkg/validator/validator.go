package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/mod/semver"

	"github.com/docsdk/go-dictsync/pkg/catalog"
	"github.com/docsdk/go-dictsync/pkg/filesys"
)

// descriptorSchema is the shape every dictionary descriptor must
// satisfy. Codes may be numbers; the catalog coerces them to strings.
const descriptorSchema = `{
	"type": "object",
	"required": ["codes"],
	"properties": {
		"codes": {
			"type": "array",
			"minItems": 1,
			"items": {"type": ["string", "number"]}
		},
		"version": {"type": "string"}
	}
}`

var compiledDescriptorSchema = MustCompileSchema(descriptorSchema)

// Issue is one lint finding against a dictionary descriptor.
type Issue struct {
	Dictionary string
	Detail     string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Dictionary, i.Detail)
}

// LintDir validates every descriptor under dictDir and collects all
// findings. Subdirectories without a descriptor are ignored, same as
// the catalog builder does. Only I/O and JSON syntax failures return
// an error; schema violations are findings.
func LintDir(dictDir string) ([]Issue, error) {
	entries, err := os.ReadDir(dictDir)
	if err != nil {
		return nil, fmt.Errorf("read dictionaries root: %w", err)
	}

	var issues []Issue
	for _, e := range entries {
		name := e.Name()
		if !filesys.IsDir(filepath.Join(dictDir, name)) {
			continue
		}
		cfgPath := catalog.ConfigPath(dictDir, name)
		data, err := os.ReadFile(cfgPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read descriptor %s: %w", cfgPath, err)
		}

		found, err := lintDescriptor(name, data)
		if err != nil {
			return nil, err
		}
		issues = append(issues, found...)
	}
	return issues, nil
}

func lintDescriptor(name string, data []byte) ([]Issue, error) {
	result, err := compiledDescriptorSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate descriptor %s: %w", name, err)
	}

	var issues []Issue
	for _, desc := range result.Errors() {
		issues = append(issues, Issue{Dictionary: name, Detail: desc.String()})
	}

	if ver := gjson.GetBytes(data, "version"); ver.Exists() && ver.Type == gjson.String {
		v := ver.String()
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		if !semver.IsValid(v) {
			issues = append(issues, Issue{
				Dictionary: name,
				Detail:     fmt.Sprintf("version: %q is not valid semver", ver.String()),
			})
		}
	}
	return issues, nil
}
