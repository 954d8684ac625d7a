package catalogs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// NewFromDir loads a catalog from a directory of YAML files. Files are read
// in lexical order so the catalog order is deterministic; each file holds
// either a list of definitions or a single definition. No shape validation
// happens here — the reconciler validates per definition.
func NewFromDir(dir string) (Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewConfigError("catalog", "reading catalog directory "+dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := strings.ToLower(filepath.Ext(name)); ext == ".yaml" || ext == ".yml" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var defs []runnertypes.Definition
	for _, name := range names {
		path := filepath.Join(dir, name)
		fileDefs, err := loadDefinitionsFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}

	return New(defs...), nil
}

// loadDefinitionsFile parses one YAML file into definitions. A file may
// contain a sequence of definitions or a single mapping.
func loadDefinitionsFile(path string) ([]runnertypes.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("catalog", "reading catalog file "+path, err)
	}

	var defs []runnertypes.Definition
	if err := yaml.Unmarshal(data, &defs); err == nil {
		return defs, nil
	}

	var def runnertypes.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return []runnertypes.Definition{def}, nil
}
