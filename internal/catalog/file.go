package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog, in JSON or YAML.
type File struct {
	Version   string                `json:"version" yaml:"version"`
	Electives []domain.CatalogEntry `json:"electives" yaml:"electives"`
}

// Load reads a catalog file. The format follows the extension: .json, or
// .yaml / .yml.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q (want .json, .yaml or .yml)", ext)
	}

	if len(f.Electives) == 0 {
		return nil, fmt.Errorf("catalog file %s lists no electives", path)
	}
	version := f.Version
	if version == "" {
		version = filepath.Base(path)
	}
	return New(version, f.Electives)
}

// LoadOrDefault loads path, or returns the bundled catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
