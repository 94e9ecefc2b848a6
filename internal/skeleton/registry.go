package skeleton

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/skeleton/internal/model"
)

// DefaultRoot is the skeleton root directory name, relative to the
// working directory.
const DefaultRoot = ".skeleton"

// configCandidates lists per-type config file names in lookup order.
// The same names are reserved and never rendered as templates.
var configCandidates = []string{"config.json", "config.yaml", "config.yml"}

// ErrConfigNotFound is returned by LoadConfig when a skeleton set has no
// config file at all.
var ErrConfigNotFound = errors.New("skeleton config not found")

// Registry enumerates skeleton sets under a root directory.
type Registry struct {
	root string
}

// NewRegistry creates a Registry rooted at root.
func NewRegistry(root string) *Registry {
	return &Registry{root: root}
}

// Root returns the registry root directory.
func (r *Registry) Root() string {
	return r.root
}

// SetDir returns the directory of the given skeleton type.
func (r *Registry) SetDir(componentType string) string {
	return filepath.Join(r.root, componentType)
}

// ListTypes returns the names of the immediate subdirectories of the root,
// in directory-listing order. Callers must not rely on the order.
func (r *Registry) ListTypes() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read skeleton root %s: %w", r.root, err)
	}

	types := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			types = append(types, e.Name())
		}
	}
	return types, nil
}

// Has reports whether componentType is one of types.
func Has(types []string, componentType string) bool {
	for _, t := range types {
		if t == componentType {
			return true
		}
	}
	return false
}

// LoadConfig reads the config file of a skeleton type and overlays it on
// the defaults. Keys present in the file override the defaults, including
// explicit empty strings; absent keys keep their default.
//
// Returns an error wrapping ErrConfigNotFound when no config file exists,
// and a parse error when the file is not valid JSON(C)/YAML.
func (r *Registry) LoadConfig(componentType string) (model.SkeletonConfig, error) {
	cfg := model.DefaultSkeletonConfig()
	dir := r.SetDir(componentType)

	for _, name := range configCandidates {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if strings.HasSuffix(name, ".json") {
			err = decodeJSON(data, &cfg)
		} else {
			err = decodeYAML(data, &cfg)
		}
		if err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, filepath.Join(dir, configCandidates[0]))
}

// decodeJSON strips JSONC comments and trailing commas, then decodes into
// cfg. Decoding into a pre-populated struct is what makes the overlay work.
func decodeJSON(data []byte, cfg *model.SkeletonConfig) error {
	return json.Unmarshal(jsonc.ToJSON(data), cfg)
}

// decodeYAML decodes a YAML config into cfg. An empty document keeps the
// defaults.
func decodeYAML(data []byte, cfg *model.SkeletonConfig) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return yaml.Unmarshal(data, cfg)
}

// Load resolves a single skeleton set: its directory and merged config.
func (r *Registry) Load(componentType string) (*model.SkeletonSet, error) {
	cfg, err := r.LoadConfig(componentType)
	if err != nil {
		return nil, err
	}
	return &model.SkeletonSet{
		Type:   componentType,
		Dir:    r.SetDir(componentType),
		Config: cfg,
	}, nil
}

// LoadAll resolves every discovered skeleton set. A set whose config
// cannot be loaded aborts the listing.
func (r *Registry) LoadAll() ([]model.SkeletonSet, error) {
	types, err := r.ListTypes()
	if err != nil {
		return nil, err
	}

	sets := make([]model.SkeletonSet, 0, len(types))
	for _, t := range types {
		set, err := r.Load(t)
		if err != nil {
			return nil, err
		}
		sets = append(sets, *set)
	}
	return sets, nil
}

// IsReserved reports whether a file name in a skeleton set is a config
// file rather than a template.
func IsReserved(name string) bool {
	for _, c := range configCandidates {
		if name == c {
			return true
		}
	}
	return false
}

// TemplateFiles returns the template file names of a skeleton set in
// directory-listing order. Reserved config files and subdirectories are
// excluded.
func (r *Registry) TemplateFiles(componentType string) ([]string, error) {
	dir := r.SetDir(componentType)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read skeleton directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || IsReserved(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}
