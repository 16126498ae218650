package presets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"vcshell/internal/fileutil"
	"vcshell/internal/logging"
)

// Resolver serves preset lookups against one document path.
type Resolver struct {
	path   string
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger attaches a logger; the default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver constructs a Resolver for the document at path.
func NewResolver(path string, opts ...Option) *Resolver {
	r := &Resolver{path: path, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "presets")
	return r
}

// Path returns the document location.
func (r *Resolver) Path() string {
	return r.path
}

// Catalog loads the full catalog.
func (r *Resolver) Catalog() (Catalog, error) {
	return Load(r.path)
}

// List resolves the catalog into display entries.
func (r *Resolver) List() ([]DisplayEntry, error) {
	catalog, err := Load(r.path)
	if err != nil {
		return nil, err
	}
	entries := Entries(catalog)
	r.logger.Debug("presets resolved",
		logging.String("path", r.path),
		logging.Int("count", len(entries)),
	)
	return entries, nil
}

// Get returns a single definition by name.
func (r *Resolver) Get(name string) (Definition, error) {
	catalog, err := Load(r.path)
	if err != nil {
		return Definition{}, err
	}
	def, ok := catalog.Lookup(name)
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(Names(catalog), ", "))
	}
	return def, nil
}

// Save inserts or overwrites def under def.Name. The document is created
// (with parent directories) when missing; other top-level keys are kept.
func (r *Resolver) Save(def Definition) error {
	if FormatLabel(def.Name) == "" {
		return fmt.Errorf("invalid preset name %q", def.Name)
	}

	var entry yaml.Node
	if err := entry.Encode(def); err != nil {
		return fmt.Errorf("encode preset %q: %w", def.Name, err)
	}

	return r.edit(true, func(table *yaml.Node) error {
		for i := 0; i+1 < len(table.Content); i += 2 {
			if table.Content[i].Value == def.Name {
				table.Content[i+1] = &entry
				return nil
			}
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: def.Name}
		table.Content = append(table.Content, key, &entry)
		return nil
	}, "preset saved", def.Name)
}

// Delete removes the named preset. It returns ErrNotFound when the name is
// not in the table.
func (r *Resolver) Delete(name string) error {
	return r.edit(false, func(table *yaml.Node) error {
		for i := 0; i+1 < len(table.Content); i += 2 {
			if table.Content[i].Value == name {
				table.Content = append(table.Content[:i], table.Content[i+2:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}, "preset deleted", name)
}

func (r *Resolver) edit(create bool, mutate func(table *yaml.Node) error, event, name string) error {
	if create {
		if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
			return fmt.Errorf("create presets directory: %w", err)
		}
	} else if _, err := os.Stat(r.path); err != nil {
		return &ReadError{Path: r.path, Err: err}
	}

	lock := flock.New(r.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock presets file: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	root, err := readDocument(r.path, create)
	if err != nil {
		return err
	}
	table, err := presetsTable(root, create)
	if err != nil {
		return &ParseError{Path: r.path, Err: err}
	}
	if err := mutate(table); err != nil {
		return err
	}
	if err := writeDocument(r.path, root); err != nil {
		return err
	}

	r.logger.Info(event, logging.String("preset", name), logging.String("path", r.path))
	return nil
}

func readDocument(path string, create bool) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if create && errors.Is(err, os.ErrNotExist) {
			return newDocument(), nil
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if root.Kind == 0 {
		if !create {
			return nil, &ParseError{Path: path, Err: errors.New(`missing "presets" table`)}
		}
		return newDocument(), nil
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, &ParseError{Path: path, Err: errors.New("document root must be a mapping")}
	}
	return &root, nil
}

func newDocument() *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
	}
}

func presetsTable(root *yaml.Node, create bool) (*yaml.Node, error) {
	top := root.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value != "presets" {
			continue
		}
		value := resolveAlias(top.Content[i+1])
		if isNull(value) && create {
			table := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			top.Content[i+1] = table
			return table, nil
		}
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf(`"presets" must be a mapping (line %d)`, value.Line)
		}
		return value, nil
	}
	if !create {
		return nil, errors.New(`missing "presets" table`)
	}
	table := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	top.Content = append(top.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "presets"},
		table,
	)
	return table, nil
}

func writeDocument(path string, root *yaml.Node) error {
	out, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("serialize presets: %w", err)
	}
	if err := fileutil.WriteAtomic(path, out, 0o644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}
