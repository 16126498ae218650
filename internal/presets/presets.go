package presets

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Definition holds the encoding settings for one named preset.
// Name is populated from the map key, not from the document body.
type Definition struct {
	Name        string `yaml:"-"`
	VideoCodec  string `yaml:"video_codec"`
	CRF         uint   `yaml:"crf"`
	Speed       string `yaml:"preset"`
	Description string `yaml:"description"`
}

// Catalog maps preset names to their definitions.
type Catalog map[string]Definition

// Lookup returns the named definition.
func (c Catalog) Lookup(name string) (Definition, bool) {
	def, ok := c[name]
	return def, ok
}

// DisplayEntry is the UI-facing view of a preset.
type DisplayEntry struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// document is the on-disk shape. Presets stays a yaml.Node so the table shape
// can be checked before decoding individual entries.
type document struct {
	Presets yaml.Node `yaml:"presets"`
}

// rawDefinition tells an absent description apart from an empty one.
type rawDefinition struct {
	VideoCodec  string  `yaml:"video_codec"`
	CRF         uint    `yaml:"crf"`
	Speed       string  `yaml:"preset"`
	Description *string `yaml:"description"`
}

// Load reads path once and parses it into a Catalog.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	catalog, err := parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return catalog, nil
}

func parse(data []byte) (Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	table := resolveAlias(&doc.Presets)
	if table.Kind == 0 || isNull(table) {
		return nil, errors.New(`missing "presets" table`)
	}
	if table.Kind != yaml.MappingNode {
		return nil, fmt.Errorf(`"presets" must be a mapping (line %d)`, table.Line)
	}

	catalog := make(Catalog, len(table.Content)/2)
	for i := 0; i+1 < len(table.Content); i += 2 {
		keyNode, valueNode := table.Content[i], table.Content[i+1]
		name := keyNode.Value
		valueNode = resolveAlias(valueNode)
		if valueNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("preset %q must be a mapping (line %d)", name, valueNode.Line)
		}
		var raw rawDefinition
		if err := valueNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		if raw.Description == nil {
			return nil, fmt.Errorf("preset %q: description is required (line %d)", name, valueNode.Line)
		}
		if _, dup := catalog[name]; dup {
			return nil, fmt.Errorf("preset %q defined more than once (line %d)", name, keyNode.Line)
		}
		catalog[name] = Definition{
			Name:        name,
			VideoCodec:  raw.VideoCodec,
			CRF:         raw.CRF,
			Speed:       raw.Speed,
			Description: *raw.Description,
		}
	}
	return catalog, nil
}

// resolveAlias follows an alias to the node it refers to.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// Entries maps every catalog entry to a DisplayEntry. The order follows map
// iteration and is not meaningful.
func Entries(catalog Catalog) []DisplayEntry {
	entries := make([]DisplayEntry, 0, len(catalog))
	for name, def := range catalog {
		entries = append(entries, DisplayEntry{
			Value:       name,
			Label:       FormatLabel(name),
			Description: def.Description,
		})
	}
	return entries
}

// Names returns the sorted list of preset names.
func Names(catalog Catalog) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildFFArgs turns a Definition into ffmpeg codec arguments (minus input/output).
func BuildFFArgs(def Definition) []string {
	return []string{
		"-c:v", def.VideoCodec,
		"-preset", def.Speed,
		"-crf", strconv.FormatUint(uint64(def.CRF), 10),
	}
}
