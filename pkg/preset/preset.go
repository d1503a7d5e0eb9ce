package preset

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/twicurl/pkg/errors"
	"github.com/matzehuels/twicurl/pkg/twicpics"
)

// Set is an immutable collection of named style URLs.
// A nil *Set is an empty set.
type Set struct {
	presets map[string]twicpics.URL
}

type presetFile struct {
	Presets map[string]definition `toml:"presets" yaml:"presets"`
}

type definition struct {
	Format  string           `toml:"format" yaml:"format"`
	Quality any              `toml:"quality" yaml:"quality"`
	Auth    string           `toml:"auth" yaml:"auth"`
	Steps   []map[string]any `toml:"steps" yaml:"steps"`
}

// Load reads and parses the preset file at path.
// Files ending in .yaml or .yml are read as YAML, anything else as TOML.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s", path)
	}
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return Parse(data)
}

// Parse parses preset definitions from TOML data.
func Parse(data []byte) (*Set, error) {
	var file presetFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode presets")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown key %q", undecoded[0].String())
	}
	return file.compile()
}

// ParseYAML parses preset definitions from YAML data.
// The document has the same shape as the TOML form.
func ParseYAML(data []byte) (*Set, error) {
	var file presetFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode presets")
	}
	return file.compile()
}

func (file presetFile) compile() (*Set, error) {
	set := &Set{presets: make(map[string]twicpics.URL, len(file.Presets))}
	for name, def := range file.Presets {
		if err := errors.ValidatePresetName(name); err != nil {
			return nil, err
		}
		u, err := def.build()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
		}
		set.presets[name] = u
	}
	return set, nil
}

// Len returns the number of presets in s.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.presets)
}

// Names returns the preset names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the style URL of the named preset.
func (s *Set) Get(name string) (twicpics.URL, error) {
	if s != nil {
		if u, ok := s.presets[name]; ok {
			return u, nil
		}
	}
	return twicpics.URL{}, errors.New(errors.ErrCodePresetNotFound, "preset %q not found", name)
}

// Compose applies the named preset to content.
func (s *Set) Compose(name string, content twicpics.URL) (twicpics.URL, error) {
	style, err := s.Get(name)
	if err != nil {
		return twicpics.URL{}, err
	}
	return style.SrcURL(content), nil
}

func (d definition) build() (twicpics.URL, error) {
	c := twicpics.NewChain()
	switch {
	case d.Format != "" && d.Quality != nil:
		c = c.Format(d.Format, d.Quality)
	case d.Format != "":
		c = c.Format(d.Format)
	case d.Quality != nil:
		return twicpics.URL{}, errors.New(errors.ErrCodeInvalidPreset, "quality set without format")
	}
	if d.Auth != "" {
		c = c.Auth(d.Auth)
	}
	if err := c.Err(); err != nil {
		return twicpics.URL{}, err
	}
	for i, step := range d.Steps {
		op, args, err := stepArgs(step)
		if err != nil {
			return twicpics.URL{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "step %d", i+1)
		}
		c = c.Apply(op, args...)
		if c.Err() != nil {
			return twicpics.URL{}, errors.Wrap(errors.ErrCodeInvalidPreset, c.Err(), "step %d", i+1)
		}
	}
	return c.Result()
}

// stepArgs splits a step table into the operation name and its arguments:
// the "args" array as positional values, or the remaining keys as a
// keyed argument.
func stepArgs(step map[string]any) (string, []any, error) {
	op, ok := step["op"].(string)
	if !ok || op == "" {
		return "", nil, errors.New(errors.ErrCodeInvalidPreset, "missing op")
	}

	if raw, ok := step["args"]; ok {
		if len(step) > 2 {
			return "", nil, errors.New(errors.ErrCodeInvalidPreset, "%s: args cannot be mixed with named parameters", op)
		}
		args, ok := raw.([]any)
		if !ok {
			return "", nil, errors.New(errors.ErrCodeInvalidPreset, "%s: args must be an array", op)
		}
		return op, args, nil
	}

	if len(step) == 1 {
		return op, nil, nil
	}
	params := make(twicpics.Params, len(step)-1)
	for key, v := range step {
		if key != "op" {
			params[key] = v
		}
	}
	return op, []any{params}, nil
}
