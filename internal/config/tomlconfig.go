package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/loctok/loctok/internal/tokenizer"
)

// FileName is the optional project config file read from the scan root.
const FileName = ".loctok.toml"

// Defaults holds the built-in values applied before any .loctok.toml or CLI
// flag is considered.
type Defaults struct {
	Format   string   `koanf:"format"`
	Encoding string   `koanf:"encoding"`
	Ext      []string `koanf:"ext"`
	Hidden   bool     `koanf:"hidden"`
}

// DefaultValues returns the built-in defaults: table format, the
// tokenizer package's default encoding, no extension filter, hidden files
// excluded.
func DefaultValues() Defaults {
	return Defaults{
		Format:   "table",
		Encoding: tokenizer.Default,
		Hidden:   false,
	}
}

// fileTable mirrors the [defaults] table of a .loctok.toml file.
type fileTable struct {
	Defaults Defaults `toml:"defaults"`
}

// Resolve layers a project's optional .loctok.toml [defaults] table over the
// built-in defaults using koanf, then returns the merged result. CLI flags
// always take precedence over both layers; callers apply that precedence
// themselves by only consulting a Defaults field when its corresponding
// flag was not explicitly set (cmd.Flags().Changed).
func Resolve(root string) (Defaults, error) {
	k := koanf.New(".")

	def := DefaultValues()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":   def.Format,
		"encoding": def.Encoding,
		"hidden":   def.Hidden,
	}, "."), nil); err != nil {
		return def, err
	}

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var merged Defaults
			if decodeErr := k.Unmarshal("", &merged); decodeErr != nil {
				return def, decodeErr
			}
			return merged, nil
		}
		return def, err
	}

	var ft fileTable
	if _, err := toml.Decode(string(data), &ft); err != nil {
		return def, err
	}

	overrides := map[string]interface{}{}
	if ft.Defaults.Format != "" {
		overrides["format"] = ft.Defaults.Format
	}
	if ft.Defaults.Encoding != "" {
		overrides["encoding"] = ft.Defaults.Encoding
	}
	if ft.Defaults.Ext != nil {
		overrides["ext"] = ft.Defaults.Ext
	}
	overrides["hidden"] = ft.Defaults.Hidden

	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return def, err
	}

	var merged Defaults
	if err := k.Unmarshal("", &merged); err != nil {
		return def, err
	}
	return merged, nil
}
