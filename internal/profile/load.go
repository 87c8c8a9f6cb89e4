package profile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a profile description from a .toml, .yaml or .yml file.
// A profile without a name takes the file's base name.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var spec Spec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &spec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("profile %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}

	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return Build(spec)
}

// WriteFile saves the profile in the format implied by the extension.
func WriteFile(path string, p *Profile) error {
	spec := p.Spec()

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(spec); err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		data = buf.Bytes()
	case ".yaml", ".yml":
		out, err := yaml.Marshal(spec)
		if err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		data = out
	default:
		return fmt.Errorf("profile %s: unsupported extension %q", path, ext)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
