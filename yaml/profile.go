// Package yaml loads filter profiles from YAML or JSON files.
package yaml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/hnlist"
	"gopkg.in/yaml.v3"
)

// profileFile is the structure of a profiles file.
type profileFile struct {
	Profiles []*hnlist.FilterProfile `json:"profiles" yaml:"profiles"`
}

// LoadProfile reads the profiles file at path and returns the profile called
// name, or the first profile when name is empty. Empty profile fields are
// filled with the built-in defaults.
//
// Returns ENOTFOUND if no profile has the given name.
func LoadProfile(path, name string) (*hnlist.FilterProfile, error) {
	profiles, err := LoadProfiles(path)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if name == "" || p.Name == name {
			return p, nil
		}
	}
	return nil, hnlist.Errorf(hnlist.ENOTFOUND, "profile %q not found in %s", name, path)
}

// LoadProfiles reads every profile in the file at path. The format is
// chosen by extension: .yaml, .yml, or .json; other extensions try each.
func LoadProfiles(path string) ([]*hnlist.FilterProfile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, hnlist.Errorf(hnlist.EINVALID, "profile file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	file, err := parseProfiles(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(file.Profiles) == 0 {
		return nil, hnlist.Errorf(hnlist.EINVALID, "profile file %s defines no profiles", path)
	}

	for i, p := range file.Profiles {
		if p == nil {
			return nil, hnlist.Errorf(hnlist.EINVALID, "profile %d is empty", i)
		}
		p.ApplyDefaults()
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return file.Profiles, nil
}

func parseProfiles(data []byte, ext string) (profileFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		ext string
		fn  func([]byte, any) error
	}{
		{ext: ".yaml", fn: yaml.Unmarshal},
		{ext: ".yml", fn: yaml.Unmarshal},
		{ext: ".json", fn: json.Unmarshal},
	}

	known := false
	for _, d := range decoders {
		if ext == d.ext {
			known = true
		}
	}

	for _, d := range decoders {
		if known && ext != d.ext {
			continue
		}
		var file profileFile
		if err := d.fn(data, &file); err == nil {
			return file, nil
		}
	}
	return profileFile{}, hnlist.Errorf(hnlist.EINVALID, "profile file format not recognized (expected YAML or JSON)")
}
