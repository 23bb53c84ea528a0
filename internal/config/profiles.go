package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// CapabilityProfile describes one server flavor in the profiles file.
//
//	profiles:
//	  - name: baikal
//	    match: ["baikal", "/dav.php"]
//	    accessControl: true
//	    multipleAddressBooks: true
//	    readWrite: contacts
//	    readOnly: shared-contacts
//	    default: contacts
type CapabilityProfile struct {
	Name                 string   `yaml:"name"`
	Match                []string `yaml:"match"`
	Pattern              string   `yaml:"pattern"`
	AccessControl        bool     `yaml:"accessControl"`
	MultipleAddressBooks bool     `yaml:"multipleAddressBooks"`
	ReadWrite            string   `yaml:"readWrite"`
	ReadOnly             string   `yaml:"readOnly"`
	Default              string   `yaml:"default"`
}

type profilesFile struct {
	Profiles []CapabilityProfile `yaml:"profiles"`
}

// LoadCapabilityProfiles reads the YAML profiles file at path. An empty
// path yields no profiles.
func LoadCapabilityProfiles(path string) ([]CapabilityProfile, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading capability profiles file: %w", err)
	}

	return ParseCapabilityProfiles(data)
}

// ParseCapabilityProfiles decodes and checks a profiles document.
func ParseCapabilityProfiles(data []byte) ([]CapabilityProfile, error) {
	var f profilesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfiles, err)
	}

	seen := make(map[string]struct{}, len(f.Profiles))
	for i, p := range f.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: profile #%d has no name", ErrInvalidProfiles, i+1)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate profile %q", ErrInvalidProfiles, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Pattern != "" {
			if _, err := regexp.Compile(p.Pattern); err != nil {
				return nil, fmt.Errorf("%w: profile %q: %w", ErrInvalidProfiles, p.Name, err)
			}
		}
		if p.AccessControl && p.ReadOnly == "" {
			return nil, fmt.Errorf("%w: profile %q claims access control without a read-only address book", ErrInvalidProfiles, p.Name)
		}
	}

	return f.Profiles, nil
}
