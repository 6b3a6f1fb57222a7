package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/larrywang1/ai-newscast/domain"
)

type personaFile struct {
	Hosts []domain.Persona `yaml:"hosts"`
}

// LoadPersonas reads the two-host persona file. YAML and JSON documents both
// parse. Exactly two complete hosts with distinct names are required.
func LoadPersonas(path string) (domain.Persona, domain.Persona, error) {
	var zero domain.Persona

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, zero, fmt.Errorf("failed to read persona file %s: %w", path, err)
	}

	var parsed personaFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return zero, zero, fmt.Errorf("failed to parse persona file %s: %w", path, err)
	}

	if len(parsed.Hosts) != 2 {
		return zero, zero, fmt.Errorf("persona file must declare exactly 2 hosts, found %d", len(parsed.Hosts))
	}

	for i, host := range parsed.Hosts {
		if host.Name == "" {
			return zero, zero, fmt.Errorf("host %d is missing a name", i)
		}
		if host.Personality == "" {
			return zero, zero, fmt.Errorf("host %q is missing a personality", host.Name)
		}
		if host.Voice == "" {
			return zero, zero, fmt.Errorf("host %q is missing a voice", host.Name)
		}
	}

	if parsed.Hosts[0].Name == parsed.Hosts[1].Name {
		return zero, zero, fmt.Errorf("hosts must have distinct names, both are %q", parsed.Hosts[0].Name)
	}

	return parsed.Hosts[0], parsed.Hosts[1], nil
}
