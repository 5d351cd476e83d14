package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ServerSpec describes how the chat client launches one MCP tool server
// over stdio.
type ServerSpec struct {
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env"`
}

// serversFile is the on-disk shape of the chat client config, e.g.:
//
//	servers:
//	  gym:
//	    command: ./gymcoach
type serversFile struct {
	Servers map[string]ServerSpec `yaml:"servers"`
}

// LoadServers reads the chat client's MCP server config from a YAML file.
// Server names are the map keys; at least one entry is required.
func LoadServers(path string) (map[string]ServerSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read server config %s: %w", path, err)
	}

	var file serversFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse server config %s: %w", path, err)
	}
	if len(file.Servers) == 0 {
		return nil, fmt.Errorf("server config %s: no servers defined", path)
	}
	for name, spec := range file.Servers {
		if spec.Command == "" {
			return nil, fmt.Errorf("server config %s: server %q has no command", path, name)
		}
	}
	return file.Servers, nil
}

// PickServer returns the spec for name, or the only configured server when
// name is empty. Ambiguity (empty name with several servers) is an error.
func PickServer(servers map[string]ServerSpec, name string) (ServerSpec, error) {
	if name != "" {
		spec, ok := servers[name]
		if !ok {
			return ServerSpec{}, fmt.Errorf("server %q not found in config", name)
		}
		return spec, nil
	}
	if len(servers) == 1 {
		for _, spec := range servers {
			return spec, nil
		}
	}
	names := make([]string, 0, len(servers))
	for n := range servers {
		names = append(names, n)
	}
	sort.Strings(names)
	return ServerSpec{}, fmt.Errorf("multiple servers configured (%v), pick one with --server", names)
}
