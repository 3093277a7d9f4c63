package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// yamlParser implements koanf.Parser on top of gopkg.in/yaml.v3.
type yamlParser struct{}

// YAMLParser returns a koanf parser for YAML config files.
func YAMLParser() koanf.Parser {
	return &yamlParser{}
}

// Unmarshal parses YAML bytes into a flat-keyable map.
func (p *yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return out, nil
}

// Marshal renders a config map as YAML.
func (p *yamlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
