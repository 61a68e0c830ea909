package ruleset

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a ruleset from YAML bytes. Unknown keys are rejected so
// that misspelled table names fail loudly instead of silently parsing with
// default rules.
func FromYAML(data []byte) (*Ruleset, error) {
	rs := &Ruleset{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(rs); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// ToYAML serializes the ruleset to YAML.
func (r *Ruleset) ToYAML() ([]byte, error) {
	if r == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(r); err != nil {
		return nil, fmt.Errorf("encode ruleset: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// Load reads and parses a ruleset file.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	rs, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return rs, nil
}
