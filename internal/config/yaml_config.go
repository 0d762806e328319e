package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smartgreeting/internal/greeting"
)

// GreetingFile represents the structure of the greeting table YAML file.
type GreetingFile struct {
	Greetings []GreetingRuleConfig `yaml:"greetings"`
}

// GreetingRuleConfig defines one bucket of the greeting table.
type GreetingRuleConfig struct {
	Until   int    `yaml:"until"`   // Exclusive upper hour bound, 1-24
	Message string `yaml:"message"` // Text shown to the user; the part before "!" is reused in replies
	Tag     string `yaml:"tag"`     // CSS class applied to the page
}

// LoadGreetingTable loads the greeting table from path. A missing file yields
// the built-in table. The returned table is validated and immutable.
func LoadGreetingTable(path string) (*greeting.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return greeting.DefaultTable(), nil
		}
		return nil, err
	}

	return ParseGreetingTable(data)
}

// ParseGreetingTable decodes and validates a YAML greeting table.
func ParseGreetingTable(data []byte) (*greeting.Table, error) {
	var file GreetingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse greeting config: %w", err)
	}

	if len(file.Greetings) == 0 {
		return greeting.DefaultTable(), nil
	}

	rules := make([]greeting.Rule, 0, len(file.Greetings))
	for _, g := range file.Greetings {
		rules = append(rules, greeting.Rule{
			UpperBound: g.Until,
			Message:    g.Message,
			Tag:        g.Tag,
		})
	}

	return greeting.NewTable(rules)
}
