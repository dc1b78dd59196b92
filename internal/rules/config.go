package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"logcat/internal/style"
)

// LoadFromFile reads a YAML overlay and applies it to the default configuration.
func LoadFromFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(content)
}

// Parse applies a YAML overlay to the default configuration. Lists replace
// the defaults when present; pinned colors are merged.
func Parse(content []byte) (Config, error) {
	var cf configFile
	if err := yaml.Unmarshal(content, &cf); err != nil {
		return Config{}, fmt.Errorf("parse rules: %w", err)
	}

	cfg := DefaultConfig()
	if cf.Highlight != nil {
		cfg.Highlight = toSet(cf.Highlight)
	}
	if cf.Ignore != nil {
		cfg.Ignored = toSet(cf.Ignore)
	}
	for tag, name := range cf.Pinned {
		color, ok := style.ParseColor(name)
		if !ok {
			return Config{}, fmt.Errorf("pinned tag %q: unknown color %q", tag, name)
		}
		cfg.Pinned[tag] = color
	}
	if err := cf.Columns.apply(&cfg.Columns); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type configFile struct {
	Highlight []string          `yaml:"highlight"`
	Ignore    []string          `yaml:"ignore"`
	Pinned    map[string]string `yaml:"pinned"`
	Columns   columnsFile       `yaml:"columns"`
}

// columnsFile uses pointers so an explicit 0 can hide a column.
type columnsFile struct {
	Time      *int `yaml:"time"`
	User      *int `yaml:"user"`
	ParentPID *int `yaml:"ppid"`
	Process   *int `yaml:"process"`
	Tag       *int `yaml:"tag"`
	Priority  *int `yaml:"priority"`
}

func (cf columnsFile) apply(cols *Columns) error {
	fields := []struct {
		name string
		src  *int
		dst  *int
	}{
		{"time", cf.Time, &cols.Time},
		{"user", cf.User, &cols.User},
		{"ppid", cf.ParentPID, &cols.ParentPID},
		{"process", cf.Process, &cols.Process},
		{"tag", cf.Tag, &cols.Tag},
		{"priority", cf.Priority, &cols.Priority},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		if *f.src < 0 {
			return fmt.Errorf("column %s: negative width %d", f.name, *f.src)
		}
		*f.dst = *f.src
	}
	return nil
}
