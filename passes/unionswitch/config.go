// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionswitch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

func init() {
	Analyzer.Flags.Var(&directives, "directive", "comma-separated list of additional comment directives that declare union variants")
	Analyzer.Flags.BoolVar(&generated, "generated", false, "also check switches in generated files")
	Analyzer.Flags.StringVar(&configFile, "config", "", "YAML file of settings (directives, generated, exclude)")
}

var (
	directives = directiveList{defaultDirective}
	generated  bool
	configFile string
)

// directiveList is an ordered set of directive names.
//
// The -directive flag adds to this set.
type directiveList []string

func (l *directiveList) String() string {
	return strings.Join(*l, ",")
}

func (l *directiveList) Set(flag string) error {
	for _, name := range strings.Split(flag, ",") {
		if err := validDirective(name); err != nil {
			return err
		}
		if !slices.Contains(*l, name) {
			*l = append(*l, name)
		}
	}
	return nil
}

func validDirective(name string) error {
	switch {
	case name == "":
		return errors.New("empty directive")
	case strings.HasPrefix(name, "//"):
		return fmt.Errorf("directive %q must not start with //", name)
	case strings.ContainsAny(name, " \t\n"):
		return fmt.Errorf("directive %q contains white space", name)
	}
	return nil
}

// Config holds the settings of the analyzer.
type Config struct {
	// Directives are the comment directives that declare a union.
	Directives []string `yaml:"directives"`

	// Generated enables reports in generated files.
	Generated bool `yaml:"generated"`

	// Exclude lists package path patterns whose switches are not
	// reported. A pattern is either a path.Match pattern or a path
	// followed by "/...", which matches the path and all below it.
	Exclude []string `yaml:"exclude"`
}

// settings returns the flags merged with the config file, if any.
func settings() (*Config, error) {
	cfg := &Config{
		Directives: slices.Clone(directives),
		Generated:  generated,
	}
	if configFile == "" {
		return cfg, nil
	}
	file, err := loadConfig(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.merge(file), nil
}

// merge returns the union of c and other: directives of both, in order,
// generated if either enables it, and the exclusions of both.
func (c *Config) merge(other *Config) *Config {
	merged := &Config{
		Directives: slices.Clone(c.Directives),
		Generated:  c.Generated || other.Generated,
		Exclude:    append(slices.Clone(c.Exclude), other.Exclude...),
	}
	for _, name := range other.Directives {
		if !slices.Contains(merged.Directives, name) {
			merged.Directives = append(merged.Directives, name)
		}
	}
	return merged
}

// excluded reports whether switches in the package with the given path
// are not reported.
func (c *Config) excluded(pkgPath string) bool {
	for _, pattern := range c.Exclude {
		if prefix, ok := strings.CutSuffix(pattern, "/..."); ok {
			if pkgPath == prefix || strings.HasPrefix(pkgPath, prefix+"/") {
				return true
			}
			continue
		}
		if ok, _ := path.Match(pattern, pkgPath); ok {
			return true
		}
	}
	return false
}

// Config files are read once per name, as the analyzer runs once per
// package, possibly concurrently.
var configCache struct {
	sync.Mutex
	m map[string]*Config
}

func loadConfig(filename string) (*Config, error) {
	configCache.Lock()
	defer configCache.Unlock()
	if cfg, ok := configCache.m[filename]; ok {
		return cfg, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading unionswitch config: %w", err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parsing unionswitch config %s: %w", filename, err)
	}
	if configCache.m == nil {
		configCache.m = make(map[string]*Config)
	}
	configCache.m[filename] = cfg
	return cfg, nil
}

// parseConfig decodes and validates a YAML config document.
// Unknown keys are errors. An empty document is a zero Config.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	for _, name := range cfg.Directives {
		if err := validDirective(name); err != nil {
			return nil, err
		}
	}
	for _, pattern := range cfg.Exclude {
		if _, err := path.Match(strings.TrimSuffix(pattern, "/..."), ""); err != nil {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
		}
	}
	return &cfg, nil
}
