// Package config loads featwalk configuration from a file, the environment
// and command-line flags using Viper.
//
// Keys are nested with "." in files and "_" in the environment, prefixed with
// FEATWALK_. For example filter.only_feature is FEATWALK_FILTER_ONLY_FEATURE.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/featwalk/featwalk/pkg/naming"
	"github.com/featwalk/featwalk/pkg/walker"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "FEATWALK"

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete featwalk configuration.
type Config struct {
	Walk    WalkConfig    `mapstructure:"walk"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Drift   DriftConfig   `mapstructure:"drift"`
	Trace   TraceConfig   `mapstructure:"trace"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Groups  []GroupConfig `mapstructure:"groups"`
}

// WalkConfig configures the walker.
type WalkConfig struct {
	WithSelectors   bool   `mapstructure:"with_selectors"`
	OnlyImplemented bool   `mapstructure:"only_implemented"`
	Policy          string `mapstructure:"policy"`
	MaxCombinations int    `mapstructure:"max_combinations"`
}

// FilterConfig configures walk exclusions. Proxy starts from the proxy
// layer's exclusion sets; the lists add to them.
type FilterConfig struct {
	Proxy                   bool     `mapstructure:"proxy"`
	ExcludeFeatures         []string `mapstructure:"exclude_features"`
	ExcludeCategories       []string `mapstructure:"exclude_categories"`
	ExcludeCategorySuffixes []string `mapstructure:"exclude_category_suffixes"`
	ExcludeSelectors        []string `mapstructure:"exclude_selectors"`
	HideInvisible           bool     `mapstructure:"hide_invisible"`
	OnlyFeature             string   `mapstructure:"only_feature"`
	MaxIntSelectorValue     int64    `mapstructure:"max_int_selector_value"`
}

// DriftConfig configures the comparison.
type DriftConfig struct {
	// Normalizer names the identifier normalizer (see naming.ByName).
	Normalizer string `mapstructure:"normalizer"`
}

// TraceConfig configures the walk trace.
type TraceConfig struct {
	// File receives the CBOR trace when set.
	File string `mapstructure:"file"`
}

// MetricsConfig configures metrics export.
type MetricsConfig struct {
	// Textfile receives Prometheus metrics when set.
	Textfile string `mapstructure:"textfile"`
}

// GroupConfig describes one feature group: a node map and the catalog
// published for it.
type GroupConfig struct {
	// Name is the identifier prefix, e.g. "cam".
	Name string `mapstructure:"name"`

	// NodeMap is a node map definition (.yaml) or snapshot (.cbor, .fsnap).
	NodeMap string `mapstructure:"node_map"`

	// Root is the category to walk from. Defaults to the node map's root.
	Root string `mapstructure:"root"`

	// Published is the published catalog. Optional for listing.
	Published string `mapstructure:"published"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Walk: WalkConfig{
			WithSelectors:   true,
			OnlyImplemented: true,
			Policy:          walker.DirectOnSingleCombination.String(),
			MaxCombinations: walker.DefaultMaxCombinations,
		},
		Drift: DriftConfig{Normalizer: "default"},
	}
}

// LoadOptions controls Load.
type LoadOptions struct {
	// ConfigFile is a YAML or TOML file. Empty means defaults, environment
	// and flags only.
	ConfigFile string

	// Flags maps config keys to command-line flags that override them when
	// set.
	Flags map[string]*pflag.Flag
}

// Load reads and validates the configuration. Relative paths in the file
// are resolved against the file's directory.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("walk.with_selectors", d.Walk.WithSelectors)
	v.SetDefault("walk.only_implemented", d.Walk.OnlyImplemented)
	v.SetDefault("walk.policy", d.Walk.Policy)
	v.SetDefault("walk.max_combinations", d.Walk.MaxCombinations)
	v.SetDefault("filter.proxy", d.Filter.Proxy)
	v.SetDefault("filter.exclude_features", d.Filter.ExcludeFeatures)
	v.SetDefault("filter.exclude_categories", d.Filter.ExcludeCategories)
	v.SetDefault("filter.exclude_category_suffixes", d.Filter.ExcludeCategorySuffixes)
	v.SetDefault("filter.exclude_selectors", d.Filter.ExcludeSelectors)
	v.SetDefault("filter.hide_invisible", d.Filter.HideInvisible)
	v.SetDefault("filter.only_feature", d.Filter.OnlyFeature)
	v.SetDefault("filter.max_int_selector_value", d.Filter.MaxIntSelectorValue)
	v.SetDefault("drift.normalizer", d.Drift.Normalizer)
	v.SetDefault("trace.file", d.Trace.File)
	v.SetDefault("metrics.textfile", d.Metrics.Textfile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag.Name, err)
		}
	}

	baseDir := ""
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.ConfigFile, err)
		}
		baseDir = filepath.Dir(opts.ConfigFile)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	for i := range cfg.Groups {
		cfg.Groups[i].NodeMap = resolvePath(baseDir, cfg.Groups[i].NodeMap)
		cfg.Groups[i].Published = resolvePath(baseDir, cfg.Groups[i].Published)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolvePath(base, p string) string {
	if p == "" || base == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Validate reports every problem found, each wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if _, err := walker.ParseDirectPolicy(c.Walk.Policy); err != nil {
		invalid("walk.policy: %v", err)
	}
	if c.Walk.MaxCombinations < 0 {
		invalid("walk.max_combinations must not be negative")
	}
	if c.Filter.MaxIntSelectorValue < 0 {
		invalid("filter.max_int_selector_value must not be negative")
	}
	if _, ok := naming.ByName(c.Drift.Normalizer); !ok {
		invalid("drift.normalizer: unknown normalizer %q", c.Drift.Normalizer)
	}

	seen := make(map[string]bool, len(c.Groups))
	for i, g := range c.Groups {
		switch {
		case g.Name == "":
			invalid("groups[%d]: name is required", i)
		case strings.Contains(g.Name, naming.PrefixSeparator):
			invalid("groups[%d]: name %q contains %q", i, g.Name, naming.PrefixSeparator)
		case seen[g.Name]:
			invalid("groups[%d]: duplicate group %q", i, g.Name)
		}
		seen[g.Name] = true
		if g.NodeMap == "" {
			invalid("groups[%d]: node_map is required", i)
		}
	}

	return errors.Join(errs...)
}

// Group returns the named group.
func (c *Config) Group(name string) (GroupConfig, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return GroupConfig{}, false
}

// WalkerFilter builds the walker filter.
func (c *Config) WalkerFilter() walker.Filter {
	var f walker.Filter
	if c.Filter.Proxy {
		f = walker.ProxyFilter()
	}
	f.ExcludeFeatures = append(f.ExcludeFeatures, c.Filter.ExcludeFeatures...)
	f.ExcludeCategories = append(f.ExcludeCategories, c.Filter.ExcludeCategories...)
	f.ExcludeCategorySuffixes = append(f.ExcludeCategorySuffixes, c.Filter.ExcludeCategorySuffixes...)
	f.ExcludeSelectors = append(f.ExcludeSelectors, c.Filter.ExcludeSelectors...)
	f.HideInvisible = f.HideInvisible || c.Filter.HideInvisible
	if c.Filter.OnlyFeature != "" {
		f.OnlyFeature = c.Filter.OnlyFeature
	}
	if c.Filter.MaxIntSelectorValue > 0 {
		f.MaxIntSelectorValue = c.Filter.MaxIntSelectorValue
	}
	return f
}

// WalkerConfig builds the walker configuration for group. Logger and Trace
// are left for the caller.
func (c *Config) WalkerConfig(group string) walker.Config {
	policy, _ := walker.ParseDirectPolicy(c.Walk.Policy)
	return walker.Config{
		WithSelectors:   c.Walk.WithSelectors,
		OnlyImplemented: c.Walk.OnlyImplemented,
		Policy:          policy,
		Filter:          c.WalkerFilter(),
		MaxCombinations: c.Walk.MaxCombinations,
		Group:           group,
	}
}

// Normalizer returns the configured drift normalizer.
func (c *Config) Normalizer() naming.Normalizer {
	n, ok := naming.ByName(c.Drift.Normalizer)
	if !ok {
		return naming.Default()
	}
	return n
}
