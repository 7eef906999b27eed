package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/featwalk/featwalk/pkg/naming"
	"github.com/featwalk/featwalk/pkg/walker"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Walk.WithSelectors || !cfg.Walk.OnlyImplemented {
		t.Errorf("expected selectors and only-implemented on by default, got %+v", cfg.Walk)
	}
	if cfg.Walk.Policy != "single-combination" {
		t.Errorf("default policy = %q", cfg.Walk.Policy)
	}
	if cfg.Walk.MaxCombinations != walker.DefaultMaxCombinations {
		t.Errorf("default max combinations = %d", cfg.Walk.MaxCombinations)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Walk.Policy != "single-combination" || cfg.Drift.Normalizer != "default" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Groups) != 0 {
		t.Errorf("groups = %v", cfg.Groups)
	}
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(LoadOptions{ConfigFile: "testdata/featwalk.yaml"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Walk.Policy != "single-selector" {
		t.Errorf("policy = %q", cfg.Walk.Policy)
	}
	if !cfg.Walk.WithSelectors {
		t.Error("with_selectors default lost")
	}
	if cfg.Walk.MaxCombinations != 1024 {
		t.Errorf("max_combinations = %d", cfg.Walk.MaxCombinations)
	}
	if len(cfg.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(cfg.Groups))
	}

	cam, ok := cfg.Group("cam")
	if !ok {
		t.Fatal("group cam missing")
	}
	if want := filepath.Join("testdata", "maps", "camera.yaml"); cam.NodeMap != want {
		t.Errorf("node_map = %q, want %q", cam.NodeMap, want)
	}
	if want := filepath.Join("testdata", "catalogs", "cam.txt"); cam.Published != want {
		t.Errorf("published = %q, want %q", cam.Published, want)
	}

	stream, _ := cfg.Group("stream")
	if stream.NodeMap != "/abs/stream.cbor" || stream.Root != "StreamRoot" {
		t.Errorf("stream = %+v", stream)
	}

	wc := cfg.WalkerConfig("cam")
	if wc.Policy != walker.DirectOnSingleSelector {
		t.Errorf("walker policy = %v", wc.Policy)
	}
	if wc.Group != "cam" || wc.MaxCombinations != 1024 {
		t.Errorf("walker config = %+v", wc)
	}
	if !wc.Filter.HideInvisible || wc.Filter.MaxIntSelectorValue != walker.ProxyMaxIntSelectorValue {
		t.Errorf("proxy filter not applied: %+v", wc.Filter)
	}
	proxy := walker.ProxyFilter()
	if got := len(wc.Filter.ExcludeFeatures); got != len(proxy.ExcludeFeatures)+1 {
		t.Errorf("exclude_features = %d entries", got)
	}

	if got := cfg.Normalizer()(naming.Identifier("cam::Bar_1")); got != "cam::bar-1" {
		t.Errorf("normalizer = %q", got)
	}
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(LoadOptions{ConfigFile: "testdata/featwalk.toml"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Walk.OnlyImplemented {
		t.Error("only_implemented should be false")
	}
	f := cfg.WalkerFilter()
	if !f.HideInvisible || f.MaxIntSelectorValue != 8 || len(f.ExcludeFeatures) != 0 {
		t.Errorf("filter = %+v", f)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FEATWALK_FILTER_ONLY_FEATURE", "LineMode")
	t.Setenv("FEATWALK_WALK_POLICY", "never")

	cfg, err := Load(LoadOptions{ConfigFile: "testdata/featwalk.yaml"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Filter.OnlyFeature != "LineMode" {
		t.Errorf("only_feature = %q", cfg.Filter.OnlyFeature)
	}
	if cfg.WalkerConfig("cam").Policy != walker.DirectNever {
		t.Errorf("policy = %q", cfg.Walk.Policy)
	}
}

func TestLoadFlagOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("no-selectors", false, "")
	fs.String("policy", "", "")
	if err := fs.Parse([]string{"--policy=never"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoadOptions{Flags: map[string]*pflag.Flag{
		"walk.policy": fs.Lookup("policy"),
		"trace.file":  nil,
	}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Walk.Policy != "never" {
		t.Errorf("policy = %q", cfg.Walk.Policy)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(LoadOptions{ConfigFile: "testdata/nope.yaml"}); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"policy", func(c *Config) { c.Walk.Policy = "sometimes" }},
		{"max combinations", func(c *Config) { c.Walk.MaxCombinations = -1 }},
		{"max int", func(c *Config) { c.Filter.MaxIntSelectorValue = -1 }},
		{"normalizer", func(c *Config) { c.Drift.Normalizer = "soundex" }},
		{"unnamed group", func(c *Config) { c.Groups = []GroupConfig{{NodeMap: "a.yaml"}} }},
		{"group separator", func(c *Config) { c.Groups = []GroupConfig{{Name: "a::b", NodeMap: "a.yaml"}} }},
		{"no node map", func(c *Config) { c.Groups = []GroupConfig{{Name: "cam"}} }},
		{"duplicate group", func(c *Config) {
			c.Groups = []GroupConfig{{Name: "cam", NodeMap: "a.yaml"}, {Name: "cam", NodeMap: "b.yaml"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
