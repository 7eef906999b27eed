// Package commands implements the featwalk CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/featwalk/featwalk/internal/audit"
	"github.com/featwalk/featwalk/internal/config"
	"github.com/featwalk/featwalk/pkg/log"
	"github.com/featwalk/featwalk/pkg/metrics"
)

// ErrDrift is returned by the drift command when a device feature is
// missing from its published catalog.
var ErrDrift = errors.New("feature drift detected")

// configFlags maps configuration keys to the root's persistent flags.
var configFlags = map[string]string{
	"walk.with_selectors":     "with-selectors",
	"walk.only_implemented":   "only-implemented",
	"walk.policy":             "policy",
	"walk.max_combinations":   "max-combinations",
	"filter.proxy":            "proxy",
	"filter.only_feature":     "only-feature",
	"filter.hide_invisible":   "hide-invisible",
	"filter.exclude_features": "exclude",
	"drift.normalizer":        "normalizer",
	"trace.file":              "trace-file",
	"metrics.textfile":        "metrics-textfile",
}

type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	verbose    bool

	// Ad-hoc group replacing the configured ones.
	mapFile   string
	group     string
	root      string
	published string

	logger *charmlog.Logger
}

// NewRootCommand builds the featwalk command tree writing to stdout and
// stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "featwalk",
		Short:         "featwalk enumerates camera features and checks catalog drift",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(a.stderr, a.verbose)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "configuration file (YAML or TOML)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	pf.StringVar(&a.mapFile, "map", "", "node map file for a single ad-hoc group")
	pf.StringVar(&a.group, "group", "dev", "name of the ad-hoc group")
	pf.StringVar(&a.root, "root", "", "root category of the ad-hoc group")
	pf.StringVar(&a.published, "published", "", "published catalog of the ad-hoc group")

	d := config.DefaultConfig()
	pf.Bool("with-selectors", d.Walk.WithSelectors, "expand features over their selector values")
	pf.Bool("only-implemented", d.Walk.OnlyImplemented, "skip nodes that are not implemented")
	pf.String("policy", d.Walk.Policy, "direct occurrence policy (single-combination, single-selector, never)")
	pf.Int("max-combinations", d.Walk.MaxCombinations, "maximum selector combinations per feature")
	pf.Bool("proxy", false, "apply the proxy layer's exclusions")
	pf.String("only-feature", "", "emit only this feature")
	pf.Bool("hide-invisible", false, "skip invisible features")
	pf.StringSlice("exclude", nil, "additional features to exclude")
	pf.String("normalizer", d.Drift.Normalizer, "identifier normalizer for drift (default, identity, lower, combined with +)")
	pf.String("trace-file", "", "write the walk trace to this file")
	pf.String("metrics-textfile", "", "write Prometheus metrics to this file")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newDriftCmd(a))
	root.AddCommand(newCaptureCmd(a))
	root.AddCommand(newTraceCmd(a))

	return root
}

// loadConfig reads the configuration with the flags the user set applied on
// top. An ad-hoc --map group replaces the configured groups.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := make(map[string]*pflag.Flag)
	for key, name := range configFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			flags[key] = f
		}
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile, Flags: flags})
	if err != nil {
		return nil, err
	}

	if a.mapFile != "" {
		cfg.Groups = []config.GroupConfig{{
			Name:      a.group,
			NodeMap:   a.mapFile,
			Root:      a.root,
			Published: a.published,
		}}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// session is one configured command run.
type session struct {
	cfg     *config.Config
	auditor *audit.Auditor
	trace   *log.FileLogger
	metrics *metrics.Collector
	logger  *charmlog.Logger
}

func (a *app) open(cmd *cobra.Command) (*session, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := a.logger
	if logger == nil {
		logger = newLogger(a.stderr, a.verbose)
	}
	s := &session{cfg: cfg, logger: logger}

	sinks := []log.Logger{log.NewSlogAdapter(slogger(logger))}
	if cfg.Trace.File != "" {
		s.trace, err = log.NewFileLogger(cfg.Trace.File)
		if err != nil {
			return nil, fmt.Errorf("opening trace file: %w", err)
		}
		sinks = append(sinks, s.trace)
	}
	if cfg.Metrics.Textfile != "" {
		s.metrics = metrics.New()
	}

	s.auditor = audit.New(cfg, audit.Options{
		Logger:  slogger(logger),
		Trace:   log.NewMultiLogger(sinks...),
		Metrics: s.metrics,
	})
	return s, nil
}

// close flushes the trace and writes the metrics textfile.
func (s *session) close() error {
	var errs []error
	if s.trace != nil {
		if err := s.trace.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing trace file: %w", err))
		}
		if n := s.trace.Dropped(); n > 0 {
			s.logger.Warn("trace events dropped", "count", n)
		}
	}
	if s.metrics != nil {
		if err := s.metrics.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
			errs = append(errs, fmt.Errorf("writing metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}
