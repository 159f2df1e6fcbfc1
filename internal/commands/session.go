package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"mock-generator/internal/analyze"
	"mock-generator/internal/config"
	"mock-generator/internal/gen"
	"mock-generator/internal/model"
	"mock-generator/internal/report"
)

// session is the resolved state shared by the commands of one invocation.
type session struct {
	cfg    *config.File
	opts   *rootOptions
	format report.Format
	logger *slog.Logger
	cmd    *cobra.Command
}

func newSession(cmd *cobra.Command, opts *rootOptions, getenv func(string) string) (*session, error) {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(opts.configPath, getenv, logger)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("strict") {
		cfg.Strict = opts.strict
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
		logger.Info("using clock seed", slog.Uint64("seed", cfg.Seed))
	}

	if diags := config.Validate(cfg); diags.HasErrors() {
		return nil, fmt.Errorf("invalid config: %w", diags.Error())
	}

	return &session{cfg: cfg, opts: opts, format: format, logger: logger, cmd: cmd}, nil
}

// loadConfig reads the named config, else the one named by the environment,
// else ./mockgen.yaml when present, else the defaults.
func loadConfig(path string, getenv func(string) string, logger *slog.Logger) (*config.File, error) {
	if path == "" && getenv != nil {
		path = getenv(EnvConfig)
	}

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("checking %s: %w", DefaultConfigFile, err)
			}

			return config.Default(), nil
		}

		path = DefaultConfigFile
	}

	logger.Debug("loading config", slog.String("path", path))

	return config.LoadFile(path)
}

func (s *session) generator() *gen.Generator {
	return gen.NewGenerator(gen.Config{
		Filename:    s.cfg.Output,
		Seed:        s.cfg.Seed,
		Strict:      s.cfg.Strict,
		MaxArrayLen: s.cfg.MaxArrayLen,
		MaxDepth:    s.cfg.MaxDepth,
		Logger:      s.logger,
	})
}

// analyze loads the packages named by args, else by the config, else ./...
// and applies the per-type settings of the config.
func (s *session) analyze(ctx context.Context, args []string) ([]*analyze.PackageInfo, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = s.cfg.Packages
	}

	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	analyzer := analyze.NewAnalyzer(s.logger, "")
	analyzer.Include(s.cfg.Includes()...)
	analyzer.Ignore(s.cfg.Output)

	decls, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	if err := s.cfg.Apply(decls); err != nil {
		return nil, fmt.Errorf("applying config: %w", err)
	}

	s.dump(decls)

	return analyzer.Packages(), nil
}

func (s *session) dump(decls []*model.Declaration) {
	if !s.opts.dump {
		return
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	cfg.Fdump(s.cmd.ErrOrStderr(), decls)
}

// report writes the report and turns error diagnostics into ErrDiagnostics.
func (s *session) report(r *report.Report, values bool) error {
	opts := report.Options{Verbose: s.opts.verbose, Values: values}
	if err := report.Write(s.cmd.OutOrStdout(), r, s.format, opts); err != nil {
		return err
	}

	if r.HasErrors() {
		return ErrDiagnostics
	}

	return nil
}
