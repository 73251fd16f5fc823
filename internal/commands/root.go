package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cfdilens/cfdilens/internal/buildinfo"
	"github.com/cfdilens/cfdilens/internal/config"
	"github.com/cfdilens/cfdilens/internal/ingest"
	"github.com/cfdilens/cfdilens/internal/logger"
	"github.com/cfdilens/cfdilens/internal/model"
)

type globalFlags struct {
	root       string
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "cfdilens",
		Short:   "Analytics over CFDI invoice exports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.root, "root", "", "project root (default: working directory)")
	pf.StringVar(&g.configPath, "config", "", "config file (default: <root>/"+config.FileName+")")
	pf.StringVar(&g.logLevel, "log-level", "", "log level override: debug, info, warn, error")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newOptionsCommand(g))
	rootCmd.AddCommand(newReportCommand(g))
	rootCmd.AddCommand(newExportCommand(g))

	return rootCmd
}

// session is the per-invocation state shared by the data commands.
type session struct {
	root   string
	cfg    *config.Config
	ctx    context.Context
	log    zerolog.Logger
	loader *ingest.Loader
}

func (g *globalFlags) open(cmd *cobra.Command) (*session, error) {
	root := g.root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := g.configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.FileName)
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}

	log, err := logger.New(cmd.ErrOrStderr(), logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return nil, err
	}
	log = logger.WithRunID(log).With().Str("command", cmd.Name()).Logger()

	path, err := ingest.ResolvePath(root, cfg.Source.DataDir, cfg.Source.FileName)
	if err != nil {
		return nil, err
	}

	return &session{
		root:   root,
		cfg:    cfg,
		ctx:    logger.WithContext(cmd.Context(), log),
		log:    log,
		loader: ingest.NewLoader(path, nil, nil),
	}, nil
}

func (s *session) load() (*model.Dataset, error) {
	return s.loader.Load(s.ctx)
}
