package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mm-notes/mm/internal/platform"
	"github.com/mm-notes/mm/pkg/config"
	"github.com/mm-notes/mm/pkg/core"
	"github.com/mm-notes/mm/pkg/repo"
)

var (
	verbose     bool
	repoName    string
	configFile  string
	lockTimeout time.Duration

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mm",
	Short: "Notes on your computer, versioned with Git",
	Long: `mm stores your notes as files inside a Git working tree,
so every change can be reviewed and rolled back.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(slog.LevelInfo))

		var err error
		cfg, err = loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}

		level := slog.LevelInfo
		if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			slog.Warn("unknown log level, using info", "level", cfg.Log.Level)
			level = slog.LevelInfo
		}
		slog.SetDefault(newLogger(level))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&repoName, "repo", "r", "", "Repository name (defaults to the configured one)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (defaults to <data-dir>/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&lockTimeout, "lock-timeout", 5*time.Second, "How long to wait for another mm process to release the repository")
}

func newLogger(level slog.Level) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		defaults, err := config.Default()
		if err != nil {
			return nil, err
		}
		p, ok := config.DefaultPath(platform.Resolver(defaults))
		if !ok {
			return defaults, nil
		}
		path = p
	}
	return config.Load(path)
}

func platformOptions(cmd *cobra.Command) []platform.Option {
	opts := []platform.Option{platform.WithLogger(slog.Default())}
	if cmd.Flags().Changed("repo") {
		opts = append(opts, platform.WithRepository(repoName))
	} else if wd, err := os.Getwd(); err == nil {
		opts = append(opts, platform.WithWorkingDir(wd))
	}
	return opts
}

func openRepository(cmd *cobra.Command) *repo.Repository {
	r, err := platform.Open(cfg, platformOptions(cmd)...)
	if err != nil {
		fatal("Failed to open repository", err)
	}
	return r
}

// withLock runs fn while holding the repository lock. It gives up after
// lockTimeout or on interrupt.
func withLock(r *repo.Repository, fn func() error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	unlock, err := r.Lock(ctx)
	if err != nil {
		return core.GitError(err, "repository is locked (remove .git/mm.lock if no mm process is running)")
	}
	defer unlock()
	return fn()
}
