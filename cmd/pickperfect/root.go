package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pickperfect/internal/config"
	"pickperfect/internal/db"
	"pickperfect/internal/logging"
)

const appSlug = "pickperfect"

// cli carries state shared by every command of one invocation.
type cli struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New(), logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:          appSlug,
		Short:        "Pick, inspect and sample colors",
		Long:         `Pick, inspect and sample colors from HTML pages and screenshots.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default $HOME/.pickperfect.yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("data-dir", "", "directory holding the history database")
	_ = c.v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = c.v.BindPFlag("data-dir", flags.Lookup("data-dir"))

	rootCmd.AddCommand(
		newFormatCmd(c),
		newContrastCmd(c),
		newNearestCmd(c),
		newPaletteCmd(c),
		newPickCmd(c),
		newDominantCmd(c),
		newHistoryCmd(c),
	)

	return rootCmd
}

func (c *cli) init(cmd *cobra.Command) error {
	_ = godotenv.Load()

	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			c.v.AddConfigPath(home)
		}
		c.v.SetConfigName("." + appSlug)
		c.v.SetConfigType("yaml")
	}

	c.v.SetEnvPrefix(strings.ToUpper(appSlug))
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	c.v.AutomaticEnv()

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || c.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level, err := logging.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		return err
	}
	c.logger = logging.New(cmd.ErrOrStderr(), level)
	c.logger.Debug("configured", "config", c.v.ConfigFileUsed())
	return nil
}

// openDB opens the history database in --data-dir, PICKPERFECT_DATA_DIR or
// the per-user data directory, in that order.
func (c *cli) openDB(ctx context.Context) (*sql.DB, error) {
	var (
		paths config.Paths
		err   error
	)
	if dir := strings.TrimSpace(c.v.GetString("data-dir")); dir != "" {
		expanded, expandErr := homedir.Expand(dir)
		if expandErr != nil {
			return nil, fmt.Errorf("expand data dir: %w", expandErr)
		}
		paths, err = config.PathsIn(filepath.Clean(expanded))
	} else {
		paths, err = config.ResolvePaths(appSlug)
	}
	if err != nil {
		return nil, err
	}

	c.logger.Debug("opening database", "path", paths.DBPath)
	return db.Bootstrap(ctx, paths.DBPath)
}
