package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	slogzap "github.com/samber/slog-zap/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"object_explorer/internal/infrastructure/configloader"
	"object_explorer/internal/pkg/logger"
)

const defaultConfigPath = "config/config.yml"

var (
	configPath string
	envFile    string
	verbose    bool

	cfg       *configloader.Config
	zapLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Owned-object explorer for Sui networks",
	Long: `explorer fetches the objects owned by an address or object, groups
coins by type with exact balance totals and pages through the rest.

It runs as an HTTP API (serve) or answers single queries from the shell
(owned, modules, staking). Data comes from a live full node or from a
static snapshot, depending on source.mode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}

		var err error
		if _, statErr := os.Stat(configPath); statErr == nil {
			cfg, err = configloader.Load(configPath)
		} else if configPath == defaultConfigPath {
			cfg, err = configloader.Parse(nil)
		} else {
			err = statErr
		}
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if verbose {
			cfg.Logging.Level = "debug"
		}
		zapLogger, err = newZapLogger(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		installSlog(zapLogger, cfg.Logging.Level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLogger != nil {
			_ = zapLogger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, ownedCmd, modulesCmd, stakingCmd)
}

// newZapLogger builds the process logger. Debug level selects the
// development encoder.
func newZapLogger(level string) (*zap.Logger, error) {
	slogLevel, _ := logger.ParseLevel(level)

	zcfg := zap.NewProductionConfig()
	if slogLevel == slog.LevelDebug {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel(slogLevel))
	return zcfg.Build()
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// installSlog routes the package logger through zap.
func installSlog(z *zap.Logger, level string) {
	slogLevel, ok := logger.ParseLevel(level)
	handler := slogzap.Option{Level: slogLevel, Logger: z}.NewZapHandler()
	logger.SetDefault(slog.New(handler))
	if !ok {
		logger.Warn("Invalid log level in config, defaulting to INFO", "level", level)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
