package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mailru/errgen/internal/app"
	"github.com/mailru/errgen/internal/pkg/config"
	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute запускает командную строку и возвращает код выхода
func Execute(args []string) int {
	rootCmd := createRootCmd(getAppInfo())
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		message := err.Error()
		if useColor(rootCmd) {
			message = colorize(message)
		}

		fmt.Fprintln(rootCmd.ErrOrStderr(), message)

		return 1
	}

	return 0
}

// useColor подсветка ошибок по флагу --color, в режиме auto только в терминале
func useColor(cmd *cobra.Command) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false
	}

	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return isatty(os.Stderr)
	default:
		return false
	}
}

func createRootCmd(appInfo *ds.AppInfo) *cobra.Command {
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "errgen",
		Short: "Generator of error type families from declarations",
		Long: `errgen reads declaration files (package declaration) from <path>/<declaration>
and writes one package per file into <path>/<destination>.

Every struct type of a declaration file is an error family, every field of it
is a variant. Variants are rendered with the msg tag or as Family::Variant,
variants with exactly one field get a conversion function.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, appInfo)
		},
	}

	flags := rootCmd.Flags()
	flags.String("path", defaults.Path, "Path to errors dir")
	flags.String("declaration", defaults.Declaration, "declaration subdir")
	flags.String("destination", defaults.Destination, "generation subdir")
	flags.String("module", "", "module name, read from go.mod when empty")
	flags.String("config", "", "yaml config file, flags override its values")
	flags.String("color", defaults.Color, "colorize errors (auto|always|never)")
	flags.BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(versionCmd(appInfo))

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	return rootCmd
}

// loadConfig значения по умолчанию, затем файл, затем явно заданные флаги
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	cfg := config.Default()

	if filename, _ := flags.GetString("config"); filename != "" {
		var err error

		cfg, err = config.Load(filename, cfg)
		if err != nil {
			return config.Config{}, err
		}
	}

	for name, dst := range map[string]*string{
		"path":        &cfg.Path,
		"declaration": &cfg.Declaration,
		"destination": &cfg.Destination,
		"module":      &cfg.Module,
		"color":       &cfg.Color,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func newLogger(out io.Writer, cfg config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.Color == config.ColorNever,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func runGenerate(cmd *cobra.Command, appInfo *ds.AppInfo) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("error load config: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)

	modName, err := cfg.ResolveModule("go.mod")
	if err != nil {
		return err
	}

	logger.Debug().Str("src", cfg.SrcDir()).Str("dst", cfg.DstDir()).Str("module", modName).Str("generator", appInfo.String()).Msg("start")

	gen, err := app.Init(cmd.Context(), appInfo, cfg.SrcDir(), cfg.DstDir(), modName, logger)
	if err != nil {
		return fmt.Errorf("error initialization: %w", err)
	}

	if err := gen.Run(); err != nil {
		return fmt.Errorf("error generate errors: %w", err)
	}

	return nil
}
