package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/limaJavier/advisories/pkg/logging"
	"github.com/limaJavier/advisories/pkg/model"
	"github.com/limaJavier/advisories/pkg/people"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli holds what every subcommand shares: the flags of the root command, the configuration
// loader and the logger built before any subcommand runs
type cli struct {
	configFile   string
	logLevel     string
	logFormat    string
	studentsFile string

	config *viper.Viper
	logger logging.Logger
}

func newRootCommand() *cobra.Command {
	cli := &cli{
		config: viper.New(),
		logger: logging.NewNop(),
	}

	root := &cobra.Command{
		Use:           "advisories",
		Short:         "Build advisory groups from a student population",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cli.logLevel, cli.logFormat)
			if err != nil {
				return err
			}
			cli.logger = logger
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cli.configFile, "config", "", "settings file (JSON, YAML or TOML); ADVISORIES_* environment variables override it")
	flags.StringVar(&cli.logLevel, "log-level", "info", `log level: "debug", "info", "warn" or "error"`)
	flags.StringVar(&cli.logFormat, "log-format", "text", `log format: "text" or "json"`)

	root.AddCommand(
		cli.generateCommand(),
		cli.validateCommand(),
		cli.reportCommand(),
	)
	return root
}

func newLogger(writer io.Writer, level, format string) (logging.Logger, error) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	options := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(writer, options)
	case "json":
		handler = slog.NewJSONHandler(writer, options)
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return logging.NewSlog(slog.New(handler).With("run", uuid.NewString())), nil
}

func (cli *cli) addStudentsFlag(command *cobra.Command) {
	command.Flags().StringVar(&cli.studentsFile, "students", "", "students input file (.json, .yaml or .yml)")
	_ = command.MarkFlagRequired("students")
}

// load reads the settings and the students and runs them through validation
func (cli *cli) load() (model.Settings, []people.Student, error) {
	settings, err := loadSettings(cli.config, cli.configFile)
	if err != nil {
		return model.Settings{}, nil, err
	}

	input, err := model.InputFromFile(cli.studentsFile)
	if err != nil {
		return model.Settings{}, nil, err
	}

	cli.logger.Debug("input loaded",
		"students", len(input.Students),
		"advisories", settings.NumAdvisories,
		"weights", fmt.Sprintf("%+v", settings.Weights),
		"mutualBans", settings.MutualBans,
	)
	return settings, input.Students, nil
}

// write prints the value as indented JSON into the file, or into the command's output when file is empty
func write(cmd *cobra.Command, file string, value any) error {
	bytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	if file == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
		return err
	}
	if err := os.WriteFile(file, bytes, 0o666); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
