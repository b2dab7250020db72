package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/shapestone/shape-rparse/internal/logging"
	"github.com/shapestone/shape-rparse/pkg/rparse"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

var errUsage = errors.New("usage")

// exitCode maps failures to process exit codes.
func exitCode(err error) int {
	var accessErr *rparse.FileAccessError
	var optsErr *rparse.OptionsError
	switch {
	case errors.Is(err, errUsage), errors.As(err, &optsErr):
		return 2
	case errors.As(err, &accessErr):
		return 3
	default:
		return 1
	}
}

// options holds the command's flag values.
type options struct {
	delimiter string
	headers   bool
	dropEmpty bool
	output    string
	transform string
	logLevel  string
}

func newRootCommand() *cobra.Command {
	opts := &options{
		delimiter: ",",
		output:    outputTable,
		transform: "none",
		logLevel:  "warn",
	}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rparse [file]",
		Short: "Split delimited text into rows and fields",
		Long: strings.TrimSpace(`
Reads a delimited text file (or stdin when the file is "-" or omitted) and prints
its rows. Lines end at CR or LF, blank lines are skipped, and fields are trimmed
and unquoted.

Flags can also be set through RPARSE_* environment variables, for example
RPARSE_DELIMITER=";" or RPARSE_OUTPUT=json. RPARSE_CONFIG names an optional
config file.
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%w: expected at most one input file, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyEnvironment(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			defer func() { _ = logger.Sync() }()

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, path, opts, logger)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	flags := cmd.Flags()
	flags.StringVarP(&opts.delimiter, "delimiter", "d", opts.delimiter, `Field delimiter, or "auto" to detect one of , tab ; |`)
	flags.BoolVarP(&opts.headers, "headers", "H", false, "Treat the first row as column names")
	flags.BoolVar(&opts.dropEmpty, "drop-empty", false, "Discard fields that are empty after trimming")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "Output format (table, lines, json, yaml)")
	flags.StringVarP(&opts.transform, "transform", "t", opts.transform, "Row transform for lines output (none, upper, lower, title)")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level for diagnostics (debug, info, warn, error)")
	return cmd
}

// applyEnvironment fills flags the user did not set from RPARSE_* variables
// and the optional RPARSE_CONFIG file.
func applyEnvironment(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("RPARSE")
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if path := os.Getenv("RPARSE_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var setErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) || setErr != nil {
			return
		}
		val := fmt.Sprintf("%v", v.Get(f.Name))
		if err := f.Value.Set(val); err != nil {
			setErr = fmt.Errorf("%w: invalid value %q for --%s: %v", errUsage, val, f.Name, err)
		}
	})
	return setErr
}

// run loads the source, parses it and writes the requested output.
func run(cmd *cobra.Command, path string, opts *options, logger *zap.Logger) error {
	transform, err := lookupTransform(opts.transform)
	if err != nil {
		return err
	}
	if !validOutput(opts.output) {
		return fmt.Errorf("%w: unknown output format %q (expected %s)", errUsage, opts.output, strings.Join(outputFormats, ", "))
	}

	p, err := load(cmd, path, opts, logger)
	if err != nil {
		return err
	}
	logger.Debug("loaded source",
		zap.String("path", path),
		zap.String("delimiter", p.Delimiter()),
		zap.Bool("headers", p.HasHeaders()),
		zap.Int("bytes", len(p.Text())))

	return write(cmd.OutOrStdout(), p, opts.output, transform)
}

// load reads the source and resolves "auto" to a sniffed delimiter.
func load(cmd *cobra.Command, path string, opts *options, logger *zap.Logger) (*rparse.Parser, error) {
	parserOpts := rparse.Options{
		Delimiter:       opts.delimiter,
		HasHeaders:      opts.headers,
		DropEmptyFields: opts.dropEmpty,
		WarningCallback: func(line int, message string) {
			logger.Warn(message, zap.Int("line", line))
		},
	}

	auto := strings.EqualFold(opts.delimiter, "auto")
	if auto {
		parserOpts.Delimiter = ","
	}

	var p *rparse.Parser
	var err error
	if path == "-" {
		p, err = rparse.NewParserFromReader(cmd.InOrStdin(), parserOpts)
	} else {
		p, err = rparse.OpenWithOptions(path, parserOpts)
	}
	if err != nil || !auto {
		return p, err
	}

	parserOpts.Delimiter = rparse.NewSniffer(p.Text()).DetectDelimiter()
	logger.Info("detected delimiter", zap.String("delimiter", parserOpts.Delimiter))
	return rparse.NewParser(p.Text(), parserOpts)
}
