package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/timetable"
	"github.com/tsawler/timetable/config"
	"github.com/tsawler/timetable/export"
	"github.com/tsawler/timetable/logger"
)

type parseFlags struct {
	groups   []int
	format   string
	output   string
	logLevel string
}

func newParseCommand(cfgPath *string) *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse <file.html>",
		Short: "Parse a saved timetable page and print the schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(*cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			return runParse(cmd, cfg, args[0])
		},
	}

	cmd.Flags().IntSliceVarP(&flags.groups, "groups", "g", nil, "expected group identifiers, e.g. 511,512")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: json or csv")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

// apply overrides cfg with the flags set on the command line.
func (f parseFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("groups") {
		cfg.Groups = f.groups
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = f.format
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = f.output
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	cfg.SetDefaults()
	return cfg.Validate()
}

func runParse(cmd *cobra.Command, cfg *config.Config, path string) (err error) {
	log, err := logger.NewWithConfig("parse", logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	tt, err := timetable.Open(path).
		Groups(cfg.Groups...).
		Logger(log).
		Parse()
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("parse failed")
		return fmt.Errorf("parse %s: %w", path, err)
	}
	log.Info().
		Str("file", path).
		Str("layout", string(tt.Layout)).
		Ints("detected", tt.DetectedGroups).
		Int("entries", tt.EntryCount()).
		Msg("parsed timetable")

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" {
		f, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	cfgExport := export.DefaultConfig()
	cfgExport.Format = format
	cfgExport.PrettyPrint = format == export.FormatJSON
	return export.NewExporterWithConfig(cfgExport).Export(out, tt)
}
