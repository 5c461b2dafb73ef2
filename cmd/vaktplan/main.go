// Package main provides the CLI entry point for vaktplan.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vaktplan/vaktplan-go/internal/config"
	"github.com/vaktplan/vaktplan-go/internal/logger"
	"github.com/vaktplan/vaktplan-go/pkg/vaktplan"
	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/output"
)

type cliFlags struct {
	configPath string
	sheet      string
	outputPath string
	format     string
	pretty     bool
	from       string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}
	rootCmd := &cobra.Command{
		Use:   "vaktplan [input.xlsx]",
		Short: "Extract teacher duty schedules from Excel rosters",
		Long: `vaktplan reads a duty roster sheet (teacher names in column A, dates from
column E, attendance marked with 1) and prints each teacher's scheduled dates.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVarP(&flags.sheet, "sheet", "s", "", "Sheet name (default: "+vaktplan.DefaultSheetName+")")
	rootCmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&flags.format, "format", "", "Output format: json, table")
	rootCmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&flags.from, "from", "", "Only keep dates on or after this day (YYYY-MM-DD or DD.MM)")

	rootCmd.AddCommand(newSheetsCmd(flags))
	return rootCmd
}

func newSheetsCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:          "sheets [input.xlsx]",
		Short:        "List the sheet names of a workbook",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(cmd, flags); err != nil {
				return err
			}
			wb, err := vaktplan.Open(args[0])
			if err != nil {
				return fmt.Errorf("open workbook: %w", vaktplan.NewParseError(args[0], err))
			}
			defer wb.Close()
			for _, name := range wb.SheetNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, flags *cliFlags) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("sheet") {
		cfg.Sheet = flags.sheet
	}
	if f.Changed("format") {
		cfg.Output.Format = flags.format
	}
	if f.Changed("pretty") {
		cfg.Output.Pretty = flags.pretty
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Console, "cli")
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

func run(cmd *cobra.Command, flags *cliFlags, inputPath string) error {
	cfg, log, err := setup(cmd, flags)
	if err != nil {
		return err
	}

	var day, month int
	filterFrom := flags.from != ""
	if filterFrom {
		if day, month, err = parseFrom(flags.from); err != nil {
			return err
		}
	}

	layout := cfg.Layout.Layout()
	opts := vaktplan.Options{
		SheetName: cfg.Sheet,
		Layout:    &layout,
	}

	log.Debug().Str("file", inputPath).Str("sheet", opts.ResolveSheetName()).Msg("extracting schedule")
	res, err := vaktplan.Extract(inputPath, opts)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("extraction failed")
		return fmt.Errorf("extraction failed: %w", err)
	}
	log.Info().Str("sheet", res.SheetName).Int("teachers", len(res.Teachers)).Msg("schedule extracted")

	if filterFrom {
		res = vaktplan.FilterFrom(res, day, month)
	}

	var buf bytes.Buffer
	if err := render(&buf, res, cfg.Output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func render(w io.Writer, res *models.ScheduleResult, cfg config.OutputConfig) error {
	if cfg.Format == "table" {
		return output.WriteTable(w, res)
	}
	jsonData, err := output.ToJSON(res, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// parseFrom accepts an ISO date (2024-05-04) or a day.month pair (04.05).
func parseFrom(s string) (day, month int, err error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "02.01", "2.1"} {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t.Day(), int(t.Month()), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid --from date %q (want YYYY-MM-DD or DD.MM)", s)
}
