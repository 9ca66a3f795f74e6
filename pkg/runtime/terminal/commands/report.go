package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
	"github.com/de-tools/compliance-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultPriorityFile = "PowerPipeControls_Annotations.xlsx"

type ReportCmd struct {
	inputPath    string
	priorityPath string
	settingsPath string
	outputDir    string
	logFile      string
	in           io.Reader
	out          io.Writer
	reporter     *export.Reporter
}

// NewReportCmd builds the enrichment pipeline command. Paths not given as
// flags are asked for interactively.
func NewReportCmd(in io.Reader, out io.Writer, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{in: in, out: out, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Enrich a compliance export with priorities and risk scores",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.inputPath, "input", "", "Path to the compliance export (CSV or Excel)")
	cmd.Flags().StringVar(&rc.priorityPath, "priority", "", "Path to the priority annotations spreadsheet")
	cmd.Flags().StringVar(&rc.settingsPath, "settings", "", "Path to a settings file overriding the scoring defaults")
	cmd.Flags().StringVar(&rc.outputDir, "out", "", "Output directory for report artifacts")
	cmd.Flags().StringVar(&rc.logFile, "log-file", "", "Write logs to this file instead of stderr")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(rc.logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx := logger.WithContext(cmd.Context())

	settings, err := enrich.LoadSettings(rc.settingsPath)
	if err != nil {
		return err
	}
	if rc.outputDir != "" {
		settings.OutputDir = rc.outputDir
	}

	if rc.inputPath == "" {
		rc.inputPath, err = prompt(rc.in, rc.out, "Enter input compliance report file (CSV/Excel)", "")
		if err != nil {
			return err
		}
	}
	if rc.priorityPath == "" {
		rc.priorityPath, err = prompt(rc.in, rc.out, "Enter priority annotations file", defaultPriorityFile)
		if err != nil {
			return err
		}
	}

	ctrl := report.NewController(settings)
	artifacts, err := ctrl.Run(ctx, rc.inputPath, rc.priorityPath)
	if err != nil {
		return err
	}

	if err := rc.reporter.Handle(artifacts.Executive); err != nil {
		return err
	}

	fmt.Fprintln(rc.out, "Comprehensive report generated:")
	fmt.Fprintf(rc.out, "- Excel Report: %s\n", artifacts.Workbook)
	fmt.Fprintf(rc.out, "- Executive Summary: %s\n", artifacts.Summary)
	fmt.Fprintf(rc.out, "- PDF Summary: %s\n", artifacts.PDF)
	for _, c := range artifacts.Charts {
		fmt.Fprintf(rc.out, "- Chart: %s\n", c)
	}
	return nil
}

// newLogger builds the run logger, optionally teeing into a log file.
func newLogger(logFile string) (zerolog.Logger, func(), error) {
	if logFile == "" {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
