package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/compliance-atlas/pkg/services/enrich"
	"github.com/de-tools/compliance-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type PivotCmd struct {
	inputPath    string
	settingsPath string
	outputDir    string
	logFile      string
	in           io.Reader
	out          io.Writer
}

// NewPivotCmd builds the category pivot pipeline command.
func NewPivotCmd(in io.Reader, out io.Writer) *cobra.Command {
	pc := &PivotCmd{in: in, out: out}
	cmd := &cobra.Command{
		Use:   "pivot",
		Short: "Build per-category pivot sheets from a compliance export",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.inputPath, "input", "", "Path to the compliance export (CSV or Excel)")
	cmd.Flags().StringVar(&pc.settingsPath, "settings", "", "Path to a settings file overriding the category defaults")
	cmd.Flags().StringVar(&pc.outputDir, "out", "", "Output directory for report artifacts")
	cmd.Flags().StringVar(&pc.logFile, "log-file", "", "Write logs to this file instead of stderr")

	return cmd
}

func (pc *PivotCmd) run(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(pc.logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx := logger.WithContext(cmd.Context())

	settings, err := enrich.LoadSettings(pc.settingsPath)
	if err != nil {
		return err
	}
	if pc.outputDir != "" {
		settings.OutputDir = pc.outputDir
	}

	if pc.inputPath == "" {
		pc.inputPath, err = prompt(pc.in, pc.out, "Enter the report file name (e.g., aws_compliance_benchmark.csv)", "")
		if err != nil {
			return err
		}
	}

	ctrl := report.NewPivotController(settings)
	artifacts, err := ctrl.Run(ctx, pc.inputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(pc.out, "Final report with pivot table saved as %s\n", artifacts.Workbook)
	for _, c := range artifacts.Charts {
		fmt.Fprintf(pc.out, "- Chart: %s\n", c)
	}
	return nil
}
