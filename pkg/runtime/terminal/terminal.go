package terminal

import (
	"io"
	"os"

	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Input  io.Reader
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{reporter: export.NewReporter(opts.Output)}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance-atlas",
		Short: "AWS compliance reporting tool",
	}

	cmd.AddCommand(commands.NewReportCmd(opts.Input, opts.Output, cli.reporter))
	cmd.AddCommand(commands.NewPivotCmd(opts.Input, opts.Output))

	return cmd
}
