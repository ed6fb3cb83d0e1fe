// Package cmd provides the root command and CLI setup for save-license.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/savelicense/internal/adapter"
	"github.com/mouse-blink/savelicense/internal/config"
	"github.com/mouse-blink/savelicense/internal/controller"
	"github.com/mouse-blink/savelicense/internal/domain"
	"github.com/mouse-blink/savelicense/internal/logger"
	m "github.com/mouse-blink/savelicense/internal/model"
)

const rootLongDescription = `save-license collects the license and copyright comments of JavaScript
files into a single file.

Comments are grouped (adjacent // lines form one group, every /* */ comment
is a group of its own), groups that match a detection pattern are kept and
identical texts are written once, in the order they were first seen.

Paths may be files, directories or recursive directories:
  - dist/bundle.js   a single file (any extension)
  - dist             the JavaScript files directly inside dist
  - dist/...         every JavaScript file below dist`

var errNoOutput = errors.New("an output path is required (--out, or out in the config file)")

// workflowFactory builds the workflow for a command; tests replace it.
var workflowFactory = newWorkflow

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "save-license [paths...]",
		Short:         "Collect license comments from JavaScript sources",
		Long:          rootLongDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cfg.Out == "" {
				return errNoOutput
			}

			wf, err := workflowFactory(cmd, cfg)
			if err != nil {
				return err
			}

			return wf.Save(cmd.Context(), domain.SaveArgs{
				ScanArgs: scanArgs(cfg, args),
				Out:      m.Path(cfg.Out),
				Report:   m.Path(cfg.Report),
			})
		},
	}

	addScanFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "output file receiving the unique license texts")
	cmd.Flags().String("report", "", "also write a YAML report of every match to this file")

	return cmd
}

// addScanFlags registers the flags shared by every scanning command.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFlag, "config", "", "config file (default is ./"+config.ConfigFileName+".yaml)")
	cmd.Flags().StringArrayP("pattern", "p", nil, "license detection regex, replaces the defaults (can be repeated)")
	cmd.Flags().StringP("encoding", "e", adapter.DefaultEncoding, "text encoding of the inputs and the output")
	cmd.Flags().StringArray("ext", nil, "file extension collected from directories (can be repeated)")
	cmd.Flags().StringArrayP("exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().String("log-level", "warn", "log level: debug, info, warn or error")
	cmd.Flags().Bool(config.NoTUIFlag, false, "plain text output even on a terminal")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := config.Load(config.LoadOptions{
		ConfigFile: configFlag,
		Flags:      cmd.Flags(),
	})

	return cfg, err
}

func scanArgs(cfg *config.Config, args []string) domain.ScanArgs {
	roots := args
	if len(roots) == 0 {
		roots = cfg.Paths
	}

	return domain.ScanArgs{
		Paths:      parsePaths(roots),
		Exclude:    cfg.Exclude,
		Extensions: cfg.Extensions,
		Patterns:   cfg.Patterns,
		Encoding:   cfg.Encoding,
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func newWorkflow(cmd *cobra.Command, cfg *config.Config) (domain.Workflow, error) {
	log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd, cfg.TUI && controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewJavaScriptCommentAdapter(),
		adapter.NewReportStore(),
		ui,
		log,
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
