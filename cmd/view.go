package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/savelicense/internal/domain"
	m "github.com/mouse-blink/savelicense/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "view REPORT",
		Short:        "View a report written with --report",
		Long:         "View prints the unique licenses stored in a YAML report written by a previous run.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			wf, err := workflowFactory(cmd, cfg)
			if err != nil {
				return err
			}

			return wf.View(domain.ViewArgs{Report: m.Path(args[0])})
		},
	}
	cmd.Flags().String("log-level", "warn", "log level: debug, info, warn or error")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
