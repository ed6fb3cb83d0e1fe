package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/savelicense/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the unique licenses without writing them",
		Long: `List scans the given paths like the root command does and prints a table
of the unique license texts, how often each was found and where.`,
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

			return wf.List(cmd.Context(), domain.ListArgs{ScanArgs: scanArgs(cfg, args)})
		},
	}

	addScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
