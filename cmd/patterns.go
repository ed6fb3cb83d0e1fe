package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/savelicense/internal/domain"
)

// patternsCmd represents the patterns command.
var patternsCmd = newPatternsCmd()

func newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "patterns",
		Short:        "Print the effective license detection patterns",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			matcher, err := domain.CompilePatterns(cfg.Patterns)
			if err != nil {
				return err
			}

			for _, pattern := range matcher.Patterns() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), pattern); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&configFlag, "config", "", "config file")
	cmd.Flags().StringArrayP("pattern", "p", nil, "license detection regex, replaces the defaults (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
